package controllers

import (
	"net/http"
	"strconv"

	dbpkg "pizzahub/db"
	"pizzahub/models"

	"github.com/gin-gonic/gin"
)

// ParamID reads a positive integer path param. Anything else cannot name a
// stored record, so it is answered with the resource's 404.
func ParamID(c *gin.Context, name string, resource string) (int64, bool) {
	v := c.Param(name)
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, models.NotFoundError{Resource: resource}.Error(), http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// Store returns the repository set by db.SetStoreToContext, answering 500 if absent.
func Store(c *gin.Context) (dbpkg.Repository, bool) {
	store := dbpkg.StoreInstance(c)
	if store == nil {
		RespondError(c, MSG_STORE_MISSING, http.StatusInternalServerError)
		return nil, false
	}
	return store, true
}
