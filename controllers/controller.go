package controllers

import (
	"errors"
	"net/http"

	"pizzahub/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const MSG_INVALID_BODY = "Invalid request body"
const MSG_INTERNAL = "internal error"
const MSG_STORE_MISSING = "store not configured in context"

func RespondError(c *gin.Context, msg string, code int) {
	c.JSON(code, gin.H{"error": msg})
}

func RespondErrors(c *gin.Context, msgs []string, code int) {
	c.JSON(code, gin.H{"errors": msgs})
}

func RespondSuccess(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// RespondWriteError answers a failed create/delete. Anything that is not a
// known domain error is logged and reported as a generic validation failure.
func RespondWriteError(c *gin.Context, err error) {
	var mr models.MalformedRequestError
	switch {
	case models.IsNotFound(err):
		respondNotFound(c, err)
	case models.IsValidation(err):
		var ve models.ValidationError
		errors.As(err, &ve)
		RespondErrors(c, ve.Messages, http.StatusBadRequest)
	case errors.As(err, &mr):
		RespondErrors(c, []string{MSG_INVALID_BODY}, http.StatusBadRequest)
	default:
		logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("write failed")
		RespondErrors(c, []string{models.MSG_VALIDATION_ERRORS}, http.StatusBadRequest)
	}
}

// RespondReadError answers a failed lookup: 404 for missing records, 500 otherwise.
func RespondReadError(c *gin.Context, err error) {
	if models.IsNotFound(err) {
		respondNotFound(c, err)
		return
	}
	logrus.WithError(err).WithField("path", c.Request.URL.Path).Error("read failed")
	RespondError(c, MSG_INTERNAL, http.StatusInternalServerError)
}

// respondNotFound answers with the innermost not-found message, so wrapping
// context added by the store never leaks into the response body.
func respondNotFound(c *gin.Context, err error) {
	var nf models.NotFoundError
	errors.As(err, &nf)
	RespondError(c, nf.Error(), http.StatusNotFound)
}
