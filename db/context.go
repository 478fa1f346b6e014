package db

import (
	"github.com/gin-gonic/gin"
)

const storeKey = "store"

// SetStoreToContext is the gin middleware that exposes the repository to handlers.
func SetStoreToContext(store Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(storeKey, store)
		c.Next()
	}
}

func StoreInstance(c *gin.Context) Repository {
	v, ok := c.Get(storeKey)
	if !ok {
		return nil
	}
	store, _ := v.(Repository)
	return store
}
