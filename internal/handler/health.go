package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KmDRF/empacatalog/internal/catalog"
)

// Health reports liveness and the size of the loaded catalog. With no
// external stores there is nothing else to probe.
func Health(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"ok":        true,
			"productos": len(store.Productos()),
		})
	}
}
