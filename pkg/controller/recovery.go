package controller

import (
	"factcrawler/pkg/logger"
	"factcrawler/pkg/serrors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns a panicking handler into a 500 response with the INTERNAL
// error body and logs the panic with the request logger.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error(c.Request.Context(), "handler panicked",
			zap.Any("panic", recovered),
			zap.String("route", c.FullPath()))

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"code":    serrors.ErrInternal.Error(),
			"message": "internal error",
		})
	})
}
