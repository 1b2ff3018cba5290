package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "homeconnect.backend/internal/domain/errors"
	"homeconnect.backend/pkg/logger"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error converts any error to a JSON body at the boundary. Non-AppError
// values degrade to a 500 with a generic message; the cause is logged, never
// sent to the caller.
func Error(c *gin.Context, err error) {
	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		appErr = domainerrors.InternalError(err)
	}

	if appErr.Status >= 500 {
		logger.Error(c.Request.Context(), "request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}

	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
