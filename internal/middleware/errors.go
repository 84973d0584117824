package middleware

import (
	"go-attend/internal/shared/apperror"
	"go-attend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func abortWithError(c *gin.Context, err *apperror.AppError, details any) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, details)
	c.Abort()
}

// NotFound answers unmatched routes with the standard error envelope.
func NotFound(c *gin.Context) {
	abortWithError(c, apperror.ErrNotFound, nil)
}
