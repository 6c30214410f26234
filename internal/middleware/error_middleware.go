package middleware

import (
	"chat-platform/internal/transport/httpdto"
	apperrors "chat-platform/pkg/errors"
	"chat-platform/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler translates errors attached by handlers into the response
// envelope. Handlers call c.Error(err) and return; the status code and
// client message come from the error itself.
func ErrorHandler(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperrors.HTTPStatus(err)
		if l != nil && status >= 500 {
			l.Errorf("request error: %s", err.Error())
		}
		c.JSON(status, httpdto.Failure(apperrors.ClientMessage(err)))
	}
}
