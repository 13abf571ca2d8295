package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/pkg/apperror"
	"go-talent-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors attached to the gin context into the standard
// JSON error envelope. AppErrors keep their status code and per-field details;
// anything else is logged and answered with an opaque 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			var details interface{}
			if len(appErr.Fields) > 0 {
				details = appErr.Fields
			}
			if appErr.Err != nil {
				logger.Log.Error("request failed",
					slog.String("path", c.Request.URL.Path),
					slog.Int("status", appErr.Code),
					slog.String("error", appErr.Err.Error()))
			}
			response.Error(c, appErr.Code, appErr.Message, details)
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("unexpected error",
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()))
		response.Error(c, http.StatusInternalServerError, "Une erreur inattendue est survenue. Veuillez réessayer.", nil)
	}
}
