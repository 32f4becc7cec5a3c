package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/maps-cache-service/internal/domain/dto"
	"github.com/guttosm/maps-cache-service/internal/i18n"
	"github.com/guttosm/maps-cache-service/internal/logger"
	"github.com/rs/zerolog"
)

// ErrorClassifier maps a handler error to a status code and i18n message key.
// ok is false when the classifier does not recognise err.
type ErrorClassifier func(err error) (status int, messageKey string, ok bool)

// ErrorHandler returns a middleware that renders the last gin context error.
// Handlers that already wrote a response only get their error logged.
// Otherwise the first classifier that recognises the error picks the status;
// unrecognised errors become a 500.
func ErrorHandler(classifiers ...ErrorClassifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status, messageKey := classify(err, classifiers)
		if c.Writer.Written() {
			status = c.Writer.Status()
		}

		requestID := GetRequestID(c)
		log := logger.Component("http")
		event := log.WithLevel(levelFor(status))
		event.
			Str("request_id", requestID).
			Err(err).
			Int("status_code", status).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
			c.JSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).WithRequestID(requestID))
		}
	}
}

func classify(err error, classifiers []ErrorClassifier) (int, string) {
	for _, classifier := range classifiers {
		if status, key, ok := classifier(err); ok {
			return status, key
		}
	}
	return http.StatusInternalServerError, i18n.ErrKeyInternalError
}

func levelFor(status int) zerolog.Level {
	if status >= http.StatusInternalServerError {
		return zerolog.ErrorLevel
	}
	return zerolog.WarnLevel
}
