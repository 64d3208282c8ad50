package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"sareeMarket/internal/rest"
	"sareeMarket/pkg/logger"
)

var (
	errMissingToken = errors.New("Missing token")
	errInvalidToken = errors.New("Invalid token")
)

// ErrorHandler is the echo fallback for errors that escape handlers.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err, "path", c.Path())
	}

	if err := c.JSON(code, rest.ResponseError{Message: message}); err != nil {
		logger.Error("Failed to write error response", err)
	}
}
