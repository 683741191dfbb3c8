package middleware

import (
	"net/http"

	"careerCompass/pkg/logger"
	jsonres "careerCompass/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo-level fallback for errors that escape handlers
// (unknown routes, method mismatches, panics caught by Recover).
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("Unhandled request error", err)
	}

	if err := c.JSON(code, jsonres.Error(http.StatusText(code), message, nil)); err != nil {
		logger.Error("Failed to write error response", err)
	}
}
