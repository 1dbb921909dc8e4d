package httperr

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

// Unprocessable is for shape-level failures (malformed bodies, unknown
// enum literals) caught before the core runs.
func Unprocessable(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Respond maps a core error to its transport status. Recognized kinds are
// logged at debug; anything else is a server error and logged with context.
func Respond(c *gin.Context, err error) {
	kind, ok := KindOf(err)
	if !ok {
		slog.Error("request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Any("err", err),
		)
		Internal(c, "internal_error", "internal server error")
		return
	}

	slog.Debug("request rejected",
		slog.String("method", c.Request.Method),
		slog.String("path", c.FullPath()),
		slog.String("reason", err.Error()),
	)

	switch kind {
	case KindNotFound:
		NotFound(c, "not_found", err.Error())
	case KindInvalidRequest:
		BadRequest(c, "invalid_request", err.Error())
	case KindConflict:
		Conflict(c, "conflict", err.Error())
	}
}
