package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the failure envelope: a category string matching the HTTP
// status plus a human-readable message.
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var categories = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not Found",
	http.StatusConflict:            "Conflict",
	http.StatusInternalServerError: "Internal Server Error",
}

// Category returns the envelope category string for an HTTP status code.
func Category(code int) string {
	if c, ok := categories[code]; ok {
		return c
	}
	return http.StatusText(code)
}

// JSON sends a success response. Success bodies are the bare entity JSON.
func JSON(c *gin.Context, code int, data interface{}) {
	c.JSON(code, data)
}

// NoContent sends an empty 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response in the {error, message} envelope.
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: Category(code), Message: message})
}
