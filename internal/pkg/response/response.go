// Package response is the single serialization boundary for API
// envelopes. Every endpoint answers with one of two shapes:
//
//	{"success": true,  "data": ...}  (optionally "message")
//	{"success": false, "error": "..."}
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends a 200 success envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Created sends a 201 success envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// CreatedMsg sends a 201 envelope carrying only a human-readable message.
func CreatedMsg(c *gin.Context, message string) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message})
}

// NoContent sends a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 error envelope.
func BadRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 error envelope.
func Unauthorized(c *gin.Context) {
	fail(c, http.StatusUnauthorized, "authentication required")
}

// NotFound sends a 404 error envelope.
func NotFound(c *gin.Context, message string) {
	fail(c, http.StatusNotFound, message)
}

// MethodNotAllowed sends a 405 error envelope.
func MethodNotAllowed(c *gin.Context) {
	fail(c, http.StatusMethodNotAllowed, "method not allowed")
}

// PayloadTooLarge sends a 413 error envelope.
func PayloadTooLarge(c *gin.Context, message string) {
	fail(c, http.StatusRequestEntityTooLarge, message)
}

// TooManyRequests sends a 429 error envelope.
func TooManyRequests(c *gin.Context) {
	fail(c, http.StatusTooManyRequests, "too many requests")
}

// InternalError sends a 500 error envelope.
func InternalError(c *gin.Context, err error) {
	fail(c, http.StatusInternalServerError, err.Error())
}

// BadGateway sends a 502 error envelope for downstream dependency failures.
func BadGateway(c *gin.Context, message string) {
	fail(c, http.StatusBadGateway, message)
}

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
}
