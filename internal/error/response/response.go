package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Shaon99/ota-backend/internal/error/code"
)

// Response is the unified API envelope
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Errors    interface{} `json:"errors,omitempty"`
	Timestamp string      `json:"timestamp"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Success sends a success response
func Success(c *gin.Context, data interface{}, message string) {
	if message == "" {
		message = code.GetMessage(code.ErrSuccess)
	}
	c.JSON(http.StatusOK, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: timestamp(),
	})
}

// Fail sends an error response with the catalogued message for errorCode
func Fail(c *gin.Context, errorCode int, errors interface{}) {
	c.JSON(code.GetStatus(errorCode), Response{
		Success:   false,
		Message:   code.GetMessage(errorCode),
		Errors:    errors,
		Timestamp: timestamp(),
	})
}

// FailWithMessage sends an error response with a custom message
func FailWithMessage(c *gin.Context, errorCode int, message string, errors interface{}) {
	c.JSON(code.GetStatus(errorCode), Response{
		Success:   false,
		Message:   message,
		Errors:    errors,
		Timestamp: timestamp(),
	})
}

// AbortFail short-circuits middleware chains with an error response
func AbortFail(c *gin.Context, errorCode int) {
	c.AbortWithStatusJSON(code.GetStatus(errorCode), Response{
		Success:   false,
		Message:   code.GetMessage(errorCode),
		Timestamp: timestamp(),
	})
}

// AbortFailWithMessage short-circuits middleware chains with a custom message
func AbortFailWithMessage(c *gin.Context, errorCode int, message string) {
	c.AbortWithStatusJSON(code.GetStatus(errorCode), Response{
		Success:   false,
		Message:   message,
		Timestamp: timestamp(),
	})
}

// ValidationError sends a 400 validation failure response
func ValidationError(c *gin.Context, errors interface{}) {
	Fail(c, code.ErrValidation, errors)
}

// ServerError sends a 500 response without leaking internal detail
func ServerError(c *gin.Context) {
	Fail(c, code.ErrUnknown, nil)
}
