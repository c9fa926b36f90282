package response

import "github.com/gin-gonic/gin"

const (
	AuthLoginSuccess = 1 // Login Success
	AuthLoginFailed  = 2 // Login Failed

	ErrCodeSuccess      = 4001 // Success
	ErrCodeParamInvalid = 4003 // Malformed path or body parameter
)

// message
var msg = map[int]string{
	// Auth
	AuthLoginSuccess: "login success",
	AuthLoginFailed:  "login failed",

	ErrCodeSuccess:      "success",
	ErrCodeParamInvalid: "invalid parameter",
}

// Message returns the canned text for a response code.
func Message(code int) string {
	return msg[code]
}

// Error writes the standard error body used by every handler.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
