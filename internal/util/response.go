package util

import "github.com/gin-gonic/gin"

// API error codes surfaced in the error body.
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeInvalidReq = "INVALID_REQUEST"
	CodeRateLimit  = "RATE_LIMIT_EXCEEDED"
	CodeServerErr  = "SERVER_ERROR"
)

type errorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error writes the uniform error envelope: {"error":{code,message}}.
func Error(c *gin.Context, httpStatus int, code, msg string) {
	c.JSON(httpStatus, gin.H{"error": errorBody{Code: code, Message: msg}})
}

// ErrorDetails is Error with per-field detail payload attached.
func ErrorDetails(c *gin.Context, httpStatus int, code, msg string, details interface{}) {
	c.JSON(httpStatus, gin.H{"error": errorBody{Code: code, Message: msg, Details: details}})
}
