package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorCode classifies a domain error for the HTTP boundary.
type ErrorCode int

const (
	CodeUnauthorized ErrorCode = iota + 1
	CodeValidation
	CodeNotFound
)

// DomainError is a classified error that the boundary translator maps
// to an HTTP status. Everything unclassified becomes a 500.
type DomainError struct {
	Code    ErrorCode
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func UnauthorizedError(msg string) *DomainError {
	return &DomainError{Code: CodeUnauthorized, Message: msg}
}

func ValidationError(format string, args ...any) *DomainError {
	return &DomainError{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFoundError(msg string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: msg}
}

// RespondError is the single boundary translator: it maps a domain error
// to an HTTP status and writes the standard error response.
func RespondError(c *gin.Context, err error) {
	logger := GetLogger()

	var de *DomainError
	if errors.As(err, &de) {
		status := http.StatusInternalServerError
		switch de.Code {
		case CodeUnauthorized:
			status = http.StatusUnauthorized
		case CodeValidation:
			status = http.StatusBadRequest
		case CodeNotFound:
			status = http.StatusNotFound
		}
		logger.Warn("Request failed", zap.Int("status", status), zap.String("error", de.Message))
		c.JSON(status, ErrorResponse{Message: de.Message})
		return
	}

	logger.Error("Unhandled request error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Message: "Internal Server Error",
		Details: "An unexpected error occurred. Please try again later.",
	})
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}
