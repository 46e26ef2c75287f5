package apperrors

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope every error response uses.
type ErrorResponse struct {
	Error *AppError `json:"error"`
}

// HandleError writes err to the gin response, wrapping non-AppErrors into
// an internal error first. The error is also attached to the gin context so
// the transaction middleware can see the request failed.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}
	_ = c.Error(err)
	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr})
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
