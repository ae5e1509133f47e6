package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope for successful API responses.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for failed API responses.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success envelope with the given payload.
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error envelope. An empty message falls
// back to the standard text for the status code.
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = http.StatusText(statusCode)
	}
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

func BadRequestResponse(c echo.Context, msg string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, msg)
}

func UnauthorizedResponse(c echo.Context, msg string) error {
	return ErrorResponseHandler(c, http.StatusUnauthorized, msg)
}

func ForbiddenResponse(c echo.Context, msg string) error {
	return ErrorResponseHandler(c, http.StatusForbidden, msg)
}

func NotFoundResponse(c echo.Context, msg string) error {
	return ErrorResponseHandler(c, http.StatusNotFound, msg)
}

func ConflictResponse(c echo.Context, msg string) error {
	return ErrorResponseHandler(c, http.StatusConflict, msg)
}

func TooManyRequestsResponse(c echo.Context, msg string) error {
	return ErrorResponseHandler(c, http.StatusTooManyRequests, msg)
}

func InternalServerErrorResponse(c echo.Context, msg string) error {
	return ErrorResponseHandler(c, http.StatusInternalServerError, msg)
}
