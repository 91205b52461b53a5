package http

import (
	"github.com/gin-gonic/gin"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeValidation         = "validation_error"
	codeForbidden          = "forbidden"
	codeInternalError      = "internal_error"
)

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorResponse struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Code      string       `json:"code"`
	Message   string       `json:"message"`
	RequestID string       `json:"request_id,omitempty"`
	Details   []FieldError `json:"details,omitempty"`
}

func writeData(c *gin.Context, data any) {
	c.JSON(200, successResponse{Success: true, Data: data})
}

func writeError(c *gin.Context, status int, code, msg string, details ...FieldError) {
	c.AbortWithStatusJSON(status, errorResponse{
		Error: errorBody{
			Code:      code,
			Message:   msg,
			RequestID: requestID(c),
			Details:   details,
		},
	})
}
