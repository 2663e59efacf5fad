package util

import (
	"runtime/debug"

	"github.com/fadilmartias/recruit-admin/internal/config"
	"github.com/fadilmartias/recruit-admin/internal/response"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponseFormat struct {
	Code       int
	Message    string
	Data       any
	Pagination *response.Pagination
	Meta       any
}

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Details    any
	Trace      string
}

// Envelope is the body of every API response. Field order is the wire order.
type Envelope struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Meta       any                  `json:"meta,omitempty"`
	Pagination *response.Pagination `json:"pagination,omitempty"`
	Data       any                  `json:"data,omitempty"`
	DevMessage string               `json:"dev_message,omitempty"`
	Details    any                  `json:"details,omitempty"`
	Trace      string               `json:"trace,omitempty"`
}

// SuccessResponse sends the standard success envelope. Code defaults to 200.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(Envelope{
		Success:    true,
		Message:    params.Message,
		Meta:       params.Meta,
		Pagination: params.Pagination,
		Data:       params.Data,
	})
}

// ErrorResponse sends the standard error envelope. Code defaults to 500.
// Outside production the first error is echoed as dev_message, and server
// errors also carry a stack trace.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	code := params.Code
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	body := Envelope{Message: params.Message, Details: params.Details}

	if !config.LoadAppConfig().IsProduction() {
		body.DevMessage = params.DevMessage
		if body.DevMessage == "" && len(errs) > 0 && errs[0] != nil {
			body.DevMessage = errs[0].Error()
		}
		body.Trace = params.Trace
		if body.Trace == "" && code >= fiber.StatusInternalServerError {
			body.Trace = string(debug.Stack())
		}
	}
	return c.Status(code).JSON(body)
}
