package util

import (
	"encoding/json"
	"log"
	"runtime/debug"
	"strings"

	"github.com/fadilmartias/careercraft/internal/config"
	"github.com/fadilmartias/careercraft/internal/notify"
	"github.com/gofiber/fiber/v2"
)

type SuccessResponseFormat struct {
	Code    int
	Message string
	Data    any
	Meta    any
}

type OrderedSuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Meta    any    `json:"meta,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Details    any
	Trace      string
}

type OrderedErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
	Details    any    `json:"details,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

// FragmentResponseFormat describes an htmx reply: an HTML fragment for the
// request target, an optional toast swapped out-of-band, and optional
// response headers that steer the swap.
type FragmentResponseFormat struct {
	Code  int
	HTML  string
	Toast *notify.Notification
	// Trigger becomes the HX-Trigger header.
	Trigger map[string]any
	// Retarget and Reswap override the target chosen by the page.
	Retarget string
	Reswap   string
}

// SuccessResponse sends the standard JSON success envelope.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	response := OrderedSuccessResponse{
		Success: true,
		Message: params.Message,
		Data:    params.Data,
		Meta:    params.Meta,
	}
	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	return c.Status(code).JSON(response)
}

// ErrorResponse sends the standard JSON error envelope. Outside production
// the cause and a stack trace are included.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	response := OrderedErrorResponse{
		Success: false,
		Message: params.Message,
	}
	if params.Details != nil {
		response.Details = params.Details
	}
	if !config.LoadAppConfig().IsProduction() {
		if len(errs) > 0 && errs[0] != nil {
			response.DevMessage = errs[0].Error()
			response.Trace = string(debug.Stack())
		}
		if params.DevMessage != "" {
			response.DevMessage = params.DevMessage
		}
		if params.Trace != "" {
			response.Trace = params.Trace
		}
	}

	errorCode := params.Code
	if params.Code == 0 {
		errorCode = fiber.StatusInternalServerError
	}
	return c.Status(errorCode).JSON(response)
}

// FragmentResponse sends an HTML fragment followed by its toast.
func FragmentResponse(c *fiber.Ctx, params FragmentResponseFormat) error {
	var body strings.Builder
	body.WriteString(params.HTML)
	if params.Toast != nil {
		toast, err := params.Toast.HTML()
		if err != nil {
			return err
		}
		body.WriteString(string(toast))
	}

	if len(params.Trigger) > 0 {
		trigger, err := json.Marshal(params.Trigger)
		if err != nil {
			log.Printf("Failed to encode HX-Trigger: %v", err)
		} else {
			c.Set("HX-Trigger", string(trigger))
		}
	}
	if params.Retarget != "" {
		c.Set("HX-Retarget", params.Retarget)
	}
	if params.Reswap != "" {
		c.Set("HX-Reswap", params.Reswap)
	}

	code := params.Code
	if code == 0 {
		code = fiber.StatusOK
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(code).SendString(body.String())
}

// ToastResponse sends a reply that only carries a toast.
func ToastResponse(c *fiber.Ctx, code int, n notify.Notification) error {
	return FragmentResponse(c, FragmentResponseFormat{Code: code, Toast: &n})
}
