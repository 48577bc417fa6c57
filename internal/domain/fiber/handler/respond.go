package handler

import (
	"log"

	"github.com/fadilmartias/careercraft/internal/notify"
	"github.com/fadilmartias/careercraft/internal/render"
	"github.com/fadilmartias/careercraft/internal/service"
	"github.com/fadilmartias/careercraft/internal/util"
	"github.com/gofiber/fiber/v2"
)

// results renders a results panel: the fragment and a success toast, or the
// error placeholder and an error toast. Validation failures leave the panel
// alone and only warn.
func results(c *fiber.Ctx, r *render.Renderer, fragment string, data any, err error, success string) error {
	if err != nil {
		return failed(c, r, err)
	}
	html, err := r.String(fragment, data)
	if err != nil {
		return err
	}
	toast := notify.SuccessToast(success)
	return util.FragmentResponse(c, util.FragmentResponseFormat{HTML: html, Toast: &toast})
}

func failed(c *fiber.Ctx, r *render.Renderer, err error) error {
	if isValidation(err) {
		return warn(c, err)
	}
	msg := service.UserMessage(err)
	log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)

	html, rerr := r.String(render.FragmentError, render.ErrorView{Message: msg})
	if rerr != nil {
		return rerr
	}
	toast := notify.ErrorToast(msg)
	return util.FragmentResponse(c, util.FragmentResponseFormat{HTML: html, Toast: &toast})
}

// warn answers a rejected input with 422 and a warning toast. The target is
// left as it was.
func warn(c *fiber.Ctx, err error) error {
	toast := notify.WarningToast(service.UserMessage(err))
	return util.FragmentResponse(c, util.FragmentResponseFormat{
		Code:   fiber.StatusUnprocessableEntity,
		Toast:  &toast,
		Reswap: "none",
	})
}

// gatewayFailure is used by routes without a results panel.
func gatewayFailure(c *fiber.Ctx, n notify.Notification, err error) error {
	log.Printf("%s %s failed: %v", c.Method(), c.Path(), err)
	return util.FragmentResponse(c, util.FragmentResponseFormat{
		Code:   fiber.StatusBadGateway,
		Toast:  &n,
		Reswap: "none",
	})
}

func isValidation(err error) bool {
	return service.KindOf(err) == service.KindValidation
}
