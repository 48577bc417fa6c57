package handler

import (
	"log"
	"strings"

	"github.com/fadilmartias/careercraft/internal/middleware"
	"github.com/fadilmartias/careercraft/internal/notify"
	"github.com/fadilmartias/careercraft/internal/render"
	"github.com/fadilmartias/careercraft/internal/service"
	"github.com/fadilmartias/careercraft/internal/usecase"
	"github.com/fadilmartias/careercraft/internal/util"
	"github.com/gofiber/fiber/v2"
)

const interviewPanel = "#interview-panel"

// InterviewHandler serves the mock-interview chat. The setup form and the
// End button target #interview-panel; answers are appended to the chat.
type InterviewHandler struct {
	renderer *render.Renderer
}

func NewInterviewHandler(renderer *render.Renderer) *InterviewHandler {
	return &InterviewHandler{renderer: renderer}
}

func (h *InterviewHandler) RegisterRoutes(app *fiber.App) {
	ui := app.Group("/ui/interview")
	ui.Post("/start", h.Start)
	ui.Post("/answer", h.Answer)
	ui.Post("/end", h.End)
}

func (h *InterviewHandler) usecase(c *fiber.Ctx) *usecase.InterviewUsecase {
	s := middleware.SessionFrom(c)
	return usecase.NewInterviewUsecase(s.Backend, s.Interview)
}

func (h *InterviewHandler) Start(c *fiber.Ctx) error {
	jd := c.FormValue("job_description")
	out, err := h.usecase(c).Start(c.UserContext(), jd)
	if err != nil {
		if isValidation(err) {
			return warn(c, err)
		}
		log.Printf("Mock interview start failed: %v", err)
		msg := service.UserMessage(err)
		return h.fragment(c, render.FragmentSetup, render.SetupView{JobDescription: jd, Error: msg}, notify.ErrorToast(msg), "")
	}

	view := render.ChatView{Question: out.Question, Counter: out.Counter()}
	return h.fragment(c, render.FragmentChat, view, notify.InfoToast("Interview started. Good luck!"), "")
}

func (h *InterviewHandler) Answer(c *fiber.Ctx) error {
	answer := strings.TrimSpace(c.FormValue("answer"))
	out, err := h.usecase(c).Submit(c.UserContext(), answer)

	switch {
	case err != nil && isValidation(err):
		return warn(c, err)
	case out.Report != nil:
		toast := notify.SuccessToast("Interview complete! Here is your report.")
		if err != nil {
			log.Printf("Mock interview closed by backend: %v", err)
			toast = notify.ErrorToast(service.UserMessage(err))
		}
		return h.fragment(c, render.FragmentReport, render.ReportView{Report: *out.Report, Synthetic: out.Synthetic}, toast, interviewPanel)
	case err != nil:
		log.Printf("Mock interview answer failed: %v", err)
		msg := service.UserMessage(err)
		return h.fragment(c, render.FragmentChatTurn, render.ChatTurnView{Answer: answer, Error: msg}, notify.ErrorToast(msg), "")
	}

	view := render.ChatTurnView{Answer: answer, Question: out.Question, Counter: out.Counter()}
	return h.fragment(c, render.FragmentChatTurn, view, notify.InfoToast(out.Counter()), "")
}

func (h *InterviewHandler) End(c *fiber.Ctx) error {
	out, err := h.usecase(c).End(c.UserContext())
	toast := notify.SuccessToast("Interview ended. Here is your report.")
	if err != nil {
		log.Printf("Mock interview report failed: %v", err)
		toast = notify.ErrorToast(service.UserMessage(err))
	}
	return h.fragment(c, render.FragmentReport, render.ReportView{Report: *out.Report, Synthetic: out.Synthetic}, toast, interviewPanel)
}

// fragment renders into the request target, or into retarget when set.
func (h *InterviewHandler) fragment(c *fiber.Ctx, name string, data any, toast notify.Notification, retarget string) error {
	html, err := h.renderer.String(name, data)
	if err != nil {
		return err
	}
	params := util.FragmentResponseFormat{HTML: html, Toast: &toast}
	if retarget != "" {
		params.Retarget = retarget
		params.Reswap = "innerHTML"
	}
	return util.FragmentResponse(c, params)
}
