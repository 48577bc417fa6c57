package handler

import (
	"errors"
	"io"
	"time"

	"github.com/fadilmartias/careercraft/internal/dto"
	"github.com/fadilmartias/careercraft/internal/middleware"
	"github.com/fadilmartias/careercraft/internal/notify"
	"github.com/fadilmartias/careercraft/internal/render"
	"github.com/fadilmartias/careercraft/internal/service"
	"github.com/fadilmartias/careercraft/internal/usecase"
	"github.com/fadilmartias/careercraft/internal/util"
	"github.com/gofiber/fiber/v2"
)

// CareerCraftHandler serves the CV, job matcher, question bank and
// upskilling operations.
type CareerCraftHandler struct {
	renderer *render.Renderer
}

func NewCareerCraftHandler(renderer *render.Renderer) *CareerCraftHandler {
	return &CareerCraftHandler{renderer: renderer}
}

func (h *CareerCraftHandler) RegisterRoutes(app *fiber.App) {
	ui := app.Group("/ui")
	ui.Post("/upload-cv", middleware.RateLimiter(5, 1*time.Minute), h.UploadCV)
	ui.Get("/service-cards", h.ServiceCards)
	ui.Post("/analyze/:type", h.Analyze)
	ui.Post("/generate-email", h.GenerateEmail)
	ui.Post("/interview/questions", h.InterviewQuestions)
	ui.Post("/interview/answer-template", h.AnswerTemplate)
	ui.Post("/career-paths", h.CareerPaths)
	ui.Post("/project-suggestions", h.ProjectSuggestions)
	ui.Post("/mini-course", h.MiniCourse)
	ui.Post("/download", h.Download)
}

func (h *CareerCraftHandler) usecase(c *fiber.Ctx) *usecase.CareerCraftUsecase {
	return usecase.NewCareerCraftUsecase(middleware.SessionFrom(c).Backend)
}

func (h *CareerCraftHandler) UploadCV(c *fiber.Ctx) error {
	filename, data, err := readUpload(c, "cv_file")
	if err != nil {
		return warn(c, service.NewValidationError("upload cv", err.Error()))
	}

	if _, err := h.usecase(c).UploadCV(c.UserContext(), filename, data); err != nil {
		if isValidation(err) {
			return warn(c, err)
		}
		return gatewayFailure(c, notify.ErrorToast(service.UserMessage(err)), err)
	}

	html, err := h.renderer.String(render.FragmentUploadSuccess, nil)
	if err != nil {
		return err
	}
	toast := notify.SuccessToast("CV uploaded successfully!")
	return util.FragmentResponse(c, util.FragmentResponseFormat{
		HTML:    html,
		Toast:   &toast,
		Trigger: map[string]any{"cv-status-changed": true},
	})
}

func readUpload(c *fiber.Ctx, field string) (string, []byte, error) {
	header, err := c.FormFile(field)
	if err != nil {
		return "", nil, util.ErrNoFile
	}
	if header.Size > util.MaxUploadSize {
		return "", nil, util.ErrFileTooLarge
	}
	f, err := header.Open()
	if err != nil {
		return "", nil, util.ErrNoFile
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, util.MaxUploadSize+1))
	if err != nil {
		return "", nil, util.ErrCorruptDocument
	}
	return header.Filename, data, nil
}

func (h *CareerCraftHandler) ServiceCards(c *fiber.Ctx) error {
	status, err := h.usecase(c).CVStatus(c.UserContext())
	params := util.FragmentResponseFormat{}
	if err != nil {
		// Keep the cards locked until the backend answers.
		status = dto.CVStatus{AIEnabled: true}
		toast := notify.ErrorToast(service.UserMessage(err))
		params.Toast = &toast
	}
	html, rerr := h.renderer.String(render.FragmentServiceCards, render.NewServiceCardsView(status))
	if rerr != nil {
		return rerr
	}
	params.HTML = html
	return util.FragmentResponse(c, params)
}

func (h *CareerCraftHandler) Analyze(c *fiber.Ctx) error {
	uc := h.usecase(c)
	ctx := c.UserContext()
	jd := c.FormValue("job_description")

	switch service.AnalysisType(c.Params("type")) {
	case service.AnalysisReview:
		res, err := uc.Review(ctx, jd)
		return results(c, h.renderer, render.FragmentReview, res, err, "Analysis complete!")
	case service.AnalysisATS:
		res, err := uc.ScanATS(ctx)
		return results(c, h.renderer, render.FragmentATS, res, err, "ATS Scan complete!")
	case "ats_keywords":
		res, err := uc.ScanATSWithKeywords(ctx, jd)
		return results(c, h.renderer, render.FragmentATSKeywords, res, err, "ATS and keyword scan complete!")
	case service.AnalysisRewrite:
		res, err := uc.Rewrite(ctx)
		return results(c, h.renderer, render.FragmentRewrite, res, err, "CV rewrite complete!")
	case service.AnalysisJobMatch:
		res, err := uc.MatchJob(ctx, jd)
		return results(c, h.renderer, render.FragmentMatch, res, err, "Job match analysis complete!")
	}
	return warn(c, service.NewValidationError("analyze cv", "Unknown analysis type."))
}

func (h *CareerCraftHandler) GenerateEmail(c *fiber.Ctx) error {
	res, err := h.usecase(c).GenerateEmail(c.UserContext(), c.FormValue("email_type"), c.FormValue("context"))
	return results(c, h.renderer, render.FragmentEmail, res, err, "Email generated!")
}

func (h *CareerCraftHandler) InterviewQuestions(c *fiber.Ctx) error {
	res, err := h.usecase(c).InterviewQuestions(c.UserContext(), c.FormValue("job_description"))
	return results(c, h.renderer, render.FragmentQuestions, res, err, "Interview questions ready!")
}

func (h *CareerCraftHandler) AnswerTemplate(c *fiber.Ctx) error {
	res, err := h.usecase(c).AnswerTemplate(c.UserContext(), c.FormValue("question"))
	return results(c, h.renderer, render.FragmentTemplates, res, err, "Answer templates ready!")
}

func (h *CareerCraftHandler) CareerPaths(c *fiber.Ctx) error {
	res, err := h.usecase(c).CareerPaths(c.UserContext())
	return results(c, h.renderer, render.FragmentCareerPaths, res, err, "Career paths loaded!")
}

func (h *CareerCraftHandler) ProjectSuggestions(c *fiber.Ctx) error {
	res, err := h.usecase(c).ProjectSuggestions(c.UserContext())
	return results(c, h.renderer, render.FragmentProjects, res, err, "Project ideas loaded!")
}

func (h *CareerCraftHandler) MiniCourse(c *fiber.Ctx) error {
	res, err := h.usecase(c).MiniCourse(c.UserContext())
	return results(c, h.renderer, render.FragmentCourse, res, err, "Your mini course is ready!")
}

// Download streams the PDF only when the backend produced a real one.
func (h *CareerCraftHandler) Download(c *fiber.Ctx) error {
	pdf, err := h.usecase(c).DownloadPDF(c.UserContext(), c.FormValue("content"))
	if err != nil {
		if isValidation(err) {
			return warn(c, err)
		}
		var svcErr *service.Error
		if !errors.As(err, &svcErr) {
			return err
		}
		return gatewayFailure(c, notify.New(notify.Error, "Download Error: "+svcErr.Message), err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+usecase.DownloadFilename+`"`)
	return c.Send(pdf)
}
