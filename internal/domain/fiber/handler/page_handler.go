package handler

import (
	"bytes"
	"log"
	"time"

	"github.com/fadilmartias/careercraft/internal/middleware"
	"github.com/fadilmartias/careercraft/internal/model"
	"github.com/fadilmartias/careercraft/internal/notify"
	"github.com/fadilmartias/careercraft/internal/render"
	"github.com/fadilmartias/careercraft/internal/response"
	"github.com/fadilmartias/careercraft/internal/service"
	"github.com/fadilmartias/careercraft/internal/usecase"
	"github.com/fadilmartias/careercraft/internal/util"
	"github.com/gofiber/fiber/v2"
)

const themeCookie = "theme"

// PageHandler serves the five pages, the theme toggle and the session
// summary.
type PageHandler struct {
	appName  string
	renderer *render.Renderer
	themes   *usecase.ThemeUsecase
	secure   bool
}

func NewPageHandler(appName string, renderer *render.Renderer, themes *usecase.ThemeUsecase, secure bool) *PageHandler {
	return &PageHandler{appName: appName, renderer: renderer, themes: themes, secure: secure}
}

func (h *PageHandler) RegisterRoutes(app *fiber.App) {
	for _, p := range render.Pages {
		app.Get(p.Path, h.page(p))
	}
	app.Post("/ui/theme/toggle", h.ToggleTheme)
	app.Get("/api/session", h.Session)
}

func (h *PageHandler) page(p render.Page) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data := render.NewPageData(h.appName, p, h.theme(c), c.Query("tab"), usecase.EmailTypes)
		var buf bytes.Buffer
		if err := h.renderer.Page(&buf, data); err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.Send(buf.Bytes())
	}
}

// theme reads the stored preference, falling back to the cookie when the
// store is unavailable.
func (h *PageHandler) theme(c *fiber.Ctx) model.Theme {
	theme, err := h.themes.Current(c.UserContext(), middleware.SessionFrom(c).VisitorID)
	if err == nil {
		return theme
	}
	log.Printf("Failed to load theme preference: %v", err)
	if cookie, err := model.ParseTheme(c.Cookies(themeCookie)); err == nil {
		return cookie
	}
	return model.DefaultTheme
}

func (h *PageHandler) ToggleTheme(c *fiber.Ctx) error {
	theme, err := h.themes.Toggle(c.UserContext(), middleware.SessionFrom(c).VisitorID)
	if err != nil {
		log.Printf("Failed to save theme preference: %v", err)
		return util.ToastResponse(c, fiber.StatusInternalServerError, notify.ErrorToast("Could not save your theme."))
	}
	c.Cookie(&fiber.Cookie{
		Name:     themeCookie,
		Value:    string(theme),
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	html, err := h.renderer.String(render.FragmentThemeToggle, render.ThemeToggleView{Theme: theme})
	if err != nil {
		return err
	}
	toast := notify.InfoToast("Switched to " + string(theme) + " theme.")
	return util.FragmentResponse(c, util.FragmentResponseFormat{
		HTML:    html,
		Toast:   &toast,
		Trigger: map[string]any{"theme-changed": string(theme)},
	})
}

func (h *PageHandler) Session(c *fiber.Ctx) error {
	s := middleware.SessionFrom(c)
	status, err := usecase.NewCareerCraftUsecase(s.Backend).CVStatus(c.UserContext())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: service.UserMessage(err),
		}, err)
	}

	current, total := s.Interview.Progress()
	data := response.SessionStatus{
		VisitorID:  s.VisitorID.String(),
		Theme:      string(h.theme(c)),
		CVUploaded: status.Uploaded,
		AIEnabled:  status.AIEnabled,
		Interview: response.InterviewStatus{
			State:   string(s.Interview.State()),
			Current: current,
			Total:   total,
		},
	}
	if current > 0 {
		data.Interview.Counter = s.Interview.Counter()
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get session",
		Data:    data,
	})
}
