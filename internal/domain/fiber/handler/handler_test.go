package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fadilmartias/careercraft/internal/middleware"
	"github.com/fadilmartias/careercraft/internal/render"
	"github.com/fadilmartias/careercraft/internal/repository"
	"github.com/fadilmartias/careercraft/internal/service"
	"github.com/fadilmartias/careercraft/internal/service/servicetest"
	"github.com/fadilmartias/careercraft/internal/session"
	"github.com/fadilmartias/careercraft/internal/testutil"
	"github.com/fadilmartias/careercraft/internal/usecase"
	"github.com/fadilmartias/careercraft/web"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	app     *fiber.App
	backend *servicetest.Backend
	visitor uuid.UUID
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	backend := servicetest.NewBackend()
	registry := session.NewRegistry(time.Hour, func() service.CareerCraftServiceInterface { return backend })
	renderer := render.MustNew()
	themes := usecase.NewThemeUsecase(repository.NewMemoryPreferenceRepository())

	app := fiber.New()
	RegisterStatic(app, web.Static)
	app.Use(middleware.Visitor(registry, false))
	NewPageHandler("CareerCraft Pro", renderer, themes, false).RegisterRoutes(app)
	NewCareerCraftHandler(renderer).RegisterRoutes(app)
	NewInterviewHandler(renderer).RegisterRoutes(app)

	return &testApp{app: app, backend: backend, visitor: uuid.New()}
}

func (a *testApp) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()
	req.AddCookie(&http.Cookie{Name: middleware.VisitorCookie, Value: a.visitor.String()})
	req.Header.Set("HX-Request", "true")
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func (a *testApp) postForm(t *testing.T, path string, form url.Values) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	return a.do(t, req)
}

func parse(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	require.NoError(t, err)
	return doc
}

func toastText(doc *goquery.Document) string {
	return doc.Find("#notifications .notification").Text()
}

func TestAnalyzeReview(t *testing.T) {
	a := newTestApp(t)
	a.backend.Set("analyze:review", `{"score":80,"strengths":["Clear formatting"],"weaknesses":[],"recommendations":["Add metrics"],"missing_keywords":[]}`)

	resp, body := a.postForm(t, "/ui/analyze/review", url.Values{"job_description": {"Go developer"}})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	doc := parse(t, body)
	assert.Equal(t, "80%", doc.Find(".score-value").Text())
	assert.Equal(t, 1, doc.Find(".strengths li").Length())
	assert.Equal(t, "No major weaknesses identified.", strings.TrimSpace(doc.Find(".weaknesses li").Text()))
	assert.Equal(t, 1, doc.Find(".recommendations li").Length())
	assert.Equal(t, "Analysis complete!", toastText(doc))
	assert.Equal(t, "Go developer", a.backend.Last["analyze:review"])
}

func TestAnalyzeBackendError(t *testing.T) {
	a := newTestApp(t)
	a.backend.Fail("analyze:ats", &service.Error{Kind: service.KindServer, Field: "error", Message: "No CV uploaded"})

	resp, body := a.postForm(t, "/ui/analyze/ats", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	doc := parse(t, body)
	assert.Equal(t, "An error occurred: No CV uploaded. Please try again.", doc.Find(".placeholder").Text())
	assert.Equal(t, "Error: No CV uploaded", toastText(doc))
	assert.True(t, doc.Find(".notification").HasClass("notification-error"))
}

func TestValidationWarnsWithoutCallingBackend(t *testing.T) {
	a := newTestApp(t)
	cases := []struct {
		path string
		form url.Values
		want string
	}{
		{"/ui/analyze/job_match", url.Values{"job_description": {"  "}}, "Please paste a job description."},
		{"/ui/interview/answer-template", url.Values{"question": {""}}, "Please enter a question."},
		{"/ui/generate-email", url.Values{"email_type": {"spam"}}, "Please choose an email type."},
		{"/ui/analyze/horoscope", nil, "Unknown analysis type."},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, body := a.postForm(t, tc.path, tc.form)
			assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
			assert.Equal(t, "none", resp.Header.Get("HX-Reswap"))
			doc := parse(t, body)
			assert.Equal(t, tc.want, toastText(doc))
			assert.True(t, doc.Find(".notification").HasClass("notification-warning"))
		})
	}
	assert.Zero(t, a.backend.TotalCalls())
}

func TestUploadCV(t *testing.T) {
	upload := func(t *testing.T, a *testApp, filename string, data []byte) (*http.Response, string) {
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		part, err := w.CreateFormFile("cv_file", filename)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
		require.NoError(t, w.Close())

		req := httptest.NewRequest(http.MethodPost, "/ui/upload-cv", &buf)
		req.Header.Set(fiber.HeaderContentType, w.FormDataContentType())
		return a.do(t, req)
	}

	t.Run("success", func(t *testing.T) {
		a := newTestApp(t)
		a.backend.Set("upload", `{"success":true}`).Set("status", `{"cv_uploaded":true}`)

		resp, body := upload(t, a, "cv.pdf", testutil.MinimalPDF())
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("HX-Trigger"), "cv-status-changed")
		doc := parse(t, body)
		assert.Equal(t, 1, doc.Find("#uploadSuccess").Length())
		assert.Equal(t, "CV uploaded successfully!", toastText(doc))
	})

	t.Run("corrupt pdf", func(t *testing.T) {
		a := newTestApp(t)
		resp, body := upload(t, a, "cv.pdf", []byte("%PDF-garbage"))
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "The file appears to be corrupted", toastText(parse(t, body)))
		assert.Zero(t, a.backend.TotalCalls())
	})

	t.Run("backend failure", func(t *testing.T) {
		a := newTestApp(t)
		a.backend.Fail("upload", &service.Error{Kind: service.KindServer, Field: "error", Message: "Could not extract text"})
		resp, body := upload(t, a, "cv.txt", []byte("Jane Doe"))
		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
		assert.Equal(t, "Error: Could not extract text", toastText(parse(t, body)))
	})

	t.Run("missing file", func(t *testing.T) {
		a := newTestApp(t)
		resp, body := a.postForm(t, "/ui/upload-cv", nil)
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, "Invalid or no file selected", toastText(parse(t, body)))
	})
}

func TestServiceCards(t *testing.T) {
	a := newTestApp(t)
	a.backend.Set("status", `{"cv_uploaded":false}`)

	resp, body := a.do(t, httptest.NewRequest(http.MethodGet, "/ui/service-cards", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	doc := parse(t, body)
	assert.Equal(t, doc.Find(".service-card").Length(), doc.Find(".service-card.disabled").Length())
	assert.Empty(t, toastText(doc))
}

func TestDownload(t *testing.T) {
	t.Run("valid pdf", func(t *testing.T) {
		a := newTestApp(t)
		a.backend.Replies["download"] = servicetest.Reply{Body: testutil.MinimalPDF()}

		resp, body := a.postForm(t, "/ui/download", url.Values{"content": {"Subject: Hi\n\nBody"}})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
		assert.Equal(t, `attachment; filename="CareerCraft_Document.pdf"`, resp.Header.Get(fiber.HeaderContentDisposition))
		assert.Equal(t, string(testutil.MinimalPDF()), body)
	})

	t.Run("not a pdf", func(t *testing.T) {
		a := newTestApp(t)
		a.backend.Fail("download", &service.Error{Kind: service.KindShape, Message: "Server did not return a valid PDF file."})

		resp, body := a.postForm(t, "/ui/download", url.Values{"content": {"text"}})
		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
		assert.Empty(t, resp.Header.Get(fiber.HeaderContentDisposition))
		assert.Equal(t, "Download Error: Server did not return a valid PDF file.", toastText(parse(t, body)))
	})

	t.Run("no content", func(t *testing.T) {
		a := newTestApp(t)
		resp, _ := a.postForm(t, "/ui/download", url.Values{"content": {" "}})
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
		assert.Empty(t, resp.Header.Get(fiber.HeaderContentDisposition))
		assert.Zero(t, a.backend.TotalCalls())
	})
}

func TestInterviewFlow(t *testing.T) {
	a := newTestApp(t)
	a.backend.Set("start", `{"success":true,"question":"Tell me about yourself.","question_number":1,"total_questions":5}`)

	_, body := a.postForm(t, "/ui/interview/start", url.Values{"job_description": {"SRE"}})
	doc := parse(t, body)
	assert.Equal(t, "Question 1 of 5", doc.Find("#questionCounter").Text())
	assert.Equal(t, "Tell me about yourself.", doc.Find(".message.interviewer p").Text())

	resp, _ := a.postForm(t, "/ui/interview/answer", url.Values{"answer": {"   "}})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Zero(t, a.backend.Calls("answer"))

	a.backend.Fail("answer", &service.Error{Kind: service.KindServer, Status: 500, Message: "Server error"})
	resp, body = a.postForm(t, "/ui/interview/answer", url.Values{"answer": {"I run on-call."}})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	doc = parse(t, body)
	assert.Equal(t, "I run on-call.", doc.Find(".message.user p").Text())
	assert.Equal(t, 1, doc.Find(".message.interviewer.error").Length())

	a.backend.Set("answer", `{"success":true,"question":"Why SRE?","question_number":2,"total_questions":5}`)
	_, body = a.postForm(t, "/ui/interview/answer", url.Values{"answer": {"I run on-call."}})
	doc = parse(t, body)
	assert.Equal(t, "Question 2 of 5", doc.Find("#questionCounter").Text())

	a.backend.Set("end", `{"success":true,"report":{"strengths":["Calm"],"weaknesses":[],"tips":["Quantify impact"]}}`)
	resp, body = a.postForm(t, "/ui/interview/end", nil)
	assert.Equal(t, "#interview-panel", resp.Header.Get("HX-Retarget"))
	doc = parse(t, body)
	assert.Equal(t, "Calm", doc.Find(".strengths li").Text())
	assert.Equal(t, "No specific weaknesses were identified.", strings.TrimSpace(doc.Find(".weaknesses li").Text()))
	assert.Equal(t, "Interview ended. Here is your report.", toastText(doc))
}

func TestInterviewStartFailureRestoresSetup(t *testing.T) {
	a := newTestApp(t)
	a.backend.Fail("start", &service.Error{Kind: service.KindServer, Field: "error", Message: "No CV uploaded"})

	resp, body := a.postForm(t, "/ui/interview/start", url.Values{"job_description": {"SRE"}})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	doc := parse(t, body)
	assert.Equal(t, "An error occurred: No CV uploaded. Please try again.", doc.Find(".placeholder").Text())
	assert.Equal(t, 1, doc.Find(`form[hx-post="/ui/interview/start"]`).Length())
	assert.Equal(t, "SRE", doc.Find("#mockJobDescription").Text())
}

func TestInterviewReportErrorRendersSyntheticReport(t *testing.T) {
	a := newTestApp(t)
	a.backend.Set("start", `{"success":true,"question":"Q1","question_number":1,"total_questions":3}`)
	a.postForm(t, "/ui/interview/start", nil)
	a.backend.Fail("answer", &service.Error{Kind: service.KindServer, Field: "report_error", Message: "Model unavailable"})

	resp, body := a.postForm(t, "/ui/interview/answer", url.Values{"answer": {"A1"}})
	assert.Equal(t, "#interview-panel", resp.Header.Get("HX-Retarget"))
	doc := parse(t, body)
	assert.Equal(t, 1, doc.Find(".interview-feedback.degraded").Length())
	assert.Equal(t, "An error occurred: Model unavailable", doc.Find(".weaknesses li").Text())
}

func TestThemeToggle(t *testing.T) {
	a := newTestApp(t)

	_, body := a.do(t, httptest.NewRequest(http.MethodGet, "/cv-services", nil))
	theme, _ := parse(t, body).Find("html").Attr("data-theme")
	assert.Equal(t, "dark", theme)

	resp, _ := a.postForm(t, "/ui/theme/toggle", nil)
	assert.JSONEq(t, `{"theme-changed":"light"}`, resp.Header.Get("HX-Trigger"))

	_, body = a.do(t, httptest.NewRequest(http.MethodGet, "/cv-services?tab=cv-rewriter", nil))
	doc := parse(t, body)
	theme, _ = doc.Find("html").Attr("data-theme")
	assert.Equal(t, "light", theme)
	assert.Equal(t, "cv-rewriter", doc.Find(".tab-content.active").AttrOr("id", ""))

	resp, _ = a.postForm(t, "/ui/theme/toggle", nil)
	assert.JSONEq(t, `{"theme-changed":"dark"}`, resp.Header.Get("HX-Trigger"))
}

func TestStaticAssets(t *testing.T) {
	a := newTestApp(t)
	resp, body := a.do(t, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "htmx:beforeRequest")
}

func TestSessionStatus(t *testing.T) {
	a := newTestApp(t)
	a.backend.Set("status", `{"cv_uploaded":true,"ai_enabled":true}`)

	resp, body := a.do(t, httptest.NewRequest(http.MethodGet, "/api/session", nil))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `"cv_uploaded":true`)
	assert.Contains(t, body, `"state":"setup"`)
	assert.Contains(t, body, a.visitor.String())
}
