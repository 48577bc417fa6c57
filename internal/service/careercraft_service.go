package service

import (
	"context"
	"io"
	"log"
	"mime"
	"net/http"
	"net/url"

	"github.com/fadilmartias/careercraft/internal/config"
	"github.com/fadilmartias/careercraft/internal/util"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

type AnalysisType string

const (
	AnalysisReview   AnalysisType = "review"
	AnalysisATS      AnalysisType = "ats"
	AnalysisRewrite  AnalysisType = "rewrite"
	AnalysisJobMatch AnalysisType = "job_match"
)

// CareerCraftServiceInterface is the backend as seen by the front. JSON
// operations return the raw body; the dto package reads it.
type CareerCraftServiceInterface interface {
	UploadCV(ctx context.Context, filename string, r io.Reader) ([]byte, error)
	CheckCVStatus(ctx context.Context) ([]byte, error)
	AnalyzeCV(ctx context.Context, analysisType AnalysisType, jobDescription string) ([]byte, error)
	GenerateEmail(ctx context.Context, emailType, emailContext string) ([]byte, error)
	StartInterview(ctx context.Context, jobDescription string) ([]byte, error)
	SubmitAnswer(ctx context.Context, answer string) ([]byte, error)
	EndInterview(ctx context.Context) ([]byte, error)
	InterviewQuestions(ctx context.Context, jobDescription string) ([]byte, error)
	AnswerTemplate(ctx context.Context, question string) ([]byte, error)
	CareerPaths(ctx context.Context) ([]byte, error)
	ProjectSuggestions(ctx context.Context) ([]byte, error)
	MiniCourse(ctx context.Context) ([]byte, error)
	DownloadPDF(ctx context.Context, content string) ([]byte, error)
}

// CareerCraftService talks to the backend over JSON/HTTP. The backend keeps
// the uploaded CV and interview progress in its cookie session, so each
// service owns a cookie jar and must not be shared between visitors.
type CareerCraftService struct {
	client  *resty.Client
	baseURL *url.URL
}

func NewCareerCraftService(cfg *config.BackendConfig) *CareerCraftService {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	client.OnError(func(req *resty.Request, err error) {
		log.Printf("backend %s %s failed: %v", req.Method, req.URL, err)
	})
	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil {
		log.Printf("Warning: backend url %q is not a valid URL: %v", cfg.BaseURL, err)
	}
	return &CareerCraftService{client: client, baseURL: baseURL}
}

// Cookies returns the backend session cookies held for the base URL. The
// terminal client saves them so consecutive commands share one session.
func (s *CareerCraftService) Cookies() []*http.Cookie {
	jar := s.client.GetClient().Jar
	if jar == nil || s.baseURL == nil {
		return nil
	}
	return jar.Cookies(s.baseURL)
}

func (s *CareerCraftService) RestoreCookies(cookies []*http.Cookie) {
	jar := s.client.GetClient().Jar
	if jar == nil || s.baseURL == nil || len(cookies) == 0 {
		return
	}
	jar.SetCookies(s.baseURL, cookies)
}

func (s *CareerCraftService) UploadCV(ctx context.Context, filename string, r io.Reader) ([]byte, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetFileReader("cv_file", filename, r).
		Post("/upload-cv")
	if err != nil {
		return nil, newTransportError("upload cv", err)
	}
	return checkJSON("upload cv", resp)
}

func (s *CareerCraftService) CheckCVStatus(ctx context.Context) ([]byte, error) {
	resp, err := s.client.R().SetContext(ctx).Get("/check-cv-status")
	if err != nil {
		return nil, newTransportError("check cv status", err)
	}
	return checkJSON("check cv status", resp)
}

func (s *CareerCraftService) AnalyzeCV(ctx context.Context, analysisType AnalysisType, jobDescription string) ([]byte, error) {
	return s.postJSON(ctx, "analyze cv", "/analyze-cv", map[string]string{
		"analysis_type":   string(analysisType),
		"job_description": jobDescription,
	})
}

func (s *CareerCraftService) GenerateEmail(ctx context.Context, emailType, emailContext string) ([]byte, error) {
	return s.postJSON(ctx, "generate email", "/generate-email", map[string]string{
		"email_type": emailType,
		"context":    emailContext,
	})
}

func (s *CareerCraftService) StartInterview(ctx context.Context, jobDescription string) ([]byte, error) {
	return s.postJSON(ctx, "start interview", "/start-mock-interview", map[string]string{
		"job_description": jobDescription,
	})
}

func (s *CareerCraftService) SubmitAnswer(ctx context.Context, answer string) ([]byte, error) {
	return s.postJSON(ctx, "submit answer", "/submit-answer", map[string]string{
		"answer": answer,
	})
}

func (s *CareerCraftService) EndInterview(ctx context.Context) ([]byte, error) {
	return s.postJSON(ctx, "end interview", "/end-mock-interview", nil)
}

func (s *CareerCraftService) InterviewQuestions(ctx context.Context, jobDescription string) ([]byte, error) {
	return s.postJSON(ctx, "interview questions", "/generate-interview-questions-list", map[string]string{
		"job_description": jobDescription,
	})
}

func (s *CareerCraftService) AnswerTemplate(ctx context.Context, question string) ([]byte, error) {
	return s.postJSON(ctx, "answer template", "/answer-template", map[string]string{
		"question": question,
	})
}

func (s *CareerCraftService) CareerPaths(ctx context.Context) ([]byte, error) {
	return s.postJSON(ctx, "career paths", "/career-paths", nil)
}

func (s *CareerCraftService) ProjectSuggestions(ctx context.Context) ([]byte, error) {
	return s.postJSON(ctx, "project suggestions", "/project-suggestions", nil)
}

func (s *CareerCraftService) MiniCourse(ctx context.Context) ([]byte, error) {
	return s.postJSON(ctx, "mini course", "/mini-course", nil)
}

// DownloadPDF asks the backend to typeset content and returns the PDF bytes.
// Anything that is not a readable application/pdf body is an error.
func (s *CareerCraftService) DownloadPDF(ctx context.Context, content string) ([]byte, error) {
	const op = "download pdf"
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/pdf, application/json").
		SetBody(map[string]string{"cv_content": content}).
		Post("/download-cv")
	if err != nil {
		return nil, newTransportError(op, err)
	}

	body := resp.Body()
	if !resp.IsSuccess() {
		msg := gjson.GetBytes(body, "error").String()
		if msg == "" {
			msg = "PDF generation failed on server."
		}
		return nil, &Error{Kind: KindServer, Op: op, Message: msg, Status: resp.StatusCode(), Field: "error"}
	}

	mediaType, _, _ := mime.ParseMediaType(resp.Header().Get("Content-Type"))
	if mediaType != "application/pdf" {
		return nil, newShapeError(op, "Server did not return a valid PDF file.")
	}
	if _, err := util.PDFPageCount(body); err != nil {
		log.Printf("%s: unreadable pdf body (%d bytes): %v", op, len(body), err)
		return nil, newShapeError(op, "Server did not return a valid PDF file.")
	}
	return body, nil
}

func (s *CareerCraftService) postJSON(ctx context.Context, op, path string, payload any) ([]byte, error) {
	req := s.client.R().SetContext(ctx)
	if payload != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(payload)
	}
	resp, err := req.Post(path)
	if err != nil {
		return nil, newTransportError(op, err)
	}
	return checkJSON(op, resp)
}

// checkJSON turns a backend reply into a body or an *Error. The backend
// reports application failures through "error" or "report_error" fields,
// sometimes with a 200 status, so the fields win over the status code.
func checkJSON(op string, resp *resty.Response) ([]byte, error) {
	body := resp.Body()
	status := resp.StatusCode()

	if !gjson.ValidBytes(body) {
		if status/100 != 2 {
			return nil, &Error{Kind: KindServer, Op: op, Message: "Server error", Status: status}
		}
		return nil, &Error{Kind: KindShape, Op: op, Message: "An unexpected response was received.", Status: status}
	}

	for _, field := range []string{"report_error", "error"} {
		if msg := gjson.GetBytes(body, field); truthy(msg) {
			return nil, &Error{Kind: KindServer, Op: op, Message: msg.String(), Status: status, Field: field}
		}
	}

	if status/100 != 2 {
		return nil, &Error{Kind: KindServer, Op: op, Message: "Server error", Status: status}
	}
	if status == http.StatusNoContent || len(body) == 0 {
		return nil, newShapeError(op, "An unexpected response was received.")
	}
	return body, nil
}

// truthy reports whether an error field is set. false, null, 0 and "" mean
// no error.
func truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.False, gjson.Null:
		return false
	case gjson.Number:
		return r.Num != 0
	case gjson.String:
		return r.Str != ""
	}
	return r.Exists()
}

var _ CareerCraftServiceInterface = (*CareerCraftService)(nil)
