package usecase

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"

	"github.com/fadilmartias/careercraft/internal/dto"
	"github.com/fadilmartias/careercraft/internal/service"
	"github.com/fadilmartias/careercraft/internal/util"
	"golang.org/x/sync/errgroup"
)

// EmailTypes lists the outreach emails the backend knows how to write, in
// the order the form offers them.
var EmailTypes = []string{"application", "follow_up", "thank_you", "networking", "cold_outreach"}

// DownloadFilename is the name offered for a typeset PDF.
const DownloadFilename = "CareerCraft_Document.pdf"

// CareerCraftUsecase runs the page operations for one visitor: check local
// input, make one backend call, and shape the reply for rendering.
type CareerCraftUsecase struct {
	backend service.CareerCraftServiceInterface
}

func NewCareerCraftUsecase(backend service.CareerCraftServiceInterface) *CareerCraftUsecase {
	return &CareerCraftUsecase{backend: backend}
}

// UploadCV forwards a CV and re-reads the upload flag so the service cards
// reflect the backend's view.
func (uc *CareerCraftUsecase) UploadCV(ctx context.Context, filename string, data []byte) (dto.CVStatus, error) {
	if err := util.ValidateUpload(filename, data); err != nil {
		return dto.CVStatus{}, service.NewValidationError("upload cv", uploadMessage(err))
	}

	body, err := uc.backend.UploadCV(ctx, filename, bytes.NewReader(data))
	if err != nil {
		return dto.CVStatus{}, err
	}
	if res := dto.ParseUploadResult(body); !res.Success {
		return dto.CVStatus{}, &service.Error{Kind: service.KindServer, Op: "upload cv", Message: "An unknown error occurred."}
	}
	log.Printf("CV %q uploaded (%d bytes)", filename, len(data))

	return uc.CVStatus(ctx)
}

func uploadMessage(err error) string {
	for _, known := range []error{util.ErrNoFile, util.ErrFileTooLarge, util.ErrCorruptDocument} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return err.Error()
}

func (uc *CareerCraftUsecase) CVStatus(ctx context.Context) (dto.CVStatus, error) {
	body, err := uc.backend.CheckCVStatus(ctx)
	if err != nil {
		return dto.CVStatus{}, err
	}
	return dto.ParseCVStatus(body), nil
}

func (uc *CareerCraftUsecase) Review(ctx context.Context, jobDescription string) (dto.ReviewResult, error) {
	body, err := uc.backend.AnalyzeCV(ctx, service.AnalysisReview, strings.TrimSpace(jobDescription))
	if err != nil {
		return dto.ReviewResult{}, err
	}
	return dto.ParseReviewResult(body), nil
}

func (uc *CareerCraftUsecase) ScanATS(ctx context.Context) (dto.ATSResult, error) {
	body, err := uc.backend.AnalyzeCV(ctx, service.AnalysisATS, "")
	if err != nil {
		return dto.ATSResult{}, err
	}
	return dto.ParseATSResult(body), nil
}

// ScanATSWithKeywords runs the ATS scan and a review for keyword gaps at the
// same time. The pair succeeds or fails together.
func (uc *CareerCraftUsecase) ScanATSWithKeywords(ctx context.Context, jobDescription string) (dto.ATSKeywordResult, error) {
	var out dto.ATSKeywordResult
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		ats, err := uc.ScanATS(gctx)
		out.ATS = ats
		return err
	})
	g.Go(func() error {
		review, err := uc.Review(gctx, jobDescription)
		out.Review = review
		return err
	})
	if err := g.Wait(); err != nil {
		return dto.ATSKeywordResult{}, err
	}
	return out, nil
}

func (uc *CareerCraftUsecase) Rewrite(ctx context.Context) (dto.RewriteResult, error) {
	body, err := uc.backend.AnalyzeCV(ctx, service.AnalysisRewrite, "")
	if err != nil {
		return dto.RewriteResult{}, err
	}
	return dto.ParseRewriteResult(body), nil
}

func (uc *CareerCraftUsecase) MatchJob(ctx context.Context, jobDescription string) (dto.MatchResult, error) {
	jobDescription = strings.TrimSpace(jobDescription)
	if jobDescription == "" {
		return dto.MatchResult{}, service.NewValidationError("match job", "Please paste a job description.")
	}
	body, err := uc.backend.AnalyzeCV(ctx, service.AnalysisJobMatch, jobDescription)
	if err != nil {
		return dto.MatchResult{}, err
	}
	return dto.ParseMatchResult(body), nil
}

func (uc *CareerCraftUsecase) GenerateEmail(ctx context.Context, emailType, emailContext string) (dto.EmailResult, error) {
	if !validEmailType(emailType) {
		return dto.EmailResult{}, service.NewValidationError("generate email", "Please choose an email type.")
	}
	body, err := uc.backend.GenerateEmail(ctx, emailType, strings.TrimSpace(emailContext))
	if err != nil {
		return dto.EmailResult{}, err
	}
	return dto.ParseEmailResult(body), nil
}

func validEmailType(t string) bool {
	for _, known := range EmailTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (uc *CareerCraftUsecase) InterviewQuestions(ctx context.Context, jobDescription string) (dto.QuestionList, error) {
	body, err := uc.backend.InterviewQuestions(ctx, strings.TrimSpace(jobDescription))
	if err != nil {
		return dto.QuestionList{}, err
	}
	return dto.ParseQuestionList(body), nil
}

func (uc *CareerCraftUsecase) AnswerTemplate(ctx context.Context, question string) (dto.AnswerTemplates, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return dto.AnswerTemplates{}, service.NewValidationError("answer template", "Please enter a question.")
	}
	body, err := uc.backend.AnswerTemplate(ctx, question)
	if err != nil {
		return dto.AnswerTemplates{}, err
	}
	return dto.ParseAnswerTemplates(body, question), nil
}

func (uc *CareerCraftUsecase) CareerPaths(ctx context.Context) (dto.CareerPaths, error) {
	body, err := uc.backend.CareerPaths(ctx)
	if err != nil {
		return dto.CareerPaths{}, err
	}
	return dto.ParseCareerPaths(body), nil
}

func (uc *CareerCraftUsecase) ProjectSuggestions(ctx context.Context) (dto.ProjectSuggestions, error) {
	body, err := uc.backend.ProjectSuggestions(ctx)
	if err != nil {
		return dto.ProjectSuggestions{}, err
	}
	return dto.ParseProjectSuggestions(body), nil
}

func (uc *CareerCraftUsecase) MiniCourse(ctx context.Context) (dto.MiniCourse, error) {
	body, err := uc.backend.MiniCourse(ctx)
	if err != nil {
		return dto.MiniCourse{}, err
	}
	return dto.ParseMiniCourse(body), nil
}

func (uc *CareerCraftUsecase) DownloadPDF(ctx context.Context, content string) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, service.NewValidationError("download pdf", "Content to download not found.")
	}
	return uc.backend.DownloadPDF(ctx, content)
}
