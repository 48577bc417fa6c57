package usecase

import (
	"context"
	"testing"

	"github.com/fadilmartias/careercraft/internal/service"
	"github.com/fadilmartias/careercraft/internal/service/servicetest"
	"github.com/fadilmartias/careercraft/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadCV(t *testing.T) {
	ctx := context.Background()

	t.Run("valid file refreshes status", func(t *testing.T) {
		backend := servicetest.NewBackend().
			Set("upload", `{"success":true,"message":"CV uploaded"}`).
			Set("status", `{"cv_uploaded":true,"ai_enabled":false}`)
		uc := NewCareerCraftUsecase(backend)

		status, err := uc.UploadCV(ctx, "cv.pdf", testutil.MinimalPDF())
		require.NoError(t, err)
		assert.True(t, status.Uploaded)
		assert.False(t, status.AIEnabled)
		assert.Equal(t, 1, backend.Calls("status"))
	})

	t.Run("rejected locally", func(t *testing.T) {
		backend := servicetest.NewBackend()
		uc := NewCareerCraftUsecase(backend)

		_, err := uc.UploadCV(ctx, "cv.exe", []byte("MZ"))
		require.Error(t, err)
		assert.Equal(t, service.KindValidation, service.KindOf(err))
		assert.Equal(t, "Invalid or no file selected", service.UserMessage(err))

		_, err = uc.UploadCV(ctx, "cv.pdf", []byte("not a pdf"))
		assert.Equal(t, "The file appears to be corrupted", service.UserMessage(err))
		assert.Zero(t, backend.TotalCalls())
	})

	t.Run("success false", func(t *testing.T) {
		backend := servicetest.NewBackend().Set("upload", `{"success":false}`)
		uc := NewCareerCraftUsecase(backend)

		_, err := uc.UploadCV(ctx, "cv.txt", []byte("Jane Doe"))
		assert.Equal(t, "An unknown error occurred.", service.UserMessage(err))
		assert.Zero(t, backend.Calls("status"))
	})
}

func TestReviewTrimsJobDescription(t *testing.T) {
	backend := servicetest.NewBackend().
		Set("analyze:review", `{"score":"80","strengths":["Clear"],"weaknesses":[],"recommendations":["Add metrics"]}`)
	uc := NewCareerCraftUsecase(backend)

	res, err := uc.Review(context.Background(), "  Go developer \n")
	require.NoError(t, err)
	assert.Equal(t, 80, res.Score)
	assert.Equal(t, []string{"Clear"}, res.Strengths)
	assert.Empty(t, res.Weaknesses)
	assert.Equal(t, "Go developer", backend.Last["analyze:review"])
}

func TestScanATSWithKeywords(t *testing.T) {
	ctx := context.Background()

	t.Run("both succeed", func(t *testing.T) {
		backend := servicetest.NewBackend().
			Set("analyze:ats", `{"ats_score":72,"format_issues":["Tables"],"improvements":[]}`).
			Set("analyze:review", `{"score":60,"missing_keywords":["Kubernetes"]}`)
		uc := NewCareerCraftUsecase(backend)

		res, err := uc.ScanATSWithKeywords(ctx, "Platform engineer")
		require.NoError(t, err)
		assert.Equal(t, 72, res.ATS.ATSScore)
		assert.Equal(t, []string{"Kubernetes"}, res.Review.MissingKeywords)
	})

	t.Run("one fails", func(t *testing.T) {
		backend := servicetest.NewBackend().
			Set("analyze:ats", `{"ats_score":72}`).
			Fail("analyze:review", &service.Error{Kind: service.KindServer, Message: "No CV uploaded"})
		uc := NewCareerCraftUsecase(backend)

		_, err := uc.ScanATSWithKeywords(ctx, "")
		assert.Equal(t, "No CV uploaded", service.UserMessage(err))
	})
}

func TestValidationNeverCallsBackend(t *testing.T) {
	ctx := context.Background()
	backend := servicetest.NewBackend()
	uc := NewCareerCraftUsecase(backend)

	_, err := uc.MatchJob(ctx, "   ")
	assert.Equal(t, "Please paste a job description.", service.UserMessage(err))

	_, err = uc.GenerateEmail(ctx, "love_letter", "hi")
	assert.Equal(t, "Please choose an email type.", service.UserMessage(err))

	_, err = uc.AnswerTemplate(ctx, "")
	assert.Equal(t, "Please enter a question.", service.UserMessage(err))

	_, err = uc.DownloadPDF(ctx, "\n")
	assert.Equal(t, "Content to download not found.", service.UserMessage(err))

	assert.Zero(t, backend.TotalCalls())
}

func TestGenerateEmail(t *testing.T) {
	backend := servicetest.NewBackend().
		Set("email", `{"subject":"Application for Go Engineer","email_body":"Dear team,","tips":["Keep it short"]}`)
	uc := NewCareerCraftUsecase(backend)

	res, err := uc.GenerateEmail(context.Background(), "follow_up", " recruiter Sam ")
	require.NoError(t, err)
	assert.Equal(t, "Subject: Application for Go Engineer\n\nDear team,", res.Document())
	assert.Equal(t, "follow_up|recruiter Sam", backend.Last["email"])
}

func TestAnswerTemplateEchoesQuestion(t *testing.T) {
	backend := servicetest.NewBackend().Set("template", `{"answers":["Use STAR"]}`)
	uc := NewCareerCraftUsecase(backend)

	res, err := uc.AnswerTemplate(context.Background(), "Tell me about yourself")
	require.NoError(t, err)
	assert.Equal(t, "Tell me about yourself", res.Question)
	assert.Equal(t, []string{"Use STAR"}, res.Answers)
}

func TestUpskilling(t *testing.T) {
	ctx := context.Background()
	backend := servicetest.NewBackend().
		Set("career_paths", `{"career_paths":[{"path":"SRE","required_skills":["Linux"],"transition_steps":["Get on call"]}]}`).
		Set("projects", `{"projects":[{"idea":"CLI tool","skills_developed":["Go"],"estimated_time":"2 weeks"}]}`).
		Set("course", `{"title":"Intro to Go","objectives":["Write tests"],"modules":["Basics"]}`)
	uc := NewCareerCraftUsecase(backend)

	paths, err := uc.CareerPaths(ctx)
	require.NoError(t, err)
	require.Len(t, paths.Paths, 1)
	assert.Equal(t, "SRE", paths.Paths[0].Path)

	projects, err := uc.ProjectSuggestions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2 weeks", projects.Projects[0].EstimatedTime)

	course, err := uc.MiniCourse(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Intro to Go", course.Title)
	assert.Empty(t, course.Description)
}

func TestDownloadPDFPassesBytesThrough(t *testing.T) {
	pdf := testutil.MinimalPDF()
	backend := servicetest.NewBackend()
	backend.Replies["download"] = servicetest.Reply{Body: pdf}
	uc := NewCareerCraftUsecase(backend)

	got, err := uc.DownloadPDF(context.Background(), "Subject: Hi\n\nBody")
	require.NoError(t, err)
	assert.Equal(t, pdf, got)
}
