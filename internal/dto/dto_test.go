package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReviewResult(t *testing.T) {
	body := []byte(`{"score":80,"strengths":["Clear formatting"],"weaknesses":[],"recommendations":["Add metrics"],"missing_keywords":[]}`)
	got := ParseReviewResult(body)
	assert.Equal(t, ReviewResult{
		Score:           80,
		Strengths:       []string{"Clear formatting"},
		Weaknesses:      []string{},
		Recommendations: []string{"Add metrics"},
		MissingKeywords: []string{},
	}, got)
}

func TestMissingListsBecomeEmpty(t *testing.T) {
	got := ParseReviewResult([]byte(`{"score":"n/a","strengths":"not a list"}`))
	assert.Zero(t, got.Score)
	assert.NotNil(t, got.Strengths)
	assert.Empty(t, got.Strengths)
	assert.Empty(t, got.Weaknesses)

	ats := ParseATSResult([]byte(`{}`))
	assert.Empty(t, ats.FormatIssues)
	assert.Empty(t, ats.Improvements)
}

func TestScoreParsing(t *testing.T) {
	cases := map[string]int{
		`{"score":72}`:      72,
		`{"score":72.9}`:    72,
		`{"score":"85"}`:    85,
		`{"score":"85%"}`:   85,
		`{"score":" 40 "}`:  40,
		`{"score":"abc"}`:   0,
		`{"score":null}`:    0,
		`{"score":-5}`:      0,
		`{"score":250}`:     100,
		`{"score":1e20}`:    100,
		`{"score":-1e20}`:   0,
		`{"score":99.999}`:  99,
		`{"score":true}`:    0,
		`{"other":1}`:       0,
	}
	for body, want := range cases {
		assert.Equal(t, want, ParseReviewResult([]byte(body)).Score, body)
	}
	assert.Equal(t, 100, ParseReviewResult([]byte(`{"score":"99999999999999999999"}`)).Score)
}

func TestStringListItems(t *testing.T) {
	got := ParseMiniCourse([]byte(`{"modules":["Intro",{"title":"Goroutines","lessons":3},{"x":1},42,null,"  "]}`))
	assert.Equal(t, []string{"Intro", "Goroutines", `{"x":1}`, "42"}, got.Modules)
}

func TestParseInterviewTurn(t *testing.T) {
	q := ParseInterviewTurn([]byte(`{"success":true,"question":"Tell me about yourself.","question_number":1,"total_questions":5}`))
	assert.True(t, q.Success)
	assert.Equal(t, "Tell me about yourself.", q.Question)
	assert.Equal(t, 1, q.QuestionNumber)
	assert.Equal(t, 5, q.TotalQuestions)
	assert.Nil(t, q.Report)

	r := ParseInterviewTurn([]byte(`{"success":true,"report":{"strengths":["Concise"],"tips":[]}}`))
	require.NotNil(t, r.Report)
	assert.Equal(t, []string{"Concise"}, r.Report.Strengths)
	assert.Empty(t, r.Report.Weaknesses)
	assert.Empty(t, r.Question)
}

func TestParseCVStatus(t *testing.T) {
	assert.Equal(t, CVStatus{Uploaded: true, AIEnabled: true}, ParseCVStatus([]byte(`{"cv_uploaded":true}`)))
	assert.Equal(t, CVStatus{Uploaded: false, AIEnabled: false}, ParseCVStatus([]byte(`{"cv_uploaded":false,"ai_enabled":false}`)))
}

func TestParseCareerPathsSkipsNonObjects(t *testing.T) {
	got := ParseCareerPaths([]byte(`{"career_paths":[{"path":"SRE","required_skills":["Go"],"transition_steps":["Learn Kubernetes"]},"junk"]}`))
	require.Len(t, got.Paths, 1)
	assert.Equal(t, "SRE", got.Paths[0].Path)

	assert.Empty(t, ParseCareerPaths([]byte(`{}`)).Paths)
	assert.Empty(t, ParseProjectSuggestions([]byte(`{"projects":null}`)).Projects)
}

func TestAnswerTemplatesFallsBackToAskedQuestion(t *testing.T) {
	got := ParseAnswerTemplates([]byte(`{"answers":["Situation..."]}`), "Why Go?")
	assert.Equal(t, "Why Go?", got.Question)
	assert.Equal(t, []string{"Situation..."}, got.Answers)
}

func TestEmailDocument(t *testing.T) {
	e := ParseEmailResult([]byte(`{"subject":"Thanks","email_body":"Hi Sam,\nThank you."}`))
	assert.Equal(t, "Subject: Thanks\n\nHi Sam,\nThank you.", e.Document())
	assert.Empty(t, e.Tips)
}
