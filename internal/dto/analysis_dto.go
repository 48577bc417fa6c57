package dto

import "github.com/tidwall/gjson"

type CVStatus struct {
	Uploaded  bool `json:"cv_uploaded"`
	AIEnabled bool `json:"ai_enabled"`
}

// ParseCVStatus treats a missing ai_enabled flag as enabled; older backends
// only send cv_uploaded.
func ParseCVStatus(body []byte) CVStatus {
	ai := gjson.GetBytes(body, "ai_enabled")
	return CVStatus{
		Uploaded:  gjson.GetBytes(body, "cv_uploaded").Bool(),
		AIEnabled: !ai.Exists() || ai.Bool(),
	}
}

type UploadResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func ParseUploadResult(body []byte) UploadResult {
	return UploadResult{
		Success: gjson.GetBytes(body, "success").Bool(),
		Message: text(gjson.GetBytes(body, "message")),
	}
}

type ReviewResult struct {
	Score           int      `json:"score"`
	Strengths       []string `json:"strengths"`
	Weaknesses      []string `json:"weaknesses"`
	Recommendations []string `json:"recommendations"`
	MissingKeywords []string `json:"missing_keywords"`
}

func ParseReviewResult(body []byte) ReviewResult {
	r := gjson.ParseBytes(body)
	return ReviewResult{
		Score:           score(r.Get("score")),
		Strengths:       stringList(r.Get("strengths")),
		Weaknesses:      stringList(r.Get("weaknesses")),
		Recommendations: stringList(r.Get("recommendations")),
		MissingKeywords: stringList(r.Get("missing_keywords")),
	}
}

type ATSResult struct {
	ATSScore     int      `json:"ats_score"`
	FormatIssues []string `json:"format_issues"`
	Improvements []string `json:"improvements"`
}

func ParseATSResult(body []byte) ATSResult {
	r := gjson.ParseBytes(body)
	return ATSResult{
		ATSScore:     score(r.Get("ats_score")),
		FormatIssues: stringList(r.Get("format_issues")),
		Improvements: stringList(r.Get("improvements")),
	}
}

// ATSKeywordResult pairs the ATS scan with the keyword gap from a review.
type ATSKeywordResult struct {
	ATS    ATSResult    `json:"ats"`
	Review ReviewResult `json:"review"`
}

type RewriteResult struct {
	ImprovedCV  string   `json:"improved_cv"`
	ChangesMade []string `json:"changes_made"`
}

func ParseRewriteResult(body []byte) RewriteResult {
	r := gjson.ParseBytes(body)
	return RewriteResult{
		ImprovedCV:  text(r.Get("improved_cv")),
		ChangesMade: stringList(r.Get("changes_made")),
	}
}

type MatchResult struct {
	MatchScore          int      `json:"match_score"`
	GapAnalysis         string   `json:"gap_analysis"`
	MatchedSkills       []string `json:"matched_skills"`
	MissingRequirements []string `json:"missing_requirements"`
	Recommendations     []string `json:"recommendations"`
}

func ParseMatchResult(body []byte) MatchResult {
	r := gjson.ParseBytes(body)
	return MatchResult{
		MatchScore:          score(r.Get("match_score")),
		GapAnalysis:         text(r.Get("gap_analysis")),
		MatchedSkills:       stringList(r.Get("matched_skills")),
		MissingRequirements: stringList(r.Get("missing_requirements")),
		Recommendations:     stringList(r.Get("recommendations")),
	}
}

type EmailResult struct {
	Subject   string   `json:"subject"`
	EmailBody string   `json:"email_body"`
	Tips      []string `json:"tips"`
}

func ParseEmailResult(body []byte) EmailResult {
	r := gjson.ParseBytes(body)
	return EmailResult{
		Subject:   text(r.Get("subject")),
		EmailBody: text(r.Get("email_body")),
		Tips:      stringList(r.Get("tips")),
	}
}

// Document is the copyable text block of an email: subject line, blank line,
// body.
func (e EmailResult) Document() string {
	return "Subject: " + e.Subject + "\n\n" + e.EmailBody
}
