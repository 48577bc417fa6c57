package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fadilmartias/careercraft/internal/dto"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printList(w io.Writer, title string, items []string) {
	fmt.Fprintf(w, "\n%s:\n", title)
	if len(items) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, item := range items {
		fmt.Fprintf(w, "  - %s\n", item)
	}
}

func printStatus(w io.Writer, status dto.CVStatus) {
	fmt.Fprintf(w, "CV uploaded: %s\n", yesNo(status.Uploaded))
	fmt.Fprintf(w, "AI features: %s\n", availability(status.AIEnabled))
}

func printReview(w io.Writer, r dto.ReviewResult) {
	fmt.Fprintf(w, "CV score: %d%%\n", r.Score)
	printList(w, "Strengths", r.Strengths)
	printList(w, "Areas for Improvement", r.Weaknesses)
	printList(w, "Missing Keywords", r.MissingKeywords)
	printList(w, "Actionable Recommendations", r.Recommendations)
}

func printATS(w io.Writer, r dto.ATSResult) {
	fmt.Fprintf(w, "ATS compatibility score: %d%%\n", r.ATSScore)
	printList(w, "Formatting & Structural Issues", r.FormatIssues)
	printList(w, "Recommended Improvements", r.Improvements)
}

func printATSKeywords(w io.Writer, r dto.ATSKeywordResult) {
	printATS(w, r.ATS)
	printList(w, "Keyword Gaps", r.Review.MissingKeywords)
}

func printRewrite(w io.Writer, r dto.RewriteResult) {
	fmt.Fprintln(w, "Improved CV Content:")
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, r.ImprovedCV)
	fmt.Fprintln(w, rule)
	printList(w, "Changes Made", r.ChangesMade)
}

func printMatch(w io.Writer, r dto.MatchResult) {
	fmt.Fprintf(w, "Match score: %d%%\n", r.MatchScore)
	if r.GapAnalysis != "" {
		fmt.Fprintf(w, "\nGap Analysis:\n%s\n", r.GapAnalysis)
	}
	printList(w, "Matched Skills & Requirements", r.MatchedSkills)
	printList(w, "Missing Requirements", r.MissingRequirements)
	printList(w, "Recommendations to Improve Match", r.Recommendations)
}

func printEmail(w io.Writer, r dto.EmailResult) {
	fmt.Fprintln(w, r.Document())
	printList(w, "Tips for Sending", r.Tips)
}

func printQuestions(w io.Writer, q dto.QuestionList) {
	printList(w, "General Questions", q.General)
	printList(w, "Behavioral Questions", q.Behavioral)
	printList(w, "Technical Questions", q.Technical)
}

func printTemplates(w io.Writer, t dto.AnswerTemplates) {
	fmt.Fprintf(w, "Answer templates for: %q\n", t.Question)
	if len(t.Answers) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for i, answer := range t.Answers {
		fmt.Fprintf(w, "\nTemplate %d:\n%s\n", i+1, answer)
	}
}

func printCareerPaths(w io.Writer, c dto.CareerPaths) {
	if len(c.Paths) == 0 {
		fmt.Fprintln(w, "No career paths suggested.")
	}
	for _, p := range c.Paths {
		fmt.Fprintf(w, "\n%s\n", p.Path)
		fmt.Fprintf(w, "Required skills: %s\n", strings.Join(p.RequiredSkills, ", "))
		printList(w, "How to transition", p.TransitionSteps)
	}
}

func printProjects(w io.Writer, p dto.ProjectSuggestions) {
	if len(p.Projects) == 0 {
		fmt.Fprintln(w, "No projects suggested.")
	}
	for _, project := range p.Projects {
		fmt.Fprintf(w, "\n%s\n", project.Idea)
		fmt.Fprintf(w, "Skills you'll develop: %s\n", strings.Join(project.SkillsDeveloped, ", "))
		fmt.Fprintf(w, "Estimated time: %s\n", project.EstimatedTime)
	}
}

func printCourse(w io.Writer, c dto.MiniCourse) {
	title := c.Title
	if title == "" {
		title = "Personalized Course"
	}
	fmt.Fprintln(w, title)
	if c.Description != "" {
		fmt.Fprintln(w, c.Description)
	}
	printList(w, "Learning Objectives", c.Objectives)
	printList(w, "Course Modules", c.Modules)
}

func printReport(w io.Writer, r dto.InterviewReport, synthetic bool) {
	title := "Interview Performance Report"
	if synthetic {
		title += " (partial)"
	}
	fmt.Fprintf(w, "\n%s\n%s\n", title, rule)
	printList(w, "Strengths", r.Strengths)
	printList(w, "Areas for Improvement", r.Weaknesses)
	printList(w, "Actionable Tips", r.Tips)
}

const rule = "----------------------------------------"

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func availability(b bool) string {
	if b {
		return "available"
	}
	return "unavailable"
}
