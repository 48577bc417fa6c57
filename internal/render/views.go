package render

import (
	"github.com/fadilmartias/careercraft/internal/dto"
	"github.com/fadilmartias/careercraft/internal/model"
)

// Fragment names.
const (
	FragmentReview        = "review"
	FragmentATS           = "ats"
	FragmentATSKeywords   = "ats_keywords"
	FragmentRewrite       = "rewrite"
	FragmentMatch         = "match"
	FragmentEmail         = "email"
	FragmentQuestions     = "questions"
	FragmentTemplates     = "templates"
	FragmentCareerPaths   = "career_paths"
	FragmentProjects      = "projects"
	FragmentCourse        = "course"
	FragmentError         = "error_placeholder"
	FragmentLoader        = "loader"
	FragmentServiceCards  = "service_cards"
	FragmentUploadSuccess = "upload_success"
	FragmentSetup         = "interview_setup"
	FragmentChat          = "interview_chat"
	FragmentChatTurn      = "chat_turn"
	FragmentReport        = "interview_report"
	FragmentThemeToggle   = "theme_toggle"
)

// ListView is a bulleted list that falls back to a single placeholder item.
type ListView struct {
	Items []string
	Empty string
}

func list(items []string, empty string) ListView {
	return ListView{Items: items, Empty: empty}
}

type ErrorView struct {
	Message string
}

type ServiceCard struct {
	Title       string
	Description string
	Icon        string
	Href        string
}

var serviceCards = []ServiceCard{
	{Title: "CV Services", Description: "Get a detailed review, scan for ATS issues and rewrite your CV.", Icon: "📄", Href: "/cv-services"},
	{Title: "Job Matcher", Description: "Compare your CV with a job description and draft outreach emails.", Icon: "🎯", Href: "/job-matcher"},
	{Title: "Interview Prep", Description: "Practice with a mock interviewer and build answer templates.", Icon: "🎤", Href: "/interview-preparation"},
	{Title: "Upskilling", Description: "Discover career paths, project ideas and a tailored mini course.", Icon: "📈", Href: "/upskilling"},
}

// ServiceCardsView renders every card enabled or every card disabled,
// depending on whether the backend holds a CV.
type ServiceCardsView struct {
	Status dto.CVStatus
	Cards  []ServiceCard
}

func NewServiceCardsView(status dto.CVStatus) ServiceCardsView {
	return ServiceCardsView{Status: status, Cards: serviceCards}
}

type ChatMessage struct {
	Sender string
	Text   string
	Error  bool
}

func InterviewerMessage(text string) ChatMessage {
	return ChatMessage{Sender: "interviewer", Text: text}
}

func UserMessage(text string) ChatMessage {
	return ChatMessage{Sender: "user", Text: text}
}

// ChatView is the chat shown once the first question arrives.
type ChatView struct {
	Question string
	Counter  string
}

// ChatTurnView is appended to the chat after an answer: the visitor's
// message, then either the next question or an inline error.
type ChatTurnView struct {
	Answer   string
	Question string
	Counter  string
	Error    string
}

type SetupView struct {
	JobDescription string
	Error          string
}

type ReportView struct {
	Report    dto.InterviewReport
	Synthetic bool
}

type ThemeToggleView struct {
	Theme model.Theme
}
