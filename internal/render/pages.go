package render

import "github.com/fadilmartias/careercraft/internal/model"

type Tab struct {
	ID    string
	Label string
}

type Page struct {
	Key      string
	Path     string
	Title    string
	NavLabel string
	Template string
	Tabs     []Tab
}

var Pages = []Page{
	{
		Key:      "home",
		Path:     "/",
		Title:    "Your AI Career Assistant",
		NavLabel: "Home",
		Template: "home.html",
	},
	{
		Key:      "cv",
		Path:     "/cv-services",
		Title:    "CV Services",
		NavLabel: "CV Services",
		Template: "cv_services.html",
		Tabs: []Tab{
			{ID: "cv-review", Label: "CV Review"},
			{ID: "ats-scanner", Label: "ATS Scanner"},
			{ID: "cv-rewriter", Label: "CV Rewriter"},
		},
	},
	{
		Key:      "job-matcher",
		Path:     "/job-matcher",
		Title:    "Job Matcher",
		NavLabel: "Job Matcher",
		Template: "job_matcher.html",
		Tabs: []Tab{
			{ID: "job-match", Label: "Job Match"},
			{ID: "email-generator", Label: "Email Generator"},
		},
	},
	{
		Key:      "interview",
		Path:     "/interview-preparation",
		Title:    "Interview Preparation",
		NavLabel: "Interview Prep",
		Template: "interview.html",
		Tabs: []Tab{
			{ID: "mock-interview", Label: "Mock Interview"},
			{ID: "question-list", Label: "Question Bank"},
			{ID: "answer-templates", Label: "Answer Templates"},
		},
	},
	{
		Key:      "upskilling",
		Path:     "/upskilling",
		Title:    "Upskilling",
		NavLabel: "Upskilling",
		Template: "upskilling.html",
		Tabs: []Tab{
			{ID: "career-paths", Label: "Career Paths"},
			{ID: "project-suggestions", Label: "Project Ideas"},
			{ID: "mini-course", Label: "Mini Course"},
		},
	},
}

func pageByKey(key string) (Page, bool) {
	for _, p := range Pages {
		if p.Key == key {
			return p, true
		}
	}
	return Page{}, false
}

// ActiveTab returns requested when the page has such a tab, otherwise the
// page's first tab.
func (p Page) ActiveTab(requested string) string {
	if len(p.Tabs) == 0 {
		return ""
	}
	for _, t := range p.Tabs {
		if t.ID == requested {
			return requested
		}
	}
	return p.Tabs[0].ID
}

type PageData struct {
	AppName    string
	Page       Page
	Nav        []Page
	Theme      model.Theme
	ActiveTab  string
	EmailTypes []EmailTypeOption
}

type EmailTypeOption struct {
	Value string
	Label string
}

func NewPageData(appName string, page Page, theme model.Theme, requestedTab string, emailTypes []string) PageData {
	opts := make([]EmailTypeOption, 0, len(emailTypes))
	for _, t := range emailTypes {
		opts = append(opts, EmailTypeOption{Value: t, Label: emailTypeLabels[t]})
	}
	return PageData{
		AppName:    appName,
		Page:       page,
		Nav:        Pages,
		Theme:      theme,
		ActiveTab:  page.ActiveTab(requestedTab),
		EmailTypes: opts,
	}
}

var emailTypeLabels = map[string]string{
	"application":   "Job Application",
	"follow_up":     "Follow-up",
	"thank_you":     "Thank You",
	"networking":    "Networking",
	"cold_outreach": "Cold Outreach",
}
