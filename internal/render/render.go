// Package render turns backend results into the HTML fragments and pages
// served by the web front. All backend text goes through html/template
// escaping; free-text fields are converted from Markdown with raw HTML
// disabled.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed templates
var templateFS embed.FS

type Renderer struct {
	fragments *template.Template
	pages     map[string]*template.Template
	md        goldmark.Markdown
}

// New parses every fragment, then builds one template set per page on top
// of the shared layout.
func New() (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template),
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}

	base, err := template.New("base").Funcs(r.funcs()).ParseFS(templateFS, "templates/fragments/*.html", "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parsing fragments: %w", err)
	}
	r.fragments = base

	for _, p := range Pages {
		set, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := set.ParseFS(templateFS, "templates/pages/"+p.Template); err != nil {
			return nil, fmt.Errorf("parsing page %s: %w", p.Template, err)
		}
		r.pages[p.Key] = set
	}
	return r, nil
}

func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"markdown": r.markdown,
		"nl2br":    nl2br,
		"join":     strings.Join,
		"inc":      func(i int) int { return i + 1 },
		"list":     list,
		// Chat and error view constructors for nested templates.
		"errorView":   func(msg string) ErrorView { return ErrorView{Message: msg} },
		"interviewer": InterviewerMessage,
		"user":        UserMessage,
		"setupView":   func() SetupView { return SetupView{} },
		"chatError": func(msg string) ChatMessage {
			return ChatMessage{Sender: "interviewer", Text: "Sorry, something went wrong: " + msg + "\nPlease send your answer again.", Error: true}
		},
	}
}

func (r *Renderer) markdown(s string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(s), &buf); err != nil {
		return nl2br(s)
	}
	return template.HTML(buf.String())
}

// nl2br escapes s and turns its newlines into <br> tags.
func nl2br(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

// Fragment writes the named fragment template.
func (r *Renderer) Fragment(w io.Writer, name string, data any) error {
	if r.fragments.Lookup(name) == nil {
		return fmt.Errorf("unknown fragment %q", name)
	}
	return r.fragments.ExecuteTemplate(w, name, data)
}

// String renders a fragment into a string.
func (r *Renderer) String(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.Fragment(&buf, name, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Page writes a full page inside the layout.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	set, ok := r.pages[data.Page.Key]
	if !ok {
		return fmt.Errorf("unknown page %q", data.Page.Key)
	}
	return set.ExecuteTemplate(w, "layout", data)
}
