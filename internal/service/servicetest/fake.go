// Package servicetest provides an in-memory backend for tests above the
// service layer.
package servicetest

import (
	"context"
	"io"
	"sync"

	"github.com/fadilmartias/careercraft/internal/service"
)

// Reply is the canned result for one backend operation.
type Reply struct {
	Body []byte
	Err  error
}

// Backend answers each operation from Replies, keyed by operation name
// ("upload", "status", "analyze:review", "email", "start", "answer", "end",
// "questions", "template", "career_paths", "projects", "course", "download").
// Unset operations return an empty JSON object.
type Backend struct {
	mu      sync.Mutex
	Replies map[string]Reply
	// Queue holds successive replies for an operation, consumed before
	// Replies is consulted.
	Queue map[string][]Reply
	calls map[string]int
	// Last records the most recent string argument per operation.
	Last map[string]string
}

func NewBackend() *Backend {
	return &Backend{
		Replies: map[string]Reply{},
		Queue:   map[string][]Reply{},
		calls:   map[string]int{},
		Last:    map[string]string{},
	}
}

func (b *Backend) Set(op string, body string) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Replies[op] = Reply{Body: []byte(body)}
	return b
}

func (b *Backend) Fail(op string, err error) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Replies[op] = Reply{Err: err}
	return b
}

func (b *Backend) Enqueue(op string, replies ...Reply) *Backend {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Queue[op] = append(b.Queue[op], replies...)
	return b
}

func (b *Backend) Calls(op string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[op]
}

func (b *Backend) TotalCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		n += c
	}
	return n
}

func (b *Backend) reply(op, arg string) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls[op]++
	b.Last[op] = arg
	if q := b.Queue[op]; len(q) > 0 {
		b.Queue[op] = q[1:]
		return q[0].Body, q[0].Err
	}
	if r, ok := b.Replies[op]; ok {
		return r.Body, r.Err
	}
	return []byte(`{}`), nil
}

func (b *Backend) UploadCV(_ context.Context, filename string, r io.Reader) ([]byte, error) {
	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, err
	}
	return b.reply("upload", filename)
}

func (b *Backend) CheckCVStatus(context.Context) ([]byte, error) {
	return b.reply("status", "")
}

func (b *Backend) AnalyzeCV(_ context.Context, analysisType service.AnalysisType, jobDescription string) ([]byte, error) {
	return b.reply("analyze:"+string(analysisType), jobDescription)
}

func (b *Backend) GenerateEmail(_ context.Context, emailType, emailContext string) ([]byte, error) {
	return b.reply("email", emailType+"|"+emailContext)
}

func (b *Backend) StartInterview(_ context.Context, jobDescription string) ([]byte, error) {
	return b.reply("start", jobDescription)
}

func (b *Backend) SubmitAnswer(_ context.Context, answer string) ([]byte, error) {
	return b.reply("answer", answer)
}

func (b *Backend) EndInterview(context.Context) ([]byte, error) {
	return b.reply("end", "")
}

func (b *Backend) InterviewQuestions(_ context.Context, jobDescription string) ([]byte, error) {
	return b.reply("questions", jobDescription)
}

func (b *Backend) AnswerTemplate(_ context.Context, question string) ([]byte, error) {
	return b.reply("template", question)
}

func (b *Backend) CareerPaths(context.Context) ([]byte, error) {
	return b.reply("career_paths", "")
}

func (b *Backend) ProjectSuggestions(context.Context) ([]byte, error) {
	return b.reply("projects", "")
}

func (b *Backend) MiniCourse(context.Context) ([]byte, error) {
	return b.reply("course", "")
}

func (b *Backend) DownloadPDF(_ context.Context, content string) ([]byte, error) {
	return b.reply("download", content)
}

var _ service.CareerCraftServiceInterface = (*Backend)(nil)
