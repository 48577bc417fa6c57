// Package notify builds the toast notifications that accompany every UI
// operation. A toast is an out-of-band fragment appended to #notifications;
// the page script shows it, then fades and detaches it after Duration.
package notify

import (
	"bytes"
	"html/template"
	"time"
)

type Type string

const (
	Info    Type = "info"
	Success Type = "success"
	Warning Type = "warning"
	Error   Type = "error"
)

// DefaultDuration is how long a toast stays visible before fading.
const DefaultDuration = 4 * time.Second

type Notification struct {
	Message  string
	Type     Type
	Duration time.Duration
}

func New(t Type, message string) Notification {
	return Notification{Message: message, Type: t, Duration: DefaultDuration}
}

func InfoToast(message string) Notification    { return New(Info, message) }
func SuccessToast(message string) Notification { return New(Success, message) }
func WarningToast(message string) Notification { return New(Warning, message) }

// ErrorToast prefixes message the way every failed operation reports itself.
func ErrorToast(message string) Notification { return New(Error, "Error: "+message) }

var toastTmpl = template.Must(template.New("toast").Parse(
	`<div id="notifications" hx-swap-oob="beforeend"><div class="notification notification-{{.Type}}" role="status" data-duration="{{.Millis}}">{{.Message}}</div></div>`,
))

// Millis is the display duration in milliseconds.
func (n Notification) Millis() int64 {
	d := n.Duration
	if d <= 0 {
		d = DefaultDuration
	}
	return d.Milliseconds()
}

// HTML renders the toast as an out-of-band swap.
func (n Notification) HTML() (template.HTML, error) {
	if n.Type == "" {
		n.Type = Info
	}
	var buf bytes.Buffer
	if err := toastTmpl.Execute(&buf, n); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
