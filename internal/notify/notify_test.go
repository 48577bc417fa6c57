package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastHTML(t *testing.T) {
	out, err := ErrorToast("No CV uploaded <yet>").HTML()
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(out)))
	require.NoError(t, err)

	wrapper := doc.Find("#notifications")
	oob, _ := wrapper.Attr("hx-swap-oob")
	assert.Equal(t, "beforeend", oob)

	toast := wrapper.Find(".notification")
	assert.True(t, toast.HasClass("notification-error"))
	assert.Equal(t, "Error: No CV uploaded <yet>", toast.Text())
	assert.NotContains(t, string(out), "<yet>")

	duration, _ := toast.Attr("data-duration")
	assert.Equal(t, "4000", duration)
}

func TestMillisDefaults(t *testing.T) {
	assert.Equal(t, int64(4000), Notification{}.Millis())
	assert.Equal(t, int64(1500), Notification{Duration: 1500 * time.Millisecond}.Millis())
}

func TestEmptyTypeIsInfo(t *testing.T) {
	out, err := Notification{Message: "hello"}.HTML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "notification-info")
}
