package dto

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// score reads a percentage the way the page script did with
// parseInt(x, 10) || 0, clamped to 0..100.
func score(r gjson.Result) int {
	var n int64
	switch r.Type {
	case gjson.Number:
		switch {
		case math.IsNaN(r.Num), r.Num <= 0:
			return 0
		case r.Num >= 100:
			return 100
		}
		n = int64(math.Trunc(r.Num))
	case gjson.String:
		n = leadingInt(r.Str)
	}
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return int(n)
}

func leadingInt(s string) int64 {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) {
		c := s[end]
		if (c >= '0' && c <= '9') || (end == 0 && (c == '-' || c == '+')) {
			end++
			continue
		}
		break
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	// out of range already saturates to the int64 bounds
	return n
}

// stringList reads an array of strings. A missing or non-array field gives an
// empty list; non-string items keep their JSON text.
func stringList(r gjson.Result) []string {
	if !r.IsArray() {
		return []string{}
	}
	items := r.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := itemText(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func itemText(item gjson.Result) string {
	switch item.Type {
	case gjson.String:
		return strings.TrimSpace(item.Str)
	case gjson.Null:
		return ""
	case gjson.JSON:
		for _, key := range []string{"title", "name", "text"} {
			if v := item.Get(key); v.Type == gjson.String && v.Str != "" {
				return v.Str
			}
		}
		return item.Raw
	}
	return item.String()
}

func text(r gjson.Result) string {
	if r.Type == gjson.Null {
		return ""
	}
	return strings.TrimSpace(r.String())
}
