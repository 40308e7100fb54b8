package report

import (
	"fmt"
	"strings"
	"time"
)

// FormatInt formats an integer with comma separators.
func FormatInt(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	start := len(s) % 3
	if start > 0 {
		b.WriteString(s[:start])
	}
	for i := start; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatWindow renders an epoch-millisecond timestamp as "Jan 02 2006 15:04"
// in the local timezone of the process.
func FormatWindow(ms int64) string {
	return time.UnixMilli(ms).Format("Jan 02 2006 15:04")
}

// tweetTime formats a tweet timestamp, or "N/A" when it is absent.
func tweetTime(ms *int64) string {
	if ms == nil {
		return "N/A"
	}
	return FormatWindow(*ms)
}

// splitLines splits s on line breaks without producing a trailing empty
// line. Returns nil for the empty string.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}

// wrapLine greedily wraps s into lines at most width runes long, breaking
// words longer than the width at rune boundaries. Returns nil for blank
// input.
func wrapLine(s string, width int) []string {
	var lines []string
	var cur []rune
	for _, w := range strings.Fields(s) {
		word := []rune(w)
		if len(word) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			for len(word) > width {
				lines = append(lines, string(word[:width]))
				word = word[width:]
			}
		}
		switch {
		case len(word) == 0:
		case len(cur) == 0:
			cur = word
		case len(cur)+1+len(word) <= width:
			cur = append(cur, ' ')
			cur = append(cur, word...)
		default:
			lines = append(lines, string(cur))
			cur = word
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
