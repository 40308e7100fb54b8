package report

import "strings"

// ParseAISummary splits free-form summary text into bullet items and
// paragraph lines. A line is a bullet when it starts with "- " or "* "
// (content after the two-character marker), or with a digit followed by "."
// or ")" (content after the three-character marker). All other non-empty
// lines are paragraphs, kept in input order.
func ParseAISummary(summary string) (bullets, paragraphs []string) {
	for _, raw := range splitLines(summary) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* "):
			bullets = append(bullets, strings.TrimSpace(line[2:]))
		case isNumberedBullet(line):
			bullets = append(bullets, strings.TrimSpace(line[3:]))
		default:
			paragraphs = append(paragraphs, line)
		}
	}
	return bullets, paragraphs
}

// isNumberedBullet reports whether line carries a numbered-bullet marker
// with content after it. Bare markers like "2." stay paragraphs.
func isNumberedBullet(line string) bool {
	if len(line) < 3 {
		return false
	}
	return line[0] >= '0' && line[0] <= '9' && (line[1] == '.' || line[1] == ')')
}
