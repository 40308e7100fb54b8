package report

import (
	"fmt"
	"strings"
)

// wrapWidth is the column limit for AI highlight lines in the text output.
const wrapWidth = 90

// RenderText produces the plain-text report document for the payload. The
// result is trimmed of surrounding whitespace and ends with exactly one
// newline.
func RenderText(p *Payload) string {
	lines := []string{
		fmt.Sprintf("Finance Twitter report covering the last %d hours", p.WindowHours),
		"",
	}

	ov := p.Overview
	lines = append(lines, "=== Run Overview ===")
	lines = append(lines, fmt.Sprintf("Accounts: %d", ov.Accounts))
	lines = append(lines, fmt.Sprintf("Total tweets: %d", ov.TotalTweets))
	lines = append(lines, fmt.Sprintf("Engagement totals - likes: %s, retweets: %s, replies: %s",
		FormatInt(ov.TotalLikes), FormatInt(ov.TotalRetweets), FormatInt(ov.TotalReplies)))
	if hasOverallWindow(ov) {
		lines = append(lines, fmt.Sprintf("Overall window: %s to %s",
			FormatWindow(*ov.EarliestStart), FormatWindow(*ov.LatestEnd)))
	}
	lines = append(lines, "")

	for _, acc := range p.Accounts {
		lines = append(lines, fmt.Sprintf("=== @%s ===", acc.Username))
		lines = append(lines, fmt.Sprintf("Window: %s to %s",
			FormatWindow(acc.WindowStart), FormatWindow(acc.WindowEnd)))

		m := acc.Metrics
		lines = append(lines, fmt.Sprintf("Tweets collected: %d (originals: %d, replies: %d, retweets: %d)",
			m.Total, m.Originals, m.Replies, m.Retweets))
		lines = append(lines, fmt.Sprintf("Engagement totals - likes: %s, retweets: %s, replies: %s",
			FormatInt(m.Likes), FormatInt(m.EngagementRetweets), FormatInt(m.EngagementReplies)))

		lines = append(lines, "AI Highlights:")
		summaryLines := splitLines(acc.AISummary)
		if len(summaryLines) > 0 {
			for _, item := range summaryLines {
				wrapped := wrapLine(strings.TrimSpace(item), wrapWidth)
				if len(wrapped) == 0 {
					// Blank summary line: keep it, unindented.
					lines = append(lines, item)
					continue
				}
				for _, w := range wrapped {
					lines = append(lines, "  "+w)
				}
			}
		} else {
			lines = append(lines, "  No highlights available.")
		}

		if len(acc.TopTweets) > 0 {
			lines = append(lines, "Top tweets:")
			for i, t := range acc.TopTweets {
				lines = append(lines, fmt.Sprintf("  %d. [%s] %s", i+1, tweetTime(t.Timestamp), t.Text))
				lines = append(lines, fmt.Sprintf("    likes %s | retweets %s | replies %s",
					FormatInt(t.Likes), FormatInt(t.Retweets), FormatInt(t.Replies)))
				if t.URL != "" {
					lines = append(lines, "    link: "+t.URL)
				}
			}
		} else {
			lines = append(lines, "Top tweets: none in this window.")
		}
		lines = append(lines, "")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}
