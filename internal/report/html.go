package report

import (
	"fmt"
	"html"
	"strings"
)

// pageStyle is the embedded stylesheet for the self-contained report page.
const pageStyle = `
  :root {
    color-scheme: light dark;
    font-family: 'Segoe UI', Tahoma, Arial, sans-serif;
    --bg: #f8fafc;
    --card-bg: #ffffff;
    --text: #111827;
    --muted: #6b7280;
    --accent: #2563eb;
    --border: #e5e7eb;
  }
  body {
    margin: 0;
    background: var(--bg);
    color: var(--text);
  }
  .container {
    max-width: 900px;
    margin: 0 auto;
    padding: 32px 20px 48px;
  }
  h1 {
    font-size: 28px;
    margin-bottom: 12px;
  }
  .card {
    background: var(--card-bg);
    border: 1px solid var(--border);
    border-radius: 16px;
    padding: 20px;
    margin-bottom: 24px;
    box-shadow: 0 12px 28px rgba(15, 23, 42, 0.08);
  }
  .card h2 {
    margin-top: 0;
    margin-bottom: 8px;
    font-size: 22px;
  }
  .meta {
    color: var(--muted);
    font-size: 14px;
    margin-top: 0;
    margin-bottom: 16px;
  }
  table {
    width: 100%;
    border-collapse: collapse;
    margin-bottom: 18px;
  }
  th {
    text-align: left;
    font-weight: 600;
    padding: 6px 0;
    color: var(--muted);
    width: 45%;
  }
  td {
    padding: 6px 0;
  }
  ul {
    padding-left: 20px;
  }
  .section-block {
    margin-top: 16px;
  }
  .section-block h3 {
    margin-bottom: 8px;
    font-size: 18px;
  }
  .tweet-list {
    padding-left: 18px;
  }
  .tweet-list li {
    margin-bottom: 14px;
  }
  .tweet-meta {
    font-size: 13px;
    color: var(--muted);
  }
  .tweet-text {
    margin: 4px 0;
  }
  .tweet-engagement {
    font-size: 13px;
    color: var(--muted);
  }
  .tweet-link a {
    color: var(--accent);
    text-decoration: none;
  }
  .tweet-link a:hover {
    text-decoration: underline;
  }
  .empty {
    color: var(--muted);
  }
`

// RenderHTML produces the self-contained HTML report document for the
// payload. Output is deterministic for a given payload.
func RenderHTML(p *Payload) string {
	accounts := make([]string, 0, len(p.Accounts))
	for _, acc := range p.Accounts {
		accounts = append(accounts, buildAccountHTML(acc))
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\" />\n")
	b.WriteString("<title>Finance Twitter Report</title>\n")
	b.WriteString("<style>")
	b.WriteString(pageStyle)
	b.WriteString("</style>\n</head>\n<body>\n")
	b.WriteString("  <div class=\"container\">\n")
	b.WriteString("    <h1>Finance Twitter Report</h1>\n    ")
	b.WriteString(buildOverviewHTML(p.Overview, p.WindowHours))
	b.WriteString("\n    ")
	b.WriteString(strings.Join(accounts, "\n"))
	b.WriteString("\n  </div>\n</body>\n</html>")
	return b.String()
}

func buildOverviewHTML(ov *Overview, windowHours int) string {
	rows := [][2]string{
		{"Accounts", FormatInt(ov.Accounts)},
		{"Total tweets", FormatInt(ov.TotalTweets)},
		{"Total likes", FormatInt(ov.TotalLikes)},
		{"Total retweets", FormatInt(ov.TotalRetweets)},
		{"Total replies", FormatInt(ov.TotalReplies)},
	}
	if hasOverallWindow(ov) {
		rows = append(rows, [2]string{
			"Overall window",
			FormatWindow(*ov.EarliestStart) + " to " + FormatWindow(*ov.LatestEnd),
		})
	}

	var b strings.Builder
	b.WriteString(`<section class="card overview">`)
	b.WriteString("<h2>Run Overview</h2>")
	fmt.Fprintf(&b, `<p class="meta">Coverage window: last %d hours</p>`, windowHours)
	b.WriteString("<table>")
	b.WriteString(tableRows(rows))
	b.WriteString("</table>")
	b.WriteString("</section>")
	return b.String()
}

func buildAccountHTML(acc Account) string {
	bullets, paragraphs := ParseAISummary(acc.AISummary)

	var summaryParts []string
	if len(bullets) > 0 {
		var ul strings.Builder
		ul.WriteString("<ul>")
		for _, item := range bullets {
			fmt.Fprintf(&ul, "<li>%s</li>", html.EscapeString(item))
		}
		ul.WriteString("</ul>")
		summaryParts = append(summaryParts, ul.String())
	}
	for _, paragraph := range paragraphs {
		summaryParts = append(summaryParts, fmt.Sprintf("<p>%s</p>", html.EscapeString(paragraph)))
	}
	if len(summaryParts) == 0 {
		summaryParts = append(summaryParts, "<p>No highlights available.</p>")
	}

	m := acc.Metrics
	metricsRows := [][2]string{
		{"Total tweets", FormatInt(m.Total)},
		{"Originals", FormatInt(m.Originals)},
		{"Replies", FormatInt(m.Replies)},
		{"Retweets", FormatInt(m.Retweets)},
		{"Likes", FormatInt(m.Likes)},
		{"Retweets (engagement)", FormatInt(m.EngagementRetweets)},
		{"Replies (engagement)", FormatInt(m.EngagementReplies)},
	}

	var topTweets string
	if len(acc.TopTweets) > 0 {
		var ol strings.Builder
		ol.WriteString(`<ol class="tweet-list">`)
		for _, t := range acc.TopTweets {
			ol.WriteString("<li>")
			fmt.Fprintf(&ol, `<div class="tweet-meta">%s</div>`, html.EscapeString(tweetTime(t.Timestamp)))
			fmt.Fprintf(&ol, `<div class="tweet-text">%s</div>`, html.EscapeString(t.Text))
			fmt.Fprintf(&ol, `<div class="tweet-engagement">likes %s &middot; retweets %s &middot; replies %s</div>`,
				FormatInt(t.Likes), FormatInt(t.Retweets), FormatInt(t.Replies))
			if t.URL != "" {
				fmt.Fprintf(&ol, `<div class="tweet-link"><a href="%s">Open</a></div>`, html.EscapeString(t.URL))
			}
			ol.WriteString("</li>")
		}
		ol.WriteString("</ol>")
		topTweets = ol.String()
	} else {
		topTweets = `<p class="empty">No top tweets in this window.</p>`
	}

	var b strings.Builder
	b.WriteString(`<section class="card account">`)
	fmt.Fprintf(&b, "<h2>@%s</h2>", html.EscapeString(acc.Username))
	fmt.Fprintf(&b, `<p class="meta">%s to %s</p>`, FormatWindow(acc.WindowStart), FormatWindow(acc.WindowEnd))
	b.WriteString("<table>")
	b.WriteString(tableRows(metricsRows))
	b.WriteString("</table>")
	b.WriteString(`<div class="section-block">`)
	b.WriteString("<h3>AI Highlights</h3>")
	b.WriteString(strings.Join(summaryParts, ""))
	b.WriteString("</div>")
	b.WriteString(`<div class="section-block">`)
	b.WriteString("<h3>Top Tweets</h3>")
	b.WriteString(topTweets)
	b.WriteString("</div>")
	b.WriteString("</section>")
	return b.String()
}

func tableRows(rows [][2]string) string {
	parts := make([]string, 0, len(rows))
	for _, r := range rows {
		parts = append(parts, fmt.Sprintf("<tr><th>%s</th><td>%s</td></tr>",
			html.EscapeString(r[0]), html.EscapeString(r[1])))
	}
	return strings.Join(parts, "\n")
}
