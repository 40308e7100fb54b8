package report

import (
	"strings"
	"testing"
	"time"
)

func TestRenderHTMLDocument(t *testing.T) {
	out := RenderHTML(samplePayload())

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Error("output does not start with a doctype")
	}
	for _, want := range []string{
		"<title>Finance Twitter Report</title>",
		"<h1>Finance Twitter Report</h1>",
		"<h2>Run Overview</h2>",
		`<p class="meta">Coverage window: last 24 hours</p>`,
		"<tr><th>Total tweets</th><td>1,234,567</td></tr>",
		"<h2>@trader_jane</h2>",
		"<tr><th>Retweets (engagement)</th><td>320</td></tr>",
		"<h3>AI Highlights</h3>",
		"<ul><li>bullish on semis</li><li>watching CPI print</li></ul>",
		"<p>Overall a quiet day.</p>",
		"<h3>Top Tweets</h3>",
		`<div class="tweet-engagement">likes 1,200 &middot; retweets 340 &middot; replies 56</div>`,
		`<div class="tweet-link"><a href="https://x.com/trader_jane/status/1">Open</a></div>`,
		`<div class="tweet-meta">N/A</div>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderHTMLOverallWindow(t *testing.T) {
	p := samplePayload()
	out := RenderHTML(p)
	if !strings.Contains(out, "<tr><th>Overall window</th><td>") {
		t.Error("overall window row missing when both bounds present")
	}

	p.Overview.EarliestStart = nil
	out = RenderHTML(p)
	if strings.Contains(out, "Overall window") {
		t.Error("overall window row rendered with earliestStart absent")
	}
}

func TestRenderHTMLFallbacks(t *testing.T) {
	out := RenderHTML(samplePayload())

	if !strings.Contains(out, "<p>No highlights available.</p>") {
		t.Error("missing highlights fallback for account with empty summary")
	}
	if !strings.Contains(out, `<p class="empty">No top tweets in this window.</p>`) {
		t.Error("missing top-tweets fallback for account with empty list")
	}
}

func TestRenderHTMLEscapes(t *testing.T) {
	ts := time.Date(2026, time.February, 1, 12, 0, 0, 0, time.Local).UnixMilli()
	p := samplePayload()
	p.Accounts[0].AISummary = `- watch <b>$TSLA</b> & "friends"`
	p.Accounts[0].TopTweets = []Tweet{
		{Timestamp: &ts, Text: "1 < 2 && 3 > 2"},
	}
	out := RenderHTML(p)

	if !strings.Contains(out, "watch &lt;b&gt;$TSLA&lt;/b&gt; &amp; &#34;friends&#34;") {
		t.Errorf("summary not escaped:\n%s", out)
	}
	if !strings.Contains(out, `<div class="tweet-text">1 &lt; 2 &amp;&amp; 3 &gt; 2</div>`) {
		t.Errorf("tweet text not escaped:\n%s", out)
	}
	if strings.Contains(out, "<b>$TSLA</b>") {
		t.Error("raw markup leaked into output")
	}
}

func TestRenderHTMLAccountOrder(t *testing.T) {
	out := RenderHTML(samplePayload())
	first := strings.Index(out, "@trader_jane")
	second := strings.Index(out, "@quietaccount")
	if first < 0 || second < 0 || first > second {
		t.Errorf("accounts out of payload order: trader_jane at %d, quietaccount at %d", first, second)
	}
}

func TestRenderHTMLDeterministic(t *testing.T) {
	p := samplePayload()
	if RenderHTML(p) != RenderHTML(p) {
		t.Error("RenderHTML is not deterministic for the same payload")
	}
}
