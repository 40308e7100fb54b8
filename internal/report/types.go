// Package report parses the finance Twitter report payload and renders it
// into HTML and plain-text documents.
package report

import (
	"encoding/json"
	"errors"
	"os"
)

// Payload is the full report input: a coverage window label, run-level
// overview, and per-account details. It is built once from parsed JSON and
// consumed by the renderers; nothing mutates it.
type Payload struct {
	WindowHours int       `json:"windowHours"`
	Overview    *Overview `json:"overview"`
	Accounts    []Account `json:"accounts"`
}

// Overview aggregates counts across every account in the run.
type Overview struct {
	Accounts      int64  `json:"accounts"`
	TotalTweets   int64  `json:"totalTweets"`
	TotalLikes    int64  `json:"totalLikes"`
	TotalRetweets int64  `json:"totalRetweets"`
	TotalReplies  int64  `json:"totalReplies"`
	EarliestStart *int64 `json:"earliestStart"` // epoch millis, optional
	LatestEnd     *int64 `json:"latestEnd"`     // epoch millis, optional
}

// Account holds one account's reporting window, metrics, generated summary
// and top tweets. AISummary is empty when no summary was produced.
type Account struct {
	Username    string  `json:"username"`
	WindowStart int64   `json:"windowStart"`
	WindowEnd   int64   `json:"windowEnd"`
	Metrics     Metrics `json:"metrics"`
	AISummary   string  `json:"aiSummary"`
	TopTweets   []Tweet `json:"topTweets"`
}

// Metrics is the fixed set of per-account counters.
type Metrics struct {
	Total              int64 `json:"total"`
	Originals          int64 `json:"originals"`
	Replies            int64 `json:"replies"`
	Retweets           int64 `json:"retweets"`
	Likes              int64 `json:"likes"`
	EngagementRetweets int64 `json:"engagementRetweets"`
	EngagementReplies  int64 `json:"engagementReplies"`
}

// Tweet is one entry in an account's top-tweets list.
type Tweet struct {
	Timestamp *int64 `json:"timestamp"` // epoch millis; nil renders as N/A
	Text      string `json:"text"`
	Likes     int64  `json:"likes"`
	Retweets  int64  `json:"retweets"`
	Replies   int64  `json:"replies"`
	URL       string `json:"url"`
}

// Load reads and parses a report payload from the JSON file at path.
func Load(path string) (*Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if p.Overview == nil {
		return nil, errors.New(`payload missing "overview" field`)
	}
	return &p, nil
}

// hasOverallWindow reports whether the overview carries both window bounds.
// Zero timestamps count as absent.
func hasOverallWindow(ov *Overview) bool {
	return ov.EarliestStart != nil && *ov.EarliestStart != 0 &&
		ov.LatestEnd != nil && *ov.LatestEnd != 0
}
