// cmd/verinews/types.go
package main

import (
	"context"
	"time"
)

// Article represents a news article returned by a provider or the
// synthetic generator. Articles are never mutated after creation; the
// URL is the identity used for deduplication.
type Article struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	URL         string    `json:"url"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"publishedAt"`
	ImageURL    string    `json:"urlToImage,omitempty"`
	Synthetic   bool      `json:"synthetic,omitempty"`
}

// NewsProvider is the uniform contract for one external news source.
// Fetch returns whatever articles it can for the query; remote failures
// surface as an error and are recovered by the aggregator, never by the
// provider itself.
type NewsProvider interface {
	Name() string
	Fetch(ctx context.Context, query string) ([]Article, error)
}

// Verdict labels attached to a credibility score.
const (
	VerdictTrue      = "TRUE"
	VerdictFalse     = "FALSE"
	VerdictUncertain = "UNCERTAIN" // AI path only
)

// ContextTally counts how aggregated articles relate to a claim.
type ContextTally struct {
	Supporting int
	Refuting   int
	Neutral    int
}

// CredibilityResult is the outcome of scoring one claim.
type CredibilityResult struct {
	Score     int      `json:"score"`
	Verdict   string   `json:"verdict"`
	Details   []string `json:"details"`
	AIPowered bool     `json:"aiPowered"`
}

// FactCheckResult is the outcome of the deterministic factual checks.
// When IsFactual is set the numeric scorer is bypassed entirely.
type FactCheckResult struct {
	IsFactual bool
	IsTrue    bool
	Message   string
}

// VerificationResponse is the wire shape returned by the verify endpoint.
type VerificationResponse struct {
	Text             string    `json:"text"`
	CredibilityScore int       `json:"credibilityScore"`
	Verdict          string    `json:"verdict"`
	Sources          []Article `json:"sources"`
	Analysis         []string  `json:"analysis"`
	Timestamp        time.Time `json:"timestamp"`
	AIPowered        bool      `json:"aiPowered"`
	FromCache        bool      `json:"fromCache,omitempty"`
}

// SearchResponse is the wire shape returned by the search endpoint.
type SearchResponse struct {
	Articles  []Article `json:"articles"`
	Query     string    `json:"query,omitempty"`
	FromCache bool      `json:"fromCache,omitempty"`
}
