// cmd/verinews/mockgen.go
package main

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// Keyword lists used to classify a query when no live provider returns
// anything. The generator gives the scorer class-appropriate signal
// (fewer, less reliable sources for suspicious queries) instead of an
// empty set.
var (
	mockMisinfoKeywords = []string{
		"fake", "hoax", "conspiracy", "cure cancer", "miracle cure",
		"secret government", "lizard people", "flat earth", "chemtrails",
		"5g causes",
	}
	mockSensationalKeywords = []string{
		"shocking", "unbelievable", "you won't believe",
	}

	mockUnreliableSources = []string{"Random Blog", "Anonymous Source", "Social Media Post"}
	mockMixedSources      = []string{"BBC News", "Random Blog", "CNN", "Tabloid Weekly"}
	mockReliableSources   = []string{"BBC News", "CNN", "Reuters", "The Guardian", "Associated Press"}
)

// MockGenerator synthesizes placeholder articles for queries no live
// provider could answer. All randomness of the pipeline is confined
// here; the scorer itself stays deterministic for a fixed article set.
// One generator is shared across requests, so rng access is locked
// (rand.Rand is not safe for concurrent use).
type MockGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewMockGenerator creates a generator seeded from the clock
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// Generate classifies the query and emits a matching synthetic article
// set: 1-2 low-trust articles for misinformation-flavored queries,
// exactly 3 mixed-trust articles (one unverified) for sensational ones,
// exactly 5 reputable articles with descending recency otherwise.
func (g *MockGenerator) Generate(query string) []Article {
	queryLower := strings.ToLower(query)

	for _, kw := range mockMisinfoKeywords {
		if strings.Contains(queryLower, kw) {
			return g.suspiciousArticles(query)
		}
	}
	for _, kw := range mockSensationalKeywords {
		if strings.Contains(queryLower, kw) {
			return g.sensationalArticles(query)
		}
	}
	return g.reliableArticles(query)
}

func (g *MockGenerator) suspiciousArticles(query string) []Article {
	g.mu.Lock()
	count := g.rng.Intn(2) + 1 // 1 or 2
	ages := make([]time.Duration, count)
	for i := range ages {
		// Random timestamp up to ~180 days old
		ages[i] = time.Duration(g.rng.Int63n(int64(180 * 24 * time.Hour)))
	}
	g.mu.Unlock()

	articles := make([]Article, 0, count)
	for i := 0; i < count; i++ {
		age := ages[i]
		articles = append(articles, Article{
			Title:       fmt.Sprintf("%s - Claim Without Verification", query),
			Description: fmt.Sprintf("Unverified claim about %s. No corroboration from reliable sources found.", query),
			URL:         fmt.Sprintf("https://example.com/unverified-%d", i+1),
			Source:      mockUnreliableSources[i%len(mockUnreliableSources)],
			PublishedAt: g.now().Add(-age),
			Synthetic:   true,
		})
	}
	return articles
}

func (g *MockGenerator) sensationalArticles(query string) []Article {
	articles := make([]Article, 0, 3)
	for i := 0; i < 3; i++ {
		kind := "Coverage"
		coverage := "Standard"
		if i == 1 {
			kind = "Unverified Report"
			coverage = "Sensationalized"
		}
		articles = append(articles, Article{
			Title:       fmt.Sprintf("%s - %s", query, kind),
			Description: fmt.Sprintf("%s coverage of %s.", coverage, query),
			URL:         fmt.Sprintf("https://example.com/article-%d", i+1),
			Source:      mockMixedSources[i],
			PublishedAt: g.now().Add(-time.Duration(i) * 24 * time.Hour),
			Synthetic:   true,
		})
	}
	return articles
}

func (g *MockGenerator) reliableArticles(query string) []Article {
	articles := make([]Article, 0, len(mockReliableSources))
	for i, source := range mockReliableSources {
		articles = append(articles, Article{
			Title:       fmt.Sprintf("%s - Latest Updates %d", query, i+1),
			Description: fmt.Sprintf("Comprehensive coverage of %s from multiple verified sources. This article provides detailed analysis and fact-checking.", query),
			URL:         fmt.Sprintf("https://example.com/article-%d", i+1),
			Source:      source,
			PublishedAt: g.now().Add(-time.Duration(i) * 24 * time.Hour),
			Synthetic:   true,
		})
	}
	return articles
}
