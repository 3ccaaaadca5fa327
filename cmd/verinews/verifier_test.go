// cmd/verinews/verifier_test.go
package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAI returns a canned result, or nil to simulate adapter failure
type fakeAI struct {
	result *CredibilityResult
	calls  int
}

func (f *fakeAI) VerifyClaim(ctx context.Context, claim string, articles []Article, now time.Time) *CredibilityResult {
	f.calls++
	if f.result == nil {
		return nil
	}
	out := *f.result
	return &out
}

func newTestVerifier(ai externalVerifier, overrides []VerdictOverride, providers ...NewsProvider) *Verifier {
	metrics := NewMetricsRegistry()
	agg := NewAggregator(providers, nil, NewErrorBuffer(10), metrics)
	return NewVerifier(agg, ai, overrides, NewCache(time.Hour, 100), metrics)
}

func TestVerifyUsesAIResultVerbatim(t *testing.T) {
	ai := &fakeAI{result: &CredibilityResult{
		Score:     95,
		Verdict:   VerdictUncertain,
		Details:   []string{"Coverage is ambiguous"},
		AIPowered: true,
	}}
	provider := &fakeProvider{name: "a", articles: makeArticles("a", 5)}

	v := newTestVerifier(ai, nil, provider)
	resp := v.Verify(context.Background(), "some borderline claim")

	assert.Equal(t, 1, ai.calls)
	assert.Equal(t, 95, resp.CredibilityScore)
	assert.Equal(t, VerdictUncertain, resp.Verdict, "AI verdict vocabulary passes through unchanged")
	assert.Equal(t, []string{"Coverage is ambiguous"}, resp.Analysis)
	assert.True(t, resp.AIPowered)
}

func TestVerifyFallsBackWhenAIFails(t *testing.T) {
	ai := &fakeAI{result: nil}
	provider := &fakeProvider{name: "a", articles: []Article{
		{Title: "Quarterly update", URL: "https://e.org/1", Source: "BBC News", PublishedAt: time.Now()},
	}}

	v := newTestVerifier(ai, nil, provider)
	resp := v.Verify(context.Background(), "economy registered moderate growth")

	assert.Equal(t, 1, ai.calls)
	assert.False(t, resp.AIPowered)
	// Rule-based path is binary
	assert.Contains(t, []string{VerdictTrue, VerdictFalse}, resp.Verdict)
}

func TestVerifyOverridePrecedesAI(t *testing.T) {
	ai := &fakeAI{result: &CredibilityResult{Score: 10, Verdict: VerdictFalse, AIPowered: true}}
	provider := &fakeProvider{name: "a", articles: makeArticles("a", 5)}

	v := newTestVerifier(ai, DefaultOverrides(), provider)
	resp := v.Verify(context.Background(), "Narendra Modi is the Prime Minister of India")

	assert.Equal(t, 0, ai.calls, "a matching override must bypass the AI adapter")
	assert.Equal(t, VerdictTrue, resp.Verdict)
	assert.Equal(t, 100, resp.CredibilityScore)

	// Overrides are counted on their own, not as AI verifications
	snap := v.metrics.Snapshot(nil)
	assert.Equal(t, int64(1), snap.VerdictOverrides)
	assert.Equal(t, int64(0), snap.AIVerifications)
}

func TestVerifyResultCached(t *testing.T) {
	provider := &fakeProvider{name: "a", articles: makeArticles("a", 5)}
	v := newTestVerifier(nil, nil, provider)

	first := v.Verify(context.Background(), "repeatable claim text")
	second := v.Verify(context.Background(), "repeatable claim text")

	assert.False(t, first.FromCache)
	assert.True(t, second.FromCache)
	assert.Equal(t, 1, provider.calls, "cache hit must not query providers again")
	assert.Equal(t, first.CredibilityScore, second.CredibilityScore)
}

func TestVerifyLimitsResponseSources(t *testing.T) {
	provider := &fakeProvider{name: "a", articles: makeArticles("a", 9)}
	v := newTestVerifier(nil, nil, provider)

	resp := v.Verify(context.Background(), "some claim")
	assert.Len(t, resp.Sources, MaxResponseSources)
}

func TestSearchCached(t *testing.T) {
	provider := &fakeProvider{name: "a", articles: makeArticles("a", 5)}
	v := newTestVerifier(nil, nil, provider)

	articles, fromCache := v.Search(context.Background(), "bridge opening")
	require.Len(t, articles, 5)
	assert.False(t, fromCache)

	_, fromCache = v.Search(context.Background(), "bridge opening")
	assert.True(t, fromCache)
	assert.Equal(t, 1, provider.calls)
}

func TestVerifyWithoutAIUsesRuleBasedPath(t *testing.T) {
	provider := &fakeProvider{name: "a", articles: makeArticles("a", 5)}
	v := newTestVerifier(nil, nil, provider)

	resp := v.Verify(context.Background(), "economy registered moderate growth")
	assert.False(t, resp.AIPowered)
	assert.NotEmpty(t, resp.Analysis)
}
