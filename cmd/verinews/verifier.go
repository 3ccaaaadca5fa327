// cmd/verinews/verifier.go
package main

import (
	"context"
	"time"
)

// externalVerifier is the contract of the optional AI adapter: a nil
// result means "no answer, defer to the rule-based path".
type externalVerifier interface {
	VerifyClaim(ctx context.Context, claim string, articles []Article, now time.Time) *CredibilityResult
}

// Verifier orchestrates one verification request: cache lookup, article
// aggregation, verdict overrides, the optional AI adapter, then the
// factual checker and rule-based scorer.
type Verifier struct {
	aggregator *Aggregator
	ai         externalVerifier
	overrides  []VerdictOverride
	cache      *Cache
	metrics    *MetricsRegistry
	now        func() time.Time
}

// NewVerifier wires a verifier. ai may be nil (rule-based only).
func NewVerifier(aggregator *Aggregator, ai externalVerifier, overrides []VerdictOverride, cache *Cache, metrics *MetricsRegistry) *Verifier {
	return &Verifier{
		aggregator: aggregator,
		ai:         ai,
		overrides:  overrides,
		cache:      cache,
		metrics:    metrics,
		now:        time.Now,
	}
}

// Verify produces a verdict with evidence for a claim. Results are
// memoized for the cache TTL keyed by the raw claim text.
func (v *Verifier) Verify(ctx context.Context, text string) *VerificationResponse {
	v.metrics.IncrVerify()

	cacheKey := cacheKeyVerify + text
	if cached, ok := v.cache.Get(cacheKey); ok {
		if resp, ok := cached.(*VerificationResponse); ok {
			out := *resp
			out.FromCache = true
			return &out
		}
	}

	now := v.now()
	articles := v.aggregator.FetchArticles(ctx, text)

	var result *CredibilityResult
	if result = checkOverrides(v.overrides, text); result != nil {
		v.metrics.IncrOverride()
	} else if v.ai != nil {
		if result = v.ai.VerifyClaim(ctx, text, articles, now); result != nil {
			Logger().Info("Using AI-powered verification")
			v.metrics.IncrAIVerification()
		}
	}

	if result == nil {
		Logger().Info("Using rule-based verification")
		scored := scoreClaim(text, articles, now)
		result = &scored
	}

	sources := articles
	if len(sources) > MaxResponseSources {
		sources = sources[:MaxResponseSources]
	}

	resp := &VerificationResponse{
		Text:             text,
		CredibilityScore: result.Score,
		Verdict:          result.Verdict,
		Sources:          sources,
		Analysis:         result.Details,
		Timestamp:        now,
		AIPowered:        result.AIPowered,
	}

	v.cache.Set(cacheKey, resp)
	return resp
}

// Search fetches articles for a free-text query, memoized like Verify.
// The second return reports whether the result came from the cache.
func (v *Verifier) Search(ctx context.Context, query string) ([]Article, bool) {
	v.metrics.IncrSearch()

	cacheKey := cacheKeySearch + query
	if cached, ok := v.cache.Get(cacheKey); ok {
		if articles, ok := cached.([]Article); ok {
			return articles, true
		}
	}

	articles := v.aggregator.FetchArticles(ctx, query)
	v.cache.Set(cacheKey, articles)
	return articles, false
}
