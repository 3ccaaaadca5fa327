// cmd/verinews/aggregator.go
package main

import (
	"context"

	"golang.org/x/time/rate"
)

// Aggregator queries a fixed-priority chain of providers, merges and
// deduplicates their articles, and falls back to synthetic generation
// when the whole chain comes up empty. Provider failures are logged and
// never propagated.
type Aggregator struct {
	providers []NewsProvider
	limiters  map[string]*rate.Limiter
	mockGen   *MockGenerator
	errors    *ErrorBuffer
	metrics   *MetricsRegistry
}

// NewAggregator builds an aggregator over the given provider chain.
// Providers are tried in slice order. A nil limiter map disables rate
// gating.
func NewAggregator(providers []NewsProvider, limiters map[string]*rate.Limiter, errors *ErrorBuffer, metrics *MetricsRegistry) *Aggregator {
	return &Aggregator{
		providers: providers,
		limiters:  limiters,
		mockGen:   NewMockGenerator(),
		errors:    errors,
		metrics:   metrics,
	}
}

// NewAggregatorFromConfig wires the concrete provider chain in the
// priority order of cfg.Providers, skipping disabled entries.
func NewAggregatorFromConfig(cfg *Config, errors *ErrorBuffer, metrics *MetricsRegistry) *Aggregator {
	available := map[string]NewsProvider{
		"newsapi":   NewNewsAPIProvider(cfg.NewsAPIKey),
		"gnews":     NewGNewsProvider(cfg.GNewsAPIKey),
		"newsdata":  NewNewsDataProvider(cfg.NewsDataAPIKey),
		"guardian":  NewGuardianProvider(cfg.GuardianAPIKey),
		"googlerss": NewGoogleRSSProvider(),
	}

	var providers []NewsProvider
	limiters := make(map[string]*rate.Limiter)
	for _, pc := range cfg.Providers {
		provider, ok := available[pc.Name]
		if !ok {
			Logger().Warning("Unknown provider %q in chain, skipping", pc.Name)
			continue
		}
		if !pc.Enabled {
			continue
		}
		providers = append(providers, provider)
		if pc.RatePerMinute > 0 {
			limiters[pc.Name] = rate.NewLimiter(rate.Limit(float64(pc.RatePerMinute)/60.0), pc.RatePerMinute)
		}
	}

	return NewAggregator(providers, limiters, errors, metrics)
}

// FetchArticles runs the provider chain for a query. Later providers
// are skipped once EnoughArticles have accumulated; results are merged,
// deduplicated by URL keeping first occurrence, and capped at
// MaxArticles. An empty chain result is replaced by synthetic articles
// so the scorer always has some signal.
func (a *Aggregator) FetchArticles(ctx context.Context, query string) []Article {
	var all []Article

	for _, provider := range a.providers {
		if len(all) >= EnoughArticles {
			break
		}

		if limiter, ok := a.limiters[provider.Name()]; ok && !limiter.Allow() {
			// Over quota counts the same as a failed provider
			Logger().Warning("Provider %s rate limited, skipping", provider.Name())
			a.errors.Record(NewProviderError(ErrProviderLimited, provider.Name()+" over rate limit", nil), "aggregator")
			continue
		}

		articles, err := provider.Fetch(ctx, query)
		a.metrics.IncrProviderCall(provider.Name())
		if err != nil {
			Logger().Warning("Provider %s failed: %v", provider.Name(), err)
			a.errors.Record(err, "aggregator")
			a.metrics.IncrProviderFailure(provider.Name())
			continue
		}

		Logger().Info("Provider %s returned %d articles", provider.Name(), len(articles))
		all = append(all, articles...)
	}

	if len(all) == 0 {
		Logger().Info("No articles from providers for %q, generating synthetic set", truncateString(query, 60))
		a.metrics.IncrMockFallback()
		return a.mockGen.Generate(query)
	}

	unique := dedupeByURL(all)
	if len(unique) > MaxArticles {
		unique = unique[:MaxArticles]
	}
	return unique
}

// dedupeByURL removes articles whose URL was already seen, preserving
// first-seen order.
func dedupeByURL(articles []Article) []Article {
	seen := make(map[string]bool, len(articles))
	unique := make([]Article, 0, len(articles))
	for _, article := range articles {
		if seen[article.URL] {
			continue
		}
		seen[article.URL] = true
		unique = append(unique, article)
	}
	return unique
}
