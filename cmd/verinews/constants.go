// cmd/verinews/constants.go
package main

import "time"

// Application constants
const (
	AppName    = "Verinews"
	AppVersion = "1.0.0"

	// Default configuration
	DefaultConfigPath    = "config/providers.yml"
	DefaultLogPath       = "logs/verinews.log"
	DefaultAPIPort       = 8080
	DefaultMaxPayload    = 64 * 1024 // 64KB, claims are short text
	DefaultProviderLimit = 10        // articles requested per provider

	// Time-related constants
	DefaultProviderTimeout = 5 * time.Second
	DefaultAITimeout       = 8 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	// Cache settings
	DefaultCacheTTL   = 1 * time.Hour
	DefaultCacheSweep = "@every 10m"
	MaxCacheItems     = 1000

	// Aggregation limits
	MaxArticles        = 10 // retained after dedup
	EnoughArticles     = 5  // early-exit threshold for the provider chain
	MaxResponseSources = 5  // sources echoed back in a verify response
)

// Cache key prefixes, kept stable so restarts with a warm external store
// (if one is ever swapped in) stay compatible.
const (
	cacheKeyVerify = "verify_"
	cacheKeySearch = "search_"
)
