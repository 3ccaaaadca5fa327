// cmd/verinews/metrics.go
package main

import (
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// Metrics holds a snapshot of system and application metrics
type Metrics struct {
	Timestamp       time.Time `json:"timestamp"`
	MemoryUsageMB   float64   `json:"memory_usage_mb"`
	CPUUsagePercent float64   `json:"cpu_usage_percent"`
	GoroutineCount  int       `json:"goroutine_count"`
	UptimeHours     float64   `json:"uptime_hours"`

	VerifyRequests   int64            `json:"verify_requests"`
	SearchRequests   int64            `json:"search_requests"`
	AIVerifications  int64            `json:"ai_verifications"`
	VerdictOverrides int64            `json:"verdict_overrides"`
	MockFallbacks    int64            `json:"mock_fallbacks"`
	ProviderCalls    map[string]int64 `json:"provider_calls"`
	ProviderFailures map[string]int64 `json:"provider_failures"`

	CacheSize    int     `json:"cache_size"`
	CacheHitRate float64 `json:"cache_hit_rate"`
}

// MetricsRegistry accumulates application counters
type MetricsRegistry struct {
	mutex            sync.Mutex
	startTime        time.Time
	verifyRequests   int64
	searchRequests   int64
	aiVerifications  int64
	verdictOverrides int64
	mockFallbacks    int64
	providerCalls    map[string]int64
	providerFailures map[string]int64
}

// NewMetricsRegistry creates an empty registry
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		startTime:        time.Now(),
		providerCalls:    make(map[string]int64),
		providerFailures: make(map[string]int64),
	}
}

func (m *MetricsRegistry) IncrVerify() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.verifyRequests++
}

func (m *MetricsRegistry) IncrSearch() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.searchRequests++
}

func (m *MetricsRegistry) IncrAIVerification() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.aiVerifications++
}

// IncrOverride counts verdicts forced by an override pre-check;
// tracked apart from AI verifications since no model call occurs
func (m *MetricsRegistry) IncrOverride() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.verdictOverrides++
}

func (m *MetricsRegistry) IncrMockFallback() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.mockFallbacks++
}

func (m *MetricsRegistry) IncrProviderCall(name string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.providerCalls[name]++
}

func (m *MetricsRegistry) IncrProviderFailure(name string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.providerFailures[name]++
}

// ProviderCallCount returns how often a provider has been invoked
func (m *MetricsRegistry) ProviderCallCount(name string) int64 {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.providerCalls[name]
}

// Snapshot collects current application and system metrics
func (m *MetricsRegistry) Snapshot(cache *Cache) *Metrics {
	m.mutex.Lock()
	calls := make(map[string]int64, len(m.providerCalls))
	for k, v := range m.providerCalls {
		calls[k] = v
	}
	failures := make(map[string]int64, len(m.providerFailures))
	for k, v := range m.providerFailures {
		failures[k] = v
	}
	snapshot := &Metrics{
		Timestamp:        time.Now(),
		GoroutineCount:   runtime.NumGoroutine(),
		UptimeHours:      time.Since(m.startTime).Hours(),
		VerifyRequests:   m.verifyRequests,
		SearchRequests:   m.searchRequests,
		AIVerifications:  m.aiVerifications,
		VerdictOverrides: m.verdictOverrides,
		MockFallbacks:    m.mockFallbacks,
		ProviderCalls:    calls,
		ProviderFailures: failures,
	}
	m.mutex.Unlock()

	if cache != nil {
		snapshot.CacheSize = cache.Len()
		snapshot.CacheHitRate = cache.HitRate()
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		snapshot.MemoryUsageMB = float64(vm.Used) / 1024 / 1024
	}
	if percent, err := cpu.Percent(0, false); err == nil && len(percent) > 0 {
		snapshot.CPUUsagePercent = percent[0]
	}

	return snapshot
}
