package monitoring

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics holds application metrics
type Metrics struct {
	RequestCount        int64
	ErrorCount          int64
	CacheHits           int64
	CacheMisses         int64
	GradingCount        int64
	AnalysisCount       int64
	NarrativeCalls      int64
	NarrativeErrors     int64
	AverageResponseTime int64 // in nanoseconds
	StartTime           time.Time

	// Status code tracking
	RequestCountByStatus map[int]int64
	StatusMutex          sync.RWMutex

	// Rate limit metrics
	RateLimitIPBlocks      int64
	RateLimitRedisErrors   int64
	RateLimitFallbackCount int64
}

// NewMetrics creates a new metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime:            time.Now(),
		RequestCountByStatus: make(map[int]int64),
	}
}

// IncrementRequest increments the request count
func (m *Metrics) IncrementRequest() {
	atomic.AddInt64(&m.RequestCount, 1)
}

// IncrementError increments the error count
func (m *Metrics) IncrementError() {
	atomic.AddInt64(&m.ErrorCount, 1)
}

// IncrementCacheHit increments cache hit count
func (m *Metrics) IncrementCacheHit() {
	atomic.AddInt64(&m.CacheHits, 1)
}

// IncrementCacheMiss increments cache miss count
func (m *Metrics) IncrementCacheMiss() {
	atomic.AddInt64(&m.CacheMisses, 1)
}

// IncrementGrading increments the completed-grading count
func (m *Metrics) IncrementGrading() {
	atomic.AddInt64(&m.GradingCount, 1)
}

// IncrementAnalysis increments the completed-analysis count
func (m *Metrics) IncrementAnalysis() {
	atomic.AddInt64(&m.AnalysisCount, 1)
}

// RecordNarrativeCall records a narrative generator call
func (m *Metrics) RecordNarrativeCall(success bool) {
	atomic.AddInt64(&m.NarrativeCalls, 1)
	if !success {
		atomic.AddInt64(&m.NarrativeErrors, 1)
	}
}

// RecordResponseTime records response time for averaging
func (m *Metrics) RecordResponseTime(duration time.Duration) {
	current := atomic.LoadInt64(&m.AverageResponseTime)
	newAverage := (current + duration.Nanoseconds()) / 2
	atomic.StoreInt64(&m.AverageResponseTime, newAverage)
}

// RecordRequestByStatus records request count by HTTP status code
func (m *Metrics) RecordRequestByStatus(statusCode int) {
	m.StatusMutex.Lock()
	defer m.StatusMutex.Unlock()
	m.RequestCountByStatus[statusCode]++
}

// IncrementRateLimitIPBlock increments the per-IP rate limit block count
func (m *Metrics) IncrementRateLimitIPBlock() {
	atomic.AddInt64(&m.RateLimitIPBlocks, 1)
}

// IncrementRateLimitRedisError increments the Redis rate limit error count
func (m *Metrics) IncrementRateLimitRedisError() {
	atomic.AddInt64(&m.RateLimitRedisErrors, 1)
}

// IncrementRateLimitFallback increments the in-memory fallback count
func (m *Metrics) IncrementRateLimitFallback() {
	atomic.AddInt64(&m.RateLimitFallbackCount, 1)
}

// GetStats returns a snapshot of all metrics
func (m *Metrics) GetStats() map[string]interface{} {
	m.StatusMutex.RLock()
	byStatus := make(map[int]int64, len(m.RequestCountByStatus))
	for code, count := range m.RequestCountByStatus {
		byStatus[code] = count
	}
	m.StatusMutex.RUnlock()

	return map[string]interface{}{
		"request_count":           atomic.LoadInt64(&m.RequestCount),
		"error_count":             atomic.LoadInt64(&m.ErrorCount),
		"cache_hits":              atomic.LoadInt64(&m.CacheHits),
		"cache_misses":            atomic.LoadInt64(&m.CacheMisses),
		"grading_count":           atomic.LoadInt64(&m.GradingCount),
		"analysis_count":          atomic.LoadInt64(&m.AnalysisCount),
		"narrative_calls":         atomic.LoadInt64(&m.NarrativeCalls),
		"narrative_errors":        atomic.LoadInt64(&m.NarrativeErrors),
		"avg_response_time_ms":    time.Duration(atomic.LoadInt64(&m.AverageResponseTime)).Milliseconds(),
		"requests_by_status":      byStatus,
		"rate_limit_ip_blocks":    atomic.LoadInt64(&m.RateLimitIPBlocks),
		"rate_limit_redis_errors": atomic.LoadInt64(&m.RateLimitRedisErrors),
		"rate_limit_fallbacks":    atomic.LoadInt64(&m.RateLimitFallbackCount),
		"uptime_seconds":          time.Since(m.StartTime).Seconds(),
	}
}
