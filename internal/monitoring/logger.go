package monitoring

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger provides enhanced structured logging with context
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new enhanced logger
func NewLogger() *Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   "timestamp",
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	})

	return &Logger{
		Logger: slog.New(handler),
	}
}

// RequestLogger logs HTTP request details
func (l *Logger) RequestLogger(method, path, ip, userAgent string, statusCode int, duration time.Duration) {
	l.Info("HTTP Request",
		"method", method,
		"path", path,
		"ip", ip,
		"user_agent", userAgent,
		"status_code", statusCode,
		"duration_ms", duration.Milliseconds(),
	)
}

// GradingLogger logs a completed grading operation
func (l *Logger) GradingLogger(rubric string, wordCount int, overallScore float64, letterGrade string, duration time.Duration, cacheHit bool) {
	l.Info("Grading Completed",
		"rubric", rubric,
		"word_count", wordCount,
		"overall_score", overallScore,
		"letter_grade", letterGrade,
		"duration_ms", duration.Milliseconds(),
		"cache_hit", cacheHit,
	)
}

// AnalysisLogger logs a feature-extraction operation
func (l *Logger) AnalysisLogger(inputLength, wordCount, sentenceCount int, duration time.Duration) {
	l.Info("Analysis Completed",
		"input_length", inputLength,
		"word_count", wordCount,
		"sentence_count", sentenceCount,
		"duration_ms", duration.Milliseconds(),
	)
}

// NarrativeLogger logs narrative generator calls
func (l *Logger) NarrativeLogger(provider, model string, statusCode int, duration time.Duration, success bool) {
	level := slog.LevelInfo
	if !success {
		level = slog.LevelWarn
	}

	l.Log(context.Background(), level, "Narrative Call",
		"provider", provider,
		"model", model,
		"status_code", statusCode,
		"duration_ms", duration.Milliseconds(),
		"success", success,
	)
}

// APIErrorLogger logs API errors with context
func (l *Logger) APIErrorLogger(err error, method, path, ip string, statusCode int) {
	l.Error("API Error",
		"error", err.Error(),
		"method", method,
		"path", path,
		"ip", ip,
		"status_code", statusCode,
	)
}

// CacheLogger logs cache operations
func (l *Logger) CacheLogger(operation, key string, hit bool, itemCount int) {
	l.Debug("Cache Operation",
		"operation", operation,
		"key_hash", key[:8]+"...",
		"hit", hit,
		"cache_size", itemCount,
	)
}

// SystemLogger logs system-level events
func (l *Logger) SystemLogger(event, details string) {
	l.Info("System Event",
		"event", event,
		"details", details,
		"uptime", time.Since(startTime).String(),
	)
}

var startTime = time.Now()
