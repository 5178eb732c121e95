package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// AnalysisConfig toggles the optional feature-extraction groups and the
// deep-parse capability. Basic stats, readability, structure and vocabulary
// are always computed and have no toggle.
type AnalysisConfig struct {
	EnableGrammar    bool
	EnableStyle      bool
	EnableSentiment  bool
	EnablePlagiarism bool
	DeepParse        bool
}

// NarrativeConfig configures the optional narrative (LLM) generator.
type NarrativeConfig struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Config is the explicit configuration value object for the grading service.
// It is built once at process start and passed into component constructors;
// no component reads the environment directly.
type Config struct {
	Port            string
	DefaultRubric   string
	MinEssayLength  int
	MaxEssayLength  int
	CacheTTL        time.Duration
	RequestTimeout  time.Duration
	IPLimitPerMin   int
	RedisAddr       string
	RedisPassword   string
	Analysis        AnalysisConfig
	Narrative       NarrativeConfig
	AllowedOrigins  []string
	EnableProfiling bool
	EnableHSTS      bool
}

// FromEnv builds a Config from environment variables with defaults.
func FromEnv() Config {
	return Config{
		Port:           getEnvOrDefault("PORT", "8080"),
		DefaultRubric:  getEnvOrDefault("DEFAULT_RUBRIC", "standard"),
		MinEssayLength: getEnvIntOrDefault("MIN_ESSAY_LENGTH", 50),
		MaxEssayLength: getEnvIntOrDefault("MAX_ESSAY_LENGTH", 10000),
		CacheTTL:       getEnvDurationOrDefault("CACHE_TTL", 15*time.Minute),
		RequestTimeout: getEnvDurationOrDefault("REQUEST_TIMEOUT", 30*time.Second),
		IPLimitPerMin:  getEnvIntOrDefault("IP_LIMIT_PER_MIN", 60),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		Analysis: AnalysisConfig{
			EnableGrammar:    getEnvBoolOrDefault("ENABLE_GRAMMAR_CHECK", true),
			EnableStyle:      getEnvBoolOrDefault("ENABLE_STYLE_ANALYSIS", true),
			EnableSentiment:  getEnvBoolOrDefault("ENABLE_SENTIMENT_ANALYSIS", true),
			EnablePlagiarism: getEnvBoolOrDefault("ENABLE_PLAGIARISM_CHECK", false),
			DeepParse:        getEnvBoolOrDefault("ENABLE_DEEP_PARSE", false),
		},
		Narrative: NarrativeConfig{
			Enabled: os.Getenv("NARRATIVE_API_KEY") != "",
			BaseURL: getEnvOrDefault("NARRATIVE_BASE_URL", "https://openrouter.ai/api/v1"),
			APIKey:  os.Getenv("NARRATIVE_API_KEY"),
			Model:   getEnvOrDefault("NARRATIVE_MODEL", "openai/gpt-4o-mini"),
			Timeout: getEnvDurationOrDefault("NARRATIVE_TIMEOUT", 20*time.Second),
		},
		AllowedOrigins:  []string{getEnvOrDefault("ALLOWED_ORIGIN", "*")},
		EnableProfiling: getEnvBoolOrDefault("ENABLE_PROFILING", false),
		EnableHSTS:      getEnvBoolOrDefault("ENABLE_HSTS", false),
	}
}

// Validate checks the configuration and returns a list of issues.
func (c Config) Validate() []string {
	var issues []string

	if c.MinEssayLength <= 0 {
		issues = append(issues, "MIN_ESSAY_LENGTH must be positive")
	}
	if c.MaxEssayLength <= c.MinEssayLength {
		issues = append(issues, "MAX_ESSAY_LENGTH must be greater than MIN_ESSAY_LENGTH")
	}
	if c.IPLimitPerMin <= 0 {
		issues = append(issues, "IP_LIMIT_PER_MIN must be positive")
	}
	if c.Narrative.Enabled && c.Narrative.Timeout <= 0 {
		issues = append(issues, "NARRATIVE_TIMEOUT must be positive")
	}

	return issues
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		fmt.Fprintf(os.Stderr, "invalid value for %s: %s\n", key, value)
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
