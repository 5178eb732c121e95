package main

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/graderly/essay-engine/internal/analysis"
	"github.com/graderly/essay-engine/internal/cache"
	"github.com/graderly/essay-engine/internal/config"
	"github.com/graderly/essay-engine/internal/encoding"
	"github.com/graderly/essay-engine/internal/errors"
	"github.com/graderly/essay-engine/internal/feedback"
	"github.com/graderly/essay-engine/internal/grading"
	"github.com/graderly/essay-engine/internal/middleware"
	"github.com/graderly/essay-engine/internal/monitoring"
	"github.com/graderly/essay-engine/internal/narrative"
	"github.com/graderly/essay-engine/internal/ratelimit"
	"github.com/graderly/essay-engine/internal/rubric"
	"github.com/graderly/essay-engine/internal/security"
	"github.com/graderly/essay-engine/internal/types"
)

// server wires the grading pipeline behind the HTTP surface.
type server struct {
	cfg      config.Config
	router   *gin.Engine
	logger   *monitoring.Logger
	metrics  *monitoring.Metrics
	cache    *cache.Cache
	analyzer *analysis.Analyzer
	engine   *grading.Engine
	registry *rubric.Registry
	builder  *feedback.Builder
	options  analysis.Options
	gzip     *middleware.Compression
}

func newServer(cfg config.Config, logger *monitoring.Logger, metrics *monitoring.Metrics, redisClient *ratelimit.RedisClient) (*server, error) {
	var generator narrative.Generator
	if cfg.Narrative.Enabled {
		generator = narrative.NewClient(cfg.Narrative, logger, metrics)
	}

	s := &server{
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		cache:    cache.New(cfg.CacheTTL, "/grade", "/analyze"),
		analyzer: analysis.NewAnalyzer(cfg.Analysis.DeepParse),
		engine:   grading.NewEngine(),
		registry: rubric.NewRegistry(),
		builder:  feedback.NewBuilder(generator),
		options:  analysis.OptionsFromConfig(cfg.Analysis),
		gzip:     middleware.NewCompression(6),
	}

	if _, err := s.registry.Resolve(cfg.DefaultRubric); err != nil {
		return nil, err
	}

	r := gin.New()

	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsConfig))
	r.Use(security.SecurityHeaders(cfg.EnableHSTS))

	// Essay text arrives as JSON-escaped UTF-8, so allow generous overhead
	// past the configured essay maximum.
	r.Use(security.BodySizeLimit(int64(cfg.MaxEssayLength)*4 + 4096))
	r.Use(monitoring.MonitoringMiddleware(metrics, logger))
	r.Use(errors.ErrorHandler())
	r.Use(errors.RecoveryHandler())

	limiter := ratelimit.NewRateLimiter(redisClient, ratelimit.Config{
		IPLimitPerMin:   cfg.IPLimitPerMin,
		BurstMultiplier: 2,
	}, metrics)
	r.Use(limiter.IPRateLimitMiddleware())

	r.Use(s.gzip.Handler())
	r.Use(s.cache.Middleware(metrics))

	r.GET("/health", s.handleHealth)
	r.GET("/metrics", s.handleMetrics)
	r.GET("/cache/stats", s.handleCacheStats)
	r.GET("/rubrics", s.handleRubrics)
	r.POST("/grade", s.handleGrade)
	r.POST("/analyze", s.handleAnalyze)
	r.POST("/export", s.handleExport)

	s.router = r
	registerProfiling(s)

	return s, nil
}

func (s *server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   "1.0.0",
		"rubrics":   s.registry.Keys(),
		"metrics":   s.metrics.GetStats(),
	})
}

func (s *server) handleMetrics(c *gin.Context) {
	stats := s.metrics.GetStats()
	stats["compression"] = s.gzip.GetStats()
	c.JSON(http.StatusOK, stats)
}

func (s *server) handleCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.cache.Stats())
}

func (s *server) handleRubrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default": s.cfg.DefaultRubric,
		"rubrics": s.registry.List(),
	})
}

// gradeEssay runs the full analyze-grade-feedback pipeline for a request.
func (s *server) gradeEssay(ctx context.Context, req types.GradeRequest) (*types.GradeResponse, error) {
	rubricKey := req.Rubric
	if rubricKey == "" {
		rubricKey = s.cfg.DefaultRubric
	}
	rb, err := s.registry.Resolve(rubricKey)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	bundle, err := s.analyzer.Analyze(req.EssayText, s.options)
	if err != nil {
		return nil, err
	}
	s.metrics.IncrementAnalysis()

	result, err := s.engine.Grade(req.EssayText, bundle, rb)
	if err != nil {
		return nil, err
	}

	fb, err := s.builder.Build(ctx, req.EssayText, bundle, result, req.Prompt)
	if err != nil {
		return nil, err
	}

	s.metrics.IncrementGrading()
	s.logger.GradingLogger(rb.Key, bundle.BasicStats.WordCount, result.OverallScore, result.LetterGrade, time.Since(start), false)

	return &types.GradeResponse{
		Result:   result,
		Feedback: fb,
		Analysis: bundle,
	}, nil
}

func (s *server) handleGrade(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.RequestTimeout)
	defer cancel()

	var req types.GradeRequest
	if err := c.BindJSON(&req); err != nil {
		s.abortWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}
	if appErr := s.validateEssayText(req.EssayText); appErr != nil {
		s.abortWithError(c, appErr)
		return
	}

	response, err := s.gradeEssay(ctx, req)
	if err != nil {
		s.abortWithError(c, errors.ToAppError(err))
		return
	}

	c.JSON(http.StatusOK, response)
}

func (s *server) handleAnalyze(c *gin.Context) {
	var req types.AnalyzeRequest
	if err := c.BindJSON(&req); err != nil {
		s.abortWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}
	if appErr := s.validateEssayText(req.EssayText); appErr != nil {
		s.abortWithError(c, appErr)
		return
	}

	start := time.Now()
	bundle, err := s.analyzer.Analyze(req.EssayText, s.options)
	if err != nil {
		s.abortWithError(c, errors.ToAppError(err))
		return
	}

	s.metrics.IncrementAnalysis()
	s.logger.AnalysisLogger(len(req.EssayText), bundle.BasicStats.WordCount, bundle.BasicStats.SentenceCount, time.Since(start))

	c.JSON(http.StatusOK, types.AnalyzeResponse{Analysis: bundle})
}

// handleExport grades the essay and streams the stamped report in the
// requested format.
func (s *server) handleExport(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), s.cfg.RequestTimeout)
	defer cancel()

	var req types.GradeRequest
	if err := c.BindJSON(&req); err != nil {
		s.abortWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}
	if appErr := s.validateEssayText(req.EssayText); appErr != nil {
		s.abortWithError(c, appErr)
		return
	}

	response, err := s.gradeEssay(ctx, req)
	if err != nil {
		s.abortWithError(c, errors.ToAppError(err))
		return
	}

	report := encoding.NewReport(response.Analysis, response.Result, response.Feedback)

	switch format := strings.ToLower(c.DefaultQuery("format", "json")); format {
	case "json":
		data, err := report.ToJSON()
		if err != nil {
			s.abortWithError(c, errors.NewInternalError("report serialization failed", err))
			return
		}
		c.Header("Content-Disposition", `attachment; filename="essay_report_`+report.ID+`.json"`)
		c.Data(http.StatusOK, "application/json", data)
	case "csv":
		data, err := report.ToCSV()
		if err != nil {
			s.abortWithError(c, errors.NewInternalError("report serialization failed", err))
			return
		}
		c.Header("Content-Disposition", `attachment; filename="essay_report_`+report.ID+`.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	default:
		s.abortWithError(c, errors.NewValidationError("unsupported export format: "+format))
	}
}

// validateEssayText applies the API boundary length checks. The analyzer
// rejects empty input on its own; the bounds here guard the service.
func (s *server) validateEssayText(text string) *errors.AppError {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return errors.NewEmptyInputError()
	}
	if len(trimmed) < s.cfg.MinEssayLength {
		return errors.NewValidationError("essay text is too short for meaningful analysis")
	}
	if len(trimmed) > s.cfg.MaxEssayLength {
		return errors.NewValidationError("essay text exceeds the maximum supported length")
	}
	return nil
}

func (s *server) abortWithError(c *gin.Context, appErr *errors.AppError) {
	errors.LogError(c, appErr)
	c.JSON(appErr.HTTPStatus, appErr)
	c.Abort()
}
