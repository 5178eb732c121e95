package narrative

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/graderly/essay-engine/internal/config"
	"github.com/graderly/essay-engine/internal/errors"
	"github.com/graderly/essay-engine/internal/monitoring"
	"github.com/graderly/essay-engine/internal/resilience"
)

const systemPrompt = `You are an experienced writing instructor giving constructive feedback on a student essay. Be encouraging, specific, and actionable. Balance strengths with areas for growth. Cover: overall assessment, content strengths, areas for improvement, and concrete recommendations.`

// Client calls an OpenAI-compatible chat completions endpoint to produce
// instructor commentary. Failed or slow calls surface as errors that the
// feedback stage absorbs.
type Client struct {
	http    *resty.Client
	model   string
	logger  *monitoring.Logger
	metrics *monitoring.Metrics
	retry   resilience.RetryConfig
}

// NewClient builds a narrative client from configuration. The caller is
// responsible for only constructing one when cfg.Enabled is set.
func NewClient(cfg config.NarrativeConfig, logger *monitoring.Logger, metrics *monitoring.Metrics) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetAuthToken(cfg.APIKey).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{
		http:    httpClient,
		model:   cfg.Model,
		logger:  logger,
		metrics: metrics,
		retry:   resilience.NarrativeRetryConfig(),
	}
}

// Name identifies the generator in responses and logs.
func (c *Client) Name() string {
	return c.model
}

// Generate requests commentary for a graded essay. Retries transient
// failures within the context deadline.
func (c *Client) Generate(ctx context.Context, req Request) (string, error) {
	userContent := fmt.Sprintf(
		"The essay scored %.1f/100 (grade %s) at %d words.\n\nEssay:\n\n%s",
		req.OverallScore, req.LetterGrade, req.WordCount, req.EssayText,
	)
	if req.Prompt != "" {
		userContent = fmt.Sprintf("Essay prompt: %s\n\n%s", req.Prompt, userContent)
	}

	payload := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userContent},
		},
	}

	var content string
	err := resilience.RetryWithConfig(ctx, c.retry, func() error {
		start := time.Now()
		resp, err := c.http.R().
			SetContext(ctx).
			SetBody(payload).
			Post("/chat/completions")

		status := 0
		if resp != nil {
			status = resp.StatusCode()
		}
		success := err == nil && resp != nil && resp.IsSuccess()

		if c.logger != nil {
			c.logger.NarrativeLogger("openai-compatible", c.model, status, time.Since(start), success)
		}
		if c.metrics != nil {
			c.metrics.RecordNarrativeCall(success)
		}

		if err != nil {
			// Transport errors are retryable within the deadline.
			return errors.NewTimeoutError("narrative request failed", err)
		}
		if !resp.IsSuccess() {
			cause := fmt.Errorf("narrative endpoint returned status %d", status)
			if resilience.IsRetryableHTTPStatus(status) {
				return errors.NewTimeoutError("narrative endpoint unavailable", cause)
			}
			return cause
		}

		content = gjson.GetBytes(resp.Body(), "choices.0.message.content").String()
		if content == "" {
			return fmt.Errorf("empty completion in response")
		}
		return nil
	})
	if err != nil {
		return "", errors.NewNarrativeUnavailableError(err)
	}

	return content, nil
}
