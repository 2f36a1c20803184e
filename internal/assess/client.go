// Package assess wraps the external text-assessment service used for
// maintenance triage and lease summarization. Every call is best effort:
// network failures, bad responses and timeouts all degrade to a fixed
// fallback so no workflow ever blocks or fails on the service.
package assess

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"property-service/internal/model"
	"property-service/pkg/config"

	"go.uber.org/zap"
)

// FallbackAssessment is returned whenever maintenance classification fails.
const FallbackAssessment = "Manual assessment required. AI service unavailable."

// FallbackSummary is returned whenever lease summarization fails.
const FallbackSummary = "Summary unavailable. Please review the lease document manually."

// TicketAssessment is the structured triage result for a maintenance issue.
type TicketAssessment struct {
	Priority   model.TicketPriority `json:"priority"`
	Assessment string               `json:"assessment"`
}

// Assessor classifies maintenance issues and summarizes lease text.
type Assessor interface {
	ClassifyMaintenance(ctx context.Context, issue string) (*TicketAssessment, error)
	SummarizeLease(ctx context.Context, leaseText string) (string, error)
}

// Client talks to the assessment service over JSON/HTTP. The underlying
// http.Client carries an explicit timeout; exceeding it is an ordinary
// failure handled by the caller's fallback.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewClient creates an assessment client from configuration
func NewClient(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		BaseURL:    cfg.Assess.BaseURL,
		HTTPClient: &http.Client{Timeout: cfg.Assess.Timeout},
		Logger:     logger,
	}
}

// ClassifyMaintenance asks the service for a priority and assessment for
// the reported issue.
func (c *Client) ClassifyMaintenance(ctx context.Context, issue string) (*TicketAssessment, error) {
	raw, err := c.post(ctx, "/v1/classify", map[string]string{"text": issue})
	if err != nil {
		return nil, err
	}

	var result TicketAssessment
	if err := json.Unmarshal(raw, &result); err != nil {
		c.Logger.Error("Failed to parse classification response", zap.Error(err))
		return nil, err
	}
	if !result.Priority.Valid() {
		return nil, fmt.Errorf("assessment service returned unknown priority %q", result.Priority)
	}
	return &result, nil
}

// SummarizeLease asks the service for a plain-text summary of lease text.
func (c *Client) SummarizeLease(ctx context.Context, leaseText string) (string, error) {
	raw, err := c.post(ctx, "/v1/summarize", map[string]string{"text": leaseText})
	if err != nil {
		return "", err
	}

	var result struct {
		Summary string `json:"summary"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		c.Logger.Error("Failed to parse summary response", zap.Error(err))
		return "", err
	}
	if result.Summary == "" {
		return "", fmt.Errorf("assessment service returned an empty summary")
	}
	return result.Summary, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	if c.BaseURL == "" {
		return nil, fmt.Errorf("assessment service not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		c.Logger.Error("Failed to create assessment request", zap.Error(err))
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Error("Assessment request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Logger.Error("Failed to read assessment response", zap.Error(err))
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		c.Logger.Error("Assessment service returned error status",
			zap.Int("status", resp.StatusCode),
			zap.String("response", string(respBody)))
		return nil, fmt.Errorf("assessment request failed: %d %s", resp.StatusCode, string(respBody))
	}

	return respBody, nil
}

// DefaultAssessment is the fixed fallback triage used when the service is
// unreachable or misbehaves.
func DefaultAssessment() *TicketAssessment {
	return &TicketAssessment{
		Priority:   model.PriorityMedium,
		Assessment: FallbackAssessment,
	}
}
