package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"github.com/RuvinSL/content-seo-check/pkg/interfaces"
	"github.com/RuvinSL/content-seo-check/pkg/models"
)

// EngineError is a classified downstream failure. Status is the HTTP
// status the decision service should relay to the client.
type EngineError struct {
	Status  int
	Message string
	Details string
}

func (e *EngineError) Error() string {
	return e.Message
}

const (
	msgEngineOffline     = "Core engine is offline or unreachable."
	msgEngineTimeout     = "Core engine request timed out (30s limit)."
	msgEngineUnavailable = "Core engine is unavailable."
	detailsCheckLogs     = "Check the core engine logs for details."
)

// enginePayload is the outbound body sent to the core engine. The URL is
// percent-encoded before it crosses the trust boundary.
type enginePayload struct {
	Content string `json:"content"`
	URL     string `json:"url,omitempty"`
}

// HTTPEngineClient forwards analysis requests to the configured core engine.
type HTTPEngineClient struct {
	engineURL  string
	httpClient interfaces.HTTPClient
	timeout    time.Duration
	logger     interfaces.Logger
}

func NewEngineClient(engineURL string, httpClient interfaces.HTTPClient, timeout time.Duration, logger interfaces.Logger) *HTTPEngineClient {
	return &HTTPEngineClient{
		engineURL:  engineURL,
		httpClient: httpClient,
		timeout:    timeout,
		logger:     logger,
	}
}

// Forward sends the request to the core engine and relays the response
// body verbatim. Any failure comes back as an *EngineError carrying the
// status and message the caller should surface.
//
// The downstream body is trusted as-is: no schema validation happens
// here. Known limitation.
func (c *HTTPEngineClient) Forward(ctx context.Context, req models.AnalysisRequest) (json.RawMessage, error) {
	requestID, _ := ctx.Value("request_id").(string)
	c.logger.Info("Forwarding analysis request to core engine",
		"engine_url", c.engineURL,
		"mode", string(req.Mode()),
		"request_id", requestID,
	)

	payload := enginePayload{Content: req.Content}
	if req.URL != "" {
		payload.URL = url.QueryEscape(req.URL)
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, &EngineError{
			Status:  http.StatusInternalServerError,
			Message: fmt.Sprintf("Failed to build engine payload: %v", err),
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.httpClient.Post(callCtx, c.engineURL, jsonData)
	duration := time.Since(start)

	if err != nil {
		engineErr := c.classifyTransportError(err)
		c.logger.Error("Core engine call failed",
			"error", err,
			"status", engineErr.Status,
			"duration", duration,
			"request_id", requestID,
		)
		return nil, engineErr
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		engineErr := c.classifyErrorStatus(resp)
		c.logger.Error("Core engine returned error status",
			"status_code", resp.StatusCode,
			"duration", duration,
			"request_id", requestID,
		)
		return nil, engineErr
	}

	c.logger.Info("Core engine call completed",
		"status_code", resp.StatusCode,
		"content_length", len(resp.Body),
		"duration", duration,
		"request_id", requestID,
	)

	return json.RawMessage(resp.Body), nil
}

// classifyTransportError maps a failed downstream call onto the uniform
// error taxonomy: refused connections become 503, timeouts become 504,
// anything else a generic 503.
func (c *HTTPEngineClient) classifyTransportError(err error) *EngineError {
	var netErr net.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &EngineError{Status: http.StatusGatewayTimeout, Message: msgEngineTimeout}
	case errors.As(err, &netErr) && netErr.Timeout():
		return &EngineError{Status: http.StatusGatewayTimeout, Message: msgEngineTimeout}
	case errors.Is(err, syscall.ECONNREFUSED):
		return &EngineError{Status: http.StatusServiceUnavailable, Message: msgEngineOffline}
	default:
		return &EngineError{
			Status:  http.StatusServiceUnavailable,
			Message: msgEngineUnavailable,
			Details: err.Error(),
		}
	}
}

// classifyErrorStatus relays a downstream error status, lifting details
// from the engine's own error body when it has one.
func (c *HTTPEngineClient) classifyErrorStatus(resp *models.HTTPResponse) *EngineError {
	details := detailsCheckLogs

	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body, &body); err == nil && body.Error != "" {
		details = body.Error
		if body.Details != "" {
			details = body.Error + ": " + body.Details
		}
	}

	return &EngineError{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("Core engine failed (%s).", http.StatusText(resp.StatusCode)),
		Details: details,
	}
}

// CheckHealth probes the core engine health endpoint.
func (c *HTTPEngineClient) CheckHealth(ctx context.Context) error {
	endpoint := c.engineURL + "/health"

	c.logger.Debug("Checking core engine health", "endpoint", endpoint)

	resp, err := c.httpClient.Get(ctx, endpoint)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy status: %d", resp.StatusCode)
	}

	return nil
}

// Ensure HTTPEngineClient implements interfaces.EngineClient
var _ interfaces.EngineClient = (*HTTPEngineClient)(nil)
