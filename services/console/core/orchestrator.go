package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/RuvinSL/content-seo-check/pkg/interfaces"
	"github.com/RuvinSL/content-seo-check/pkg/models"
)

// ErrSubmissionInFlight is returned when Submit is called while a
// previous submission has not settled. One in-flight slot, no queueing.
var ErrSubmissionInFlight = errors.New("a submission is already in flight")

// msgUnknownError is the fallback for transport failures with no
// structured error body.
const msgUnknownError = "An unknown error occurred."

// Orchestrator owns the analysis request lifecycle: serialize, submit,
// classify the outcome into a report or an AnalysisError.
type Orchestrator struct {
	serverURL  string
	httpClient interfaces.HTTPClient
	logger     interfaces.Logger
	inFlight   atomic.Bool
}

func NewOrchestrator(serverURL string, httpClient interfaces.HTTPClient, logger interfaces.Logger) *Orchestrator {
	return &Orchestrator{
		serverURL:  serverURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Submit issues exactly one analysis request and waits for it to settle.
// Failures of any kind come back as *models.AnalysisError; the caller
// only needs to distinguish report from error.
func (o *Orchestrator) Submit(ctx context.Context, req models.AnalysisRequest) (*models.Report, error) {
	if !o.inFlight.CompareAndSwap(false, true) {
		return nil, ErrSubmissionInFlight
	}
	defer o.inFlight.Store(false)

	endpoint := o.serverURL + "/api/analyze"

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, &models.AnalysisError{Message: msgUnknownError, Details: err.Error()}
	}

	o.logger.Info("Submitting analysis request",
		"endpoint", endpoint,
		"mode", string(req.Mode()),
	)

	start := time.Now()
	resp, err := o.httpClient.Post(ctx, endpoint, jsonData)
	if err != nil {
		o.logger.Error("Analysis request failed", "error", err, "duration", time.Since(start))
		return nil, &models.AnalysisError{Message: msgUnknownError, Details: err.Error()}
	}

	// A non-2xx status or an error field in the body both mean failure;
	// the server flattens everything into the same shape.
	var errBody models.ErrorResponse
	_ = json.Unmarshal(resp.Body, &errBody)

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !ok || errBody.Error != "" {
		message := errBody.Error
		if message == "" {
			message = fmt.Sprintf("Server returned status %d.", resp.StatusCode)
		}
		o.logger.Warn("Analysis rejected",
			"status_code", resp.StatusCode,
			"message", message,
			"duration", time.Since(start),
		)
		return nil, &models.AnalysisError{Message: message, Details: errBody.Details}
	}

	var report models.Report
	if err := json.Unmarshal(resp.Body, &report); err != nil {
		o.logger.Error("Failed to parse report", "error", err)
		return nil, &models.AnalysisError{Message: "Malformed analysis report received.", Details: err.Error()}
	}

	o.logger.Info("Analysis completed",
		"version", report.Version(),
		"duration", time.Since(start),
	)

	return &report, nil
}
