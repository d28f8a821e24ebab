package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/RuvinSL/content-seo-check/pkg/interfaces"
	"github.com/RuvinSL/content-seo-check/pkg/models"
)

const msgMissingInput = "Missing content or URL in the request."

// AnalyzeHandler is the proxy/fallback decision service behind
// POST /api/analyze. With an engine client it forwards; without one it
// synthesizes a mock report.
type AnalyzeHandler struct {
	engineClient interfaces.EngineClient // nil selects mock mode
	synthesizer  interfaces.Synthesizer
	logger       interfaces.Logger
	metrics      interfaces.MetricsCollector
}

func NewAnalyzeHandler(engineClient interfaces.EngineClient, synthesizer interfaces.Synthesizer, logger interfaces.Logger, metrics interfaces.MetricsCollector) *AnalyzeHandler {
	return &AnalyzeHandler{
		engineClient: engineClient,
		synthesizer:  synthesizer,
		logger:       logger,
		metrics:      metrics,
	}
}

func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req models.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("Failed to parse request", "error", err)
		h.sendError(w, models.ErrorResponse{Error: "Invalid request format"}, http.StatusBadRequest)
		return
	}

	if h.engineClient != nil {
		h.forward(w, r, req)
		return
	}
	h.synthesize(w, r, req)
}

// forward relays the request to the core engine and passes the engine's
// JSON body through verbatim.
func (h *AnalyzeHandler) forward(w http.ResponseWriter, r *http.Request, req models.AnalysisRequest) {
	start := time.Now()
	mode := string(req.Mode())

	raw, err := h.engineClient.Forward(r.Context(), req)
	if err != nil {
		h.metrics.RecordAnalysis(mode, "proxy", false, time.Since(start).Seconds())

		var engineErr *EngineError
		if errors.As(err, &engineErr) {
			h.sendError(w, models.ErrorResponse{
				Error:   engineErr.Message,
				Details: engineErr.Details,
				Status:  engineErr.Status,
			}, engineErr.Status)
			return
		}

		h.sendError(w, models.ErrorResponse{
			Error:  msgEngineUnavailable,
			Status: http.StatusServiceUnavailable,
		}, http.StatusServiceUnavailable)
		return
	}

	h.metrics.RecordAnalysis(mode, "proxy", true, time.Since(start).Seconds())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		h.logger.Error("Failed to write engine response", "error", err)
	}
}

// synthesize runs the mock fallback path.
func (h *AnalyzeHandler) synthesize(w http.ResponseWriter, r *http.Request, req models.AnalysisRequest) {
	start := time.Now()
	mode := string(req.Mode())

	if req.IsEmpty() {
		h.sendError(w, models.ErrorResponse{Error: msgMissingInput}, http.StatusBadRequest)
		return
	}

	h.logger.Info("No core engine configured, synthesizing mock report", "mode", mode)

	report, err := h.synthesizer.Synthesize(r.Context(), req)
	if err != nil {
		// Only reachable when the client goes away mid-delay.
		h.logger.Warn("Mock synthesis aborted", "error", err)
		h.metrics.RecordAnalysis(mode, "mock", false, time.Since(start).Seconds())
		h.sendError(w, models.ErrorResponse{Error: "Analysis was interrupted"}, http.StatusServiceUnavailable)
		return
	}

	h.metrics.RecordAnalysis(mode, "mock", true, time.Since(start).Seconds())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

// sendError flattens a failure into the uniform error body.
func (h *AnalyzeHandler) sendError(w http.ResponseWriter, response models.ErrorResponse, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Failed to encode error response", "error", err)
	}
}
