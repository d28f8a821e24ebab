package interfaces

import (
	"context"
	"encoding/json"

	"github.com/RuvinSL/content-seo-check/pkg/models"
)

// EngineClient defines the contract for forwarding an analysis request to
// the downstream core engine
// Dependency Inversion Principle: handlers depend on this abstraction
type EngineClient interface {
	Forward(ctx context.Context, req models.AnalysisRequest) (json.RawMessage, error)
	CheckHealth(ctx context.Context) error
}

// Synthesizer defines the contract for the mock fallback report
// Single Responsibility Principle: only responsible for synthesis
type Synthesizer interface {
	Synthesize(ctx context.Context, req models.AnalysisRequest) (*models.ReportV1, error)
}

// HTTPClient defines the contract for outbound HTTP operations
type HTTPClient interface {
	Get(ctx context.Context, url string) (*models.HTTPResponse, error)
	Post(ctx context.Context, url string, body []byte) (*models.HTTPResponse, error)
}

// Logger defines the contract for logging operations
// Interface Segregation Principle: Minimal interface for logging
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// MetricsCollector defines the contract for metrics collection
// Single Responsibility Principle: Only responsible for metrics
type MetricsCollector interface {
	RecordRequest(method, path string, statusCode int, duration float64)
	RecordAnalysis(mode, source string, success bool, duration float64)
}
