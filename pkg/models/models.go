package models

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// AnalysisMode identifies which input variant a request carries
type AnalysisMode string

const (
	ModeText AnalysisMode = "text"
	ModeURL  AnalysisMode = "url"
)

// AnalysisRequest is the body of POST /api/analyze. Exactly one of
// Content or URL is expected to be set.
type AnalysisRequest struct {
	Content string `json:"content,omitempty"`
	URL     string `json:"url,omitempty"`
}

// Mode derives the input variant from which field is populated.
func (r AnalysisRequest) Mode() AnalysisMode {
	if r.URL != "" {
		return ModeURL
	}
	return ModeText
}

// IsEmpty reports whether the request carries no usable input at all.
func (r AnalysisRequest) IsEmpty() bool {
	return r.Content == "" && r.URL == ""
}

// ReportV1 is the flat report schema: keyword list plus recommendations.
type ReportV1 struct {
	Version         string   `json:"version"`
	Mode            string   `json:"mode,omitempty"`
	Keywords        []string `json:"keywords"`
	Readability     float64  `json:"readability"`
	SemanticScore   float64  `json:"semantic_score"`
	Recommendations []string `json:"recommendations"`
}

// ReportV2 is the factor-based report schema produced by newer core engines.
type ReportV2 struct {
	Version         string         `json:"version"`
	Mode            string         `json:"mode,omitempty"`
	FactorsAnalyzed int            `json:"factors_analyzed"`
	Readability     float64        `json:"readability"`
	SemanticScore   float64        `json:"semantic_score"`
	Results         []FactorResult `json:"results"`
}

// FactorResult is one measured attribute in a v2 report. SuggestionValue
// is optional on the wire; absence means no target is known for the factor.
type FactorResult struct {
	Factor          string   `json:"factor"`
	Value           float64  `json:"value"`
	SuggestionValue *float64 `json:"suggestion_value,omitempty"`
	Score           float64  `json:"score"`
	Suggestion      string   `json:"suggestion"`
}

// ErrUnknownReportSchema is returned when a report body matches neither
// the v1 nor the v2 shape.
var ErrUnknownReportSchema = errors.New("report matches neither v1 nor v2 schema")

// Report is the tagged union over the two report schemas. Exactly one of
// V1 or V2 is non-nil after a successful unmarshal.
type Report struct {
	V1 *ReportV1
	V2 *ReportV2
}

// UnmarshalJSON detects the schema variant by field presence: a "results"
// key selects v2, otherwise a "keywords" key selects v1.
func (r *Report) UnmarshalJSON(data []byte) error {
	var probe struct {
		Results  json.RawMessage `json:"results"`
		Keywords json.RawMessage `json:"keywords"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch {
	case probe.Results != nil:
		v2 := &ReportV2{}
		if err := json.Unmarshal(data, v2); err != nil {
			return err
		}
		r.V1, r.V2 = nil, v2
	case probe.Keywords != nil:
		v1 := &ReportV1{}
		if err := json.Unmarshal(data, v1); err != nil {
			return err
		}
		r.V1, r.V2 = v1, nil
	default:
		return ErrUnknownReportSchema
	}
	return nil
}

// MarshalJSON emits whichever variant is populated.
func (r Report) MarshalJSON() ([]byte, error) {
	switch {
	case r.V2 != nil:
		return json.Marshal(r.V2)
	case r.V1 != nil:
		return json.Marshal(r.V1)
	default:
		return nil, ErrUnknownReportSchema
	}
}

// Version returns the schema-independent version string.
func (r Report) Version() string {
	switch {
	case r.V2 != nil:
		return r.V2.Version
	case r.V1 != nil:
		return r.V1.Version
	default:
		return ""
	}
}

// AnalysisError is the client-side view of a failed submission: the
// flattened message and optional details from the server error body.
type AnalysisError struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return e.Message + " (" + e.Details + ")"
	}
	return e.Message
}

// ErrorResponse is the uniform error body every failure is flattened into
// before it leaves the server.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Status  int    `json:"status,omitempty"`
}

// HTTPResponse carries a raw downstream HTTP result
type HTTPResponse struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}
