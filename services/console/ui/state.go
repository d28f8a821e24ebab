package ui

import (
	"github.com/RuvinSL/content-seo-check/pkg/models"
)

// Phase is the submission lifecycle position of the UI.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseValidating Phase = "validating"
	PhaseInFlight   Phase = "in_flight"
	PhaseSuccess    Phase = "success"
	PhaseError      Phase = "error"
)

// State is the full UI state. Transitions are pure: each method returns
// the next state and leaves the receiver untouched, so the caller always
// holds exactly one current state.
//
// Report and Err are mutually exclusive; Progress stays within 0..90
// while in flight and only snaps to 100 on completion.
type State struct {
	Mode     models.AnalysisMode
	Phase    Phase
	Progress int
	Report   *models.Report
	Err      *models.AnalysisError
}

// NewState returns the idle state for a mode.
func NewState(mode models.AnalysisMode) State {
	return State{Mode: mode, Phase: PhaseIdle}
}

// SwitchMode clears any previous outcome and returns to idle in the new
// mode. Mirrors the mode toggle resetting the result area.
func (s State) SwitchMode(mode models.AnalysisMode) State {
	return State{Mode: mode, Phase: PhaseIdle}
}

// StartValidation marks the input as being checked.
func (s State) StartValidation() State {
	next := s
	next.Phase = PhaseValidating
	next.Report, next.Err = nil, nil
	next.Progress = 0
	return next
}

// BeginSubmission marks the request as sent.
func (s State) BeginSubmission() State {
	next := s
	next.Phase = PhaseInFlight
	next.Progress = 0
	return next
}

// WithProgress records the current ramp position, clamped to the 0..90
// window the ramp is allowed to occupy.
func (s State) WithProgress(percent int) State {
	if percent < 0 {
		percent = 0
	}
	if percent > 90 {
		percent = 90
	}
	next := s
	next.Progress = percent
	return next
}

// CompleteSuccess settles the submission with a report.
func (s State) CompleteSuccess(report *models.Report) State {
	next := s
	next.Phase = PhaseSuccess
	next.Progress = 100
	next.Report = report
	next.Err = nil
	return next
}

// CompleteError settles the submission with a failure.
func (s State) CompleteError(err *models.AnalysisError) State {
	next := s
	next.Phase = PhaseError
	next.Progress = 0
	next.Report = nil
	next.Err = err
	return next
}

// Settled reports whether the submission has reached a terminal phase.
func (s State) Settled() bool {
	return s.Phase == PhaseSuccess || s.Phase == PhaseError
}
