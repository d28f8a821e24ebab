package ui

import (
	"testing"

	"github.com/RuvinSL/content-seo-check/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestState_SubmissionLifecycle(t *testing.T) {
	state := NewState(models.ModeText)
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.False(t, state.Settled())

	state = state.StartValidation()
	assert.Equal(t, PhaseValidating, state.Phase)

	state = state.BeginSubmission()
	assert.Equal(t, PhaseInFlight, state.Phase)
	assert.Zero(t, state.Progress)

	report := &models.Report{V1: &models.ReportV1{Version: "mock-v1-text-mode"}}
	state = state.CompleteSuccess(report)
	assert.Equal(t, PhaseSuccess, state.Phase)
	assert.Equal(t, 100, state.Progress)
	assert.Same(t, report, state.Report)
	assert.Nil(t, state.Err)
	assert.True(t, state.Settled())
}

func TestState_ErrorIsMutuallyExclusiveWithReport(t *testing.T) {
	state := NewState(models.ModeURL).BeginSubmission()
	state = state.CompleteSuccess(&models.Report{V1: &models.ReportV1{}})

	failure := &models.AnalysisError{Message: "Core engine is offline or unreachable."}
	state = state.CompleteError(failure)

	assert.Equal(t, PhaseError, state.Phase)
	assert.Nil(t, state.Report)
	assert.Same(t, failure, state.Err)
}

func TestState_SwitchModeClearsOutcome(t *testing.T) {
	state := NewState(models.ModeText).BeginSubmission()
	state = state.CompleteError(&models.AnalysisError{Message: "content too short"})

	state = state.SwitchMode(models.ModeURL)

	assert.Equal(t, models.ModeURL, state.Mode)
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Nil(t, state.Report)
	assert.Nil(t, state.Err)
	assert.Zero(t, state.Progress)
}

func TestState_WithProgressClamps(t *testing.T) {
	state := NewState(models.ModeText).BeginSubmission()

	assert.Equal(t, 44, state.WithProgress(44).Progress)
	assert.Equal(t, 90, state.WithProgress(97).Progress)
	assert.Equal(t, 0, state.WithProgress(-3).Progress)
}

func TestState_TransitionsArePure(t *testing.T) {
	original := NewState(models.ModeText)

	_ = original.BeginSubmission().CompleteSuccess(&models.Report{V1: &models.ReportV1{}})

	assert.Equal(t, PhaseIdle, original.Phase)
	assert.Nil(t, original.Report)
}
