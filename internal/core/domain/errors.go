package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ============================================================================
// Artifact Errors
// ============================================================================

var (
	ErrMalformedArtifact   = errors.New("malformed artifact")
	ErrUnknownArtifactKind = errors.New("unknown artifact kind")
)

// ============================================================================
// Pipeline Errors
// ============================================================================

var (
	ErrStageNotConfigured = errors.New("pipeline stage is not configured")
)

// StageError reports a stage that failed to produce its artifact.
// Domain outcomes (failed validation, rejected model) are never StageErrors.
type StageError struct {
	Stage Stage
	RunID uuid.UUID
	Err   error
}

func (e *StageError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s stage (run %s): %v", e.Stage, e.RunID, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
