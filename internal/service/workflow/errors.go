package workflow

import (
	"errors"
	"fmt"
	"strings"

	"tms/internal/validation"
)

var (
	ErrEditNotPermitted = errors.New("actor may not edit this entity")
	ErrSaveInProgress   = errors.New("a save for this entity is already in progress")
	ErrNoEditSession    = errors.New("no edit session is open for this entity")
	ErrEntityIsDraft    = errors.New("entity is a draft, use the draft operations")
	ErrNotDraft         = errors.New("entity is not a draft")
	ErrInvalidKind      = errors.New("unknown entity kind")
)

// ValidationError carries the per-field findings of a failed validation run.
type ValidationError struct {
	Errors []validation.Error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, v := range e.Errors {
		msgs = append(msgs, v.Message)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}
