package approval

import "errors"

var (
	ErrNotApprover  = errors.New("actor is not an approver")
	ErrNotPending   = errors.New("entity is not pending approval")
	ErrEmptyRemarks = errors.New("rejection remarks are required")
)
