package approval

import (
	"tms/internal/entities"
	"tms/pkg/logger"
)

// Policy is the approval state machine: a pure decision table mapping
// (status, actor role, actor identity) to permitted workflow actions.
type Policy struct {
	log policyLogger
}

func NewPolicy(log policyLogger) *Policy {
	return &Policy{
		log: log.With(),
	}
}

// CanEdit reports whether the actor may open the entity for editing.
//
// Drafts and rejected entities are owned by their author until resubmitted.
// Pending entities are frozen so edits cannot race the approval decision.
// Approved entities may only be revised by an approver, which reopens the
// approval cycle. Statuses outside the table deny and are logged: new
// statuses must be enumerated here before they become editable.
func (p *Policy) CanEdit(e *entities.Entity, actor entities.Actor) bool {
	isCreator := actor.ID == e.CreatedBy

	switch e.Status {
	case entities.StatusDraft, entities.StatusSaveAsDraft:
		return isCreator
	case entities.StatusInactive:
		return isCreator
	case entities.StatusPending:
		return false
	case entities.StatusActive:
		return actor.IsApprover()
	default:
		p.log.Warn("unknown entity status, denying edit",
			logger.NewField("entity", e.ID),
			logger.NewField("status", e.Status.String()),
		)
		return false
	}
}

// Actions returns every workflow action the actor may currently perform on
// the entity.
func (p *Policy) Actions(e *entities.Entity, actor entities.Actor) []entities.Action {
	actions := []entities.Action{entities.ActionView}

	if p.CanEdit(e, actor) {
		actions = append(actions, entities.ActionEdit)
	}
	if e.Status == entities.StatusInactive && actor.ID == e.CreatedBy {
		actions = append(actions, entities.ActionResubmit)
	}
	if e.Status == entities.StatusPending && actor.IsApprover() {
		actions = append(actions, entities.ActionApprove, entities.ActionReject)
	}

	return actions
}
