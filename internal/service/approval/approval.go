package approval

import (
	"context"
	"fmt"
	"strings"

	"tms/internal/entities"
)

// Approval applies approver decisions to pending entities.
type Approval struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Approval {
	return &Approval{
		repository: repository,
		txManager:  txManager,
	}
}

// Approve transitions a PENDING entity to ACTIVE and clears its pending
// state.
func (s *Approval) Approve(ctx context.Context, actor entities.Actor, id string) (*entities.Entity, error) {
	if !actor.IsApprover() {
		return nil, ErrNotApprover
	}

	var approved *entities.Entity
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		entity, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get entity: %w", err)
		}
		if entity.Status != entities.StatusPending {
			return ErrNotPending
		}

		status := entities.StatusActive
		approval := entities.ApprovalState{
			CurrentStatus: entities.OutcomeApproved,
		}

		approved, err = s.repository.Update(ctx, entities.EntityModify{
			ID:       &id,
			Status:   &status,
			Version:  &entity.Version,
			Approval: &approval,
		})
		if err != nil {
			return fmt.Errorf("apply approval: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return approved, nil
}

// Reject transitions a PENDING entity to INACTIVE, storing the approver's
// remarks. Remarks must be non-empty.
func (s *Approval) Reject(ctx context.Context, actor entities.Actor, id, remarks string) (*entities.Entity, error) {
	if !actor.IsApprover() {
		return nil, ErrNotApprover
	}
	if strings.TrimSpace(remarks) == "" {
		return nil, ErrEmptyRemarks
	}

	var rejected *entities.Entity
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		entity, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get entity: %w", err)
		}
		if entity.Status != entities.StatusPending {
			return ErrNotPending
		}

		status := entities.StatusInactive
		approval := entities.ApprovalState{
			Remarks:       remarks,
			CurrentStatus: entities.OutcomeRejected,
		}

		rejected, err = s.repository.Update(ctx, entities.EntityModify{
			ID:       &id,
			Status:   &status,
			Version:  &entity.Version,
			Approval: &approval,
		})
		if err != nil {
			return fmt.Errorf("apply rejection: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rejected, nil
}
