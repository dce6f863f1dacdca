package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"tms/internal/entities"
	"tms/internal/repository"
	"tms/internal/validation"
	"tms/pkg/logger"
)

// Workflow drives the draft and submission lifecycle of onboarding
// entities: creation, buffered edit sessions, draft updates and routing for
// approval.
type Workflow struct {
	repository Repository
	txManager  TxManager
	policy     Policy
	sessions   *SessionStore
	inflight   *inflightGuard
	log        workflowLogger
}

func New(
	repository Repository,
	txManager TxManager,
	policy Policy,
	sessionTTL time.Duration,
	log workflowLogger,
) *Workflow {
	return &Workflow{
		repository: repository,
		txManager:  txManager,
		policy:     policy,
		sessions:   NewSessionStore(sessionTTL),
		inflight:   newInflightGuard(),
		log:        log.With(),
	}
}

// Get loads an entity, checking it belongs to the requested kind.
func (s *Workflow) Get(ctx context.Context, id string, kind entities.EntityKind) (*entities.Entity, error) {
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entity: %w", err)
	}
	if kind != "" && entity.Kind != kind {
		return nil, repository.ErrEntityNotFound
	}
	return entity, nil
}

// Permissions returns the workflow actions the actor may perform on the
// entity in its current status.
func (s *Workflow) Permissions(ctx context.Context, actor entities.Actor, id string) ([]entities.Action, error) {
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entity: %w", err)
	}
	return s.policy.Actions(entity, actor), nil
}

// Create registers a new entity. With submit unset the entity is stored as a
// draft after minimal validation; with submit set it is fully validated and
// routed for approval.
func (s *Workflow) Create(
	ctx context.Context,
	actor entities.Actor,
	kind entities.EntityKind,
	patch entities.EntityModify,
	submit bool,
) (*entities.Entity, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}

	base := entities.Entity{
		ID:        uuid.NewString(),
		Kind:      kind,
		Status:    entities.StatusDraft,
		CreatedBy: actor.ID,
	}
	entity := base.Apply(patch)
	validation.StripEmptyRows(entity)

	level := validation.Draft
	if submit {
		level = validation.Full
		entity.Status = entities.StatusPending
		entity.Approval = entities.ApprovalState{CurrentStatus: entities.OutcomePending}
	}

	if errs := validation.ValidateEntity(entity, level); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	// The entity row and its document rows must commit together: a
	// duplicate document aborts the whole creation.
	var created *entities.Entity
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, entity)
		if err != nil {
			return fmt.Errorf("create entity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("entity created",
		logger.NewField("entity", created.ID),
		logger.NewField("kind", kind.String()),
		logger.NewField("status", created.Status.String()),
	)
	return created, nil
}

// EnterEdit opens a buffered edit session for the actor and returns the
// entity snapshot the edits will be based on.
func (s *Workflow) EnterEdit(ctx context.Context, actor entities.Actor, id string) (*entities.Entity, error) {
	entity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get entity: %w", err)
	}
	if !s.policy.CanEdit(entity, actor) {
		return nil, ErrEditNotPermitted
	}

	// Re-entering keeps the original session: the snapshot to restore on
	// cancel is the state before the first edit, not the latest reload.
	if snapshot, ok := s.sessions.Get(id, actor.ID); ok {
		return snapshot, nil
	}

	s.sessions.Start(entity, actor.ID)
	return entity, nil
}

// CancelEdit discards the actor's buffered edits and returns the untouched
// snapshot taken when the session was opened.
func (s *Workflow) CancelEdit(_ context.Context, actor entities.Actor, id string) (*entities.Entity, error) {
	snapshot, ok := s.sessions.End(id, actor.ID)
	if !ok {
		return nil, ErrNoEditSession
	}
	return snapshot, nil
}

// Save applies edits to a previously submitted entity and routes it back
// through approval. Drafts are refused here: they go through UpdateDraft and
// SubmitDraft instead.
func (s *Workflow) Save(
	ctx context.Context,
	actor entities.Actor,
	id string,
	patch entities.EntityModify,
) (*entities.Entity, error) {
	if !s.inflight.acquire(id) {
		return nil, ErrSaveInProgress
	}
	defer s.inflight.release(id)

	var saved *entities.Entity
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		entity, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get entity: %w", err)
		}
		if entity.Status.IsDraft() {
			return ErrEntityIsDraft
		}
		if !s.policy.CanEdit(entity, actor) {
			return ErrEditNotPermitted
		}
		if patch.Version != nil && *patch.Version != entity.Version {
			return repository.ErrVersionConflict
		}

		merged := entity.Apply(patch)
		validation.StripEmptyRows(merged)
		if errs := validation.ValidateEntity(merged, validation.Full); len(errs) > 0 {
			return &ValidationError{Errors: errs}
		}

		// Any accepted edit of a submitted entity reopens the approval
		// cycle, rejected entities included.
		status := entities.StatusPending
		approval := entities.ApprovalState{CurrentStatus: entities.OutcomePending}

		saved, err = s.repository.Update(ctx, entities.EntityModify{
			ID:        &id,
			Status:    &status,
			Version:   &entity.Version,
			Approval:  &approval,
			Profile:   &merged.Profile,
			Addresses: &merged.Addresses,
			Documents: &merged.Documents,
			Accidents: &merged.Accidents,
		})
		if err != nil {
			return fmt.Errorf("save entity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sessions.End(id, actor.ID)
	s.log.Info("entity saved and routed for approval",
		logger.NewField("entity", id),
	)
	return saved, nil
}

// UpdateDraft stores edits on a draft under minimal validation, leaving the
// entity in draft status.
func (s *Workflow) UpdateDraft(
	ctx context.Context,
	actor entities.Actor,
	id string,
	patch entities.EntityModify,
) (*entities.Entity, error) {
	return s.updateDraft(ctx, actor, id, patch, false)
}

// SubmitDraft fully validates a draft and routes it for approval.
func (s *Workflow) SubmitDraft(
	ctx context.Context,
	actor entities.Actor,
	id string,
	patch entities.EntityModify,
) (*entities.Entity, error) {
	return s.updateDraft(ctx, actor, id, patch, true)
}

func (s *Workflow) updateDraft(
	ctx context.Context,
	actor entities.Actor,
	id string,
	patch entities.EntityModify,
	submit bool,
) (*entities.Entity, error) {
	if !s.inflight.acquire(id) {
		return nil, ErrSaveInProgress
	}
	defer s.inflight.release(id)

	var updated *entities.Entity
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		entity, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get entity: %w", err)
		}
		if !entity.Status.IsDraft() {
			return ErrNotDraft
		}
		if !s.policy.CanEdit(entity, actor) {
			return ErrEditNotPermitted
		}
		if patch.Version != nil && *patch.Version != entity.Version {
			return repository.ErrVersionConflict
		}

		merged := entity.Apply(patch)
		validation.StripEmptyRows(merged)

		level := validation.Draft
		status := entities.StatusDraft
		approval := entity.Approval
		if submit {
			level = validation.Full
			status = entities.StatusPending
			approval = entities.ApprovalState{CurrentStatus: entities.OutcomePending}
		}
		if errs := validation.ValidateEntity(merged, level); len(errs) > 0 {
			return &ValidationError{Errors: errs}
		}

		updated, err = s.repository.Update(ctx, entities.EntityModify{
			ID:        &id,
			Status:    &status,
			Version:   &entity.Version,
			Approval:  &approval,
			Profile:   &merged.Profile,
			Addresses: &merged.Addresses,
			Documents: &merged.Documents,
			Accidents: &merged.Accidents,
		})
		if err != nil {
			return fmt.Errorf("update draft: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if submit {
		s.log.Info("draft submitted for approval",
			logger.NewField("entity", id),
		)
	}
	return updated, nil
}

// PruneExpiredSessions reaps expired edit sessions. It is called
// periodically by a background task.
func (s *Workflow) PruneExpiredSessions(_ context.Context) (int, error) {
	pruned := s.sessions.PruneExpired(time.Now())
	if pruned > 0 {
		s.log.Info("expired edit sessions pruned",
			logger.NewField("count", pruned),
			logger.NewField("open", s.sessions.Len()),
		)
	}
	return pruned, nil
}
