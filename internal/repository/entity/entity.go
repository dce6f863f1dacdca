package entity

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"tms/internal/entities"
	"tms/internal/repository"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const entityColumns = `id, kind, status, created_by, version,
		pending_with_user_id, pending_with, remarks, approval_status,
		profile, addresses, accidents, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Entity, error) {
	query := `SELECT ` + entityColumns + `
		FROM entities
		WHERE id = $1`

	var model EntityDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&model.ID,
			&model.Kind,
			&model.Status,
			&model.CreatedBy,
			&model.Version,
			&model.PendingWithUserID,
			&model.PendingWith,
			&model.Remarks,
			&model.ApprovalStatus,
			&model.Profile,
			&model.Addresses,
			&model.Accidents,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrEntityNotFound
		}
		return nil, fmt.Errorf("unexpected entity repository getbyid error: %w", err)
	}

	documents, err := r.getDocuments(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(&model, documents)
}

func (r *Repository) Create(ctx context.Context, e *entities.Entity) (*entities.Entity, error) {
	profile, err := profileToJSON(e.Profile)
	if err != nil {
		return nil, fmt.Errorf("unexpected entity repository create error: %w", err)
	}
	addresses, err := addressesToJSON(e.Addresses)
	if err != nil {
		return nil, fmt.Errorf("unexpected entity repository create error: %w", err)
	}
	accidents, err := accidentsToJSON(e.Accidents)
	if err != nil {
		return nil, fmt.Errorf("unexpected entity repository create error: %w", err)
	}

	query := `INSERT INTO entities (id, kind, status, created_by, version,
			pending_with_user_id, pending_with, remarks, approval_status,
			profile, addresses, accidents)
		VALUES ($1, $2, $3, $4, 1, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + entityColumns

	var model EntityDB
	err = r.querier.QueryRow(
		ctx,
		query,
		e.ID,
		e.Kind.String(),
		e.Status.String(),
		e.CreatedBy,
		e.Approval.PendingWithUserID,
		e.Approval.PendingWith,
		e.Approval.Remarks,
		e.Approval.CurrentStatus.String(),
		profile,
		addresses,
		accidents,
	).Scan(
		&model.ID,
		&model.Kind,
		&model.Status,
		&model.CreatedBy,
		&model.Version,
		&model.PendingWithUserID,
		&model.PendingWith,
		&model.Remarks,
		&model.ApprovalStatus,
		&model.Profile,
		&model.Addresses,
		&model.Accidents,
		&model.CreatedAt,
		&model.UpdatedAt,
	)
	if err != nil {
		if dupErr := duplicateError(err); dupErr != nil {
			return nil, dupErr
		}
		return nil, fmt.Errorf("unexpected entity repository create error: %w", err)
	}

	if err := r.replaceDocuments(ctx, e.ID, documentsFromDomain(e.Documents)); err != nil {
		return nil, err
	}

	return ToDomain(&model, documentsFromDomain(e.Documents))
}

func (r *Repository) Update(ctx context.Context, entityModifyEntity entities.EntityModify) (*entities.Entity, error) {
	if entityModifyEntity.ID == nil {
		return nil, fmt.Errorf("unexpected entity repository update error: missing id")
	}
	id := *entityModifyEntity.ID

	builder := qb.
		Update("entities")

	if entityModifyEntity.Status != nil {
		builder = builder.Set("status", entityModifyEntity.Status.String())
	}
	if entityModifyEntity.Approval != nil {
		builder = builder.
			Set("pending_with_user_id", entityModifyEntity.Approval.PendingWithUserID).
			Set("pending_with", entityModifyEntity.Approval.PendingWith).
			Set("remarks", entityModifyEntity.Approval.Remarks).
			Set("approval_status", entityModifyEntity.Approval.CurrentStatus.String())
	}
	if entityModifyEntity.Profile != nil {
		profile, err := profileToJSON(*entityModifyEntity.Profile)
		if err != nil {
			return nil, fmt.Errorf("unexpected entity repository update error: %w", err)
		}
		builder = builder.Set("profile", profile)
	}
	if entityModifyEntity.Addresses != nil {
		addresses, err := addressesToJSON(*entityModifyEntity.Addresses)
		if err != nil {
			return nil, fmt.Errorf("unexpected entity repository update error: %w", err)
		}
		builder = builder.Set("addresses", addresses)
	}
	if entityModifyEntity.Accidents != nil {
		accidents, err := accidentsToJSON(*entityModifyEntity.Accidents)
		if err != nil {
			return nil, fmt.Errorf("unexpected entity repository update error: %w", err)
		}
		builder = builder.Set("accidents", accidents)
	}

	builder = builder.
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()"))

	where := sq.Eq{"id": id}
	builder = builder.Where(where)
	if entityModifyEntity.Version != nil {
		builder = builder.Where(sq.Eq{"version": *entityModifyEntity.Version})
	}
	builder = builder.Suffix("RETURNING " + entityColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected entity repository update error: %w", err)
	}

	var model EntityDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&model.ID,
			&model.Kind,
			&model.Status,
			&model.CreatedBy,
			&model.Version,
			&model.PendingWithUserID,
			&model.PendingWith,
			&model.Remarks,
			&model.ApprovalStatus,
			&model.Profile,
			&model.Addresses,
			&model.Accidents,
			&model.CreatedAt,
			&model.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missOrConflict(ctx, id)
		}
		if dupErr := duplicateError(err); dupErr != nil {
			return nil, dupErr
		}
		return nil, fmt.Errorf("unexpected entity repository update error: %w", err)
	}

	documents := documentsFromDomain(nil)
	if entityModifyEntity.Documents != nil {
		documents = documentsFromDomain(*entityModifyEntity.Documents)
		if err := r.replaceDocuments(ctx, id, documents); err != nil {
			return nil, err
		}
	} else {
		documents, err = r.getDocuments(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	return ToDomain(&model, documents)
}

func (r *Repository) getDocuments(ctx context.Context, entityID string) ([]DocumentDB, error) {
	query := `SELECT type, number, valid_from, valid_to
		FROM entity_documents
		WHERE entity_id = $1
		ORDER BY position`

	rows, err := r.querier.Query(ctx, query, entityID)
	if err != nil {
		return nil, fmt.Errorf("unexpected entity repository documents error: %w", err)
	}
	defer rows.Close()

	documents := make([]DocumentDB, 0, 4)
	for rows.Next() {
		var document DocumentDB
		err := rows.Scan(&document.Type, &document.Number, &document.ValidFrom, &document.ValidTo)
		if err != nil {
			return nil, fmt.Errorf("unexpected entity repository documents error: %w", err)
		}
		documents = append(documents, document)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected entity repository documents error: %w", err)
	}

	return documents, nil
}

// replaceDocuments rewrites the document rows of an entity. Callers run it
// inside the same transaction as the entity row write.
func (r *Repository) replaceDocuments(ctx context.Context, entityID string, documents []DocumentDB) error {
	_, err := r.querier.Exec(ctx, `DELETE FROM entity_documents WHERE entity_id = $1`, entityID)
	if err != nil {
		return fmt.Errorf("unexpected entity repository documents error: %w", err)
	}

	if len(documents) == 0 {
		return nil
	}

	builder := qb.
		Insert("entity_documents").
		Columns("entity_id", "type", "number", "valid_from", "valid_to", "position")
	for i, document := range documents {
		builder = builder.Values(entityID, document.Type, document.Number, document.ValidFrom, document.ValidTo, i)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected entity repository documents error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		if dupErr := duplicateError(err); dupErr != nil {
			return dupErr
		}
		return fmt.Errorf("unexpected entity repository documents error: %w", err)
	}

	return nil
}

// missOrConflict tells a stale version apart from a missing row after an
// update matched nothing.
func (r *Repository) missOrConflict(ctx context.Context, id string) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM entities WHERE id = $1)`, id).
		Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected entity repository update error: %w", err)
	}
	if exists {
		return repository.ErrVersionConflict
	}
	return repository.ErrEntityNotFound
}

func duplicateError(err error) error {
	if !repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
		return nil
	}

	switch repository.ConstraintName(err) {
	case "entities_phone_key":
		return repository.ErrDuplicatePhone
	case "entities_email_key":
		return repository.ErrDuplicateEmail
	case "entity_documents_type_number_key":
		return repository.ErrDuplicateDocument
	default:
		return fmt.Errorf("unexpected unique violation: %w", err)
	}
}
