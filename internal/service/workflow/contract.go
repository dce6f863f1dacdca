//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=workflow_test
package workflow

import (
	"context"

	"tms/internal/entities"
	"tms/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Entity, error)
	Create(ctx context.Context, entity *entities.Entity) (*entities.Entity, error)
	Update(ctx context.Context, entityModifyEntity entities.EntityModify) (*entities.Entity, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Policy decides which workflow actions an actor may perform on an entity.
type Policy interface {
	CanEdit(e *entities.Entity, actor entities.Actor) bool
	Actions(e *entities.Entity, actor entities.Actor) []entities.Action
}

type workflowLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
