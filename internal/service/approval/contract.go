//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=approval_test
package approval

import (
	"context"

	"tms/internal/entities"
	"tms/pkg/logger"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.Entity, error)
	Update(ctx context.Context, entityModifyEntity entities.EntityModify) (*entities.Entity, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type policyLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
