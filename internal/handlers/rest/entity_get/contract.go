//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=entity_get_test
package entity_get

import (
	"context"

	"tms/internal/entities"
	"tms/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Get(ctx context.Context, id string, kind entities.EntityKind) (*entities.Entity, error)
}
