//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=entity_post_test
package entity_post

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
	Create(ctx context.Context, actor entities.Actor, kind entities.EntityKind, patch entities.EntityModify, submit bool) (*entities.Entity, error)
}
