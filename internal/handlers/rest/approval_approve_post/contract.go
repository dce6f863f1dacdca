//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=approval_approve_post_test
package approval_approve_post

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
	Approve(ctx context.Context, actor entities.Actor, id string) (*entities.Entity, error)
}
