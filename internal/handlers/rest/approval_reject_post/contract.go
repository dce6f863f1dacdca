//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=approval_reject_post_test
package approval_reject_post

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
	Reject(ctx context.Context, actor entities.Actor, id, remarks string) (*entities.Entity, error)
}
