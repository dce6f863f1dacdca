//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=entity_submit_draft_put_test
package entity_submit_draft_put

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
	SubmitDraft(ctx context.Context, actor entities.Actor, id string, patch entities.EntityModify) (*entities.Entity, error)
}
