//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	entity_cancel_edit_post "tms/internal/handlers/rest/entity_cancel_edit_post"
	entity_edit_post "tms/internal/handlers/rest/entity_edit_post"
	entity_get "tms/internal/handlers/rest/entity_get"
	entity_permissions_get "tms/internal/handlers/rest/entity_permissions_get"
	entity_post "tms/internal/handlers/rest/entity_post"
	entity_put "tms/internal/handlers/rest/entity_put"
	entity_submit_draft_put "tms/internal/handlers/rest/entity_submit_draft_put"
	entity_update_draft_put "tms/internal/handlers/rest/entity_update_draft_put"
	"tms/internal/handlers/tasks/session_cleanup"
	"tms/internal/pkg/config"

	entityRepo "tms/internal/repository/entity"
	approvalService "tms/internal/service/approval"
	workflowService "tms/internal/service/workflow"

	"tms/pkg/background"
	"tms/pkg/logger"
	"tms/pkg/querier"
	"tms/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CleanupInterval time.Duration
	EditSessionTTL  time.Duration
)

type Application struct {
	ServiceWorkflow   ServiceWorkflow
	ServiceApproval   *approvalService.Approval
	BackgroundWorkers *background.Worker
}

type ServiceWorkflow interface {
	entity_get.Service
	entity_post.Service
	entity_put.Service
	entity_update_draft_put.Service
	entity_submit_draft_put.Service
	entity_permissions_get.Service
	entity_edit_post.Service
	entity_cancel_edit_post.Service
}

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideEditSessionTTL,

		provideEntityRepository,

		providePolicy,
		provideServiceWorkflow,
		provideServiceApproval,

		provideSessionCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceWorkflow), new(*workflowService.Workflow)),

		wire.Bind(new(workflowService.Repository), new(*entityRepo.Repository)),
		wire.Bind(new(approvalService.Repository), new(*entityRepo.Repository)),
		wire.Bind(new(workflowService.Policy), new(*approvalService.Policy)),

		wire.Bind(new(workflowService.TxManager), new(*tx.Manager)),
		wire.Bind(new(approvalService.TxManager), new(*tx.Manager)),

		wire.Bind(new(session_cleanup.Service), new(*workflowService.Workflow)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ApprovalService *approvalService.Approval
}

func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideEntityRepository,
		provideServiceApproval,

		wire.Bind(new(approvalService.Repository), new(*entityRepo.Repository)),
		wire.Bind(new(approvalService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideEntityRepository(querier *querier.Querier) *entityRepo.Repository {
	return entityRepo.New(querier)
}

func providePolicy(log logger.Logger) *approvalService.Policy {
	return approvalService.NewPolicy(log)
}

func provideServiceWorkflow(
	repository workflowService.Repository,
	txManager workflowService.TxManager,
	policy workflowService.Policy,
	sessionTTL EditSessionTTL,
	log logger.Logger,
) *workflowService.Workflow {
	return workflowService.New(repository, txManager, policy, time.Duration(sessionTTL), log)
}

func provideServiceApproval(
	repository approvalService.Repository,
	txManager approvalService.TxManager,
) *approvalService.Approval {
	return approvalService.New(repository, txManager)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.EditSessionCleanupInterval)
}

func provideEditSessionTTL(cfg *config.Config) EditSessionTTL {
	return EditSessionTTL(cfg.Workflow.EditSessionTTL)
}

func provideSessionCleanupTask(
	log logger.Logger,
	workflowService session_cleanup.Service,
	interval CleanupInterval,
) *session_cleanup.SessionCleanup {
	return session_cleanup.NewSessionCleanup(log, workflowService, time.Duration(interval))
}

func provideTaskList(
	sessionCleanupTask *session_cleanup.SessionCleanup,
) []background.Task {
	return []background.Task{
		sessionCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
