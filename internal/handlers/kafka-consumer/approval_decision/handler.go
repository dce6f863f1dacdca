package approval_decision

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"tms/internal/entities"
	"tms/internal/repository"
	approvalservice "tms/internal/service/approval"
	"tms/pkg/logger"
)

type Handler struct {
	approvalService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, approvalService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		approvalService:          approvalService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("approval.decision: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("approval.decision: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message.
// Returns true when ConsumeClaim must stop (context cancellation),
// false to keep consuming.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event decisionEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("approval.decision handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("entity", event.EntityID),
		logger.NewField("decision", event.Decision),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("approval.decision processing")

	actor := entities.Actor{
		ID:         event.Approver.ID,
		Name:       event.Approver.Name,
		Role:       event.Approver.Role,
		UserTypeID: event.Approver.UserTypeID,
	}

	var entity *entities.Entity
	switch event.Decision {
	case decisionApproved:
		entity, err = h.approvalService.Approve(ctx, actor, event.EntityID)
	case decisionRejected:
		entity, err = h.approvalService.Reject(ctx, actor, event.EntityID, event.Remarks)
	default:
		msgLog.Warn("approval.decision handler unknown decision")
		sess.MarkMessage(message, "")
		return false
	}

	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("approval.decision handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, approvalservice.ErrNotApprover):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("approval.decision handler actor lacks approval rights")

		case errors.Is(err, approvalservice.ErrNotPending):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("approval.decision handler entity is not pending")

		case errors.Is(err, approvalservice.ErrEmptyRemarks):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("approval.decision handler rejection without remarks")

		case errors.Is(err, repository.ErrEntityNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("approval.decision handler entity not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("approval.decision handler failed to process entity")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog = h.log.With(
		logger.NewField("entity", entity.ID),
		logger.NewField("decision", event.Decision),
		logger.NewField("current_status", entity.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("approval.decision: processed")

	sess.MarkMessage(message, "")
	return false
}
