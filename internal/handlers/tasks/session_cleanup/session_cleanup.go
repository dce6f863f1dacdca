package session_cleanup

import (
	"context"
	"time"

	"tms/pkg/logger"
)

type Service interface {
	PruneExpiredSessions(ctx context.Context) (int, error)
}

type SessionCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewSessionCleanup(log logger.Logger, service Service, interval time.Duration) *SessionCleanup {
	return &SessionCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *SessionCleanup) TTL() time.Duration {
	return s.interval
}

func (s *SessionCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	pruned, err := s.service.PruneExpiredSessions(ctxWithTimeout)

	if pruned > 0 {
		s.log.With(
			logger.NewField("expired_edit_sessions", pruned),
		).Info("edit session cleanup")
	}

	return err
}

func (s *SessionCleanup) Info() string {
	return "edit session cleanup"
}
