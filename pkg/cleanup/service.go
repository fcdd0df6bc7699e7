// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/maestro-works/maestro/pkg/bypass"
	"github.com/maestro-works/maestro/pkg/config"
	"github.com/maestro-works/maestro/pkg/services"
)

// Service periodically enforces retention policies:
//   - Soft-deletes finished workflow executions past the retention window
//   - Removes orphaned Event rows past their TTL
//   - Expires approved bypasses whose expiry has passed
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config     *config.RetentionConfig
	executions *services.ExecutionService
	events     *services.EventService
	bypasses   *bypass.Manager

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. The bypass manager may be
// nil; bypass expiry is then skipped.
func NewService(
	cfg *config.RetentionConfig,
	executions *services.ExecutionService,
	events *services.EventService,
	bypasses *bypass.Manager,
) *Service {
	return &Service{
		config:     cfg,
		executions: executions,
		events:     events,
		bypasses:   bypasses,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"execution_retention_days", s.config.ExecutionRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.softDeleteOldExecutions(ctx)
	s.cleanupOrphanedEvents(ctx)
	s.expireOverdueBypasses(ctx)
}

func (s *Service) softDeleteOldExecutions(_ context.Context) {
	count, err := s.executions.SoftDeleteOldExecutions(context.Background(), s.config.ExecutionRetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete executions failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old executions", "count", count)
	}
}

func (s *Service) cleanupOrphanedEvents(_ context.Context) {
	count, err := s.events.CleanupOrphanedEvents(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up orphaned events", "count", count)
	}
}

func (s *Service) expireOverdueBypasses(_ context.Context) {
	if s.bypasses == nil {
		return
	}
	count, err := s.bypasses.ExpireOverdue(context.Background())
	if err != nil {
		slog.Error("Retention: bypass expiry failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: expired overdue bypasses", "count", count)
	}
}
