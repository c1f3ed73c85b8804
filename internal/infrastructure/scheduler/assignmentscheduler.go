package scheduler

import (
	"context"
	"sync"
	"time"

	memberUsecases "gymdesk/internal/application/member/usecases"
	"gymdesk/internal/shared/logger"
)

// AssignmentScheduler runs the daily maintenance sweep that deactivates
// lapsed assignments. Read paths derive status in real time; the sweep
// keeps the stored active flags consistent for reports.
type AssignmentScheduler struct {
	expireAssignmentsUC *memberUsecases.ExpireAssignmentsUseCase
	logger              logger.Interface
	stopChan            chan struct{}
	stopOnce            sync.Once
	wg                  sync.WaitGroup
	interval            time.Duration
}

// NewAssignmentScheduler creates a new AssignmentScheduler
func NewAssignmentScheduler(
	expireAssignmentsUC *memberUsecases.ExpireAssignmentsUseCase,
	logger logger.Interface,
) *AssignmentScheduler {
	return &AssignmentScheduler{
		expireAssignmentsUC: expireAssignmentsUC,
		logger:              logger,
		stopChan:            make(chan struct{}),
		interval:            24 * time.Hour,
	}
}

// Start starts the scheduler
func (s *AssignmentScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting assignment scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

// Stop stops the scheduler gracefully
func (s *AssignmentScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping assignment scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("assignment scheduler stopped")
	})
}

func (s *AssignmentScheduler) runLoop(ctx context.Context) {
	// Run immediately on startup to clear any backlog
	s.processExpiredAssignments(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("assignment scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.processExpiredAssignments(ctx)
		}
	}
}

func (s *AssignmentScheduler) processExpiredAssignments(ctx context.Context) {
	startTime := time.Now()

	expiredCount, err := s.expireAssignmentsUC.Execute(ctx)
	if err != nil {
		s.logger.Errorw("failed to process expired assignments",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if expiredCount > 0 {
		s.logger.Infow("expired assignments processed",
			"count", expiredCount,
			"duration", time.Since(startTime),
		)
	} else {
		s.logger.Debugw("no expired assignments to process",
			"duration", time.Since(startTime),
		)
	}
}
