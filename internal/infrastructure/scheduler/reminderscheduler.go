package scheduler

import (
	"context"
	"sync"
	"time"

	memberUsecases "gymdesk/internal/application/member/usecases"
	"gymdesk/internal/shared/logger"
)

// ReminderScheduler mails expiry reminders once a day at the configured UTC
// hour.
type ReminderScheduler struct {
	sendRemindersUC *memberUsecases.SendRemindersUseCase
	logger          logger.Interface
	hourUTC         int
	stopChan        chan struct{}
	stopOnce        sync.Once
	wg              sync.WaitGroup
}

// NewReminderScheduler creates a new ReminderScheduler
func NewReminderScheduler(
	sendRemindersUC *memberUsecases.SendRemindersUseCase,
	hourUTC int,
	logger logger.Interface,
) *ReminderScheduler {
	return &ReminderScheduler{
		sendRemindersUC: sendRemindersUC,
		logger:          logger,
		hourUTC:         hourUTC,
		stopChan:        make(chan struct{}),
	}
}

// Start starts the scheduler
func (s *ReminderScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting reminder scheduler", "hour_utc", s.hourUTC)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

// Stop stops the scheduler gracefully
func (s *ReminderScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping reminder scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("reminder scheduler stopped")
	})
}

func (s *ReminderScheduler) runLoop(ctx context.Context) {
	for {
		wait := time.Until(s.nextRun(time.Now().UTC()))
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Infow("reminder scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			timer.Stop()
			return
		case <-timer.C:
			s.sendReminders(ctx)
		}
	}
}

// nextRun returns the next occurrence of the configured hour, strictly
// after now.
func (s *ReminderScheduler) nextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hourUTC, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func (s *ReminderScheduler) sendReminders(ctx context.Context) {
	startTime := time.Now()

	sent, err := s.sendRemindersUC.Execute(ctx)
	if err != nil {
		s.logger.Errorw("failed to send expiry reminders",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	s.logger.Infow("expiry reminder sweep finished",
		"sent", sent,
		"duration", time.Since(startTime),
	)
}
