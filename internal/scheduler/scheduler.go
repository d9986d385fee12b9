// Package scheduler runs the daily recurring-transaction sweep.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"paisa/internal/logger"
	"paisa/internal/services"
)

// Scheduler materializes due recurring transactions on a cron schedule.
type Scheduler struct {
	cron      *cron.Cron
	recurring services.RecurringServicer
	spec      string
}

// New creates a Scheduler. spec is a standard 5-field cron expression.
func New(recurring services.RecurringServicer, spec string) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		recurring: recurring,
		spec:      spec,
	}
}

// Start registers the sweep job and starts the cron loop. The first sweep
// also runs immediately so a restart never skips a day.
func (s *Scheduler) Start() error {
	log := logger.Get()

	if _, err := s.cron.AddFunc(s.spec, s.sweep); err != nil {
		return err
	}

	s.cron.Start()
	log.Infow("Recurring transaction scheduler started", "spec", s.spec)

	go s.sweep()
	return nil
}

// Stop halts the cron loop and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Get().Info("Recurring transaction scheduler stopped")
}

func (s *Scheduler) sweep() {
	log := logger.Get()

	result, err := s.recurring.ProcessAllDue(time.Now())
	if err != nil {
		log.Errorw("Recurring transaction sweep failed", "error", err)
		return
	}
	if result.Count > 0 {
		log.Infow("Recurring transactions processed", "count", result.Count, "names", result.Processed)
	}
}
