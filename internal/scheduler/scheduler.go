// Package scheduler runs the recurring background jobs.
package scheduler

import (
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/aristath/wealthdeck/internal/modules/performance"
)

// Scheduler wraps the cron runner with the dashboard's jobs.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

// New creates a scheduler with no jobs registered.
func New(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		log:  log.With().Str("component", "scheduler").Logger(),
	}
}

// RegisterSnapshotJob schedules the daily portfolio-value snapshot.
// Runs shortly before midnight so the snapshot captures the day's final
// stored values; day-over-day change needs one row per day.
func (s *Scheduler) RegisterSnapshotJob(svc *performance.Service) error {
	_, err := s.cron.AddFunc("55 23 * * *", func() {
		if err := svc.RecordSnapshot(); err != nil {
			s.log.Error().Err(err).Msg("Daily snapshot failed")
			return
		}
		s.log.Info().Msg("Daily snapshot recorded")
	})
	return err
}

// Start begins running registered jobs
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("Scheduler started")
}

// Stop halts the scheduler, waiting for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("Scheduler stopped")
}
