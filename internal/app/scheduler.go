package app

import (
	"context"

	"github.com/robfig/cron/v3"
)

// Scheduler drives watch mode: a cron schedule triggers dashboard
// refreshes until stopped.
type Scheduler struct {
	app  *App
	cron *cron.Cron
}

// NewScheduler creates a scheduler over the app's dashboard service.
func NewScheduler(app *App) *Scheduler {
	return &Scheduler{
		app:  app,
		cron: cron.New(),
	}
}

// Start registers the refresh job on the configured schedule and
// starts the cron loop. An invalid schedule is returned before
// anything runs.
func (s *Scheduler) Start(ctx context.Context, onRefresh func()) error {
	schedule := s.app.Config.Refresh.Schedule
	_, err := s.cron.AddFunc(schedule, func() {
		if _, err := s.app.DashboardService.Refresh(ctx); err != nil {
			s.app.Logger.Warn().Err(err).Msg("Scheduled refresh failed")
			return
		}
		if onRefresh != nil {
			onRefresh()
		}
	})
	if err != nil {
		return err
	}

	s.app.Logger.Info().Str("schedule", schedule).Msg("Watch mode started")
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
