package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is one reminder run; it reports how many texts went out.
type Job interface {
	Execute(ctx context.Context) (int, error)
}

type Scheduler struct {
	cron    *cron.Cron
	job     Job
	log     zerolog.Logger
	timeout time.Duration
}

// NewScheduler registers job on spec, a standard five-field cron
// expression evaluated in loc.
func NewScheduler(spec string, loc *time.Location, job Job, log zerolog.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithLocation(loc)),
		job:     job,
		log:     log.With().Str("component", "reminder").Logger(),
		timeout: 5 * time.Minute,
	}

	if _, err := s.cron.AddFunc(spec, s.Run); err != nil {
		return nil, fmt.Errorf("reminder schedule %q: %w", spec, err)
	}
	return s, nil
}

// Run executes the job once.
func (s *Scheduler) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	sent, err := s.job.Execute(ctx)
	if err != nil {
		s.log.Error().Err(err).Int("sent", sent).Msg("reminder run failed")
		return
	}
	s.log.Info().Int("sent", sent).Msg("reminder run finished")
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop waits for a running job to return.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Next is the next scheduled run.
func (s *Scheduler) Next() time.Time {
	entries := s.cron.Entries()
	if len(entries) == 0 {
		return time.Time{}
	}
	if !entries[0].Next.IsZero() {
		return entries[0].Next
	}
	return entries[0].Schedule.Next(time.Now())
}
