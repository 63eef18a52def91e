// Package schedule runs scripts on cron expressions. Overlapping ticks
// of the same schedule are skipped rather than queued.
package schedule

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/robfig/cron/v3"
)

// Job is one schedulable unit of work.
type Job interface {
	Name() string
	Cron() string
	Run(ctx context.Context) error
}

// Scheduler executes registered jobs on their cron expressions. A
// per-job mutex with TryLock suppresses overlapping executions.
type Scheduler struct {
	mu     sync.Mutex
	cron   *cron.Cron
	jobs   []Job
	locks  map[string]*sync.Mutex
	logger *slog.Logger
	cancel context.CancelFunc
}

// New creates a scheduler. Jobs must be added before Start.
func New(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Scheduler{
		locks:  make(map[string]*sync.Mutex),
		logger: logger,
	}
}

// Add registers a job. Duplicate names are rejected.
func (s *Scheduler) Add(j Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.locks[j.Name()]; exists {
		return fmt.Errorf("schedule: duplicate job %q", j.Name())
	}
	s.locks[j.Name()] = &sync.Mutex{}
	s.jobs = append(s.jobs, j)
	return nil
}

// Start begins executing jobs. It fails if any cron expression is
// invalid.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	s.cron = cron.New(cron.WithParser(parser))

	for _, j := range s.jobs {
		job := j
		lock := s.locks[job.Name()]

		_, err := s.cron.AddFunc(job.Cron(), func() {
			// A still-running previous tick holds the lock; skip.
			if !lock.TryLock() {
				s.logger.Warn("schedule: previous run still active, skipping", "job", job.Name())
				return
			}
			defer lock.Unlock()

			if err := job.Run(ctx); err != nil {
				s.logger.Error("schedule: job failed", "job", job.Name(), "error", err)
				return
			}
			s.logger.Info("schedule: job completed", "job", job.Name())
		})
		if err != nil {
			cancel()
			return fmt.Errorf("schedule: invalid cron for job %q: %w", job.Name(), err)
		}
	}

	s.cron.Start()
	s.logger.Info("schedule: started", "jobs", len(s.jobs))
	return nil
}

// Stop shuts the scheduler down, waiting for in-flight jobs.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		<-s.cron.Stop().Done()
		s.logger.Info("schedule: stopped")
	}
}

// RunFunc executes a script for a scheduled job.
type RunFunc func(ctx context.Context, agent, script string) error

// ScriptJob runs a script file through an agent on a cron expression.
type ScriptJob struct {
	JobName    string
	Expression string
	ScriptPath string
	Agent      string
	Execute    RunFunc
}

// Name implements Job.
func (j ScriptJob) Name() string { return j.JobName }

// Cron implements Job.
func (j ScriptJob) Cron() string { return j.Expression }

// Run reads the script file and hands it to the executor. The file is
// re-read each tick so edits take effect without a restart.
func (j ScriptJob) Run(ctx context.Context) error {
	script, err := os.ReadFile(j.ScriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return j.Execute(ctx, j.Agent, string(script))
}

// Interface guard.
var _ Job = ScriptJob{}
