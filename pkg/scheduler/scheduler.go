package scheduler

import (
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"deskhub/pkg/logger"
)

// Scheduler owns the process-wide background jobs. It is constructed once at
// startup, injected where needed, and stopped from the shutdown path. Jobs run
// in singleton mode: a tick that is still executing suppresses the next
// overlapping trigger instead of stacking it.
type Scheduler interface {
	Start()
	Stop()
	AddInterval(id string, every time.Duration, task func()) error
	RemoveJob(id string) error
	IsRunning() bool
}

type gocronScheduler struct {
	scheduler *gocron.Scheduler
	jobs      map[string]*gocron.Job
	mu        sync.Mutex
	running   bool
}

// New creates a stopped scheduler in the given location.
func New(loc *time.Location) Scheduler {
	s := gocron.NewScheduler(loc)
	s.SingletonModeAll()

	return &gocronScheduler{
		scheduler: s,
		jobs:      make(map[string]*gocron.Job),
	}
}

func (s *gocronScheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		logger.Warn("Scheduler is already running")
		return
	}

	s.scheduler.StartAsync()
	s.running = true
	logger.Info("Scheduler started")
}

func (s *gocronScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.scheduler.Stop()
	s.running = false
	logger.Info("Scheduler stopped")
}

func (s *gocronScheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *gocronScheduler) AddInterval(id string, every time.Duration, task func()) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[id]; exists {
		return fmt.Errorf("job %q already registered", id)
	}

	job, err := s.scheduler.Every(every).Do(task)
	if err != nil {
		return fmt.Errorf("schedule job %q: %w", id, err)
	}

	s.jobs[id] = job
	logger.Info("Job scheduled", "id", id, "every", every.String())
	return nil
}

func (s *gocronScheduler) RemoveJob(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, exists := s.jobs[id]
	if !exists {
		return fmt.Errorf("job %q not found", id)
	}

	s.scheduler.RemoveByReference(job)
	delete(s.jobs, id)
	return nil
}
