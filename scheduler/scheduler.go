// Package scheduler runs the named periodic tasks that drive a simulation:
// the session tick and auxiliary jobs like status logging. Tasks are
// panic-isolated so one bad tick cannot take the process down.
package scheduler

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// Scheduler owns a set of named ticker tasks.
type Scheduler struct {
	mu     sync.Mutex
	tasks  map[string]chan struct{}
	stopCh chan struct{}
	logger *zap.Logger
}

// New creates an empty Scheduler.
func New(logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scheduler{
		tasks:  make(map[string]chan struct{}),
		stopCh: make(chan struct{}),
		logger: logger,
	}
}

// Every registers fn to run on a fixed interval under the given name.
// Registering an existing name replaces the old task.
func (s *Scheduler) Every(name string, interval time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.tasks[name]; ok {
		close(old)
	}
	stop := make(chan struct{})
	s.tasks[name] = stop

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.runIsolated(name, fn)
			case <-stop:
				return
			case <-s.stopCh:
				return
			}
		}
	}()
	s.logger.Info("task registered",
		zap.String("task", name), zap.Duration("interval", interval))
}

// Remove stops the named task. Unknown names are ignored.
func (s *Scheduler) Remove(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stop, ok := s.tasks[name]; ok {
		close(stop)
		delete(s.tasks, name)
	}
}

// Names returns the registered task names.
func (s *Scheduler) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.tasks))
	for name := range s.tasks {
		names = append(names, name)
	}
	return names
}

// Stop terminates every task. Safe to call more than once.
func (s *Scheduler) Stop() {
	select {
	case <-s.stopCh:
	default:
		close(s.stopCh)
	}
}

func (s *Scheduler) runIsolated(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("task panicked",
				zap.String("task", name), zap.Any("recover", r))
		}
	}()
	fn()
}
