// Package frame runs tasks once per display frame until they are cancelled.
//
// The game loop calls Tick from ebiten's Update, so every task shares the
// display-synced cadence and runs on the game goroutine. Tasks run in the
// order they were started and never overlap.
package frame

import "time"

// Task is one frame's worth of work.
type Task func(now time.Time)

// Handle controls a started task.
type Handle struct {
	name      string
	task      Task
	cancelled bool
	ticks     uint64
}

// Cancel stops the task. It takes effect before the task's next run,
// including later in the tick that is currently executing.
func (h *Handle) Cancel() { h.cancelled = true }

// Cancelled reports whether Cancel was called.
func (h *Handle) Cancelled() bool { return h.cancelled }

// Ticks returns how many times the task has run.
func (h *Handle) Ticks() uint64 { return h.ticks }

// Name returns the name given to Start.
func (h *Handle) Name() string { return h.name }

// Scheduler is not safe for concurrent use.
type Scheduler struct {
	tasks []*Handle
}

// Start registers a task that runs on every Tick until cancelled.
func (s *Scheduler) Start(name string, task Task) *Handle {
	h := &Handle{name: name, task: task}
	s.tasks = append(s.tasks, h)
	return h
}

// Tick runs every live task once, in start order. Tasks started during
// the tick first run on the next tick.
func (s *Scheduler) Tick(now time.Time) {
	n := len(s.tasks)
	for i := 0; i < n && i < len(s.tasks); i++ {
		h := s.tasks[i]
		if h.cancelled {
			continue
		}
		h.ticks++
		h.task(now)
	}
	s.compact()
}

// Len returns the number of tasks that have not been cancelled.
func (s *Scheduler) Len() int {
	live := 0
	for _, h := range s.tasks {
		if !h.cancelled {
			live++
		}
	}
	return live
}

// CancelAll cancels every task.
func (s *Scheduler) CancelAll() {
	for _, h := range s.tasks {
		h.Cancel()
	}
	s.tasks = s.tasks[:0]
}

func (s *Scheduler) compact() {
	kept := s.tasks[:0]
	for _, h := range s.tasks {
		if !h.cancelled {
			kept = append(kept, h)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}
