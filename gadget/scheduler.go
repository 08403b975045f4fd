package gadget

import (
	"fmt"
	"sync"
	"time"
)

// Task is a scheduled unit of work owned by a gadget, stepped once
// per tick by the tree's scheduler
type Task struct {
	owner *Gadget
	// step reports whether the task is finished
	step func(now time.Time) bool

	mu        sync.Mutex
	done      bool
	cancelled bool
}

// Cancel stops the task without running it further. The values a
// tween last applied are kept. Cancelling a finished or already
// cancelled task is a no-op.
func (t *Task) Cancel() {
	t.mu.Lock()
	if t.done || t.cancelled {
		t.mu.Unlock()
		return
	}
	t.cancelled = true
	t.mu.Unlock()
	t.owner.dropTask(t)
}

// Done reports whether the task has finished or been cancelled
func (t *Task) Done() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.done || t.cancelled
}

// Scheduler steps the active tasks of a tree once per tick. It is
// owned by the tree's root.
type Scheduler struct {
	mu    sync.Mutex
	tasks []*Task
}

func (s *Scheduler) add(t *Task) {
	s.mu.Lock()
	s.tasks = append(s.tasks, t)
	s.mu.Unlock()
	t.owner.trackTask(t)
}

// Step runs one tick. Tasks are stepped in scheduling order and
// dropped once finished or cancelled.
func (s *Scheduler) Step(now time.Time) {
	s.mu.Lock()
	active := make([]*Task, len(s.tasks))
	copy(active, s.tasks)
	s.mu.Unlock()

	for _, t := range active {
		t.mu.Lock()
		skip := t.done || t.cancelled
		t.mu.Unlock()
		if skip {
			continue
		}
		if t.step(now) {
			t.mu.Lock()
			t.done = true
			t.mu.Unlock()
			t.owner.dropTask(t)
		}
	}

	s.mu.Lock()
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.Done() {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.mu.Unlock()
}

// Pending returns the number of live tasks
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.tasks {
		if !t.Done() {
			n++
		}
	}
	return n
}

func (g *Gadget) trackTask(t *Task) {
	if g.tasks == nil {
		g.tasks = make(map[*Task]struct{})
	}
	g.tasks[t] = struct{}{}
}

func (g *Gadget) dropTask(t *Task) {
	delete(g.tasks, t)
}

// cancelTasks stops every task the gadget owns, called when the
// gadget leaves a tree
func (g *Gadget) cancelTasks() {
	for t := range g.tasks {
		t.mu.Lock()
		t.cancelled = true
		t.mu.Unlock()
	}
	g.tasks = nil
}

// Every schedules fn to run each time interval elapses, starting one
// interval from now. The task runs until cancelled or the gadget
// leaves the tree.
func (g *Gadget) Every(interval time.Duration, fn func()) (*Task, error) {
	r := g.Root()
	if r == nil {
		return nil, fmt.Errorf("schedule: gadget is not attached to a tree")
	}
	if interval <= 0 {
		return nil, fmt.Errorf("schedule: interval must be positive, got %v", interval)
	}
	var next time.Time
	t := &Task{owner: g}
	t.step = func(now time.Time) bool {
		if next.IsZero() {
			next = now.Add(interval)
			return false
		}
		for !now.Before(next) {
			fn()
			next = next.Add(interval)
		}
		return false
	}
	r.scheduler.add(t)
	return t, nil
}
