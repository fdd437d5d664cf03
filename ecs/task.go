package ecs

import "github.com/samber/lo"

// TaskHandle identifies a task started on a Runner. A nil handle is never
// running.
type TaskHandle struct {
	id      uint64
	task    System
	stopped bool
}

// Stopped reports whether the task was stopped or never started.
func (h *TaskHandle) Stopped() bool {
	return h == nil || h.stopped
}

// Runner steps long-lived cooperative tasks once per frame. Tasks run on the
// caller's goroutine, in start order, after each other; a task only yields by
// returning from Update.
type Runner struct {
	tasks  []*TaskHandle
	nextID uint64
}

func NewRunner() *Runner {
	return &Runner{}
}

// Start registers task. It is first stepped on the next call to Update, even
// when Start is called from inside another task's step.
func (r *Runner) Start(task System) *TaskHandle {
	if r == nil || task == nil {
		return nil
	}
	r.nextID++
	h := &TaskHandle{id: r.nextID, task: task}
	r.tasks = append(r.tasks, h)
	return h
}

// Stop cancels h. Stopping a nil or already stopped handle is a no-op. A task
// stopped during a frame is not stepped again, including later in that frame.
func (r *Runner) Stop(h *TaskHandle) {
	if r == nil || h == nil {
		return
	}
	h.stopped = true
}

// Running reports whether h is registered and not stopped.
func (r *Runner) Running(h *TaskHandle) bool {
	if r == nil || h.Stopped() {
		return false
	}
	return lo.Contains(r.tasks, h)
}

// Len returns the number of live tasks.
func (r *Runner) Len() int {
	if r == nil {
		return 0
	}
	return lo.CountBy(r.tasks, func(h *TaskHandle) bool { return !h.stopped })
}

// Update steps every live task once.
func (r *Runner) Update(w *World) {
	if r == nil {
		return
	}
	frame := append([]*TaskHandle(nil), r.tasks...)
	for _, h := range frame {
		if h.stopped {
			continue
		}
		h.task.Update(w)
	}
	r.tasks = lo.Filter(r.tasks, func(h *TaskHandle, _ int) bool { return !h.stopped })
}

// Close stops every task.
func (r *Runner) Close() {
	if r == nil {
		return
	}
	for _, h := range r.tasks {
		h.stopped = true
	}
	r.tasks = nil
}
