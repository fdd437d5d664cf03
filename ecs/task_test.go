package ecs

import "testing"

type recordTask struct {
	name string
	log  *[]string
	fn   func()
}

func (r *recordTask) Update(w *World) {
	*r.log = append(*r.log, r.name)
	if r.fn != nil {
		r.fn()
	}
}

func TestRunnerOrderAndStop(t *testing.T) {
	w := NewWorld()
	r := NewRunner()
	var log []string

	a := r.Start(&recordTask{name: "a", log: &log})
	var b *TaskHandle
	c := r.Start(&recordTask{name: "c", log: &log})
	a.task.(*recordTask).fn = func() { r.Stop(c) }
	b = r.Start(&recordTask{name: "b", log: &log})

	r.Update(w)
	if got := join(log); got != "a,b" {
		t.Fatalf("expected c to be skipped after being stopped mid-frame, got %s", got)
	}
	if r.Running(c) || !c.Stopped() {
		t.Fatalf("c should be stopped")
	}
	if !r.Running(a) || !r.Running(b) {
		t.Fatalf("a and b should still run")
	}
	if r.Len() != 2 {
		t.Fatalf("expected 2 live tasks, got %d", r.Len())
	}
}

func TestRunnerStartDuringUpdate(t *testing.T) {
	w := NewWorld()
	r := NewRunner()
	var log []string

	var child *TaskHandle
	parent := &recordTask{name: "parent", log: &log}
	parent.fn = func() {
		if child == nil {
			child = r.Start(&recordTask{name: "child", log: &log})
		}
	}
	r.Start(parent)

	r.Update(w)
	if got := join(log); got != "parent" {
		t.Fatalf("child must not step in the frame it was started, got %s", got)
	}
	r.Update(w)
	if got := join(log); got != "parent,parent,child" {
		t.Fatalf("unexpected order %s", got)
	}
}

func TestRunnerStopIsSafe(t *testing.T) {
	r := NewRunner()
	r.Stop(nil)

	h := r.Start(&recordTask{name: "x", log: new([]string)})
	r.Stop(h)
	r.Stop(h)
	if r.Running(h) {
		t.Fatalf("stopped task should not run")
	}

	var nilRunner *Runner
	nilRunner.Stop(h)
	nilRunner.Update(NewWorld())
	if nilRunner.Start(&recordTask{}) != nil {
		t.Fatalf("nil runner should not start tasks")
	}
}

func TestRunnerClose(t *testing.T) {
	r := NewRunner()
	var log []string
	h := r.Start(&recordTask{name: "x", log: &log})
	r.Close()
	r.Update(NewWorld())
	if len(log) != 0 || r.Running(h) || r.Len() != 0 {
		t.Fatalf("closed runner should not step tasks")
	}
}

func join(s []string) string {
	out := ""
	for i, v := range s {
		if i > 0 {
			out += ","
		}
		out += v
	}
	return out
}
