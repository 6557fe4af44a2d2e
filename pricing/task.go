package pricing

import "github.com/bcdannyboy/mcprice/models"

// Sampler yields standard normal variates from a stream owned exclusively by
// one task.
type Sampler interface {
	Normal() float64
}

// progressChunk bounds how often a task reports progress so the callback
// stays off the hot loop.
const progressChunk = 1 << 16

// Task is one partition of the simulation: a path count, the shared model,
// a privately owned sampler, and the two payoff sums it fills in. A task is
// owned by exactly one worker from dispatch until the join barrier; nothing
// reads its sums before then.
type Task struct {
	Paths   int
	CallSum float64
	PutSum  float64

	model    models.GBM
	sampler  Sampler
	progress func(int)
}

// NewTask builds a task over paths simulated paths. progress may be nil;
// when set it is called with coarse path-count increments and must be safe
// for concurrent use, since every task shares the same callback.
func NewTask(paths int, model models.GBM, sampler Sampler, progress func(int)) *Task {
	return &Task{
		Paths:    paths,
		model:    model,
		sampler:  sampler,
		progress: progress,
	}
}

// Run simulates the task's paths sequentially. Each path draws exactly one
// variate and accumulates both the call and the put payoff from that single
// draw; pricing them in separate passes would price the two legs on
// different random paths.
func (t *Task) Run() {
	pending := 0
	for i := 0; i < t.Paths; i++ {
		call, put := t.model.Payoffs(t.sampler.Normal())
		t.CallSum += call
		t.PutSum += put

		if t.progress == nil {
			continue
		}
		pending++
		if pending == progressChunk {
			t.progress(pending)
			pending = 0
		}
	}
	if t.progress != nil && pending > 0 {
		t.progress(pending)
	}
}
