// pattern: Imperative Shell

package pool

import (
	"sort"
	"time"

	"sweeper/internal/progress"
)

// Pool executes tasks with a fixed concurrency cap. The caller submits tasks
// one at a time from a single goroutine; workers run concurrently but hand
// their result back on a channel, and only the submitting goroutine folds
// results into shared state. That single-writer discipline means coordinators
// built on Pool need no locks around their aggregates.
//
// There is no cancellation and no timeout: a worker that never terminates
// permanently occupies a slot for the remainder of the phase.
type Pool[R any] struct {
	capacity int
	total    int
	fold     func(R)
	observe  func(progress.Snapshot)
	phase    progress.Phase

	results   chan finished[R]
	active    map[string]struct{}
	submitted int
	completed int
	started   time.Time
}

type finished[R any] struct {
	id     string
	result R
}

// New creates a pool with the given concurrency cap for a phase of total
// tasks. fold is invoked exactly once per submitted task, always from the
// goroutine calling Submit/Drain. observe receives a snapshot after every
// submit and every collected result; it may be nil.
func New[R any](phase progress.Phase, capacity, total int, fold func(R), observe func(progress.Snapshot)) *Pool[R] {
	if capacity < 1 {
		capacity = 1
	}
	return &Pool[R]{
		capacity: capacity,
		total:    total,
		fold:     fold,
		observe:  observe,
		phase:    phase,
		results:  make(chan finished[R], capacity),
		active:   make(map[string]struct{}),
		started:  time.Now(),
	}
}

// Submit starts run on a new worker goroutine, blocking first until a slot
// is free. id identifies the task in progress snapshots.
func (p *Pool[R]) Submit(id string, run func() R) {
	for len(p.active) >= p.capacity {
		p.collectOne()
	}
	p.active[id] = struct{}{}
	p.submitted++
	go func() {
		p.results <- finished[R]{id: id, result: run()}
	}()
	p.emit()
}

// Drain collects results until no workers remain in flight. After Drain
// returns, Completed() == Submitted().
func (p *Pool[R]) Drain() {
	for len(p.active) > 0 {
		p.collectOne()
	}
}

// collectOne blocks for the next finished worker, retires it, and folds its
// result. Results arrive in completion order, not submission order.
func (p *Pool[R]) collectOne() {
	f := <-p.results
	delete(p.active, f.id)
	p.completed++
	p.fold(f.result)
	p.emit()
}

func (p *Pool[R]) emit() {
	if p.observe == nil {
		return
	}
	p.observe(progress.Snapshot{
		Phase:     p.phase,
		Submitted: p.submitted,
		Completed: p.completed,
		Total:     p.total,
		Active:    p.activeIDs(),
		Elapsed:   time.Since(p.started),
	})
}

// activeIDs returns the in-flight task identifiers in a stable order.
func (p *Pool[R]) activeIDs() []string {
	ids := make([]string, 0, len(p.active))
	for id := range p.active {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// InFlight returns the number of workers not yet collected.
func (p *Pool[R]) InFlight() int { return len(p.active) }

// Submitted returns the number of tasks handed to Submit so far.
func (p *Pool[R]) Submitted() int { return p.submitted }

// Completed returns the number of results folded so far.
func (p *Pool[R]) Completed() int { return p.completed }
