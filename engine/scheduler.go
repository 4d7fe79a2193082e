package engine

import (
	"container/heap"
	"context"
	"sync"
	"time"
)

// TimerFunc is a scheduled callback. Callbacks run one at a time on the
// scheduler's goroutine and may schedule further timers re-entrantly.
type TimerFunc func()

// Scheduler is the cooperative timer facility driving every periodic
// behavior in the engine: upgrade payouts, race animation ticks, the
// salary meter and message rotations.
//
// Ordering is deterministic: timers fire strictly by due time, and two
// timers due at the same instant fire in registration order. A repeating
// timer keeps its original registration slot, so relative order between
// repeating timers never changes.
//
// Production uses NewScheduler plus Run, which sleeps on the wall clock.
// Tests use NewManualScheduler plus Advance, which moves a logical clock
// and fires everything due synchronously.
type Scheduler struct {
	mu     sync.Mutex
	timers timerHeap
	seq    int64
	now    time.Time
	manual bool
	wake   chan struct{}
}

type timer struct {
	due    time.Time
	seq    int64
	period time.Duration // 0 for one-shot timers
	fn     TimerFunc
}

// NewScheduler creates a wall-clock scheduler. Drive it with Run.
func NewScheduler() *Scheduler {
	return &Scheduler{
		now:  time.Now(),
		wake: make(chan struct{}, 1),
	}
}

// NewManualScheduler creates a scheduler with a logical clock starting at
// start. Drive it with Advance; Run must not be used.
func NewManualScheduler(start time.Time) *Scheduler {
	return &Scheduler{
		now:    start,
		manual: true,
		wake:   make(chan struct{}, 1),
	}
}

// Schedule fires fn once after delay.
func (s *Scheduler) Schedule(delay time.Duration, fn TimerFunc) {
	s.add(delay, 0, fn)
}

// ScheduleRepeating fires fn every period, first firing one period from
// now. Repeating timers are never cancelled; they run for the lifetime
// of the process.
func (s *Scheduler) ScheduleRepeating(period time.Duration, fn TimerFunc) {
	s.add(period, period, fn)
}

func (s *Scheduler) add(delay, period time.Duration, fn TimerFunc) {
	s.mu.Lock()
	s.seq++
	t := &timer{
		due:    s.clock().Add(delay),
		seq:    s.seq,
		period: period,
		fn:     fn,
	}
	heap.Push(&s.timers, t)
	s.mu.Unlock()

	// Nudge Run in case the new timer is now the earliest
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// clock returns the current time under s.mu.
func (s *Scheduler) clock() time.Time {
	if s.manual {
		return s.now
	}
	return time.Now()
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Run executes timers against the wall clock until ctx is cancelled.
// All callbacks run on this goroutine, which is what gives the engine
// its single logical thread of timed control.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		s.mu.Lock()
		var wait time.Duration
		if len(s.timers) == 0 {
			wait = time.Hour
		} else {
			wait = time.Until(s.timers[0].due)
		}

		if wait <= 0 {
			t := heap.Pop(&s.timers).(*timer)
			if t.period > 0 {
				// Re-arm from the previous due time so the period
				// does not drift with callback runtime.
				next := &timer{due: t.due.Add(t.period), seq: t.seq, period: t.period, fn: t.fn}
				heap.Push(&s.timers, next)
			}
			s.mu.Unlock()
			t.fn()
			continue
		}
		s.mu.Unlock()

		sleep := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			sleep.Stop()
			return
		case <-s.wake:
			sleep.Stop()
		case <-sleep.C:
		}
	}
}

// Advance moves the logical clock forward by d, firing every timer that
// comes due, in (due time, registration) order. Timers scheduled by the
// callbacks themselves fire too if they land inside the window. Only
// valid on a manual scheduler.
func (s *Scheduler) Advance(d time.Duration) {
	s.mu.Lock()
	if !s.manual {
		s.mu.Unlock()
		panic("engine: Advance on a wall-clock scheduler")
	}
	target := s.now.Add(d)

	for {
		if len(s.timers) == 0 || s.timers[0].due.After(target) {
			break
		}
		t := heap.Pop(&s.timers).(*timer)
		if t.due.After(s.now) {
			s.now = t.due
		}
		if t.period > 0 {
			next := &timer{due: t.due.Add(t.period), seq: t.seq, period: t.period, fn: t.fn}
			heap.Push(&s.timers, next)
		}
		s.mu.Unlock()
		t.fn()
		s.mu.Lock()
	}

	s.now = target
	s.mu.Unlock()
}

// Now returns the scheduler's current clock reading.
func (s *Scheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock()
}

/* =========================
   TIMER HEAP
========================= */

type timerHeap []*timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due.Equal(h[j].due) {
		return h[i].seq < h[j].seq
	}
	return h[i].due.Before(h[j].due)
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(*timer)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}
