package state

import (
	"math/rand"
	"sync"
	"time"
)

// OverlayState is the cosmetic session state around the game engines:
// the salary meter that has been running since launch and the
// encouragement message rotation. It resets with the process, like
// everything else.
type OverlayState struct {
	mu sync.RWMutex

	startTime     time.Time
	salaryPerHour float64

	messages    []string
	lastMessage string
	rng         *rand.Rand
}

// NewOverlayState starts the salary clock at start.
func NewOverlayState(start time.Time, salaryPerHour float64, messages []string, rng *rand.Rand) *OverlayState {
	return &OverlayState{
		startTime:     start,
		salaryPerHour: salaryPerHour,
		messages:      messages,
		rng:           rng,
	}
}

// StartTime returns when the session began.
func (o *OverlayState) StartTime() time.Time {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.startTime
}

// Uptime returns how long the session has been running at now.
func (o *OverlayState) Uptime(now time.Time) time.Duration {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return now.Sub(o.startTime)
}

// SalaryAt returns the earnings shown on the meter at now: the hourly
// rate accrued per elapsed second since launch.
func (o *OverlayState) SalaryAt(now time.Time) float64 {
	o.mu.RLock()
	defer o.mu.RUnlock()
	elapsed := now.Sub(o.startTime).Seconds()
	return o.salaryPerHour / 3600.0 * elapsed
}

// NextMessage picks the next encouragement message at random.
func (o *OverlayState) NextMessage() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.messages) == 0 {
		return ""
	}
	o.lastMessage = o.messages[o.rng.Intn(len(o.messages))]
	return o.lastMessage
}

// LastMessage returns the most recently picked message.
func (o *OverlayState) LastMessage() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.lastMessage
}
