package state

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlayState_SalaryAt(t *testing.T) {
	start := time.Unix(1000, 0)
	o := NewOverlayState(start, 3000, nil, rand.New(rand.NewSource(1)))

	assert.Zero(t, o.SalaryAt(start))

	// 3000/h is 50 per minute
	assert.InDelta(t, 50.0, o.SalaryAt(start.Add(time.Minute)), 1e-9)
	assert.InDelta(t, 3000.0, o.SalaryAt(start.Add(time.Hour)), 1e-9)

	// Sub-second accrual
	assert.InDelta(t, 3000.0/3600.0/2.0, o.SalaryAt(start.Add(500*time.Millisecond)), 1e-9)
}

func TestOverlayState_Uptime(t *testing.T) {
	start := time.Unix(1000, 0)
	o := NewOverlayState(start, 3000, nil, rand.New(rand.NewSource(1)))

	assert.Equal(t, start, o.StartTime())
	assert.Equal(t, 90*time.Second, o.Uptime(start.Add(90*time.Second)))
}

func TestOverlayState_Messages(t *testing.T) {
	messages := []string{"Bravo !", "Continue !", "Super !"}
	o := NewOverlayState(time.Unix(0, 0), 3000, messages, rand.New(rand.NewSource(7)))

	assert.Empty(t, o.LastMessage())

	for i := 0; i < 20; i++ {
		msg := o.NextMessage()
		assert.Contains(t, messages, msg)
		assert.Equal(t, msg, o.LastMessage())
	}
}

func TestOverlayState_NextMessageEmptyRotation(t *testing.T) {
	o := NewOverlayState(time.Unix(0, 0), 3000, nil, rand.New(rand.NewSource(1)))
	assert.Empty(t, o.NextMessage())
}
