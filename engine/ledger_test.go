package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedger_DebitCredit(t *testing.T) {
	l := NewLedger(-100)

	l.Credit(50)
	assert.Equal(t, int64(50), l.Balance())

	got, err := l.Debit(20)
	require.NoError(t, err)
	assert.Equal(t, int64(30), got)
	assert.Equal(t, int64(30), l.Balance())
}

func TestLedger_DebitRejectsOverdraw(t *testing.T) {
	l := NewLedger(-100)
	l.Credit(10)

	_, err := l.Debit(11)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(10), l.Balance(), "rejected debit must not change the balance")
}

func TestLedger_DebitRejectsNonPositive(t *testing.T) {
	l := NewLedger(-100)
	l.Credit(10)

	_, err := l.Debit(0)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = l.Debit(-5)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	assert.Equal(t, int64(10), l.Balance())
}

func TestLedger_CreditAcceptsNegative(t *testing.T) {
	l := NewLedger(-100)

	got := l.Credit(-42)
	assert.Equal(t, int64(-42), got)
	assert.Equal(t, int64(-42), l.Balance(), "unchecked credits may push the balance negative")
}

func TestLedger_Conservation(t *testing.T) {
	l := NewLedger(-100)

	deltas := []int64{100, -30, 55, -7, -200, 12}
	var applied int64
	for _, d := range deltas {
		if d >= 0 {
			l.Credit(d)
			applied += d
		} else {
			if _, err := l.Debit(-d); err == nil {
				applied += d
			}
		}
	}

	assert.Equal(t, applied, l.Balance(), "balance must equal the sum of applied deltas")
}

func TestLedger_NotifiesBalanceListeners(t *testing.T) {
	l := NewLedger(-100)

	var seen []int64
	l.OnBalanceChanged(func(balance int64) { seen = append(seen, balance) })

	l.Credit(10)
	l.Debit(3)
	l.Credit(-20)

	assert.Equal(t, []int64{10, 7, -13}, seen)
}

func TestLedger_VideoGateCrossings(t *testing.T) {
	l := NewLedger(-100)

	var gates []bool
	l.OnVideoGate(func(visible bool) { gates = append(gates, visible) })

	// Down to exactly the threshold: still visible, no event
	l.Credit(-100)
	assert.Empty(t, gates)

	// One more cookie lost: hidden, exactly one event
	l.Credit(-1)
	assert.Equal(t, []bool{false}, gates)

	// Further losses below the line: no extra events
	l.Credit(-50)
	assert.Equal(t, []bool{false}, gates)

	// Recover past the threshold: exactly one visible event
	l.Credit(51)
	assert.Equal(t, []bool{false, true}, gates)
}

func TestLedger_RejectedDebitEmitsNothing(t *testing.T) {
	l := NewLedger(-100)
	l.Credit(5)

	var events int
	l.OnBalanceChanged(func(int64) { events++ })

	_, err := l.Debit(10)
	require.Error(t, err)
	assert.Zero(t, events)
}
