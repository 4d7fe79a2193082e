package engine

import "sync"

// BalanceListener receives the new balance after every mutation.
type BalanceListener func(balance int64)

// GateListener receives video-gate transitions: visible=false when the
// balance drops below the gate threshold, visible=true when it recovers.
type GateListener func(visible bool)

// Ledger is the single source of truth for the cookie balance. Every
// subsystem holds the same *Ledger; all mutation funnels through Debit
// and Credit.
//
// Debit rejects overdraw, so bets and purchases can never push the
// balance negative. Credit is unchecked and accepts negative amounts;
// that is the only path below zero, which is how the punitive "video
// hidden" state is reached.
type Ledger struct {
	mu      sync.Mutex
	balance int64

	gateThreshold int64

	onBalance []BalanceListener
	onGate    []GateListener
}

// NewLedger creates a ledger starting at zero. gateThreshold is the
// balance below which the video gate closes (typically -100).
func NewLedger(gateThreshold int64) *Ledger {
	return &Ledger{gateThreshold: gateThreshold}
}

// OnBalanceChanged registers a listener. Registration is not safe once
// mutations have started; wire listeners before Engine.Start.
func (l *Ledger) OnBalanceChanged(fn BalanceListener) {
	l.onBalance = append(l.onBalance, fn)
}

// OnVideoGate registers a gate-crossing listener.
func (l *Ledger) OnVideoGate(fn GateListener) {
	l.onGate = append(l.onGate, fn)
}

// Balance returns the current balance.
func (l *Ledger) Balance() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Debit subtracts amount and returns the new balance. It fails with
// ErrInvalidAmount for non-positive amounts and ErrInsufficientFunds
// when amount exceeds the balance; a rejected debit changes nothing.
func (l *Ledger) Debit(amount int64) (int64, error) {
	l.mu.Lock()
	if amount <= 0 {
		l.mu.Unlock()
		return 0, ErrInvalidAmount
	}
	if amount > l.balance {
		l.mu.Unlock()
		return 0, ErrInsufficientFunds
	}
	prev := l.balance
	l.balance -= amount
	next := l.balance
	l.mu.Unlock()

	l.notify(prev, next)
	return next, nil
}

// Credit adds amount unconditionally (amount may be negative) and
// returns the new balance.
func (l *Ledger) Credit(amount int64) int64 {
	l.mu.Lock()
	prev := l.balance
	l.balance += amount
	next := l.balance
	l.mu.Unlock()

	l.notify(prev, next)
	return next
}

// notify runs listeners outside the lock so they may read the ledger.
// Mutation and notification order still match because both Debit and
// Credit notify before returning.
func (l *Ledger) notify(prev, next int64) {
	for _, fn := range l.onBalance {
		fn(next)
	}

	prevVisible := prev >= l.gateThreshold
	nextVisible := next >= l.gateThreshold
	if prevVisible != nextVisible {
		for _, fn := range l.onGate {
			fn(nextVisible)
		}
	}
}
