package engine

import (
	"math/rand"
	"sync"
	"time"
)

/* =========================
   RACE STATE
========================= */

// RacePhase tracks the race state machine.
type RacePhase string

const (
	RacePhaseIdle     RacePhase = "idle"
	RacePhaseRunning  RacePhase = "running"
	RacePhaseFinished RacePhase = "finished"
)

// RaceTickListener receives a snapshot of all lane positions after each
// animation tick.
type RaceTickListener func(positions []int)

// RaceResolvedListener fires once per race, after the payout has been
// credited. payout is 0 when the chosen horse lost.
type RaceResolvedListener func(winner int, payout int64, serverSeed string)

// RaceParams fixes the track geometry and step distribution.
type RaceParams struct {
	Horses        []string
	FinishLine    int
	TickInterval  time.Duration
	StepMin       int
	StepMax       int
	WinMultiplier int64
}

// Race is the horse-race betting engine. Starting a race debits the
// stake and kicks off a chain of animation ticks on the scheduler; each
// tick advances every horse by a seeded random step until one crosses
// the finish line.
//
// A race cannot be cancelled mid-flight, and a new one cannot start
// while the current one is running.
type Race struct {
	mu     sync.Mutex
	ledger *Ledger
	sched  *Scheduler
	seeder RoundSeeder
	params RaceParams

	phase     RacePhase
	positions []int
	chosen    int
	stake     int64
	rng       *rand.Rand

	raceID     string
	serverSeed string
	seedHash   string

	// Last resolved race, for snapshots
	lastWinner int
	lastPayout int64

	onStarted  func(raceID, seedHash string, chosen int, stake int64)
	onTick     []RaceTickListener
	onResolved []RaceResolvedListener
}

// NewRace creates the race engine over the shared ledger and scheduler.
func NewRace(ledger *Ledger, sched *Scheduler, seeder RoundSeeder, params RaceParams) *Race {
	return &Race{
		ledger:     ledger,
		sched:      sched,
		seeder:     seeder,
		params:     params,
		phase:      RacePhaseIdle,
		positions:  make([]int, len(params.Horses)),
		lastWinner: -1,
	}
}

// OnRaceStarted registers the race-commitment listener.
func (r *Race) OnRaceStarted(fn func(raceID, seedHash string, chosen int, stake int64)) {
	r.onStarted = fn
}

// OnTick registers a position-snapshot listener.
func (r *Race) OnTick(fn RaceTickListener) {
	r.onTick = append(r.onTick, fn)
}

// OnResolved registers a resolution listener.
func (r *Race) OnResolved(fn RaceResolvedListener) {
	r.onResolved = append(r.onResolved, fn)
}

// Phase returns the current race phase.
func (r *Race) Phase() RacePhase {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// Positions returns a copy of the current lane positions.
func (r *Race) Positions() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.positions...)
}

// Horses returns the lane roster in track order.
func (r *Race) Horses() []string {
	return append([]string(nil), r.params.Horses...)
}

// LastResult returns the previous race's winner index (-1 if none ran
// yet) and the payout it produced.
func (r *Race) LastResult() (winner int, payout int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastWinner, r.lastPayout
}

/* =========================
   OPERATIONS
========================= */

// Start debits stake, resets every lane to zero and begins ticking.
// chosen is the backed lane index. Rejected with ErrInvalidState while a
// race is running; stake and lane are validated before any debit.
func (r *Race) Start(chosen int, stake int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase == RacePhaseRunning {
		return ErrInvalidState
	}
	if stake <= 0 {
		return ErrInvalidAmount
	}
	if chosen < 0 || chosen >= len(r.params.Horses) {
		return ErrInvalidAmount
	}
	if _, err := r.ledger.Debit(stake); err != nil {
		return err
	}

	r.phase = RacePhaseRunning
	r.chosen = chosen
	r.stake = stake
	r.positions = make([]int, len(r.params.Horses))

	r.raceID = newRoundID()
	rng, seed, hash := r.seeder(r.raceID)
	r.rng = rng
	r.serverSeed = seed
	r.seedHash = hash

	if r.onStarted != nil {
		r.onStarted(r.raceID, r.seedHash, chosen, stake)
	}
	r.notifyTick()

	r.sched.Schedule(r.params.TickInterval, r.tick)
	return nil
}

// tick advances every horse by one random step, then checks the finish
// line. The next tick is scheduled only while nobody has crossed, the
// same chain the overlay animates at 50ms.
func (r *Race) tick() {
	r.mu.Lock()

	if r.phase != RacePhaseRunning {
		r.mu.Unlock()
		return
	}

	span := r.params.StepMax - r.params.StepMin + 1
	for i := range r.positions {
		r.positions[i] += r.params.StepMin + r.rng.Intn(span)
	}

	// Tie-break: first lane in index order among those at or past the
	// line this tick. Deterministic, but an arbitrary choice inherited
	// from the overlay, not a fairness guarantee.
	winner := r.findWinner()

	r.notifyTick()

	if winner < 0 {
		r.mu.Unlock()
		r.sched.Schedule(r.params.TickInterval, r.tick)
		return
	}

	var payout int64
	if winner == r.chosen {
		payout = r.params.WinMultiplier * r.stake
		r.ledger.Credit(payout)
	}

	r.phase = RacePhaseFinished
	r.lastWinner = winner
	r.lastPayout = payout
	seed := r.serverSeed

	for _, fn := range r.onResolved {
		fn(winner, payout, seed)
	}
	r.mu.Unlock()
}

func (r *Race) findWinner() int {
	for i, pos := range r.positions {
		if pos >= r.params.FinishLine {
			return i
		}
	}
	return -1
}

// notifyTick runs under r.mu; positions are copied for the listeners.
func (r *Race) notifyTick() {
	snapshot := append([]int(nil), r.positions...)
	for _, fn := range r.onTick {
		fn(snapshot)
	}
}
