package engine

import (
	"context"
	"math/rand"
	"time"

	"overlayServer/crypto"
)

// RoundSeeder produces the random source for one round, plus the server
// seed behind it and the sha256 commitment published before play. Tests
// inject a fixed seeder for deterministic replay.
type RoundSeeder func(roundID string) (rng *rand.Rand, serverSeed, seedHash string)

// FairSeeder is the production seeder: a fresh server seed per round,
// with the round's RNG derived from seed + "-" + roundID so a revealed
// seed replays the exact shuffle or race.
func FairSeeder(roundID string) (*rand.Rand, string, string) {
	seed, hash := crypto.GenerateServerSeed()
	return NewSeededRNG(seed + "-" + roundID), seed, hash
}

// FixedSeeder returns a seeder that derives every round from one known
// seed string. Deterministic; for tests and replays.
func FixedSeeder(seed string) RoundSeeder {
	return func(roundID string) (*rand.Rand, string, string) {
		return NewSeededRNG(seed + "-" + roundID), seed, crypto.HashSeed(seed)
	}
}

// newRoundID stamps a round the way game IDs are stamped everywhere
// else: a millisecond wall-clock timestamp.
func newRoundID() string {
	return time.Now().Format("20060102-150405.000")
}

// Params wires the game rules into the engine root. main builds this
// from the config package; tests build it by hand.
type Params struct {
	GateThreshold int64
	ClickReward   int64

	Catalog []Upgrade

	BlackjackWinMultiplier int64
	DealerStandsAt         int

	Race RaceParams

	// Seeder defaults to FairSeeder when nil
	Seeder RoundSeeder

	// Sched defaults to a wall-clock scheduler when nil
	Sched *Scheduler
}

// Engine is the shared-economy root: one ledger, one scheduler, and the
// three systems that spend and earn against them. Construct with New,
// register listeners, then Start.
type Engine struct {
	Ledger    *Ledger
	Sched     *Scheduler
	Shop      *Shop
	Blackjack *Blackjack
	Race      *Race

	clickReward int64
}

// New builds the engine. The ledger is created here and handed by
// reference to every subsystem; it is never copied.
func New(p Params) *Engine {
	seeder := p.Seeder
	if seeder == nil {
		seeder = FairSeeder
	}
	sched := p.Sched
	if sched == nil {
		sched = NewScheduler()
	}

	ledger := NewLedger(p.GateThreshold)
	e := &Engine{
		Ledger:      ledger,
		Sched:       sched,
		Shop:        NewShop(ledger, sched, p.Catalog),
		Blackjack:   NewBlackjack(ledger, seeder, p.BlackjackWinMultiplier, p.DealerStandsAt),
		Race:        NewRace(ledger, sched, seeder, p.Race),
		clickReward: p.ClickReward,
	}
	return e
}

// Start opens the blackjack table, arms the upgrade timers and runs the
// scheduler until ctx is cancelled.
func (e *Engine) Start(ctx context.Context) {
	// The table opens for bets immediately; NewRound from idle cannot fail.
	_ = e.Blackjack.NewRound()
	e.Shop.Start()
	if !e.Sched.manual {
		go e.Sched.Run(ctx)
	}
}

// Click is the manual cookie click: an unconditional credit.
func (e *Engine) Click() int64 {
	return e.Ledger.Credit(e.clickReward)
}
