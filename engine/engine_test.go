package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e := New(Params{
		GateThreshold:          -100,
		ClickReward:            1,
		Catalog:                testCatalog(),
		BlackjackWinMultiplier: 2,
		DealerStandsAt:         17,
		Race:                   testRaceParams(),
		Seeder:                 FixedSeeder("engine-test"),
		Sched:                  NewManualScheduler(time.Unix(0, 0)),
	})
	e.Start(context.Background())
	return e
}

func TestEngine_StartOpensEverything(t *testing.T) {
	e := newTestEngine(t)

	assert.Equal(t, BJPhaseAwaitingBet, e.Blackjack.Phase())
	assert.Equal(t, RacePhaseIdle, e.Race.Phase())
	// One repeating timer armed per catalog entry
	assert.Equal(t, len(testCatalog()), e.Sched.Len())
}

func TestEngine_Click(t *testing.T) {
	e := newTestEngine(t)

	assert.Equal(t, int64(1), e.Click())
	assert.Equal(t, int64(2), e.Click())
	assert.Equal(t, int64(2), e.Ledger.Balance())
}

func TestEngine_SystemsShareOneLedger(t *testing.T) {
	e := newTestEngine(t)
	e.Ledger.Credit(100)

	// Shop spends from the same pot the table bets from
	_, err := e.Shop.Purchase("strawberry")
	require.NoError(t, err)
	require.Equal(t, int64(90), e.Ledger.Balance())

	require.NoError(t, e.Blackjack.PlaceBet(30))
	require.Equal(t, int64(60), e.Ledger.Balance())

	// The race sees the same remainder
	assert.ErrorIs(t, e.Race.Start(0, 61), ErrInsufficientFunds)
	require.NoError(t, e.Race.Start(0, 60))
	assert.Equal(t, int64(0), e.Ledger.Balance())
}

func TestEngine_DefaultsWallClock(t *testing.T) {
	e := New(Params{
		GateThreshold: -100,
		ClickReward:   1,
		Race:          testRaceParams(),
	})

	assert.NotNil(t, e.Sched)
	assert.False(t, e.Sched.manual)
	assert.NotNil(t, e.Blackjack)
}
