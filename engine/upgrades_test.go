package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() []Upgrade {
	return []Upgrade{
		{ID: "strawberry", Emoji: "🍓", Cost: 10, Period: 5 * time.Second, Payout: 1},
		{ID: "snail", Emoji: "🐌", Cost: 50, Period: 10 * time.Second, Payout: 5},
	}
}

func TestShop_Purchase(t *testing.T) {
	l := NewLedger(-100)
	s := NewShop(l, NewManualScheduler(time.Unix(0, 0)), testCatalog())
	l.Credit(25)

	owned, err := s.Purchase("strawberry")
	require.NoError(t, err)
	assert.Equal(t, 1, owned)
	assert.Equal(t, int64(15), l.Balance())

	// Cost is fixed: a second unit costs the same
	owned, err = s.Purchase("strawberry")
	require.NoError(t, err)
	assert.Equal(t, 2, owned)
	assert.Equal(t, int64(5), l.Balance())
}

func TestShop_PurchaseInsufficientFunds(t *testing.T) {
	l := NewLedger(-100)
	s := NewShop(l, NewManualScheduler(time.Unix(0, 0)), testCatalog())
	l.Credit(49)

	_, err := s.Purchase("snail")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, int64(49), l.Balance())
	assert.Zero(t, s.Owned("snail"))
}

func TestShop_PurchaseUnknownUpgrade(t *testing.T) {
	l := NewLedger(-100)
	s := NewShop(l, NewManualScheduler(time.Unix(0, 0)), testCatalog())
	l.Credit(100)

	_, err := s.Purchase("dragon")
	assert.ErrorIs(t, err, ErrInvalidAmount)
	assert.Equal(t, int64(100), l.Balance())
}

func TestShop_TickCreditsPayoutTimesOwned(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	l := NewLedger(-100)
	s := NewShop(l, sched, testCatalog())
	s.Start()

	l.Credit(50)
	for i := 0; i < 5; i++ {
		_, err := s.Purchase("strawberry")
		require.NoError(t, err)
	}
	require.Equal(t, int64(0), l.Balance())

	// One strawberry period: 1 cookie per unit, 5 owned
	sched.Advance(5 * time.Second)
	assert.Equal(t, int64(5), l.Balance())

	// 10s mark: strawberry ticks again AND the snail timer fires (owned=0, no credit)
	sched.Advance(5 * time.Second)
	assert.Equal(t, int64(10), l.Balance())
}

func TestShop_TimersAreIndependent(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	l := NewLedger(-100)
	s := NewShop(l, sched, testCatalog())
	s.Start()

	l.Credit(60)
	_, err := s.Purchase("strawberry") // 10
	require.NoError(t, err)
	_, err = s.Purchase("snail") // 50
	require.NoError(t, err)
	require.Equal(t, int64(0), l.Balance())

	// 30 seconds: strawberry fires 6 times (+1 each), snail 3 times (+5 each)
	sched.Advance(30 * time.Second)
	assert.Equal(t, int64(21), l.Balance())
}

func TestShop_TicksRunBeforeAnythingIsOwned(t *testing.T) {
	sched := NewManualScheduler(time.Unix(0, 0))
	l := NewLedger(-100)
	s := NewShop(l, sched, testCatalog())
	s.Start()

	sched.Advance(time.Minute)
	assert.Equal(t, int64(0), l.Balance())
	// Timers stay armed forever
	assert.Equal(t, 2, sched.Len())
}

func TestShop_InventoryChangedEvents(t *testing.T) {
	l := NewLedger(-100)
	s := NewShop(l, NewManualScheduler(time.Unix(0, 0)), testCatalog())
	l.Credit(20)

	type change struct {
		id    string
		owned int
	}
	var seen []change
	s.OnInventoryChanged(func(id string, owned int) { seen = append(seen, change{id, owned}) })

	_, err := s.Purchase("strawberry")
	require.NoError(t, err)
	_, err = s.Purchase("strawberry")
	require.NoError(t, err)

	assert.Equal(t, []change{{"strawberry", 1}, {"strawberry", 2}}, seen)
}

func TestShop_InventorySnapshot(t *testing.T) {
	l := NewLedger(-100)
	s := NewShop(l, NewManualScheduler(time.Unix(0, 0)), testCatalog())
	l.Credit(10)

	_, err := s.Purchase("strawberry")
	require.NoError(t, err)

	inv := s.Inventory()
	require.Len(t, inv, 2)
	assert.Equal(t, "strawberry", inv[0].ID)
	assert.Equal(t, 1, inv[0].Owned)
	assert.Equal(t, int64(10), inv[0].Cost)
	assert.Equal(t, int64(5000), inv[0].PeriodMs)
	assert.Equal(t, "snail", inv[1].ID)
	assert.Zero(t, inv[1].Owned)
}
