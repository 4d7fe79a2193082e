package engine

import (
	"fmt"
	"sync"
	"time"
)

// Upgrade is one catalog entry in the auto-click shop. Cost is fixed and
// never scales with the owned count.
type Upgrade struct {
	ID     string
	Emoji  string
	Cost   int64
	Period time.Duration
	Payout int64 // cookies credited per owned unit per tick
}

// InventoryEntry is a snapshot of one upgrade and how many are owned.
type InventoryEntry struct {
	ID       string `json:"id"`
	Emoji    string `json:"emoji"`
	Cost     int64  `json:"cost"`
	Payout   int64  `json:"payout"`
	PeriodMs int64  `json:"periodMs"`
	Owned    int    `json:"owned"`
}

// InventoryListener receives (upgrade id, new owned count) after a
// purchase.
type InventoryListener func(id string, owned int)

// Shop is the auto-click upgrade system. Each catalog entry gets its own
// repeating timer, armed when the engine starts and never resynchronized
// with the others: every upgrade's clock starts at engine start and
// drifts only by scheduler jitter.
type Shop struct {
	mu     sync.Mutex
	ledger *Ledger
	sched  *Scheduler

	items []*shopItem

	onInventory []InventoryListener
}

type shopItem struct {
	Upgrade
	owned int
}

// NewShop creates the shop over the shared ledger and scheduler.
func NewShop(ledger *Ledger, sched *Scheduler, catalog []Upgrade) *Shop {
	s := &Shop{ledger: ledger, sched: sched}
	for _, u := range catalog {
		s.items = append(s.items, &shopItem{Upgrade: u})
	}
	return s
}

// OnInventoryChanged registers a purchase listener.
func (s *Shop) OnInventoryChanged(fn InventoryListener) {
	s.onInventory = append(s.onInventory, fn)
}

// Start arms one repeating payout timer per upgrade. Ticks fire for the
// lifetime of the process whether or not anything is owned yet.
func (s *Shop) Start() {
	for _, item := range s.items {
		item := item
		s.sched.ScheduleRepeating(item.Period, func() { s.tick(item) })
	}
}

// Purchase debits the upgrade's cost and increments its owned count.
// Fails with ErrInsufficientFunds when the balance cannot cover the
// cost; a rejected purchase changes nothing.
func (s *Shop) Purchase(id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.find(id)
	if item == nil {
		return 0, fmt.Errorf("%w: unknown upgrade %q", ErrInvalidAmount, id)
	}
	if _, err := s.ledger.Debit(item.Cost); err != nil {
		return 0, err
	}
	item.owned++

	for _, fn := range s.onInventory {
		fn(item.ID, item.owned)
	}
	return item.owned, nil
}

// Owned returns the owned count for an upgrade (0 for unknown ids).
func (s *Shop) Owned(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item := s.find(id); item != nil {
		return item.owned
	}
	return 0
}

// Inventory returns a snapshot of the catalog with owned counts, in
// catalog order.
func (s *Shop) Inventory() []InventoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]InventoryEntry, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, InventoryEntry{
			ID:       item.ID,
			Emoji:    item.Emoji,
			Cost:     item.Cost,
			Payout:   item.Payout,
			PeriodMs: item.Period.Milliseconds(),
			Owned:    item.owned,
		})
	}
	return out
}

// tick credits one upgrade's payout: payout-per-unit times owned, or
// nothing while none are owned.
func (s *Shop) tick(item *shopItem) {
	s.mu.Lock()
	owned := item.owned
	s.mu.Unlock()

	if owned > 0 {
		s.ledger.Credit(item.Payout * int64(owned))
	}
}

// find runs under s.mu.
func (s *Shop) find(id string) *shopItem {
	for _, item := range s.items {
		if item.ID == id {
			return item
		}
	}
	return nil
}
