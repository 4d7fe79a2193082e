package engine

import "sync"

/* =========================
   ROUND STATE
========================= */

// BlackjackPhase tracks the round state machine.
type BlackjackPhase string

const (
	BJPhaseIdle        BlackjackPhase = "idle"
	BJPhaseAwaitingBet BlackjackPhase = "awaiting_bet"
	BJPhasePlayerTurn  BlackjackPhase = "player_turn"
	BJPhaseDealerTurn  BlackjackPhase = "dealer_turn"
	BJPhaseResolved    BlackjackPhase = "resolved"
)

// BlackjackOutcome is how a resolved round ended for the player.
type BlackjackOutcome string

const (
	OutcomeWin  BlackjackOutcome = "win"
	OutcomePush BlackjackOutcome = "push"
	OutcomeLoss BlackjackOutcome = "loss"
	OutcomeBust BlackjackOutcome = "bust"
)

// HandsListener receives both hands and their scores after every change.
// The dealer plays open; there is no hole card on this table.
type HandsListener func(player, dealer []Card, playerScore, dealerScore int)

// BlackjackResolvedListener fires once per round, after the payout has
// been credited. serverSeed is revealed for fairness verification.
type BlackjackResolvedListener func(outcome BlackjackOutcome, bet, payout int64, serverSeed string)

// Blackjack is the card-table round engine. One round exists at a time;
// no history is retained.
//
// Phases: idle -> awaiting_bet (NewRound) -> player_turn (PlaceBet, which
// debits immediately) -> player_turn (Hit) | dealer_turn (Stand) ->
// resolved -> awaiting_bet (NewRound again).
//
// Operations run to completion under the table mutex; listeners fire
// inside the operation and must not call back into the table.
type Blackjack struct {
	mu     sync.Mutex
	ledger *Ledger
	seeder RoundSeeder

	winMultiplier int64
	standsAt      int

	phase  BlackjackPhase
	deck   []Card
	player []Card
	dealer []Card
	bet    int64

	roundID    string
	serverSeed string
	seedHash   string

	onStarted  func(roundID, seedHash string, bet int64)
	onHands    []HandsListener
	onResolved []BlackjackResolvedListener
}

// NewBlackjack creates the table. The ledger reference is shared with
// every other engine; the seeder produces the per-round random source.
func NewBlackjack(ledger *Ledger, seeder RoundSeeder, winMultiplier int64, standsAt int) *Blackjack {
	return &Blackjack{
		ledger:        ledger,
		seeder:        seeder,
		winMultiplier: winMultiplier,
		standsAt:      standsAt,
		phase:         BJPhaseIdle,
	}
}

// OnRoundStarted registers the round-commitment listener.
func (b *Blackjack) OnRoundStarted(fn func(roundID, seedHash string, bet int64)) {
	b.onStarted = fn
}

// OnHandsChanged registers a hands listener.
func (b *Blackjack) OnHandsChanged(fn HandsListener) {
	b.onHands = append(b.onHands, fn)
}

// OnResolved registers a resolution listener.
func (b *Blackjack) OnResolved(fn BlackjackResolvedListener) {
	b.onResolved = append(b.onResolved, fn)
}

// Phase returns the current round phase.
func (b *Blackjack) Phase() BlackjackPhase {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.phase
}

// Bet returns the current round's bet (0 outside a round).
func (b *Blackjack) Bet() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bet
}

// Hands returns copies of both hands.
func (b *Blackjack) Hands() (player, dealer []Card) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Card(nil), b.player...), append([]Card(nil), b.dealer...)
}

/* =========================
   OPERATIONS
========================= */

// NewRound clears the table and opens betting. Legal from idle (startup)
// and resolved only.
func (b *Blackjack) NewRound() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase != BJPhaseIdle && b.phase != BJPhaseResolved {
		return ErrInvalidState
	}
	b.phase = BJPhaseAwaitingBet
	b.deck = nil
	b.player = nil
	b.dealer = nil
	b.bet = 0
	b.roundID = ""
	b.serverSeed = ""
	b.seedHash = ""
	b.notifyHands()
	return nil
}

// PlaceBet debits amount, shuffles a fresh 52-card deck from the round
// seed and deals two cards each. The bet can never exceed the balance
// because the debit happens first, atomically.
func (b *Blackjack) PlaceBet(amount int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase != BJPhaseAwaitingBet {
		return ErrInvalidState
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if _, err := b.ledger.Debit(amount); err != nil {
		return err
	}

	b.bet = amount
	b.roundID = newRoundID()
	rng, seed, hash := b.seeder(b.roundID)
	b.serverSeed = seed
	b.seedHash = hash

	b.deck = newDeck(rng)
	b.player = []Card{b.draw(), b.draw()}
	b.dealer = []Card{b.draw(), b.draw()}
	b.phase = BJPhasePlayerTurn

	if b.onStarted != nil {
		b.onStarted(b.roundID, b.seedHash, b.bet)
	}
	b.notifyHands()
	return nil
}

// Hit draws one card for the player. Going over 21 resolves the round
// immediately as a bust.
func (b *Blackjack) Hit() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase != BJPhasePlayerTurn {
		return ErrInvalidState
	}
	b.player = append(b.player, b.draw())
	b.notifyHands()
	if HandScore(b.player) > 21 {
		b.resolve(OutcomeBust)
	}
	return nil
}

// Stand ends the player's turn. The dealer draws to the stand threshold,
// then scores are compared: dealer bust or lower score pays the win
// multiplier, a tie refunds the bet, otherwise the bet is lost.
func (b *Blackjack) Stand() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase != BJPhasePlayerTurn {
		return ErrInvalidState
	}
	b.phase = BJPhaseDealerTurn

	for HandScore(b.dealer) < b.standsAt {
		b.dealer = append(b.dealer, b.draw())
	}
	b.notifyHands()

	ps, ds := HandScore(b.player), HandScore(b.dealer)
	switch {
	case ds > 21 || ps > ds:
		b.resolve(OutcomeWin)
	case ps == ds:
		b.resolve(OutcomePush)
	default:
		b.resolve(OutcomeLoss)
	}
	return nil
}

/* =========================
   INTERNALS
========================= */

func (b *Blackjack) draw() Card {
	c := b.deck[len(b.deck)-1]
	b.deck = b.deck[:len(b.deck)-1]
	return c
}

func (b *Blackjack) resolve(outcome BlackjackOutcome) {
	var payout int64
	switch outcome {
	case OutcomeWin:
		payout = b.winMultiplier * b.bet
	case OutcomePush:
		payout = b.bet
	}
	if payout > 0 {
		b.ledger.Credit(payout)
	}

	b.phase = BJPhaseResolved
	for _, fn := range b.onResolved {
		fn(outcome, b.bet, payout, b.serverSeed)
	}
}

// notifyHands runs under b.mu; hands are copied so listeners can hold
// onto the slices.
func (b *Blackjack) notifyHands() {
	player := append([]Card(nil), b.player...)
	dealer := append([]Card(nil), b.dealer...)
	ps, ds := HandScore(player), HandScore(dealer)
	for _, fn := range b.onHands {
		fn(player, dealer, ps, ds)
	}
}
