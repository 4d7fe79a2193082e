package ws

import (
	"log"

	"overlayServer/config"
	"overlayServer/engine"
	"overlayServer/state"
)

var (
	eng     *engine.Engine
	overlay *state.OverlayState
)

// Init wires the engine's events onto the broadcast channels and arms
// the cosmetic overlay timers on the engine scheduler. Call once,
// before the engine starts and before any client connects.
func Init(e *engine.Engine, o *state.OverlayState) {
	eng = e
	overlay = o

	wireEconomy(e)
	wireBlackjack(e)
	wireRace(e)
	startOverlayBroadcasts(e, o)

	log.Println("✅ Engine events wired to overlay broadcast")
}

/* =========================
   ECONOMY EVENTS
========================= */

func wireEconomy(e *engine.Engine) {
	e.Ledger.OnBalanceChanged(func(balance int64) {
		Broadcast(ChannelEconomy, map[string]interface{}{
			"type": "balance_changed",
			"data": map[string]interface{}{"balance": balance},
		})
	})

	e.Ledger.OnVideoGate(func(visible bool) {
		Broadcast(ChannelEconomy, map[string]interface{}{
			"type": "video_gate",
			"data": map[string]interface{}{"visible": visible},
		})
	})

	e.Shop.OnInventoryChanged(func(id string, owned int) {
		Broadcast(ChannelEconomy, map[string]interface{}{
			"type": "inventory_changed",
			"data": map[string]interface{}{"id": id, "owned": owned},
		})
	})
}

/* =========================
   BLACKJACK EVENTS
========================= */

func wireBlackjack(e *engine.Engine) {
	e.Blackjack.OnRoundStarted(func(roundID, seedHash string, bet int64) {
		Broadcast(ChannelBlackjack, map[string]interface{}{
			"type": "round_started",
			"data": map[string]interface{}{
				"roundId":  roundID,
				"seedHash": seedHash,
				"bet":      bet,
			},
		})
	})

	e.Blackjack.OnHandsChanged(func(player, dealer []engine.Card, playerScore, dealerScore int) {
		Broadcast(ChannelBlackjack, map[string]interface{}{
			"type": "hands_changed",
			"data": map[string]interface{}{
				"player":      cardStrings(player),
				"dealer":      cardStrings(dealer),
				"playerScore": playerScore,
				"dealerScore": dealerScore,
			},
		})
	})

	e.Blackjack.OnResolved(func(outcome engine.BlackjackOutcome, bet, payout int64, serverSeed string) {
		Broadcast(ChannelBlackjack, map[string]interface{}{
			"type": "round_resolved",
			"data": map[string]interface{}{
				"outcome":    outcome,
				"bet":        bet,
				"payout":     payout,
				"serverSeed": serverSeed,
			},
		})
	})
}

/* =========================
   RACE EVENTS
========================= */

func wireRace(e *engine.Engine) {
	e.Race.OnRaceStarted(func(raceID, seedHash string, chosen int, stake int64) {
		Broadcast(ChannelRace, map[string]interface{}{
			"type": "race_started",
			"data": map[string]interface{}{
				"raceId":   raceID,
				"seedHash": seedHash,
				"horse":    chosen,
				"stake":    stake,
			},
		})
	})

	e.Race.OnTick(func(positions []int) {
		Broadcast(ChannelRace, map[string]interface{}{
			"type": "race_tick",
			"data": map[string]interface{}{"positions": positions},
		})
	})

	e.Race.OnResolved(func(winner int, payout int64, serverSeed string) {
		Broadcast(ChannelRace, map[string]interface{}{
			"type": "race_resolved",
			"data": map[string]interface{}{
				"winner":     winner,
				"horse":      e.Race.Horses()[winner],
				"payout":     payout,
				"serverSeed": serverSeed,
			},
		})
	})
}

/* =========================
   OVERLAY COSMETICS
========================= */

// startOverlayBroadcasts arms the salary meter, the encouragement
// rotation and the special-video cue. Playback and drawing stay on the
// client; the server only emits the cues.
func startOverlayBroadcasts(e *engine.Engine, o *state.OverlayState) {
	e.Sched.ScheduleRepeating(config.SalaryTickInterval, func() {
		Broadcast(ChannelOverlay, map[string]interface{}{
			"type": "salary_tick",
			"data": map[string]interface{}{"amount": o.SalaryAt(e.Sched.Now())},
		})
	})

	e.Sched.ScheduleRepeating(config.EncourageInterval, func() {
		msg := o.NextMessage()
		Broadcast(ChannelOverlay, map[string]interface{}{
			"type": "encourage",
			"data": map[string]interface{}{"message": msg},
		})
		e.Sched.Schedule(config.EncourageVisible, func() {
			Broadcast(ChannelOverlay, map[string]interface{}{
				"type": "encourage_clear",
			})
		})
	})

	e.Sched.ScheduleRepeating(config.SpecialVideoInterval, func() {
		Broadcast(ChannelOverlay, map[string]interface{}{
			"type": "special_video",
		})
	})
}

// cardStrings renders a hand the way the overlay prints it: "A♠ 10♥".
func cardStrings(hand []engine.Card) []string {
	out := make([]string, 0, len(hand))
	for _, c := range hand {
		out = append(out, c.String())
	}
	return out
}
