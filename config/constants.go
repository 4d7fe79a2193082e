package config

import (
	"time"

	"overlayServer/engine"
)

/* =========================
   ECONOMY
========================= */

const (
	// Cookies credited per manual click
	ClickReward = 1

	// Balance below this hides the video surface on the overlay.
	// The gate is cosmetic: the ledger itself never clamps.
	VideoGateThreshold = -100
)

/* =========================
   SALARY METER
========================= */

const (
	// Displayed earnings accrue at this hourly rate from engine start
	DefaultSalaryPerHour = 3000.00

	// Meter refresh interval (matches the 100ms overlay redraw)
	SalaryTickInterval = 100 * time.Millisecond
)

/* =========================
   ENCOURAGEMENT MESSAGES
========================= */

const (
	// A new message is picked every 30s and cleared after 5s
	EncourageInterval = 30 * time.Second
	EncourageVisible  = 5 * time.Second
)

// EncourageMessages is the rotation shown on the salary meter
var EncourageMessages = []string{
	"Continue comme ça !", "Tu gères !", "Super boulot !",
	"Chaque seconde compte !", "Gardez le rythme !", "Tu es incroyable !",
	"Tu tiens le coup !", "Fonce !", "Ne lâche rien !", "Bravo, continue !",
}

/* =========================
   SPECIAL VIDEO CUE
========================= */

const (
	// Fullscreen special video cue interval (playback is client-side)
	SpecialVideoInterval = 10 * time.Minute
)

/* =========================
   AUTO-CLICK SHOP
========================= */

// DefaultCatalog returns the purchasable auto-click upgrades.
// Costs are fixed and never scale with the owned count.
func DefaultCatalog() []engine.Upgrade {
	return []engine.Upgrade{
		{ID: "strawberry", Emoji: "🍓", Cost: 10, Period: 5 * time.Second, Payout: 1},
		{ID: "snail", Emoji: "🐌", Cost: 50, Period: 10 * time.Second, Payout: 5},
	}
}

/* =========================
   GAME MECHANICS - BLACKJACK
========================= */

const (
	// Dealer draws while below this score
	DealerStandsAt = 17

	// A winning hand returns bet * this multiplier; a push refunds the bet
	BlackjackWinMultiplier = 2
)

/* =========================
   GAME MECHANICS - HORSE RACE
========================= */

const (
	HorseCount       = 6
	RaceTickInterval = 50 * time.Millisecond
	RaceFinishLine   = 160

	// Per-tick advance, uniform in [HorseStepMin, HorseStepMax]
	HorseStepMin = 1
	HorseStepMax = 8

	// Winning horse returns stake * this multiplier
	RaceWinMultiplier = 2
)

// HorseNames identify the lanes, in track order
var HorseNames = []string{"red", "blue", "yellow", "orange", "purple", "cyan"}

/* =========================
   WEBSOCKET CONFIGURATION
========================= */

const (
	// Buffer sizes
	WSReadBufferSize  = 1024
	WSWriteBufferSize = 1024

	// Per-client outbound queue; slow clients drop messages past this
	WSSendQueueSize = 256

	// Message size limits
	MaxMessageSize = 64 * 1024 // 64KB
)
