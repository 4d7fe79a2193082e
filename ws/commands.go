package ws

import (
	"errors"
	"log"
	"math"

	"overlayServer/engine"
)

// ClientMessage is the envelope for everything the overlay UI sends.
type ClientMessage struct {
	Type string                 `json:"type"`
	Data map[string]interface{} `json:"data,omitempty"`
}

// handleMessage processes one incoming overlay command. The input layer
// owns parsing (JSON numbers to whole cookie amounts); the engine still
// validates range and affordability itself.
func (c *ClientConnection) handleMessage(msg ClientMessage) {
	switch msg.Type {
	case "subscribe":
		channel, ok := msg.Data["channel"].(string)
		if !ok {
			c.sendError(msg.Type, "channel is required")
			return
		}
		c.mu.Lock()
		c.Subscriptions[channel] = true
		c.mu.Unlock()
		log.Printf("📡 Client %s subscribed to: %s", c.ID, channel)

		c.sendInitialData(channel)

	case "unsubscribe":
		channel, ok := msg.Data["channel"].(string)
		if !ok {
			c.sendError(msg.Type, "channel is required")
			return
		}
		c.mu.Lock()
		delete(c.Subscriptions, channel)
		c.mu.Unlock()
		log.Printf("📴 Client %s unsubscribed from: %s", c.ID, channel)

	case "click":
		eng.Click()

	case "purchase":
		id, ok := msg.Data["id"].(string)
		if !ok {
			c.sendError(msg.Type, "upgrade id is required")
			return
		}
		if _, err := eng.Shop.Purchase(id); err != nil {
			c.sendEngineError(msg.Type, err)
		}

	case "bet":
		amount, ok := wholeAmount(msg.Data["amount"])
		if !ok {
			c.sendError(msg.Type, "bet must be a whole number")
			return
		}
		if err := eng.Blackjack.PlaceBet(amount); err != nil {
			c.sendEngineError(msg.Type, err)
		}

	case "hit":
		if err := eng.Blackjack.Hit(); err != nil {
			c.sendEngineError(msg.Type, err)
		}

	case "stand":
		if err := eng.Blackjack.Stand(); err != nil {
			c.sendEngineError(msg.Type, err)
		}

	case "new_round":
		if err := eng.Blackjack.NewRound(); err != nil {
			c.sendEngineError(msg.Type, err)
		}

	case "start_race":
		horse, ok := wholeAmount(msg.Data["horse"])
		if !ok {
			c.sendError(msg.Type, "horse must be a lane index")
			return
		}
		stake, ok := wholeAmount(msg.Data["stake"])
		if !ok {
			c.sendError(msg.Type, "stake must be a whole number")
			return
		}
		if err := eng.Race.Start(int(horse), stake); err != nil {
			c.sendEngineError(msg.Type, err)
		}

	default:
		log.Printf("⚠️  Unknown message type from client %s: %s", c.ID, msg.Type)
	}
}

// wholeAmount converts a JSON number into a whole cookie amount.
// Fractional values are the input layer's problem and are rejected here,
// before the engine sees them.
func wholeAmount(v interface{}) (int64, bool) {
	f, ok := v.(float64)
	if !ok {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}

// sendInitialData pushes the current snapshot for a freshly subscribed
// channel so the overlay can draw without waiting for the next event.
func (c *ClientConnection) sendInitialData(channel string) {
	switch channel {
	case ChannelEconomy:
		c.send(map[string]interface{}{
			"type": "economy_snapshot",
			"data": map[string]interface{}{
				"balance":   eng.Ledger.Balance(),
				"inventory": eng.Shop.Inventory(),
			},
		})

	case ChannelBlackjack:
		player, dealer := eng.Blackjack.Hands()
		c.send(map[string]interface{}{
			"type": "blackjack_snapshot",
			"data": map[string]interface{}{
				"phase":       eng.Blackjack.Phase(),
				"player":      cardStrings(player),
				"dealer":      cardStrings(dealer),
				"playerScore": engine.HandScore(player),
				"dealerScore": engine.HandScore(dealer),
				"bet":         eng.Blackjack.Bet(),
			},
		})

	case ChannelRace:
		winner, payout := eng.Race.LastResult()
		c.send(map[string]interface{}{
			"type": "race_snapshot",
			"data": map[string]interface{}{
				"horses":     eng.Race.Horses(),
				"positions":  eng.Race.Positions(),
				"phase":      eng.Race.Phase(),
				"lastWinner": winner,
				"lastPayout": payout,
			},
		})

	case ChannelOverlay:
		now := eng.Sched.Now()
		c.send(map[string]interface{}{
			"type": "overlay_snapshot",
			"data": map[string]interface{}{
				"salary":    overlay.SalaryAt(now),
				"startTime": overlay.StartTime(),
				"message":   overlay.LastMessage(),
			},
		})
	}
}

// sendError reports a malformed command back to the issuing client.
func (c *ClientConnection) sendError(command, message string) {
	c.send(map[string]interface{}{
		"type": "error",
		"data": map[string]interface{}{
			"command": command,
			"error":   message,
		},
	})
}

// sendEngineError maps the engine's error kinds onto overlay messages.
func (c *ClientConnection) sendEngineError(command string, err error) {
	switch {
	case errors.Is(err, engine.ErrInsufficientFunds):
		c.sendError(command, "Pas assez de cookies")
	case errors.Is(err, engine.ErrInvalidAmount):
		c.sendError(command, "Mise invalide")
	case errors.Is(err, engine.ErrInvalidState):
		c.sendError(command, "Action impossible maintenant")
	default:
		c.sendError(command, err.Error())
	}
}
