package engine

import (
	"math/rand"
	"strconv"
)

// Card is a rank plus a suit, e.g. "A♠".
type Card struct {
	Rank string `json:"rank"`
	Suit string `json:"suit"`
}

func (c Card) String() string {
	return c.Rank + c.Suit
}

var (
	cardRanks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}
	cardSuits = []string{"♠", "♥", "♦", "♣"}
)

// newDeck builds a shuffled 52-card deck from the round's random source.
// Cards are dealt from the end; a dealt card never returns to the deck.
func newDeck(rng *rand.Rand) []Card {
	deck := make([]Card, 0, 52)
	for _, r := range cardRanks {
		for _, s := range cardSuits {
			deck = append(deck, Card{Rank: r, Suit: s})
		}
	}
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

// HandScore totals a hand: 2-10 at face value, J/Q/K at 10, aces at 11.
// While the total busts and a soft ace remains, one ace is demoted from
// 11 to 1. Both hands are scored with this exact loop.
func HandScore(hand []Card) int {
	total, aces := 0, 0
	for _, c := range hand {
		switch c.Rank {
		case "A":
			total += 11
			aces++
		case "K", "Q", "J":
			total += 10
		default:
			n, _ := strconv.Atoi(c.Rank)
			total += n
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}
