// Package flashcards is a flip-card drill over the chart of accounts.
package flashcards

import (
	"math/rand/v2"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/cleared-dev/statementlab/internal/model"
)

// Deck is an ordered set of cards with a cursor and a flipped flag.
type Deck struct {
	cards   []model.Account
	index   int
	flipped bool
}

// NewDeck builds a deck in the given order.
func NewDeck(accounts []model.Account) *Deck {
	return &Deck{cards: slices.Clone(accounts)}
}

// Len returns the number of cards.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Index returns the zero-based position of the current card.
func (d *Deck) Index() int {
	return d.index
}

// Current returns the card at the cursor. It reports false for an empty deck.
func (d *Deck) Current() (model.Account, bool) {
	if len(d.cards) == 0 {
		return model.Account{}, false
	}
	return d.cards[d.index], true
}

// Flipped reports whether the answer side is showing.
func (d *Deck) Flipped() bool {
	return d.flipped
}

// Flip toggles between the title side and the answer side.
func (d *Deck) Flip() {
	d.flipped = !d.flipped
}

// Next moves to the next card, wrapping to the first, and shows its title side.
func (d *Deck) Next() {
	d.flipped = false
	if len(d.cards) == 0 {
		return
	}
	d.index = (d.index + 1) % len(d.cards)
}

// Shuffle reorders the deck with r and returns to the first card, title side up.
func (d *Deck) Shuffle(r *rand.Rand) {
	r.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	d.index = 0
	d.flipped = false
}

// Progress returns (index+1)/len as a percentage rounded to two places.
func (d *Deck) Progress() decimal.Decimal {
	if len(d.cards) == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(d.index + 1)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(len(d.cards)))).
		Round(2)
}

// Cards returns a copy of the deck in its current order.
func (d *Deck) Cards() []model.Account {
	return slices.Clone(d.cards)
}
