package game

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

const deckSize = 108

// Deck is the draw pile. It only ever shrinks: played cards are never shuffled
// back into it.
type Deck struct {
	cards []card.Card
}

// NewDeck returns the 108 standard cards in construction order. Call Shuffle
// before dealing.
func NewDeck() *Deck {
	cards := make([]card.Card, 0, deckSize)
	for _, cardColor := range color.All {
		cards = append(cards, createColorCards(cardColor)...)
	}
	cards = append(cards, createBlackCards()...)
	return &Deck{cards: cards}
}

// NewDeckFromCards stacks a deck in the given order, first card on top.
func NewDeckFromCards(cards []card.Card) *Deck {
	deck := &Deck{cards: make([]card.Card, len(cards))}
	copy(deck.cards, cards)
	return deck
}

func (d *Deck) Shuffle() {
	rand.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Draw removes the top amount cards. Asking for more cards than are left is an
// error and leaves the deck untouched.
func (d *Deck) Draw(amount int) ([]card.Card, error) {
	if amount < 0 || amount > len(d.cards) {
		return nil, fmt.Errorf("draw %d of %d: %w", amount, len(d.cards), consts.ErrorsDeckExhausted)
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards, nil
}

// DrawColored removes the first card from the top that is not a wild card.
func (d *Deck) DrawColored() (card.Card, error) {
	for index, candidate := range d.cards {
		if card.Colored(candidate) {
			d.cards = append(d.cards[:index], d.cards[index+1:]...)
			return candidate, nil
		}
	}
	return nil, consts.ErrorsNoColoredCard
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}
