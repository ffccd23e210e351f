package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

// Hand keeps cards in the order they were acquired.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.StartingHandSize)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// Index returns the position of the first card equal to c, or -1.
func (h *Hand) Index(c card.Card) int {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(c) {
			return index
		}
	}
	return -1
}

func (h *Hand) PlayableCards(lastPlayedCard card.Card) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, lastPlayedCard) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

func (h *Hand) RemoveAt(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return nil, fmt.Errorf("remove card %d of %d: %w", index, len(h.cards), consts.ErrorsInvalidCardIndex)
	}
	removed := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, nil
}

func (h *Hand) Replace(cards []card.Card) {
	h.cards = append(make([]card.Card, 0, len(cards)), cards...)
}

func (h *Hand) Size() int {
	return len(h.cards)
}
