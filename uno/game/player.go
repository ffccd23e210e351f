package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Player is a seat at the table: an externally assigned id, a display name and
// a hand. Adding or removing a card clears an earlier Uno call.
type Player struct {
	id           int64
	name         string
	hand         *Hand
	unoPerformed bool
}

func NewPlayer(id int64, name string, cards []card.Card) *Player {
	hand := NewHand()
	hand.AddCards(cards)
	return &Player{
		id:   id,
		name: name,
		hand: hand,
	}
}

func (p *Player) ID() int64 {
	return p.id
}

func (p *Player) Name() string {
	return p.name
}

func (p *Player) Cards() []card.Card {
	return p.hand.Cards()
}

func (p *Player) CardsCount() int {
	return p.hand.Size()
}

// CardIndex returns the position of the first card in hand equal to c.
func (p *Player) CardIndex(c card.Card) (int, bool) {
	index := p.hand.Index(c)
	return index, index >= 0
}

func (p *Player) AddCard(c card.Card) {
	p.hand.AddCards([]card.Card{c})
	p.unoPerformed = false
}

func (p *Player) AddCards(cards []card.Card) {
	for _, c := range cards {
		p.AddCard(c)
	}
}

func (p *Player) RemoveCard(index int) (card.Card, error) {
	removed, err := p.hand.RemoveAt(index)
	if err != nil {
		return nil, err
	}
	p.unoPerformed = false
	return removed, nil
}

// ReplaceHand swaps the whole hand, for restoring or scripting a match.
func (p *Player) ReplaceHand(cards []card.Card) {
	p.hand.Replace(cards)
	p.unoPerformed = false
}

func (p *Player) Uno() {
	p.unoPerformed = true
}

func (p *Player) UnoPerformed() bool {
	return p.unoPerformed
}
