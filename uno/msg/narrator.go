package msg

import (
	"io"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/event"
)

// Narrator writes a line of text for every game event it receives.
type Narrator struct {
	out     io.Writer
	painted bool
}

func NewNarrator(out io.Writer, painted bool) *Narrator {
	return &Narrator{out: out, painted: painted}
}

// paintedCard renders its card with terminal colors.
type paintedCard struct {
	card.Card
}

func (p paintedCard) String() string {
	return card.Paint(p.Card)
}

func (n *Narrator) display(c card.Card) card.Card {
	if n.painted {
		return paintedCard{Card: c}
	}
	return c
}

func (n *Narrator) write(text string) {
	_, _ = io.WriteString(n.out, text)
}

func (n *Narrator) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	n.write(Message.FirstCardPlayed(n.display(payload.Card)))
}

func (n *Narrator) OnCardPlayed(payload event.CardPlayedPayload) {
	n.write(Message.PlayerPlayedCard(payload.PlayerName, n.display(payload.Card)))
}

func (n *Narrator) OnColorPicked(payload event.ColorPickedPayload) {
	n.write(Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (n *Narrator) OnCardsDrawn(payload event.CardsDrawnPayload) {
	n.write(Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (n *Narrator) OnTurnReversed(event.TurnReversedPayload) {
	n.write(Message.TurnOrderReversed())
}

func (n *Narrator) OnTurnSkipped(payload event.TurnSkippedPayload) {
	n.write(Message.PlayerTurnSkipped(payload.PlayerName))
}

func (n *Narrator) OnPlayerWon(payload event.PlayerWonPayload) {
	n.write(Message.WinnerFound(payload.PlayerName, payload.Place))
}
