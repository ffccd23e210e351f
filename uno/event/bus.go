// Package event fans game happenings out to listeners. Every game owns its own
// Bus, so concurrent matches never see each other's events.
package event

type Bus struct {
	FirstCardPlayed FirstCardPlayedEmitter
	CardPlayed      CardPlayedEmitter
	ColorPicked     ColorPickedEmitter
	CardsDrawn      CardsDrawnEmitter
	TurnReversed    TurnReversedEmitter
	TurnSkipped     TurnSkippedEmitter
	PlayerWon       PlayerWonEmitter
}

func NewBus() *Bus {
	return &Bus{}
}

// AddListener subscribes listener to every event whose listener interface it
// implements. It reports whether any subscription was made.
func (b *Bus) AddListener(listener interface{}) bool {
	subscribed := false
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
		subscribed = true
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
		subscribed = true
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
		subscribed = true
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
		subscribed = true
	}
	if l, ok := listener.(TurnReversedListener); ok {
		b.TurnReversed.AddListener(l)
		subscribed = true
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		b.TurnSkipped.AddListener(l)
		subscribed = true
	}
	if l, ok := listener.(PlayerWonListener); ok {
		b.PlayerWon.AddListener(l)
		subscribed = true
	}
	return subscribed
}
