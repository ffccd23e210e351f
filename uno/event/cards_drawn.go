package event

import "github.com/ratel-online/uno/uno/card"

type DrawReason int

const (
	ReasonSelfDraw DrawReason = iota + 1
	ReasonDrawCard
	ReasonCalledOut
	ReasonFailedCallout
	ReasonFailedUno
)

func (r DrawReason) String() string {
	switch r {
	case ReasonSelfDraw:
		return "self draw"
	case ReasonDrawCard:
		return "draw card"
	case ReasonCalledOut:
		return "called out"
	case ReasonFailedCallout:
		return "failed callout"
	case ReasonFailedUno:
		return "failed uno"
	}
	return "unknown"
}

type CardsDrawnPayload struct {
	PlayerID   int64
	PlayerName string
	Cards      []card.Card
	Reason     DrawReason
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type CardsDrawnEmitter struct {
	listeners []CardsDrawnListener
}

func (e *CardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *CardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsDrawn(payload)
	}
}
