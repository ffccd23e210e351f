package event

type TurnReversedPayload struct {
	PlayerID   int64
	PlayerName string
}

type TurnReversedListener interface {
	OnTurnReversed(TurnReversedPayload)
}

type TurnReversedEmitter struct {
	listeners []TurnReversedListener
}

func (e *TurnReversedEmitter) AddListener(listener TurnReversedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *TurnReversedEmitter) Emit(payload TurnReversedPayload) {
	for _, listener := range e.listeners {
		listener.OnTurnReversed(payload)
	}
}
