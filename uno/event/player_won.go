package event

// PlayerWonPayload is emitted when a player empties their hand. Place starts
// at 1 for the first player out.
type PlayerWonPayload struct {
	PlayerID   int64
	PlayerName string
	Place      int
}

type PlayerWonListener interface {
	OnPlayerWon(PlayerWonPayload)
}

type PlayerWonEmitter struct {
	listeners []PlayerWonListener
}

func (e *PlayerWonEmitter) AddListener(listener PlayerWonListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *PlayerWonEmitter) Emit(payload PlayerWonPayload) {
	for _, listener := range e.listeners {
		listener.OnPlayerWon(payload)
	}
}
