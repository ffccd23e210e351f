package event_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/stretchr/testify/require"
)

type wonOnly struct {
	places []int
}

func (w *wonOnly) OnPlayerWon(payload event.PlayerWonPayload) {
	w.places = append(w.places, payload.Place)
}

func TestCardPlayed(t *testing.T) {
	bus := event.NewBus()
	listenerOne := event.NewDummyListener()
	listenerTwo := event.NewDummyListener()
	require.True(t, bus.AddListener(listenerOne))
	require.True(t, bus.AddListener(listenerTwo))

	payloads := []event.CardPlayedPayload{
		{PlayerID: 1, PlayerName: "Someone", Card: card.NewColoredCard(card.NewWildCard(), color.Red)},
		{PlayerID: 2, PlayerName: "Somebody", Card: card.NewDrawTwoCard(color.Green)},
	}
	for _, payload := range payloads {
		bus.CardPlayed.Emit(payload)
	}

	require.ElementsMatch(t, payloads, listenerOne.ReceivedPayloads())
	require.ElementsMatch(t, payloads, listenerTwo.ReceivedPayloads())
}

func TestCardsDrawn(t *testing.T) {
	bus := event.NewBus()
	listener := event.NewDummyListener()
	bus.AddListener(listener)

	payload := event.CardsDrawnPayload{
		PlayerID: 3,
		Cards:    []card.Card{card.NewWildCard(), card.NewSkipCard(color.Blue)},
		Reason:   event.ReasonCalledOut,
	}
	bus.CardsDrawn.Emit(payload)

	require.Equal(t, []interface{}{payload}, listener.ReceivedPayloads())
	require.Equal(t, "called out", payload.Reason.String())
}

func TestBusesAreIndependent(t *testing.T) {
	first, second := event.NewBus(), event.NewBus()
	listener := event.NewDummyListener()
	first.AddListener(listener)

	second.ColorPicked.Emit(event.ColorPickedPayload{PlayerName: "Somebody", Color: color.Yellow})
	require.Empty(t, listener.ReceivedPayloads())

	first.TurnReversed.Emit(event.TurnReversedPayload{PlayerName: "Someone"})
	first.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: card.NewNumberCard(color.Red, 0)})
	first.TurnSkipped.Emit(event.TurnSkippedPayload{PlayerID: 2, PlayerName: "Somebody"})
	require.Len(t, listener.ReceivedPayloads(), 3)
	require.Equal(t, event.TurnSkippedPayload{PlayerID: 2, PlayerName: "Somebody"}, listener.ReceivedPayloads()[2])
}

func TestAddListener(t *testing.T) {
	bus := event.NewBus()
	require.False(t, bus.AddListener(struct{}{}))

	listener := &wonOnly{}
	require.True(t, bus.AddListener(listener))
	bus.PlayerWon.Emit(event.PlayerWonPayload{PlayerID: 1, Place: 1})
	bus.PlayerWon.Emit(event.PlayerWonPayload{PlayerID: 2, Place: 2})
	bus.CardPlayed.Emit(event.CardPlayedPayload{Card: card.NewWildCard()})
	require.Equal(t, []int{1, 2}, listener.places)
}
