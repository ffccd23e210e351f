package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type naivePlayer struct {
	basicPlayer
}

// NewNaivePlayer plays the first matching card and never calls Uno.
func NewNaivePlayer(name string) Bot {
	return naivePlayer{basicPlayer: basicPlayer{name: name}}
}

func (p naivePlayer) PickColor(gameState game.State) color.Color {
	return color.All[rand.Intn(len(color.All))]
}

func (p naivePlayer) Decide(gameState game.State) game.TurnAction {
	playable := playableCards(gameState)
	if len(playable) == 0 {
		return game.Draw{}
	}
	return playAction(playable[0], p.PickColor(gameState))
}
