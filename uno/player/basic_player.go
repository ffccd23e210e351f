package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

// Bot turns what one seat can see into a single turn action. The engine never
// ends a turn on Draw, Callout or Uno, so a bot is asked again until it plays.
type Bot interface {
	Name() string
	Decide(gameState game.State) game.TurnAction
}

type basicPlayer struct {
	name string
}

func (p basicPlayer) Name() string {
	return p.name
}

func playableCards(gameState game.State) []card.Card {
	hand := game.NewHand()
	hand.AddCards(gameState.CurrentPlayerHand)
	return hand.PlayableCards(gameState.LastPlayedCard)
}

// playAction plays selected, naming pickedColor if it is a wild card.
func playAction(selected card.Card, pickedColor color.Color) game.TurnAction {
	switch selected.(type) {
	case card.WildCard:
		return game.PlayWildCard(pickedColor)
	case card.WildDrawFourCard:
		return game.PlayWildDrawCard(pickedColor)
	default:
		return game.PlayCard(selected)
	}
}
