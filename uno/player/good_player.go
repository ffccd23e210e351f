package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

type goodPlayer struct {
	basicPlayer
	// Pile sizes at which Uno and Callout were last used. The pile grows with
	// every play and a turn only ends with a play, so each is used at most
	// once per turn.
	unoAt     int
	calloutAt int
}

// NewGoodPlayer keeps its options open, calls Uno on its last card and calls
// out opponents holding a single card.
func NewGoodPlayer(name string) Bot {
	return &goodPlayer{basicPlayer: basicPlayer{name: name}, unoAt: -1, calloutAt: -1}
}

func (p *goodPlayer) Decide(gameState game.State) game.TurnAction {
	turn := len(gameState.PlayedCards)
	if len(gameState.CurrentPlayerHand) == 1 && p.unoAt != turn {
		p.unoAt = turn
		return game.Uno{}
	}
	if p.calloutAt != turn && opponentOnLastCard(gameState) {
		p.calloutAt = turn
		return game.Callout{}
	}

	playable := playableCards(gameState)
	if len(playable) == 0 {
		return game.Draw{}
	}
	return playAction(p.Play(playable, gameState), p.PickColor(gameState))
}

func opponentOnLastCard(gameState game.State) bool {
	for _, playerID := range gameState.PlayerSequence {
		if playerID != gameState.PlayerID && gameState.PlayerHandCounts[playerID] == 1 {
			return true
		}
	}
	return false
}

// PickColor names the color held most often. Wild cards count for every
// color and ties go to the first color in color.All.
func (p *goodPlayer) PickColor(gameState game.State) color.Color {
	if len(gameState.CurrentPlayerHand) == 0 {
		return color.Blue
	}

	colorCounts := make(map[color.Color]int)
	for _, handCard := range gameState.CurrentPlayerHand {
		if handCard.Color() == nil {
			for _, c := range color.All {
				colorCounts[c]++
			}
		} else {
			colorCounts[handCard.Color()]++
		}
	}

	var (
		mostFrequentColor       color.Color
		mostFrequentColorAmount int
	)
	for _, availableColor := range color.All {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}

	return mostFrequentColor
}

// Play picks the card that leaves the most of the hand playable on top of it.
func (p *goodPlayer) Play(playableCards []card.Card, gameState game.State) card.Card {
	mostDiscardableCardIndex := 0
	maxSpareCards := 0

	for cardIndex, playableCard := range playableCards {
		onTop := playableCard
		if playableCard.Color() == nil {
			onTop = card.NewColoredCard(playableCard, p.PickColor(gameState))
		}
		spareCards := 0
		for _, handCard := range gameState.CurrentPlayerHand {
			if game.Playable(handCard, onTop) {
				spareCards++
			}
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return playableCards[mostDiscardableCardIndex]
}
