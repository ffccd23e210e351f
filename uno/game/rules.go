package game

import (
	"github.com/ratel-online/uno/uno/card"
)

// Playable reports whether candidateCard matches lastPlayedCard by color,
// number or action type. Game.PlayTurn does not enforce it; bots and front
// ends use it to offer sensible choices.
func Playable(candidateCard card.Card, lastPlayedCard card.Card) bool {
	if lastPlayedCard == nil || card.Wild(candidateCard) {
		return true
	}
	if candidateCard.Color() == lastPlayedCard.Color() {
		return true
	}

	switch candidateCard := candidateCard.(type) {
	case card.DrawTwoCard:
		_, isDrawTwoCard := lastPlayedCard.(card.DrawTwoCard)
		return isDrawTwoCard
	case card.ReverseCard:
		_, isReverseCard := lastPlayedCard.(card.ReverseCard)
		return isReverseCard
	case card.SkipCard:
		_, isSkipCard := lastPlayedCard.(card.SkipCard)
		return isSkipCard
	case card.NumberCard:
		lastPlayedCard, isNumberCard := lastPlayedCard.(card.NumberCard)
		return isNumberCard && lastPlayedCard.Number() == candidateCard.Number()
	default:
		return false
	}
}
