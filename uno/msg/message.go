package msg

import (
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color)
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, card)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) CardNotInHand(playerName string) string {
	return Sprintfln("Cheat detected! That card is not in %s's hand!", playerName)
}

func (m MessageWriter) PlayersCalledOut(playerName string, calledOut []string) string {
	return Sprintfln("%s called out %s!", playerName, strings.Join(calledOut, ", "))
}

func (m MessageWriter) CalloutFailed(playerName string) string {
	return Sprintfln("%s called out nobody and draws a penalty!", playerName)
}

func (m MessageWriter) UnoSuccessful(playerName string) string {
	return Sprintfln("%s shouts UNO!", playerName)
}

func (m MessageWriter) UnoFailed(playerName string) string {
	return Sprintfln("%s shouted UNO too early and draws a penalty!", playerName)
}

func (m MessageWriter) WinnerFound(playerName string, place int) string {
	if place == 1 {
		return Sprintfln("%s wins!", playerName)
	}
	return Sprintfln("%s finishes in place %d!", playerName, place)
}

// TurnResult describes result from the point of view of a table. names maps
// player ids to display names and is only consulted for called out players.
// Results already narrated by card events yield an empty string.
func (m MessageWriter) TurnResult(playerName string, result game.Result, names map[int64]string) string {
	switch result.Kind {
	case game.ResultCardNotInHand:
		return m.CardNotInHand(playerName)
	case game.ResultCalledOut:
		calledOut := make([]string, 0, len(result.CalledOut))
		for _, id := range result.CalledOut {
			calledOut = append(calledOut, names[id])
		}
		return m.PlayersCalledOut(playerName, calledOut)
	case game.ResultCalloutFailed:
		return m.CalloutFailed(playerName)
	case game.ResultUnoSuccessful:
		return m.UnoSuccessful(playerName)
	case game.ResultUnoFailed:
		return m.UnoFailed(playerName)
	}
	return ""
}
