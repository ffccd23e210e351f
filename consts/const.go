package consts

import (
	"time"
)

const (
	MinPlayers = 2
	MaxPlayers = 10

	StartingHandSize = 7

	DrawTwoAmount  = 2
	WildDrawAmount = 4
	SelfDrawAmount = 2
	PenaltyAmount  = 2

	PlayTimeout    = 40 * time.Second
	MatchRetention = 10 * time.Minute
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsNotEnoughPlayers = NewErr(1, true, "Not enough players. ")
	ErrorsTooManyPlayers   = NewErr(2, true, "Too many players. ")
	ErrorsDuplicatePlayer  = NewErr(3, true, "Duplicate player id. ")
	ErrorsDeckExhausted    = NewErr(4, false, "Not enough cards left in the deck. ")
	ErrorsNoColoredCard    = NewErr(5, false, "No colored card left in the deck. ")
	ErrorsInvalidCardIndex = NewErr(6, false, "Card index out of range. ")
	ErrorsPlayerNotFound   = NewErr(7, false, "Player not found. ")
	ErrorsMatchNotFound    = NewErr(8, true, "Match not found. ")
	ErrorsMatchFinished    = NewErr(9, true, "Match already finished. ")
	ErrorsNotYourTurn      = NewErr(10, false, "It is not your turn. ")
	ErrorsNoActivePlayers  = NewErr(11, true, "No active players left. ")
	ErrorsColorRequired    = NewErr(12, false, "A wild card needs a color. ")
	ErrorsUnknownStrategy  = NewErr(13, true, "Unknown bot strategy. ")
)
