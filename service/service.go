package service

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

// Play routes action to the match, rejecting players whose turn it is not.
func Play(matchID string, playerID int64, action game.TurnAction) (game.Result, bool, error) {
	m := getMatch(matchID)
	if m == nil {
		return game.Result{}, false, consts.ErrorsMatchNotFound
	}
	return m.Play(playerID, action)
}

func State(matchID string, playerID int64) (game.State, error) {
	m := getMatch(matchID)
	if m == nil {
		return game.State{}, consts.ErrorsMatchNotFound
	}
	return m.State(playerID)
}

func Standings(matchID string) ([]Standing, error) {
	m := getMatch(matchID)
	if m == nil {
		return nil, consts.ErrorsMatchNotFound
	}
	return m.Standings(), nil
}
