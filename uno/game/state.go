package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

// State is what one player may see of a game: their own hand and everyone's
// hand size.
type State struct {
	PlayerID          int64
	CurrentPlayerID   int64
	LastPlayedCard    card.Card
	PlayedCards       []card.Card
	CurrentPlayerHand []card.Card
	PlayerSequence    []int64
	PlayerNames       map[int64]string
	PlayerHandCounts  map[int64]int
	DeckSize          int
	Reversed          bool
}

// ExtractState builds the view of playerID. PlayerSequence starts with the
// player whose turn it is.
func (g *Game) ExtractState(playerID int64) (State, error) {
	player, ok := g.players[playerID]
	if !ok {
		return State{}, fmt.Errorf("player %d: %w", playerID, consts.ErrorsPlayerNotFound)
	}

	playerSequence := g.order.Elements()
	playerNames := make(map[int64]string, len(playerSequence))
	playerHandCounts := make(map[int64]int, len(playerSequence))
	for _, id := range playerSequence {
		playerNames[id] = g.players[id].Name()
		playerHandCounts[id] = g.players[id].CardsCount()
	}

	return State{
		PlayerID:          playerID,
		CurrentPlayerID:   g.order.Current(),
		LastPlayedCard:    g.pile.Top(),
		PlayedCards:       g.pile.Cards(),
		CurrentPlayerHand: player.Cards(),
		PlayerSequence:    playerSequence,
		PlayerNames:       playerNames,
		PlayerHandCounts:  playerHandCounts,
		DeckSize:          g.deck.Size(),
		Reversed:          g.order.Reversed(),
	}, nil
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s", s.LastPlayedCard))

	var playerStatuses []string
	for _, playerID := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", s.PlayerNames[playerID], s.PlayerHandCounts[playerID])
		playerStatuses = append(playerStatuses, playerStatus)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s", strings.Join(playerStatuses, ", ")))

	lines = append(lines, fmt.Sprintf("Your hand: %s", card.PaintAll(s.CurrentPlayerHand)))

	return strings.Join(lines, "\n")
}

type stateView struct {
	PlayerID       int64            `json:"playerId"`
	CurrentPlayer  int64            `json:"currentPlayer"`
	LastPlayedCard string           `json:"lastPlayedCard"`
	Hand           []string         `json:"hand"`
	TurnOrder      []int64          `json:"turnOrder"`
	HandCounts     map[int64]int    `json:"handCounts"`
	Names          map[int64]string `json:"names"`
	DeckSize       int              `json:"deckSize"`
	Reversed       bool             `json:"reversed"`
}

// JSON encodes the state with cards in their text form.
func (s State) JSON() []byte {
	hand := make([]string, 0, len(s.CurrentPlayerHand))
	for _, c := range s.CurrentPlayerHand {
		hand = append(hand, c.String())
	}
	lastPlayedCard := ""
	if s.LastPlayedCard != nil {
		lastPlayedCard = s.LastPlayedCard.String()
	}
	return json.Marshal(stateView{
		PlayerID:       s.PlayerID,
		CurrentPlayer:  s.CurrentPlayerID,
		LastPlayedCard: lastPlayedCard,
		Hand:           hand,
		TurnOrder:      s.PlayerSequence,
		HandCounts:     s.PlayerHandCounts,
		Names:          s.PlayerNames,
		DeckSize:       s.DeckSize,
		Reversed:       s.Reversed,
	})
}
