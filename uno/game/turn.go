package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// PlayAction names the card a player puts face up. Wild plays carry the color
// the player picked.
type PlayAction interface {
	playAction()
}

type PlayColoredCard struct {
	Card card.Card
}

type PlayWild struct {
	Color color.Color
}

type PlayWildDraw struct {
	Color color.Color
}

func (PlayColoredCard) playAction() {}
func (PlayWild) playAction()        {}
func (PlayWildDraw) playAction()    {}

// TurnAction is everything the current player may do on their turn.
type TurnAction interface {
	turnAction()
}

type Play struct {
	Action PlayAction
}

// Draw takes cards from the deck without ending the turn.
type Draw struct{}

// Callout accuses every opponent holding a single card.
type Callout struct{}

// Uno declares a single remaining card.
type Uno struct{}

func (Play) turnAction()    {}
func (Draw) turnAction()    {}
func (Callout) turnAction() {}
func (Uno) turnAction()     {}

func PlayCard(c card.Card) TurnAction {
	return Play{Action: PlayColoredCard{Card: c}}
}

func PlayWildCard(c color.Color) TurnAction {
	return Play{Action: PlayWild{Color: c}}
}

func PlayWildDrawCard(c color.Color) TurnAction {
	return Play{Action: PlayWildDraw{Color: c}}
}

type ResultKind int

const (
	ResultNeutral ResultKind = iota
	ResultCardNotInHand
	ResultSkip
	ResultReverse
	ResultSelfDraw
	ResultDraw
	ResultWild
	ResultWildDraw
	ResultCalloutFailed
	ResultCalledOut
	ResultUnoFailed
	ResultUnoSuccessful
)

var resultNames = map[ResultKind]string{
	ResultNeutral:       "Neutral",
	ResultCardNotInHand: "CardNotInHand",
	ResultSkip:          "Skip",
	ResultReverse:       "Reverse",
	ResultSelfDraw:      "SelfDraw",
	ResultDraw:          "Draw",
	ResultWild:          "Wild",
	ResultWildDraw:      "WildDraw",
	ResultCalloutFailed: "CalloutFailed",
	ResultCalledOut:     "CalledOut",
	ResultUnoFailed:     "UnoFailed",
	ResultUnoSuccessful: "UnoSuccessful",
}

func (k ResultKind) String() string {
	if name, ok := resultNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Result is the outcome of one turn action. CalledOut is only set for
// ResultCalledOut and lists the penalised players in turn order.
type Result struct {
	Kind      ResultKind
	CalledOut []int64
}

func (r Result) String() string {
	return r.Kind.String()
}
