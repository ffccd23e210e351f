// Package action lists the side effects a card triggers when it is played.
package action

type Action interface {
	isAction()
}

// DrawCardsAction makes the player due next draw Amount cards.
type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

func (DrawCardsAction) isAction() {}

// ReverseTurnsAction flips the direction of play.
type ReverseTurnsAction struct{}

func NewReverseTurnsAction() Action {
	return ReverseTurnsAction{}
}

func (ReverseTurnsAction) isAction() {}

// SkipTurnAction passes over the player due next.
type SkipTurnAction struct{}

func NewSkipTurnAction() Action {
	return SkipTurnAction{}
}

func (SkipTurnAction) isAction() {}

// PickColorAction means the card takes a color chosen by whoever played it.
type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}

func (PickColorAction) isAction() {}
