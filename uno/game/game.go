package game

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

// PlayerInfo seats a player. Seats are taken in slice order.
type PlayerInfo struct {
	ID   int64
	Name string
}

type Option func(*Game)

// WithListener subscribes listener to the game's events before the opening
// card is revealed.
func WithListener(listener interface{}) Option {
	return func(g *Game) {
		g.events.AddListener(listener)
	}
}

// WithUnoProtection exempts players who called Uno from being called out.
func WithUnoProtection() Option {
	return func(g *Game) {
		g.unoProtection = true
	}
}

// Game is one match. It is not safe for concurrent use: callers serialize
// PlayTurn per match.
type Game struct {
	deck          *Deck
	pile          *Pile
	players       map[int64]*Player
	order         *Cycler
	winners       []*Player
	events        *event.Bus
	unoProtection bool
}

// New seats the named players in order under random unique ids.
func New(playerNames []string, options ...Option) (*Game, error) {
	players, err := AssignIDs(playerNames)
	if err != nil {
		return nil, err
	}
	return NewWithIDs(players, options...)
}

// AssignIDs gives each named player a random unique id, keeping their order.
func AssignIDs(playerNames []string) ([]PlayerInfo, error) {
	if err := validatePlayerCount(len(playerNames)); err != nil {
		return nil, err
	}
	taken := make(map[int64]bool, len(playerNames))
	players := make([]PlayerInfo, 0, len(playerNames))
	for _, name := range playerNames {
		id := rand.Int63()
		for taken[id] {
			id = rand.Int63()
		}
		taken[id] = true
		players = append(players, PlayerInfo{ID: id, Name: name})
	}
	return players, nil
}

func NewWithIDs(players []PlayerInfo, options ...Option) (*Game, error) {
	if err := validatePlayers(players); err != nil {
		return nil, err
	}
	deck := NewDeck()
	deck.Shuffle()
	return NewWithDeck(players, deck, options...)
}

// NewWithDeck deals from deck as it is stacked: seven cards to each seat in
// turn, then the first colored card face up.
func NewWithDeck(players []PlayerInfo, deck *Deck, options ...Option) (*Game, error) {
	if err := validatePlayers(players); err != nil {
		return nil, err
	}
	if needed := len(players)*consts.StartingHandSize + 1; deck.Size() < needed {
		return nil, fmt.Errorf("deal %d cards from %d: %w", needed, deck.Size(), consts.ErrorsDeckExhausted)
	}

	g := &Game{
		deck:    deck,
		pile:    NewPile(),
		players: make(map[int64]*Player, len(players)),
		winners: make([]*Player, 0, len(players)),
		events:  event.NewBus(),
	}
	for _, option := range options {
		option(g)
	}

	seats := make([]int64, 0, len(players))
	for _, info := range players {
		cards, err := deck.Draw(consts.StartingHandSize)
		if err != nil {
			return nil, err
		}
		g.players[info.ID] = NewPlayer(info.ID, info.Name, cards)
		seats = append(seats, info.ID)
	}
	g.order = NewCycler(seats)

	firstCard, err := deck.DrawColored()
	if err != nil {
		return nil, err
	}
	g.pile.Add(firstCard)
	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{Card: firstCard})
	return g, nil
}

func validatePlayerCount(count int) error {
	if count < consts.MinPlayers {
		return consts.ErrorsNotEnoughPlayers
	}
	if count > consts.MaxPlayers {
		return consts.ErrorsTooManyPlayers
	}
	return nil
}

func validatePlayers(players []PlayerInfo) error {
	if err := validatePlayerCount(len(players)); err != nil {
		return err
	}
	seen := make(map[int64]bool, len(players))
	for _, info := range players {
		if seen[info.ID] {
			return fmt.Errorf("player %d: %w", info.ID, consts.ErrorsDuplicatePlayer)
		}
		seen[info.ID] = true
	}
	return nil
}

// PlayTurn applies action for the current player and reports whether that
// player emptied their hand with it. An action is either applied completely
// or not at all: a returned error or ResultCardNotInHand leaves the game as it
// was.
func (g *Game) PlayTurn(turnAction TurnAction) (Result, bool, error) {
	if g.order.Len() == 0 {
		return Result{}, false, consts.ErrorsNoActivePlayers
	}
	player := g.players[g.order.Current()]

	var (
		result Result
		err    error
	)
	switch turnAction := turnAction.(type) {
	case Play:
		result, err = g.play(player, turnAction.Action)
	case Draw:
		if err = g.drawCards(player, consts.SelfDrawAmount, event.ReasonSelfDraw); err == nil {
			result = Result{Kind: ResultSelfDraw}
		}
	case Callout:
		result, err = g.callout(player)
	case Uno:
		result, err = g.uno(player)
	default:
		err = fmt.Errorf("unknown turn action %T", turnAction)
	}
	if err != nil {
		return Result{}, false, err
	}

	won := player.hand.Empty()
	if won {
		g.retire(player)
	}
	return result, won, nil
}

func (g *Game) play(player *Player, playAction PlayAction) (Result, error) {
	var handCard, faceUpCard card.Card
	var pickedColor color.Color
	switch playAction := playAction.(type) {
	case PlayColoredCard:
		if !card.Colored(playAction.Card) || card.Wild(playAction.Card) {
			return Result{Kind: ResultCardNotInHand}, nil
		}
		handCard, faceUpCard = playAction.Card, playAction.Card
	case PlayWild:
		handCard, pickedColor = card.NewWildCard(), playAction.Color
	case PlayWildDraw:
		handCard, pickedColor = card.NewWildDrawFourCard(), playAction.Color
	default:
		return Result{}, fmt.Errorf("unknown play action %T", playAction)
	}
	if faceUpCard == nil {
		if pickedColor == nil {
			return Result{}, consts.ErrorsColorRequired
		}
		faceUpCard = card.NewColoredCard(handCard, pickedColor)
	}

	index, found := player.CardIndex(handCard)
	if !found {
		return Result{Kind: ResultCardNotInHand}, nil
	}
	if needed := drawAmount(handCard); needed > g.deck.Size() {
		return Result{}, fmt.Errorf("%s needs %d cards, %d left: %w", handCard, needed, g.deck.Size(), consts.ErrorsDeckExhausted)
	}
	if _, err := player.RemoveCard(index); err != nil {
		return Result{}, err
	}

	g.pile.Add(faceUpCard)
	g.events.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerID:   player.ID(),
		PlayerName: player.Name(),
		Card:       faceUpCard,
	})

	victim := g.players[g.order.Peek(1)]
	steps := 1
	for _, cardAction := range handCard.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			if err := g.drawCards(victim, cardAction.Amount(), event.ReasonDrawCard); err != nil {
				return Result{}, err
			}
		case action.SkipTurnAction:
			steps++
			g.events.TurnSkipped.Emit(event.TurnSkippedPayload{
				PlayerID:   victim.ID(),
				PlayerName: victim.Name(),
			})
		case action.ReverseTurnsAction:
			g.order.Reverse()
			steps = 0
			g.events.TurnReversed.Emit(event.TurnReversedPayload{
				PlayerID:   player.ID(),
				PlayerName: player.Name(),
			})
		case action.PickColorAction:
			g.events.ColorPicked.Emit(event.ColorPickedPayload{
				PlayerID:   player.ID(),
				PlayerName: player.Name(),
				Color:      pickedColor,
			})
		}
	}
	g.order.Advance(steps)

	return Result{Kind: resultKind(handCard)}, nil
}

func (g *Game) callout(player *Player) (Result, error) {
	calledOut := make([]int64, 0)
	for _, id := range g.order.Elements() {
		opponent := g.players[id]
		if id == player.ID() || opponent.CardsCount() != 1 {
			continue
		}
		if g.unoProtection && opponent.UnoPerformed() {
			continue
		}
		calledOut = append(calledOut, id)
	}

	if len(calledOut) == 0 {
		if err := g.drawCards(player, consts.PenaltyAmount, event.ReasonFailedCallout); err != nil {
			return Result{}, err
		}
		return Result{Kind: ResultCalloutFailed, CalledOut: calledOut}, nil
	}

	if needed := len(calledOut) * consts.PenaltyAmount; needed > g.deck.Size() {
		return Result{}, fmt.Errorf("callout needs %d cards, %d left: %w", needed, g.deck.Size(), consts.ErrorsDeckExhausted)
	}
	for _, id := range calledOut {
		if err := g.drawCards(g.players[id], consts.PenaltyAmount, event.ReasonCalledOut); err != nil {
			return Result{}, err
		}
	}
	return Result{Kind: ResultCalledOut, CalledOut: calledOut}, nil
}

func (g *Game) uno(player *Player) (Result, error) {
	if player.CardsCount() == 1 {
		player.Uno()
		return Result{Kind: ResultUnoSuccessful}, nil
	}
	if err := g.drawCards(player, consts.PenaltyAmount, event.ReasonFailedUno); err != nil {
		return Result{}, err
	}
	return Result{Kind: ResultUnoFailed}, nil
}

func (g *Game) drawCards(player *Player, amount int, reason event.DrawReason) error {
	cards, err := g.deck.Draw(amount)
	if err != nil {
		return err
	}
	player.AddCards(cards)
	g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerID:   player.ID(),
		PlayerName: player.Name(),
		Cards:      cards,
		Reason:     reason,
	})
	return nil
}

func (g *Game) retire(player *Player) {
	g.order.Remove(player.ID())
	delete(g.players, player.ID())
	g.winners = append(g.winners, player)
	g.events.PlayerWon.Emit(event.PlayerWonPayload{
		PlayerID:   player.ID(),
		PlayerName: player.Name(),
		Place:      len(g.winners),
	})
}

func drawAmount(c card.Card) int {
	amount := 0
	for _, cardAction := range c.Actions() {
		if drawCards, ok := cardAction.(action.DrawCardsAction); ok {
			amount += drawCards.Amount()
		}
	}
	return amount
}

func resultKind(c card.Card) ResultKind {
	switch c.(type) {
	case card.SkipCard:
		return ResultSkip
	case card.ReverseCard:
		return ResultReverse
	case card.DrawTwoCard:
		return ResultDraw
	case card.WildCard:
		return ResultWild
	case card.WildDrawFourCard:
		return ResultWildDraw
	default:
		return ResultNeutral
	}
}

// PlayerIDs lists the active players in seating order.
func (g *Game) PlayerIDs() []int64 {
	ids := make([]int64, 0, g.order.Len())
	g.order.ForEach(func(id int64) {
		ids = append(ids, id)
	})
	return ids
}

// Player returns an active player. Winners are only reachable through
// Winners.
func (g *Game) Player(id int64) (*Player, bool) {
	player, ok := g.players[id]
	return player, ok
}

func (g *Game) ActivePlayers() int {
	return g.order.Len()
}

// CurrentTurnPlayerID is only meaningful while ActivePlayers is non-zero.
func (g *Game) CurrentTurnPlayerID() int64 {
	return g.order.Current()
}

func (g *Game) NextTurnPlayerID() int64 {
	return g.order.Peek(1)
}

// TurnOrder lists the active players starting with the current one, in the
// direction of play.
func (g *Game) TurnOrder() []int64 {
	return g.order.Elements()
}

func (g *Game) Reversed() bool {
	return g.order.Reversed()
}

// LastPlayedCard always has a color: wild cards are returned as the
// ColoredCard they were played as.
func (g *Game) LastPlayedCard() card.Card {
	return g.pile.Top()
}

func (g *Game) PlayedCards() []card.Card {
	return g.pile.Cards()
}

func (g *Game) DeckSize() int {
	return g.deck.Size()
}

// Winners lists the players who emptied their hands, first out first.
func (g *Game) Winners() []*Player {
	winners := make([]*Player, len(g.winners))
	copy(winners, g.winners)
	return winners
}

func (g *Game) Events() *event.Bus {
	return g.events
}
