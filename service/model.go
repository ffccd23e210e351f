package service

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

type Option func(*Match)

// WithTurnTimeout sets how long the current player may take before a Draw is
// played for them. Zero disables the timer.
func WithTurnTimeout(timeout time.Duration) Option {
	return func(m *Match) {
		m.turnTimeout = timeout
	}
}

// WithDeck deals the match from deck as it is stacked instead of a shuffled
// standard deck.
func WithDeck(deck *game.Deck) Option {
	return func(m *Match) {
		m.deck = deck
	}
}

func WithGameOptions(options ...game.Option) Option {
	return func(m *Match) {
		m.gameOptions = append(m.gameOptions, options...)
	}
}

// Match serializes every access to one game.
type Match struct {
	sync.Mutex

	ID         string
	CreatedAt  time.Time
	FinishedAt time.Time

	game        *game.Game
	gameOptions []game.Option
	deck        *game.Deck
	turns       int
	finished    bool
	turnTimeout time.Duration
	timer       *time.Timer
	// timerTurn identifies the turn a running timer was armed for.
	timerTurn int
}

type Standing struct {
	PlayerID int64
	Name     string
	Place    int
	Cards    int
}

// Play applies action on behalf of playerID.
func (m *Match) Play(playerID int64, action game.TurnAction) (game.Result, bool, error) {
	m.Lock()
	defer m.Unlock()
	if m.finished {
		return game.Result{}, false, consts.ErrorsMatchFinished
	}
	if m.game.CurrentTurnPlayerID() != playerID {
		return game.Result{}, false, consts.ErrorsNotYourTurn
	}
	return m.playTurn(action)
}

func (m *Match) playTurn(action game.TurnAction) (game.Result, bool, error) {
	player := m.game.CurrentTurnPlayerID()
	result, won, err := m.game.PlayTurn(action)
	if err != nil {
		return result, won, err
	}
	m.turns++
	if won {
		log.Infof("match %s: player %d finished in place %d\n", m.ID, player, len(m.game.Winners()))
	}
	if m.game.ActivePlayers() <= 1 {
		m.finish()
	} else {
		m.armTimer()
	}
	return result, won, nil
}

func (m *Match) finish() {
	m.finished = true
	m.FinishedAt = time.Now()
	m.stopTimer()
	log.Infof("match %s finished after %d turns\n", m.ID, m.turns)
}

func (m *Match) armTimer() {
	m.stopTimer()
	if m.turnTimeout <= 0 {
		return
	}
	turn := m.turns
	m.timerTurn = turn
	m.timer = time.AfterFunc(m.turnTimeout, func() {
		m.expire(turn)
	})
}

func (m *Match) stopTimer() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// expire draws for a player who let their turn run out. Timers armed for an
// earlier turn are ignored.
func (m *Match) expire(turn int) {
	m.Lock()
	defer m.Unlock()
	if m.finished || m.timer == nil || m.timerTurn != turn {
		return
	}
	player := m.game.CurrentTurnPlayerID()
	log.Infof("match %s: player %d timed out, drawing\n", m.ID, player)
	if _, _, err := m.playTurn(game.Draw{}); err != nil {
		log.Errorf("match %s: forced draw for player %d: %v\n", m.ID, player, err)
		if errors.Is(err, consts.ErrorsDeckExhausted) {
			m.finish()
		}
	}
}

// State is the view playerID has of the match. Players who already finished
// get ErrorsPlayerNotFound.
func (m *Match) State(playerID int64) (game.State, error) {
	m.Lock()
	defer m.Unlock()
	return m.game.ExtractState(playerID)
}

func (m *Match) CurrentTurnPlayerID() int64 {
	m.Lock()
	defer m.Unlock()
	return m.game.CurrentTurnPlayerID()
}

func (m *Match) Finished() bool {
	m.Lock()
	defer m.Unlock()
	return m.finished
}

func (m *Match) Turns() int {
	m.Lock()
	defer m.Unlock()
	return m.turns
}

// Standings ranks winners by finishing order, then everyone still holding
// cards by hand size.
func (m *Match) Standings() []Standing {
	m.Lock()
	defer m.Unlock()

	standings := make([]Standing, 0, len(m.game.Winners())+m.game.ActivePlayers())
	for _, winner := range m.game.Winners() {
		standings = append(standings, Standing{
			PlayerID: winner.ID(),
			Name:     winner.Name(),
			Place:    len(standings) + 1,
		})
	}
	remaining := make([]Standing, 0, m.game.ActivePlayers())
	for _, id := range m.game.TurnOrder() {
		player, _ := m.game.Player(id)
		remaining = append(remaining, Standing{PlayerID: id, Name: player.Name(), Cards: player.CardsCount()})
	}
	sort.SliceStable(remaining, func(i, j int) bool {
		return remaining[i].Cards < remaining[j].Cards
	})
	for _, standing := range remaining {
		standing.Place = len(standings) + 1
		standings = append(standings, standing)
	}
	return standings
}

func (s Standing) String() string {
	return fmt.Sprintf("%d. %s (%d card(s))", s.Place, s.Name, s.Cards)
}
