package service

import (
	"sort"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

var matches = hashmap.New()

func init() {
	async.Async(func() {
		for {
			time.Sleep(1 * time.Minute)
			matches.Foreach(func(e *hashmap.Entry) {
				matchCancel(e.Value().(*Match), consts.MatchRetention)
			})
		}
	})
}

// CreateMatch seats the named players under random ids and registers the
// match under a fresh match id.
func CreateMatch(playerNames []string, options ...Option) (*Match, error) {
	players, err := game.AssignIDs(playerNames)
	if err != nil {
		return nil, err
	}
	return CreateMatchWithIDs(players, options...)
}

func CreateMatchWithIDs(players []game.PlayerInfo, options ...Option) (*Match, error) {
	m := &Match{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now(),
		turnTimeout: consts.PlayTimeout,
	}
	for _, option := range options {
		option(m)
	}
	var (
		g   *game.Game
		err error
	)
	if m.deck != nil {
		g, err = game.NewWithDeck(players, m.deck, m.gameOptions...)
	} else {
		g, err = game.NewWithIDs(players, m.gameOptions...)
	}
	if err != nil {
		return nil, err
	}
	m.game = g

	m.Lock()
	m.armTimer()
	m.Unlock()

	matches.Set(m.ID, m)
	log.Infof("match %s created with %d players\n", m.ID, g.ActivePlayers())
	return m, nil
}

func GetMatch(matchID string) *Match {
	return getMatch(matchID)
}

func getMatch(matchID string) *Match {
	if v, ok := matches.Get(matchID); ok {
		return v.(*Match)
	}
	return nil
}

// GetMatches lists registered matches, oldest first.
func GetMatches() []*Match {
	list := make([]*Match, 0)
	matches.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Match))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list
}

// RemoveMatch stops the match's turn timer and forgets it.
func RemoveMatch(matchID string) bool {
	m := getMatch(matchID)
	if m == nil {
		return false
	}
	m.Lock()
	m.stopTimer()
	m.Unlock()
	matches.Del(matchID)
	return true
}

func matchCancel(m *Match, retention time.Duration) {
	m.Lock()
	expired := m.finished && time.Since(m.FinishedAt) >= retention
	m.Unlock()
	if expired {
		log.Infof("match %s finished at %s, removed.\n", m.ID, m.FinishedAt.Format(time.RFC3339))
		RemoveMatch(m.ID)
	}
}
