package player_test

import (
	"errors"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/player"
	"github.com/stretchr/testify/require"
)

func state(lastPlayedCard card.Card, hand ...card.Card) game.State {
	return game.State{
		PlayerID:          1,
		CurrentPlayerID:   1,
		LastPlayedCard:    lastPlayedCard,
		PlayedCards:       []card.Card{lastPlayedCard},
		CurrentPlayerHand: hand,
		PlayerSequence:    []int64{1, 2},
		PlayerNames:       map[int64]string{1: "Annie", 2: "Braum"},
		PlayerHandCounts:  map[int64]int{1: len(hand), 2: 5},
	}
}

func TestNaivePlayer(t *testing.T) {
	bot := player.NewNaivePlayer("Annie")
	require.Equal(t, "Annie", bot.Name())

	t.Run("plays_first_playable_card", func(t *testing.T) {
		s := state(card.NewNumberCard(color.Red, 3),
			card.NewNumberCard(color.Blue, 5),
			card.NewNumberCard(color.Blue, 3),
			card.NewSkipCard(color.Red),
		)
		require.Equal(t, game.PlayCard(card.NewNumberCard(color.Blue, 3)), bot.Decide(s))
	})

	t.Run("draws_without_playable_card", func(t *testing.T) {
		s := state(card.NewNumberCard(color.Red, 3), card.NewNumberCard(color.Blue, 5))
		require.Equal(t, game.Draw{}, bot.Decide(s))
	})

	t.Run("names_a_color_for_wild_cards", func(t *testing.T) {
		s := state(card.NewNumberCard(color.Red, 3), card.NewWildDrawFourCard())
		action, ok := bot.Decide(s).(game.Play)
		require.True(t, ok)
		wildDraw, ok := action.Action.(game.PlayWildDraw)
		require.True(t, ok)
		require.Contains(t, color.All, wildDraw.Color)
	})
}

func TestGoodPlayer(t *testing.T) {
	t.Run("picks_most_frequent_color", func(t *testing.T) {
		bot := player.NewGoodPlayer("Annie")
		s := state(card.NewNumberCard(color.Red, 3),
			card.NewWildCard(),
			card.NewNumberCard(color.Green, 1),
			card.NewNumberCard(color.Green, 2),
			card.NewNumberCard(color.Yellow, 3),
		)
		require.Equal(t, game.PlayWildCard(color.Green), bot.Decide(s))
	})

	t.Run("keeps_options_open", func(t *testing.T) {
		bot := player.NewGoodPlayer("Annie")
		s := state(card.NewNumberCard(color.Red, 3),
			card.NewNumberCard(color.Red, 7),
			card.NewNumberCard(color.Blue, 3),
			card.NewNumberCard(color.Blue, 8),
			card.NewNumberCard(color.Blue, 9),
		)
		require.Equal(t, game.PlayCard(card.NewNumberCard(color.Blue, 3)), bot.Decide(s))
	})

	t.Run("calls_uno_once_then_plays", func(t *testing.T) {
		bot := player.NewGoodPlayer("Annie")
		s := state(card.NewNumberCard(color.Red, 3), card.NewNumberCard(color.Red, 5))
		require.Equal(t, game.Uno{}, bot.Decide(s))
		require.Equal(t, game.PlayCard(card.NewNumberCard(color.Red, 5)), bot.Decide(s))
	})

	t.Run("calls_out_once_per_turn", func(t *testing.T) {
		bot := player.NewGoodPlayer("Annie")
		s := state(card.NewNumberCard(color.Red, 3), card.NewNumberCard(color.Blue, 5), card.NewNumberCard(color.Green, 5))
		s.PlayerHandCounts[2] = 1
		require.Equal(t, game.Callout{}, bot.Decide(s))
		require.Equal(t, game.Draw{}, bot.Decide(s))

		s.PlayedCards = append(s.PlayedCards, card.NewNumberCard(color.Red, 4))
		require.Equal(t, game.Callout{}, bot.Decide(s))
	})
}

func TestNew(t *testing.T) {
	bot, err := player.New("GOOD", "Annie")
	require.NoError(t, err)
	require.Equal(t, "Annie", bot.Name())

	_, err = player.New("random", "Annie")
	require.True(t, errors.Is(err, consts.ErrorsUnknownStrategy))
}

func TestCreateBots(t *testing.T) {
	bots, err := player.CreateBots(10, player.StrategyNaive)
	require.NoError(t, err)
	require.Len(t, bots, 10)

	names := player.Names(bots)
	seen := make(map[string]bool)
	for _, name := range names {
		require.False(t, seen[name], name)
		seen[name] = true
	}

	_, err = player.CreateBots(27, player.StrategyNaive)
	require.Equal(t, consts.ErrorsTooManyPlayers, err)

	for _, amount := range []int{-1, 0, 1} {
		bots, err := player.CreateBots(amount, player.StrategyNaive)
		require.Equal(t, consts.ErrorsNotEnoughPlayers, err)
		require.Nil(t, bots)
	}
}

func TestSelfPlay(t *testing.T) {
	for _, strategy := range []string{player.StrategyNaive, player.StrategyGood} {
		t.Run(strategy, func(t *testing.T) {
			bots, err := player.CreateBots(4, strategy)
			require.NoError(t, err)
			g, err := game.New(player.Names(bots))
			require.NoError(t, err)

			byID := make(map[int64]player.Bot)
			for i, id := range g.PlayerIDs() {
				byID[id] = bots[i]
			}

			for g.ActivePlayers() > 1 {
				current := g.CurrentTurnPlayerID()
				s, err := g.ExtractState(current)
				require.NoError(t, err)

				result, _, err := g.PlayTurn(byID[current].Decide(s))
				if errors.Is(err, consts.ErrorsDeckExhausted) {
					return
				}
				require.NoError(t, err)
				require.NotEqual(t, game.ResultCardNotInHand, result.Kind)
			}
			require.Len(t, g.Winners(), 3)
		})
	}
}
