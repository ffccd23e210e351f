package game_test

import (
	"errors"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestAddCards(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	})
	hand.AddCards([]card.Card{card.NewSkipCard(color.Red)})
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
		card.NewSkipCard(color.Red),
	}, hand.Cards())
}

func TestEmpty(t *testing.T) {
	hand := game.NewHand()
	require.True(t, hand.Empty())
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 7),
		card.NewWildCard(),
	})
	require.False(t, hand.Empty())
}

func TestIndex(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.NewWildCard(),
		card.NewNumberCard(color.Red, 6),
		card.NewNumberCard(color.Red, 6),
	})
	require.Equal(t, 0, hand.Index(card.NewWildCard()))
	require.Equal(t, 1, hand.Index(card.NewNumberCard(color.Red, 6)))
	require.Equal(t, -1, hand.Index(card.NewNumberCard(color.Green, 6)))
}

func TestPlayableCards(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 8),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
		card.NewDrawTwoCard(color.Blue),
	})
	lastPlayedCard := card.NewNumberCard(color.Blue, 7)
	require.Equal(t, []card.Card{
		card.NewNumberCard(color.Blue, 5),
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewDrawTwoCard(color.Blue),
	}, hand.PlayableCards(lastPlayedCard))
}

func TestRemoveAt(t *testing.T) {
	t.Run("removes_the_card_and_keeps_the_order", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{
			card.NewWildCard(),
			card.NewReverseCard(color.Yellow),
			card.NewDrawTwoCard(color.Blue),
			card.NewNumberCard(color.Red, 1),
		})

		removed, err := hand.RemoveAt(1)
		require.NoError(t, err)
		require.Equal(t, card.NewReverseCard(color.Yellow), removed)
		require.Equal(t, []card.Card{
			card.NewWildCard(),
			card.NewDrawTwoCard(color.Blue),
			card.NewNumberCard(color.Red, 1),
		}, hand.Cards())
	})

	t.Run("rejects_out_of_range_indexes", func(t *testing.T) {
		hand := game.NewHand()
		hand.AddCards([]card.Card{card.NewWildCard()})
		for _, index := range []int{-1, 1, 5} {
			_, err := hand.RemoveAt(index)
			require.True(t, errors.Is(err, consts.ErrorsInvalidCardIndex))
		}
		require.Equal(t, 1, hand.Size())
	})
}

func TestReplace(t *testing.T) {
	hand := game.NewHand()
	hand.AddCards([]card.Card{card.NewWildCard()})
	hand.Replace([]card.Card{card.NewSkipCard(color.Green), card.NewSkipCard(color.Red)})
	require.Equal(t, []card.Card{card.NewSkipCard(color.Green), card.NewSkipCard(color.Red)}, hand.Cards())
}

func TestSize(t *testing.T) {
	hand := game.NewHand()
	require.Equal(t, 0, hand.Size())
	hand.AddCards([]card.Card{
		card.NewNumberCard(color.Green, 7),
		card.NewWildCard(),
		card.NewReverseCard(color.Yellow),
	})
	require.Equal(t, 3, hand.Size())
}
