package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

// ColoredCard is a wild card after it was played with a chosen color.
type ColoredCard struct {
	card  Card
	color color.Color
}

func NewColoredCard(card Card, color color.Color) ColoredCard {
	return ColoredCard{
		card:  card,
		color: color,
	}
}

func (c ColoredCard) Actions() []action.Action {
	return c.card.Actions()
}

func (c ColoredCard) Card() Card {
	return c.card
}

func (c ColoredCard) Color() color.Color {
	return c.color
}

func (c ColoredCard) Equal(other Card) bool {
	otherColoredCard, typeMatched := other.(ColoredCard)
	return typeMatched && c.color == otherColoredCard.color && c.card.Equal(otherColoredCard.card)
}

func (c ColoredCard) String() string {
	return fmt.Sprintf("%s (%s)", c.card, c.color)
}
