// Package card models the 108 UNO cards and the color-resolved form a wild
// card takes once it is played.
package card

import (
	"strings"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

// Card is either a colored card (number, skip, reverse, draw two) or one of
// the two wild cards. Wild cards report a nil Color until they are wrapped in
// a ColoredCard by being played.
type Card interface {
	Actions() []action.Action
	Color() color.Color
	Equal(other Card) bool
	String() string
}

// Colored reports whether c carries a color of its own.
func Colored(c Card) bool {
	return c != nil && c.Color() != nil
}

// Wild reports whether c is a wild card, played or not.
func Wild(c Card) bool {
	switch c := c.(type) {
	case WildCard, WildDrawFourCard:
		return true
	case ColoredCard:
		return Wild(c.card)
	}
	return false
}

// Paint renders c with its color's terminal escape codes.
func Paint(c Card) string {
	if c.Color() == nil {
		return c.String()
	}
	return c.Color().Paint(c.String())
}

// PaintAll renders a hand as "[Red 3, Wild]".
func PaintAll(cards []Card) string {
	painted := make([]string, 0, len(cards))
	for _, c := range cards {
		painted = append(painted, Paint(c))
	}
	return "[" + strings.Join(painted, ", ") + "]"
}
