package game

const (
	left  = -1
	right = 1
)

// Cycler walks a fixed seating order in either direction. The current seat is
// always an index into the live element list, so removing a seat never leaves
// it pointing at the wrong player.
type Cycler struct {
	elements  []int64
	current   int
	direction int
}

func NewCycler(elements []int64) *Cycler {
	seats := make([]int64, len(elements))
	copy(seats, elements)
	return &Cycler{
		elements:  seats,
		current:   0,
		direction: right,
	}
}

func (c *Cycler) Len() int {
	return len(c.elements)
}

func (c *Cycler) Current() int64 {
	return c.Peek(0)
}

// Peek returns the element n steps ahead of the current one in the direction
// of play without moving. An empty cycler yields 0.
func (c *Cycler) Peek(n int) int64 {
	if len(c.elements) == 0 {
		return 0
	}
	return c.elements[c.offset(n)]
}

func (c *Cycler) Reversed() bool {
	return c.direction == left
}

// Elements returns the seats in the order they are visited from the current
// one.
func (c *Cycler) Elements() []int64 {
	ordered := make([]int64, 0, len(c.elements))
	for n := 0; n < len(c.elements); n++ {
		ordered = append(ordered, c.Peek(n))
	}
	return ordered
}

func (c *Cycler) ForEach(function func(int64)) {
	for _, element := range c.elements {
		function(element)
	}
}

func (c *Cycler) Advance(n int) int64 {
	if len(c.elements) == 0 {
		return 0
	}
	for i := 0; i < n; i++ {
		c.current = c.offset(1)
	}
	return c.Current()
}

// Reverse flips the direction of play. The current element stays current.
func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

// Remove drops element from the order. When it was the current element the
// turn passes to whoever was due after it.
func (c *Cycler) Remove(element int64) bool {
	position := -1
	for i, candidate := range c.elements {
		if candidate == element {
			position = i
			break
		}
	}
	if position < 0 {
		return false
	}

	c.elements = append(c.elements[:position], c.elements[position+1:]...)
	elementCount := len(c.elements)
	if elementCount == 0 {
		c.current = 0
		return true
	}

	switch {
	case position < c.current:
		c.current--
	case position == c.current && c.direction == left:
		c.current--
	}
	c.current = (c.current + elementCount) % elementCount
	return true
}

func (c *Cycler) offset(n int) int {
	elementCount := len(c.elements)
	return ((c.current+n*c.direction)%elementCount + elementCount) % elementCount
}
