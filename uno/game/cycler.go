package game

import "github.com/ratel-online/uno-server/consts"

type Direction string

const (
	Clockwise        Direction = "clockwise"
	CounterClockwise Direction = "counter-clockwise"
)

func (d Direction) String() string {
	return string(d)
}

func (d Direction) step() int {
	if d == CounterClockwise {
		return -1
	}
	return 1
}

func (d Direction) Reverse() Direction {
	if d == CounterClockwise {
		return Clockwise
	}
	return CounterClockwise
}

// NextIndex is the seat position after current when walking in direction
// around count seats.
func NextIndex(direction Direction, current, count int) int {
	if count <= 0 {
		return 0
	}
	return ((current+direction.step())%count + count) % count
}

// Cycler tracks whose turn it is.
type Cycler struct {
	Current   int
	Direction Direction
}

func NewCycler() Cycler {
	return Cycler{Current: 0, Direction: Clockwise}
}

// Peek returns the seat steps positions ahead without moving.
func (c Cycler) Peek(steps, count int) int {
	index := c.Current
	for i := 0; i < steps; i++ {
		index = NextIndex(c.Direction, index, count)
	}
	return index
}

func (c *Cycler) Advance(steps, count int) int {
	c.Current = c.Peek(steps, count)
	return c.Current
}

func (c *Cycler) Reverse(count int) error {
	if count <= 1 {
		return consts.ErrorsCannotReverse
	}
	c.Direction = c.Direction.Reverse()
	return nil
}
