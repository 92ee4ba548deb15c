// Package action describes what a card does to the table once it lands on
// the discard pile.
package action

type Action interface {
	action()
}

// DrawCards makes the next seat draw Amount cards.
type DrawCards struct {
	Amount int
}

// Skip moves the turn one extra seat forward.
type Skip struct{}

// Reverse flips the turn direction before the turn moves on.
type Reverse struct{}

// PickColor sets the active color to the one chosen by the player.
type PickColor struct{}

func (DrawCards) action() {}
func (Skip) action()      {}
func (Reverse) action()   {}
func (PickColor) action() {}
