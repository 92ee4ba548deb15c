package game

import (
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/action"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/msg"
)

// PlayResult describes what a played card did to the table.
type PlayResult struct {
	Card       card.Card   `json:"card"`
	Color      color.Color `json:"color"`
	Picked     bool        `json:"picked"`
	Direction  Direction   `json:"direction"`
	NextPlayer Seat        `json:"next_player"`
	Skipped    *Seat       `json:"skipped,omitempty"`
	Victim     *Seat       `json:"victim,omitempty"`
	Drawn      int         `json:"drawn,omitempty"`
	HandSize   int         `json:"hand_size"`
	// RoundOver is set when the card emptied the player's hand. The game
	// keeps running until somebody ends it.
	RoundOver bool `json:"round_over"`
}

// Play puts the card showing face from the player's hand on the discard
// pile and applies its effect. chosen names the color for wild cards and is
// ignored otherwise.
func (g *Game) Play(playerID int64, face card.Face, chosen string) (*PlayResult, error) {
	s, err := g.actor(playerID)
	if err != nil {
		return nil, err
	}
	c, ok := g.store.FindInHand(playerID, face)
	if !ok {
		return nil, consts.ErrorsCardNotInHand
	}
	var picked color.Color
	if c.Color.IsWild() {
		if picked, err = color.Choose(chosen); err != nil {
			return nil, err
		}
	}
	top, err := g.store.TopOfDiscard()
	if err != nil {
		return nil, err
	}
	if !Playable(c, top, g.Color) {
		return nil, consts.ErrorsIllegalPlay
	}

	g.log(playerID, msg.Action.Played(c.Face))
	if _, err = g.store.Move(c.ID, InDiscard, 0); err != nil {
		return nil, err
	}
	g.settle(s)

	result := &PlayResult{Card: c, Picked: c.Color.IsWild()}
	if err = g.resolve(s, c, picked, result); err != nil {
		return nil, err
	}
	result.Color = g.Color
	result.Direction = g.turns.Direction
	result.NextPlayer = g.CurrentSeat()
	result.HandSize = g.store.HandSize(playerID)
	result.RoundOver = result.HandSize == 0
	return result, nil
}

func (g *Game) resolve(s *Seat, c card.Card, picked color.Color, result *PlayResult) error {
	count := len(g.seats)
	steps := 1
	next := c.Color
	for _, a := range c.Rank.Actions() {
		switch a := a.(type) {
		case action.PickColor:
			next = picked
		case action.Reverse:
			if err := g.turns.Reverse(count); err != nil {
				return err
			}
		case action.DrawCards:
			victim := g.seats[g.turns.Peek(1, count)]
			if _, err := g.store.DrawCards(victim.PlayerID, a.Amount); err != nil {
				return err
			}
			g.settle(victim)
			v := *victim
			result.Victim, result.Drawn = &v, a.Amount
		case action.Skip:
			if result.Skipped == nil {
				skipped := *g.seats[g.turns.Peek(1, count)]
				result.Skipped = &skipped
			}
			steps++
		}
	}
	g.Color = next
	g.turns.Advance(steps, count)

	switch c.Rank {
	case card.Skip:
		g.log(s.PlayerID, msg.Action.Skipped(result.Skipped.Name))
	case card.Reverse:
		g.log(s.PlayerID, msg.Action.Reversed(g.turns.Direction))
	case card.DrawTwo:
		g.log(s.PlayerID, msg.Action.DrewAndSkipped(result.Victim.Name, result.Drawn))
	case card.Wild:
		g.log(s.PlayerID, msg.Action.ChangedColor(picked))
	case card.WildDrawFour:
		g.log(s.PlayerID, msg.Action.ChangedColorAndDrew(picked, result.Victim.Name))
	}
	return nil
}
