package player

import (
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/game"
)

const (
	Naive = "naive"
	Good  = "good"
)

// Suggestion is the move an advisor would make. Draw is set when no card
// in hand can be played.
type Suggestion struct {
	Card  *card.Card  `json:"card,omitempty"`
	Color color.Color `json:"color,omitempty"`
	Draw  bool        `json:"draw"`
}

// Advisor picks a move for the requester of a snapshot.
type Advisor interface {
	PickColor(hand []card.Card) color.Color
	Play(playable []card.Card, hand []card.Card) card.Card
}

func New(kind string) (Advisor, error) {
	switch kind {
	case "", Good:
		return goodAdvisor{}, nil
	case Naive:
		return naiveAdvisor{}, nil
	}
	return nil, consts.Errorf(consts.KindValidation, "Unknown advisor: %s", kind)
}

// Advise asks advisor for a move on behalf of the snapshot's requester.
func Advise(advisor Advisor, s *game.Snapshot) (*Suggestion, error) {
	if !s.YourTurn {
		return nil, consts.ErrorsNotYourTurn
	}
	if len(s.Playable) == 0 {
		return &Suggestion{Draw: true}, nil
	}
	c := advisor.Play(s.Playable, s.Hand)
	suggestion := &Suggestion{Card: &c}
	if c.Color.IsWild() {
		suggestion.Color = advisor.PickColor(s.Hand)
	}
	return suggestion, nil
}
