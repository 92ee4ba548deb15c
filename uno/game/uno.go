package game

import (
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/msg"
)

// ChallengeResult is returned for every challenge. Success is false when
// nobody could be caught, which is not an error.
type ChallengeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Target  *Seat  `json:"target,omitempty"`
	Drawn   int    `json:"drawn,omitempty"`
}

const noChallengeTarget = "No player with one card forgot to say UNO"

func (g *Game) DeclareUno(playerID int64) (Seat, error) {
	if err := g.running(); err != nil {
		return Seat{}, err
	}
	s := g.seat(playerID)
	if s == nil {
		return Seat{}, consts.ErrorsNotInGame
	}
	if g.store.HandSize(playerID) != consts.UnoHandSize {
		return Seat{}, consts.ErrorsCannotSayUno
	}
	s.SaidUno = true
	g.log(playerID, msg.Action.SaidUno())
	return *s, nil
}

// Challenge catches the first other seat holding one card without having
// said UNO and makes it draw the penalty.
func (g *Game) Challenge(challengerID int64) (*ChallengeResult, error) {
	if err := g.running(); err != nil {
		return nil, err
	}
	if g.seat(challengerID) == nil {
		return nil, consts.ErrorsNotInGame
	}
	var target *Seat
	for _, s := range g.seats {
		if s.PlayerID != challengerID && !s.SaidUno && g.store.HandSize(s.PlayerID) == consts.UnoHandSize {
			target = s
			break
		}
	}
	if target == nil {
		return &ChallengeResult{Success: false, Message: noChallengeTarget}, nil
	}

	if _, err := g.store.DrawCards(target.PlayerID, consts.ChallengePenalty); err != nil {
		return nil, err
	}
	target.SaidUno = false
	g.settle(target)
	g.log(challengerID, msg.Action.Challenged(target.Name))

	t := *target
	return &ChallengeResult{
		Success: true,
		Message: msg.Action.Challenged(target.Name),
		Target:  &t,
		Drawn:   consts.ChallengePenalty,
	}, nil
}
