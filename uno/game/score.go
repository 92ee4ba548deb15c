package game

import (
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/msg"
)

// Score is the live score of a hand: ten points for every card below seven,
// never negative.
func Score(handSize int) int {
	score := consts.ScorePerCard * (consts.BaseScoreHandSize - handSize)
	if score < 0 {
		return 0
	}
	return score
}

func (g *Game) initializeScore(s *Seat) {
	g.scores[s.PlayerID] = 0
	g.settle(s)
}

// Scores returns the live score of every seated player by id.
func (g *Game) Scores() map[int64]int {
	scores := make(map[int64]int, len(g.scores))
	for id, score := range g.scores {
		scores[id] = score
	}
	return scores
}

func (g *Game) namedScores() map[string]int {
	scores := make(map[string]int, len(g.seats))
	for _, s := range g.seats {
		scores[s.Name] = g.scores[s.PlayerID]
	}
	return scores
}

// EndResult carries the winner and the final scores. Deltas are what gets
// added to each player's lifetime score.
type EndResult struct {
	Winner Seat           `json:"winner"`
	Scores map[string]int `json:"scores"`
	Deltas map[int64]int  `json:"-"`
}

// End finishes the game once some seat has emptied its hand.
func (g *Game) End(requesterID int64) (*EndResult, error) {
	if g.seat(requesterID) == nil {
		return nil, consts.ErrorsNotInGame
	}
	if err := g.running(); err != nil {
		return nil, err
	}
	var winner *Seat
	for _, s := range g.seats {
		if g.store.HandSize(s.PlayerID) == 0 {
			winner = s
			break
		}
	}
	if winner == nil {
		return nil, consts.ErrorsNoWinner
	}

	deltas := make(map[int64]int, len(g.seats))
	for _, s := range g.seats {
		g.settle(s)
		deltas[s.PlayerID] = g.scores[s.PlayerID]
	}
	g.Status = consts.GameStatusFinished
	won := *winner
	g.winner = &won
	g.log(winner.PlayerID, msg.Action.Won())

	return &EndResult{
		Winner: *winner,
		Scores: g.namedScores(),
		Deltas: deltas,
	}, nil
}
