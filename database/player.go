package database

import (
	"context"
)

// Player is a registered account as the game server knows it. Score is the
// lifetime score accumulated over finished games.
type Player struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Score int64  `json:"score"`
}

// PlayerStore keeps players and their lifetime scores.
type PlayerStore interface {
	// Register creates the player or refreshes its name.
	Register(ctx context.Context, id int64, name string) (*Player, error)
	Get(ctx context.Context, id int64) (*Player, error)
	// AddScores adds every delta to the matching lifetime score. Either all
	// deltas are applied or none.
	AddScores(ctx context.Context, deltas map[int64]int) error
	Close()
}
