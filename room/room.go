package room

import (
	"sync"
	"time"

	"github.com/ratel-online/uno-server/uno/game"
)

// Room owns one game. Every access to the game goes through the room lock.
type Room struct {
	sync.Mutex

	ID         int64
	ActiveTime time.Time

	game    *game.Game
	removed bool
}

// Summary is the lobby view of a room.
type Summary struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"max_players"`
	CreatorID  int64  `json:"creator_id"`
}

func (r *Room) summary() Summary {
	r.Lock()
	defer r.Unlock()
	return Summary{
		ID:         r.ID,
		Title:      r.game.Title,
		Status:     r.game.Status,
		Players:    len(r.game.Seats()),
		MaxPlayers: r.game.MaxPlayers,
		CreatorID:  r.game.CreatorID,
	}
}
