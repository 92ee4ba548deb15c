package room

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync/atomic"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/database"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/event"
	"github.com/ratel-online/uno-server/uno/game"
)

type Option func(*Manager)

// WithSeed makes shuffles reproducible: game n uses seed+n.
func WithSeed(seed int64) Option {
	return func(m *Manager) {
		m.newRand = func(id int64) *rand.Rand {
			return rand.New(rand.NewSource(seed + id))
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// Manager is the registry of rooms and the entry point for every game
// operation.
type Manager struct {
	roomIds int64
	rooms   *hashmap.HashMap
	players database.PlayerStore
	bus     *event.Bus
	newRand func(id int64) *rand.Rand
	now     func() time.Time
}

func NewManager(players database.PlayerStore, bus *event.Bus, opts ...Option) *Manager {
	m := &Manager{
		rooms:   hashmap.New(),
		players: players,
		bus:     bus,
		newRand: func(id int64) *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano() + id))
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Manager) CreateGame(ctx context.Context, title string, creatorID int64, maxPlayers int) (int64, error) {
	creator, err := m.player(ctx, creatorID)
	if err != nil {
		return 0, err
	}
	id := atomic.AddInt64(&m.roomIds, 1)
	g, err := game.New(id, title, creator, maxPlayers, game.WithRand(m.newRand(id)), game.WithClock(m.now))
	if err != nil {
		return 0, err
	}
	m.rooms.Set(id, &Room{ID: id, ActiveTime: m.now(), game: g})
	log.Infof("game %d created by %s\n", id, creator.Name)
	m.bus.GameChanged.Emit(event.GameChangedPayload{GameID: id, Status: g.Status, Version: g.Version()})
	return id, nil
}

func (m *Manager) JoinGame(ctx context.Context, gameID, playerID int64) (*game.Seat, error) {
	p, err := m.player(ctx, playerID)
	if err != nil {
		return nil, err
	}
	var seat game.Seat
	err = m.mutate(gameID, func(g *game.Game) (err error) {
		seat, err = g.Join(p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (m *Manager) MarkReady(ctx context.Context, gameID, playerID int64) (*game.Seat, error) {
	var seat game.Seat
	err := m.mutate(gameID, func(g *game.Game) (err error) {
		seat, err = g.MarkReady(playerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

// LeaveGame removes the player from the game. A waiting game nobody sits at
// anymore is dropped.
func (m *Manager) LeaveGame(ctx context.Context, gameID, playerID int64) error {
	err := m.mutate(gameID, func(g *game.Game) error {
		return g.Leave(playerID)
	})
	if err != nil {
		return err
	}
	m.removeIf(gameID, "abandoned", func(r *Room) bool {
		return len(r.game.Seats()) == 0
	})
	return nil
}

func (m *Manager) StartGame(ctx context.Context, gameID, requesterID int64, cardsPerPlayer int) (*game.StartResult, error) {
	var result *game.StartResult
	err := m.mutate(gameID, func(g *game.Game) (err error) {
		result, err = g.Start(requesterID, cardsPerPlayer)
		return err
	})
	if err != nil {
		return nil, err
	}
	log.Infof("game %d started with %d players\n", gameID, len(result.Seats))
	m.bus.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{GameID: gameID, Card: result.Opening})
	return result, nil
}

func (m *Manager) PlayCard(ctx context.Context, gameID, playerID int64, face card.Face, chosenColor string) (*game.PlayResult, error) {
	var (
		result *game.PlayResult
		name   string
	)
	err := m.mutate(gameID, func(g *game.Game) (err error) {
		if result, err = g.Play(playerID, face, chosenColor); err != nil {
			return err
		}
		seat, _ := g.Seat(playerID)
		name = seat.Name
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.bus.CardPlayed.Emit(event.CardPlayedPayload{GameID: gameID, PlayerName: name, Card: result.Card})
	if result.Picked {
		m.bus.ColorPicked.Emit(event.ColorPickedPayload{GameID: gameID, PlayerName: name, Color: result.Color})
	}
	if result.Victim != nil {
		m.bus.CardsDrawn.Emit(event.CardsDrawnPayload{GameID: gameID, PlayerName: result.Victim.Name, Count: result.Drawn})
	}
	return result, nil
}

func (m *Manager) DrawCard(ctx context.Context, gameID, playerID int64) (*game.DrawResult, error) {
	var (
		result *game.DrawResult
		name   string
	)
	err := m.mutate(gameID, func(g *game.Game) (err error) {
		if result, err = g.Draw(playerID); err != nil {
			return err
		}
		seat, _ := g.Seat(playerID)
		name = seat.Name
		return nil
	})
	if err != nil {
		return nil, err
	}
	m.bus.CardsDrawn.Emit(event.CardsDrawnPayload{GameID: gameID, PlayerName: name, Count: 1})
	return result, nil
}

func (m *Manager) DeclareUno(ctx context.Context, gameID, playerID int64) (*game.Seat, error) {
	var seat game.Seat
	err := m.mutate(gameID, func(g *game.Game) (err error) {
		seat, err = g.DeclareUno(playerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &seat, nil
}

func (m *Manager) ChallengeUno(ctx context.Context, gameID, challengerID int64) (*game.ChallengeResult, error) {
	var result *game.ChallengeResult
	err := m.mutate(gameID, func(g *game.Game) (err error) {
		result, err = g.Challenge(challengerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if result.Success {
		m.bus.CardsDrawn.Emit(event.CardsDrawnPayload{GameID: gameID, PlayerName: result.Target.Name, Count: result.Drawn})
	}
	return result, nil
}

// EndGame finishes the game and folds the final scores into the lifetime
// scores. If the scores cannot be stored the game stays in progress.
func (m *Manager) EndGame(ctx context.Context, gameID, requesterID int64) (*game.EndResult, error) {
	var result *game.EndResult
	err := m.mutate(gameID, func(g *game.Game) (err error) {
		if result, err = g.End(requesterID); err != nil {
			return err
		}
		if err = m.players.AddScores(ctx, result.Deltas); err != nil {
			return fmt.Errorf("fold scores of game %d: %w", gameID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Infof("game %d won by %s\n", gameID, result.Winner.Name)
	return result, nil
}

func (m *Manager) GetState(ctx context.Context, gameID, requesterID int64) (*game.Snapshot, error) {
	r := m.room(gameID)
	if r == nil {
		return nil, consts.ErrorsGameNotFound
	}
	r.Lock()
	defer r.Unlock()
	if r.removed {
		return nil, consts.ErrorsGameNotFound
	}
	return r.game.Snapshot(requesterID), nil
}

func (m *Manager) GetHistory(ctx context.Context, gameID int64) ([]game.LogEntry, error) {
	r := m.room(gameID)
	if r == nil {
		return nil, consts.ErrorsGameNotFound
	}
	r.Lock()
	defer r.Unlock()
	if r.removed {
		return nil, consts.ErrorsGameNotFound
	}
	return r.game.History(), nil
}

func (m *Manager) ListGames(ctx context.Context) []Summary {
	list := make([]Summary, 0)
	for _, r := range m.all() {
		list = append(list, r.summary())
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

// Sweep drops finished games idle for longer than finishedTTL and any other
// game idle for longer than idleTTL. It returns how many were dropped.
func (m *Manager) Sweep(finishedTTL, idleTTL time.Duration) int {
	now := m.now()
	removed := 0
	for _, r := range m.all() {
		expired := m.removeIf(r.ID, "expired", func(r *Room) bool {
			ttl := idleTTL
			if r.game.Finished() {
				ttl = finishedTTL
			}
			return r.ActiveTime.Add(ttl).Before(now)
		})
		if expired {
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval, finishedTTL, idleTTL time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := m.Sweep(finishedTTL, idleTTL); n > 0 {
				log.Infof("swept %d games\n", n)
			}
		}
	}
}

// mutate runs fn under the room lock on the live game. When fn fails the
// game is restored to the state it had before the call.
func (m *Manager) mutate(gameID int64, fn func(g *game.Game) error) error {
	r := m.room(gameID)
	if r == nil {
		return consts.ErrorsGameNotFound
	}
	r.Lock()
	if r.removed {
		r.Unlock()
		return consts.ErrorsGameNotFound
	}
	checkpoint := r.game.Clone()
	if err := fn(r.game); err != nil {
		r.game = checkpoint
		r.Unlock()
		if consts.KindOf(err) == consts.KindInternal {
			log.Errorf("game %d: %v\n", gameID, err)
		}
		return err
	}
	r.ActiveTime = m.now()
	payload := event.GameChangedPayload{GameID: gameID, Status: r.game.Status, Version: r.game.Version()}
	if winner, ok := r.game.Winner(); ok && !checkpoint.Finished() {
		payload.Winner = winner.Name
	}
	r.Unlock()
	m.bus.GameChanged.Emit(payload)
	return nil
}

// removeIf drops the room when cond holds under the room lock. Operations
// waiting on the lock see the room as gone.
func (m *Manager) removeIf(gameID int64, reason string, cond func(r *Room) bool) bool {
	r := m.room(gameID)
	if r == nil {
		return false
	}
	r.Lock()
	if r.removed || !cond(r) {
		r.Unlock()
		return false
	}
	r.removed = true
	m.rooms.Del(gameID)
	r.Unlock()
	log.Infof("game %d is %s, removed.\n", gameID, reason)
	m.bus.GameChanged.Emit(event.GameChangedPayload{GameID: gameID, Removed: true})
	return true
}

func (m *Manager) room(gameID int64) *Room {
	if v, ok := m.rooms.Get(gameID); ok {
		return v.(*Room)
	}
	return nil
}

func (m *Manager) all() []*Room {
	list := make([]*Room, 0)
	m.rooms.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Room))
	})
	return list
}

func (m *Manager) player(ctx context.Context, playerID int64) (game.Player, error) {
	p, err := m.players.Get(ctx, playerID)
	if err != nil {
		return game.Player{}, err
	}
	return game.Player{ID: p.ID, Name: p.Name}, nil
}
