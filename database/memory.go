package database

import (
	"context"
	"sync"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/uno-server/consts"
)

// MemoryPlayers keeps players in process memory.
type MemoryPlayers struct {
	sync.Mutex
	players *hashmap.HashMap
}

func NewMemoryPlayers() *MemoryPlayers {
	return &MemoryPlayers{players: hashmap.New()}
}

func (m *MemoryPlayers) Register(_ context.Context, id int64, name string) (*Player, error) {
	m.Lock()
	defer m.Unlock()
	if p := m.get(id); p != nil {
		p.Name = name
		cp := *p
		return &cp, nil
	}
	p := &Player{ID: id, Name: name}
	m.players.Set(id, p)
	cp := *p
	return &cp, nil
}

func (m *MemoryPlayers) Get(_ context.Context, id int64) (*Player, error) {
	m.Lock()
	defer m.Unlock()
	p := m.get(id)
	if p == nil {
		return nil, consts.ErrorsPlayerNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *MemoryPlayers) AddScores(_ context.Context, deltas map[int64]int) error {
	m.Lock()
	defer m.Unlock()
	for id := range deltas {
		if m.get(id) == nil {
			return consts.ErrorsPlayerNotFound
		}
	}
	for id, delta := range deltas {
		m.get(id).Score += int64(delta)
	}
	return nil
}

func (m *MemoryPlayers) Close() {}

func (m *MemoryPlayers) get(id int64) *Player {
	if v, ok := m.players.Get(id); ok {
		return v.(*Player)
	}
	return nil
}
