package event

import "sync"

// GameChangedPayload is emitted once after every successful mutation of a
// game. Removed is set when the game left the registry. Winner is only set
// by the mutation that finished the game. Version grows with every
// mutation of the same game.
type GameChangedPayload struct {
	GameID  int64
	Status  string
	Version int
	Winner  string
	Removed bool
}

type GameChangedListener interface {
	OnGameChanged(GameChangedPayload)
}

type GameChangedEmitter struct {
	mu        sync.RWMutex
	listeners []GameChangedListener
}

func (e *GameChangedEmitter) AddListener(listener GameChangedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *GameChangedEmitter) Emit(payload GameChangedPayload) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, listener := range e.listeners {
		listener.OnGameChanged(payload)
	}
}
