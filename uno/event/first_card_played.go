package event

import (
	"sync"

	"github.com/ratel-online/uno-server/uno/card"
)

type FirstCardPlayedPayload struct {
	GameID int64
	Card   card.Card
}

type FirstCardPlayedListener interface {
	OnFirstCardPlayed(FirstCardPlayedPayload)
}

type FirstCardPlayedEmitter struct {
	mu        sync.RWMutex
	listeners []FirstCardPlayedListener
}

func (e *FirstCardPlayedEmitter) AddListener(listener FirstCardPlayedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *FirstCardPlayedEmitter) Emit(payload FirstCardPlayedPayload) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, listener := range e.listeners {
		listener.OnFirstCardPlayed(payload)
	}
}
