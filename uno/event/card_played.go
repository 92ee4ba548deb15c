package event

import (
	"sync"

	"github.com/ratel-online/uno-server/uno/card"
)

type CardPlayedPayload struct {
	GameID     int64
	PlayerName string
	Card       card.Card
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

type CardPlayedEmitter struct {
	mu        sync.RWMutex
	listeners []CardPlayedListener
}

func (e *CardPlayedEmitter) AddListener(listener CardPlayedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *CardPlayedEmitter) Emit(payload CardPlayedPayload) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, listener := range e.listeners {
		listener.OnCardPlayed(payload)
	}
}
