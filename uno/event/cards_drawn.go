package event

import "sync"

// CardsDrawnPayload is emitted whenever somebody's hand grows, whether by
// choice, by a draw card or by a challenge penalty.
type CardsDrawnPayload struct {
	GameID     int64
	PlayerName string
	Count      int
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type CardsDrawnEmitter struct {
	mu        sync.RWMutex
	listeners []CardsDrawnListener
}

func (e *CardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *CardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, listener := range e.listeners {
		listener.OnCardsDrawn(payload)
	}
}
