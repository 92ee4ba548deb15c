package event

import (
	"sync"

	"github.com/ratel-online/uno-server/uno/card/color"
)

type ColorPickedPayload struct {
	GameID     int64
	PlayerName string
	Color      color.Color
}

type ColorPickedListener interface {
	OnColorPicked(ColorPickedPayload)
}

type ColorPickedEmitter struct {
	mu        sync.RWMutex
	listeners []ColorPickedListener
}

func (e *ColorPickedEmitter) AddListener(listener ColorPickedListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *ColorPickedEmitter) Emit(payload ColorPickedPayload) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, listener := range e.listeners {
		listener.OnColorPicked(payload)
	}
}
