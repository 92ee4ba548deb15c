package event

import "sync"

// DummyListener records every payload it receives.
type DummyListener struct {
	mu               sync.Mutex
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]interface{}(nil), l.receivedPayloads...)
}

func (l *DummyListener) receive(payload interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnFirstCardPlayed(payload FirstCardPlayedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnColorPicked(payload ColorPickedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnCardsDrawn(payload CardsDrawnPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnGameChanged(payload GameChangedPayload) {
	l.receive(payload)
}
