package event

// Bus carries every emitter of one server. Listeners are registered while
// wiring the server and emits happen after the room lock is released.
type Bus struct {
	FirstCardPlayed *FirstCardPlayedEmitter
	CardPlayed      *CardPlayedEmitter
	ColorPicked     *ColorPickedEmitter
	CardsDrawn      *CardsDrawnEmitter
	GameChanged     *GameChangedEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed: &FirstCardPlayedEmitter{},
		CardPlayed:      &CardPlayedEmitter{},
		ColorPicked:     &ColorPickedEmitter{},
		CardsDrawn:      &CardsDrawnEmitter{},
		GameChanged:     &GameChangedEmitter{},
	}
}

// Listener is implemented by subscribers interested in everything.
type Listener interface {
	FirstCardPlayedListener
	CardPlayedListener
	ColorPickedListener
	CardsDrawnListener
	GameChangedListener
}

func (b *Bus) AddListener(listener Listener) {
	b.FirstCardPlayed.AddListener(listener)
	b.CardPlayed.AddListener(listener)
	b.ColorPicked.AddListener(listener)
	b.CardsDrawn.AddListener(listener)
	b.GameChanged.AddListener(listener)
}
