package game

import (
	"math/rand"
	"sort"

	"github.com/google/uuid"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/card"
)

type Location string

const (
	InDeck    Location = "deck"
	InHand    Location = "hand"
	InDiscard Location = "discard"
)

// Placement is where one physical card currently is. Owner is zero unless
// the card is in a hand.
type Placement struct {
	Card     card.Card `json:"card"`
	Location Location  `json:"location"`
	Owner    int64     `json:"owner,omitempty"`
	Order    int       `json:"order"`
	seq      uint64
}

// Store keeps custody of every card of one game. It is not safe for
// concurrent use; callers serialize access per game.
type Store struct {
	cards map[uuid.UUID]*Placement
	order []uuid.UUID
	seq   uint64
	rng   *rand.Rand
}

func NewStore(rng *rand.Rand) *Store {
	return &Store{
		cards: map[uuid.UUID]*Placement{},
		rng:   rng,
	}
}

// BulkInsert places the freshly built deck. Cards keep the order they are
// given in, which is the deal order used to pick the opening card.
func (s *Store) BulkInsert(cards []card.Card) error {
	if len(s.cards) > 0 {
		return consts.ErrorsStoreNotEmpty
	}
	for i, c := range cards {
		s.seq++
		s.cards[c.ID] = &Placement{Card: c, Location: InDeck, Order: i, seq: s.seq}
		s.order = append(s.order, c.ID)
	}
	return nil
}

func (s *Store) Len() int {
	return len(s.cards)
}

func (s *Store) Get(id uuid.UUID) (Placement, error) {
	p, ok := s.cards[id]
	if !ok {
		return Placement{}, consts.ErrorsCardNotFound
	}
	return *p, nil
}

// Move relocates a card. A hand needs an owner and the deck and discard
// pile must not have one.
func (s *Store) Move(id uuid.UUID, location Location, owner int64) (card.Card, error) {
	p, ok := s.cards[id]
	if !ok {
		return card.Card{}, consts.ErrorsCardNotFound
	}
	switch location {
	case InHand:
		if owner == 0 {
			return card.Card{}, consts.ErrorsInvalidLocation
		}
	case InDeck, InDiscard:
		if owner != 0 {
			return card.Card{}, consts.ErrorsInvalidLocation
		}
	default:
		return card.Card{}, consts.ErrorsInvalidLocation
	}
	s.seq++
	p.Location, p.Owner, p.seq = location, owner, s.seq
	return p.Card, nil
}

func (s *Store) TakeRandomFromDeck() (card.Card, error) {
	deck := s.filter(func(p *Placement) bool { return p.Location == InDeck })
	if len(deck) == 0 {
		return card.Card{}, consts.ErrorsDeckEmpty
	}
	return deck[s.rng.Intn(len(deck))].Card, nil
}

// HandOf lists a player's cards in the order they were received.
func (s *Store) HandOf(owner int64) []card.Card {
	hand := s.filter(func(p *Placement) bool { return p.Location == InHand && p.Owner == owner })
	sort.Slice(hand, func(i, j int) bool { return hand[i].seq < hand[j].seq })
	cards := make([]card.Card, 0, len(hand))
	for _, p := range hand {
		cards = append(cards, p.Card)
	}
	return cards
}

func (s *Store) HandSize(owner int64) int {
	return len(s.filter(func(p *Placement) bool { return p.Location == InHand && p.Owner == owner }))
}

// FindInHand returns the first card in the owner's hand showing face.
func (s *Store) FindInHand(owner int64, face card.Face) (card.Card, bool) {
	for _, c := range s.HandOf(owner) {
		if c.Is(face) {
			return c, true
		}
	}
	return card.Card{}, false
}

func (s *Store) TopOfDiscard() (card.Card, error) {
	var top *Placement
	for _, p := range s.cards {
		if p.Location == InDiscard && (top == nil || p.seq > top.seq) {
			top = p
		}
	}
	if top == nil {
		return card.Card{}, consts.ErrorsDiscardEmpty
	}
	return top.Card, nil
}

func (s *Store) DeckCount() int {
	return len(s.filter(func(p *Placement) bool { return p.Location == InDeck }))
}

// SelectOpening turns the first non-wild deck card, by deal order, face up
// on the discard pile.
func (s *Store) SelectOpening() (card.Card, error) {
	for _, id := range s.order {
		p := s.cards[id]
		if p.Location == InDeck && !p.Card.Rank.IsWild() {
			return s.Move(id, InDiscard, 0)
		}
	}
	return card.Card{}, consts.ErrorsDeckEmpty
}

// Cards lists every placement in deal order.
func (s *Store) Cards() []Placement {
	placements := make([]Placement, 0, len(s.order))
	for _, id := range s.order {
		placements = append(placements, *s.cards[id])
	}
	return placements
}

func (s *Store) Clone() *Store {
	clone := &Store{
		cards: make(map[uuid.UUID]*Placement, len(s.cards)),
		order: append([]uuid.UUID(nil), s.order...),
		seq:   s.seq,
		rng:   s.rng,
	}
	for id, p := range s.cards {
		cp := *p
		clone.cards[id] = &cp
	}
	return clone
}

func (s *Store) filter(match func(*Placement) bool) []*Placement {
	var placements []*Placement
	for _, id := range s.order {
		if p := s.cards[id]; match(p) {
			placements = append(placements, p)
		}
	}
	return placements
}
