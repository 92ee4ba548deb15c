package game

import (
	"fmt"
	"math/rand"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

const DeckSize = 108

// NewDeck builds the standard 108 card deck in a fixed order.
func NewDeck() []card.Card {
	cards := make([]card.Card, 0, DeckSize)

	cards = append(cards, createWildCards()...)
	for _, c := range color.Playable {
		cards = append(cards, createColorCards(c)...)
	}
	return cards
}

// NewShuffledDeck builds a deck and applies a Fisher-Yates shuffle.
func NewShuffledDeck(rng *rand.Rand) []card.Card {
	cards := NewDeck()
	shuffleCards(rng, cards)
	return cards
}

func createColorCards(c color.Color) []card.Card {
	cards := []card.Card{card.New(c, card.Zero)}
	for _, rank := range card.NumberRanks[1:] {
		cards = append(cards, card.New(c, rank), card.New(c, rank))
	}
	for _, rank := range card.ActionRanks {
		cards = append(cards, card.New(c, rank), card.New(c, rank))
	}
	return cards
}

func createWildCards() []card.Card {
	cards := make([]card.Card, 0, 8)
	for i := 0; i < 4; i++ {
		for _, rank := range card.WildRanks {
			cards = append(cards, card.New(color.Wild, rank))
		}
	}
	return cards
}

func shuffleCards(rng *rand.Rand, cards []card.Card) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

// DrawError reports a draw that ran out of cards part way through.
type DrawError struct {
	Requested int
	Drawn     int
}

func (e *DrawError) Error() string {
	return fmt.Sprintf("Not enough cards in the deck. Drew %d cards out of %d", e.Drawn, e.Requested)
}

func (e *DrawError) Unwrap() error {
	return consts.ErrorsDeckEmpty
}

// DrawCards moves n cards from the deck into the owner's hand one at a time.
// An empty deck on the first card fails with consts.ErrorsDeckEmpty and a
// later shortage with a *DrawError. Cards already drawn stay drawn; callers
// roll back the whole game.
func (s *Store) DrawCards(owner int64, n int) ([]card.Card, error) {
	drawn := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		c, err := s.TakeRandomFromDeck()
		if err != nil {
			if i == 0 {
				return nil, err
			}
			return drawn, &DrawError{Requested: n, Drawn: i}
		}
		if c, err = s.Move(c.ID, InHand, owner); err != nil {
			return drawn, err
		}
		drawn = append(drawn, c)
	}
	return drawn, nil
}

// Deal hands out perPlayer cards to the owners round by round.
func (s *Store) Deal(owners []int64, perPlayer int) error {
	for round := 0; round < perPlayer; round++ {
		for _, owner := range owners {
			if _, err := s.DrawCards(owner, 1); err != nil {
				return consts.Errorf(consts.KindDeckExhausted, "Not enough cards to deal %d cards to %d players", perPlayer, len(owners))
			}
		}
	}
	return nil
}
