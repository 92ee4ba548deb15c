package game

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/stretchr/testify/require"
)

var testClock = func() time.Time {
	return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
}

func face(s string) card.Face {
	f, err := card.ParseFace(s)
	if err != nil {
		panic(err)
	}
	return f
}

// newTestGame seats players 1..n named A, B, C... and marks them ready.
func newTestGame(t *testing.T, n int) *Game {
	t.Helper()
	g, err := New(100, "test table", Player{ID: 1, Name: "A"}, 10, WithRand(rand.New(rand.NewSource(1))), WithClock(testClock))
	require.NoError(t, err)
	for i := 2; i <= n; i++ {
		_, err = g.Join(Player{ID: int64(i), Name: fmt.Sprintf("%c", 'A'+i-1)})
		require.NoError(t, err)
	}
	for i := 1; i <= n; i++ {
		_, err = g.MarkReady(int64(i))
		require.NoError(t, err)
	}
	return g
}

func startTestGame(t *testing.T, n int) *Game {
	t.Helper()
	g := newTestGame(t, n)
	_, err := g.Start(1, 7)
	require.NoError(t, err)
	return g
}

// rig rearranges a started game: every card goes back to the deck, then the
// listed faces are dealt to seats in order and top becomes the discard.
func rig(t *testing.T, g *Game, top string, hands ...[]string) {
	t.Helper()
	for _, p := range g.store.Cards() {
		if p.Location != InDeck {
			_, err := g.store.Move(p.Card.ID, InDeck, 0)
			require.NoError(t, err)
		}
	}
	take := func(f card.Face, location Location, owner int64) {
		for _, p := range g.store.Cards() {
			if p.Location == InDeck && p.Card.Is(f) {
				_, err := g.store.Move(p.Card.ID, location, owner)
				require.NoError(t, err)
				return
			}
		}
		t.Fatalf("no %s left in the deck", f)
	}
	for i, hand := range hands {
		for _, f := range hand {
			take(face(f), InHand, g.seats[i].PlayerID)
		}
	}
	take(face(top), InDiscard, 0)
	g.Color = face(top).Color
	for _, s := range g.seats {
		g.settle(s)
	}
}

// drain moves deck cards into the hand of owner until only left remain.
func drain(t *testing.T, g *Game, owner int64, left int) {
	t.Helper()
	for g.store.DeckCount() > left {
		c, err := g.store.TakeRandomFromDeck()
		require.NoError(t, err)
		_, err = g.store.Move(c.ID, InHand, owner)
		require.NoError(t, err)
	}
}
