package game

import (
	"testing"

	"github.com/ratel-online/uno-server/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	scenarios := map[int]int{0: 70, 1: 60, 3: 40, 6: 10, 7: 0, 8: 0, 20: 0}
	for handSize, expected := range scenarios {
		assert.Equal(t, expected, Score(handSize), "hand of %d", handSize)
	}
}

func TestEnd(t *testing.T) {
	t.Run("needs_an_empty_hand", func(t *testing.T) {
		g := startTestGame(t, 2)
		version := g.Version()
		_, err := g.End(1)
		_, ok := g.Winner()
		assert.False(t, ok)
		assert.Equal(t, version, g.Version())
		assert.Equal(t, consts.ErrorsNoWinner, err)
		assert.Equal(t, consts.KindBusiness, consts.KindOf(err))
		assert.Equal(t, consts.GameStatusInProgress, g.Status)
	})

	t.Run("returns_the_winner_and_final_scores", func(t *testing.T) {
		g := startTestGame(t, 3)
		rig(t, g, "red 7", []string{"red 1", "red 2"}, []string{}, []string{"blue 1", "blue 2", "blue 3"})

		result, err := g.End(3)
		require.NoError(t, err)
		assert.Equal(t, "B", result.Winner.Name)
		assert.Equal(t, map[string]int{"A": 50, "B": 70, "C": 40}, result.Scores)
		assert.Equal(t, map[int64]int{1: 50, 2: 70, 3: 40}, result.Deltas)
		assert.True(t, g.Finished())
		assert.Equal(t, "Won the game", lastAction(g).Action)
		assert.Equal(t, "B", lastAction(g).PlayerName)
		winner, ok := g.Winner()
		require.True(t, ok)
		assert.Equal(t, int64(2), winner.PlayerID)

		_, err = g.End(3)
		assert.Equal(t, consts.ErrorsGameFinished, err)
		_, err = g.Play(1, face("red 1"), "")
		assert.Equal(t, consts.ErrorsGameFinished, err)
		_, err = g.Draw(1)
		assert.Equal(t, consts.KindGameState, consts.KindOf(err))
	})

	t.Run("only_players_may_end", func(t *testing.T) {
		g := startTestGame(t, 2)
		_, err := g.End(99)
		assert.Equal(t, consts.ErrorsNotInGame, err)
	})

	t.Run("not_before_the_start", func(t *testing.T) {
		g := newTestGame(t, 2)
		_, err := g.End(1)
		assert.Equal(t, consts.ErrorsGameNotRunning, err)
	})
}
