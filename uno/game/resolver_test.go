package game

import (
	"errors"
	"testing"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastAction(g *Game) LogEntry {
	return g.history[len(g.history)-1]
}

func TestPlayNumberCard(t *testing.T) {
	g := startTestGame(t, 3)
	rig(t, g, "red 7", []string{"red 5", "blue skip"}, []string{"green 1"}, []string{"yellow 2"})

	_, err := g.Play(1, face("blue skip"), "")
	assert.Equal(t, consts.ErrorsIllegalPlay, err)
	assert.Equal(t, consts.KindBusiness, consts.KindOf(err))

	result, err := g.Play(1, face("red 5"), "")
	require.NoError(t, err)
	assert.Equal(t, color.Red, g.Color)
	assert.Equal(t, 1, g.CurrentIndex())
	assert.Equal(t, "B", result.NextPlayer.Name)
	assert.Equal(t, 1, result.HandSize)
	assert.False(t, result.RoundOver)
	assert.Equal(t, Score(1), g.Scores()[1])

	top, err := g.store.TopOfDiscard()
	require.NoError(t, err)
	assert.Equal(t, face("red 5"), top.Face)
	assert.Equal(t, "played red 5", lastAction(g).Action)
	assert.Equal(t, "A", lastAction(g).PlayerName)
}

func TestPlayValidation(t *testing.T) {
	g := startTestGame(t, 3)
	rig(t, g, "red 7", []string{"red 5", "wild wild"}, []string{"red 1"}, []string{"yellow 2"})
	history := len(g.history)

	_, err := g.Play(2, face("red 1"), "")
	assert.Equal(t, consts.ErrorsNotYourTurn, err)

	_, err = g.Play(1, face("green 9"), "")
	assert.Equal(t, consts.ErrorsCardNotInHand, err)
	assert.Equal(t, consts.KindAuth, consts.KindOf(err))

	_, err = g.Play(42, face("red 1"), "")
	assert.Equal(t, consts.ErrorsNotInGame, err)

	_, err = g.Play(1, face("wild wild"), "Red")
	require.Error(t, err)
	assert.Equal(t, consts.KindValidation, consts.KindOf(err))
	assert.Equal(t, "Invalid color: Red. Must be one of: red, blue, green, yellow", err.Error())

	assert.Len(t, g.history, history)
	assert.Equal(t, 2, g.store.HandSize(1))

	waiting := newTestGame(t, 2)
	_, err = waiting.Play(1, face("red 1"), "")
	assert.Equal(t, consts.ErrorsGameNotRunning, err)
}

func TestPlayActionCards(t *testing.T) {
	t.Run("skip_passes_over_the_next_seat", func(t *testing.T) {
		g := startTestGame(t, 3)
		rig(t, g, "red 3", []string{"red skip", "red 1"}, []string{"blue 1"}, []string{"yellow 1"})

		result, err := g.Play(1, face("red skip"), "")
		require.NoError(t, err)
		assert.Equal(t, 2, g.CurrentIndex())
		assert.Equal(t, "B", result.Skipped.Name)
		assert.Equal(t, "Skipped B's turn with a Skip card", lastAction(g).Action)
	})

	t.Run("reverse_flips_the_direction", func(t *testing.T) {
		g := startTestGame(t, 3)
		rig(t, g, "red 3", []string{"red reverse", "red 1"}, []string{"blue 1"}, []string{"yellow 1"})

		result, err := g.Play(1, face("red reverse"), "")
		require.NoError(t, err)
		assert.Equal(t, CounterClockwise, result.Direction)
		assert.Equal(t, 2, g.CurrentIndex())
		assert.Equal(t, "Reversed the game direction to counter-clockwise", lastAction(g).Action)
	})

	t.Run("reverse_with_two_players_hands_the_turn_over", func(t *testing.T) {
		g := startTestGame(t, 2)
		rig(t, g, "red 3", []string{"red reverse", "red 1"}, []string{"blue 1"})

		_, err := g.Play(1, face("red reverse"), "")
		require.NoError(t, err)
		assert.Equal(t, CounterClockwise, g.Direction())
		assert.Equal(t, 1, g.CurrentIndex())
	})

	t.Run("draw_two_makes_the_next_seat_draw_and_skips_it", func(t *testing.T) {
		g := startTestGame(t, 3)
		rig(t, g, "green 4", []string{"green draw_two", "red 1"}, []string{"blue 1"}, []string{"yellow 1"})
		deck := g.store.DeckCount()

		result, err := g.Play(1, face("green draw_two"), "")
		require.NoError(t, err)
		assert.Equal(t, 3, g.store.HandSize(2))
		assert.Equal(t, 2, g.CurrentIndex())
		assert.Equal(t, color.Green, g.Color)
		assert.Equal(t, "B", result.Victim.Name)
		assert.Equal(t, 2, result.Drawn)
		assert.Equal(t, deck-2, g.store.DeckCount())
		assert.Equal(t, Score(3), g.Scores()[2])
		assert.Equal(t, "B drew 2 cards and was skipped", lastAction(g).Action)
	})

	t.Run("wild_sets_the_chosen_color", func(t *testing.T) {
		g := startTestGame(t, 3)
		rig(t, g, "red 3", []string{"wild wild", "red 1"}, []string{"blue 1"}, []string{"yellow 1"})

		result, err := g.Play(1, face("wild wild"), "blue")
		require.NoError(t, err)
		assert.True(t, result.Picked)
		assert.Equal(t, color.Blue, g.Color)
		assert.Equal(t, 1, g.CurrentIndex())
		assert.Equal(t, "Changed color to blue with a Wild card", lastAction(g).Action)
	})

	t.Run("wild_draw_four_sets_the_color_and_punishes_the_next_seat", func(t *testing.T) {
		g := startTestGame(t, 3)
		rig(t, g, "red 3", []string{"wild wild_draw_four", "red 1"}, []string{"blue 1"}, []string{"yellow 1"})

		_, err := g.Play(1, face("wild wild_draw_four"), "green")
		require.NoError(t, err)
		assert.Equal(t, color.Green, g.Color)
		assert.Equal(t, 5, g.store.HandSize(2))
		assert.Equal(t, 2, g.CurrentIndex())
		assert.Equal(t, "Changed color to green with a Wild Draw Four card. B drew 4 cards and was skipped.", lastAction(g).Action)
	})

	t.Run("draw_two_fails_when_the_deck_runs_dry", func(t *testing.T) {
		g := startTestGame(t, 3)
		rig(t, g, "green 4", []string{"green draw_two", "red 1"}, []string{"blue 1"}, []string{"yellow 1"})
		drain(t, g, 3, 1)

		_, err := g.Play(1, face("green draw_two"), "")
		require.Error(t, err)
		assert.Equal(t, consts.KindDeckExhausted, consts.KindOf(err))
		var drawErr *DrawError
		require.True(t, errors.As(err, &drawErr))
		assert.Equal(t, 1, drawErr.Drawn)
	})
}

func TestPlayLastCard(t *testing.T) {
	g := startTestGame(t, 2)
	rig(t, g, "red 3", []string{"red 5"}, []string{"blue 1"})
	g.seats[0].SaidUno = true

	result, err := g.Play(1, face("red 5"), "")
	require.NoError(t, err)
	assert.True(t, result.RoundOver)
	assert.Equal(t, consts.GameStatusInProgress, g.Status)
	assert.False(t, g.seats[0].SaidUno)
	assert.Equal(t, 70, g.Scores()[1])
}
