package game

import (
	"testing"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRules(t *testing.T) {
	scenarios := []struct {
		description    string
		candidate      string
		top            string
		color          color.Color
		expectedResult bool
	}{
		{description: "wild_card_is_always_playable", candidate: "wild wild", top: "blue 7", color: color.Blue, expectedResult: true},
		{description: "wild_draw_four_card_is_always_playable", candidate: "wild wild_draw_four", top: "blue 7", color: color.Blue, expectedResult: true},
		{description: "number_cards_with_same_color", candidate: "blue 5", top: "blue 7", color: color.Blue, expectedResult: true},
		{description: "number_cards_with_same_number", candidate: "red 7", top: "blue 7", color: color.Blue, expectedResult: true},
		{description: "number_cards_with_different_color_and_number", candidate: "red 5", top: "blue 7", color: color.Blue, expectedResult: false},
		{description: "same_action_rank", candidate: "green skip", top: "red skip", color: color.Red, expectedResult: true},
		{description: "different_action_rank_and_color", candidate: "green reverse", top: "red skip", color: color.Red, expectedResult: false},
		{description: "color_picked_by_a_wild", candidate: "yellow 2", top: "wild wild", color: color.Yellow, expectedResult: true},
		{description: "wild_top_with_other_color", candidate: "red 2", top: "wild wild", color: color.Yellow, expectedResult: false},
		{description: "blue_skip_on_red_seven", candidate: "blue skip", top: "red 7", color: color.Red, expectedResult: false},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			candidate := card.New(face(scenario.candidate).Color, face(scenario.candidate).Rank)
			top := card.New(face(scenario.top).Color, face(scenario.top).Rank)
			require.Equal(t, scenario.expectedResult, Playable(candidate, top, scenario.color))
		})
	}
}

func TestPlayableMatchesDefinition(t *testing.T) {
	deck := NewDeck()
	colors := append([]color.Color{color.Wild}, color.Playable...)
	for _, top := range deck[:30] {
		for _, current := range colors {
			for _, candidate := range deck {
				expected := candidate.Color == current || candidate.Rank == top.Rank || candidate.Color == color.Wild
				if Playable(candidate, top, current) != expected {
					t.Fatalf("Playable(%s, %s, %s) != %v", candidate, top, current, expected)
				}
			}
		}
	}
}

func TestPlayableCards(t *testing.T) {
	hand := []card.Card{
		card.New(color.Red, card.Five),
		card.New(color.Blue, card.Seven),
		card.New(color.Green, card.One),
		card.New(color.Wild, card.Wild),
	}
	top := card.New(color.Red, card.Seven)

	playable := PlayableCards(hand, top, color.Red)
	assert.Equal(t, []card.Card{hand[0], hand[1], hand[3]}, playable)
	assert.Nil(t, PlayableCards(hand[2:3], top, color.Red))
}
