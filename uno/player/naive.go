package player

import (
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

type naiveAdvisor struct{}

func (naiveAdvisor) PickColor(hand []card.Card) color.Color {
	for _, c := range hand {
		if c.Color.IsPlayable() {
			return c.Color
		}
	}
	return color.Playable[0]
}

func (naiveAdvisor) Play(playable []card.Card, hand []card.Card) card.Card {
	return playable[0]
}
