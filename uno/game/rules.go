package game

import (
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

// Playable reports whether candidate may go on top when the active color is
// current.
func Playable(candidate card.Card, top card.Card, current color.Color) bool {
	return candidate.Color == current || candidate.Rank == top.Rank || candidate.Color == color.Wild
}

func PlayableCards(hand []card.Card, top card.Card, current color.Color) []card.Card {
	var playable []card.Card
	for _, c := range hand {
		if Playable(c, top, current) {
			playable = append(playable, c)
		}
	}
	return playable
}
