package player

import (
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/game"
)

// goodAdvisor keeps the hand flexible: it plays the card that leaves the
// most follow-ups and names the color it holds most of.
type goodAdvisor struct{}

func (goodAdvisor) PickColor(hand []card.Card) color.Color {
	counts := make(map[color.Color]int)
	for _, c := range hand {
		if c.Color.IsPlayable() {
			counts[c.Color]++
		}
	}
	best, bestCount := color.Playable[0], 0
	for _, c := range color.Playable {
		if counts[c] > bestCount {
			best, bestCount = c, counts[c]
		}
	}
	return best
}

func (a goodAdvisor) Play(playable []card.Card, hand []card.Card) card.Card {
	best, maxSpare := 0, -1
	for i, candidate := range playable {
		next := candidate.Color
		if next.IsWild() {
			next = a.PickColor(hand)
		}
		spare := 0
		for _, c := range hand {
			if c.ID != candidate.ID && game.Playable(c, candidate, next) {
				spare++
			}
		}
		if spare > maxSpare {
			best, maxSpare = i, spare
		}
	}
	return playable[best]
}
