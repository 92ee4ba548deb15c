package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

type SeatView struct {
	Seat
	HandSize int `json:"hand_size"`
	Score    int `json:"score"`
}

// Snapshot is a game as one player may see it: every hand is reduced to
// its size except the requester's own.
type Snapshot struct {
	GameID        int64       `json:"game_id"`
	Title         string      `json:"title"`
	Status        string      `json:"status"`
	Version       int         `json:"version"`
	CreatorID     int64       `json:"creator_id"`
	MaxPlayers    int         `json:"max_players"`
	Color         color.Color `json:"color"`
	Direction     Direction   `json:"direction"`
	CurrentIndex  int         `json:"current_index"`
	CurrentPlayer string      `json:"current_player"`
	Players       []SeatView  `json:"players"`
	TopCard       *card.Card  `json:"top_card,omitempty"`
	DeckCount     int         `json:"deck_count"`
	Hand          []card.Card `json:"hand"`
	Playable      []card.Card `json:"playable"`
	YourTurn      bool        `json:"your_turn"`
	History       []LogEntry  `json:"history"`
}

func (g *Game) Snapshot(requesterID int64) *Snapshot {
	s := &Snapshot{
		GameID:       g.ID,
		Title:        g.Title,
		Status:       g.Status,
		Version:      g.Version(),
		CreatorID:    g.CreatorID,
		MaxPlayers:   g.MaxPlayers,
		Color:        g.Color,
		Direction:    g.turns.Direction,
		CurrentIndex: g.turns.Current,
		DeckCount:    g.store.DeckCount(),
		Hand:         []card.Card{},
		Playable:     []card.Card{},
		History:      g.History(),
	}
	for _, seat := range g.seats {
		s.Players = append(s.Players, SeatView{
			Seat:     *seat,
			HandSize: g.store.HandSize(seat.PlayerID),
			Score:    g.scores[seat.PlayerID],
		})
	}
	if len(g.seats) > 0 {
		s.CurrentPlayer = g.seats[g.turns.Current].Name
	}
	top, err := g.store.TopOfDiscard()
	if err == nil {
		s.TopCard = &top
	}
	if g.seat(requesterID) != nil {
		s.Hand = g.store.HandOf(requesterID)
		if err == nil && len(g.seats) > 0 && g.seats[g.turns.Current].PlayerID == requesterID {
			s.YourTurn = g.Status == consts.GameStatusInProgress
			if playable := PlayableCards(s.Hand, top, g.Color); playable != nil {
				s.Playable = playable
			}
		}
	}
	return s
}

func (s Snapshot) String() string {
	var lines []string
	if s.TopCard != nil {
		lines = append(lines, fmt.Sprintf("Last played card: %s (color %s)", s.TopCard, s.Color))
	}

	var playerStatuses []string
	for _, p := range s.Players {
		status := fmt.Sprintf("%s (%d card(s))", p.Name, p.HandSize)
		if p.SaidUno {
			status += " UNO"
		}
		playerStatuses = append(playerStatuses, status)
	}
	lines = append(lines, fmt.Sprintf("Turn order: %s, %s", strings.Join(playerStatuses, ", "), s.Direction))
	if s.CurrentPlayer != "" {
		lines = append(lines, fmt.Sprintf("Current player: %s", s.CurrentPlayer))
	}

	lines = append(lines, fmt.Sprintf("Your hand: %s", s.Hand))

	return strings.Join(lines, "\n")
}
