package render

import (
	"testing"
	"time"

	"github.com/ratel-online/uno-server/room"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/stretchr/testify/assert"
)

func TestRoomList(t *testing.T) {
	text := RoomList([]room.Summary{{ID: 3, Title: "friday", Status: "waiting", Players: 2, MaxPlayers: 4}})
	assert.Contains(t, text, "friday")
	assert.Contains(t, text, "2/4")
}

func TestSnapshot(t *testing.T) {
	top := card.New(color.Red, card.Seven)
	text := Snapshot(&game.Snapshot{
		GameID:    1,
		Title:     "friday",
		Status:    "in_progress",
		Color:     color.Red,
		Direction: game.Clockwise,
		Players: []game.SeatView{
			{Seat: game.Seat{Name: "Ann", SaidUno: true}, HandSize: 1, Score: 60},
			{Seat: game.Seat{Name: "Bob", Position: 1}, HandSize: 7},
		},
		TopCard:   &top,
		DeckCount: 90,
		Hand:      []card.Card{card.New(color.Red, card.Five)},
	})

	assert.Contains(t, text, "[1] friday (in_progress)")
	assert.Contains(t, text, "> Ann")
	assert.Contains(t, text, "UNO!")
	assert.Contains(t, text, "Deck: 90")
	assert.Contains(t, text, "Your hand:")
}

func TestHistory(t *testing.T) {
	text := History([]game.LogEntry{{PlayerName: "Ann", Action: "played red 5", Timestamp: time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)}})
	assert.Equal(t, "12:30:00 Ann          played red 5\n", text)
}
