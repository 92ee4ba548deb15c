package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/room"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/ratel-online/uno-server/uno/msg"
)

func Welcome(name string) string {
	return msg.Message.Welcome() + fmt.Sprintf("Hi %s, take a seat! \n", name)
}

func RoomList(rooms []room.Summary) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("%-10s%-24s%-10s%-14s\n", "ID", "Title", "Players", "Status"))
	for _, r := range rooms {
		buf.WriteString(fmt.Sprintf("%-10d%-24s%-10s%-14s\n", r.ID, r.Title, fmt.Sprintf("%d/%d", r.Players, r.MaxPlayers), r.Status))
	}
	return buf.String()
}

// Snapshot draws the table for a terminal client.
func Snapshot(s *game.Snapshot) string {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("[%d] %s (%s)\n", s.GameID, s.Title, s.Status))
	if s.TopCard != nil {
		buf.WriteString(fmt.Sprintf("Last played card: %s  color: %s\n", s.TopCard.Paint(), s.Color.Paint(s.Color.String())))
	}
	for i, p := range s.Players {
		marker := "  "
		if i == s.CurrentIndex && s.Status == consts.GameStatusInProgress {
			marker = "> "
		}
		uno := ""
		if p.SaidUno {
			uno = " UNO!"
		}
		buf.WriteString(fmt.Sprintf("%s%-12s %2d card(s) %3d pts%s\n", marker, p.Name, p.HandSize, p.Score, uno))
	}
	buf.WriteString(fmt.Sprintf("Direction: %s  Deck: %d\n", s.Direction, s.DeckCount))
	if len(s.Hand) > 0 {
		buf.WriteString(fmt.Sprintf("Your hand: %s\n", cards(s.Hand)))
	}
	if len(s.Playable) > 0 {
		buf.WriteString(fmt.Sprintf("Playable: %s\n", cards(s.Playable)))
	}
	return buf.String()
}

func History(entries []game.LogEntry) string {
	buf := bytes.Buffer{}
	for _, e := range entries {
		buf.WriteString(fmt.Sprintf("%s %-12s %s\n", e.Timestamp.Format("15:04:05"), e.PlayerName, e.Action))
	}
	return buf.String()
}

func cards(list []card.Card) string {
	painted := make([]string, 0, len(list))
	for _, c := range list {
		painted = append(painted, c.Paint())
	}
	return strings.Join(painted, " ")
}
