package msg

import (
	"fmt"

	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/card/color"
)

// Message renders the notices pushed to everybody sitting in a room.
var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) FirstCardPlayed(c card.Card) string {
	return Sprintfln("First card is %s", c.Paint())
}

func (m MessageWriter) PlayerPlayedCard(playerName string, c card.Card) string {
	return Sprintfln("%s played %s!", playerName, c.Paint())
}

func (m MessageWriter) PlayerPickedColor(playerName string, c color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, c.Paint(c.String()))
}

func (m MessageWriter) PlayerDrewCards(playerName string, count int) string {
	if count == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, count)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

// Action renders the free text stored in a game's turn log.
var Action = ActionWriter{}

type ActionWriter struct{}

func (a ActionWriter) Joined() string {
	return "Joined the game"
}

func (a ActionWriter) Left() string {
	return "Left the game"
}

func (a ActionWriter) Ready() string {
	return "Is ready"
}

func (a ActionWriter) Started(opening card.Card) string {
	return Sprintf("Started the game, opening card is %s", opening)
}

func (a ActionWriter) Played(face card.Face) string {
	return Sprintf("played %s %s", face.Color, face.Rank)
}

func (a ActionWriter) Skipped(playerName string) string {
	return Sprintf("Skipped %s's turn with a Skip card", playerName)
}

func (a ActionWriter) Reversed(direction fmt.Stringer) string {
	return Sprintf("Reversed the game direction to %s", direction)
}

func (a ActionWriter) DrewAndSkipped(playerName string, count int) string {
	return Sprintf("%s drew %d cards and was skipped", playerName, count)
}

func (a ActionWriter) ChangedColor(c color.Color) string {
	return Sprintf("Changed color to %s with a Wild card", c)
}

func (a ActionWriter) ChangedColorAndDrew(c color.Color, playerName string) string {
	return Sprintf("Changed color to %s with a Wild Draw Four card. %s drew 4 cards and was skipped.", c, playerName)
}

func (a ActionWriter) DrewCard() string {
	return "drew a card from the deck"
}

func (a ActionWriter) SaidUno() string {
	return "Said UNO"
}

func (a ActionWriter) Challenged(playerName string) string {
	return Sprintf("Successfully challenged %s", playerName)
}

func (a ActionWriter) Won() string {
	return "Won the game"
}
