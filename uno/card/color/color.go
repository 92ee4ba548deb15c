package color

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/ratel-online/uno-server/consts"
)

type Color string

const (
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"
	Wild   Color = "wild"
)

// Playable lists the colors a wild card may be declared as.
var Playable = []Color{Red, Blue, Green, Yellow}

var Stdout io.Writer = color.Output

var painters = map[Color]func(string, ...interface{}) string{
	Red:    color.New(color.FgHiRed).SprintfFunc(),
	Blue:   color.New(color.FgHiCyan).SprintfFunc(),
	Green:  color.New(color.FgHiGreen).SprintfFunc(),
	Yellow: color.New(color.FgHiYellow).SprintfFunc(),
	Wild:   color.New(color.FgHiMagenta).SprintfFunc(),
}

func (c Color) String() string {
	return string(c)
}

func (c Color) Paint(text string) string {
	return c.Paintf("%s", text)
}

func (c Color) Paintf(format string, args ...interface{}) string {
	painter, ok := painters[c]
	if !ok {
		return fmt.Sprintf(format, args...)
	}
	return painter(format, args...)
}

func (c Color) IsWild() bool {
	return c == Wild
}

func (c Color) IsPlayable() bool {
	for _, p := range Playable {
		if c == p {
			return true
		}
	}
	return false
}

// ByName resolves a card color, ignoring case.
func ByName(name string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(name)))
	if c == Wild || c.IsPlayable() {
		return c, nil
	}
	return "", consts.Errorf(consts.KindValidation, "Invalid card color: %s", name)
}

// Choose resolves the color declared with a wild card. Only the exact
// lowercase names are accepted.
func Choose(name string) (Color, error) {
	c := Color(name)
	if !c.IsPlayable() {
		return "", consts.Errorf(consts.KindValidation, "Invalid color: %s. Must be one of: red, blue, green, yellow", name)
	}
	return c, nil
}
