package card

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/uno/card/action"
	"github.com/ratel-online/uno-server/uno/card/color"
)

type Rank string

const (
	Zero         Rank = "0"
	One          Rank = "1"
	Two          Rank = "2"
	Three        Rank = "3"
	Four         Rank = "4"
	Five         Rank = "5"
	Six          Rank = "6"
	Seven        Rank = "7"
	Eight        Rank = "8"
	Nine         Rank = "9"
	Skip         Rank = "skip"
	Reverse      Rank = "reverse"
	DrawTwo      Rank = "draw_two"
	Wild         Rank = "wild"
	WildDrawFour Rank = "wild_draw_four"
)

var NumberRanks = []Rank{Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine}

var ActionRanks = []Rank{Skip, Reverse, DrawTwo}

var WildRanks = []Rank{Wild, WildDrawFour}

var labels = map[Rank]string{
	Skip:         "(/)",
	Reverse:      "<=>",
	DrawTwo:      "+2!",
	Wild:         "(*)",
	WildDrawFour: "+4!",
}

func (r Rank) String() string {
	return string(r)
}

func (r Rank) IsNumber() bool {
	return len(r) == 1 && r[0] >= '0' && r[0] <= '9'
}

func (r Rank) IsWild() bool {
	return r == Wild || r == WildDrawFour
}

// Actions lists the effects of a rank in the order they apply. Number ranks
// have none.
func (r Rank) Actions() []action.Action {
	switch r {
	case Skip:
		return []action.Action{action.Skip{}}
	case Reverse:
		return []action.Action{action.Reverse{}}
	case DrawTwo:
		return []action.Action{action.DrawCards{Amount: 2}, action.Skip{}}
	case Wild:
		return []action.Action{action.PickColor{}}
	case WildDrawFour:
		return []action.Action{action.PickColor{}, action.DrawCards{Amount: 4}, action.Skip{}}
	}
	return nil
}

func ParseRank(s string) (Rank, error) {
	r := Rank(strings.ToLower(strings.TrimSpace(s)))
	if r.IsNumber() || r.IsWild() {
		return r, nil
	}
	for _, a := range ActionRanks {
		if r == a {
			return r, nil
		}
	}
	return "", consts.Errorf(consts.KindValidation, "Invalid card rank: %s", s)
}

// Face is what a card shows: its color and rank. Two physical cards may
// share a face.
type Face struct {
	Color color.Color `json:"color"`
	Rank  Rank        `json:"rank"`
}

// ParseFace reads the "color rank" form used by clients, for example
// "red 7", "blue draw_two" or "wild wild_draw_four". A bare wild rank is
// accepted as well.
func ParseFace(s string) (Face, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		r, err := ParseRank(fields[0])
		if err != nil || !r.IsWild() {
			return Face{}, consts.Errorf(consts.KindValidation, "Invalid card: %s", s)
		}
		return Face{Color: color.Wild, Rank: r}, nil
	case 2:
		c, err := color.ByName(fields[0])
		if err != nil {
			return Face{}, err
		}
		r, err := ParseRank(fields[1])
		if err != nil {
			return Face{}, err
		}
		if c.IsWild() != r.IsWild() {
			return Face{}, consts.Errorf(consts.KindValidation, "Invalid card: %s", s)
		}
		return Face{Color: c, Rank: r}, nil
	}
	return Face{}, consts.Errorf(consts.KindValidation, "Invalid card: %s", s)
}

func (f Face) String() string {
	return fmt.Sprintf("%s %s", f.Color, f.Rank)
}

// Paint renders the face for terminals.
func (f Face) Paint() string {
	if label, ok := labels[f.Rank]; ok {
		return f.Color.Paint(label)
	}
	return f.Color.Paintf("[%s]", f.Rank)
}

type Card struct {
	ID uuid.UUID `json:"id"`
	Face
}

func New(c color.Color, r Rank) Card {
	return Card{ID: uuid.New(), Face: Face{Color: c, Rank: r}}
}

func (c Card) Is(face Face) bool {
	return c.Face == face
}
