package model

import (
	"github.com/ratel-online/uno-server/consts"
)

const (
	ActionList      = "list"
	ActionCreate    = "create"
	ActionJoin      = "join"
	ActionReady     = "ready"
	ActionLeave     = "leave"
	ActionStart     = "start"
	ActionPlay      = "play"
	ActionDraw      = "draw"
	ActionUno       = "uno"
	ActionChallenge = "challenge"
	ActionState     = "state"
	ActionHistory   = "history"
	ActionEnd       = "end"
	ActionHint      = "hint"

	ActionWelcome = "welcome"
	ActionNotice  = "notice"
	ActionChanged = "changed"

	internalMessage = "internal error"
)

// AuthInfo is the first packet a client sends.
type AuthInfo struct {
	Token string `json:"token"`
}

// Req is one client request. Card uses the "color rank" form, for example
// "red 7" or "wild wild_draw_four".
type Req struct {
	Action         string `json:"action"`
	GameID         int64  `json:"game_id,omitempty"`
	Title          string `json:"title,omitempty"`
	MaxPlayers     int    `json:"max_players,omitempty"`
	CardsPerPlayer int    `json:"cards_per_player,omitempty"`
	Card           string `json:"card,omitempty"`
	Color          string `json:"color,omitempty"`
	Advisor        string `json:"advisor,omitempty"`
	Text           bool   `json:"text,omitempty"`
}

type Resp struct {
	Action string      `json:"action"`
	Code   int         `json:"code"`
	Kind   string      `json:"kind,omitempty"`
	Msg    string      `json:"msg,omitempty"`
	GameID int64       `json:"game_id,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

func (r Resp) OK() bool {
	return r.Code == 0
}

func SucResp(action string, gameID int64, data interface{}) Resp {
	return Resp{Action: action, GameID: gameID, Data: data}
}

// ErrResp turns err into a response. Errors without a known kind are
// reported as internal without their text.
func ErrResp(action string, gameID int64, err error) Resp {
	kind := consts.KindOf(err)
	resp := Resp{Action: action, GameID: gameID, Code: kind.Code(), Kind: kind.String(), Msg: err.Error()}
	if kind == consts.KindInternal {
		resp.Msg = internalMessage
	}
	return resp
}

func NoticeResp(gameID int64, msg string) Resp {
	return Resp{Action: ActionNotice, GameID: gameID, Msg: msg}
}
