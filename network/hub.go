package network

import (
	"context"
	"sync"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno-server/database"
	"github.com/ratel-online/uno-server/model"
	"github.com/ratel-online/uno-server/uno/event"
	"github.com/ratel-online/uno-server/uno/msg"
)

// Sender delivers one response to a connected player.
type Sender interface {
	Send(resp model.Resp) error
}

// Hub keeps the connections watching each game and fans events out to
// them. Every subscriber gets its own snapshot so hands stay private.
type Hub struct {
	sync.Mutex
	states      database.StateSource
	subscribers map[int64]map[int64]Sender
}

func NewHub(states database.StateSource) *Hub {
	return &Hub{
		states:      states,
		subscribers: map[int64]map[int64]Sender{},
	}
}

func (h *Hub) Subscribe(gameID, playerID int64, sender Sender) {
	h.Lock()
	defer h.Unlock()
	subs, ok := h.subscribers[gameID]
	if !ok {
		subs = map[int64]Sender{}
		h.subscribers[gameID] = subs
	}
	subs[playerID] = sender
}

func (h *Hub) Unsubscribe(gameID, playerID int64) {
	h.Lock()
	defer h.Unlock()
	h.unsubscribe(gameID, playerID)
}

// Drop removes the subscriptions a closing connection holds. Subscriptions
// the same player made from another connection stay.
func (h *Hub) Drop(playerID int64, sender Sender) {
	h.Lock()
	defer h.Unlock()
	for gameID, subs := range h.subscribers {
		if subs[playerID] == sender {
			h.unsubscribe(gameID, playerID)
		}
	}
}

func (h *Hub) Subscribers(gameID int64) []int64 {
	h.Lock()
	defer h.Unlock()
	ids := make([]int64, 0, len(h.subscribers[gameID]))
	for id := range h.subscribers[gameID] {
		ids = append(ids, id)
	}
	return ids
}

func (h *Hub) unsubscribe(gameID, playerID int64) {
	subs, ok := h.subscribers[gameID]
	if !ok {
		return
	}
	delete(subs, playerID)
	if len(subs) == 0 {
		delete(h.subscribers, gameID)
	}
}

func (h *Hub) snapshot(gameID int64) map[int64]Sender {
	h.Lock()
	defer h.Unlock()
	subs := make(map[int64]Sender, len(h.subscribers[gameID]))
	for id, sender := range h.subscribers[gameID] {
		subs[id] = sender
	}
	return subs
}

func (h *Hub) broadcast(gameID int64, text string) {
	for playerID, sender := range h.snapshot(gameID) {
		if err := sender.Send(model.NoticeResp(gameID, text)); err != nil {
			log.Errorf("notify player %d of game %d: %v\n", playerID, gameID, err)
		}
	}
}

func (h *Hub) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	h.broadcast(payload.GameID, msg.Message.FirstCardPlayed(payload.Card))
}

func (h *Hub) OnCardPlayed(payload event.CardPlayedPayload) {
	h.broadcast(payload.GameID, msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (h *Hub) OnColorPicked(payload event.ColorPickedPayload) {
	h.broadcast(payload.GameID, msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (h *Hub) OnCardsDrawn(payload event.CardsDrawnPayload) {
	h.broadcast(payload.GameID, msg.Message.PlayerDrewCards(payload.PlayerName, payload.Count))
}

func (h *Hub) OnGameChanged(payload event.GameChangedPayload) {
	if payload.Removed {
		h.broadcast(payload.GameID, msg.Sprintfln("Game %d was closed", payload.GameID))
		h.Lock()
		delete(h.subscribers, payload.GameID)
		h.Unlock()
		return
	}
	for playerID, sender := range h.snapshot(payload.GameID) {
		snapshot, err := h.states.GetState(context.Background(), payload.GameID, playerID)
		if err != nil {
			log.Errorf("state of game %d for player %d: %v\n", payload.GameID, playerID, err)
			continue
		}
		if err = sender.Send(model.SucResp(model.ActionChanged, payload.GameID, snapshot)); err != nil {
			log.Errorf("push game %d to player %d: %v\n", payload.GameID, playerID, err)
		}
	}
	if payload.Winner != "" {
		h.broadcast(payload.GameID, msg.Message.WinnerFound(payload.Winner))
	}
}
