package service

import (
	"context"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/model"
	"github.com/ratel-online/uno-server/render"
	"github.com/ratel-online/uno-server/room"
	"github.com/ratel-online/uno-server/uno/card"
	"github.com/ratel-online/uno-server/uno/player"
)

// servlet handles one action and returns the game it touched with the
// response payload.
type servlet func(ctx context.Context, s *Service, playerID int64, req model.Req) (int64, interface{}, error)

var logError = log.Errorf

var servlets = map[string]servlet{
	model.ActionList:      listGames,
	model.ActionCreate:    createGame,
	model.ActionJoin:      joinGame,
	model.ActionReady:     markReady,
	model.ActionLeave:     leaveGame,
	model.ActionStart:     startGame,
	model.ActionPlay:      playCard,
	model.ActionDraw:      drawCard,
	model.ActionUno:       declareUno,
	model.ActionChallenge: challengeUno,
	model.ActionState:     getState,
	model.ActionHistory:   getHistory,
	model.ActionEnd:       endGame,
	model.ActionHint:      hint,
}

type Service struct {
	manager *room.Manager
}

func New(manager *room.Manager) *Service {
	return &Service{manager: manager}
}

// Handle runs one request on behalf of an authenticated player.
func (s *Service) Handle(ctx context.Context, playerID int64, req model.Req) model.Resp {
	handler, ok := servlets[req.Action]
	if !ok {
		return model.ErrResp(req.Action, req.GameID, consts.ErrorsUnknownAction)
	}
	gameID, data, err := handler(ctx, s, playerID, req)
	if err != nil {
		if consts.KindOf(err) == consts.KindInternal {
			logError("action %s on game %d by player %d: %v\n", req.Action, req.GameID, playerID, err)
		}
		return model.ErrResp(req.Action, req.GameID, err)
	}
	resp := model.SucResp(req.Action, gameID, data)
	if text, ok := data.(string); ok {
		resp.Data, resp.Msg = nil, text
	}
	return resp
}

func listGames(ctx context.Context, s *Service, playerID int64, req model.Req) (int64, interface{}, error) {
	rooms := s.manager.ListGames(ctx)
	if req.Text {
		return 0, render.RoomList(rooms), nil
	}
	return 0, rooms, nil
}

func createGame(ctx context.Context, s *Service, playerID int64, req model.Req) (int64, interface{}, error) {
	gameID, err := s.manager.CreateGame(ctx, req.Title, playerID, req.MaxPlayers)
	if err != nil {
		return 0, nil, err
	}
	return gameID, map[string]int64{"game_id": gameID}, nil
}

func joinGame(ctx context.Context, s *Service, playerID int64, req model.Req) (int64, interface{}, error) {
	seat, err := s.manager.JoinGame(ctx, req.GameID, playerID)
	return req.GameID, seat, err
}

func markReady(ctx context.Context, s *Service, playerID int64, req model.Req) (int64, interface{}, error) {
	seat, err := s.manager.MarkReady(ctx, req.GameID, playerID)
	return req.GameID, seat, err
}

func leaveGame(ctx context.Context, s *Service, playerID int64, req model.Req) (int64, interface{}, error) {
	return req.GameID, nil, s.manager.LeaveGame(ctx, req.GameID, playerID)
}

func startGame(ctx context.Context, s *Service, playerID int64, req model.Req) (int64, interface{}, error) {
	result, err := s.manager.StartGame(ctx, req.GameID, playerID, req.CardsPerPlayer)
	return req.GameID, result, err
}

func playCard(ctx context.Context, s *Service, playerID int64, req model.Req) (int64, interface{}, error) {
	face, err := card.ParseFace(req.Card)
	if err != nil {
		return req.GameID, nil, err
	}
	result, err := s.manager.PlayCard(ctx, req.GameID, playerID, face, req.Color)
	return req.GameID, result, err
}

func drawCard(ctx context.Context, s *Service, playerID int64, req model.Req) (int64, interface{}, error) {
	result, err := s.manager.DrawCard(ctx, req.GameID, playerID)
	return req.GameID, result, err
}

func declareUno(ctx context.Context, s *Service, playerID int64, req model.Req) (int64, interface{}, error) {
	seat, err := s.manager.DeclareUno(ctx, req.GameID, playerID)
	return req.GameID, seat, err
}

func challengeUno(ctx context.Context, s *Service, playerID int64, req model.Req) (int64, interface{}, error) {
	result, err := s.manager.ChallengeUno(ctx, req.GameID, playerID)
	return req.GameID, result, err
}

func getState(ctx context.Context, s *Service, playerID int64, req model.Req) (int64, interface{}, error) {
	snapshot, err := s.manager.GetState(ctx, req.GameID, playerID)
	if err != nil {
		return req.GameID, nil, err
	}
	if req.Text {
		return req.GameID, render.Snapshot(snapshot), nil
	}
	return req.GameID, snapshot, nil
}

func getHistory(ctx context.Context, s *Service, playerID int64, req model.Req) (int64, interface{}, error) {
	history, err := s.manager.GetHistory(ctx, req.GameID)
	if err != nil {
		return req.GameID, nil, err
	}
	if req.Text {
		return req.GameID, render.History(history), nil
	}
	return req.GameID, history, nil
}

func endGame(ctx context.Context, s *Service, playerID int64, req model.Req) (int64, interface{}, error) {
	result, err := s.manager.EndGame(ctx, req.GameID, playerID)
	return req.GameID, result, err
}

func hint(ctx context.Context, s *Service, playerID int64, req model.Req) (int64, interface{}, error) {
	advisor, err := player.New(req.Advisor)
	if err != nil {
		return req.GameID, nil, err
	}
	snapshot, err := s.manager.GetState(ctx, req.GameID, playerID)
	if err != nil {
		return req.GameID, nil, err
	}
	suggestion, err := player.Advise(advisor, snapshot)
	return req.GameID, suggestion, err
}
