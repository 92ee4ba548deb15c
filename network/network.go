package network

import (
	"context"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno-server/auth"
	"github.com/ratel-online/uno-server/consts"
	"github.com/ratel-online/uno-server/database"
	"github.com/ratel-online/uno-server/model"
	"github.com/ratel-online/uno-server/render"
	"github.com/ratel-online/uno-server/service"
)

// Network is interface of all kinds of network.
type Network interface {
	Serve() error
}

// Gateway turns connections into authenticated sessions and feeds their
// requests to the service.
type Gateway struct {
	verifier       *auth.Verifier
	players        database.PlayerStore
	service        *service.Service
	hub            *Hub
	cardsPerPlayer int
}

func NewGateway(verifier *auth.Verifier, players database.PlayerStore, svc *service.Service, hub *Hub, cardsPerPlayer int) *Gateway {
	return &Gateway{
		verifier:       verifier,
		players:        players,
		service:        svc,
		hub:            hub,
		cardsPerPlayer: cardsPerPlayer,
	}
}

type session struct {
	sync.Mutex
	conn *network.Conn
}

func (s *session) Send(resp model.Resp) error {
	s.Lock()
	defer s.Unlock()
	return s.conn.Write(protocol.Packet{Body: json.Marshal(resp)})
}

func (g *Gateway) handle(rwc protocol.ReadWriteCloser) error {
	c := network.Wrapper(rwc)
	defer func() {
		err := c.Close()
		if err != nil {
			log.Error(err)
		}
	}()
	log.Info("new player connected! ")
	authInfo, err := loginAuth(c)
	if err != nil {
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}
	identity, err := g.verifier.Verify(authInfo.Token)
	if err != nil {
		_ = c.Write(protocol.ErrorPacket(err))
		return err
	}
	ctx := context.Background()
	sess := &session{conn: c}
	player, err := g.players.Register(ctx, identity.ID, identity.Name)
	if err != nil {
		_ = sess.Send(loginFailed(identity.ID, err))
		return err
	}
	log.Infof("player auth accessed, %d:%s\n", player.ID, player.Name)
	defer g.hub.Drop(player.ID, sess)
	if err = sess.Send(model.Resp{Action: model.ActionWelcome, Msg: render.Welcome(player.Name), Data: player}); err != nil {
		return err
	}
	for {
		packet, err := c.Read()
		if err != nil {
			log.Infof("player %d disconnected: %v\n", player.ID, err)
			return nil
		}
		if err = sess.Send(g.serve(ctx, player.ID, packet, sess)); err != nil {
			return err
		}
	}
}

func (g *Gateway) serve(ctx context.Context, playerID int64, packet *protocol.Packet, sess Sender) model.Resp {
	req := model.Req{}
	if err := packet.Unmarshal(&req); err != nil {
		return model.ErrResp("", 0, consts.ErrorsInputInvalid)
	}
	if req.Action == model.ActionStart && req.CardsPerPlayer == 0 {
		req.CardsPerPlayer = g.cardsPerPlayer
	}
	resp := g.service.Handle(ctx, playerID, req)
	if !resp.OK() {
		return resp
	}
	switch req.Action {
	case model.ActionCreate, model.ActionJoin, model.ActionState:
		g.hub.Subscribe(resp.GameID, playerID, sess)
	case model.ActionLeave:
		g.hub.Unsubscribe(req.GameID, playerID)
	}
	return resp
}

// loginFailed logs why a verified player could not be let in and builds
// the reply, hiding internal causes.
func loginFailed(playerID int64, err error) model.Resp {
	log.Errorf("register player %d: %v\n", playerID, err)
	return model.ErrResp(model.ActionWelcome, 0, err)
}

func loginAuth(c *network.Conn) (*model.AuthInfo, error) {
	authChan := make(chan *model.AuthInfo, 1)
	async.Async(func() {
		packet, err := c.Read()
		if err != nil {
			log.Error(err)
			return
		}
		authInfo := &model.AuthInfo{}
		err = packet.Unmarshal(authInfo)
		if err != nil {
			log.Error(err)
			return
		}
		authChan <- authInfo
	})
	select {
	case authInfo := <-authChan:
		return authInfo, nil
	case <-time.After(consts.LoginTimeout):
		return nil, consts.ErrorsTimeout
	}
}
