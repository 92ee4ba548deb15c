package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno-server/auth"
	"github.com/ratel-online/uno-server/config"
	"github.com/ratel-online/uno-server/database"
	"github.com/ratel-online/uno-server/network"
	"github.com/ratel-online/uno-server/room"
	"github.com/ratel-online/uno-server/service"
	"github.com/ratel-online/uno-server/uno/event"
)

var configPath = flag.String("config", "config.yaml", "path of the yaml config file")

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	flag.Parse()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error(err)
		return
	}
	ctx := context.Background()
	players, err := database.Open(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error(err)
		return
	}
	defer players.Close()

	bus := event.NewBus()
	manager := room.NewManager(players, bus)
	if cfg.Redis.Addr != "" {
		client, err := database.DialRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Error(err)
			return
		}
		defer client.Close()
		bus.GameChanged.AddListener(database.NewPublisher(client, manager, cfg.Redis.TTL))
		log.Infof("publishing game states to redis %s\n", cfg.Redis.Addr)
	}
	hub := network.NewHub(manager)
	bus.AddListener(hub)
	async.Async(func() {
		manager.Run(ctx, cfg.Rules.SweepInterval, cfg.Rules.FinishedTTL, cfg.Rules.IdleTTL)
	})

	gateway := network.NewGateway(auth.NewVerifier(cfg.Auth.Secret), players, service.New(manager), hub, cfg.Rules.CardsPerPlayer)
	if cfg.Server.WSAddr != "" {
		async.Async(func() {
			log.Error(network.NewWebsocketServer(cfg.Server.WSAddr, gateway).Serve())
		})
	}
	log.Error(network.NewTcpServer(cfg.Server.TCPAddr, gateway).Serve())
}
