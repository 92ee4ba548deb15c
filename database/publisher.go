package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno-server/uno/event"
	"github.com/ratel-online/uno-server/uno/game"
	"github.com/redis/go-redis/v9"
)

const publishTimeout = 2 * time.Second

// StateSource returns a game snapshot as seen by requesterID. A requester
// that is not seated gets the public view.
type StateSource interface {
	GetState(ctx context.Context, gameID, requesterID int64) (*game.Snapshot, error)
}

// Publisher mirrors the public view of every game into redis: the latest
// snapshot is kept under StateKey and each change is published on Channel.
// A snapshot older than the last one written for the same game is dropped.
type Publisher struct {
	sync.Mutex
	client   redis.Cmdable
	states   StateSource
	ttl      time.Duration
	versions map[int64]int
}

func NewPublisher(client redis.Cmdable, states StateSource, ttl time.Duration) *Publisher {
	return &Publisher{client: client, states: states, ttl: ttl, versions: map[int64]int{}}
}

func DialRedis(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return client, nil
}

func StateKey(gameID int64) string {
	return fmt.Sprintf("uno:game:%d:state", gameID)
}

func Channel(gameID int64) string {
	return fmt.Sprintf("uno:game:%d", gameID)
}

func (p *Publisher) OnGameChanged(payload event.GameChangedPayload) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := p.Publish(ctx, payload); err != nil {
		log.Errorf("publish game %d: %v\n", payload.GameID, err)
	}
}

func (p *Publisher) Publish(ctx context.Context, payload event.GameChangedPayload) error {
	p.Lock()
	defer p.Unlock()
	if payload.Removed {
		delete(p.versions, payload.GameID)
		if err := p.client.Del(ctx, StateKey(payload.GameID)).Err(); err != nil {
			return err
		}
		return p.client.Publish(ctx, Channel(payload.GameID), `{"removed":true}`).Err()
	}
	snapshot, err := p.states.GetState(ctx, payload.GameID, 0)
	if err != nil {
		return err
	}
	if last, ok := p.versions[payload.GameID]; ok && snapshot.Version < last {
		return nil
	}
	p.versions[payload.GameID] = snapshot.Version
	body := json.Marshal(snapshot)
	if err = p.client.Set(ctx, StateKey(payload.GameID), body, p.ttl).Err(); err != nil {
		return err
	}
	return p.client.Publish(ctx, Channel(payload.GameID), body).Err()
}

// Latest returns the last snapshot stored for a game.
func (p *Publisher) Latest(ctx context.Context, gameID int64) ([]byte, error) {
	body, err := p.client.Get(ctx, StateKey(gameID)).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("no snapshot for game %d", gameID)
	}
	return body, err
}
