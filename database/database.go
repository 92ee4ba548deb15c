package database

import (
	"context"

	"github.com/ratel-online/core/log"
)

// Open returns a postgres backed store when dsn is set and an in-memory
// store otherwise.
func Open(ctx context.Context, dsn string) (PlayerStore, error) {
	if dsn == "" {
		log.Info("player store: memory")
		return NewMemoryPlayers(), nil
	}
	store, err := NewPostgresPlayers(ctx, dsn)
	if err != nil {
		return nil, err
	}
	log.Info("player store: postgres")
	return store, nil
}
