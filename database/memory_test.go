package database

import (
	"context"
	"sync"
	"testing"

	"github.com/ratel-online/uno-server/consts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryPlayers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPlayers()

	_, err := store.Get(ctx, 1)
	assert.Equal(t, consts.ErrorsPlayerNotFound, err)

	p, err := store.Register(ctx, 1, "Ann")
	require.NoError(t, err)
	assert.Equal(t, &Player{ID: 1, Name: "Ann"}, p)

	_, err = store.Register(ctx, 1, "Annie")
	require.NoError(t, err)
	_, err = store.Register(ctx, 2, "Bob")
	require.NoError(t, err)

	require.NoError(t, store.AddScores(ctx, map[int64]int{1: 70, 2: 40}))
	require.NoError(t, store.AddScores(ctx, map[int64]int{1: 10}))

	p, err = store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &Player{ID: 1, Name: "Annie", Score: 80}, p)
}

func TestMemoryPlayersAddScoresIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPlayers()
	_, err := store.Register(ctx, 1, "Ann")
	require.NoError(t, err)

	err = store.AddScores(ctx, map[int64]int{1: 70, 9: 10})
	assert.Equal(t, consts.KindNotFound, consts.KindOf(err))

	p, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, p.Score)
}

func TestMemoryPlayersConcurrentScores(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryPlayers()
	_, err := store.Register(ctx, 1, "Ann")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.AddScores(ctx, map[int64]int{1: 2})
		}()
	}
	wg.Wait()

	p, err := store.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100), p.Score)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "uno:game:7:state", StateKey(7))
	assert.Equal(t, "uno:game:7", Channel(7))
}
