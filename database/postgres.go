package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ratel-online/uno-server/consts"
)

const schema = `
CREATE TABLE IF NOT EXISTS players (
	id    BIGINT PRIMARY KEY,
	name  TEXT   NOT NULL,
	score BIGINT NOT NULL DEFAULT 0
)`

// PostgresPlayers keeps players in a postgres table.
type PostgresPlayers struct {
	pool *pgxpool.Pool
}

func NewPostgresPlayers(ctx context.Context, dsn string) (*PostgresPlayers, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err = pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate players: %w", err)
	}
	return &PostgresPlayers{pool: pool}, nil
}

func (p *PostgresPlayers) Register(ctx context.Context, id int64, name string) (*Player, error) {
	player := &Player{}
	err := p.pool.QueryRow(ctx, `
		INSERT INTO players (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name
		RETURNING id, name, score`, id, name).Scan(&player.ID, &player.Name, &player.Score)
	if err != nil {
		return nil, fmt.Errorf("register player %d: %w", id, err)
	}
	return player, nil
}

func (p *PostgresPlayers) Get(ctx context.Context, id int64) (*Player, error) {
	player := &Player{}
	err := p.pool.QueryRow(ctx, `SELECT id, name, score FROM players WHERE id = $1`, id).
		Scan(&player.ID, &player.Name, &player.Score)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, consts.ErrorsPlayerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get player %d: %w", id, err)
	}
	return player, nil
}

func (p *PostgresPlayers) AddScores(ctx context.Context, deltas map[int64]int) error {
	return pgx.BeginFunc(ctx, p.pool, func(tx pgx.Tx) error {
		for id, delta := range deltas {
			tag, err := tx.Exec(ctx, `UPDATE players SET score = score + $2 WHERE id = $1`, id, delta)
			if err != nil {
				return fmt.Errorf("add score to player %d: %w", id, err)
			}
			if tag.RowsAffected() == 0 {
				return consts.ErrorsPlayerNotFound
			}
		}
		return nil
	})
}

func (p *PostgresPlayers) Close() {
	p.pool.Close()
}
