package persist

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MatchRow is the stored outcome of one match. Winner is empty for matches
// cut short before either side lost.
type MatchRow struct {
	ID              uuid.UUID
	Level           string
	Winner          string
	Frames          uint64
	Duration        time.Duration
	PlayerHP        int32
	EnemyHP         int32
	Kills           int
	BlocksDestroyed int
	StartedAt       time.Time
	EndedAt         time.Time
}

type MatchRepo struct {
	db *DB
}

func NewMatchRepo(db *DB) *MatchRepo {
	return &MatchRepo{db: db}
}

// Save inserts row, assigning a fresh id when it has none.
func (r *MatchRepo) Save(ctx context.Context, row *MatchRow) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO matches (id, level, winner, frames, duration_ms, player_hp, enemy_hp,
		                      kills, blocks_destroyed, started_at, ended_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		row.ID, row.Level, row.Winner, int64(row.Frames), row.Duration.Milliseconds(),
		row.PlayerHP, row.EnemyHP, row.Kills, row.BlocksDestroyed, row.StartedAt, row.EndedAt,
	)
	return err
}

const matchColumns = `id, level, winner, frames, duration_ms, player_hp, enemy_hp,
	kills, blocks_destroyed, started_at, ended_at`

func scanMatch(row pgx.Row) (*MatchRow, error) {
	m := &MatchRow{}
	var frames, durationMS int64
	err := row.Scan(
		&m.ID, &m.Level, &m.Winner, &frames, &durationMS, &m.PlayerHP, &m.EnemyHP,
		&m.Kills, &m.BlocksDestroyed, &m.StartedAt, &m.EndedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Frames = uint64(frames)
	m.Duration = time.Duration(durationMS) * time.Millisecond
	return m, nil
}

// Load returns the match with the given id, or nil if there is none.
func (r *MatchRepo) Load(ctx context.Context, id uuid.UUID) (*MatchRow, error) {
	m, err := scanMatch(r.db.Pool.QueryRow(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return m, err
}

// Recent returns up to limit matches, newest first.
func (r *MatchRepo) Recent(ctx context.Context, limit int) ([]MatchRow, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT `+matchColumns+` FROM matches ORDER BY ended_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MatchRow
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}
