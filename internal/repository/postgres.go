package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/actuallystonmai/content-catalog/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool used by Postgres.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Postgres struct {
	db DB
}

func NewPostgres(db DB) *Postgres {
	return &Postgres{db: db}
}

func (r *Postgres) Add(ctx context.Context, content *domain.Content) error {
	f := content.Fields()
	_, err := r.db.Exec(ctx,
		`INSERT INTO contents (id, name, duration, provider, media_type, provider_id, expires_at, watched)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			duration = EXCLUDED.duration,
			provider = EXCLUDED.provider,
			media_type = EXCLUDED.media_type,
			provider_id = EXCLUDED.provider_id,
			expires_at = EXCLUDED.expires_at,
			watched = EXCLUDED.watched`,
		f.ID, f.Name, f.Duration, f.Provider, f.MediaType, f.ProviderID, f.ExpiresAt, content.IsWatched(),
	)
	if err != nil {
		return fmt.Errorf("insert content id=%d: %w", f.ID, err)
	}
	return nil
}

func (r *Postgres) Find(ctx context.Context, id int64) (*domain.Content, error) {
	var (
		f       domain.Fields
		watched bool
	)
	err := r.db.QueryRow(ctx,
		`SELECT id, name, duration, provider, media_type, provider_id, expires_at, watched
		FROM contents WHERE id = $1`,
		id,
	).Scan(&f.ID, &f.Name, &f.Duration, &f.Provider, &f.MediaType, &f.ProviderID, &f.ExpiresAt, &watched)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContentNotFound
		}
		return nil, fmt.Errorf("query content id=%d: %w", id, err)
	}

	c := domain.NewContent(f)
	if watched {
		c.MarkWatched()
	}
	return c, nil
}

func (r *Postgres) Update(ctx context.Context, id int64, content *domain.Content) error {
	f := content.Fields()
	tag, err := r.db.Exec(ctx,
		`UPDATE contents
		SET name = $2, duration = $3, provider = $4, media_type = $5, provider_id = $6, expires_at = $7, watched = $8
		WHERE id = $1`,
		id, f.Name, f.Duration, f.Provider, f.MediaType, f.ProviderID, f.ExpiresAt, content.IsWatched(),
	)
	if err != nil {
		return fmt.Errorf("update content id=%d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrContentNotFound
	}
	return nil
}

func (r *Postgres) Remove(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM contents WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete content id=%d: %w", id, err)
	}
	return nil
}
