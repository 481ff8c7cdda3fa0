package repository

import (
	"context"

	"github.com/actuallystonmai/content-catalog/internal/domain"
)

// Repository stores contents keyed by id.
//
// Add overwrites an existing entry with the same id. Find and Update return
// domain.ErrContentNotFound for unknown ids; Remove of an unknown id is a no-op.
type Repository interface {
	Add(ctx context.Context, content *domain.Content) error
	Find(ctx context.Context, id int64) (*domain.Content, error)
	Update(ctx context.Context, id int64, content *domain.Content) error
	Remove(ctx context.Context, id int64) error
}
