package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/actuallystonmai/content-catalog/internal/domain"
)

// ContentCache holds contents by id. Get returns nil, nil on a miss.
type ContentCache interface {
	Get(ctx context.Context, id int64) (*domain.Content, error)
	Set(ctx context.Context, content *domain.Content) error
	Delete(ctx context.Context, id int64) error
}

// Cached puts a read-through cache in front of another Repository.
// Cache read and write failures are logged and do not fail the call. A failed
// eviction does, since Find would keep serving the removed content.
type Cached struct {
	inner Repository
	cache ContentCache
}

func NewCached(inner Repository, cache ContentCache) *Cached {
	return &Cached{inner: inner, cache: cache}
}

func (r *Cached) Add(ctx context.Context, content *domain.Content) error {
	if err := r.inner.Add(ctx, content); err != nil {
		return err
	}
	r.refresh(ctx, content)
	return nil
}

func (r *Cached) Find(ctx context.Context, id int64) (*domain.Content, error) {
	cached, err := r.cache.Get(ctx, id)
	if err != nil {
		slog.Warn("cache get failed", "content_id", id, "error", err)
	}
	if cached != nil {
		return cached, nil
	}

	content, err := r.inner.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	r.refresh(ctx, content)
	return content, nil
}

func (r *Cached) Update(ctx context.Context, id int64, content *domain.Content) error {
	if err := r.inner.Update(ctx, id, content); err != nil {
		return err
	}
	r.refresh(ctx, content)
	return nil
}

func (r *Cached) Remove(ctx context.Context, id int64) error {
	if err := r.inner.Remove(ctx, id); err != nil {
		return err
	}
	if err := r.cache.Delete(ctx, id); err != nil {
		return fmt.Errorf("evict content id=%d: %w", id, err)
	}
	return nil
}

func (r *Cached) refresh(ctx context.Context, content *domain.Content) {
	if err := r.cache.Set(ctx, content); err != nil {
		slog.Warn("cache set failed", "content_id", content.ID(), "error", err)
	}
}
