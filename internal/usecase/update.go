package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/actuallystonmai/content-catalog/internal/domain"
	"github.com/actuallystonmai/content-catalog/internal/repository"
)

// UpdateResult carries Error for a lookup miss and Errors for invalid input.
type UpdateResult struct {
	Content   *domain.Content
	IsSuccess bool
	Error     string
	Errors    []string
}

type UpdateContent struct {
	repo repository.Repository
}

func NewUpdateContent(repo repository.Repository) *UpdateContent {
	return &UpdateContent{repo: repo}
}

// Run replaces the identifying fields of content id. The watched flag of the
// stored content carries over to the replacement.
func (uc *UpdateContent) Run(ctx context.Context, id int64, input Input) (UpdateResult, error) {
	existing, err := uc.repo.Find(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrContentNotFound) {
			return UpdateResult{IsSuccess: false, Error: notFoundMessage(id)}, nil
		}
		return UpdateResult{}, fmt.Errorf("find content: %w", err)
	}

	fields, errs := ParseUpdateFields(id, input)
	if len(errs) > 0 {
		return UpdateResult{IsSuccess: false, Errors: messages(errs)}, nil
	}

	updated := domain.NewContent(fields)
	if existing.IsWatched() {
		updated.MarkWatched()
	}

	if err := uc.repo.Update(ctx, id, updated); err != nil {
		// removed between lookup and write
		if errors.Is(err, domain.ErrContentNotFound) {
			return UpdateResult{IsSuccess: false, Error: notFoundMessage(id)}, nil
		}
		return UpdateResult{}, fmt.Errorf("update content: %w", err)
	}

	slog.Info("content updated", "content_id", id)
	return UpdateResult{Content: updated, IsSuccess: true}, nil
}
