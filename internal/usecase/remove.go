package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/actuallystonmai/content-catalog/internal/repository"
)

type RemoveContent struct {
	repo repository.Repository
}

func NewRemoveContent(repo repository.Repository) *RemoveContent {
	return &RemoveContent{repo: repo}
}

// Run deletes content id. Unknown ids are not an error.
func (uc *RemoveContent) Run(ctx context.Context, id int64) error {
	if err := uc.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("remove content: %w", err)
	}
	slog.Debug("content removed", "content_id", id)
	return nil
}
