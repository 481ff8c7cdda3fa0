package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/actuallystonmai/content-catalog/internal/domain"
	"github.com/actuallystonmai/content-catalog/internal/repository"
)

type GetResult struct {
	Content   *domain.Content
	IsSuccess bool
	Error     string
}

type GetContent struct {
	repo repository.Repository
}

func NewGetContent(repo repository.Repository) *GetContent {
	return &GetContent{repo: repo}
}

func (uc *GetContent) Run(ctx context.Context, id int64) (GetResult, error) {
	content, err := uc.repo.Find(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrContentNotFound) {
			return GetResult{IsSuccess: false, Error: notFoundMessage(id)}, nil
		}
		return GetResult{}, fmt.Errorf("find content: %w", err)
	}
	return GetResult{Content: content, IsSuccess: true}, nil
}

func notFoundMessage(id int64) string {
	return fmt.Sprintf("%d not found", id)
}
