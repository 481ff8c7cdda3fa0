package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/actuallystonmai/content-catalog/internal/domain"
	"github.com/actuallystonmai/content-catalog/internal/repository"
)

type CreateResult struct {
	Content   *domain.Content
	IsSuccess bool
	Errors    []string
}

type CreateContent struct {
	repo repository.Repository
}

func NewCreateContent(repo repository.Repository) *CreateContent {
	return &CreateContent{repo: repo}
}

// Run validates input and stores the new content. Invalid input yields a
// failed result and leaves the repository untouched; the error return is
// reserved for storage faults.
func (uc *CreateContent) Run(ctx context.Context, input Input) (CreateResult, error) {
	fields, errs := ParseContentFields(input)
	if len(errs) > 0 {
		return CreateResult{IsSuccess: false, Errors: messages(errs)}, nil
	}

	content := domain.NewContent(fields)
	if err := uc.repo.Add(ctx, content); err != nil {
		return CreateResult{}, fmt.Errorf("add content: %w", err)
	}

	slog.Info("content created", "content_id", content.ID(), "provider", content.Provider)
	return CreateResult{Content: content, IsSuccess: true, Errors: []string{}}, nil
}
