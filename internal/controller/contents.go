package controller

import (
	"context"
	"log/slog"

	"github.com/actuallystonmai/content-catalog/internal/domain"
	"github.com/actuallystonmai/content-catalog/internal/usecase"
)

const invalidObjectFormat = "invalid object format"

type ContentCreator interface {
	Run(ctx context.Context, input usecase.Input) (usecase.CreateResult, error)
}

type ContentGetter interface {
	Run(ctx context.Context, id int64) (usecase.GetResult, error)
}

type ContentUpdater interface {
	Run(ctx context.Context, id int64, input usecase.Input) (usecase.UpdateResult, error)
}

type ContentRemover interface {
	Run(ctx context.Context, id int64) error
}

// ContentsController turns use-case results into contents or StatusErrors.
type ContentsController struct {
	create ContentCreator
	get    ContentGetter
	update ContentUpdater
	remove ContentRemover
}

func NewContentsController(create ContentCreator, get ContentGetter, update ContentUpdater, remove ContentRemover) *ContentsController {
	return &ContentsController{
		create: create,
		get:    get,
		update: update,
		remove: remove,
	}
}

func (c *ContentsController) Create(ctx context.Context, input usecase.Input) (*domain.Content, error) {
	if missing := usecase.MissingFields(input, usecase.CreateFields); len(missing) > 0 {
		slog.Debug("rejecting content without required fields", "missing", missing)
		return nil, BadRequest(invalidObjectFormat)
	}

	result, err := c.create.Run(ctx, input)
	if err != nil {
		slog.Error("create content failed", "error", err)
		return nil, Internal()
	}
	if !result.IsSuccess {
		return nil, BadRequest(result.Errors)
	}
	return result.Content, nil
}

func (c *ContentsController) Get(ctx context.Context, id int64) (*domain.Content, error) {
	result, err := c.get.Run(ctx, id)
	if err != nil {
		slog.Error("get content failed", "content_id", id, "error", err)
		return nil, Internal()
	}
	if !result.IsSuccess {
		return nil, NotFound(result.Error)
	}
	return result.Content, nil
}

// Put with a nil input reports "invalid object format" for a known id and
// not found otherwise.
func (c *ContentsController) Put(ctx context.Context, id int64, input usecase.Input) (*domain.Content, error) {
	result, err := c.update.Run(ctx, id, input)
	if err != nil {
		slog.Error("update content failed", "content_id", id, "error", err)
		return nil, Internal()
	}
	if !result.IsSuccess {
		if len(result.Errors) > 0 {
			if input == nil {
				return nil, BadRequest(invalidObjectFormat)
			}
			return nil, BadRequest(result.Errors)
		}
		return nil, NotFound(result.Error)
	}
	return result.Content, nil
}

// Delete never fails; removal errors are only logged.
func (c *ContentsController) Delete(ctx context.Context, id int64) {
	if err := c.remove.Run(ctx, id); err != nil {
		slog.Error("remove content failed", "content_id", id, "error", err)
	}
}
