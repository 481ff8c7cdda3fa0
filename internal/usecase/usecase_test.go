package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/actuallystonmai/content-catalog/internal/domain"
	"github.com/actuallystonmai/content-catalog/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingRepo fails every call with err.
type failingRepo struct{ err error }

func (r failingRepo) Add(context.Context, *domain.Content) error { return r.err }
func (r failingRepo) Find(context.Context, int64) (*domain.Content, error) {
	return nil, r.err
}
func (r failingRepo) Update(context.Context, int64, *domain.Content) error { return r.err }
func (r failingRepo) Remove(context.Context, int64) error                 { return r.err }

func futureInput(id int64) Input {
	return Input{
		"id":          json.Number(jsonInt(id)),
		"name":        "X",
		"duration":    json.Number("10"),
		"provider":    "youtube",
		"media_type":  "video",
		"provider_id": "abc",
		"expires_at":  json.Number(jsonInt(time.Now().Add(24 * time.Hour).UnixMilli())),
	}
}

func jsonInt(n int64) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func TestCreateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("stores valid content", func(t *testing.T) {
		repo := repository.NewMemory()
		res, err := NewCreateContent(repo).Run(ctx, futureInput(1))
		require.NoError(t, err)

		assert.True(t, res.IsSuccess)
		assert.Empty(t, res.Errors)
		require.NotNil(t, res.Content)
		assert.Equal(t, int64(1), res.Content.ID())
		assert.False(t, res.Content.IsWatched())
		assert.False(t, res.Content.IsExpired())
		assert.Equal(t, 1, repo.Len())
	})

	t.Run("invalid input has no side effect", func(t *testing.T) {
		repo := repository.NewMemory()
		input := futureInput(1)
		delete(input, FieldExpiresAt)
		input[FieldDuration] = "long"

		res, err := NewCreateContent(repo).Run(ctx, input)
		require.NoError(t, err)

		assert.False(t, res.IsSuccess)
		assert.Nil(t, res.Content)
		assert.Equal(t, []string{"duration must be an integer", "expires_at is required"}, res.Errors)
		assert.Equal(t, 0, repo.Len())
	})

	t.Run("storage failure", func(t *testing.T) {
		_, err := NewCreateContent(failingRepo{err: assert.AnError}).Run(ctx, futureInput(1))
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestGetContent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	_, err := NewCreateContent(repo).Run(ctx, futureInput(1))
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		res, err := NewGetContent(repo).Run(ctx, 1)
		require.NoError(t, err)
		assert.True(t, res.IsSuccess)
		assert.Empty(t, res.Error)
		assert.Equal(t, "abc", res.Content.ProviderID)
	})

	t.Run("not found", func(t *testing.T) {
		res, err := NewGetContent(repo).Run(ctx, 2)
		require.NoError(t, err)
		assert.False(t, res.IsSuccess)
		assert.Nil(t, res.Content)
		assert.Equal(t, "2 not found", res.Error)
	})

	t.Run("storage failure", func(t *testing.T) {
		_, err := NewGetContent(failingRepo{err: assert.AnError}).Run(ctx, 1)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestUpdateContent(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces identifying fields", func(t *testing.T) {
		repo := repository.NewMemory()
		_, err := NewCreateContent(repo).Run(ctx, futureInput(1))
		require.NoError(t, err)

		input := futureInput(1)
		delete(input, FieldID)
		input[FieldProviderID] = "xyz"

		res, err := NewUpdateContent(repo).Run(ctx, 1, input)
		require.NoError(t, err)
		assert.True(t, res.IsSuccess)
		assert.Equal(t, "xyz", res.Content.ProviderID)

		got, err := NewGetContent(repo).Run(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "xyz", got.Content.ProviderID)
	})

	t.Run("keeps watched flag", func(t *testing.T) {
		repo := repository.NewMemory()
		c := domain.NewContent(domain.Fields{ID: 1, Name: "X", Provider: "youtube", ProviderID: "abc"})
		c.MarkWatched()
		require.NoError(t, repo.Add(ctx, c))

		res, err := NewUpdateContent(repo).Run(ctx, 1, futureInput(1))
		require.NoError(t, err)
		require.True(t, res.IsSuccess)
		assert.True(t, res.Content.IsWatched())

		stored, err := repo.Find(ctx, 1)
		require.NoError(t, err)
		assert.True(t, stored.IsWatched())
	})

	t.Run("not found", func(t *testing.T) {
		res, err := NewUpdateContent(repository.NewMemory()).Run(ctx, 2, futureInput(2))
		require.NoError(t, err)
		assert.False(t, res.IsSuccess)
		assert.Equal(t, "2 not found", res.Error)
		assert.Empty(t, res.Errors)
	})

	t.Run("not found is checked before validation", func(t *testing.T) {
		res, err := NewUpdateContent(repository.NewMemory()).Run(ctx, 2, Input{})
		require.NoError(t, err)
		assert.Equal(t, "2 not found", res.Error)
	})

	t.Run("invalid input", func(t *testing.T) {
		repo := repository.NewMemory()
		_, err := NewCreateContent(repo).Run(ctx, futureInput(1))
		require.NoError(t, err)

		input := futureInput(1)
		delete(input, FieldName)
		res, err := NewUpdateContent(repo).Run(ctx, 1, input)
		require.NoError(t, err)
		assert.False(t, res.IsSuccess)
		assert.Empty(t, res.Error)
		assert.Equal(t, []string{"name is required"}, res.Errors)

		stored, err := repo.Find(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "X", stored.Name)
	})

	t.Run("storage failure", func(t *testing.T) {
		_, err := NewUpdateContent(failingRepo{err: assert.AnError}).Run(ctx, 1, futureInput(1))
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestRemoveContent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	create := NewCreateContent(repo)
	_, err := create.Run(ctx, futureInput(1))
	require.NoError(t, err)
	_, err = create.Run(ctx, futureInput(2))
	require.NoError(t, err)

	remove := NewRemoveContent(repo)
	require.NoError(t, remove.Run(ctx, 1))
	require.NoError(t, remove.Run(ctx, 1), "removing twice is not an error")
	require.NoError(t, remove.Run(ctx, 404))

	res, err := NewGetContent(repo).Run(ctx, 1)
	require.NoError(t, err)
	assert.False(t, res.IsSuccess)

	res, err = NewGetContent(repo).Run(ctx, 2)
	require.NoError(t, err)
	assert.True(t, res.IsSuccess)

	assert.ErrorIs(t, NewRemoveContent(failingRepo{err: assert.AnError}).Run(ctx, 1), assert.AnError)
}
