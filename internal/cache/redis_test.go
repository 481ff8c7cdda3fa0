package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/actuallystonmai/content-catalog/internal/domain"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleContent() *domain.Content {
	c := domain.NewContent(domain.Fields{
		ID:         7,
		Name:       "X",
		Duration:   10,
		Provider:   "youtube",
		MediaType:  "video",
		ProviderID: "abc",
		ExpiresAt:  time.Now().Add(time.Hour).UnixMilli(),
	})
	c.MarkWatched()
	return c
}

func TestCache_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		want := sampleContent()
		data, err := json.Marshal(want)
		require.NoError(t, err)
		mock.ExpectGet("content:7").SetVal(string(data))

		got, err := NewCache(client, time.Minute).Get(ctx, 7)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want.Fields(), got.Fields())
		assert.True(t, got.IsWatched())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectGet("content:7").RedisNil()

		got, err := NewCache(client, time.Minute).Get(ctx, 7)
		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("error", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectGet("content:7").SetErr(assert.AnError)

		got, err := NewCache(client, time.Minute).Get(ctx, 7)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, got)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectGet("content:7").SetVal("not json")

		_, err := NewCache(client, time.Minute).Get(ctx, 7)
		assert.Error(t, err)
	})
}

func TestCache_Set(t *testing.T) {
	client, mock := redismock.NewClientMock()
	content := sampleContent()
	data, err := json.Marshal(content)
	require.NoError(t, err)
	mock.ExpectSet("content:7", string(data), 5*time.Minute).SetVal("OK")

	assert.NoError(t, NewCache(client, 5*time.Minute).Set(context.Background(), content))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCache_Delete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectDel("content:7").SetVal(1)

	assert.NoError(t, NewCache(client, 0).Delete(context.Background(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewCacheDefaultTTL(t *testing.T) {
	client, _ := redismock.NewClientMock()
	assert.Equal(t, defaultTTL, NewCache(client, 0).ttl)
}
