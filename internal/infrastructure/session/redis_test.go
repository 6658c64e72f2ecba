package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThilinaShalom/fitgen.AI/internal/domain"
)

func TestRedisStore_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStore(db)
	ctx := context.Background()

	mock.ExpectGet("fitgen-session||token-1").SetVal(`{"user_id":"u1"}`)
	value, err := store.Get(ctx, "fitgen-session||token-1")
	require.NoError(t, err)
	assert.Equal(t, `{"user_id":"u1"}`, value)

	mock.ExpectGet("fitgen-session||missing").SetErr(redis.Nil)
	_, err = store.Get(ctx, "fitgen-session||missing")
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	mock.ExpectGet("fitgen-session||broken").SetErr(errors.New("connection refused"))
	_, err = store.Get(ctx, "fitgen-session||broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCacheMiss)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Set(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStore(db)
	ctx := context.Background()

	mock.ExpectSet("fitgen-session||token-1", "payload", time.Hour).SetVal("OK")
	require.NoError(t, store.Set(ctx, "fitgen-session||token-1", "payload", time.Hour))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Delete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStore(db)
	ctx := context.Background()

	mock.ExpectDel("fitgen-session||token-1").SetVal(1)
	require.NoError(t, store.Delete(ctx, "fitgen-session||token-1"))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_Exists(t *testing.T) {
	db, mock := redismock.NewClientMock()
	store := NewRedisStore(db)
	ctx := context.Background()

	mock.ExpectExists("fitgen-session||token-1").SetVal(1)
	exists, err := store.Exists(ctx, "fitgen-session||token-1")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectExists("fitgen-session||missing").SetVal(0)
	exists, err = store.Exists(ctx, "fitgen-session||missing")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNewRedisStoreFromURL_BadURL(t *testing.T) {
	_, err := NewRedisStoreFromURL(context.Background(), "not-a-redis-url")
	assert.Error(t, err)
}
