package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestGetMissThenHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewWithClient(client, time.Minute)
	ctx := context.Background()

	mock.ExpectGet("gym:7:members").RedisNil()

	var got []row
	assert.False(t, c.Get(ctx, 7, EntityMembers, &got))

	rows := []row{{ID: 1, Name: "Asha"}}
	data, err := json.Marshal(rows)
	require.NoError(t, err)

	mock.ExpectSet("gym:7:members", data, time.Minute).SetVal("OK")
	c.Set(ctx, 7, EntityMembers, rows)

	mock.ExpectGet("gym:7:members").SetVal(string(data))
	require.True(t, c.Get(ctx, 7, EntityMembers, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Asha", got[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCorruptEntryDropped(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewWithClient(client, time.Minute)

	mock.ExpectGet("gym:7:expenses").SetVal("{not json")
	mock.ExpectDel("gym:7:expenses").SetVal(1)

	var got []row
	assert.False(t, c.Get(context.Background(), 7, EntityExpenses, &got))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewWithClient(client, time.Minute)

	mock.ExpectDel("gym:7:payments", "gym:7:members").SetVal(2)
	c.Invalidate(context.Background(), 7, EntityPayments, EntityMembers)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	var got []row
	assert.False(t, c.Get(ctx, 1, EntityMembers, &got))
	c.Set(ctx, 1, EntityMembers, got)
	c.Invalidate(ctx, 1, EntityMembers)
	assert.NoError(t, c.Close())
}
