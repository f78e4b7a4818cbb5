package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnthonyVeilleux/COS498MidtermAV/internal/models"
)

func newTestCommentRepo(t *testing.T) *CommentRepository {
	t.Helper()
	conn, err := NewConnection(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewCommentRepository(conn)
}

func TestGetAllNewestFirstForAnyInsertionOrder(t *testing.T) {
	ctx := context.Background()

	base := time.Date(2025, time.November, 6, 10, 0, 0, 0, time.UTC)
	oldest := models.Comment{Author: "steve", Text: "oldest", CreatedAt: base}
	middle := models.Comment{Author: "john", Text: "middle", CreatedAt: base.Add(time.Hour)}
	newest := models.Comment{Author: "brandon", Text: "newest", CreatedAt: base.Add(2 * time.Hour)}

	orders := [][]models.Comment{
		{oldest, middle, newest},
		{oldest, newest, middle},
		{middle, oldest, newest},
		{middle, newest, oldest},
		{newest, oldest, middle},
		{newest, middle, oldest},
	}

	for _, order := range orders {
		r := newTestCommentRepo(t)
		for _, c := range order {
			insert := c
			require.NoError(t, r.Create(ctx, &insert))
		}

		got, err := r.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "newest", got[0].Text)
		assert.Equal(t, "middle", got[1].Text)
		assert.Equal(t, "oldest", got[2].Text)
	}
}

func TestGetAllEqualTimestampsKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	r := newTestCommentRepo(t)

	at := time.Date(2025, time.November, 6, 10, 0, 0, 0, time.UTC)
	for _, text := range []string{"a", "b", "c"} {
		require.NoError(t, r.Create(ctx, &models.Comment{Author: "steve", Text: text, CreatedAt: at}))
	}

	got, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].Text)
	assert.Equal(t, "b", got[1].Text)
	assert.Equal(t, "c", got[2].Text)
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	conn, err := NewConnection(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, Seed(ctx, conn))

	user, err := NewUserRepository(conn).GetByName(ctx, "steve")
	require.NoError(t, err)
	assert.Equal(t, "steve123", user.Password)

	comments, err := NewCommentRepository(conn).GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, int64(3), comments[0].ID) // brandon's is the newest
	assert.Equal(t, "Hello Troy!", comments[0].Text)

	// seeded ids end at 3, so the next assigned id is 4
	next := models.Comment{Author: "steve", Text: "next", CreatedAt: time.Now()}
	require.NoError(t, NewCommentRepository(conn).Create(ctx, &next))
	assert.Equal(t, int64(4), next.ID)
}

func TestUserRepositoryGetByNameMissing(t *testing.T) {
	ctx := context.Background()
	conn, err := NewConnection(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	_, err = NewUserRepository(conn).GetByName(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
