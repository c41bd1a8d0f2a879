package stores

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLikesAndUnlikes(t *testing.T) {
	db := setupTestDB(t)
	likes := NewLikeStore(db)
	ctx := context.Background()

	comment := seedComment(t, db, "content-1", nil, "author", "nice", testBase)

	liked, err := likes.Toggle(ctx, comment.ID, "user-1")
	require.NoError(t, err)
	assert.True(t, liked)

	count, err := likes.Count(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Second call from the same user flips it back off.
	liked, err = likes.Toggle(ctx, comment.ID, "user-1")
	require.NoError(t, err)
	assert.False(t, liked)

	count, err = likes.Count(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestToggleIsPerUser(t *testing.T) {
	db := setupTestDB(t)
	likes := NewLikeStore(db)
	ctx := context.Background()

	comment := seedComment(t, db, "content-1", nil, "author", "nice", testBase)

	for _, user := range []string{"user-1", "user-2", "user-3"} {
		liked, err := likes.Toggle(ctx, comment.ID, user)
		require.NoError(t, err)
		assert.True(t, liked)
	}

	_, err := likes.Toggle(ctx, comment.ID, "user-2")
	require.NoError(t, err)

	count, err := likes.Count(ctx, comment.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestToggleRejectsInvisibleComments(t *testing.T) {
	db := setupTestDB(t)
	comments := NewCommentStore(db)
	likes := NewLikeStore(db)
	ctx := context.Background()

	_, err := likes.Toggle(ctx, 12345, "user-1")
	assert.True(t, errors.Is(err, ErrNotFound))

	deleted := seedComment(t, db, "content-1", nil, "author", "gone", testBase)
	require.NoError(t, comments.Delete(ctx, deleted.ID, "author"))

	_, err = likes.Toggle(ctx, deleted.ID, "user-1")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = likes.Toggle(ctx, 1, "")
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestLikesFeedPopularity(t *testing.T) {
	db := setupTestDB(t)
	comments := NewCommentStore(db)
	likes := NewLikeStore(db)
	ctx := context.Background()

	seedComment(t, db, "content-1", nil, "author", "quiet", testBase)
	loud := seedComment(t, db, "content-1", nil, "author", "loud", testBase.Add(time.Second))

	_, err := likes.Toggle(ctx, loud.ID, "user-1")
	require.NoError(t, err)

	rows, err := comments.ListTopLevel(ctx, "content-1", nil, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "loud", rows[0].Body)

	// Unliking drops it back into the tie, where age wins.
	_, err = likes.Toggle(ctx, loud.ID, "user-1")
	require.NoError(t, err)

	rows, err = comments.ListTopLevel(ctx, "content-1", nil, 10)
	require.NoError(t, err)
	assert.Equal(t, "quiet", rows[0].Body)
}
