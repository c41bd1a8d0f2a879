package controllers

import (
	"net/http/httptest"
	"testing"
	"time"

	"engagement-service/stores"
	"engagement-service/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedRows(n int) []stores.RankedComment {
	base := time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	rows := make([]stores.RankedComment, n)
	for i := range rows {
		rows[i] = stores.RankedComment{
			ID:         uint64(i + 1),
			ContentID:  "content-1",
			AuthorID:   "author",
			Body:       "c",
			CreatedAt:  base.Add(time.Duration(i) * time.Second),
			Popularity: int64(n - i),
		}
	}
	return rows
}

func TestBuildPageSplitsLimitPlusOne(t *testing.T) {
	rows := rankedRows(4) // limit+1 rows back from the store

	page := buildPage(rows, 3)

	require.Len(t, page.Comments, 3)
	assert.True(t, page.HasMore)
	require.NotNil(t, page.NextCursor)

	// The cursor resumes after the last row the client actually saw.
	decoded, err := stores.DecodeCursor(*page.NextCursor)
	require.NoError(t, err)
	assert.Equal(t, rows[2].ID, decoded.ID)
	assert.Equal(t, rows[2].Popularity, decoded.Popularity)
}

func TestBuildPageLastPage(t *testing.T) {
	page := buildPage(rankedRows(2), 3)

	assert.Len(t, page.Comments, 2)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
}

func TestBuildPageEmpty(t *testing.T) {
	page := buildPage(nil, 3)

	assert.Empty(t, page.Comments)
	assert.False(t, page.HasMore)
	assert.Nil(t, page.NextCursor)
}

func TestPageParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/engagement/v1/getComments/content-1", nil)
	cursor, limit, err := pageParams(r)
	require.NoError(t, err)
	assert.Nil(t, cursor)
	assert.Equal(t, utils.DefaultPageSize, limit)

	token := stores.Cursor{Popularity: 5, CreatedAt: time.Unix(1720000000, 0).UTC(), ID: 7}.Encode()
	r = httptest.NewRequest("GET", "/engagement/v1/getComments/content-1?cursor="+token+"&limit=10", nil)
	cursor, limit, err = pageParams(r)
	require.NoError(t, err)
	require.NotNil(t, cursor)
	assert.Equal(t, uint64(7), cursor.ID)
	assert.Equal(t, 10, limit)

	r = httptest.NewRequest("GET", "/engagement/v1/getComments/content-1?cursor=%21bogus", nil)
	_, _, err = pageParams(r)
	assert.Error(t, err)

	r = httptest.NewRequest("GET", "/engagement/v1/getComments/content-1?limit=abc", nil)
	_, _, err = pageParams(r)
	assert.Error(t, err)
}
