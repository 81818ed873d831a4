package posts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(list []*Post) []int64 {
	out := make([]int64, len(list))
	for i, p := range list {
		out[i] = p.ID
	}
	return out
}

func TestParseSortField(t *testing.T) {
	f, err := ParseSortField("")
	require.NoError(t, err)
	assert.Equal(t, SortByID, f)

	for _, name := range []string{"id", "reads", "likes", "popularity"} {
		f, err := ParseSortField(name)
		require.NoError(t, err)
		assert.Equal(t, SortField(name), f)
	}

	_, err = ParseSortField("text")
	require.Error(t, err)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "sortBy", valErr.Field)
	assert.Equal(t,
		"Invalid value for 'sortBy' parameter. Must be one of the following values: id, reads, likes, popularity",
		valErr.Message)
}

func TestParseSortDirection(t *testing.T) {
	d, err := ParseSortDirection("")
	require.NoError(t, err)
	assert.Equal(t, Ascending, d)

	d, err = ParseSortDirection("desc")
	require.NoError(t, err)
	assert.Equal(t, Descending, d)

	_, err = ParseSortDirection("DESC")
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t,
		"Invalid value for 'direction' parameter. Must be one of the following values: asc, desc",
		valErr.Message)
}

func TestSortPosts(t *testing.T) {
	newList := func() []*Post {
		return []*Post{
			{ID: 3, Likes: 5, Reads: 10, Popularity: 1},
			{ID: 1, Likes: 7, Reads: 10, Popularity: 3},
			{ID: 2, Likes: 5, Reads: 2, Popularity: 2},
		}
	}

	tests := []struct {
		name      string
		field     SortField
		direction SortDirection
		want      []int64
	}{
		{"id ascending", SortByID, Ascending, []int64{1, 2, 3}},
		{"id descending", SortByID, Descending, []int64{3, 2, 1}},
		// 3 and 2 tie on likes and keep their incoming order
		{"likes ascending", SortByLikes, Ascending, []int64{3, 2, 1}},
		{"likes descending", SortByLikes, Descending, []int64{1, 3, 2}},
		{"reads descending ties stable", SortByReads, Descending, []int64{3, 1, 2}},
		{"popularity ascending", SortByPopularity, Ascending, []int64{3, 2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := newList()
			SortPosts(list, tt.field, tt.direction)
			assert.Equal(t, tt.want, ids(list))
		})
	}
}
