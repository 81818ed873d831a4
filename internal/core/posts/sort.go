package posts

import (
	"fmt"
	"sort"
	"strings"
)

// SortField is a post attribute that list results can be ordered by
type SortField string

const (
	SortByID         SortField = "id"
	SortByReads      SortField = "reads"
	SortByLikes      SortField = "likes"
	SortByPopularity SortField = "popularity"
)

// SortFields lists the accepted sortBy values; the first one is the default
var SortFields = []SortField{SortByID, SortByReads, SortByLikes, SortByPopularity}

// SortDirection is the order list results are returned in
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortDirections lists the accepted direction values; the first one is the default
var SortDirections = []SortDirection{Ascending, Descending}

// ParseSortField validates a sortBy query value. Empty means default.
func ParseSortField(s string) (SortField, error) {
	if s == "" {
		return SortFields[0], nil
	}
	for _, f := range SortFields {
		if SortField(s) == f {
			return f, nil
		}
	}
	names := make([]string, len(SortFields))
	for i, f := range SortFields {
		names[i] = string(f)
	}
	return "", NewValidationError("sortBy", fmt.Sprintf(
		"Invalid value for 'sortBy' parameter. Must be one of the following values: %s",
		strings.Join(names, ", ")))
}

// ParseSortDirection validates a direction query value. Empty means default.
func ParseSortDirection(s string) (SortDirection, error) {
	if s == "" {
		return SortDirections[0], nil
	}
	for _, d := range SortDirections {
		if SortDirection(s) == d {
			return d, nil
		}
	}
	names := make([]string, len(SortDirections))
	for i, d := range SortDirections {
		names[i] = string(d)
	}
	return "", NewValidationError("direction", fmt.Sprintf(
		"Invalid value for 'direction' parameter. Must be one of the following values: %s",
		strings.Join(names, ", ")))
}

func (f SortField) key(p *Post) int64 {
	switch f {
	case SortByReads:
		return int64(p.Reads)
	case SortByLikes:
		return int64(p.Likes)
	case SortByPopularity:
		return int64(p.Popularity)
	default:
		return p.ID
	}
}

// SortPosts orders posts in place by field. The sort is stable in both
// directions: equal keys keep their incoming order.
func SortPosts(list []*Post, field SortField, direction SortDirection) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := field.key(list[i]), field.key(list[j])
		if direction == Descending {
			return a > b
		}
		return a < b
	})
}
