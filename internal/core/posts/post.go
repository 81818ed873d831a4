package posts

import (
	"time"
)

// Post represents a post row
// Engagement counters (likes, reads, popularity) are maintained outside this API
type Post struct {
	CreatedAt  time.Time `json:"-" db:"created_at"`
	UpdatedAt  time.Time `json:"-" db:"updated_at"`
	Text       string    `json:"text" db:"text"`
	Tags       []string  `json:"tags" db:"tags"`
	ID         int64     `json:"id" db:"id"`
	Likes      int       `json:"likes" db:"likes"`
	Reads      int       `json:"reads" db:"reads"`
	Popularity int       `json:"popularity" db:"popularity"`
}

// PostView is the public JSON shape of a post
type PostView struct {
	ID         int64    `json:"id"`
	Likes      int      `json:"likes"`
	Popularity int      `json:"popularity"`
	Reads      int      `json:"reads"`
	Tags       []string `json:"tags"`
	Text       string   `json:"text"`
}

// PostWithAuthorsView is returned by the update endpoint
type PostWithAuthorsView struct {
	ID         int64    `json:"id"`
	AuthorIDs  []int64  `json:"authorIds"`
	Likes      int      `json:"likes"`
	Popularity int      `json:"popularity"`
	Reads      int      `json:"reads"`
	Tags       []string `json:"tags"`
	Text       string   `json:"text"`
}

// PostWithAuthors pairs a post with its full author set
type PostWithAuthors struct {
	Post      *Post
	AuthorIDs []int64
}

// ToView projects a post onto its public fields
func (p *Post) ToView() PostView {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return PostView{
		ID:         p.ID,
		Likes:      p.Likes,
		Popularity: p.Popularity,
		Reads:      p.Reads,
		Tags:       tags,
		Text:       p.Text,
	}
}

// ToView projects the post and its authors onto the update response shape
func (p *PostWithAuthors) ToView() PostWithAuthorsView {
	v := p.Post.ToView()
	authorIDs := p.AuthorIDs
	if authorIDs == nil {
		authorIDs = []int64{}
	}
	return PostWithAuthorsView{
		ID:         v.ID,
		AuthorIDs:  authorIDs,
		Likes:      v.Likes,
		Popularity: v.Popularity,
		Reads:      v.Reads,
		Tags:       v.Tags,
		Text:       v.Text,
	}
}

// CreatePostRequest represents input for creating a new post
type CreatePostRequest struct {
	Text     *string  `json:"text"`
	Tags     []string `json:"tags,omitempty"`
	AuthorID int64    `json:"-"` // Set from the authenticated user, never from the body
}

// ListPostsRequest represents input for listing posts by author
type ListPostsRequest struct {
	SortBy    SortField
	Direction SortDirection
	AuthorIDs []int64 // In request order, may contain duplicates
}

// UpdatePostRequest represents input for updating a post
// Nil pointers mean "field not supplied"
type UpdatePostRequest struct {
	AuthorIDs *[]int64 `json:"authorIds,omitempty"`
	Text      *string  `json:"text,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	PostID    int64    `json:"-"`
	UserID    int64    `json:"-"`
}

// PostChanges is the validated write set handed to Repository.Update
type PostChanges struct {
	Text *string
	Tags []string

	// DesiredAuthorIDs is the complete author set the post must end up with.
	// Only applied when ReplaceAuthors is true; an empty set is allowed.
	DesiredAuthorIDs []int64
	ReplaceAuthors   bool
}
