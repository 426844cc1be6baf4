package models

import "time"

// Image references an uploaded blob and its generated thumbnail.
type Image struct {
	ID      string `json:"id"`
	ThumbID string `json:"thumbId"`
}

// AuthorSummary is the denormalized owner snapshot embedded on an article.
type AuthorSummary struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// Article is a board child document. Its lifecycle drives most of the sync
// core: creation bumps the board counter, merges category/tags, promotes
// staged uploads and projects into the search index; deletion reverses the
// counter and cascades through comments and blobs.
type Article struct {
	ID           string        `json:"id"`
	BoardID      string        `json:"boardId"`
	UID          string        `json:"uid"`
	User         AuthorSummary `json:"user"`
	Title        string        `json:"title"`
	Summary      string        `json:"summary"`
	Category     string        `json:"category"`
	Tags         []string      `json:"tags"`
	Images       []Image       `json:"images"`
	ReadCount    int64         `json:"readCount"`
	CommentCount int64         `json:"commentCount"`
	LikeCount    int64         `json:"likeCount"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// SearchDoc is the flat projection of an article submitted to the hosted
// search index. Field names follow the index schema.
type SearchDoc struct {
	BoardID      string    `json:"boardId"`
	ArticleID    string    `json:"articleId"`
	CreatedAt    time.Time `json:"createdAt"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"displayName"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags"`
	ReadCount    int64     `json:"readCount"`
	CommentCount int64     `json:"commentCount"`
	LikeCount    int64     `json:"likeCount"`
}
