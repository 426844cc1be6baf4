package models

import "time"

// Comment is an article child document. It only affects the parent
// article's comment counter.
type Comment struct {
	ID        string    `json:"id"`
	ArticleID string    `json:"articleId"`
	BoardID   string    `json:"boardId"`
	CreatedAt time.Time `json:"createdAt"`
}
