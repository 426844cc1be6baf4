package models

// EventType identifies a lifecycle notification delivered by the trigger
// source.
type EventType string

const (
	EventAccountCreated EventType = "account.created"
	EventAccountDeleted EventType = "account.deleted"
	EventBoardCreated   EventType = "board.created"
	EventBoardDeleted   EventType = "board.deleted"
	EventArticleCreated EventType = "article.created"
	EventArticleUpdated EventType = "article.updated"
	EventArticleDeleted EventType = "article.deleted"
	EventCommentCreated EventType = "comment.created"
	EventCommentDeleted EventType = "comment.deleted"
	EventBlobFinalized  EventType = "blob.finalized"
)

// Event is one lifecycle notification. Only the fields relevant to the
// event type are populated:
//
//   - account.*: Account
//   - board.*: BoardID
//   - article.created/.deleted: BoardID, ArticleID, Article (the written or
//     removed snapshot)
//   - article.updated: additionally Before (the previous snapshot)
//   - comment.*: BoardID, ArticleID, CommentID
//   - blob.finalized: Blob
type Event struct {
	Type      EventType       `json:"type"`
	Account   *AccountPayload `json:"account,omitempty"`
	BoardID   string          `json:"boardId,omitempty"`
	ArticleID string          `json:"articleId,omitempty"`
	CommentID string          `json:"commentId,omitempty"`
	Article   *Article        `json:"article,omitempty"`
	Before    *Article        `json:"before,omitempty"`
	Blob      *BlobInfo       `json:"blob,omitempty"`
}
