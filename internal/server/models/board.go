package models

// Board is the parent collection for articles. ArticleCount, Categories and
// Tags are derived fields maintained by the sync core: the count tracks live
// child articles, the sets grow by union as articles are written and are
// never pruned.
type Board struct {
	ID           string   `json:"id"`
	ArticleCount int64    `json:"count"`
	Categories   []string `json:"categories"`
	Tags         []string `json:"tags"`
}
