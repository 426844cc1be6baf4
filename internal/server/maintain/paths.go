package maintain

import "strings"

// Blob layout, shared with the uploading client:
//
//	boards/{boardID}/{articleID}-{uid}.md      article content
//	images/boards/{boardID}/{articleID}/{id}   images and thumbnails
func contentPath(boardID, articleID, uid string) string {
	return strings.Join([]string{"boards", boardID, articleID + "-" + uid + ".md"}, "/")
}

func imagePrefix(boardID, articleID string) string {
	return strings.Join([]string{"images", "boards", boardID, articleID}, "/")
}

func imagePath(boardID, articleID, blobID string) string {
	return imagePrefix(boardID, articleID) + "/" + blobID
}
