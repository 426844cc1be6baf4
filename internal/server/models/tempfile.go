package models

import "time"

// TempFile is the staging record written when a non-markdown blob finishes
// uploading. Its existence is the only signal that the blob is not yet
// attached to a finished article. It is retired either when an article's
// image list references BlobID, or by the age-based sweep.
type TempFile struct {
	// ID is the generated record key (epoch milliseconds of the finalize
	// event, as a string).
	ID string `json:"id"`
	// BlobID is the final path segment of the stored object; article image
	// lists reference it.
	BlobID      string    `json:"blobId"`
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	Checksum    string    `json:"crc32c"`
	CreatedAt   time.Time `json:"createdAt"`
}

// BlobInfo is the payload of a storage "finalized" notification.
type BlobInfo struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	Checksum    string `json:"crc32c"`
}
