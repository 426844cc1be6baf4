// Package blobstore removes uploaded objects from path-addressed blob
// storage. The sync core only ever deletes here; uploads happen client-side.
package blobstore

import "context"

type Store interface {
	// Delete removes a single object. Deleting an absent object is success.
	Delete(ctx context.Context, path string) error
	// DeletePrefix bulk-removes every object under the prefix. Zero matches
	// is a no-op.
	DeletePrefix(ctx context.Context, prefix string) error
}
