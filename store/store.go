// file: store/store.go

package store

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrInvalidPath is returned for document paths that do not name both a
// collection and a key, e.g. "Users" instead of "Users/alice".
var ErrInvalidPath = errors.New("store: path must contain a collection and a key")

// Store is the contract for the hierarchical document store the API sits
// in front of. Documents are addressed by slash-separated paths whose last
// segment is the document key and whose prefix is the collection, mirroring
// the layout of the upstream database ("Users/alice", "invoire/12345").
//
// This abstraction decouples repositories from the concrete Redis
// implementation, enabling easier testing and future flexibility.
type Store interface {
	// Get returns the document at path. The second return value reports
	// whether the document exists.
	Get(ctx context.Context, path string) (json.RawMessage, bool, error)

	// Set writes value at path, replacing any existing document.
	Set(ctx context.Context, path string, value interface{}) error

	// Update merges partial into the document at path, creating the
	// document if it does not exist. Top-level fields only.
	Update(ctx context.Context, path string, partial map[string]interface{}) error

	// Delete removes the document at path. Deleting a missing document is
	// not an error.
	Delete(ctx context.Context, path string) error

	// List returns every document in the collection, keyed by document key.
	List(ctx context.Context, collection string) (map[string]json.RawMessage, error)

	// QueryByField returns the documents in collection whose top-level
	// field equals value.
	QueryByField(ctx context.Context, collection, field string, value interface{}) (map[string]json.RawMessage, error)

	// GenerateUniqueKey returns a collision-resistant key for a new
	// document in the collection.
	GenerateUniqueKey(collection string) string
}
