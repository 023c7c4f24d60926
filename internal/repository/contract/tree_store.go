package contract

import "context"

// TreeStore is a path-addressed hierarchical key-value tree. Paths are
// slash-delimited. Values are JSON-shaped: map[string]interface{}, []interface{},
// string, float64, bool or nil. There are no transactions; concurrent writes to
// the same path are last-write-wins.
type TreeStore interface {
	// Read returns the subtree at path, or nil when nothing is stored there.
	Read(ctx context.Context, path string) (interface{}, error)

	// Write replaces the subtree at path.
	Write(ctx context.Context, path string, value interface{}) error

	// Merge updates the listed children of path and keeps every sibling key.
	// A nil value removes that child.
	Merge(ctx context.Context, path string, fields map[string]interface{}) error

	// Remove deletes the subtree at path. Removing an absent path is not an error.
	Remove(ctx context.Context, path string) error

	// Query returns the children of path whose orderByField equals equalTo,
	// keyed by child key.
	Query(ctx context.Context, path, orderByField string, equalTo interface{}) (map[string]interface{}, error)
}
