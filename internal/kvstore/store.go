// Package kvstore provides the flat string-keyed store the persistence
// gateway writes recipe collections into.
package kvstore

import "context"

// Store is an opaque string-keyed get/set/remove API. Get reports whether
// the key was present so callers can distinguish "absent" from "empty".
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
