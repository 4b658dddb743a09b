// Package metadata provides a small key/value store over the client's local
// sqlite database. It holds the session token and last-login metadata so an
// authenticated session survives process restarts.
package metadata

import "context"

type Repository interface {
	// Get returns the stored value or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Clear removes every entry; used on logout.
	Clear(ctx context.Context) error
}
