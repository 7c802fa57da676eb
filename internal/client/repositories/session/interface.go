// Package session defines the durable key-value store backing the session
// manager: the token and cached profile that survive restarts.
package session

import "context"

// Repository is the port for durable session state. Get returns nil for an
// absent key; a write either fully replaces the stored value or not at all.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
