// Package credentials holds the single-slot repositories behind the
// credential store. Each backend keeps at most one record: writing a key
// replaces whatever was stored before.
package credentials

import "context"

// Repository persists the raw session record.
//
// Get returns (nil, nil) when nothing is stored under key. Put replaces the
// whole slot. Delete is idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
