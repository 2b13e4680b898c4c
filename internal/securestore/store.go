// Package securestore defines the key-value contract over secure storage
// that every vault routes through, plus its two backends: the OS credential
// store (keyring) and a file-backed SQLite fallback.
//
// Records are addressed by (namespace, key) and carry opaque string blobs.
// Neither backend caches in process; every operation round-trips to the
// store so state survives restarts and stays the single synchronization
// point for concurrent callers.
package securestore

import "context"

// Store is the secure-storage contract.
//
// Contract:
//   - Get returns found=false with a nil error when the key is absent.
//   - Delete is idempotent: deleting an absent key is not an error.
//   - All failures wrap common.ErrorStore.
type Store interface {
	Set(ctx context.Context, namespace, key, value string) error
	Get(ctx context.Context, namespace, key string) (value string, found bool, err error)
	Delete(ctx context.Context, namespace, key string) error
}
