package services

import (
	"context"
	"sync"
)

// fakeStore is an in-memory securestore.Store for unit tests. Error fields
// force failures per operation.
type fakeStore struct {
	mu      sync.Mutex
	data    map[string]string
	setErr  error
	getErr  error
	delErr  error
	deletes []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: make(map[string]string)}
}

func storeKey(namespace, key string) string {
	return namespace + ":" + key
}

func (f *fakeStore) Set(ctx context.Context, namespace, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[storeKey(namespace, key)] = value
	return nil
}

func (f *fakeStore) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	value, found := f.data[storeKey(namespace, key)]
	return value, found, nil
}

func (f *fakeStore) Delete(ctx context.Context, namespace, key string) error {
	f.mu.Lock()
	f.deletes = append(f.deletes, storeKey(namespace, key))
	f.mu.Unlock()
	if f.delErr != nil {
		return f.delErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, storeKey(namespace, key))
	return nil
}

// raw returns the stored blob bypassing the vault, for purge assertions.
func (f *fakeStore) raw(namespace, key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, found := f.data[storeKey(namespace, key)]
	return value, found
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.data)
}
