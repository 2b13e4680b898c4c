package securestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/ankit-0903/sentinel-vault/internal/common"
	"github.com/zalando/go-keyring"
)

// KeyringStore persists records in the OS credential store (macOS Keychain,
// Windows Credential Manager, Secret Service on Linux). The namespace maps
// to the keyring service name and the key to its account name, so distinct
// namespaces cannot collide even on backends that multiplex aggressively.
type KeyringStore struct{}

func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

func (s *KeyringStore) Set(ctx context.Context, namespace, key, value string) error {
	if err := keyring.Set(namespace, key, value); err != nil {
		return fmt.Errorf("%w: set %s/%s: %v", common.ErrorStore, namespace, key, err)
	}
	return nil
}

func (s *KeyringStore) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	value, err := keyring.Get(namespace, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: get %s/%s: %v", common.ErrorStore, namespace, key, err)
	}
	return value, true, nil
}

func (s *KeyringStore) Delete(ctx context.Context, namespace, key string) error {
	if err := keyring.Delete(namespace, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("%w: delete %s/%s: %v", common.ErrorStore, namespace, key, err)
	}
	return nil
}
