package storage

import (
	"context"
	"encoding/json"
	"errors"
)

// Storage keys shared with the web storefront. Snapshots carry no
// schema version; shapes that no longer decode fall back to the caller's
// default.
const (
	KeyCartItems         = "cart_items"
	KeyAssistantMessages = "chatbot_messages"
)

// ErrNotFound reports that a key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Store is the durable key/value contract for session snapshots. Keys are
// shared by name across every session of the same origin; the engine does no
// cross-instance locking, so concurrent writers simply overwrite each other.
type Store interface {
	Save(ctx context.Context, key string, raw []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}

// SaveJSON serializes value and writes it under key.
func SaveJSON(ctx context.Context, store Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return store.Save(ctx, key, raw)
}

// LoadJSON reads key into dest. A missing key or a payload that no longer
// decodes leaves dest set to fallback and reports no error; only transport
// failures surface, and callers above the adapter are expected to swallow
// those too.
func LoadJSON[T any](ctx context.Context, store Store, key string, fallback T) (T, error) {
	raw, err := store.Load(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fallback, nil
		}
		return fallback, err
	}
	var dest T
	if err := json.Unmarshal(raw, &dest); err != nil {
		return fallback, nil
	}
	return dest, nil
}
