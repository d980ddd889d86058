package storage

import (
	"encoding/json"
	"fmt"

	"dayboard/internal/logger"
)

// LoadSlot reads and deserializes the value stored under key. A missing slot
// or one that fails to deserialize yields def; nothing is written back.
// LoadSlot never fails.
func LoadSlot[T any](p Provider, key string, def T) T {
	raw, ok := p.Get(key)
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warn("Discarding unreadable slot", "key", key, "error", err)
		return def
	}
	return v
}

// SaveSlot serializes v and fully replaces the content stored under key. It
// must be called after every mutation so that durable state never diverges
// from the in-memory copy across a restart.
func SaveSlot[T any](p Provider, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize slot %q: %w", key, err)
	}
	return p.Set(key, raw)
}
