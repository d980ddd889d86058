package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"dayboard/internal/logger"
)

type fileStore struct {
	Version int                        `json:"version"`
	Slots   map[string]json.RawMessage `json:"slots"`
}

// JSONStore persists all slots in a single JSON file, rewritten on every Set.
type JSONStore struct {
	path  string
	store *fileStore
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &fileStore{
		Version: 1,
		Slots:   make(map[string]json.RawMessage),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'dayboard init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &fileStore{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// Corrupt files degrade to an empty store rather than blocking
		// startup; individual slots fall back to their defaults.
		logger.Warn("Storage file is unreadable, starting empty", "path", s.path, "error", err)
		s.store = &fileStore{Version: 1}
	}

	if s.store.Slots == nil {
		s.store.Slots = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) Get(key string) ([]byte, bool) {
	if s.store == nil {
		return nil, false
	}
	raw, ok := s.store.Slots[key]
	if !ok {
		return nil, false
	}
	return raw, true
}

func (s *JSONStore) Set(key string, value []byte) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Slots[key] = json.RawMessage(value)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
