package storage

// Provider is a durable key-value medium holding one serialized collection
// per slot. Each slot is exclusively owned by a single widget.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Slots
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error

	// Utils
	GetConfigPath() string
}
