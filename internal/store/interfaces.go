package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage is a durable string-to-string map. Values are opaque to
// the storage; callers own serialization. Writes are whole-value overwrites.
type KeyValueStorage interface {
	// Get returns the value stored under key. found is false and err is nil
	// when the key is absent.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// Close releases the underlying resources.
	Close() error
}

// ErrorClassificator decides whether a failed storage operation is worth
// retrying. The store itself never retries; the classification only feeds
// logs so operators can tell transient failures from broken setups.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
