package storage

// Store is the key-value persistence adapter. Values are stored as JSON;
// callers marshal and unmarshal through the typed Service. Writes are not
// transactional: concurrent writes to the same key race and the last one
// wins, which is accepted for a best-effort local store.
type Store interface {
	Get(key string, out interface{}) (bool, error)
	Set(key string, value interface{}) error
	Remove(key string) error
	Clear() error
	Keys() ([]string, error)
}
