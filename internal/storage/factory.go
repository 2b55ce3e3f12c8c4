package storage

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

const (
	EngineSQLite = "sqlite"
	EngineMemory = "memory"
)

// NewByEngine picks a Store implementation. The sqlite engine persists
// through the given gorm connection; memory keeps everything in process.
func NewByEngine(engine string, db *gorm.DB) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(engine)) {
	case "", EngineSQLite:
		if db == nil {
			return nil, errors.New("sqlite store requires a database connection")
		}
		return NewGormStore(db), nil
	case EngineMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errors.New("unsupported store engine: " + engine)
	}
}
