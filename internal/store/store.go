package store

import (
	"errors"
	"fmt"

	"property-service/internal/model"
	"property-service/pkg/config"
	"property-service/pkg/database"

	"go.uber.org/zap"
)

// ErrCorruptState reports that the persisted record could not be parsed.
// The store recovers by seeding the default state; callers treat this as a
// warning, not a crash.
var ErrCorruptState = errors.New("persisted state is corrupt, seeded default state")

// Store persists the whole application record. Load returns the persisted
// state or a seeded default if none exists; Save overwrites the full
// document. Last write wins, matching the single-writer session model.
type Store interface {
	Load() (*model.AppState, error)
	Save(state *model.AppState) error
}

var active Store

// Init selects and initializes the configured store backend
func Init(cfg *config.Config, log *zap.Logger) error {
	switch cfg.Store.Backend {
	case "file":
		active = NewFileStore(cfg.Store.FilePath)
	case "postgres", "sqlite":
		if err := database.InitDB(cfg); err != nil {
			return fmt.Errorf("failed to initialize store database: %w", err)
		}
		ds, err := NewDocumentStore(database.GetDB(), log)
		if err != nil {
			return err
		}
		active = ds
	case "memory":
		active = NewMemoryStore(Seed())
	default:
		return fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	log.Info("Record store initialized", zap.String("backend", cfg.Store.Backend))
	return nil
}

// Get returns the active store instance
func Get() Store {
	return active
}
