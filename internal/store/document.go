package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"property-service/internal/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// stateDocumentKey is the fixed key of the single application record row.
const stateDocumentKey = "property_app_state"

// StateDocument is the database row holding the serialized record.
type StateDocument struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	Body      []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// DocumentStore persists the record as one JSON blob in a database row.
// This is the pluggable "remote database" backend; postgres and sqlite
// dialectors both work since the schema is a single keyed blob.
type DocumentStore struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewDocumentStore migrates the document table and returns the store
func NewDocumentStore(db *gorm.DB, log *zap.Logger) (*DocumentStore, error) {
	start := time.Now()
	if err := db.AutoMigrate(&StateDocument{}); err != nil {
		return nil, fmt.Errorf("failed to migrate state document schema: %w", err)
	}
	log.Info("State document schema migrated",
		zap.Duration("duration", time.Since(start)))
	return &DocumentStore{db: db, log: log}, nil
}

// Load reads the record row. A missing row yields the seeded default state;
// an unparseable body yields the seeded default plus ErrCorruptState.
func (d *DocumentStore) Load() (*model.AppState, error) {
	var doc StateDocument
	result := d.db.First(&doc, "key = ?", stateDocumentKey)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return Seed(), nil
	}
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load state document: %w", result.Error)
	}

	var state model.AppState
	if err := json.Unmarshal(doc.Body, &state); err != nil {
		d.log.Warn("State document is unparseable, falling back to seed",
			zap.Error(err))
		return Seed(), ErrCorruptState
	}
	return &state, nil
}

// Save upserts the record row with the full serialized state
func (d *DocumentStore) Save(state *model.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	doc := StateDocument{Key: stateDocumentKey, Body: raw}
	result := d.db.Save(&doc)
	if result.Error != nil {
		return fmt.Errorf("failed to save state document: %w", result.Error)
	}
	return nil
}
