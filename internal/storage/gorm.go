package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVSlot is one row of the kv_slots table
type KVSlot struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName overrides the gorm default
func (KVSlot) TableName() string {
	return "kv_slots"
}

// GormSlot stores slots in a SQL table through gorm. It works with the
// sqlite and postgres dialects.
type GormSlot struct {
	db *gorm.DB
}

// NewGormSlot migrates the kv_slots table and returns a slot backed by it
func NewGormSlot(db *gorm.DB) (*GormSlot, error) {
	if err := db.AutoMigrate(&KVSlot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate kv_slots: %w", err)
	}
	return &GormSlot{db: db}, nil
}

func (g *GormSlot) Get(ctx context.Context, key string) ([]byte, error) {
	var row KVSlot
	err := g.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read slot %q: %w", key, err)
	}
	return row.Value, nil
}

// Set upserts the row in a single statement.
func (g *GormSlot) Set(ctx context.Context, key string, value []byte) error {
	row := KVSlot{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to write slot %q: %w", key, err)
	}
	return nil
}
