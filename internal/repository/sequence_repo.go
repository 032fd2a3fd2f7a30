package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"erpforms/internal/model"

	"gorm.io/gorm"
)

// ErrSequenceExhausted is returned when the entity table already holds the largest representable id.
var ErrSequenceExhausted = errors.New("sequence exhausted")

// SequenceRepository hands out per-entity numbers used for record ids and display codes.
type SequenceRepository interface {
	// Next increments the entity's counter and returns the new value. It must run inside
	// the transaction that inserts the record: the counter row stays locked until commit,
	// so concurrent creations of the same entity are serialized.
	Next(ctx context.Context, entity model.Entity, table string) (int64, error)
}

type sequenceRepository struct {
	db *gorm.DB
}

func NewSequenceRepository(db *gorm.DB) SequenceRepository {
	return &sequenceRepository{db: db}
}

func (r *sequenceRepository) Next(ctx context.Context, entity model.Entity, table string) (int64, error) {
	db := GetDB(ctx, r.db)

	if err := db.Exec(
		"INSERT INTO code_sequences (entity, last_value) VALUES (?, 0) ON CONFLICT (entity) DO NOTHING", entity,
	).Error; err != nil {
		return 0, fmt.Errorf("init sequence %s: %w", entity, err)
	}
	if err := db.Exec(
		"UPDATE code_sequences SET last_value = last_value + 1 WHERE entity = ?", entity,
	).Error; err != nil {
		return 0, fmt.Errorf("increment sequence %s: %w", entity, err)
	}

	var current int64
	if err := db.Raw("SELECT last_value FROM code_sequences WHERE entity = ?", entity).Row().Scan(&current); err != nil {
		return 0, fmt.Errorf("read sequence %s: %w", entity, err)
	}

	// Rows inserted with explicit ids, or before the counter existed, must not be reused.
	var maxID sql.NullInt64
	if err := db.Raw(fmt.Sprintf("SELECT MAX(id) FROM %s", table)).Row().Scan(&maxID); err != nil {
		return 0, fmt.Errorf("max id %s: %w", table, err)
	}
	if maxID.Valid && current <= maxID.Int64 {
		if maxID.Int64 == math.MaxInt64 {
			return 0, fmt.Errorf("advance sequence %s: %w", entity, ErrSequenceExhausted)
		}
		current = maxID.Int64 + 1
		if err := db.Exec(
			"UPDATE code_sequences SET last_value = ? WHERE entity = ?", current, entity,
		).Error; err != nil {
			return 0, fmt.Errorf("advance sequence %s: %w", entity, err)
		}
	}

	return current, nil
}
