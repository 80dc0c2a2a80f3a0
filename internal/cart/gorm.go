// internal/cart/gorm.go
package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/storefront/internal/models"
)

// GormPersister stores snapshots in the store_snapshots table.
type GormPersister struct {
	db *gorm.DB
}

func NewGormPersister(db *gorm.DB) *GormPersister {
	return &GormPersister{db: db}
}

func (p *GormPersister) Load(ctx context.Context, key string) (State, bool, error) {
	var row models.StoreSnapshot
	err := p.db.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return State{}, false, nil
	}
	if err != nil {
		return State{}, false, fmt.Errorf("database error: %w", err)
	}

	state, err := decodeState([]byte(row.Value))
	if err != nil {
		return State{}, false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return state, true, nil
}

func (p *GormPersister) Save(ctx context.Context, key string, state State) error {
	data, err := encodeState(state)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	row := models.StoreSnapshot{Key: key, Value: string(data), UpdatedAt: time.Now()}
	err = p.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (p *GormPersister) Delete(ctx context.Context, key string) error {
	if err := p.db.WithContext(ctx).Delete(&models.StoreSnapshot{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
