package orderrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/order"

	"gorm.io/gorm"
)

const batchSize = 200

// GormOrderRepository reads and replaces the archived orders.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository binds the repository to db, which may be a transaction.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// ReplaceAll deletes every archived order and inserts records.
func (r *GormOrderRepository) ReplaceAll(ctx context.Context, records map[string]order.Record) error {
	db := r.db.WithContext(ctx)
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&OrderDTO{}).Error; err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	dtos := make([]OrderDTO, 0, len(records))
	for _, rec := range records {
		dtos = append(dtos, fromRecord(rec))
	}
	return db.CreateInBatches(&dtos, batchSize).Error
}

// LoadAll returns every archived order keyed by id.
func (r *GormOrderRepository) LoadAll(ctx context.Context) (map[string]order.Record, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make(map[string]order.Record, len(dtos))
	for _, dto := range dtos {
		records[dto.ID] = toRecord(dto)
	}
	return records, nil
}
