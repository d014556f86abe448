package shipmentrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

const batchSize = 200

// GormShipmentRepository reads and replaces the archived shipments.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository binds the repository to db, which may be a transaction.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// ReplaceAll deletes every archived shipment and inserts records.
func (r *GormShipmentRepository) ReplaceAll(ctx context.Context, records map[string]shipment.Record) error {
	db := r.db.WithContext(ctx)
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ShipmentDTO{}).Error; err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	dtos := make([]ShipmentDTO, 0, len(records))
	for _, rec := range records {
		dtos = append(dtos, fromRecord(rec))
	}
	return db.CreateInBatches(&dtos, batchSize).Error
}

// LoadAll returns every archived shipment keyed by id.
func (r *GormShipmentRepository) LoadAll(ctx context.Context) (map[string]shipment.Record, error) {
	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make(map[string]shipment.Record, len(dtos))
	for _, dto := range dtos {
		records[dto.ID] = toRecord(dto)
	}
	return records, nil
}
