package documentrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/document"

	"gorm.io/gorm"
)

const batchSize = 200

// GormDocumentRepository reads and replaces the archived documents.
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository binds the repository to db, which may be a transaction.
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// ReplaceAll deletes every archived document and inserts records.
func (r *GormDocumentRepository) ReplaceAll(ctx context.Context, records map[string]document.Record) error {
	db := r.db.WithContext(ctx)
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&DocumentDTO{}).Error; err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}

	dtos := make([]DocumentDTO, 0, len(records))
	for _, rec := range records {
		dtos = append(dtos, fromRecord(rec))
	}
	return db.CreateInBatches(&dtos, batchSize).Error
}

// LoadAll returns every archived document keyed by id.
func (r *GormDocumentRepository) LoadAll(ctx context.Context) (map[string]document.Record, error) {
	var dtos []DocumentDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	records := make(map[string]document.Record, len(dtos))
	for _, dto := range dtos {
		records[dto.ID] = toRecord(dto)
	}
	return records, nil
}
