// Package documentrepo maps archived documents between snapshot records and the
// "documents" table.
package documentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/document"
)

// DocumentDTO represents the database structure of an archived document.
// Carrier and TrackingNumber are NULL for every kind but Label.
type DocumentDTO struct {
	ID             string `gorm:"primaryKey"`
	OrderID        string `gorm:"index;not null"`
	Name           string
	Kind           string `gorm:"not null"`
	IssuedAt       time.Time
	Size           string
	Status         string
	URL            string
	Carrier        *string
	TrackingNumber *string
}

// TableName specifies the database table name for documents.
func (DocumentDTO) TableName() string {
	return "documents"
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func fromRecord(r document.Record) DocumentDTO {
	return DocumentDTO{
		ID:             r.ID,
		OrderID:        r.OrderID,
		Name:           r.Name,
		Kind:           r.Kind,
		IssuedAt:       r.IssuedAt,
		Size:           r.Size,
		Status:         r.Status,
		URL:            r.URL,
		Carrier:        optional(r.Carrier),
		TrackingNumber: optional(r.TrackingNumber),
	}
}

func toRecord(dto DocumentDTO) document.Record {
	return document.Record{
		ID:             dto.ID,
		OrderID:        dto.OrderID,
		Name:           dto.Name,
		Kind:           dto.Kind,
		IssuedAt:       dto.IssuedAt.UTC(),
		Size:           dto.Size,
		Status:         dto.Status,
		URL:            dto.URL,
		Carrier:        deref(dto.Carrier),
		TrackingNumber: deref(dto.TrackingNumber),
	}
}
