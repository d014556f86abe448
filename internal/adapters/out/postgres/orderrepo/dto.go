// Package orderrepo maps archived orders between snapshot records and the "orders"
// table.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// OrderDTO represents the database structure of an archived order.
type OrderDTO struct {
	ID               string     `gorm:"primaryKey"`
	PlacedAt         time.Time  `gorm:"not null"`
	Status           string     `gorm:"index;not null"`
	Product          ProductDTO `gorm:"embedded;embeddedPrefix:product_"`
	CustomerAddress  string     `gorm:"not null"`
	WarehouseAddress string     `gorm:"not null"`
	SellerAddress    string     `gorm:"not null"`
}

// TableName specifies the database table name for orders.
func (OrderDTO) TableName() string {
	return "orders"
}

// ProductDTO is the embedded product descriptor of an order row.
type ProductDTO struct {
	Name       string
	Dimensions string
	Weight     string
	Quantity   int
}

func fromRecord(r order.Record) OrderDTO {
	return OrderDTO{
		ID:       r.ID,
		PlacedAt: r.PlacedAt,
		Status:   r.Status,
		Product: ProductDTO{
			Name:       r.Product.Name,
			Dimensions: r.Product.Dimensions,
			Weight:     r.Product.Weight,
			Quantity:   r.Product.Quantity,
		},
		CustomerAddress:  r.CustomerAddress,
		WarehouseAddress: r.WarehouseAddress,
		SellerAddress:    r.SellerAddress,
	}
}

func toRecord(dto OrderDTO) order.Record {
	return order.Record{
		ID:       dto.ID,
		PlacedAt: dto.PlacedAt.UTC(),
		Status:   dto.Status,
		Product: order.ProductRecord{
			Name:       dto.Product.Name,
			Dimensions: dto.Product.Dimensions,
			Weight:     dto.Product.Weight,
			Quantity:   dto.Product.Quantity,
		},
		CustomerAddress:  dto.CustomerAddress,
		WarehouseAddress: dto.WarehouseAddress,
		SellerAddress:    dto.SellerAddress,
	}
}
