package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// Record is the serializable form of an Order.
type Record struct {
	ID               string        `json:"id"`
	PlacedAt         time.Time     `json:"placedAt"`
	Status           string        `json:"status"`
	Product          ProductRecord `json:"product"`
	CustomerAddress  string        `json:"customerAddress"`
	WarehouseAddress string        `json:"warehouseAddress"`
	SellerAddress    string        `json:"sellerAddress"`
}

// ProductRecord is the serializable form of a Product.
type ProductRecord struct {
	Name       string `json:"name"`
	Dimensions string `json:"dimensions"`
	Weight     string `json:"weight"`
	Quantity   int    `json:"quantity"`
}

// Record returns the serializable form of the order.
func (o *Order) Record() Record {
	return Record{
		ID:       o.id,
		PlacedAt: o.placedAt,
		Status:   o.status.String(),
		Product: ProductRecord{
			Name:       o.product.name,
			Dimensions: o.product.dimensions,
			Weight:     o.product.weight,
			Quantity:   o.product.quantity,
		},
		CustomerAddress:  o.customerAddress.String(),
		WarehouseAddress: o.warehouseAddress.String(),
		SellerAddress:    o.sellerAddress.String(),
	}
}

// FromRecord rebuilds an Order from its serializable form. An empty status is
// read as OPEN so that order-creation payloads can omit it.
func FromRecord(r Record) (*Order, error) {
	status := Open
	if r.Status != "" {
		parsed, err := ParseStatus(r.Status)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	product, productErr := NewProduct(r.Product.Name, r.Product.Dimensions, r.Product.Weight, r.Product.Quantity)
	customer, customerErr := kernel.NewAddress("customer address", r.CustomerAddress)
	warehouse, warehouseErr := kernel.NewAddress("warehouse address", r.WarehouseAddress)
	seller, sellerErr := kernel.NewAddress("seller address", r.SellerAddress)
	if err := errors.Join(productErr, customerErr, warehouseErr, sellerErr); err != nil {
		return nil, err
	}

	return RestoreOrder(r.ID, r.PlacedAt, status, product, Addresses{
		Customer:  customer,
		Warehouse: warehouse,
		Seller:    seller,
	})
}
