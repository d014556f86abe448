package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/document"
)

// DocumentRepository defines the persistence contract for documents.
type DocumentRepository interface {
	// Put stores the document, replacing any document with the same id.
	Put(ctx context.Context, d *document.Document) error

	// Get retrieves a document by id. Returns errs.ErrObjectNotFound if absent.
	Get(ctx context.Context, id string) (*document.Document, error)

	// ListByOrder returns the documents of an order in insertion order.
	ListByOrder(ctx context.Context, orderID string) ([]*document.Document, error)

	// List returns all documents in insertion order.
	List(ctx context.Context) ([]*document.Document, error)
}
