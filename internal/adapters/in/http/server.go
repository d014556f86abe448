// Package http exposes the order lifecycle over a JSON API built on echo.
//
// Routes:
//
//	POST /api/v1/orders               seed a new order
//	POST /api/v1/orders/:id/advance   move an order to SHIPPED or DELIVERED
//	GET  /api/v1/orders               list orders with their shipment summary
//	GET  /api/v1/orders/:id           order with shipment and documents
//	GET  /api/v1/snapshot             export the whole store
//	GET  /health                      liveness
package http

import (
	"context"
	"net/http"

	"fulfillment/internal/adapters/in/trigger"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// Triggerer advances an order for an incoming event.
type Triggerer interface {
	Trigger(ctx context.Context, event trigger.Event) (commands.AdvanceOrderResult, error)
}

// Server handles HTTP requests by delegating to the application use cases.
type Server struct {
	// Command side
	seedOrderHandler commands.SeedOrderCommandHandler
	triggerer        Triggerer

	// Query side
	getOrderLifecycleHandler queries.GetOrderLifecycleQueryHandler
	listOrdersHandler        queries.ListOrdersQueryHandler
	snapshots                ports.SnapshotStore
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	seedOrderHandler commands.SeedOrderCommandHandler,
	triggerer Triggerer,
	getOrderLifecycleHandler queries.GetOrderLifecycleQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	snapshots ports.SnapshotStore,
) *Server {
	return &Server{
		seedOrderHandler:         seedOrderHandler,
		triggerer:                triggerer,
		getOrderLifecycleHandler: getOrderLifecycleHandler,
		listOrdersHandler:        listOrdersHandler,
		snapshots:                snapshots,
	}
}

// RegisterRoutes adds the API routes to e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.SeedOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.GET("/snapshot", s.ExportSnapshot)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// SeedOrder handles POST /api/v1/orders. The body is an order record; a missing
// status means OPEN.
func (s *Server) SeedOrder(ctx echo.Context) error {
	var record order.Record
	if err := ctx.Bind(&record); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSeedOrderCommand(record)
	if err != nil {
		return errorResponse(ctx, err, "Invalid order data")
	}

	lifecycle, err := s.seedOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to seed order")
	}

	return ctx.JSON(http.StatusCreated, lifecycle)
}

// AdvanceRequest is the body of POST /api/v1/orders/:id/advance.
type AdvanceRequest struct {
	TargetStatus string `json:"targetStatus"`
	Carrier      string `json:"carrier,omitempty"`
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance. It answers 200 for an
// applied transition and for a replay alike; the applied flag tells them apart.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	var req AdvanceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	result, err := s.triggerer.Trigger(ctx.Request().Context(), trigger.Event{
		OrderID:      ctx.Param("id"),
		TargetStatus: req.TargetStatus,
		Carrier:      req.Carrier,
	})
	if err != nil {
		return errorResponse(ctx, err, "Failed to advance order")
	}

	return ctx.JSON(http.StatusOK, result)
}

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderLifecycleQuery(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err, "Invalid order id")
	}

	lifecycle, err := s.getOrderLifecycleHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, lifecycle)
}

// ExportSnapshot handles GET /api/v1/snapshot.
func (s *Server) ExportSnapshot(ctx echo.Context) error {
	snapshot, err := s.snapshots.Export(ctx.Request().Context())
	if err != nil {
		return errorResponse(ctx, err, "Failed to export snapshot")
	}

	return ctx.JSON(http.StatusOK, snapshot)
}
