// Package http implements the inbound HTTP surface of the procurement
// service. It coordinates between echo handlers and application use cases.
package http

import (
	"errors"
	"net/http"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/delivery"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for orders, deliveries and fulfillment.
type Server struct {
	// Command handlers
	createOrderHandler     commands.CreateOrderCommandHandler
	approveOrderHandler    commands.ApproveOrderCommandHandler
	rejectOrderHandler     commands.RejectOrderCommandHandler
	recordDeliveryHandler  commands.RecordDeliveryCommandHandler
	markInTransitHandler   commands.MarkDeliveryInTransitCommandHandler
	markDeliveredHandler   commands.MarkDeliveryDeliveredCommandHandler
	reconcileOrderHandler  commands.ReconcileOrderCommandHandler

	// Query handlers
	getOrderFulfillmentHandler queries.GetOrderFulfillmentQueryHandler
	getOpenOrdersHandler       queries.GetOpenOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	approveOrderHandler commands.ApproveOrderCommandHandler,
	rejectOrderHandler commands.RejectOrderCommandHandler,
	recordDeliveryHandler commands.RecordDeliveryCommandHandler,
	markInTransitHandler commands.MarkDeliveryInTransitCommandHandler,
	markDeliveredHandler commands.MarkDeliveryDeliveredCommandHandler,
	reconcileOrderHandler commands.ReconcileOrderCommandHandler,
	getOrderFulfillmentHandler queries.GetOrderFulfillmentQueryHandler,
	getOpenOrdersHandler queries.GetOpenOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		approveOrderHandler:        approveOrderHandler,
		rejectOrderHandler:         rejectOrderHandler,
		recordDeliveryHandler:      recordDeliveryHandler,
		markInTransitHandler:       markInTransitHandler,
		markDeliveredHandler:       markDeliveredHandler,
		reconcileOrderHandler:      reconcileOrderHandler,
		getOrderFulfillmentHandler: getOrderFulfillmentHandler,
		getOpenOrdersHandler:       getOpenOrdersHandler,
	}
}

// RegisterRoutes wires all endpoints onto the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.POST("/orders/:orderID/approve", s.ApproveOrder)
	api.POST("/orders/:orderID/reject", s.RejectOrder)
	api.POST("/orders/:orderID/deliveries", s.RecordDelivery)
	api.POST("/orders/:orderID/reconcile", s.ReconcileOrder)
	api.GET("/orders/:orderID/fulfillment", s.GetOrderFulfillment)
	api.GET("/orders/open", s.GetOpenOrders)
	api.POST("/deliveries/:deliveryID/in-transit", s.MarkDeliveryInTransit)
	api.POST("/deliveries/:deliveryID/delivered", s.MarkDeliveryDelivered)
}

// CreateOrder handles POST /api/v1/orders - places a new purchase order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	companyID, err := kernel.UUIDFromString(req.CompanyID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid company ID: " + err.Error(),
		})
	}

	items, err := orderItemsFromRequest(req.Items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order items: " + err.Error(),
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, companyID, items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to place order",
		})
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// ApproveOrder handles POST /api/v1/orders/:orderID/approve.
func (s *Server) ApproveOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewApproveOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	if handleErr := s.approveOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to approve order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RejectOrder handles POST /api/v1/orders/:orderID/reject.
func (s *Server) RejectOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewRejectOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	if handleErr := s.rejectOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to reject order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordDelivery handles POST /api/v1/orders/:orderID/deliveries.
func (s *Server) RecordDelivery(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var req RecordDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err = ctx.Validate(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery data: " + err.Error(),
		})
	}

	items, err := deliveryItemsFromRequest(req.Items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery items: " + err.Error(),
		})
	}

	deliveryID := kernel.NewUUID()
	cmd, err := commands.NewRecordDeliveryCommand(deliveryID, orderID, items)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery data: " + err.Error(),
		})
	}

	if handleErr := s.recordDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to record delivery")
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: deliveryID.String()})
}

// MarkDeliveryInTransit handles POST /api/v1/deliveries/:deliveryID/in-transit.
func (s *Server) MarkDeliveryInTransit(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery ID",
		})
	}

	cmd, err := commands.NewMarkDeliveryInTransitCommand(deliveryID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery ID: " + err.Error(),
		})
	}

	if handleErr := s.markInTransitHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to dispatch delivery")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDeliveryDelivered handles POST /api/v1/deliveries/:deliveryID/delivered.
// Confirming arrival immediately reconciles the owning order; the response
// carries the recomputed fulfillment so dashboards refresh in one round trip.
func (s *Server) MarkDeliveryDelivered(ctx echo.Context) error {
	deliveryID, err := kernel.UUIDFromString(ctx.Param("deliveryID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery ID",
		})
	}

	cmd, err := commands.NewMarkDeliveryDeliveredCommand(deliveryID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery ID: " + err.Error(),
		})
	}

	orderID, handleErr := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd)
	if handleErr != nil {
		return s.commandError(ctx, handleErr, "Failed to confirm delivery")
	}

	return s.reconcile(ctx, orderID)
}

// ReconcileOrder handles POST /api/v1/orders/:orderID/reconcile.
func (s *Server) ReconcileOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	return s.reconcile(ctx, orderID)
}

// GetOrderFulfillment handles GET /api/v1/orders/:orderID/fulfillment.
func (s *Server) GetOrderFulfillment(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	query, err := queries.NewGetOrderFulfillmentQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	resp, err := s.getOrderFulfillmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve fulfillment",
		})
	}

	return ctx.JSON(http.StatusOK, fulfillmentFromQuery(resp))
}

// GetOpenOrders handles GET /api/v1/orders/open.
func (s *Server) GetOpenOrders(ctx echo.Context) error {
	query := queries.NewGetOpenOrdersQuery()

	orders, err := s.getOpenOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]OpenOrderResponse, len(orders))
	for i, o := range orders {
		response[i] = OpenOrderResponse{
			ID:                o.ID.String(),
			CompanyID:         o.CompanyID.String(),
			ApprovalState:     o.ApprovalState.String(),
			FulfillmentStatus: statusJSON(o.FulfillmentStatus),
			QuantityDelivered: o.QuantityDelivered.String(),
			UpdatedAt:         o.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// reconcile runs the reconciliation use case for the order and renders the
// resulting report. A failed status write is still a success response; the
// persisted flag tells the caller whether the stored status is current.
func (s *Server) reconcile(ctx echo.Context, orderID kernel.UUID) error {
	cmd, err := commands.NewReconcileOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	result, err := s.reconcileOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.commandError(ctx, err, "Failed to reconcile order")
	}

	response := fulfillmentFromReport(orderID.String(), result.Report)
	response.Persisted = &result.Persisted

	return ctx.JSON(http.StatusOK, response)
}

// commandError maps use case failures onto HTTP statuses: missing aggregates
// become 404, everything else is reported as a conflict.
func (s *Server) commandError(ctx echo.Context, err error, message string) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: message + ": not found",
		})
	}

	return ctx.JSON(http.StatusConflict, Error{
		Code:    http.StatusConflict,
		Message: message + ": " + err.Error(),
	})
}

func orderItemsFromRequest(reqItems []LineItemRequest) ([]order.Item, error) {
	items := make([]order.Item, 0, len(reqItems))
	for _, reqItem := range reqItems {
		quantity, err := kernel.QuantityFromString(reqItem.Quantity)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(reqItem.ProductName, reqItem.Unit, quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func deliveryItemsFromRequest(reqItems []LineItemRequest) ([]delivery.Item, error) {
	items := make([]delivery.Item, 0, len(reqItems))
	for _, reqItem := range reqItems {
		quantity, err := kernel.QuantityFromString(reqItem.Quantity)
		if err != nil {
			return nil, err
		}

		item, err := delivery.NewItem(reqItem.ProductName, reqItem.Unit, quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
