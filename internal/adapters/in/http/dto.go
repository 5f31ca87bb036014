package http

import (
	"strings"
	"time"

	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/services"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Error is the JSON error payload returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineItemRequest is one requested product line in an order or delivery body.
type LineItemRequest struct {
	ProductName string `json:"product_name" validate:"required"`
	Unit        string `json:"unit"         validate:"required"`
	Quantity    string `json:"quantity"     validate:"required"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	CompanyID string            `json:"company_id" validate:"required,uuid"`
	Items     []LineItemRequest `json:"items"      validate:"required,min=1,dive"`
}

// RecordDeliveryRequest is the body of POST /api/v1/orders/:orderID/deliveries.
type RecordDeliveryRequest struct {
	Items []LineItemRequest `json:"items" validate:"required,min=1,dive"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// FulfillmentItemResponse is one order line in a fulfillment payload.
// Delivered is the raw recorded quantity and may exceed Ordered.
type FulfillmentItemResponse struct {
	ProductName string `json:"product_name"`
	Unit        string `json:"unit"`
	Ordered     string `json:"ordered"`
	Delivered   string `json:"delivered"`
}

// FulfillmentResponse is the fulfillment payload returned by the reconcile
// endpoints and GET /api/v1/orders/:orderID/fulfillment. Color, label and
// badge classes ship with the status so dashboard clients render it without
// duplicating the mapping.
type FulfillmentResponse struct {
	OrderID         string                    `json:"order_id"`
	Status          string                    `json:"status"`
	StatusLabel     string                    `json:"status_label"`
	StatusColor     string                    `json:"status_color"`
	BadgeClasses    string                    `json:"badge_classes"`
	TotalOrdered    string                    `json:"total_ordered"`
	TotalDelivered  string                    `json:"total_delivered"`
	PercentComplete float64                   `json:"percent_complete"`
	Persisted       *bool                     `json:"persisted,omitempty"`
	Items           []FulfillmentItemResponse `json:"items"`
}

// OpenOrderResponse is one row of GET /api/v1/orders/open.
type OpenOrderResponse struct {
	ID                string    `json:"id"`
	CompanyID         string    `json:"company_id"`
	ApprovalState     string    `json:"approval_state"`
	FulfillmentStatus string    `json:"fulfillment_status"`
	QuantityDelivered string    `json:"quantity_delivered"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// RequestValidator adapts go-playground/validator to echo's Validator interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator for request bodies.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

var _ echo.Validator = (*RequestValidator)(nil)

func statusJSON(status order.FulfillmentStatus) string {
	return strings.ToLower(status.String())
}

func fulfillmentFromReport(orderID string, report services.ReconciliationReport) FulfillmentResponse {
	items := make([]FulfillmentItemResponse, 0, len(report.Items))
	for _, item := range report.Items {
		items = append(items, FulfillmentItemResponse{
			ProductName: item.ProductName,
			Unit:        item.Unit,
			Ordered:     item.Ordered.String(),
			Delivered:   item.Delivered.String(),
		})
	}

	return FulfillmentResponse{
		OrderID:         orderID,
		Status:          statusJSON(report.Status),
		StatusLabel:     report.Status.Label(),
		StatusColor:     report.Status.Color(),
		BadgeClasses:    report.Status.BadgeClasses(),
		TotalOrdered:    report.TotalOrdered.String(),
		TotalDelivered:  report.TotalDelivered.String(),
		PercentComplete: report.PercentComplete,
		Items:           items,
	}
}

func fulfillmentFromQuery(resp queries.GetOrderFulfillmentQueryResponse) FulfillmentResponse {
	items := make([]FulfillmentItemResponse, 0, len(resp.Items))
	for _, item := range resp.Items {
		items = append(items, FulfillmentItemResponse{
			ProductName: item.ProductName,
			Unit:        item.Unit,
			Ordered:     item.Ordered.String(),
			Delivered:   item.Delivered.String(),
		})
	}

	return FulfillmentResponse{
		OrderID:         resp.OrderID.String(),
		Status:          statusJSON(resp.Status),
		StatusLabel:     resp.Status.Label(),
		StatusColor:     resp.Status.Color(),
		BadgeClasses:    resp.Status.BadgeClasses(),
		TotalOrdered:    resp.TotalOrdered.String(),
		TotalDelivered:  resp.TotalDelivered.String(),
		PercentComplete: resp.PercentComplete,
		Items:           items,
	}
}
