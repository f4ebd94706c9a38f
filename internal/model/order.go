package model

// OrderStatus enumerates order lifecycle states enforced by the backend.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusPacking   OrderStatus = "PACKING"
	OrderStatusReady     OrderStatus = "READY"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// FulfillmentType is how an order reaches the customer.
type FulfillmentType string

const (
	FulfillmentDelivery FulfillmentType = "DELIVERY"
	FulfillmentPickup   FulfillmentType = "PICKUP"
)

// OrderStore is the store reference embedded into orders.
type OrderStore struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// Order is a placed order as returned by the backend.
type Order struct {
	ID           ID              `json:"id"`
	CustomerName string          `json:"customerName"`
	Items        int             `json:"items"`
	Amount       float64         `json:"amount"`
	Status       OrderStatus     `json:"status"`
	Address      string          `json:"address,omitempty"`
	Type         FulfillmentType `json:"type"`
	CreatedAt    string          `json:"createdAt"`
	Store        *OrderStore     `json:"store,omitempty"`
}

// CreateOrderRequest is the payload for placing an order.
type CreateOrderRequest struct {
	CustomerName   string          `json:"customerName"`
	Items          int             `json:"items"`
	Amount         float64         `json:"amount"`
	Address        string          `json:"address,omitempty"`
	Type           FulfillmentType `json:"type"`
	PrescriptionID string          `json:"prescriptionId,omitempty"`
}
