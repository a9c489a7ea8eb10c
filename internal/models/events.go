package models

import "time"

// Event types
const (
	EventTypeProductCreated       = "PRODUCT_CREATED"
	EventTypeProductUpdated       = "PRODUCT_UPDATED"
	EventTypeProductDeleted       = "PRODUCT_DELETED"
	EventTypeProductsBatchDeleted = "PRODUCTS_BATCH_DELETED"
	EventTypeProductQuantitySet   = "PRODUCT_QUANTITY_SET"
	EventTypeStockLow             = "STOCK_LOW"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// ProductCreatedEvent published when a product is added to the catalog
type ProductCreatedEvent struct {
	BaseEvent
	Product Product `json:"product"`
}

// ProductUpdatedEvent published when a product is replaced via edit
type ProductUpdatedEvent struct {
	BaseEvent
	Product          Product `json:"product"`
	PreviousQuantity int     `json:"previous_quantity"`
}

// ProductDeletedEvent published when a single product is removed
type ProductDeletedEvent struct {
	BaseEvent
	ProductID string `json:"product_id"`
}

// ProductsBatchDeletedEvent published when a batch delete removes products
type ProductsBatchDeletedEvent struct {
	BaseEvent
	ProductIDs []string `json:"product_ids"`
}

// ProductQuantitySetEvent published when a batch action sets quantities
type ProductQuantitySetEvent struct {
	BaseEvent
	ProductIDs []string `json:"product_ids"`
	Quantity   int      `json:"quantity"`
}

// StockLowEvent published by the stock watcher when a product drops below
// the low-stock threshold
type StockLowEvent struct {
	BaseEvent
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}
