package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Alansi2025/inventory-management/internal/models"
	"github.com/Alansi2025/inventory-management/internal/util"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// EventPublisher handles publishing domain events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishProductCreated publishes a ProductCreated event
func (ep *EventPublisher) PublishProductCreated(ctx context.Context, event *models.ProductCreatedEvent) error {
	return ep.producer.PublishEvent(ctx, productKey(event.Product.ID), event)
}

// PublishProductUpdated publishes a ProductUpdated event
func (ep *EventPublisher) PublishProductUpdated(ctx context.Context, event *models.ProductUpdatedEvent) error {
	return ep.producer.PublishEvent(ctx, productKey(event.Product.ID), event)
}

// PublishProductDeleted publishes a ProductDeleted event
func (ep *EventPublisher) PublishProductDeleted(ctx context.Context, event *models.ProductDeletedEvent) error {
	return ep.producer.PublishEvent(ctx, productKey(event.ProductID), event)
}

// PublishProductsBatchDeleted publishes a ProductsBatchDeleted event.
// Batch events span products, so they are keyed by event id.
func (ep *EventPublisher) PublishProductsBatchDeleted(ctx context.Context, event *models.ProductsBatchDeletedEvent) error {
	return ep.producer.PublishEvent(ctx, batchKey(event.EventID), event)
}

// PublishProductQuantitySet publishes a ProductQuantitySet event
func (ep *EventPublisher) PublishProductQuantitySet(ctx context.Context, event *models.ProductQuantitySetEvent) error {
	return ep.producer.PublishEvent(ctx, batchKey(event.EventID), event)
}

// PublishStockLow publishes a StockLow event
func (ep *EventPublisher) PublishStockLow(ctx context.Context, event *models.StockLowEvent) error {
	return ep.producer.PublishEvent(ctx, productKey(event.ProductID), event)
}

func productKey(id string) string {
	return fmt.Sprintf("product-%s", id)
}

func batchKey(eventID string) string {
	return fmt.Sprintf("batch-%s", eventID)
}

// EventHandler routes incoming catalog events to registered callbacks
type EventHandler struct {
	onProductCreated       func(context.Context, *models.ProductCreatedEvent) error
	onProductUpdated       func(context.Context, *models.ProductUpdatedEvent) error
	onProductDeleted       func(context.Context, *models.ProductDeletedEvent) error
	onProductsBatchDeleted func(context.Context, *models.ProductsBatchDeletedEvent) error
	onProductQuantitySet   func(context.Context, *models.ProductQuantitySetEvent) error
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// OnProductCreated registers a handler for ProductCreated events
func (eh *EventHandler) OnProductCreated(handler func(context.Context, *models.ProductCreatedEvent) error) {
	eh.onProductCreated = handler
}

// OnProductUpdated registers a handler for ProductUpdated events
func (eh *EventHandler) OnProductUpdated(handler func(context.Context, *models.ProductUpdatedEvent) error) {
	eh.onProductUpdated = handler
}

// OnProductDeleted registers a handler for ProductDeleted events
func (eh *EventHandler) OnProductDeleted(handler func(context.Context, *models.ProductDeletedEvent) error) {
	eh.onProductDeleted = handler
}

// OnProductsBatchDeleted registers a handler for ProductsBatchDeleted events
func (eh *EventHandler) OnProductsBatchDeleted(handler func(context.Context, *models.ProductsBatchDeletedEvent) error) {
	eh.onProductsBatchDeleted = handler
}

// OnProductQuantitySet registers a handler for ProductQuantitySet events
func (eh *EventHandler) OnProductQuantitySet(handler func(context.Context, *models.ProductQuantitySetEvent) error) {
	eh.onProductQuantitySet = handler
}

// HandleMessage routes messages to appropriate handlers
func (eh *EventHandler) HandleMessage(ctx context.Context, msg kafka.Message) error {
	var baseEvent models.BaseEvent
	if err := json.Unmarshal(msg.Value, &baseEvent); err != nil {
		return fmt.Errorf("failed to unmarshal base event: %w", err)
	}

	util.GetLogger().Debug("Handling event",
		zap.String("type", baseEvent.EventType),
		zap.String("id", baseEvent.EventID))

	switch baseEvent.EventType {
	case models.EventTypeProductCreated:
		if eh.onProductCreated != nil {
			var event models.ProductCreatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal ProductCreated event: %w", err)
			}
			return eh.onProductCreated(ctx, &event)
		}

	case models.EventTypeProductUpdated:
		if eh.onProductUpdated != nil {
			var event models.ProductUpdatedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal ProductUpdated event: %w", err)
			}
			return eh.onProductUpdated(ctx, &event)
		}

	case models.EventTypeProductDeleted:
		if eh.onProductDeleted != nil {
			var event models.ProductDeletedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal ProductDeleted event: %w", err)
			}
			return eh.onProductDeleted(ctx, &event)
		}

	case models.EventTypeProductsBatchDeleted:
		if eh.onProductsBatchDeleted != nil {
			var event models.ProductsBatchDeletedEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal ProductsBatchDeleted event: %w", err)
			}
			return eh.onProductsBatchDeleted(ctx, &event)
		}

	case models.EventTypeProductQuantitySet:
		if eh.onProductQuantitySet != nil {
			var event models.ProductQuantitySetEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				return fmt.Errorf("failed to unmarshal ProductQuantitySet event: %w", err)
			}
			return eh.onProductQuantitySet(ctx, &event)
		}

	default:
		util.GetLogger().Debug("Unhandled event type", zap.String("type", baseEvent.EventType))
	}

	return nil
}
