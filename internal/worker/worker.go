package worker

import (
	"context"
	"time"

	"github.com/Alansi2025/inventory-management/internal/broker"
	"github.com/Alansi2025/inventory-management/internal/catalog"
	"github.com/Alansi2025/inventory-management/internal/models"
	"github.com/Alansi2025/inventory-management/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AlertPublisher publishes stock alerts. Satisfied by broker.EventPublisher.
type AlertPublisher interface {
	PublishStockLow(ctx context.Context, event *models.StockLowEvent) error
}

// StockWatcher consumes catalog events, keeps the inventory gauges
// current and raises an alert whenever a change leaves a product below
// the low-stock threshold.
type StockWatcher struct {
	consumer     *broker.Consumer
	eventHandler *broker.EventHandler
	store        *catalog.Store
	publisher    AlertPublisher
	logger       *zap.Logger
}

// NewStockWatcher creates a new stock watcher
func NewStockWatcher(consumer *broker.Consumer, store *catalog.Store, publisher AlertPublisher) *StockWatcher {
	w := &StockWatcher{
		consumer:  consumer,
		store:     store,
		publisher: publisher,
		logger:    util.GetLogger(),
	}

	eventHandler := broker.NewEventHandler()
	eventHandler.OnProductCreated(w.handleProductCreated)
	eventHandler.OnProductUpdated(w.handleProductUpdated)
	eventHandler.OnProductDeleted(w.handleProductDeleted)
	eventHandler.OnProductsBatchDeleted(w.handleProductsBatchDeleted)
	eventHandler.OnProductQuantitySet(w.handleProductQuantitySet)
	w.eventHandler = eventHandler

	return w
}

// Start starts the watcher
func (w *StockWatcher) Start(ctx context.Context) error {
	w.logger.Info("Starting stock watcher")
	return w.consumer.StartConsuming(ctx, w.eventHandler.HandleMessage)
}

// Stop stops the watcher
func (w *StockWatcher) Stop() error {
	w.logger.Info("Stopping stock watcher")
	return w.consumer.Close()
}

func (w *StockWatcher) handleProductCreated(ctx context.Context, event *models.ProductCreatedEvent) error {
	w.refreshGauges()
	if event.Product.Quantity < models.LowStockThreshold {
		w.alert(ctx, event.Product.ID, event.Product.Name, event.Product.Quantity)
	}
	return nil
}

func (w *StockWatcher) handleProductUpdated(ctx context.Context, event *models.ProductUpdatedEvent) error {
	w.refreshGauges()
	// alert only when the update crosses the threshold downwards
	if event.Product.Quantity < models.LowStockThreshold && event.PreviousQuantity >= models.LowStockThreshold {
		w.alert(ctx, event.Product.ID, event.Product.Name, event.Product.Quantity)
	}
	return nil
}

func (w *StockWatcher) handleProductDeleted(ctx context.Context, event *models.ProductDeletedEvent) error {
	w.refreshGauges()
	return nil
}

func (w *StockWatcher) handleProductsBatchDeleted(ctx context.Context, event *models.ProductsBatchDeletedEvent) error {
	w.refreshGauges()
	return nil
}

func (w *StockWatcher) handleProductQuantitySet(ctx context.Context, event *models.ProductQuantitySetEvent) error {
	w.refreshGauges()
	if event.Quantity >= models.LowStockThreshold {
		return nil
	}
	for _, id := range event.ProductIDs {
		p, ok := w.store.Get(id)
		if !ok {
			continue
		}
		w.alert(ctx, p.ID, p.Name, event.Quantity)
	}
	return nil
}

func (w *StockWatcher) alert(ctx context.Context, id, name string, quantity int) {
	util.LowStockAlertsTotal.Inc()
	w.logger.Warn("Product below low stock threshold",
		zap.String("product_id", id),
		zap.String("name", name),
		zap.Int("quantity", quantity))

	event := &models.StockLowEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeStockLow,
			Timestamp: time.Now(),
		},
		ProductID: id,
		Name:      name,
		Quantity:  quantity,
	}
	if err := w.publisher.PublishStockLow(ctx, event); err != nil {
		w.logger.Error("Failed to publish StockLow event", zap.Error(err))
	}
}

func (w *StockWatcher) refreshGauges() {
	snapshot := w.store.Snapshot()
	stats := catalog.ComputeStats(snapshot)

	util.InventoryProducts.Set(float64(stats.TotalProducts))
	util.InventoryValue.Set(stats.TotalValue)
	util.InventoryLowStockProducts.Set(float64(stats.LowStockItems))
	util.InventoryOutOfStockProducts.Set(float64(stats.OutOfStockItems))

	breakdown := catalog.ComputeCategoryBreakdown(snapshot)
	for _, category := range models.Categories() {
		util.InventoryCategoryProducts.WithLabelValues(string(category)).Set(float64(breakdown[category]))
	}
}
