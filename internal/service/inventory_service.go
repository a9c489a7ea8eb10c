package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Alansi2025/inventory-management/internal/catalog"
	"github.com/Alansi2025/inventory-management/internal/models"
	"github.com/Alansi2025/inventory-management/internal/query"
	"github.com/Alansi2025/inventory-management/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrValidation marks input rejected at the service boundary. The API
// layer maps it to a 400 response.
var ErrValidation = errors.New("validation failed")

// CatalogEventPublisher publishes catalog change events. Satisfied by
// broker.EventPublisher.
type CatalogEventPublisher interface {
	PublishProductCreated(ctx context.Context, event *models.ProductCreatedEvent) error
	PublishProductUpdated(ctx context.Context, event *models.ProductUpdatedEvent) error
	PublishProductDeleted(ctx context.Context, event *models.ProductDeletedEvent) error
	PublishProductsBatchDeleted(ctx context.Context, event *models.ProductsBatchDeletedEvent) error
	PublishProductQuantitySet(ctx context.Context, event *models.ProductQuantitySetEvent) error
}

// InventoryService handles catalog business logic
type InventoryService struct {
	store     *catalog.Store
	view      *query.TableView
	publisher CatalogEventPublisher
	logger    *zap.Logger
}

// NewInventoryService creates a new inventory service
func NewInventoryService(store *catalog.Store, view *query.TableView, publisher CatalogEventPublisher) *InventoryService {
	return &InventoryService{
		store:     store,
		view:      view,
		publisher: publisher,
		logger:    util.GetLogger(),
	}
}

// ProductRequest is the payload for creating or replacing a product.
type ProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	SKU         string          `json:"sku" binding:"required"`
	Category    models.Category `json:"category" binding:"required"`
	Price       float64         `json:"price" binding:"min=0"`
	Quantity    int             `json:"quantity" binding:"min=0"`
	Description string          `json:"description"`
}

func (r *ProductRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if strings.TrimSpace(r.SKU) == "" {
		return fmt.Errorf("%w: sku must not be empty", ErrValidation)
	}
	if !r.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, r.Category)
	}
	if r.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if r.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	return nil
}

func (r *ProductRequest) toProduct() models.Product {
	return models.Product{
		Name:        strings.TrimSpace(r.Name),
		SKU:         strings.TrimSpace(r.SKU),
		Category:    r.Category,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Description: strings.TrimSpace(r.Description),
	}
}

// ListProducts returns the full catalog snapshot in insertion order.
func (s *InventoryService) ListProducts(ctx context.Context) []models.Product {
	return s.store.Snapshot()
}

// GetProduct retrieves a single product by id.
func (s *InventoryService) GetProduct(ctx context.Context, id string) (models.Product, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return models.Product{}, catalog.ErrNotFound
	}
	return p, nil
}

// CreateProduct adds a product to the catalog
func (s *InventoryService) CreateProduct(ctx context.Context, req *ProductRequest) (models.Product, error) {
	ctx, span := util.StartSpan(ctx, "InventoryService.CreateProduct")
	defer span.End()

	if err := req.validate(); err != nil {
		return models.Product{}, err
	}

	stored := s.store.Add(req.toProduct())

	util.ProductsCreatedTotal.Inc()
	s.logger.Info("Product created",
		zap.String("product_id", stored.ID),
		zap.String("sku", stored.SKU))

	event := &models.ProductCreatedEvent{
		BaseEvent: newBaseEvent(models.EventTypeProductCreated),
		Product:   stored,
	}
	if err := s.publisher.PublishProductCreated(ctx, event); err != nil {
		s.logger.Error("Failed to publish ProductCreated event", zap.Error(err))
	}

	return stored, nil
}

// UpdateProduct replaces the stored product with the given id
func (s *InventoryService) UpdateProduct(ctx context.Context, id string, req *ProductRequest) (models.Product, error) {
	ctx, span := util.StartSpan(ctx, "InventoryService.UpdateProduct")
	defer span.End()

	if err := req.validate(); err != nil {
		return models.Product{}, err
	}

	prev, ok := s.store.Get(id)
	if !ok {
		return models.Product{}, catalog.ErrNotFound
	}

	p := req.toProduct()
	p.ID = id
	if err := s.store.Update(p); err != nil {
		return models.Product{}, err
	}
	updated, _ := s.store.Get(id)

	util.ProductsUpdatedTotal.Inc()
	s.logger.Info("Product updated",
		zap.String("product_id", id),
		zap.Int("previous_quantity", prev.Quantity),
		zap.Int("quantity", updated.Quantity))

	event := &models.ProductUpdatedEvent{
		BaseEvent:        newBaseEvent(models.EventTypeProductUpdated),
		Product:          updated,
		PreviousQuantity: prev.Quantity,
	}
	if err := s.publisher.PublishProductUpdated(ctx, event); err != nil {
		s.logger.Error("Failed to publish ProductUpdated event", zap.Error(err))
	}

	return updated, nil
}

// DeleteProduct removes a product. Deleting an unknown id is a no-op;
// the removed flag reports whether anything changed.
func (s *InventoryService) DeleteProduct(ctx context.Context, id string) bool {
	ctx, span := util.StartSpan(ctx, "InventoryService.DeleteProduct")
	defer span.End()

	removed := s.store.Delete(id)
	if !removed {
		return false
	}

	util.ProductsDeletedTotal.Inc()
	s.logger.Info("Product deleted", zap.String("product_id", id))

	event := &models.ProductDeletedEvent{
		BaseEvent: newBaseEvent(models.EventTypeProductDeleted),
		ProductID: id,
	}
	if err := s.publisher.PublishProductDeleted(ctx, event); err != nil {
		s.logger.Error("Failed to publish ProductDeleted event", zap.Error(err))
	}

	return true
}

// BatchDelete removes every product in ids, ignoring unknown ids, and
// clears the selection afterwards.
func (s *InventoryService) BatchDelete(ctx context.Context, ids []string) []string {
	ctx, span := util.StartSpan(ctx, "InventoryService.BatchDelete")
	defer span.End()

	if len(ids) == 0 {
		return nil
	}

	removed := s.store.BatchDelete(ids)
	s.view.ClearSelection()

	if len(removed) == 0 {
		return removed
	}

	util.ProductsDeletedTotal.Add(float64(len(removed)))
	util.BatchActionsTotal.WithLabelValues("delete").Inc()
	s.logger.Info("Products batch deleted",
		zap.Int("requested", len(ids)),
		zap.Int("removed", len(removed)))

	event := &models.ProductsBatchDeletedEvent{
		BaseEvent:  newBaseEvent(models.EventTypeProductsBatchDeleted),
		ProductIDs: removed,
	}
	if err := s.publisher.PublishProductsBatchDeleted(ctx, event); err != nil {
		s.logger.Error("Failed to publish ProductsBatchDeleted event", zap.Error(err))
	}

	return removed
}

// BatchSetQuantity sets the quantity of every product in ids, ignoring
// unknown ids, and clears the selection afterwards.
func (s *InventoryService) BatchSetQuantity(ctx context.Context, ids []string, quantity int) ([]string, error) {
	ctx, span := util.StartSpan(ctx, "InventoryService.BatchSetQuantity")
	defer span.End()

	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", ErrValidation)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	updated := s.store.BatchSetQuantity(ids, quantity)
	s.view.ClearSelection()

	if len(updated) == 0 {
		return updated, nil
	}

	util.BatchActionsTotal.WithLabelValues("set_quantity").Inc()
	s.logger.Info("Product quantities set",
		zap.Int("requested", len(ids)),
		zap.Int("updated", len(updated)),
		zap.Int("quantity", quantity))

	event := &models.ProductQuantitySetEvent{
		BaseEvent:  newBaseEvent(models.EventTypeProductQuantitySet),
		ProductIDs: updated,
		Quantity:   quantity,
	}
	if err := s.publisher.PublishProductQuantitySet(ctx, event); err != nil {
		s.logger.Error("Failed to publish ProductQuantitySet event", zap.Error(err))
	}

	return updated, nil
}

// Stats computes the dashboard statistics from a fresh snapshot.
func (s *InventoryService) Stats(ctx context.Context) models.DashboardStats {
	return catalog.ComputeStats(s.store.Snapshot())
}

// CategoryBreakdown computes per-category product counts.
func (s *InventoryService) CategoryBreakdown(ctx context.Context) map[models.Category]int {
	return catalog.ComputeCategoryBreakdown(s.store.Snapshot())
}

// ViewState returns the current filter, visible rows and selection.
func (s *InventoryService) ViewState(ctx context.Context) query.ViewState {
	return s.view.State(s.store.Snapshot())
}

// SetFilter replaces the filter specification after normalizing and
// validating it, and returns the resulting view state.
func (s *InventoryService) SetFilter(ctx context.Context, spec query.FilterSpec) (query.ViewState, error) {
	if spec.Category == "" {
		spec.Category = query.CategoryAll
	}
	if spec.Stock == "" {
		spec.Stock = query.StockAll
	}
	if !spec.Stock.Valid() {
		return query.ViewState{}, fmt.Errorf("%w: unknown stock filter %q", ErrValidation, spec.Stock)
	}
	if spec.Category != query.CategoryAll && !models.Category(spec.Category).Valid() {
		return query.ViewState{}, fmt.Errorf("%w: unknown category %q", ErrValidation, spec.Category)
	}

	s.view.SetFilter(spec)
	return s.ViewState(ctx), nil
}

// ToggleSelection flips selection membership of a single id.
func (s *InventoryService) ToggleSelection(ctx context.Context, id string) query.ViewState {
	s.view.Toggle(id)
	return s.ViewState(ctx)
}

// SelectAllVisible applies the tri-state select-all to the current view.
func (s *InventoryService) SelectAllVisible(ctx context.Context) query.ViewState {
	s.view.SelectAllVisible(s.store.Snapshot())
	return s.ViewState(ctx)
}

// ClearSelection empties the selection set.
func (s *InventoryService) ClearSelection(ctx context.Context) query.ViewState {
	s.view.ClearSelection()
	return s.ViewState(ctx)
}

// ExportCSV serializes the current filtered view.
func (s *InventoryService) ExportCSV(ctx context.Context) string {
	_, span := util.StartSpan(ctx, "InventoryService.ExportCSV")
	defer span.End()

	visible := s.view.Visible(s.store.Snapshot())

	util.ExportsGeneratedTotal.Inc()
	s.logger.Info("CSV export generated", zap.Int("rows", len(visible)))

	return query.ExportCSV(visible)
}

func newBaseEvent(eventType string) models.BaseEvent {
	return models.BaseEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now(),
	}
}
