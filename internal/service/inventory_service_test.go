package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Alansi2025/inventory-management/internal/catalog"
	"github.com/Alansi2025/inventory-management/internal/clock"
	"github.com/Alansi2025/inventory-management/internal/models"
	"github.com/Alansi2025/inventory-management/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	err          error
	created      []*models.ProductCreatedEvent
	updated      []*models.ProductUpdatedEvent
	deleted      []*models.ProductDeletedEvent
	batchDeleted []*models.ProductsBatchDeletedEvent
	quantitySet  []*models.ProductQuantitySetEvent
}

func (f *fakePublisher) PublishProductCreated(ctx context.Context, e *models.ProductCreatedEvent) error {
	f.created = append(f.created, e)
	return f.err
}

func (f *fakePublisher) PublishProductUpdated(ctx context.Context, e *models.ProductUpdatedEvent) error {
	f.updated = append(f.updated, e)
	return f.err
}

func (f *fakePublisher) PublishProductDeleted(ctx context.Context, e *models.ProductDeletedEvent) error {
	f.deleted = append(f.deleted, e)
	return f.err
}

func (f *fakePublisher) PublishProductsBatchDeleted(ctx context.Context, e *models.ProductsBatchDeletedEvent) error {
	f.batchDeleted = append(f.batchDeleted, e)
	return f.err
}

func (f *fakePublisher) PublishProductQuantitySet(ctx context.Context, e *models.ProductQuantitySetEvent) error {
	f.quantitySet = append(f.quantitySet, e)
	return f.err
}

func newTestService() (*InventoryService, *catalog.Store, *fakePublisher) {
	store := catalog.NewStore(clock.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	publisher := &fakePublisher{}
	svc := NewInventoryService(store, query.NewTableView(), publisher)
	return svc, store, publisher
}

func validRequest() *ProductRequest {
	return &ProductRequest{
		Name:     "Wireless Mouse",
		SKU:      "ELEC-0042",
		Category: models.CategoryElectronics,
		Price:    24.99,
		Quantity: 15,
	}
}

func TestCreateProductStoresAndPublishes(t *testing.T) {
	svc, store, publisher := newTestService()

	created, err := svc.CreateProduct(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	stored, ok := store.Get(created.ID)
	require.True(t, ok)
	assert.Equal(t, "Wireless Mouse", stored.Name)

	require.Len(t, publisher.created, 1)
	event := publisher.created[0]
	assert.Equal(t, models.EventTypeProductCreated, event.EventType)
	assert.Equal(t, created.ID, event.Product.ID)
	assert.NotEmpty(t, event.EventID)
}

func TestCreateProductRejectsInvalidInput(t *testing.T) {
	svc, store, _ := newTestService()

	cases := []struct {
		name   string
		mutate func(*ProductRequest)
	}{
		{"empty name", func(r *ProductRequest) { r.Name = "   " }},
		{"empty sku", func(r *ProductRequest) { r.SKU = "" }},
		{"unknown category", func(r *ProductRequest) { r.Category = "Groceries" }},
		{"negative price", func(r *ProductRequest) { r.Price = -1 }},
		{"negative quantity", func(r *ProductRequest) { r.Quantity = -3 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(req)

			_, err := svc.CreateProduct(context.Background(), req)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	assert.Empty(t, store.Snapshot())
}

func TestCreateProductSucceedsWhenPublishFails(t *testing.T) {
	svc, store, publisher := newTestService()
	publisher.err = errors.New("kafka unreachable")

	created, err := svc.CreateProduct(context.Background(), validRequest())
	require.NoError(t, err)

	_, ok := store.Get(created.ID)
	assert.True(t, ok)
}

func TestUpdateProductNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateProduct(context.Background(), "no-such-id", validRequest())
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestUpdateProductReportsPreviousQuantity(t *testing.T) {
	svc, _, publisher := newTestService()

	created, err := svc.CreateProduct(context.Background(), validRequest())
	require.NoError(t, err)

	req := validRequest()
	req.Quantity = 3
	updated, err := svc.UpdateProduct(context.Background(), created.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)

	require.Len(t, publisher.updated, 1)
	event := publisher.updated[0]
	assert.Equal(t, 15, event.PreviousQuantity)
	assert.Equal(t, 3, event.Product.Quantity)
}

func TestDeleteProductIdempotent(t *testing.T) {
	svc, _, publisher := newTestService()

	created, err := svc.CreateProduct(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, svc.DeleteProduct(context.Background(), created.ID))
	assert.False(t, svc.DeleteProduct(context.Background(), created.ID))

	// no event for the miss
	assert.Len(t, publisher.deleted, 1)
}

func TestBatchDeleteClearsSelection(t *testing.T) {
	svc, _, publisher := newTestService()
	ctx := context.Background()

	a, err := svc.CreateProduct(ctx, validRequest())
	require.NoError(t, err)
	b, err := svc.CreateProduct(ctx, validRequest())
	require.NoError(t, err)

	svc.ToggleSelection(ctx, a.ID)
	svc.ToggleSelection(ctx, b.ID)

	removed := svc.BatchDelete(ctx, []string{a.ID, "unknown"})
	assert.Equal(t, []string{a.ID}, removed)

	state := svc.ViewState(ctx)
	assert.Empty(t, state.SelectedIDs)

	require.Len(t, publisher.batchDeleted, 1)
	assert.Equal(t, []string{a.ID}, publisher.batchDeleted[0].ProductIDs)
}

func TestBatchDeleteEmptySelectionIsNoOp(t *testing.T) {
	svc, _, publisher := newTestService()

	removed := svc.BatchDelete(context.Background(), nil)
	assert.Empty(t, removed)
	assert.Empty(t, publisher.batchDeleted)
}

func TestBatchSetQuantityRejectsNegative(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.BatchSetQuantity(context.Background(), []string{"p1"}, -5)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBatchSetQuantitySetsAndPublishes(t *testing.T) {
	svc, store, publisher := newTestService()
	ctx := context.Background()

	a, err := svc.CreateProduct(ctx, validRequest())
	require.NoError(t, err)

	svc.ToggleSelection(ctx, a.ID)

	updated, err := svc.BatchSetQuantity(ctx, []string{a.ID, "unknown"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{a.ID}, updated)

	stored, _ := store.Get(a.ID)
	assert.Equal(t, 0, stored.Quantity)
	assert.Empty(t, svc.ViewState(ctx).SelectedIDs)

	require.Len(t, publisher.quantitySet, 1)
	assert.Equal(t, 0, publisher.quantitySet[0].Quantity)
}

func TestSetFilterValidatesSpec(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.SetFilter(ctx, query.FilterSpec{Stock: "Backordered"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SetFilter(ctx, query.FilterSpec{Category: "Groceries"})
	assert.ErrorIs(t, err, ErrValidation)

	state, err := svc.SetFilter(ctx, query.FilterSpec{})
	require.NoError(t, err)
	assert.Equal(t, query.CategoryAll, state.Filter.Category)
	assert.Equal(t, query.StockAll, state.Filter.Stock)
}

func TestStatsReflectCatalog(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	for _, qty := range []int{15, 4, 8, 42, 120} {
		req := validRequest()
		req.Quantity = qty
		_, err := svc.CreateProduct(ctx, req)
		require.NoError(t, err)
	}

	stats := svc.Stats(ctx)
	assert.Equal(t, 5, stats.TotalProducts)
	assert.Equal(t, 2, stats.LowStockItems)
	assert.Equal(t, 0, stats.OutOfStockItems)
}

func TestExportCSVUsesCurrentFilter(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	inStock := validRequest()
	_, err := svc.CreateProduct(ctx, inStock)
	require.NoError(t, err)

	low := validRequest()
	low.Name = "Gel Ink Pens"
	low.SKU = "OFFC-0007"
	low.Quantity = 4
	_, err = svc.CreateProduct(ctx, low)
	require.NoError(t, err)

	_, err = svc.SetFilter(ctx, query.FilterSpec{Stock: query.StockLow})
	require.NoError(t, err)

	out := svc.ExportCSV(ctx)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, query.ExportHeader, lines[0])
	assert.Contains(t, lines[1], "Gel Ink Pens")
}
