package query

import (
	"testing"

	"github.com/Alansi2025/inventory-management/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleRoundTrip(t *testing.T) {
	sel := NewSelection()

	sel.Toggle("p1")
	assert.True(t, sel.Has("p1"))

	sel.Toggle("p1")
	assert.False(t, sel.Has("p1"))
	assert.Empty(t, sel)
}

func TestSelectAllVisibleUnionsWithExistingSelection(t *testing.T) {
	visible := []models.Product{{ID: "p1"}, {ID: "p2"}, {ID: "p3"}}

	sel := NewSelection()
	sel.Toggle("p1")
	sel.Toggle("p2")
	sel.Toggle("outside") // selected but not in the current view

	sel.SelectAllVisible(visible)

	require.Len(t, sel, 4)
	for _, id := range []string{"p1", "p2", "p3", "outside"} {
		assert.True(t, sel.Has(id), id)
	}
}

func TestSelectAllVisibleDeselectsExactlyVisible(t *testing.T) {
	visible := []models.Product{{ID: "p1"}, {ID: "p2"}}

	sel := NewSelection()
	sel.Toggle("p1")
	sel.Toggle("p2")
	sel.Toggle("outside")

	sel.SelectAllVisible(visible)

	assert.False(t, sel.Has("p1"))
	assert.False(t, sel.Has("p2"))
	assert.True(t, sel.Has("outside"))
}

func TestSelectAllVisibleEmptyViewIsNoOp(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("p1")

	sel.SelectAllVisible(nil)

	assert.True(t, sel.Has("p1"))
}

func TestSelectionState(t *testing.T) {
	visible := []models.Product{{ID: "p1"}, {ID: "p2"}}
	sel := NewSelection()

	assert.Equal(t, SelectionNone, sel.State(visible))

	sel.Toggle("p1")
	assert.Equal(t, SelectionSome, sel.State(visible))

	sel.Toggle("p2")
	assert.Equal(t, SelectionAll, sel.State(visible))

	assert.Equal(t, SelectionNone, sel.State(nil))
}

func TestResolveSkipsDanglingIDs(t *testing.T) {
	snapshot := []models.Product{{ID: "p1"}, {ID: "p2"}}

	sel := NewSelection()
	sel.Toggle("p2")
	sel.Toggle("deleted-meanwhile")
	sel.Toggle("p1")

	assert.Equal(t, []string{"p1", "p2"}, sel.Resolve(snapshot))
}

func TestClearEmptiesSelection(t *testing.T) {
	sel := NewSelection()
	sel.Toggle("p1")
	sel.Toggle("p2")

	sel.Clear()

	assert.Empty(t, sel)
}

func TestTableViewStateIsConsistent(t *testing.T) {
	snapshot := fixtureSnapshot()
	view := NewTableView()

	view.SetFilter(FilterSpec{Category: CategoryAll, Stock: StockLow})
	view.Toggle("p2")
	view.Toggle("p4") // outside the low-stock view

	state := view.State(snapshot)

	assert.Equal(t, StockLow, state.Filter.Stock)
	assert.Equal(t, []string{"p2", "p3"}, ids(state.Products))
	assert.Equal(t, []string{"p2", "p4"}, state.SelectedIDs)
	assert.Equal(t, SelectionSome, state.SelectAll)
}

func TestTableViewSelectAllVisibleUsesCurrentFilter(t *testing.T) {
	snapshot := fixtureSnapshot()
	view := NewTableView()
	view.SetFilter(FilterSpec{Category: CategoryAll, Stock: StockLow})

	view.SelectAllVisible(snapshot)

	assert.Equal(t, []string{"p2", "p3"}, view.SelectedIDs(snapshot))
	assert.Equal(t, SelectionAll, view.State(snapshot).SelectAll)
}
