package query

import (
	"sync"

	"github.com/Alansi2025/inventory-management/internal/models"
)

// ViewState is a consistent read of the table view against one snapshot.
type ViewState struct {
	Filter      FilterSpec       `json:"filter"`
	Products    []models.Product `json:"products"`
	SelectedIDs []string         `json:"selected_ids"`
	SelectAll   SelectAllState   `json:"select_all"`
}

// TableView owns the current filter specification and selection set.
// Both live for as long as the view itself; resetting either is an
// explicit operation, not a side effect of catalog changes.
type TableView struct {
	mu        sync.RWMutex
	spec      FilterSpec
	selection Selection
}

func NewTableView() *TableView {
	return &TableView{
		spec:      DefaultFilter(),
		selection: NewSelection(),
	}
}

// SetFilter replaces the filter specification. The selection set is
// kept; ids filtered out of view stay selected.
func (v *TableView) SetFilter(spec FilterSpec) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.spec = spec
}

func (v *TableView) Filter() FilterSpec {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.spec
}

// Visible applies the current filter to the snapshot.
func (v *TableView) Visible(snapshot []models.Product) []models.Product {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return Apply(snapshot, v.spec)
}

// Toggle flips selection membership of a single id.
func (v *TableView) Toggle(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection.Toggle(id)
}

// SelectAllVisible applies the tri-state select-all against the subset
// of the snapshot visible under the current filter.
func (v *TableView) SelectAllVisible(snapshot []models.Product) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection.SelectAllVisible(Apply(snapshot, v.spec))
}

// ClearSelection empties the selection set.
func (v *TableView) ClearSelection() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.selection.Clear()
}

// SelectedIDs returns the selected ids still present in the snapshot,
// in snapshot order.
func (v *TableView) SelectedIDs(snapshot []models.Product) []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.selection.Resolve(snapshot)
}

// State computes the full view state in one locked read so the filter,
// visible rows and selection are mutually consistent.
func (v *TableView) State(snapshot []models.Product) ViewState {
	v.mu.RLock()
	defer v.mu.RUnlock()
	visible := Apply(snapshot, v.spec)
	return ViewState{
		Filter:      v.spec,
		Products:    visible,
		SelectedIDs: v.selection.Resolve(snapshot),
		SelectAll:   v.selection.State(visible),
	}
}
