package query

import "github.com/Alansi2025/inventory-management/internal/models"

// SelectAllState describes the header checkbox for the current view.
type SelectAllState string

const (
	SelectionNone SelectAllState = "none"
	SelectionSome SelectAllState = "some"
	SelectionAll  SelectAllState = "all"
)

// Selection is the set of product ids marked for a pending batch action.
// It may hold ids of products that were deleted after being selected;
// readers intersect with the snapshot instead of pruning eagerly.
type Selection map[string]struct{}

func NewSelection() Selection {
	return make(Selection)
}

// Toggle flips membership of a single id.
func (s Selection) Toggle(id string) {
	if _, ok := s[id]; ok {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// SelectAllVisible realizes the tri-state header checkbox: when every
// visible id is already selected it deselects exactly those ids, leaving
// selections outside the view untouched; otherwise it adds every visible
// id to the selection.
func (s Selection) SelectAllVisible(visible []models.Product) {
	if len(visible) == 0 {
		return
	}
	if s.coversAll(visible) {
		for _, p := range visible {
			delete(s, p.ID)
		}
		return
	}
	for _, p := range visible {
		s[p.ID] = struct{}{}
	}
}

// Clear empties the selection set.
func (s Selection) Clear() {
	for id := range s {
		delete(s, id)
	}
}

// Resolve returns the selected ids present in the snapshot, in snapshot
// order. Dangling ids are skipped.
func (s Selection) Resolve(snapshot []models.Product) []string {
	ids := make([]string, 0, len(s))
	for _, p := range snapshot {
		if s.Has(p.ID) {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// State reports the checkbox state for the given visible subset.
func (s Selection) State(visible []models.Product) SelectAllState {
	if len(visible) == 0 {
		return SelectionNone
	}
	selected := 0
	for _, p := range visible {
		if s.Has(p.ID) {
			selected++
		}
	}
	switch selected {
	case 0:
		return SelectionNone
	case len(visible):
		return SelectionAll
	default:
		return SelectionSome
	}
}

func (s Selection) coversAll(visible []models.Product) bool {
	for _, p := range visible {
		if !s.Has(p.ID) {
			return false
		}
	}
	return true
}
