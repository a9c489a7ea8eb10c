package query

import (
	"strings"

	"github.com/Alansi2025/inventory-management/internal/models"
)

// StockFilter selects a stock-status bucket in the filtered view.
type StockFilter string

const (
	StockAll StockFilter = "All"
	StockIn  StockFilter = "In Stock"
	StockLow StockFilter = "Low Stock"
	StockOut StockFilter = "Out of Stock"
)

// CategoryAll matches every category.
const CategoryAll = "All"

// Valid reports whether the value is one of the known buckets.
func (f StockFilter) Valid() bool {
	switch f {
	case StockAll, StockIn, StockLow, StockOut:
		return true
	}
	return false
}

// FilterSpec is the tuple defining the visible subset of the catalog.
type FilterSpec struct {
	Search   string      `json:"search"`
	Category string      `json:"category"`
	Stock    StockFilter `json:"stock"`
}

// DefaultFilter matches the entire catalog.
func DefaultFilter() FilterSpec {
	return FilterSpec{Search: "", Category: CategoryAll, Stock: StockAll}
}

// Apply returns the products matching every predicate of the spec,
// preserving snapshot order.
func Apply(snapshot []models.Product, spec FilterSpec) []models.Product {
	visible := make([]models.Product, 0, len(snapshot))
	search := strings.ToLower(strings.TrimSpace(spec.Search))
	for _, p := range snapshot {
		if !matchesSearch(p, search) {
			continue
		}
		if !matchesCategory(p, spec.Category) {
			continue
		}
		if !matchesStock(p, spec.Stock) {
			continue
		}
		visible = append(visible, p)
	}
	return visible
}

func matchesSearch(p models.Product, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.SKU), search)
}

func matchesCategory(p models.Product, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return string(p.Category) == category
}

// matchesStock applies the bucket boundaries. Zero-quantity records belong
// to the Out of Stock bucket only, even though dashboard statistics count
// them as low stock as well.
func matchesStock(p models.Product, stock StockFilter) bool {
	switch stock {
	case StockIn:
		return p.Quantity >= models.LowStockThreshold
	case StockLow:
		return p.Quantity > 0 && p.Quantity < models.LowStockThreshold
	case StockOut:
		return p.Quantity == 0
	default:
		return true
	}
}
