package models

import "time"

// Category is the closed set of product categories.
type Category string

// Product categories
const (
	CategoryElectronics    Category = "Electronics"
	CategoryFurniture      Category = "Furniture"
	CategoryClothing       Category = "Clothing"
	CategoryOfficeSupplies Category = "Office Supplies"
	CategoryOther          Category = "Other"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryElectronics,
		CategoryFurniture,
		CategoryClothing,
		CategoryOfficeSupplies,
		CategoryOther,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryFurniture, CategoryClothing, CategoryOfficeSupplies, CategoryOther:
		return true
	}
	return false
}

// LowStockThreshold is the quantity below which a product counts as low stock.
// Dashboard stats count any quantity below the threshold, including zero; the
// table's Low Stock filter bucket excludes zero and reports those rows as out
// of stock instead. The two deliberately disagree.
const LowStockThreshold = 10

// QuantityObservation is a past stock level used for trend display.
type QuantityObservation struct {
	Quantity   int       `json:"quantity"`
	ObservedAt time.Time `json:"observed_at"`
}

// Product represents a product in the catalog
type Product struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	SKU         string                `json:"sku"`
	Category    Category              `json:"category"`
	Price       float64               `json:"price"`
	Quantity    int                   `json:"quantity"`
	Description string                `json:"description"`
	LastUpdated time.Time             `json:"last_updated"`
	History     []QuantityObservation `json:"history,omitempty"`
}

// DashboardStats holds the aggregate figures shown on the dashboard.
type DashboardStats struct {
	TotalProducts   int     `json:"total_products"`
	TotalValue      float64 `json:"total_value"`
	LowStockItems   int     `json:"low_stock_items"`
	OutOfStockItems int     `json:"out_of_stock_items"`
}

// ProductSummary is the slimmed-down product shape sent to the risk analyzer.
type ProductSummary struct {
	Name     string   `json:"name"`
	Quantity int      `json:"quantity"`
	Category Category `json:"category"`
	Price    float64  `json:"price"`
}

// Summarize builds risk-analysis summaries from a catalog snapshot.
func Summarize(products []Product) []ProductSummary {
	summaries := make([]ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, ProductSummary{
			Name:     p.Name,
			Quantity: p.Quantity,
			Category: p.Category,
			Price:    p.Price,
		})
	}
	return summaries
}

// PriceSuggestion is the advisor's suggested retail price range.
type PriceSuggestion struct {
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Reasoning string  `json:"reasoning"`
}
