package catalog

import "github.com/Alansi2025/inventory-management/internal/models"

// ComputeStats derives the dashboard aggregates from a catalog snapshot.
// Low stock counts every quantity below the threshold, zero included; the
// table's Low Stock filter bucket intentionally disagrees (see models).
// The result depends only on the snapshot contents, not their order, and is
// recomputed from scratch on every call.
func ComputeStats(snapshot []models.Product) models.DashboardStats {
	stats := models.DashboardStats{TotalProducts: len(snapshot)}
	for _, p := range snapshot {
		stats.TotalValue += p.Price * float64(p.Quantity)
		if p.Quantity < models.LowStockThreshold {
			stats.LowStockItems++
		}
		if p.Quantity == 0 {
			stats.OutOfStockItems++
		}
	}
	return stats
}

// ComputeCategoryBreakdown counts products per category. Categories with no
// products in the snapshot are omitted rather than zero-filled.
func ComputeCategoryBreakdown(snapshot []models.Product) map[models.Category]int {
	breakdown := make(map[models.Category]int)
	for _, p := range snapshot {
		breakdown[p.Category]++
	}
	return breakdown
}
