package query

import (
	"strings"
	"testing"
	"time"

	"github.com/Alansi2025/inventory-management/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSVDoublesEmbeddedQuotes(t *testing.T) {
	visible := []models.Product{
		{ID: "p1", Name: `6" Widget`, SKU: "HW-6", Category: models.CategoryOther, Price: 3.5, Quantity: 12},
		{ID: "p2", Name: "Plain Widget", SKU: "HW-7", Category: models.CategoryOther, Price: 2, Quantity: 1},
	}

	out := ExportCSV(visible)

	assert.Contains(t, out, `"6"" Widget"`)
	assert.Contains(t, out, `"Plain Widget"`)
}

func TestExportCSVHeaderOnlyForEmptyView(t *testing.T) {
	assert.Equal(t, ExportHeader+"\n", ExportCSV(nil))
}

func TestExportCSVRowLayout(t *testing.T) {
	updated := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	visible := []models.Product{{
		ID:          "p1",
		Name:        "Wireless Mouse",
		SKU:         "ELEC-0042",
		Category:    models.CategoryElectronics,
		Price:       24.99,
		Quantity:    15,
		Description: "2.4GHz, USB receiver",
		LastUpdated: updated,
	}}

	out := ExportCSV(visible)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, ExportHeader, lines[0])
	assert.Equal(t, `p1,"Wireless Mouse","ELEC-0042","Electronics",24.99,15,"2.4GHz, USB receiver",2024-03-01T12:00:00Z`, lines[1])
}

func TestExportCSVPreservesViewOrder(t *testing.T) {
	visible := fixtureSnapshot()

	out := ExportCSV(visible)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, len(visible)+1)
	for i, p := range visible {
		assert.True(t, strings.HasPrefix(lines[i+1], p.ID+","), "line %d", i+1)
	}
}
