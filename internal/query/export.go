package query

import (
	"strconv"
	"strings"
	"time"

	"github.com/Alansi2025/inventory-management/internal/models"
)

// ExportHeader is the fixed column order of the CSV export.
const ExportHeader = "ID,Name,SKU,Category,Price,Quantity,Description,Last Updated"

// ExportCSV serializes a filtered view as comma-separated text. Text
// fields are always quoted with embedded quotes doubled; identifiers,
// numbers and timestamps are written bare.
func ExportCSV(visible []models.Product) string {
	var b strings.Builder
	b.WriteString(ExportHeader)
	b.WriteByte('\n')
	for _, p := range visible {
		b.WriteString(p.ID)
		b.WriteByte(',')
		b.WriteString(quoteField(p.Name))
		b.WriteByte(',')
		b.WriteString(quoteField(p.SKU))
		b.WriteByte(',')
		b.WriteString(quoteField(string(p.Category)))
		b.WriteByte(',')
		b.WriteString(strconv.FormatFloat(p.Price, 'f', -1, 64))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(p.Quantity))
		b.WriteByte(',')
		b.WriteString(quoteField(p.Description))
		b.WriteByte(',')
		b.WriteString(p.LastUpdated.UTC().Format(time.RFC3339))
		b.WriteByte('\n')
	}
	return b.String()
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
