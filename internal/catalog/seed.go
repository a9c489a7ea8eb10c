package catalog

import (
	"time"

	"github.com/Alansi2025/inventory-management/internal/models"
)

// Seed loads the sample catalog into the store and returns the stored
// records. History runs oldest first and is only ever written here; catalog
// operations never touch it afterwards.
func Seed(s *Store) []models.Product {
	added := make([]models.Product, 0, len(sampleProducts))
	for _, p := range sampleProducts {
		added = append(added, s.Add(p))
	}
	return added
}

var sampleProducts = []models.Product{
	{
		Name:        "Wireless Headphones",
		SKU:         "ELEC-0041",
		Category:    models.CategoryElectronics,
		Price:       129.99,
		Quantity:    42,
		Description: "Over-ear Bluetooth headphones with active noise cancellation and 30-hour battery life.",
		History:     history(61, 55, 48, 42),
	},
	{
		Name:        "Standing Desk Frame",
		SKU:         "FURN-0112",
		Category:    models.CategoryFurniture,
		Price:       289.00,
		Quantity:    8,
		Description: "Dual-motor sit-stand desk frame, 120 kg lift capacity, three memory presets.",
		History:     history(20, 15, 11, 8),
	},
	{
		Name:        "Mechanical Keyboard",
		SKU:         "ELEC-0077",
		Category:    models.CategoryElectronics,
		Price:       89.50,
		Quantity:    15,
		Description: "Tenkeyless mechanical keyboard with hot-swappable switches and PBT keycaps.",
		History:     history(30, 24, 19, 15),
	},
	{
		Name:        "Cotton Crew T-Shirt",
		SKU:         "CLTH-0203",
		Category:    models.CategoryClothing,
		Price:       19.99,
		Quantity:    120,
		Description: "Heavyweight 220 gsm cotton tee, unisex fit, available in six colorways.",
		History:     history(140, 133, 128, 120),
	},
	{
		Name:        "Gel Ink Pens (12-Pack)",
		SKU:         "OFFC-0315",
		Category:    models.CategoryOfficeSupplies,
		Price:       8.49,
		Quantity:    4,
		Description: "Retractable 0.7 mm gel pens, assorted colors, smudge-resistant ink.",
		History:     history(36, 22, 9, 4),
	},
	{
		Name:        "Laptop Privacy Screen",
		SKU:         "ELEC-0150",
		Category:    models.CategoryElectronics,
		Price:       34.95,
		Quantity:    0,
		Description: "Magnetic 14-inch privacy filter, blocks side viewing beyond 30 degrees.",
		History:     history(18, 10, 3, 0),
	},
	{
		Name:        "Desk Organizer Tray",
		SKU:         "OFFC-0290",
		Category:    models.CategoryOfficeSupplies,
		Price:       24.00,
		Quantity:    33,
		Description: "Bamboo five-compartment organizer for stationery and small accessories.",
		History:     history(40, 38, 35, 33),
	},
}

// history builds weekly observations ending one week ago, oldest first.
func history(quantities ...int) []models.QuantityObservation {
	observations := make([]models.QuantityObservation, len(quantities))
	base := time.Now().UTC().AddDate(0, 0, -7*len(quantities))
	for i, q := range quantities {
		observations[i] = models.QuantityObservation{
			Quantity:   q,
			ObservedAt: base.AddDate(0, 0, 7*(i+1)),
		}
	}
	return observations
}
