package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
)

// Product is the read-only catalog view this core consumes. Catalog and
// inventory management live outside the order core; placement treats price,
// MRP, and stock as inputs and must reject quantities beyond the stock.
type Product struct {
	SKU           string
	Name          string
	VariantName   string
	Category      string
	Price         kernel.Money
	MRP           kernel.Money
	StockQuantity int
}

// ProductCatalog defines read access to the catalog collaborator.
type ProductCatalog interface {
	// GetBySKU retrieves a product by its stock keeping unit.
	// Returns an ObjectNotFoundError when no such product exists.
	GetBySKU(ctx context.Context, sku string) (Product, error)
}
