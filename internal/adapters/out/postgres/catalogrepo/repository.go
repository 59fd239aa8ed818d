// Package catalogrepo provides the read-only product catalog adapter.
// The order core treats the catalog as an external collaborator; this
// repository only ever reads product rows.
package catalogrepo

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductDTO represents one catalog row in the products table.
type ProductDTO struct {
	SKU           string          `gorm:"primaryKey"`
	Name          string
	VariantName   string
	Category      string          `gorm:"index"`
	Price         decimal.Decimal `gorm:"type:numeric"`
	MRP           decimal.Decimal `gorm:"type:numeric"`
	StockQuantity int
}

// TableName specifies the database table name for catalog entities.
func (ProductDTO) TableName() string {
	return "products"
}

// GormProductCatalog implements ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a new GORM product catalog adapter.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// GetBySKU retrieves a product by its stock keeping unit.
func (r *GormProductCatalog) GetBySKU(ctx context.Context, sku string) (ports.Product, error) {
	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "sku = ?", sku).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Product{}, errs.NewObjectNotFoundError("product", sku)
		}
		return ports.Product{}, err
	}

	return toDomain(dto)
}

func toDomain(dto ProductDTO) (ports.Product, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return ports.Product{}, err
	}

	mrp, err := kernel.NewMoney(dto.MRP)
	if err != nil {
		return ports.Product{}, err
	}

	return ports.Product{
		SKU:           dto.SKU,
		Name:          dto.Name,
		VariantName:   dto.VariantName,
		Category:      dto.Category,
		Price:         price,
		MRP:           mrp,
		StockQuantity: dto.StockQuantity,
	}, nil
}
