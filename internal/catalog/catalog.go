package catalog

import (
	"AIShopService/internal/entity"
)

// Provider supplies the product catalog eligible for search and
// recommendations. The core services are agnostic to where the
// catalog comes from; a real deployment replaces the static provider
// with a live source.
type Provider interface {
	Products() []entity.Product
}

type staticProvider struct {
	products []entity.Product
}

// NewStaticProvider returns a Provider backed by a fixed in-memory
// product list. Each call to Products returns a fresh copy so callers
// can never mutate the shared fixture.
func NewStaticProvider(products []entity.Product) Provider {
	return &staticProvider{products: products}
}

func (p *staticProvider) Products() []entity.Product {
	out := make([]entity.Product, len(p.products))
	copy(out, p.products)
	return out
}

// SampleProducts is the development/demo catalog.
func SampleProducts() []entity.Product {
	return []entity.Product{
		{
			ID:          "p1",
			Name:        "Premium Wireless Headphones",
			Description: "High-quality wireless headphones with noise cancellation",
			Price:       149.99,
			Category:    "electronics",
			Rating:      4.5,
			ReviewCount: 128,
			Active:      true,
		},
		{
			ID:          "p2",
			Name:        "Premium Cotton T-Shirt",
			Description: "Comfortable premium cotton t-shirt",
			Price:       39.99,
			Category:    "fashion",
			Rating:      4.2,
			ReviewCount: 45,
			Active:      true,
		},
		{
			ID:          "p3",
			Name:        "Smart Home Security Camera",
			Description: "4K Smart home security camera with AI detection",
			Price:       299.99,
			Category:    "electronics",
			Rating:      4.8,
			ReviewCount: 95,
			Active:      true,
		},
	}
}
