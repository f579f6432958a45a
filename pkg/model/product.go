package model

// Product is a makeup product record served by /makeup-products.
type Product struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Stock             int     `json:"stock"`
	WarehouseLocation string  `json:"warehouse_location"`
	DurabilityScore   float64 `json:"durability_score"`
	Price             float64 `json:"price,omitempty"`
}

// ProductInput is the body of POST and PATCH /makeup-products.
type ProductInput struct {
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Stock             int     `json:"stock"`
	WarehouseLocation string  `json:"warehouse_location"`
	DurabilityScore   float64 `json:"durability_score"`
	Price             float64 `json:"price,omitempty"`
}

// LowStock reports whether the product is at or below the reorder threshold.
func (p Product) LowStock() bool {
	return p.Stock <= LowStockThreshold
}

// LowStockThreshold is the stock level at which a product is flagged.
const LowStockThreshold = 10
