// Package listing defines the table columns for each GlamGiant record type.
package listing

import (
	"strings"

	"github.com/me/glamgiant/internal/table"
	"github.com/me/glamgiant/pkg/model"
)

// Products returns the engine for product lists. Name and category are
// searchable.
func Products(pageSize int) *table.Engine[model.Product] {
	return table.New(pageSize,
		table.Column[model.Product]{Key: "name", Value: func(p model.Product) any { return p.Name }, Searchable: true},
		table.Column[model.Product]{Key: "category", Value: func(p model.Product) any { return p.Category }, Searchable: true},
		table.Column[model.Product]{Key: "stock", Value: func(p model.Product) any { return p.Stock }},
		table.Column[model.Product]{Key: "warehouse_location", Value: func(p model.Product) any { return p.WarehouseLocation }},
		table.Column[model.Product]{Key: "durability_score", Value: func(p model.Product) any { return p.DurabilityScore }},
		table.Column[model.Product]{Key: "price", Value: func(p model.Product) any { return p.Price }},
	)
}

// Users returns the engine for user lists.
func Users(pageSize int) *table.Engine[model.User] {
	return table.New(pageSize,
		table.Column[model.User]{Key: "name", Value: func(u model.User) any { return u.Name }, Searchable: true},
		table.Column[model.User]{Key: "email", Value: func(u model.User) any { return u.Email }, Searchable: true},
		table.Column[model.User]{Key: "role", Value: func(u model.User) any { return string(u.Role) }, Searchable: true},
	)
}

// Orders returns the engine for order lists.
func Orders(pageSize int) *table.Engine[model.Order] {
	return table.New(pageSize,
		table.Column[model.Order]{Key: "id", Value: func(o model.Order) any { return o.ID }, Searchable: true},
		table.Column[model.Order]{Key: "client", Value: func(o model.Order) any { return o.ClientName() }, Searchable: true},
		table.Column[model.Order]{Key: "products", Value: func(o model.Order) any { return strings.Join(o.Products.Names(), ", ") }, Searchable: true},
		table.Column[model.Order]{Key: "total_amount", Value: func(o model.Order) any { return o.TotalAmount }},
		table.Column[model.Order]{Key: "payment_status", Value: func(o model.Order) any { return string(o.PaymentStatus) }, Searchable: true},
	)
}

// ProductTests returns the engine for product-test lists.
func ProductTests(pageSize int) *table.Engine[model.ProductTest] {
	return table.New(pageSize,
		table.Column[model.ProductTest]{Key: "product", Value: func(t model.ProductTest) any { return t.ProductName() }, Searchable: true},
		table.Column[model.ProductTest]{Key: "tester", Value: func(t model.ProductTest) any { return t.TesterName() }, Searchable: true},
		table.Column[model.ProductTest]{Key: "reaction", Value: func(t model.ProductTest) any { return t.Reaction }, Searchable: true},
		table.Column[model.ProductTest]{Key: "rating", Value: func(t model.ProductTest) any { return t.Rating }},
		table.Column[model.ProductTest]{Key: "survival_status", Value: func(t model.ProductTest) any { return survival(t.SurvivalStatus) }},
	)
}

func survival(ok bool) string {
	if ok {
		return "survived"
	}
	return "failed"
}
