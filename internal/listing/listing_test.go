package listing

import (
	"testing"

	"github.com/me/glamgiant/internal/table"
	"github.com/me/glamgiant/pkg/model"
)

func TestProducts_SearchAndSort(t *testing.T) {
	products := []model.Product{
		{ID: "1", Name: "Velvet Lipstick", Category: "Lips", Price: 12.5},
		{ID: "2", Name: "Glow Highlighter", Category: "Face", Price: 30},
		{ID: "3", Name: "Lip Liner", Category: "lips", Price: 8},
	}
	r := Products(10).Apply(products, table.Query{Search: "LIP", SortKey: "price", Page: 1})
	if r.Total != 2 {
		t.Fatalf("Total = %d, want 2", r.Total)
	}
	if r.Items[0].ID != "3" || r.Items[1].ID != "1" {
		t.Errorf("order = %s, %s", r.Items[0].ID, r.Items[1].ID)
	}
}

func TestProducts_WarehouseNotSearchable(t *testing.T) {
	products := []model.Product{{Name: "Blush", Category: "Face", WarehouseLocation: "Aisle 9"}}
	r := Products(10).Apply(products, table.Query{Search: "aisle", Page: 1})
	if r.Total != 0 {
		t.Errorf("warehouse location should not be searched, Total = %d", r.Total)
	}
}

func TestOrders_SearchByClientAndStatus(t *testing.T) {
	orders := []model.Order{
		{ID: "o1", ClientID: "c1", Client: &model.User{Name: "Ana"}, PaymentStatus: model.PaymentPaid, TotalAmount: 10},
		{ID: "o2", ClientID: "c2", PaymentStatus: model.PaymentRefunded, TotalAmount: 5},
	}
	e := Orders(10)
	if r := e.Apply(orders, table.Query{Search: "ana", Page: 1}); r.Total != 1 || r.Items[0].ID != "o1" {
		t.Errorf("search ana = %+v", r.Items)
	}
	if r := e.Apply(orders, table.Query{Search: "refund", Page: 1}); r.Total != 1 || r.Items[0].ID != "o2" {
		t.Errorf("search refund = %+v", r.Items)
	}
	r := e.Apply(orders, table.Query{SortKey: "total_amount", Direction: table.Descending, Page: 1})
	if r.Items[0].ID != "o1" {
		t.Errorf("sort total desc first = %s", r.Items[0].ID)
	}
}

func TestProductTests_SortByRating(t *testing.T) {
	tests := []model.ProductTest{
		{ID: "a", Rating: 7, Product: &model.TestProduct{Name: "Mascara"}},
		{ID: "b", Rating: 2, Product: &model.TestProduct{Name: "Primer"}},
	}
	r := ProductTests(10).Apply(tests, table.Query{SortKey: "rating", Page: 1})
	if r.Items[0].ID != "b" {
		t.Errorf("first = %s, want b", r.Items[0].ID)
	}
	r = ProductTests(10).Apply(tests, table.Query{Search: "masc", Page: 1})
	if r.Total != 1 || r.Items[0].ID != "a" {
		t.Errorf("search = %+v", r.Items)
	}
}

func TestUsers_SearchByRole(t *testing.T) {
	users := []model.User{
		{ID: "1", Name: "Ana", Email: "ana@glam.test", Role: model.RoleAdmin},
		{ID: "2", Name: "Tess", Email: "tess@glam.test", Role: model.RoleTester},
	}
	r := Users(10).Apply(users, table.Query{Search: "tester", Page: 1})
	if r.Total != 1 || r.Items[0].ID != "2" {
		t.Errorf("search tester = %+v", r.Items)
	}
}
