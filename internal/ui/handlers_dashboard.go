package ui

import (
	"context"
	"net/http"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/me/glamgiant/pkg/model"
)

// statCard is one dashboard counter. Err is set when its fetch failed.
type statCard struct {
	Label string
	Value int
	Link  string
	Err   string
}

// HandleAdminDashboard fetches all four collections concurrently. A failed
// fetch only marks its own card.
func (ui *UI) HandleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	api := ui.client(r)
	cards := []statCard{
		{Label: "Products", Link: "/products"},
		{Label: "Users", Link: "/users-management"},
		{Label: "Orders", Link: "/orders-management"},
		{Label: "Product Tests", Link: "/product-tests"},
	}
	counters := []func(ctx context.Context) (int, error){
		func(ctx context.Context) (int, error) { v, err := api.ListProducts(ctx); return len(v), err },
		func(ctx context.Context) (int, error) { v, err := api.ListUsers(ctx); return len(v), err },
		func(ctx context.Context) (int, error) { v, err := api.ListOrders(ctx); return len(v), err },
		func(ctx context.Context) (int, error) { v, err := api.ListProductTests(ctx); return len(v), err },
	}

	var g errgroup.Group
	for i, count := range counters {
		g.Go(func() error {
			n, err := count(r.Context())
			if err != nil {
				ui.logger.Warn("dashboard fetch failed", "card", cards[i].Label, "error", err)
				cards[i].Err = "unavailable"
				return nil
			}
			cards[i].Value = n
			return nil
		})
	}
	_ = g.Wait()

	data := ui.page(r, "Admin Dashboard")
	data["Cards"] = cards
	data["Uptime"] = time.Since(ui.startTime).Round(time.Second).String()
	ui.render(w, r, http.StatusOK, "dashboard", data)
}

// HandleEmployeeDashboard shows inventory figures and low-stock products.
func (ui *UI) HandleEmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	data := ui.page(r, "Employee Dashboard")
	products, err := ui.client(r).ListProducts(r.Context())
	if err != nil {
		ui.logger.Warn("dashboard fetch failed", "card", "Products", "error", err)
		data["Cards"] = []statCard{{Label: "Products", Link: "/products", Err: "unavailable"}}
		ui.render(w, r, http.StatusOK, "dashboard", data)
		return
	}

	var low []model.Product
	units := 0
	for _, p := range products {
		units += p.Stock
		if p.LowStock() {
			low = append(low, p)
		}
	}
	slices.SortFunc(low, func(a, b model.Product) int { return a.Stock - b.Stock })

	data["Cards"] = []statCard{
		{Label: "Products", Value: len(products), Link: "/products"},
		{Label: "Units in stock", Value: units, Link: "/products"},
		{Label: "Low stock", Value: len(low), Link: "/products?sort=stock&dir=asc"},
	}
	data["LowStock"] = low
	ui.render(w, r, http.StatusOK, "dashboard", data)
}

// HandleTesterDashboard summarises the signed-in tester's own tests.
func (ui *UI) HandleTesterDashboard(w http.ResponseWriter, r *http.Request) {
	id := IdentityFromRequest(r)
	data := ui.page(r, "Tester Dashboard")
	tests, err := ui.client(r).ListProductTests(r.Context())
	if err != nil {
		ui.logger.Warn("dashboard fetch failed", "card", "My tests", "error", err)
		data["Cards"] = []statCard{{Label: "My tests", Link: "/product-tests", Err: "unavailable"}}
		ui.render(w, r, http.StatusOK, "dashboard", data)
		return
	}

	var mine []model.ProductTest
	survived, ratingSum := 0, 0
	for _, t := range tests {
		if t.TesterID != id.ID {
			continue
		}
		mine = append(mine, t)
		ratingSum += t.Rating
		if t.SurvivalStatus {
			survived++
		}
	}
	avg := 0
	if len(mine) > 0 {
		avg = ratingSum / len(mine)
	}
	data["Cards"] = []statCard{
		{Label: "My tests", Value: len(mine), Link: "/product-tests"},
		{Label: "Survived", Value: survived, Link: "/product-tests"},
		{Label: "Average rating", Value: avg, Link: "/product-tests?sort=rating&dir=desc"},
	}
	ui.render(w, r, http.StatusOK, "dashboard", data)
}

// HandleClientDashboard shows the client's cart and order history counts.
func (ui *UI) HandleClientDashboard(w http.ResponseWriter, r *http.Request) {
	data := ui.page(r, "My Dashboard")
	cartCount := 0
	if sess := SessionFromContext(r.Context()); sess != nil && sess.Browser != nil {
		cartCount = ui.carts.Get(sess.Browser.ID).Count()
	}
	cards := []statCard{
		{Label: "Items in cart", Value: cartCount, Link: "/cart"},
		{Label: "Purchases", Link: "/purchases"},
	}
	purchases, err := ui.client(r).ListMyPurchases(r.Context())
	if err != nil {
		ui.logger.Warn("dashboard fetch failed", "card", "Purchases", "error", err)
		cards[1].Err = "unavailable"
	} else {
		cards[1].Value = len(purchases)
	}
	data["Cards"] = cards
	ui.render(w, r, http.StatusOK, "dashboard", data)
}
