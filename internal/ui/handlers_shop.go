package ui

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/me/glamgiant/internal/cart"
	"github.com/me/glamgiant/internal/glamapi"
	"github.com/me/glamgiant/pkg/model"
)

// HandleShop lists products available to buy.
func (ui *UI) HandleShop(w http.ResponseWriter, r *http.Request) {
	products, err := ui.client(r).ListProducts(r.Context())
	if err != nil {
		ui.renderError(w, r, "Failed to load products", err)
		return
	}
	st := parseTableState(r)
	res := ui.catalog.Sync(products, func(a, b model.Product) bool { return a == b }, st.Query())

	data := ui.page(r, "Shop")
	data["Products"] = res.Items
	data["Table"] = newTableNav("/shop", st, res)
	data["CartCount"] = ui.cartFor(r).Count()
	ui.render(w, r, http.StatusOK, "shop", data)
}

// HandleCart shows the session's cart.
func (ui *UI) HandleCart(w http.ResponseWriter, r *http.Request) {
	data := ui.page(r, "Cart")
	data["Cart"] = ui.cartFor(r)
	ui.render(w, r, http.StatusOK, "cart", data)
}

// HandleCartAdd adds a product to the cart. The product is re-read from
// the API so the cart never trusts a posted price.
func (ui *UI) HandleCartAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWith(w, r, "/shop", "error", "Invalid request")
		return
	}
	sess := SessionFromContext(r.Context())
	if sess == nil || sess.Browser == nil {
		redirectWith(w, r, "/shop", "error", "No active session")
		return
	}
	productID := formString(r, "product_id")
	qty, err := strconv.Atoi(formString(r, "quantity"))
	if err != nil {
		qty = 1
	}
	p, err := ui.client(r).GetProduct(r.Context(), productID)
	if err != nil {
		ui.logger.Warn("add to cart failed", "product_id", productID, "error", err)
		redirectWith(w, r, "/shop", "error", "Product unavailable")
		return
	}
	if p.Stock <= 0 {
		redirectWith(w, r, "/shop", "error", p.Name+" is out of stock")
		return
	}
	ui.carts.Add(sess.Browser.ID, *p, qty)
	redirectWith(w, r, "/shop", "msg", p.Name+" added to cart")
}

// HandleCartRemove drops one line from the cart.
func (ui *UI) HandleCartRemove(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWith(w, r, "/cart", "error", "Invalid request")
		return
	}
	if sess := SessionFromContext(r.Context()); sess != nil && sess.Browser != nil {
		ui.carts.Remove(sess.Browser.ID, formString(r, "product_id"))
	}
	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// HandleCartClear empties the cart.
func (ui *UI) HandleCartClear(w http.ResponseWriter, r *http.Request) {
	if sess := SessionFromContext(r.Context()); sess != nil && sess.Browser != nil {
		ui.carts.Clear(sess.Browser.ID)
	}
	redirectWith(w, r, "/cart", "msg", "Cart cleared")
}

// HandleCheckout turns the cart into a purchase. The cart is kept when the
// purchase fails.
func (ui *UI) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	sess := SessionFromContext(r.Context())
	if sess == nil || sess.Browser == nil {
		redirectWith(w, r, "/cart", "error", "No active session")
		return
	}
	c := ui.carts.Get(sess.Browser.ID)
	if len(c.Items) == 0 {
		redirectWith(w, r, "/cart", "error", "Your cart is empty")
		return
	}
	p, err := ui.client(r).CreatePurchase(r.Context(), c.PurchaseRequest())
	if err != nil {
		ui.logger.Warn("checkout failed", "items", len(c.Items), "error", err)
		redirectWith(w, r, "/cart", "error", "Checkout failed: "+glamapi.Message(err))
		return
	}
	ui.carts.Clear(sess.Browser.ID)
	ui.logger.Info("purchase created", "purchase_id", p.ID, "user_id", sess.Current().ID, "total", c.Total())
	redirectWith(w, r, "/purchases", "msg", "Thank you for your purchase")
}

// HandlePurchases lists the client's purchases, newest first.
func (ui *UI) HandlePurchases(w http.ResponseWriter, r *http.Request) {
	purchases, err := ui.client(r).ListMyPurchases(r.Context())
	if err != nil {
		ui.renderError(w, r, "Failed to load purchases", err)
		return
	}
	slices.SortStableFunc(purchases, func(a, b model.Purchase) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	data := ui.page(r, "My Purchases")
	data["Purchases"] = purchases
	ui.render(w, r, http.StatusOK, "purchases", data)
}

func (ui *UI) cartFor(r *http.Request) cart.Cart {
	sess := SessionFromContext(r.Context())
	if sess == nil || sess.Browser == nil {
		return cart.Cart{}
	}
	return ui.carts.Get(sess.Browser.ID)
}
