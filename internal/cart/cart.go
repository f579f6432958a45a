// Package cart keeps each browser session's shopping cart in memory.
package cart

import (
	"slices"
	"sync"

	"github.com/me/glamgiant/pkg/model"
)

// Item is one product line in a cart.
type Item struct {
	ProductID string
	Name      string
	Price     float64
	Quantity  int
}

// Subtotal returns Price times Quantity.
func (i Item) Subtotal() float64 { return i.Price * float64(i.Quantity) }

// Cart is an ordered list of items.
type Cart struct {
	Items []Item
}

// Total returns the sum of all subtotals.
func (c Cart) Total() float64 {
	var sum float64
	for _, it := range c.Items {
		sum += it.Subtotal()
	}
	return sum
}

// Count returns the total quantity across all items.
func (c Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// PurchaseRequest converts the cart into a checkout body.
func (c Cart) PurchaseRequest() model.PurchaseRequest {
	req := model.PurchaseRequest{Items: make([]model.PurchaseLine, 0, len(c.Items))}
	for _, it := range c.Items {
		req.Items = append(req.Items, model.PurchaseLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return req
}

// Registry holds carts keyed by browser session id. Carts are not
// persisted and vanish on restart.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]*Cart)}
}

// Get returns a copy of the cart for session.
func (r *Registry) Get(session string) Cart {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[session]
	if !ok {
		return Cart{}
	}
	return Cart{Items: slices.Clone(c.Items)}
}

// Add puts qty units of p into the session's cart, merging with an
// existing line for the same product. Non-positive qty is treated as 1.
func (r *Registry) Add(session string, p model.Product, qty int) {
	if qty <= 0 {
		qty = 1
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[session]
	if !ok {
		c = &Cart{}
		r.carts[session] = c
	}
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity += qty
			return
		}
	}
	c.Items = append(c.Items, Item{ProductID: p.ID, Name: p.Name, Price: p.Price, Quantity: qty})
}

// Remove drops the line for productID.
func (r *Registry) Remove(session, productID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[session]
	if !ok {
		return
	}
	c.Items = slices.DeleteFunc(c.Items, func(it Item) bool { return it.ProductID == productID })
	if len(c.Items) == 0 {
		delete(r.carts, session)
	}
}

// Clear empties the session's cart.
func (r *Registry) Clear(session string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, session)
}
