package model

import "time"

// Purchase is a client's checkout record served by /user-purchases/mine.
type Purchase struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	Items     []PurchaseItem `json:"items"`
}

// PurchaseItem is one line of a Purchase.
type PurchaseItem struct {
	ID       string          `json:"id"`
	Quantity int             `json:"quantity"`
	Product  PurchaseProduct `json:"product"`
}

// PurchaseProduct is the product summary embedded in a PurchaseItem.
type PurchaseProduct struct {
	Name string `json:"name"`
}

// PurchaseRequest is the body of POST /user-purchases.
type PurchaseRequest struct {
	Items []PurchaseLine `json:"items"`
}

// PurchaseLine is one requested product and quantity.
type PurchaseLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
