package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PaymentStatus is the settlement state of an order.
type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "Paid"
	PaymentRefunded PaymentStatus = "Refunded"
	PaymentFailed   PaymentStatus = "Failed"
)

// PaymentStatuses lists the accepted payment states.
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{PaymentPaid, PaymentRefunded, PaymentFailed}
}

// Order is an order-and-transaction record served by /orders.
type Order struct {
	ID            string        `json:"id"`
	ClientID      string        `json:"clientId"`
	Products      OrderProducts `json:"products"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Client        *User         `json:"client,omitempty"`
}

// ClientName returns the embedded client's name or the raw client id.
func (o Order) ClientName() string {
	if o.Client != nil && o.Client.Name != "" {
		return o.Client.Name
	}
	return o.ClientID
}

// OrderInput is the body of POST and PATCH /orders.
type OrderInput struct {
	ClientID      string        `json:"clientId,omitempty"`
	ProductIDs    []string      `json:"productIds,omitempty"`
	TotalAmount   float64       `json:"total_amount,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status,omitempty"`
}

// OrderProducts holds an order's products. The API returns either a list
// of product ids or a list of embedded products; both decode here.
type OrderProducts []Product

// UnmarshalJSON accepts ["id", ...] as well as [{product}, ...].
func (p *OrderProducts) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = nil
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("order products: %w", err)
	}
	out := make(OrderProducts, 0, len(raw))
	for _, item := range raw {
		item = bytes.TrimSpace(item)
		if len(item) > 0 && item[0] == '"' {
			var id string
			if err := json.Unmarshal(item, &id); err != nil {
				return fmt.Errorf("order product id: %w", err)
			}
			out = append(out, Product{ID: id})
			continue
		}
		var prod Product
		if err := json.Unmarshal(item, &prod); err != nil {
			return fmt.Errorf("order product: %w", err)
		}
		out = append(out, prod)
	}
	*p = out
	return nil
}

// Names returns product names, or ids where no name was embedded.
func (p OrderProducts) Names() []string {
	names := make([]string, 0, len(p))
	for _, prod := range p {
		if prod.Name != "" {
			names = append(names, prod.Name)
		} else {
			names = append(names, prod.ID)
		}
	}
	return names
}
