package ui

import (
	"net/http"
	"slices"

	"github.com/me/glamgiant/internal/glamapi"
	"github.com/me/glamgiant/internal/listing"
	"github.com/me/glamgiant/pkg/model"
)

const ordersPath = "/orders-management"

// HandleOrders renders the order list with revenue totals.
func (ui *UI) HandleOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := ui.client(r).ListOrders(r.Context())
	if err != nil {
		ui.renderError(w, r, "Failed to load orders", err)
		return
	}

	st := parseTableState(r)
	res := listing.Orders(ui.pageSize).Apply(orders, st.Query())

	var revenue float64
	for _, o := range orders {
		if o.PaymentStatus == model.PaymentPaid {
			revenue += o.TotalAmount
		}
	}

	data := ui.page(r, "Orders")
	data["Orders"] = res.Items
	data["Table"] = newTableNav(ordersPath, st, res)
	data["Statuses"] = model.PaymentStatuses()
	data["Revenue"] = revenue
	ui.render(w, r, http.StatusOK, "orders", data)
}

// HandleOrderStatus changes an order's payment status.
func (ui *UI) HandleOrderStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectWith(w, r, ordersPath, "error", "Invalid request")
		return
	}
	id := pathParam(r, "id")
	status := model.PaymentStatus(formString(r, "payment_status"))
	if !slices.Contains(model.PaymentStatuses(), status) {
		redirectWith(w, r, ordersPath, "error", "Unknown payment status "+string(status))
		return
	}
	if _, err := ui.client(r).UpdateOrder(r.Context(), id, model.OrderInput{PaymentStatus: status}); err != nil {
		ui.logger.Warn("update order failed", "order_id", id, "error", err)
		redirectWith(w, r, ordersPath, "error", "Failed to update order: "+glamapi.Message(err))
		return
	}
	ui.logger.Info("order status changed", "order_id", id, "status", status, "by", IdentityFromRequest(r).ID)
	redirectWith(w, r, ordersPath, "msg", "Order marked "+string(status))
}

// HandleOrderDelete removes an order.
func (ui *UI) HandleOrderDelete(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	if err := ui.client(r).DeleteOrder(r.Context(), id); err != nil {
		ui.logger.Warn("delete order failed", "order_id", id, "error", err)
		redirectWith(w, r, ordersPath, "error", "Failed to delete order: "+glamapi.Message(err))
		return
	}
	ui.logger.Info("order deleted", "order_id", id, "by", IdentityFromRequest(r).ID)
	redirectWith(w, r, ordersPath, "msg", "Order deleted")
}
