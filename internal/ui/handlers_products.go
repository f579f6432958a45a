package ui

import (
	"net/http"
	"slices"

	"github.com/me/glamgiant/internal/glamapi"
	"github.com/me/glamgiant/internal/guard"
	"github.com/me/glamgiant/pkg/model"
)

// HandleProducts renders the paged, sortable product list.
func (ui *UI) HandleProducts(w http.ResponseWriter, r *http.Request) {
	products, err := ui.client(r).ListProducts(r.Context())
	if err != nil {
		ui.renderError(w, r, "Failed to load products", err)
		return
	}

	st := parseTableState(r)
	res := ui.catalog.Sync(products, func(a, b model.Product) bool { return a == b }, st.Query())

	id := IdentityFromRequest(r)
	data := ui.page(r, "Products")
	data["Products"] = res.Items
	data["Table"] = newTableNav("/products", st, res)
	data["CanCreate"] = id.Is(model.RoleAdmin)
	data["CanDelete"] = id.Is(model.RoleAdmin)
	ui.render(w, r, http.StatusOK, "products", data)
}

// HandleProductNew renders an empty product form.
func (ui *UI) HandleProductNew(w http.ResponseWriter, r *http.Request) {
	data := ui.page(r, "New Product")
	data["Form"] = productForm{}
	data["Action"] = "/create-product"
	ui.render(w, r, http.StatusOK, "product_form", data)
}

// HandleProductCreate creates a product from the posted form.
func (ui *UI) HandleProductCreate(w http.ResponseWriter, r *http.Request) {
	form, errs, ok := ui.parseProductForm(w, r, "/create-product")
	if !ok {
		return
	}
	if errs != nil {
		data := ui.page(r, "New Product")
		data["Form"] = form
		data["Errors"] = errs
		data["Action"] = "/create-product"
		ui.render(w, r, http.StatusUnprocessableEntity, "product_form", data)
		return
	}

	p, err := ui.client(r).CreateProduct(r.Context(), form.input())
	if err != nil {
		data := ui.page(r, "New Product")
		data["Form"] = form
		data["Action"] = "/create-product"
		data["Error"] = "Failed to create product: " + glamapi.Message(err)
		ui.logger.Warn("create product failed", "error", err)
		ui.render(w, r, http.StatusBadGateway, "product_form", data)
		return
	}
	ui.logger.Info("product created", "product_id", p.ID, "by", IdentityFromRequest(r).ID)
	redirectWith(w, r, "/products", "msg", "Product "+p.Name+" created")
}

// HandleProductEdit renders the form for an existing product.
func (ui *UI) HandleProductEdit(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	p, err := ui.client(r).GetProduct(r.Context(), id)
	if err != nil {
		ui.renderError(w, r, "Product not found", err)
		return
	}
	data := ui.page(r, "Edit Product")
	data["Product"] = p
	data["Form"] = productFormFrom(*p)
	data["Action"] = "/edit-product/" + id
	ui.render(w, r, http.StatusOK, "product_form", data)
}

// HandleProductUpdate saves an edited product.
func (ui *UI) HandleProductUpdate(w http.ResponseWriter, r *http.Request) {
	id := pathParam(r, "id")
	action := "/edit-product/" + id
	form, errs, ok := ui.parseProductForm(w, r, action)
	if !ok {
		return
	}
	if errs != nil {
		data := ui.page(r, "Edit Product")
		data["Form"] = form
		data["Errors"] = errs
		data["Action"] = action
		ui.render(w, r, http.StatusUnprocessableEntity, "product_form", data)
		return
	}

	if _, err := ui.client(r).UpdateProduct(r.Context(), id, form.input()); err != nil {
		ui.logger.Warn("update product failed", "product_id", id, "error", err)
		redirectWith(w, r, action, "error", "Failed to update product: "+glamapi.Message(err))
		return
	}
	ui.logger.Info("product updated", "product_id", id, "by", IdentityFromRequest(r).ID)
	redirectWith(w, r, "/products", "msg", "Product updated")
}

// HandleProductDelete removes a product. Only admins may delete even
// though employees can reach the list.
func (ui *UI) HandleProductDelete(w http.ResponseWriter, r *http.Request) {
	if !IdentityFromRequest(r).Is(model.RoleAdmin) {
		http.Redirect(w, r, guard.UnauthorizedPath, http.StatusSeeOther)
		return
	}
	id := pathParam(r, "id")
	if err := ui.client(r).DeleteProduct(r.Context(), id); err != nil {
		ui.logger.Warn("delete product failed", "product_id", id, "error", err)
		redirectWith(w, r, "/products", "error", "Failed to delete product: "+glamapi.Message(err))
		return
	}
	ui.logger.Info("product deleted", "product_id", id, "by", IdentityFromRequest(r).ID)
	redirectWith(w, r, "/products", "msg", "Product deleted")
}

// parseProductForm reads and validates the product form. ok is false when
// a response has already been written.
func (ui *UI) parseProductForm(w http.ResponseWriter, r *http.Request, back string) (productForm, map[string]string, bool) {
	if err := r.ParseForm(); err != nil {
		redirectWith(w, r, back, "error", "Invalid request")
		return productForm{}, nil, false
	}
	fe := formErrors{}
	form := productForm{
		Name:              formString(r, "name"),
		Category:          formString(r, "category"),
		Stock:             fe.int(r, "stock"),
		WarehouseLocation: formString(r, "warehouse_location"),
		DurabilityScore:   fe.float(r, "durability_score"),
		Price:             fe.float(r, "price"),
	}
	return form, fe.check(form), true
}

// productOptions returns products sorted by name for select inputs.
func productOptions(products []model.Product) []model.Product {
	out := slices.Clone(products)
	slices.SortFunc(out, func(a, b model.Product) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	return out
}
