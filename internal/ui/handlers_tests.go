package ui

import (
	"net/http"

	"github.com/me/glamgiant/internal/glamapi"
	"github.com/me/glamgiant/internal/guard"
	"github.com/me/glamgiant/internal/listing"
	"github.com/me/glamgiant/pkg/model"
)

// HandleProductTests renders the product test list with an inline form
// for recording a new test.
func (ui *UI) HandleProductTests(w http.ResponseWriter, r *http.Request) {
	api := ui.client(r)
	tests, err := api.ListProductTests(r.Context())
	if err != nil {
		ui.renderError(w, r, "Failed to load product tests", err)
		return
	}

	st := parseTableState(r)
	res := listing.ProductTests(ui.pageSize).Apply(tests, st.Query())

	data := ui.page(r, "Product Tests")
	data["Tests"] = res.Items
	data["Table"] = newTableNav("/product-tests", st, res)
	data["Form"] = productTestForm{Rating: model.MaxRating}
	data["Products"] = ui.productChoices(r)
	ui.render(w, r, http.StatusOK, "product_tests", data)
}

// HandleProductTestCreate records a test by the signed-in user.
func (ui *UI) HandleProductTestCreate(w http.ResponseWriter, r *http.Request) {
	form, errs, ok := parseProductTestForm(w, r, "/product-tests")
	if !ok {
		return
	}
	if errs != nil {
		redirectWith(w, r, "/product-tests", "error", "Invalid test: "+firstError(errs))
		return
	}

	id := IdentityFromRequest(r)
	in := form.input(id.ID)
	t, err := ui.client(r).CreateProductTest(r.Context(), in)
	if err != nil {
		ui.logger.Warn("create product test failed", "error", err)
		redirectWith(w, r, "/product-tests", "error", "Failed to record test: "+glamapi.Message(err))
		return
	}
	ui.logger.Info("product test recorded", "test_id", t.ID, "tester_id", id.ID)
	redirectWith(w, r, "/product-tests", "msg", "Test recorded")
}

// HandleProductTestEdit renders the edit form for one test.
func (ui *UI) HandleProductTestEdit(w http.ResponseWriter, r *http.Request) {
	t, ok := ui.ownedTest(w, r)
	if !ok {
		return
	}
	data := ui.page(r, "Edit Product Test")
	data["Test"] = t
	data["Form"] = productTestForm{
		ProductID:      t.ProductID,
		Reaction:       t.Reaction,
		Rating:         t.Rating,
		SurvivalStatus: t.SurvivalStatus,
	}
	data["Products"] = ui.productChoices(r)
	ui.render(w, r, http.StatusOK, "product_test_form", data)
}

// HandleProductTestUpdate saves an edited test. The original tester is kept.
func (ui *UI) HandleProductTestUpdate(w http.ResponseWriter, r *http.Request) {
	t, ok := ui.ownedTest(w, r)
	if !ok {
		return
	}
	back := "/product-tests/" + t.ID + "/edit"
	form, errs, ok := parseProductTestForm(w, r, back)
	if !ok {
		return
	}
	if errs != nil {
		data := ui.page(r, "Edit Product Test")
		data["Test"] = t
		data["Form"] = form
		data["Errors"] = errs
		data["Products"] = ui.productChoices(r)
		ui.render(w, r, http.StatusUnprocessableEntity, "product_test_form", data)
		return
	}
	if _, err := ui.client(r).UpdateProductTest(r.Context(), t.ID, form.input(t.TesterID)); err != nil {
		ui.logger.Warn("update product test failed", "test_id", t.ID, "error", err)
		redirectWith(w, r, back, "error", "Failed to update test: "+glamapi.Message(err))
		return
	}
	redirectWith(w, r, "/product-tests", "msg", "Test updated")
}

// HandleProductTestDelete removes a test.
func (ui *UI) HandleProductTestDelete(w http.ResponseWriter, r *http.Request) {
	t, ok := ui.ownedTest(w, r)
	if !ok {
		return
	}
	if err := ui.client(r).DeleteProductTest(r.Context(), t.ID); err != nil {
		ui.logger.Warn("delete product test failed", "test_id", t.ID, "error", err)
		redirectWith(w, r, "/product-tests", "error", "Failed to delete test: "+glamapi.Message(err))
		return
	}
	ui.logger.Info("product test deleted", "test_id", t.ID, "by", IdentityFromRequest(r).ID)
	redirectWith(w, r, "/product-tests", "msg", "Test deleted")
}

// ownedTest loads the test named in the path. Testers may only touch their
// own tests; staff may touch any.
func (ui *UI) ownedTest(w http.ResponseWriter, r *http.Request) (*model.ProductTest, bool) {
	t, err := ui.client(r).GetProductTest(r.Context(), pathParam(r, "id"))
	if err != nil {
		ui.renderError(w, r, "Product test not found", err)
		return nil, false
	}
	id := IdentityFromRequest(r)
	if id.Is(model.RoleTester) && t.TesterID != id.ID {
		http.Redirect(w, r, guard.UnauthorizedPath, http.StatusSeeOther)
		return nil, false
	}
	return t, true
}

// productChoices returns the products offered in test forms. A failed
// fetch leaves the form with a free-text product id.
func (ui *UI) productChoices(r *http.Request) []model.Product {
	products, err := ui.client(r).ListProducts(r.Context())
	if err != nil {
		ui.logger.Warn("load product choices failed", "error", err)
		return nil
	}
	return productOptions(products)
}

func parseProductTestForm(w http.ResponseWriter, r *http.Request, back string) (productTestForm, map[string]string, bool) {
	if err := r.ParseForm(); err != nil {
		redirectWith(w, r, back, "error", "Invalid request")
		return productTestForm{}, nil, false
	}
	fe := formErrors{}
	form := productTestForm{
		ProductID:      formString(r, "product_id"),
		Reaction:       formString(r, "reaction"),
		Rating:         fe.int(r, "rating"),
		SurvivalStatus: formBool(r, "survival_status"),
	}
	return form, fe.check(form), true
}

func (f productTestForm) input(testerID string) model.ProductTestInput {
	return model.ProductTestInput{
		TesterID:       testerID,
		ProductID:      f.ProductID,
		Reaction:       f.Reaction,
		Rating:         f.Rating,
		SurvivalStatus: f.SurvivalStatus,
	}
}

// firstError picks one message from errs in a stable order.
func firstError(errs map[string]string) string {
	for _, key := range []string{"product_id", "reaction", "rating", "name", "email", "password", "role"} {
		if msg, ok := errs[key]; ok {
			return key + " " + msg
		}
	}
	for key, msg := range errs {
		return key + " " + msg
	}
	return ""
}
