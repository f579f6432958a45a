package ui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/me/glamgiant/internal/glamapi"
	"github.com/me/glamgiant/internal/store"
	"github.com/me/glamgiant/pkg/model"
)

// fakeAPI is an in-process stand-in for the GlamGiant API server.
type fakeAPI struct {
	t *testing.T

	mu        sync.Mutex
	users     map[string]*model.User
	roles     map[string]string // email -> role claim as issued
	products  []model.Product
	failPaths map[string]bool
	purchases []model.PurchaseRequest
}

func newFakeAPI(t *testing.T) *fakeAPI {
	return &fakeAPI{
		t: t,
		users: map[string]*model.User{
			"u-admin":  {ID: "u-admin", Name: "Ada Admin", Email: "admin@glam.test", Role: model.RoleAdmin},
			"u-tester": {ID: "u-tester", Name: "Tess Tester", Email: "tester@glam.test", Role: model.RoleTester},
			"u-client": {ID: "u-client", Name: "Cli Client", Email: "client@glam.test", Role: model.RoleClient},
		},
		roles: map[string]string{
			"admin@glam.test":  "admin",
			"tester@glam.test": "tester",
			"client@glam.test": "client",
		},
		products: []model.Product{
			{ID: "p1", Name: "Lipstick", Category: "Lips", Stock: 40, WarehouseLocation: "A1", DurabilityScore: 7, Price: 12.5},
			{ID: "p2", Name: "Mascara", Category: "Eyes", Stock: 3, WarehouseLocation: "B2", DurabilityScore: 9, Price: 30},
			{ID: "p3", Name: "Blush", Category: "Cheeks", Stock: 15, WarehouseLocation: "C3", DurabilityScore: 5, Price: 8},
		},
		failPaths: map[string]bool{},
	}
}

func (f *fakeAPI) userByEmail(email string) *model.User {
	for _, u := range f.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (f *fakeAPI) token(u *model.User) string {
	f.t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    u.ID,
		"email": u.Email,
		"role":  f.roles[u.Email],
	}).SignedString([]byte("fake-secret"))
	if err != nil {
		f.t.Fatalf("sign token: %v", err)
	}
	return tok
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	write := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}
	guard := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			fail := f.failPaths[r.URL.Path]
			f.mu.Unlock()
			if fail {
				write(w, http.StatusInternalServerError, map[string]any{"message": "boom"})
				return
			}
			if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
				write(w, http.StatusUnauthorized, map[string]any{"message": "Unauthorized"})
				return
			}
			f.mu.Lock()
			defer f.mu.Unlock()
			next(w, r)
		}
	}

	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req model.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		u := f.userByEmail(req.Email)
		if u == nil || req.Password != "secret" {
			write(w, http.StatusUnauthorized, map[string]any{"message": "Invalid credentials"})
			return
		}
		write(w, http.StatusOK, model.LoginResponse{Token: f.token(u), User: u})
	})
	mux.HandleFunc("POST /users/register", func(w http.ResponseWriter, r *http.Request) {
		var req model.RegisterRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.userByEmail(req.Email) != nil {
			write(w, http.StatusConflict, map[string]any{"message": []string{"email already registered"}})
			return
		}
		u := &model.User{ID: "u-new", Name: req.Name, Email: req.Email, Role: req.Role}
		f.users[u.ID] = u
		f.roles[u.Email] = string(req.Role)
		write(w, http.StatusCreated, u)
	})
	mux.HandleFunc("GET /makeup-products", guard(func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, f.products)
	}))
	mux.HandleFunc("GET /makeup-products/{id}", guard(func(w http.ResponseWriter, r *http.Request) {
		for _, p := range f.products {
			if p.ID == r.PathValue("id") {
				write(w, http.StatusOK, p)
				return
			}
		}
		write(w, http.StatusNotFound, map[string]any{"message": "Product not found"})
	}))
	mux.HandleFunc("GET /users", guard(func(w http.ResponseWriter, r *http.Request) {
		out := make([]model.User, 0, len(f.users))
		for _, u := range f.users {
			out = append(out, *u)
		}
		write(w, http.StatusOK, out)
	}))
	mux.HandleFunc("GET /users/{id}", guard(func(w http.ResponseWriter, r *http.Request) {
		u, ok := f.users[r.PathValue("id")]
		if !ok {
			write(w, http.StatusNotFound, map[string]any{"message": "User not found"})
			return
		}
		write(w, http.StatusOK, u)
	}))
	mux.HandleFunc("PATCH /users/{id}", guard(func(w http.ResponseWriter, r *http.Request) {
		u, ok := f.users[r.PathValue("id")]
		if !ok {
			write(w, http.StatusNotFound, map[string]any{"message": "User not found"})
			return
		}
		var up model.UserUpdate
		_ = json.NewDecoder(r.Body).Decode(&up)
		if up.Name != nil {
			u.Name = *up.Name
		}
		if up.Email != nil {
			u.Email = *up.Email
		}
		write(w, http.StatusOK, u)
	}))
	mux.HandleFunc("GET /orders", guard(func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, []model.Order{{ID: "o1", ClientID: "u-client", TotalAmount: 25, PaymentStatus: model.PaymentPaid}})
	}))
	mux.HandleFunc("GET /products-tests", guard(func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusOK, []model.ProductTest{
			{ID: "t1", TesterID: "u-tester", ProductID: "p1", Reaction: "none", Rating: 8, SurvivalStatus: true},
		})
	}))
	mux.HandleFunc("GET /user-purchases/mine", guard(func(w http.ResponseWriter, r *http.Request) {
		out := make([]model.Purchase, 0, len(f.purchases))
		for i, req := range f.purchases {
			p := model.Purchase{ID: "pur" + string(rune('1'+i))}
			for _, line := range req.Items {
				p.Items = append(p.Items, model.PurchaseItem{Quantity: line.Quantity, Product: model.PurchaseProduct{Name: line.ProductID}})
			}
			out = append(out, p)
		}
		write(w, http.StatusOK, out)
	}))
	mux.HandleFunc("POST /user-purchases", guard(func(w http.ResponseWriter, r *http.Request) {
		var req model.PurchaseRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		f.purchases = append(f.purchases, req)
		write(w, http.StatusCreated, model.Purchase{ID: "pur-new"})
	}))
	return mux
}

func (f *fakeAPI) fail(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failPaths[path] = true
}

type testConsole struct {
	api     *fakeAPI
	ui      *UI
	handler http.Handler
}

func newTestConsole(t *testing.T) *testConsole {
	t.Helper()
	api := newFakeAPI(t)
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	ui := New(setupTestStore(t), glamapi.NewClient(srv.URL, logger), logger, Config{PageSize: 2})
	r := chi.NewRouter()
	ui.RegisterRoutes(r)
	return &testConsole{api: api, ui: ui, handler: r}
}

func (c *testConsole) do(t *testing.T, method, path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c.handler.ServeHTTP(rec, req)
	return rec
}

// login signs in and returns the session cookie.
func (c *testConsole) login(t *testing.T, email string) *http.Cookie {
	t.Helper()
	rec := c.do(t, http.MethodPost, "/login", url.Values{"email": {email}, "password": {"secret"}}, nil)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("login %s: status %d, body %s", email, rec.Code, rec.Body.String())
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookieName {
			return ck
		}
	}
	t.Fatalf("login %s: no session cookie", email)
	return nil
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303 (body %s)", rec.Code, rec.Body.String())
	}
	if got := rec.Header().Get("Location"); got != want {
		t.Errorf("Location = %q, want %q", got, want)
	}
}

func TestProtectedRouteWithoutSessionRedirectsToLogin(t *testing.T) {
	c := newTestConsole(t)
	for _, path := range []string{"/products", "/admin/dashboard", "/profile", "/cart"} {
		assertRedirect(t, c.do(t, http.MethodGet, path, nil, nil), "/login")
	}
}

func TestHomeRedirects(t *testing.T) {
	c := newTestConsole(t)
	assertRedirect(t, c.do(t, http.MethodGet, "/", nil, nil), "/login")

	cookie := c.login(t, "admin@glam.test")
	assertRedirect(t, c.do(t, http.MethodGet, "/", nil, cookie), "/admin/dashboard")
}

func TestTesterRoleIsConfinedToTesterViews(t *testing.T) {
	c := newTestConsole(t)
	rec := c.do(t, http.MethodPost, "/login", url.Values{"email": {"tester@glam.test"}, "password": {"secret"}}, nil)
	assertRedirect(t, rec, "/tester/dashboard")
	cookie := rec.Result().Cookies()[0]

	assertRedirect(t, c.do(t, http.MethodGet, "/users-management", nil, cookie), "/unauthorized")
	assertRedirect(t, c.do(t, http.MethodGet, "/admin/dashboard", nil, cookie), "/unauthorized")

	rec = c.do(t, http.MethodGet, "/tester/dashboard", nil, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("tester dashboard status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Tess Tester") {
		t.Error("dashboard does not greet the tester by name")
	}
	if strings.Contains(rec.Body.String(), `href="/users-management"`) {
		t.Error("tester nav links to user management")
	}

	rec = c.do(t, http.MethodGet, "/unauthorized", nil, cookie)
	if rec.Code != http.StatusForbidden || !strings.Contains(rec.Body.String(), "Access denied") {
		t.Errorf("unauthorized page: %d", rec.Code)
	}
}

func TestRoleClaimIsCaseInsensitive(t *testing.T) {
	c := newTestConsole(t)
	c.api.roles["admin@glam.test"] = "ADMIN"
	cookie := c.login(t, "admin@glam.test")
	if rec := c.do(t, http.MethodGet, "/users-management", nil, cookie); rec.Code != http.StatusOK {
		t.Errorf("users-management status = %d, want 200", rec.Code)
	}
}

func TestLoginFailureShowsGenericMessage(t *testing.T) {
	c := newTestConsole(t)
	rec := c.do(t, http.MethodPost, "/login", url.Values{"email": {"admin@glam.test"}, "password": {"wrong"}}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid email or password") {
		t.Error("missing login failure message")
	}
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == SessionCookieName && ck.MaxAge >= 0 {
			t.Error("failed login set a session cookie")
		}
	}
}

func TestLoginValidation(t *testing.T) {
	c := newTestConsole(t)
	rec := c.do(t, http.MethodPost, "/login", url.Values{"email": {"not-an-email"}}, nil)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "must be a valid email address") {
		t.Error("missing email validation message")
	}
}

func TestLogoutEndsSession(t *testing.T) {
	c := newTestConsole(t)
	cookie := c.login(t, "admin@glam.test")
	assertRedirect(t, c.do(t, http.MethodPost, "/logout", nil, cookie), "/login")
	assertRedirect(t, c.do(t, http.MethodGet, "/admin/dashboard", nil, cookie), "/login")
}

func TestRegisterCreatesClientAccount(t *testing.T) {
	c := newTestConsole(t)
	form := url.Values{"name": {"Nia"}, "email": {"nia@glam.test"}, "password": {"secret"}, "confirm": {"secret"}}
	rec := c.do(t, http.MethodPost, "/register", form, nil)
	if rec.Code != http.StatusSeeOther || !strings.HasPrefix(rec.Header().Get("Location"), "/login?msg=") {
		t.Fatalf("register: %d %s", rec.Code, rec.Header().Get("Location"))
	}
	rec = c.do(t, http.MethodPost, "/login", url.Values{"email": {"nia@glam.test"}, "password": {"secret"}}, nil)
	assertRedirect(t, rec, "/client/dashboard")

	rec = c.do(t, http.MethodPost, "/register", form, nil)
	if rec.Code != http.StatusUnprocessableEntity || !strings.Contains(rec.Body.String(), "email already registered") {
		t.Errorf("duplicate register: %d", rec.Code)
	}
}

func TestProductsSortAndPaginate(t *testing.T) {
	c := newTestConsole(t)
	cookie := c.login(t, "admin@glam.test")

	rec := c.do(t, http.MethodGet, "/products?sort=price&dir=desc", nil, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if i, j := strings.Index(body, "Mascara"), strings.Index(body, "Lipstick"); i < 0 || j < 0 || i > j {
		t.Error("products not sorted by price descending")
	}
	if strings.Contains(body, ">Blush<") {
		t.Error("third product rendered on page 1 with page size 2")
	}
	if !strings.Contains(body, "page 1 of 2") {
		t.Error("missing pagination summary")
	}

	rec = c.do(t, http.MethodGet, "/products?sort=price&dir=desc&page=2", nil, cookie)
	if !strings.Contains(rec.Body.String(), "Blush") {
		t.Error("page 2 does not show the cheapest product")
	}
}

func TestProductsSearch(t *testing.T) {
	c := newTestConsole(t)
	cookie := c.login(t, "admin@glam.test")

	rec := c.do(t, http.MethodGet, "/products?q=EYES&page=2", nil, cookie)
	body := rec.Body.String()
	if !strings.Contains(body, "Mascara") || strings.Contains(body, "Lipstick") {
		t.Error("search by category did not filter")
	}
	if !strings.Contains(body, "page 1 of 1") {
		t.Error("new search term did not reset to page 1")
	}
}

func TestAdminDashboardToleratesPartialFailure(t *testing.T) {
	c := newTestConsole(t)
	c.api.fail("/orders")
	cookie := c.login(t, "admin@glam.test")

	rec := c.do(t, http.MethodGet, "/admin/dashboard", nil, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "unavailable") {
		t.Error("failed card not marked unavailable")
	}
	if !strings.Contains(body, "Products") {
		t.Error("products card missing")
	}
}

func TestEmployeeDashboardListsLowStock(t *testing.T) {
	c := newTestConsole(t)
	c.api.users["u-emp"] = &model.User{ID: "u-emp", Name: "Em", Email: "emp@glam.test", Role: model.RoleEmployee}
	c.api.roles["emp@glam.test"] = "employee"
	cookie := c.login(t, "emp@glam.test")

	rec := c.do(t, http.MethodGet, "/employee/dashboard", nil, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Low stock") || !strings.Contains(body, "Mascara") {
		t.Error("low-stock product not listed")
	}
	assertRedirect(t, c.do(t, http.MethodGet, "/create-product", nil, cookie), "/unauthorized")
}

func TestCartCheckout(t *testing.T) {
	c := newTestConsole(t)
	cookie := c.login(t, "client@glam.test")

	rec := c.do(t, http.MethodPost, "/cart/add", url.Values{"product_id": {"p1"}, "quantity": {"2"}}, cookie)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("add: status %d", rec.Code)
	}
	rec = c.do(t, http.MethodGet, "/cart", nil, cookie)
	if !strings.Contains(rec.Body.String(), "Lipstick") || !strings.Contains(rec.Body.String(), "$25") {
		t.Errorf("cart page missing item or total: %s", rec.Body.String())
	}

	rec = c.do(t, http.MethodPost, "/cart/checkout", nil, cookie)
	if rec.Code != http.StatusSeeOther || !strings.HasPrefix(rec.Header().Get("Location"), "/purchases") {
		t.Fatalf("checkout: %d %s", rec.Code, rec.Header().Get("Location"))
	}
	c.api.mu.Lock()
	got := c.api.purchases
	c.api.mu.Unlock()
	if len(got) != 1 || len(got[0].Items) != 1 || got[0].Items[0].ProductID != "p1" || got[0].Items[0].Quantity != 2 {
		t.Errorf("purchase request = %+v", got)
	}

	rec = c.do(t, http.MethodGet, "/cart", nil, cookie)
	if !strings.Contains(rec.Body.String(), "Your cart is empty") {
		t.Error("cart not cleared after checkout")
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	c := newTestConsole(t)
	cookie := c.login(t, "client@glam.test")
	rec := c.do(t, http.MethodPost, "/cart/checkout", nil, cookie)
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/cart?error=") {
		t.Errorf("Location = %q", loc)
	}
}

func TestProfileUpdateRefreshesIdentity(t *testing.T) {
	c := newTestConsole(t)
	cookie := c.login(t, "tester@glam.test")

	form := url.Values{"name": {"Tess Renamed"}, "email": {"tester@glam.test"}}
	rec := c.do(t, http.MethodPost, "/profile", form, cookie)
	if loc := rec.Header().Get("Location"); !strings.HasPrefix(loc, "/profile?msg=") {
		t.Fatalf("profile update: %d %s", rec.Code, loc)
	}

	rec = c.do(t, http.MethodGet, "/tester/dashboard", nil, cookie)
	if !strings.Contains(rec.Body.String(), "Tess Renamed") {
		t.Error("session identity not refreshed after profile update")
	}
}

func TestUpstreamNotFoundRendersNotFound(t *testing.T) {
	c := newTestConsole(t)
	cookie := c.login(t, "admin@glam.test")
	rec := c.do(t, http.MethodGet, "/users-management/missing/edit", nil, cookie)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestUnknownRoute(t *testing.T) {
	c := newTestConsole(t)
	if rec := c.do(t, http.MethodGet, "/no-such-page", nil, nil); rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestGuardSeesRestoredIdentity(t *testing.T) {
	c := newTestConsole(t)
	cookie := c.login(t, "tester@glam.test")

	var reached bool
	h := c.ui.SessionMiddleware(c.ui.protect("/profile")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		sess := SessionFromContext(r.Context())
		if sess.Identity.Loading() {
			t.Error("identity still loading when the view runs")
		}
		if id := sess.Identity.Current(); id == nil || id.ID != "u-tester" {
			t.Errorf("identity = %+v, want u-tester", id)
		}
	})))

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if !reached {
		t.Fatalf("view not reached: status %d, Location %q", rec.Code, rec.Header().Get("Location"))
	}
}

// undeletableStore fails every session delete.
type undeletableStore struct {
	store.Store
}

func (undeletableStore) DeleteSession(context.Context, string) error {
	return errors.New("disk full")
}

func TestLogoutLogsSessionDeleteFailure(t *testing.T) {
	api := newFakeAPI(t)
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ui := New(undeletableStore{setupTestStore(t)}, glamapi.NewClient(srv.URL, logger), logger, Config{PageSize: 2})
	r := chi.NewRouter()
	ui.RegisterRoutes(r)
	c := &testConsole{api: api, ui: ui, handler: r}

	cookie := c.login(t, "admin@glam.test")
	assertRedirect(t, c.do(t, http.MethodPost, "/logout", nil, cookie), "/login")

	out := logs.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "delete session failed") || !strings.Contains(out, "disk full") {
		t.Errorf("delete failure not logged at WARN:\n%s", out)
	}
}
