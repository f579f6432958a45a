package guard

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/me/glamgiant/pkg/model"
)

func TestCheck(t *testing.T) {
	products := Descriptor{Path: "/products", AllowedRoles: []model.Role{model.RoleAdmin, model.RoleEmployee}}

	tests := []struct {
		name     string
		identity *model.Identity
		want     Outcome
		location string
	}{
		{"anonymous", nil, RedirectLogin, LoginPath},
		{"admin", &model.Identity{ID: "1", Role: model.RoleAdmin}, Allow, ""},
		{"employee upper case", &model.Identity{ID: "2", Role: "EMPLOYEE"}, Allow, ""},
		{"tester denied", &model.Identity{ID: "3", Role: model.RoleTester}, RedirectUnauthorized, UnauthorizedPath},
		{"client denied", &model.Identity{ID: "4", Role: model.RoleClient}, RedirectUnauthorized, UnauthorizedPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(products, tt.identity)
			if got.Outcome != tt.want || got.Location != tt.location {
				t.Errorf("Check() = %+v, want %v %q", got, tt.want, tt.location)
			}
		})
	}
}

func TestCheck_RegisteredViews(t *testing.T) {
	tester := &model.Identity{ID: "t", Role: model.RoleTester}

	tests := []struct {
		path string
		want Outcome
	}{
		{"/users-management", RedirectUnauthorized},
		{"/tester/dashboard", Allow},
		{"/product-tests", Allow},
		{"/profile", Allow},
		{"/orders-management", RedirectUnauthorized},
		{"/shop", RedirectUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Check(MustLookup(tt.path), tester).Outcome; got != tt.want {
				t.Errorf("tester on %s = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestRequire(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := MustLookup("/users-management")
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name     string
		identity *model.Identity
		status   int
		location string
	}{
		{"anonymous", nil, http.StatusSeeOther, LoginPath},
		{"tester", &model.Identity{ID: "t", Role: model.RoleTester}, http.StatusSeeOther, UnauthorizedPath},
		{"admin", &model.Identity{ID: "a", Role: model.RoleAdmin}, http.StatusOK, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Require(d, func(*http.Request) *model.Identity { return tt.identity }, logger)(ok)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users-management", nil))
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			if got := w.Header().Get("Location"); got != tt.location {
				t.Errorf("Location = %q, want %q", got, tt.location)
			}
		})
	}
}

func TestNavLinks(t *testing.T) {
	if NavLinks(nil) != nil {
		t.Error("anonymous should get no links")
	}

	has := func(links []NavLink, path string) bool {
		for _, l := range links {
			if l.Path == path {
				return true
			}
		}
		return false
	}

	admin := NavLinks(&model.Identity{Role: model.RoleAdmin})
	for _, p := range []string{"/admin/dashboard", "/users-management", "/orders-management", "/create-product", "/profile"} {
		if !has(admin, p) {
			t.Errorf("admin nav missing %s", p)
		}
	}
	if has(admin, "/shop") || has(admin, "/tester/dashboard") {
		t.Error("admin nav includes client or tester views")
	}

	tester := NavLinks(&model.Identity{Role: "Tester"})
	if !has(tester, "/product-tests") || has(tester, "/products") {
		t.Errorf("tester nav = %+v", tester)
	}
	if has(tester, "/edit-product/{id}") {
		t.Error("parameterised views must not appear in nav")
	}
}

func TestDashboardPath(t *testing.T) {
	tests := map[model.Role]string{
		model.RoleAdmin:    "/admin/dashboard",
		"Employee":         "/employee/dashboard",
		model.RoleTester:   "/tester/dashboard",
		model.RoleClient:   "/client/dashboard",
		model.Role("root"): UnauthorizedPath,
	}
	for role, want := range tests {
		if got := DashboardPath(role); got != want {
			t.Errorf("DashboardPath(%q) = %q, want %q", role, got, want)
		}
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("/nope"); ok {
		t.Error("Lookup should miss unknown paths")
	}
	d, ok := Lookup("/profile")
	if !ok || len(d.AllowedRoles) != 4 {
		t.Errorf("profile = %+v, %v", d, ok)
	}
	views := Views()
	views[0].Path = "/mutated"
	if _, ok := Lookup("/mutated"); ok {
		t.Error("Views() exposed the registry")
	}
}
