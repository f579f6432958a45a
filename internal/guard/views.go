package guard

import (
	"fmt"
	"slices"

	"github.com/me/glamgiant/pkg/model"
)

var allRoles = model.Roles()

// views is the static table of protected views.
var views = []Descriptor{
	{Path: "/admin/dashboard", Title: "Dashboard", AllowedRoles: []model.Role{model.RoleAdmin}, Nav: true},
	{Path: "/employee/dashboard", Title: "Dashboard", AllowedRoles: []model.Role{model.RoleEmployee}, Nav: true},
	{Path: "/tester/dashboard", Title: "Dashboard", AllowedRoles: []model.Role{model.RoleTester}, Nav: true},
	{Path: "/client/dashboard", Title: "Dashboard", AllowedRoles: []model.Role{model.RoleClient}, Nav: true},
	{Path: "/products", Title: "Products", AllowedRoles: []model.Role{model.RoleAdmin, model.RoleEmployee}, Nav: true},
	{Path: "/create-product", Title: "New Product", AllowedRoles: []model.Role{model.RoleAdmin}, Nav: true},
	{Path: "/edit-product/{id}", Title: "Edit Product", AllowedRoles: []model.Role{model.RoleAdmin, model.RoleEmployee}},
	{Path: "/product-tests", Title: "Product Tests", AllowedRoles: []model.Role{model.RoleAdmin, model.RoleEmployee, model.RoleTester}, Nav: true},
	{Path: "/users-management", Title: "Users", AllowedRoles: []model.Role{model.RoleAdmin}, Nav: true},
	{Path: "/orders-management", Title: "Orders", AllowedRoles: []model.Role{model.RoleAdmin}, Nav: true},
	{Path: "/shop", Title: "Shop", AllowedRoles: []model.Role{model.RoleClient}, Nav: true},
	{Path: "/cart", Title: "Cart", AllowedRoles: []model.Role{model.RoleClient}, Nav: true},
	{Path: "/purchases", Title: "My Purchases", AllowedRoles: []model.Role{model.RoleClient}, Nav: true},
	{Path: "/profile", Title: "Profile", AllowedRoles: allRoles, Nav: true},
}

// Views returns a copy of every protected view descriptor.
func Views() []Descriptor {
	return slices.Clone(views)
}

// Lookup returns the descriptor registered for path.
func Lookup(path string) (Descriptor, bool) {
	for _, d := range views {
		if d.Path == path {
			return d, true
		}
	}
	return Descriptor{}, false
}

// MustLookup is Lookup for paths known at compile time.
func MustLookup(path string) Descriptor {
	d, ok := Lookup(path)
	if !ok {
		panic(fmt.Sprintf("guard: no view registered for %q", path))
	}
	return d
}

// NavLink is one entry of the role-filtered navigation.
type NavLink struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}

// NavLinks returns the navigation entries identity may follow.
func NavLinks(identity *model.Identity) []NavLink {
	if identity == nil {
		return nil
	}
	var links []NavLink
	for _, d := range views {
		if d.Nav && d.Permits(identity.Role) {
			links = append(links, NavLink{Path: d.Path, Title: d.Title})
		}
	}
	return links
}

// DashboardPath returns the landing page for role after login.
func DashboardPath(role model.Role) string {
	r, err := model.ParseRole(string(role))
	if err != nil {
		return UnauthorizedPath
	}
	return "/" + string(r) + "/dashboard"
}
