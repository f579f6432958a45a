package ui

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all UI routes on the given router.
func (ui *UI) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(ui.SessionMiddleware)

		// Public routes.
		r.Get("/", ui.HandleHome)
		r.Get("/login", ui.HandleLogin)
		r.Post("/login", ui.HandleLoginPost)
		r.Get("/register", ui.HandleRegister)
		r.Post("/register", ui.HandleRegisterPost)
		r.Get("/logout", ui.HandleLogout)
		r.Post("/logout", ui.HandleLogout)
		r.Get("/unauthorized", ui.HandleUnauthorized)

		// Dashboards, one per role.
		r.With(ui.protect("/admin/dashboard")).Get("/admin/dashboard", ui.HandleAdminDashboard)
		r.With(ui.protect("/employee/dashboard")).Get("/employee/dashboard", ui.HandleEmployeeDashboard)
		r.With(ui.protect("/tester/dashboard")).Get("/tester/dashboard", ui.HandleTesterDashboard)
		r.With(ui.protect("/client/dashboard")).Get("/client/dashboard", ui.HandleClientDashboard)

		// Products.
		r.With(ui.protect("/products")).Get("/products", ui.HandleProducts)
		r.With(ui.protect("/products")).Post("/products/{id}/delete", ui.HandleProductDelete)
		r.With(ui.protect("/create-product")).Get("/create-product", ui.HandleProductNew)
		r.With(ui.protect("/create-product")).Post("/create-product", ui.HandleProductCreate)
		r.With(ui.protect("/edit-product/{id}")).Get("/edit-product/{id}", ui.HandleProductEdit)
		r.With(ui.protect("/edit-product/{id}")).Post("/edit-product/{id}", ui.HandleProductUpdate)

		// Product tests.
		r.Route("/product-tests", func(r chi.Router) {
			r.Use(ui.protect("/product-tests"))
			r.Get("/", ui.HandleProductTests)
			r.Post("/", ui.HandleProductTestCreate)
			r.Get("/{id}/edit", ui.HandleProductTestEdit)
			r.Post("/{id}/edit", ui.HandleProductTestUpdate)
			r.Post("/{id}/delete", ui.HandleProductTestDelete)
		})

		// User management.
		r.Route("/users-management", func(r chi.Router) {
			r.Use(ui.protect("/users-management"))
			r.Get("/", ui.HandleUsers)
			r.Post("/", ui.HandleUserCreate)
			r.Get("/{id}/edit", ui.HandleUserEdit)
			r.Post("/{id}/edit", ui.HandleUserUpdate)
			r.Post("/{id}/delete", ui.HandleUserDelete)
		})

		// Orders.
		r.Route("/orders-management", func(r chi.Router) {
			r.Use(ui.protect("/orders-management"))
			r.Get("/", ui.HandleOrders)
			r.Post("/{id}/status", ui.HandleOrderStatus)
			r.Post("/{id}/delete", ui.HandleOrderDelete)
		})

		// Client shop.
		r.With(ui.protect("/shop")).Get("/shop", ui.HandleShop)
		r.Route("/cart", func(r chi.Router) {
			r.Use(ui.protect("/cart"))
			r.Get("/", ui.HandleCart)
			r.Post("/add", ui.HandleCartAdd)
			r.Post("/remove", ui.HandleCartRemove)
			r.Post("/clear", ui.HandleCartClear)
			r.Post("/checkout", ui.HandleCheckout)
		})
		r.With(ui.protect("/purchases")).Get("/purchases", ui.HandlePurchases)

		r.With(ui.protect("/profile")).Get("/profile", ui.HandleProfile)
		r.With(ui.protect("/profile")).Post("/profile", ui.HandleProfileUpdate)

		r.NotFound(ui.HandleNotFound)
	})
}
