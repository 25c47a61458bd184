package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	Auth     *AuthHandler
	Products *ProductHandler
	Cart     *CartHandler
	Checkout *CheckoutHandler
	Orders   *OrdersHandler
	Admin    *AdminHandler
	Tracking *TrackingHandler

	Sessions       SessionReader
	RequestTimeout time.Duration
}

func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(ClientContextMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", cfg.Auth.Login)
			r.Post("/register", cfg.Auth.Register)
			r.Post("/logout", cfg.Auth.Logout)
			r.Get("/me", cfg.Auth.Me)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", cfg.Products.ListProducts)
			r.Get("/deals", cfg.Products.ListDeals)
			r.Get("/{product_id}", cfg.Products.GetProduct)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cfg.Cart.GetCart)
			r.Delete("/", cfg.Cart.ClearCart)
			r.Post("/items", cfg.Cart.AddItem)
			r.Put("/items/{product_id}", cfg.Cart.UpdateQuantity)
			r.Delete("/items/{product_id}", cfg.Cart.RemoveItem)
		})

		r.Post("/checkout", cfg.Checkout.Checkout)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", cfg.Orders.ListOrders)
			r.Get("/{order_id}/status", cfg.Orders.OrderStatus)
		})

		r.Get("/track/{code}", cfg.Tracking.Track)

		r.Route("/admin", func(r chi.Router) {
			r.Use(RequireAdmin(cfg.Sessions))
			r.Get("/orders", cfg.Admin.ListAllOrders)
			r.Get("/stats", cfg.Admin.Stats)
		})
	})

	return r
}
