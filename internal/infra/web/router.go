package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riandyrn/otelchi"

	"github.com/ToolRent/GoToolRent/internal/infra/web/handler"
	"github.com/ToolRent/GoToolRent/internal/infra/web/middleware"
	"github.com/ToolRent/GoToolRent/pkg/logger"
	"github.com/ToolRent/GoToolRent/pkg/metrics"
)

type RouterDeps struct {
	ServiceName string
	Log         logger.Logger
	Metrics     metrics.Metrics
	Registry    *prometheus.Registry

	Products   *handler.Product
	Categories *handler.Category
	Orders     *handler.Order
	Checkout   *handler.Checkout
	Health     http.Handler
}

func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(otelchi.Middleware(deps.ServiceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestLogger(deps.Log))
	r.Use(middleware.MetricsWrapper(deps.Metrics))

	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: 20,
		Burst:             40,
		CleanupInterval:   time.Minute,
		ClientTimeout:     3 * time.Minute,
	})
	r.Use(limiter.Handler(deps.Log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", deps.Products.ListProducts)
		r.Post("/products", deps.Products.CreateProduct)
		r.Get("/products/{id}", deps.Products.GetProduct)
		r.Put("/products/{id}", deps.Products.UpdateProduct)
		r.Delete("/products/{id}", deps.Products.DeleteProduct)

		r.Get("/categories", deps.Categories.ListCategories)
		r.Post("/categories", deps.Categories.CreateCategory)
		r.Get("/categories/{id}", deps.Categories.GetCategory)
		r.Put("/categories/{id}", deps.Categories.UpdateCategory)
		r.Delete("/categories/{id}", deps.Categories.DeleteCategory)

		r.Get("/orders", deps.Orders.ListOrders)
		r.Get("/orders/{id}", deps.Orders.GetOrder)
		r.Patch("/orders/{id}/status", deps.Orders.UpdateOrderStatus)
		r.Delete("/orders/{id}", deps.Orders.DeleteOrder)

		r.Post("/checkout", deps.Checkout.Create)
	})

	r.Handle("/healthz", deps.Health)
	r.Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))

	return r
}
