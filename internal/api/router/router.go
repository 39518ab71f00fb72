package router

import (
	"net/http"

	"github.com/RoyceAzure/lab/storefront/internal/api/handler"
	m "github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func SetupRouter(productHandler *handler.ProductHandler, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.CORSMiddleware)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// API 路由
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{id}", productHandler.GetProduct)
	})

	return r
}
