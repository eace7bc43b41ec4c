package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	domauth "github.com/fintrackhq/fintrack/internal/auth"
	"github.com/fintrackhq/fintrack/internal/http/analytics"
	"github.com/fintrackhq/fintrack/internal/http/auth"
	"github.com/fintrackhq/fintrack/internal/http/budget"
	"github.com/fintrackhq/fintrack/internal/http/category"
	"github.com/fintrackhq/fintrack/internal/http/dashboard"
	"github.com/fintrackhq/fintrack/internal/http/goal"
	"github.com/fintrackhq/fintrack/internal/http/importcsv"
	"github.com/fintrackhq/fintrack/internal/http/invest"
	"github.com/fintrackhq/fintrack/internal/http/recurring"
	"github.com/fintrackhq/fintrack/internal/http/savings"
	"github.com/fintrackhq/fintrack/internal/http/transaction"
)

type Handlers struct {
	Auth         *auth.Handler
	Transactions *transaction.Handler
	Categories   *category.Handler
	Budgets      *budget.Handler
	Recurring    *recurring.Handler
	Savings      *savings.Handler
	Goals        *goal.Handler
	Invest       *invest.Handler
	Analytics    *analytics.Handler
	Import       *importcsv.Handler
	Dashboard    *dashboard.Handler
}

func New(handlers Handlers, verifier domauth.Verifier, allowedOrigins []string) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			handlers.Auth.Routes(r)
		})

		r.Group(func(r chi.Router) {
			r.Use(domauth.Middleware(verifier))

			r.Route("/transactions", func(r chi.Router) {
				handlers.Transactions.Routes(r)
			})

			r.Route("/categories", func(r chi.Router) {
				handlers.Categories.Routes(r)
			})

			r.Route("/budgets", func(r chi.Router) {
				handlers.Budgets.Routes(r)
			})

			r.Get("/alerts", handlers.Budgets.Alerts)

			r.Route("/recurring", func(r chi.Router) {
				handlers.Recurring.Routes(r)
			})

			r.Route("/savings", func(r chi.Router) {
				handlers.Savings.Routes(r)
			})

			r.Route("/goals", func(r chi.Router) {
				handlers.Goals.Routes(r)
			})

			r.Route("/invest", func(r chi.Router) {
				r.Use(middleware.AllowContentType("application/json"))
				handlers.Invest.Routes(r)
			})

			r.Route("/analytics", func(r chi.Router) {
				handlers.Analytics.Routes(r)
			})

			r.Route("/import", handlers.Import.Routes)

			r.Get("/dashboard", handlers.Dashboard.Get)
		})
	})

	return router
}
