package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/fintrackhq/fintrack/internal/analytics"
	analyticsStore "github.com/fintrackhq/fintrack/internal/analytics/store"
	"github.com/fintrackhq/fintrack/internal/auth"
	authStore "github.com/fintrackhq/fintrack/internal/auth/store"
	"github.com/fintrackhq/fintrack/internal/budget"
	budgetStore "github.com/fintrackhq/fintrack/internal/budget/store"
	"github.com/fintrackhq/fintrack/internal/category"
	categoryStore "github.com/fintrackhq/fintrack/internal/category/store"
	"github.com/fintrackhq/fintrack/internal/config"
	"github.com/fintrackhq/fintrack/internal/database"
	"github.com/fintrackhq/fintrack/internal/goal"
	goalStore "github.com/fintrackhq/fintrack/internal/goal/store"
	fintrackHttp "github.com/fintrackhq/fintrack/internal/http"
	analyticsHandler "github.com/fintrackhq/fintrack/internal/http/analytics"
	authHandler "github.com/fintrackhq/fintrack/internal/http/auth"
	budgetHandler "github.com/fintrackhq/fintrack/internal/http/budget"
	categoryHandler "github.com/fintrackhq/fintrack/internal/http/category"
	dashboardHandler "github.com/fintrackhq/fintrack/internal/http/dashboard"
	goalHandler "github.com/fintrackhq/fintrack/internal/http/goal"
	importHandler "github.com/fintrackhq/fintrack/internal/http/importcsv"
	investHandler "github.com/fintrackhq/fintrack/internal/http/invest"
	recurringHandler "github.com/fintrackhq/fintrack/internal/http/recurring"
	savingsHandler "github.com/fintrackhq/fintrack/internal/http/savings"
	txHandler "github.com/fintrackhq/fintrack/internal/http/transaction"
	"github.com/fintrackhq/fintrack/internal/importer"
	"github.com/fintrackhq/fintrack/internal/recurring"
	"github.com/fintrackhq/fintrack/internal/savings"
	savingsStore "github.com/fintrackhq/fintrack/internal/savings/store"
	"github.com/fintrackhq/fintrack/internal/transaction"
	txStore "github.com/fintrackhq/fintrack/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(context.Background(), cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var (
		tokenIssuer = auth.NewTokenIssuer(cfg.Auth.Secret, cfg.Auth.TokenTTL)

		authService        = auth.NewService(authStore.New(db), tokenIssuer)
		categoryService    = category.NewService(categoryStore.New(db))
		transactionService = transaction.NewService(txStore.New(db), categoryService)
		analyticsService   = analytics.NewService(analyticsStore.New(db))
		budgetService      = budget.NewService(budgetStore.New(db), categoryService)
		recurringService   = recurring.NewService(transactionService)
		savingsService     = savings.NewService(savingsStore.New(db), analyticsService)
		goalService        = goal.NewService(goalStore.New(db))
		importService      = importer.NewService(categoryService, transactionService)
	)

	handlers := fintrackHttp.Handlers{
		Auth:         authHandler.NewHandler(authService),
		Transactions: txHandler.NewHandler(transactionService),
		Categories:   categoryHandler.NewHandler(categoryService),
		Budgets:      budgetHandler.NewHandler(budgetService),
		Recurring:    recurringHandler.NewHandler(recurringService),
		Savings:      savingsHandler.NewHandler(savingsService),
		Goals:        goalHandler.NewHandler(goalService),
		Invest:       investHandler.NewHandler(),
		Analytics:    analyticsHandler.NewHandler(analyticsService),
		Import:       importHandler.NewHandler(importService),
		Dashboard:    dashboardHandler.NewHandler(analyticsService, budgetService, recurringService, goalService),
	}

	router := fintrackHttp.New(handlers, authService, cfg.CORS.AllowedOrigins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "name", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
