package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	billingapp "github.com/ventas/backend/internal/application/billing"
	expenseapp "github.com/ventas/backend/internal/application/expense"
	financeapp "github.com/ventas/backend/internal/application/finance"
	ordersapp "github.com/ventas/backend/internal/application/orders"
	partnerapp "github.com/ventas/backend/internal/application/partner"
	"github.com/ventas/backend/internal/infrastructure/config"
	"github.com/ventas/backend/internal/infrastructure/logger"
	"github.com/ventas/backend/internal/infrastructure/persistence"
	"github.com/ventas/backend/internal/interfaces/http/handler"
	"github.com/ventas/backend/internal/interfaces/http/middleware"
	"github.com/ventas/backend/internal/interfaces/http/router"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting ventas backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("version", version),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	clientRepo := persistence.NewGormClientRepository(db.DB)
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	supplierRepo := persistence.NewGormSupplierRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	lineRepo := persistence.NewGormExpenseLineRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	supplierExpenseRepo := persistence.NewGormSupplierExpenseRepository(db.DB)

	// Application services
	clientService := partnerapp.NewClientService(clientRepo)
	vendorService := partnerapp.NewVendorService(vendorRepo)
	supplierService := partnerapp.NewSupplierService(supplierRepo)
	orderService := ordersapp.NewOrderService(orderRepo, lineRepo, clientRepo, vendorRepo, invoiceRepo)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, orderRepo, clientRepo)
	supplierExpenseService := expenseapp.NewSupplierExpenseService(supplierExpenseRepo, supplierRepo, orderRepo)
	snapshotService := financeapp.NewSnapshotService(orderRepo, invoiceRepo, supplierExpenseRepo, lineRepo, vendorRepo, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Mount("/clients", handler.NewClientHandler(clientService)).
		Mount("/vendors", handler.NewVendorHandler(vendorService)).
		Mount("/suppliers", handler.NewSupplierHandler(supplierService)).
		Mount("/orders", handler.NewOrderHandler(orderService)).
		Mount("/invoices", handler.NewInvoiceHandler(invoiceService)).
		Mount("/supplier-expenses", handler.NewSupplierExpenseHandler(supplierExpenseService)).
		Mount("/finance", handler.NewFinanceHandler(snapshotService)).
		Mount("/system", handler.NewSystemHandler(db, version))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
