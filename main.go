// Prometheus ERP/main.go
package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"prometheus-erp/config"
	"prometheus-erp/internal/handlers"
	"prometheus-erp/internal/routes"
	"prometheus-erp/internal/services"
)

func main() {
	config.ConnectDB()
	config.ConnectRedis()
	config.MigrateDB()

	baseCurrency := os.Getenv("BASE_CURRENCY")
	if baseCurrency == "" {
		baseCurrency = "KZT"
	}

	auditMode := services.AuditMode(os.Getenv("AUDIT_MODE"))

	numbers := services.NewSequenceGenerator()
	converter := services.NewTableConverter()
	taxEngine := services.NewTaxEngine(config.RDB)
	journal := services.NewLedgerPoster(numbers, converter, baseCurrency)
	audit := services.NewAuditService(config.DB, auditMode)

	invoiceService := services.NewInvoiceService(config.DB, taxEngine, numbers, journal, audit)
	paymentService := services.NewPaymentService(config.DB, numbers, journal, audit)
	scheduleService := services.NewScheduleService(config.DB)

	invoiceHandler := handlers.NewInvoiceHandler(invoiceService, scheduleService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	journalHandler := handlers.NewJournalHandler(config.DB)

	router := gin.Default()
	routes.RegisterAPIRoutes(&router.RouterGroup, invoiceHandler, paymentHandler, journalHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("Запуск сервера", "port", port)
	if err := router.Run(":" + port); err != nil {
		slog.Error("Сервер остановлен с ошибкой", "error", err)
		os.Exit(1)
	}
}
