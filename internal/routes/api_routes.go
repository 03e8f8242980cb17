// Prometheus ERP/internal/routes/api_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"prometheus-erp/internal/handlers"
)

// RegisterAPIRoutes регистрирует все маршруты API финансового ядра.
func RegisterAPIRoutes(api *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, paymentHandler *handlers.PaymentHandler, journalHandler *handlers.JournalHandler) {
	apiGroup := api.Group("/api")
	{
		// --- СЧЕТА ---
		invoices := apiGroup.Group("/invoices")
		{
			invoices.POST("", invoiceHandler.CreateInvoiceHandler)
			invoices.GET("", invoiceHandler.ListInvoicesHandler)
			invoices.GET("/:id", invoiceHandler.GetInvoiceHandler)
			invoices.PUT("/:id", invoiceHandler.UpdateInvoiceHandler)
			invoices.POST("/:id/send", invoiceHandler.SendInvoiceHandler)
			invoices.POST("/:id/cancel", invoiceHandler.CancelInvoiceHandler)
			invoices.POST("/:id/mark-viewed", invoiceHandler.MarkViewedHandler)
			invoices.POST("/:id/mark-overdue", invoiceHandler.MarkOverdueHandler)
			invoices.POST("/:id/payments", paymentHandler.RecordPaymentHandler)
			invoices.GET("/:id/payments", paymentHandler.ListPaymentsHandler)
			invoices.GET("/:id/schedule-preview/:formId", invoiceHandler.PreviewScheduleHandler)
		}

		// --- ВЫСТАВЛЕНИЕ ПО ИСТОЧНИКУ ---
		apiGroup.POST("/sales-orders/:id/invoice", invoiceHandler.CreateFromSalesOrderHandler)
		apiGroup.POST("/quotations/:id/invoice", invoiceHandler.CreateFromQuotationHandler)

		// --- ГЛАВНАЯ КНИГА ---
		journal := apiGroup.Group("/journal-entries")
		{
			journal.GET("", journalHandler.ListJournalEntriesHandler)
			journal.GET("/:id", journalHandler.GetJournalEntryHandler)
		}
	}
}
