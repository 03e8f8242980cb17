// Prometheus ERP/internal/handlers/payment_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"prometheus-erp/internal/services"
	"prometheus-erp/models"
)

// PaymentHandler - HTTP-обертка над сервисом оплат.
type PaymentHandler struct {
	payments *services.PaymentService
}

// NewPaymentHandler создает обработчик оплат.
func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// RecordPaymentRequest определяет структуру для входящих данных.
type RecordPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Method      string          `json:"method" binding:"required"`
	PaymentDate string          `json:"paymentDate"`
	Reference   string          `json:"reference"`
	Comment     string          `json:"comment"`
}

// RecordPaymentHandler обрабатывает проведение оплаты по счету.
func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	invoiceID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверные данные: " + err.Error()})
		return
	}

	input := services.RecordPaymentInput{
		InvoiceID: invoiceID,
		Amount:    req.Amount,
		Method:    models.PaymentMethod(req.Method),
		Reference: req.Reference,
		Comment:   req.Comment,
		UserID:    currentUserID(c),
	}
	if req.PaymentDate != "" {
		paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный формат даты. Используйте YYYY-MM-DD."})
			return
		}
		input.PaymentDate = &paymentDate
	}

	payment, err := h.payments.RecordPayment(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// ListPaymentsHandler отдает платежи по счету.
func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	invoiceID, ok := parseID(c, "id")
	if !ok {
		return
	}

	payments, err := h.payments.ListPayments(c.Request.Context(), invoiceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}
