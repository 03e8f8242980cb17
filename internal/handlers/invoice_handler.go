// Prometheus ERP/internal/handlers/invoice_handler.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"prometheus-erp/internal/services"
	"prometheus-erp/models"
)

// InvoiceHandler - HTTP-обертка над сервисом счетов.
type InvoiceHandler struct {
	invoices *services.InvoiceService
	schedule *services.ScheduleService
}

// NewInvoiceHandler создает обработчик счетов.
func NewInvoiceHandler(invoices *services.InvoiceService, schedule *services.ScheduleService) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices, schedule: schedule}
}

type fromSourcePayload struct {
	InvoiceDate string `json:"invoiceDate" binding:"required"`
	DueDate     string `json:"dueDate" binding:"required"`
}

func (p *fromSourcePayload) dates() (time.Time, time.Time, bool) {
	invoiceDate, err := time.Parse("2006-01-02", p.InvoiceDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	dueDate, err := time.Parse("2006-01-02", p.DueDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return invoiceDate, dueDate, true
}

// CreateInvoiceHandler обрабатывает создание нового счета.
func (h *InvoiceHandler) CreateInvoiceHandler(c *gin.Context) {
	var input services.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверные данные: " + err.Error()})
		return
	}
	input.UserID = currentUserID(c)

	invoice, err := h.invoices.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// UpdateInvoiceHandler обрабатывает изменение черновика счета.
func (h *InvoiceHandler) UpdateInvoiceHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.UpdateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверные данные: " + err.Error()})
		return
	}
	input.UserID = currentUserID(c)

	invoice, err := h.invoices.UpdateInvoice(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// SendInvoiceHandler отправляет счет: статус SENT и проводка признания
// выручки одной транзакцией.
func (h *InvoiceHandler) SendInvoiceHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	invoice, err := h.invoices.SendInvoice(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// CancelInvoiceHandler отменяет неоплаченный счет.
func (h *InvoiceHandler) CancelInvoiceHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	invoice, err := h.invoices.CancelInvoice(c.Request.Context(), id, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// MarkViewedHandler отмечает просмотр счета клиентом (вебхук).
func (h *InvoiceHandler) MarkViewedHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.invoices.MarkViewed(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Счет отмечен просмотренным"})
}

// MarkOverdueHandler отмечает просрочку счета (плановый обход).
func (h *InvoiceHandler) MarkOverdueHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.invoices.MarkOverdue(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Счет отмечен просроченным"})
}

// CreateFromSalesOrderHandler выставляет счет по заказу клиента.
func (h *InvoiceHandler) CreateFromSalesOrderHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var payload fromSourcePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверные данные: " + err.Error()})
		return
	}
	invoiceDate, dueDate, ok := payload.dates()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный формат даты. Используйте YYYY-MM-DD."})
		return
	}

	invoice, err := h.invoices.CreateInvoiceFromSalesOrder(c.Request.Context(), id, invoiceDate, dueDate, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// CreateFromQuotationHandler выставляет счет по коммерческому предложению.
func (h *InvoiceHandler) CreateFromQuotationHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var payload fromSourcePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверные данные: " + err.Error()})
		return
	}
	invoiceDate, dueDate, ok := payload.dates()
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неверный формат даты. Используйте YYYY-MM-DD."})
		return
	}

	invoice, err := h.invoices.CreateInvoiceFromQuotation(c.Request.Context(), id, invoiceDate, dueDate, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// GetInvoiceHandler отдает счет со строками.
func (h *InvoiceHandler) GetInvoiceHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	invoice, err := h.invoices.GetInvoice(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// ListInvoicesHandler отдает список счетов с фильтром по статусу.
func (h *InvoiceHandler) ListInvoicesHandler(c *gin.Context) {
	status := models.InvoiceStatus(c.Query("status"))
	invoices, err := h.invoices.ListInvoices(c.Request.Context(), status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

// PreviewScheduleHandler отдает предварительный график рассрочки.
func (h *InvoiceHandler) PreviewScheduleHandler(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	formID, ok := parseID(c, "formId")
	if !ok {
		return
	}

	schedule, err := h.schedule.PreviewSchedule(c.Request.Context(), id, formID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// currentUserID возвращает идентификатор пользователя, положенный в
// контекст внешним слоем аутентификации. Ноль означает системное действие.
func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
