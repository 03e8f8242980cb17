// Prometheus ERP/internal/services/invoice_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/divan/num2words"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"prometheus-erp/models"
)

// Бюджеты транзакций: обычные записи и проведение оплат (там больше
// работы с главной книгой, поэтому лимит выше).
const (
	writeTimeout   = 10 * time.Second
	paymentTimeout = 20 * time.Second
)

var hundred = decimal.NewFromInt(100)

// InvoiceItemInput - входные данные одной строки счета. Для строк-
// заголовков количество и цена игнорируются. ManualTaxRate - запасная
// ставка на случай недоступности справочника.
type InvoiceItemInput struct {
	LineNumber    int              `json:"lineNumber"`
	IsLineHeader  bool             `json:"isLineHeader"`
	ItemCode      string           `json:"itemCode"`
	Description   string           `json:"description"`
	Quantity      decimal.Decimal  `json:"quantity"`
	UnitPrice     decimal.Decimal  `json:"unitPrice"`
	Discount      decimal.Decimal  `json:"discount"`
	TaxRateID     *uint            `json:"taxRateId"`
	ManualTaxRate *decimal.Decimal `json:"manualTaxRate"`
}

// CreateInvoiceInput - входные данные для создания счета.
type CreateInvoiceInput struct {
	Type         models.InvoiceType `json:"type"`
	CustomerID   uint               `json:"customerId"`
	SalesOrderID *uint              `json:"salesOrderId"`
	InvoiceDate  time.Time          `json:"invoiceDate"`
	DueDate      time.Time          `json:"dueDate"`
	Currency     string             `json:"currency"`
	Notes        string             `json:"notes"`
	UserID       uint               `json:"-"`
	Items        []InvoiceItemInput `json:"items"`
}

// UpdateInvoiceInput - входные данные для изменения черновика счета.
// Набор строк заменяется целиком.
type UpdateInvoiceInput struct {
	DueDate *time.Time         `json:"dueDate"`
	Notes   *string            `json:"notes"`
	UserID  uint               `json:"-"`
	Items   []InvoiceItemInput `json:"items"`
}

// InvoiceService владеет жизненным циклом счета: создание, расчет строк,
// изменение черновика, переходы статусов. Коллабораторы внедряются через
// конструктор, чтобы в тестах их можно было подменять независимо.
type InvoiceService struct {
	db      *gorm.DB
	tax     TaxCalculator
	numbers NumberGenerator
	journal JournalPoster
	audit   AuditLogger
}

// NewInvoiceService создает сервис счетов.
func NewInvoiceService(db *gorm.DB, tax TaxCalculator, numbers NumberGenerator, journal JournalPoster, audit AuditLogger) *InvoiceService {
	return &InvoiceService{db: db, tax: tax, numbers: numbers, journal: journal, audit: audit}
}

// CreateInvoice создает счет в статусе DRAFT: проверяет заказ (если счет
// выставляется по заказу), считает строки через налоговый движок,
// суммирует итоги, получает номер и сохраняет счет со строками одной
// транзакцией. Привязанному заказу в той же транзакции увеличивается
// счетчик выставленной суммы.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input CreateInvoiceInput) (*models.Invoice, error) {
	if err := validateInvoiceInput(input.Type, input.Items); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var invoice models.Invoice
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order *models.SalesOrder
		if input.SalesOrderID != nil {
			var err error
			order, err = s.invoiceableSalesOrder(tx, *input.SalesOrderID)
			if err != nil {
				return err
			}
		}

		items, totals, err := s.computeItems(ctx, tx, input.Items, input.CustomerID, input.InvoiceDate)
		if err != nil {
			return err
		}

		number, err := s.numbers.NextInvoiceNumber(tx, input.Type, time.Now().Year())
		if err != nil {
			return err
		}

		currency := input.Currency
		if currency == "" {
			currency = "KZT"
		}

		invoice = models.Invoice{
			InvoiceNumber:  number,
			Type:           input.Type,
			Status:         models.InvoiceStatusDraft,
			CustomerID:     input.CustomerID,
			SalesOrderID:   input.SalesOrderID,
			InvoiceDate:    input.InvoiceDate,
			DueDate:        input.DueDate,
			Currency:       currency,
			Subtotal:       totals.subtotal,
			DiscountAmount: totals.discount,
			TaxAmount:      totals.tax,
			TotalAmount:    totals.total,
			PaidAmount:     decimal.Zero,
			BalanceAmount:  totals.total,
			AmountInWords:  amountInWords(totals.total, currency),
			Notes:          input.Notes,
			Items:          items,
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}

		if order != nil {
			updateExpr := gorm.Expr("invoiced_amount + ?", totals.total)
			if err := tx.Model(order).Update("invoiced_amount", updateExpr).Error; err != nil {
				return err
			}
		}

		return s.audit.Log(ctx, tx, models.AuditLog{
			UserID:     input.UserID,
			Action:     "invoice.create",
			EntityType: "invoice",
			EntityID:   invoice.ID,
			Details:    models.AuditDetails{"invoiceNumber": invoice.InvoiceNumber, "totalAmount": invoice.TotalAmount.String()},
		})
	})
	if err != nil {
		return nil, err
	}

	return &invoice, nil
}

// UpdateInvoice изменяет черновик счета. Для счета вне статуса DRAFT
// операция запрещена. Строки заменяются целиком, итоги пересчитываются,
// остаток равен новому итогу минус оплаченная сумма (до отправки она
// всегда ноль, но формула обязана выполняться в общем виде).
func (s *InvoiceService) UpdateInvoice(ctx context.Context, id uint, input UpdateInvoiceInput) (*models.Invoice, error) {
	if len(input.Items) == 0 {
		return nil, &ValidationError{Field: "items", Message: "счет должен содержать хотя бы одну строку"}
	}
	if err := validateItems(input.Items); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var invoice models.Invoice
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockInvoice(tx, id, &invoice); err != nil {
			return err
		}
		if err := checkUpdateAllowed(invoice.Status); err != nil {
			return err
		}

		items, totals, err := s.computeItems(ctx, tx, input.Items, invoice.CustomerID, invoice.InvoiceDate)
		if err != nil {
			return err
		}

		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].InvoiceID = invoice.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		invoice.Subtotal = totals.subtotal
		invoice.DiscountAmount = totals.discount
		invoice.TaxAmount = totals.tax
		invoice.TotalAmount = totals.total
		invoice.BalanceAmount = totals.total.Sub(invoice.PaidAmount)
		invoice.AmountInWords = amountInWords(totals.total, invoice.Currency)
		if input.DueDate != nil {
			invoice.DueDate = *input.DueDate
		}
		if input.Notes != nil {
			invoice.Notes = *input.Notes
		}
		invoice.Items = items

		if err := tx.Save(&invoice).Error; err != nil {
			return err
		}

		return s.audit.Log(ctx, tx, models.AuditLog{
			UserID:     input.UserID,
			Action:     "invoice.update",
			EntityType: "invoice",
			EntityID:   invoice.ID,
			Details:    models.AuditDetails{"totalAmount": invoice.TotalAmount.String()},
		})
	})
	if err != nil {
		return nil, err
	}

	return &invoice, nil
}

// SendInvoice переводит черновик в SENT и в той же транзакции проводит
// проводку признания выручки. Ошибка проведения откатывает отправку
// целиком: счет остается в DRAFT.
func (s *InvoiceService) SendInvoice(ctx context.Context, id uint, userID uint) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var invoice models.Invoice
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockInvoice(tx, id, &invoice); err != nil {
			return err
		}
		if err := checkSendAllowed(invoice.Status); err != nil {
			return err
		}

		if draft, ok := s.revenueJournalDraft(&invoice); ok {
			if _, err := s.journal.Post(ctx, tx, draft); err != nil {
				return err
			}
		}

		now := time.Now()
		invoice.Status = models.InvoiceStatusSent
		invoice.SentAt = &now
		if err := tx.Model(&invoice).Updates(map[string]interface{}{
			"status":  invoice.Status,
			"sent_at": invoice.SentAt,
		}).Error; err != nil {
			return err
		}

		return s.audit.Log(ctx, tx, models.AuditLog{
			UserID:     userID,
			Action:     "invoice.send",
			EntityType: "invoice",
			EntityID:   invoice.ID,
			Details:    models.AuditDetails{"invoiceNumber": invoice.InvoiceNumber},
		})
	})
	if err != nil {
		return nil, err
	}

	return &invoice, nil
}

// CancelInvoice переводит счет в терминальный статус CANCELLED.
// Отменить можно только неоплаченный счет.
func (s *InvoiceService) CancelInvoice(ctx context.Context, id uint, userID uint) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	var invoice models.Invoice
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockInvoice(tx, id, &invoice); err != nil {
			return err
		}
		if err := checkCancelAllowed(invoice.Status); err != nil {
			return err
		}

		invoice.Status = models.InvoiceStatusCancelled
		if err := tx.Model(&invoice).Update("status", invoice.Status).Error; err != nil {
			return err
		}

		return s.audit.Log(ctx, tx, models.AuditLog{
			UserID:     userID,
			Action:     "invoice.cancel",
			EntityType: "invoice",
			EntityID:   invoice.ID,
		})
	})
	if err != nil {
		return nil, err
	}

	return &invoice, nil
}

// MarkViewed отмечает, что клиент открыл счет. Переход внешний (вебхук),
// допускается только из SENT.
func (s *InvoiceService) MarkViewed(ctx context.Context, id uint) error {
	return s.externalTransition(ctx, id, "mark-viewed", models.InvoiceStatusViewed,
		models.InvoiceStatusSent)
}

// MarkOverdue отмечает просрочку счета. Переход внешний (плановый обход
// просроченных счетов), допускается из SENT, VIEWED и PARTIAL.
func (s *InvoiceService) MarkOverdue(ctx context.Context, id uint) error {
	return s.externalTransition(ctx, id, "mark-overdue", models.InvoiceStatusOverdue,
		models.InvoiceStatusSent, models.InvoiceStatusViewed, models.InvoiceStatusPartial)
}

func (s *InvoiceService) externalTransition(ctx context.Context, id uint, op string, target models.InvoiceStatus, allowed ...models.InvoiceStatus) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var invoice models.Invoice
		if err := lockInvoice(tx, id, &invoice); err != nil {
			return err
		}
		ok := false
		for _, st := range allowed {
			if invoice.Status == st {
				ok = true
				break
			}
		}
		if !ok {
			return &InvalidStateError{Entity: "счет", Current: string(invoice.Status), Operation: op}
		}
		return tx.Model(&invoice).Update("status", target).Error
	})
}

// CreateInvoiceFromSalesOrder выставляет счет по заказу: структура строк
// переносится один в один (номера строк, заголовки, ссылки на ставки),
// дальше работает обычное создание счета.
func (s *InvoiceService) CreateInvoiceFromSalesOrder(ctx context.Context, orderID uint, invoiceDate, dueDate time.Time, userID uint) (*models.Invoice, error) {
	var order models.SalesOrder
	if err := s.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("line_number")
	}).First(&order, orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &NotFoundError{Entity: "Заказ", ID: orderID}
		}
		return nil, err
	}

	items := make([]InvoiceItemInput, 0, len(order.Items))
	for _, line := range order.Items {
		items = append(items, InvoiceItemInput{
			LineNumber:   line.LineNumber,
			IsLineHeader: line.IsLineHeader,
			ItemCode:     line.ItemCode,
			Description:  line.Description,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			Discount:     line.Discount,
			TaxRateID:    line.TaxRateID,
		})
	}

	orderID2 := order.ID
	return s.CreateInvoice(ctx, CreateInvoiceInput{
		Type:         models.InvoiceTypeSales,
		CustomerID:   order.CustomerID,
		SalesOrderID: &orderID2,
		InvoiceDate:  invoiceDate,
		DueDate:      dueDate,
		Currency:     order.Currency,
		UserID:       userID,
		Items:        items,
	})
}

// CreateInvoiceFromQuotation выставляет счет по коммерческому
// предложению той же структурой строк.
func (s *InvoiceService) CreateInvoiceFromQuotation(ctx context.Context, quotationID uint, invoiceDate, dueDate time.Time, userID uint) (*models.Invoice, error) {
	var quotation models.Quotation
	if err := s.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("line_number")
	}).First(&quotation, quotationID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &NotFoundError{Entity: "Коммерческое предложение", ID: quotationID}
		}
		return nil, err
	}

	items := make([]InvoiceItemInput, 0, len(quotation.Items))
	for _, line := range quotation.Items {
		items = append(items, InvoiceItemInput{
			LineNumber:   line.LineNumber,
			IsLineHeader: line.IsLineHeader,
			ItemCode:     line.ItemCode,
			Description:  line.Description,
			Quantity:     line.Quantity,
			UnitPrice:    line.UnitPrice,
			Discount:     line.Discount,
			TaxRateID:    line.TaxRateID,
		})
	}

	return s.CreateInvoice(ctx, CreateInvoiceInput{
		Type:        models.InvoiceTypeSales,
		CustomerID:  quotation.CustomerID,
		InvoiceDate: invoiceDate,
		DueDate:     dueDate,
		Currency:    quotation.Currency,
		UserID:      userID,
		Items:       items,
	})
}

// GetInvoice возвращает счет со строками и клиентом.
func (s *InvoiceService) GetInvoice(ctx context.Context, id uint) (*models.Invoice, error) {
	var invoice models.Invoice
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("line_number") }).
		Preload("Customer").
		First(&invoice, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &NotFoundError{Entity: "Счет", ID: id}
		}
		return nil, err
	}
	return &invoice, nil
}

// ListInvoices возвращает счета, опционально отфильтрованные по статусу.
func (s *InvoiceService) ListInvoices(ctx context.Context, status models.InvoiceStatus) ([]models.Invoice, error) {
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var invoices []models.Invoice
	if err := q.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// --- Расчет строк ---

type invoiceTotals struct {
	subtotal decimal.Decimal
	discount decimal.Decimal
	tax      decimal.Decimal
	total    decimal.Decimal
}

// computeItems считает каждую строку и суммирует итоги счета. Строки-
// заголовки сохраняются с нулевыми суммами и в итоги не входят.
// Инвариант: total = subtotal - discount + tax.
func (s *InvoiceService) computeItems(ctx context.Context, tx *gorm.DB, inputs []InvoiceItemInput, customerID uint, date time.Time) ([]models.InvoiceItem, invoiceTotals, error) {
	totals := invoiceTotals{
		subtotal: decimal.Zero,
		discount: decimal.Zero,
		tax:      decimal.Zero,
		total:    decimal.Zero,
	}

	items := make([]models.InvoiceItem, 0, len(inputs))
	for _, in := range inputs {
		item, err := s.computeItem(ctx, tx, in, customerID, date)
		if err != nil {
			return nil, totals, err
		}
		items = append(items, item)

		if !item.IsLineHeader {
			totals.subtotal = totals.subtotal.Add(item.Subtotal)
			totals.discount = totals.discount.Add(item.DiscountAmount)
			totals.tax = totals.tax.Add(item.TaxAmount)
		}
	}

	totals.total = totals.subtotal.Sub(totals.discount).Add(totals.tax)
	return items, totals, nil
}

// computeItem считает одну строку: subtotal = qty * price, скидка в
// процентах от subtotal, налог от суммы после скидки. Каждое вычисленное
// поле округляется до 2 знаков. Пересчет от одного и того же набора
// (qty, price, discount, rate) всегда дает одинаковый результат.
func (s *InvoiceService) computeItem(ctx context.Context, tx *gorm.DB, in InvoiceItemInput, customerID uint, date time.Time) (models.InvoiceItem, error) {
	item := models.InvoiceItem{
		LineNumber:   in.LineNumber,
		IsLineHeader: in.IsLineHeader,
		ItemCode:     in.ItemCode,
		Description:  in.Description,
		Quantity:     in.Quantity,
		UnitPrice:    in.UnitPrice,
		Discount:     in.Discount,
		TaxRateID:    in.TaxRateID,
	}

	if in.IsLineHeader {
		item.Quantity = decimal.Zero
		item.UnitPrice = decimal.Zero
		item.Discount = decimal.Zero
		item.TaxRate = decimal.Zero
		item.Subtotal = decimal.Zero
		item.DiscountAmount = decimal.Zero
		item.TaxAmount = decimal.Zero
		item.TotalAmount = decimal.Zero
		return item, nil
	}

	subtotal := in.Quantity.Mul(in.UnitPrice).Round(2)
	discountAmount := subtotal.Mul(in.Discount).Div(hundred).Round(2)
	afterDiscount := subtotal.Sub(discountAmount)

	taxRes, err := s.tax.Calculate(ctx, tx, TaxInput{
		Amount:       afterDiscount,
		Quantity:     in.Quantity,
		IsLineHeader: in.IsLineHeader,
		TaxRateID:    in.TaxRateID,
		ManualRate:   in.ManualTaxRate,
		CustomerID:   &customerID,
		AppliesTo:    "SALES",
		Date:         date,
	})
	if err != nil {
		return item, err
	}

	item.TaxRate = taxRes.AppliedRate
	item.Subtotal = subtotal
	item.DiscountAmount = discountAmount
	item.TaxAmount = taxRes.TaxAmount
	item.TotalAmount = afterDiscount.Add(taxRes.TaxAmount)
	return item, nil
}

// revenueJournalDraft строит проводку признания выручки по типу счета.
// SALES и DEBIT_NOTE: дебет дебиторки, кредит выручки и налога к уплате.
// CREDIT_NOTE - зеркальная проводка. PROFORMA не фискальный документ и
// главную книгу не затрагивает.
func (s *InvoiceService) revenueJournalDraft(invoice *models.Invoice) (JournalDraft, bool) {
	if invoice.Type == models.InvoiceTypeProforma {
		return JournalDraft{}, false
	}

	revenue := invoice.Subtotal.Sub(invoice.DiscountAmount)
	draft := JournalDraft{
		Date:        time.Now(),
		Description: fmt.Sprintf("Признание выручки по счету %s", invoice.InvoiceNumber),
		Reference:   invoice.InvoiceNumber,
		Currency:    invoice.Currency,
		Status:      models.JournalStatusPosted,
	}

	if invoice.Type == models.InvoiceTypeCreditNote {
		draft.Lines = append(draft.Lines,
			JournalLineInput{AccountCode: models.AccountCodeSalesRevenue, DebitAmount: revenue, Description: "Сторно выручки"},
		)
		if invoice.TaxAmount.IsPositive() {
			draft.Lines = append(draft.Lines,
				JournalLineInput{AccountCode: models.AccountCodeTaxPayable, DebitAmount: invoice.TaxAmount, Description: "Сторно налога"},
			)
		}
		draft.Lines = append(draft.Lines,
			JournalLineInput{AccountCode: models.AccountCodeAccountsReceivable, CreditAmount: invoice.TotalAmount, Description: "Уменьшение дебиторки"},
		)
		return draft, true
	}

	draft.Lines = append(draft.Lines,
		JournalLineInput{AccountCode: models.AccountCodeAccountsReceivable, DebitAmount: invoice.TotalAmount, Description: "Дебиторская задолженность"},
		JournalLineInput{AccountCode: models.AccountCodeSalesRevenue, CreditAmount: revenue, Description: "Выручка от продаж"},
	)
	if invoice.TaxAmount.IsPositive() {
		draft.Lines = append(draft.Lines,
			JournalLineInput{AccountCode: models.AccountCodeTaxPayable, CreditAmount: invoice.TaxAmount, Description: "Налог к уплате"},
		)
	}
	return draft, true
}

// --- Переходы статусов ---

// Проверки переходов вынесены из транзакционных замыканий отдельными
// функциями, как allocate и checkPaymentAllowed в оплатах.

// checkUpdateAllowed разрешает изменение только черновика.
func checkUpdateAllowed(status models.InvoiceStatus) error {
	if status != models.InvoiceStatusDraft {
		return &InvalidStateError{Entity: "счет", Current: string(status), Operation: "update"}
	}
	return nil
}

// checkSendAllowed разрешает отправку только из DRAFT: повторная
// отправка провела бы выручку в главную книгу второй раз.
func checkSendAllowed(status models.InvoiceStatus) error {
	if status != models.InvoiceStatusDraft {
		return &InvalidStateError{Entity: "счет", Current: string(status), Operation: "send"}
	}
	return nil
}

// checkCancelAllowed запрещает отмену счета с оплатами и повторную
// отмену терминальных статусов.
func checkCancelAllowed(status models.InvoiceStatus) error {
	switch status {
	case models.InvoiceStatusPaid, models.InvoiceStatusPartial,
		models.InvoiceStatusCancelled, models.InvoiceStatusRefunded:
		return &InvalidStateError{Entity: "счет", Current: string(status), Operation: "cancel"}
	}
	return nil
}

// --- Вспомогательные функции ---

// lockInvoice читает счет под блокировкой строки на время транзакции.
func lockInvoice(tx *gorm.DB, id uint, invoice *models.Invoice) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(invoice, id).Error
	if err == gorm.ErrRecordNotFound {
		return &NotFoundError{Entity: "Счет", ID: id}
	}
	return err
}

// invoiceableSalesOrder проверяет, что заказ существует и находится в
// статусе, допускающем выставление счета.
func (s *InvoiceService) invoiceableSalesOrder(tx *gorm.DB, orderID uint) (*models.SalesOrder, error) {
	var order models.SalesOrder
	if err := tx.First(&order, orderID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &NotFoundError{Entity: "Заказ", ID: orderID}
		}
		return nil, err
	}

	switch order.Status {
	case models.SalesOrderStatusApproved, models.SalesOrderStatusProcessing, models.SalesOrderStatusShipped:
		return &order, nil
	default:
		return nil, &BusinessRuleViolation{
			Rule:    "sales_order_status",
			Message: fmt.Sprintf("по заказу в статусе %s нельзя выставить счет", order.Status),
		}
	}
}

func validateInvoiceInput(invoiceType models.InvoiceType, items []InvoiceItemInput) error {
	switch invoiceType {
	case models.InvoiceTypeSales, models.InvoiceTypeCreditNote,
		models.InvoiceTypeDebitNote, models.InvoiceTypeProforma:
	default:
		return &ValidationError{Field: "type", Message: fmt.Sprintf("неизвестный тип счета %q", invoiceType)}
	}
	if len(items) == 0 {
		return &ValidationError{Field: "items", Message: "счет должен содержать хотя бы одну строку"}
	}
	return validateItems(items)
}

func validateItems(items []InvoiceItemInput) error {
	for _, item := range items {
		if item.IsLineHeader {
			continue
		}
		if item.Description == "" {
			return &ValidationError{Field: "items.description", Message: "строка счета без описания"}
		}
		if !item.Quantity.IsPositive() {
			return &ValidationError{Field: "items.quantity", Message: "количество должно быть больше нуля"}
		}
		if item.UnitPrice.IsNegative() {
			return &ValidationError{Field: "items.unitPrice", Message: "цена не может быть отрицательной"}
		}
		if item.Discount.IsNegative() || item.Discount.GreaterThan(hundred) {
			return &ValidationError{Field: "items.discount", Message: "скидка задается в процентах от 0 до 100"}
		}
	}
	return nil
}

// amountInWords возвращает сумму прописью для печатной формы счета.
func amountInWords(amount decimal.Decimal, currency string) string {
	units := amount.IntPart()
	cents := amount.Sub(decimal.NewFromInt(units)).Mul(hundred).Round(0).IntPart()
	if currency == "KZT" {
		return fmt.Sprintf("%s тенге %02d тиын", num2words.Convert(int(units)), cents)
	}
	return fmt.Sprintf("%s %s %02d/100", num2words.Convert(int(units)), currency, cents)
}
