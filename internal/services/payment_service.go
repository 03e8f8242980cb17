// Prometheus ERP/internal/services/payment_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"prometheus-erp/models"
)

// RecordPaymentInput - входные данные для проведения оплаты по счету.
type RecordPaymentInput struct {
	InvoiceID   uint                 `json:"invoiceId"`
	Amount      decimal.Decimal      `json:"amount"`
	Method      models.PaymentMethod `json:"method"`
	PaymentDate *time.Time           `json:"paymentDate"`
	Reference   string               `json:"reference"`
	Comment     string               `json:"comment"`
	UserID      uint                 `json:"-"`
}

// PaymentService проводит оплаты по счетам: создает платеж, пересчитывает
// оплачено/остаток, двигает статус и проводит кассовую проводку. Все это
// одна атомарная операция.
type PaymentService struct {
	db      *gorm.DB
	numbers NumberGenerator
	journal JournalPoster
	audit   AuditLogger
}

// NewPaymentService создает сервис оплат.
func NewPaymentService(db *gorm.DB, numbers NumberGenerator, journal JournalPoster, audit AuditLogger) *PaymentService {
	return &PaymentService{db: db, numbers: numbers, journal: journal, audit: audit}
}

// RecordPayment проводит оплату. Правила: счет существует и не отменен,
// сумма положительна и не превышает остаток. Платеж, обновление счета и
// проводка (дебет кассы/банка, кредит дебиторки) идут одной транзакцией
// с расширенным лимитом времени - это самый конкурентный путь ядра.
func (s *PaymentService) RecordPayment(ctx context.Context, input RecordPaymentInput) (*models.Payment, error) {
	if !input.Amount.IsPositive() {
		return nil, &BusinessRuleViolation{Rule: "payment_amount", Message: "сумма оплаты должна быть больше нуля"}
	}
	switch input.Method {
	case models.PaymentMethodBankTransfer, models.PaymentMethodCheck, models.PaymentMethodCash,
		models.PaymentMethodCreditCard, models.PaymentMethodWireTransfer, models.PaymentMethodOnline:
	default:
		return nil, &ValidationError{Field: "method", Message: fmt.Sprintf("неизвестный способ оплаты %q", input.Method)}
	}

	ctx, cancel := context.WithTimeout(ctx, paymentTimeout)
	defer cancel()

	var payment models.Payment
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var invoice models.Invoice
		if err := lockInvoice(tx, input.InvoiceID, &invoice); err != nil {
			return err
		}
		if err := checkPaymentAllowed(&invoice, input.Amount); err != nil {
			return err
		}

		paymentDate := time.Now()
		if input.PaymentDate != nil {
			paymentDate = *input.PaymentDate
		}

		number, err := s.numbers.NextPaymentNumber(tx, time.Now().Year())
		if err != nil {
			return err
		}

		reference := input.Reference
		if reference == "" {
			reference = uuid.New().String()
		}

		payment = models.Payment{
			PaymentNumber: number,
			InvoiceID:     invoice.ID,
			Amount:        input.Amount,
			PaymentDate:   paymentDate,
			Method:        input.Method,
			Reference:     reference,
			Comment:       input.Comment,
		}
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		outcome := allocate(invoice.Status, invoice.TotalAmount, invoice.PaidAmount, input.Amount)
		updates := map[string]interface{}{
			"paid_amount":    outcome.PaidAmount,
			"balance_amount": outcome.BalanceAmount,
		}
		if outcome.Status != invoice.Status {
			updates["status"] = outcome.Status
		}
		if outcome.Settled {
			now := time.Now()
			updates["paid_at"] = &now
		}
		if err := tx.Model(&invoice).Updates(updates).Error; err != nil {
			return err
		}

		draft := JournalDraft{
			Date:        paymentDate,
			Description: fmt.Sprintf("Оплата %s по счету %s", payment.PaymentNumber, invoice.InvoiceNumber),
			Reference:   payment.PaymentNumber,
			Currency:    invoice.Currency,
			Status:      models.JournalStatusPosted,
			Lines: []JournalLineInput{
				{AccountCode: cashAccountForMethod(input.Method), DebitAmount: input.Amount, Description: "Поступление оплаты"},
				{AccountCode: models.AccountCodeAccountsReceivable, CreditAmount: input.Amount, Description: "Погашение дебиторки"},
			},
		}
		if _, err := s.journal.Post(ctx, tx, draft); err != nil {
			return err
		}

		return s.audit.Log(ctx, tx, models.AuditLog{
			UserID:     input.UserID,
			Action:     "payment.record",
			EntityType: "payment",
			EntityID:   payment.ID,
			Details: models.AuditDetails{
				"paymentNumber": payment.PaymentNumber,
				"invoiceId":     invoice.ID,
				"amount":        input.Amount.String(),
			},
		})
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

// ListPayments возвращает платежи по счету в порядке проведения.
func (s *PaymentService) ListPayments(ctx context.Context, invoiceID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("created_at").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

// checkPaymentAllowed проверяет бизнес-правила проведения оплаты:
// счет не отменен, сумма не превышает остаток.
func checkPaymentAllowed(invoice *models.Invoice, amount decimal.Decimal) error {
	if invoice.Status == models.InvoiceStatusCancelled {
		return &BusinessRuleViolation{Rule: "invoice_cancelled", Message: "оплата по отмененному счету запрещена"}
	}
	if amount.GreaterThan(invoice.BalanceAmount) {
		return &BusinessRuleViolation{
			Rule: "payment_exceeds_balance",
			Message: fmt.Sprintf("сумма оплаты %s превышает остаток по счету %s",
				amount, invoice.BalanceAmount),
		}
	}
	return nil
}

// allocationOutcome - результат применения оплаты к счету.
type allocationOutcome struct {
	PaidAmount    decimal.Decimal
	BalanceAmount decimal.Decimal
	Status        models.InvoiceStatus
	// Settled выставляется при достижении нулевого остатка.
	Settled bool
}

// allocate применяет сумму оплаты к счету: paid = paid + amount,
// balance = total - paid. Нулевой остаток дает PAID, частичная оплата
// переводит в PARTIAL только отправленный счет.
func allocate(status models.InvoiceStatus, total, paid, amount decimal.Decimal) allocationOutcome {
	newPaid := paid.Add(amount)
	outcome := allocationOutcome{
		PaidAmount:    newPaid,
		BalanceAmount: total.Sub(newPaid),
		Status:        status,
	}

	switch {
	case outcome.BalanceAmount.IsZero():
		outcome.Status = models.InvoiceStatusPaid
		outcome.Settled = true
	case newPaid.IsPositive() && partialEligible(status):
		outcome.Status = models.InvoiceStatusPartial
	}
	return outcome
}

// partialEligible - статусы, из которых частичная оплата переводит счет
// в PARTIAL. Черновик остается черновиком даже после оплаты.
func partialEligible(status models.InvoiceStatus) bool {
	switch status {
	case models.InvoiceStatusSent, models.InvoiceStatusViewed, models.InvoiceStatusOverdue:
		return true
	}
	return false
}

// cashAccountForMethod выбирает счет поступления денег по способу оплаты.
func cashAccountForMethod(method models.PaymentMethod) string {
	if method == models.PaymentMethodCash {
		return models.AccountCodeCash
	}
	return models.AccountCodeBank
}
