// Prometheus ERP/internal/services/payment_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prometheus-erp/models"
)

func TestAllocatePartialPayment(t *testing.T) {
	// Счет на 600000, оплата 300000: статус PARTIAL, остаток 300000.
	outcome := allocate(models.InvoiceStatusSent, dec("600000"), decimal.Zero, dec("300000"))

	assert.Equal(t, models.InvoiceStatusPartial, outcome.Status)
	assert.True(t, outcome.PaidAmount.Equal(dec("300000")))
	assert.True(t, outcome.BalanceAmount.Equal(dec("300000")))
	assert.False(t, outcome.Settled)
}

func TestAllocateFullPayment(t *testing.T) {
	// Счет на 600000, оплата 600000: статус PAID, остаток 0, paid_at.
	outcome := allocate(models.InvoiceStatusSent, dec("600000"), decimal.Zero, dec("600000"))

	assert.Equal(t, models.InvoiceStatusPaid, outcome.Status)
	assert.True(t, outcome.BalanceAmount.IsZero())
	assert.True(t, outcome.Settled)
}

func TestAllocateSecondPaymentSettles(t *testing.T) {
	outcome := allocate(models.InvoiceStatusPartial, dec("600000"), dec("300000"), dec("300000"))

	assert.Equal(t, models.InvoiceStatusPaid, outcome.Status)
	assert.True(t, outcome.PaidAmount.Equal(dec("600000")))
	assert.True(t, outcome.BalanceAmount.IsZero())
	assert.True(t, outcome.Settled)
}

func TestAllocateInvariantBalance(t *testing.T) {
	// balance == total - paid для любого статуса.
	statuses := []models.InvoiceStatus{
		models.InvoiceStatusSent, models.InvoiceStatusViewed,
		models.InvoiceStatusOverdue, models.InvoiceStatusPartial,
	}
	for _, status := range statuses {
		outcome := allocate(status, dec("1000.50"), dec("100.25"), dec("400"))
		assert.True(t, outcome.BalanceAmount.Equal(dec("1000.50").Sub(outcome.PaidAmount)),
			"статус %s", status)
	}
}

func TestAllocatePartialOnlyFromSentLikeStatuses(t *testing.T) {
	// Частичная оплата двигает в PARTIAL только отправленный счет.
	outcome := allocate(models.InvoiceStatusSent, dec("100"), decimal.Zero, dec("40"))
	assert.Equal(t, models.InvoiceStatusPartial, outcome.Status)

	outcome = allocate(models.InvoiceStatusViewed, dec("100"), decimal.Zero, dec("40"))
	assert.Equal(t, models.InvoiceStatusPartial, outcome.Status)

	outcome = allocate(models.InvoiceStatusOverdue, dec("100"), decimal.Zero, dec("40"))
	assert.Equal(t, models.InvoiceStatusPartial, outcome.Status)

	outcome = allocate(models.InvoiceStatusDraft, dec("100"), decimal.Zero, dec("40"))
	assert.Equal(t, models.InvoiceStatusDraft, outcome.Status)
}

func TestCheckPaymentAllowed(t *testing.T) {
	invoice := &models.Invoice{
		Status:        models.InvoiceStatusSent,
		TotalAmount:   dec("1000"),
		BalanceAmount: dec("400"),
	}

	require.NoError(t, checkPaymentAllowed(invoice, dec("400")))

	// Сумма больше остатка.
	err := checkPaymentAllowed(invoice, dec("400.01"))
	var ruleErr *BusinessRuleViolation
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "payment_exceeds_balance", ruleErr.Rule)

	// Отмененный счет.
	invoice.Status = models.InvoiceStatusCancelled
	err = checkPaymentAllowed(invoice, dec("100"))
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "invoice_cancelled", ruleErr.Rule)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	s := NewPaymentService(nil, nil, nil, nil)

	_, err := s.RecordPayment(context.Background(), RecordPaymentInput{
		InvoiceID: 1,
		Amount:    decimal.Zero,
		Method:    models.PaymentMethodCash,
	})
	var ruleErr *BusinessRuleViolation
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "payment_amount", ruleErr.Rule)

	_, err = s.RecordPayment(context.Background(), RecordPaymentInput{
		InvoiceID: 1,
		Amount:    dec("-5"),
		Method:    models.PaymentMethodCash,
	})
	require.ErrorAs(t, err, &ruleErr)
}

func TestRecordPaymentRejectsUnknownMethod(t *testing.T) {
	s := NewPaymentService(nil, nil, nil, nil)

	_, err := s.RecordPayment(context.Background(), RecordPaymentInput{
		InvoiceID: 1,
		Amount:    dec("10"),
		Method:    "BARTER",
	})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "method", validationErr.Field)
}

func TestCashAccountForMethod(t *testing.T) {
	assert.Equal(t, models.AccountCodeCash, cashAccountForMethod(models.PaymentMethodCash))
	assert.Equal(t, models.AccountCodeBank, cashAccountForMethod(models.PaymentMethodBankTransfer))
	assert.Equal(t, models.AccountCodeBank, cashAccountForMethod(models.PaymentMethodOnline))
}
