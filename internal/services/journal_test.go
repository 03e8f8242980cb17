// Prometheus ERP/internal/services/journal_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prometheus-erp/models"
)

func balancedDraft() JournalDraft {
	return JournalDraft{
		Date:     time.Now(),
		Currency: "KZT",
		Status:   models.JournalStatusPosted,
		Lines: []JournalLineInput{
			{AccountCode: models.AccountCodeAccountsReceivable, DebitAmount: dec("100")},
			{AccountCode: models.AccountCodeSalesRevenue, CreditAmount: dec("100")},
		},
	}
}

func TestPostRejectsImbalance(t *testing.T) {
	p := NewLedgerPoster(NewSequenceGenerator(), NewTableConverter(), "KZT")

	draft := balancedDraft()
	draft.Lines[1].CreditAmount = dec("99.99")

	_, err := p.Post(context.Background(), nil, draft)
	var imbalance *AccountingImbalanceError
	require.ErrorAs(t, err, &imbalance)
	assert.True(t, imbalance.Debit.Equal(dec("100")))
	assert.True(t, imbalance.Credit.Equal(dec("99.99")))
}

func TestPostRejectsImbalanceEvenWhenPosted(t *testing.T) {
	// Проверка баланса структурная: статус POSTED ее не обходит.
	p := NewLedgerPoster(NewSequenceGenerator(), NewTableConverter(), "KZT")

	draft := JournalDraft{
		Date:     time.Now(),
		Currency: "KZT",
		Status:   models.JournalStatusPosted,
		Lines: []JournalLineInput{
			{AccountCode: models.AccountCodeBank, DebitAmount: dec("500")},
		},
	}

	_, err := p.Post(context.Background(), nil, draft)
	var imbalance *AccountingImbalanceError
	require.ErrorAs(t, err, &imbalance)
}

func TestPostRejectsEmptyLines(t *testing.T) {
	p := NewLedgerPoster(NewSequenceGenerator(), NewTableConverter(), "KZT")

	_, err := p.Post(context.Background(), nil, JournalDraft{
		Date:   time.Now(),
		Status: models.JournalStatusDraft,
	})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "lines", validationErr.Field)
}

func TestPostRejectsNegativeAmounts(t *testing.T) {
	p := NewLedgerPoster(NewSequenceGenerator(), NewTableConverter(), "KZT")

	draft := balancedDraft()
	draft.Lines[0].DebitAmount = dec("-100")
	draft.Lines[1].CreditAmount = dec("-100")

	_, err := p.Post(context.Background(), nil, draft)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestPostRejectsTwoSidedLine(t *testing.T) {
	p := NewLedgerPoster(NewSequenceGenerator(), NewTableConverter(), "KZT")

	draft := balancedDraft()
	draft.Lines[0].CreditAmount = dec("50")
	draft.Lines[0].DebitAmount = dec("50")

	_, err := p.Post(context.Background(), nil, draft)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestPostRejectsUnknownStatus(t *testing.T) {
	p := NewLedgerPoster(NewSequenceGenerator(), NewTableConverter(), "KZT")

	draft := balancedDraft()
	draft.Status = "REVERSED"

	_, err := p.Post(context.Background(), nil, draft)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "status", validationErr.Field)
}

func TestDraftBalanceExactEquality(t *testing.T) {
	// Равенство дебета и кредита точное, без допуска.
	total := decimal.Zero
	lines := []JournalLineInput{}
	amounts := []string{"0.01", "999999.99", "123.45"}
	for _, a := range amounts {
		lines = append(lines, JournalLineInput{AccountCode: models.AccountCodeBank, DebitAmount: dec(a)})
		total = total.Add(dec(a))
	}
	lines = append(lines, JournalLineInput{AccountCode: models.AccountCodeSalesRevenue, CreditAmount: total})

	debit, credit := decimal.Zero, decimal.Zero
	for _, line := range lines {
		debit = debit.Add(line.DebitAmount)
		credit = credit.Add(line.CreditAmount)
	}
	assert.True(t, debit.Equal(credit))
}
