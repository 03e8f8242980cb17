// Prometheus ERP/internal/services/journal.go
package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"prometheus-erp/models"
)

// JournalLineInput - строка будущей проводки. Счет задается кодом из
// плана счетов; каждая строка либо дебетовая, либо кредитовая.
type JournalLineInput struct {
	AccountCode  string
	DebitAmount  decimal.Decimal
	CreditAmount decimal.Decimal
	Description  string
}

// JournalDraft - заготовка проводки для проведения.
type JournalDraft struct {
	Date        time.Time
	Description string
	Reference   string
	Currency    string
	Status      models.JournalStatus
	Lines       []JournalLineInput
}

// JournalPoster проводит сбалансированный набор строк как проводку
// главной книги. Проверка дебет == кредит структурная: обойти ее нельзя
// даже для статуса POSTED.
type JournalPoster interface {
	Post(ctx context.Context, tx *gorm.DB, draft JournalDraft) (*models.JournalEntry, error)
}

// LedgerPoster - проведение проводок в главную книгу.
type LedgerPoster struct {
	numbers      NumberGenerator
	converter    CurrencyConverter
	baseCurrency string
}

// NewLedgerPoster создает сервис проведения проводок.
func NewLedgerPoster(numbers NumberGenerator, converter CurrencyConverter, baseCurrency string) *LedgerPoster {
	return &LedgerPoster{numbers: numbers, converter: converter, baseCurrency: baseCurrency}
}

// Post проверяет баланс строк и сохраняет проводку на транзакции
// вызывающей операции: откат операции откатывает и проводку.
func (p *LedgerPoster) Post(ctx context.Context, tx *gorm.DB, draft JournalDraft) (*models.JournalEntry, error) {
	if len(draft.Lines) == 0 {
		return nil, &ValidationError{Field: "lines", Message: "проводка без строк"}
	}
	if draft.Status != models.JournalStatusDraft && draft.Status != models.JournalStatusPosted {
		return nil, &ValidationError{Field: "status", Message: "недопустимый статус проводки"}
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range draft.Lines {
		if line.DebitAmount.IsNegative() || line.CreditAmount.IsNegative() {
			return nil, &ValidationError{Field: "lines", Message: "суммы строк проводки не могут быть отрицательными"}
		}
		if line.DebitAmount.IsPositive() && line.CreditAmount.IsPositive() {
			return nil, &ValidationError{Field: "lines", Message: "строка проводки не может быть одновременно дебетовой и кредитовой"}
		}
		totalDebit = totalDebit.Add(line.DebitAmount)
		totalCredit = totalCredit.Add(line.CreditAmount)
	}
	if !totalDebit.Equal(totalCredit) {
		return nil, &AccountingImbalanceError{Debit: totalDebit, Credit: totalCredit}
	}

	rate, err := p.converter.RateAsOf(tx, draft.Currency, p.baseCurrency, draft.Date)
	if err != nil {
		return nil, err
	}

	number, err := p.numbers.NextJournalNumber(tx, draft.Date.Year())
	if err != nil {
		return nil, err
	}

	entry := models.JournalEntry{
		EntryNumber: number,
		EntryDate:   draft.Date,
		Description: draft.Description,
		Reference:   draft.Reference,
		Currency:    draft.Currency,
		Status:      draft.Status,
	}

	for _, line := range draft.Lines {
		var account models.Account
		if err := tx.Where("code = ?", line.AccountCode).First(&account).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, &NotFoundError{Entity: "Счет плана счетов", ID: line.AccountCode}
			}
			return nil, err
		}

		entry.Lines = append(entry.Lines, models.JournalLine{
			AccountID:        account.ID,
			DebitAmount:      line.DebitAmount,
			CreditAmount:     line.CreditAmount,
			BaseDebitAmount:  line.DebitAmount.Mul(rate).Round(2),
			BaseCreditAmount: line.CreditAmount.Mul(rate).Round(2),
			Description:      line.Description,
		})
	}

	if err := tx.Create(&entry).Error; err != nil {
		return nil, err
	}

	return &entry, nil
}
