// Prometheus ERP/internal/services/sequence.go
package services

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"prometheus-erp/models"
)

// NumberGenerator выдает человекочитаемые последовательные номера
// документов, уникальные в рамках префикса (тип документа + год).
type NumberGenerator interface {
	NextInvoiceNumber(tx *gorm.DB, invoiceType models.InvoiceType, year int) (string, error)
	NextPaymentNumber(tx *gorm.DB, year int) (string, error)
	NextJournalNumber(tx *gorm.DB, year int) (string, error)
}

// counterStore атомарно увеличивает счетчик префикса и возвращает новое
// значение. Выделен из генератора, чтобы свойство уникальности номеров
// проверялось без БД.
type counterStore interface {
	increment(tx *gorm.DB, prefix string) (int64, error)
}

// SequenceGenerator - генератор номеров на счетчиках number_sequences.
// Строка счетчика блокируется через SELECT ... FOR UPDATE, поэтому два
// параллельных создания документа с одним префиксом не получат один и
// тот же номер. Счетчики разных префиксов не конкурируют между собой.
type SequenceGenerator struct {
	counters counterStore
}

// NewSequenceGenerator создает генератор номеров на счетчиках БД.
func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{counters: dbCounters{}}
}

var invoicePrefixes = map[models.InvoiceType]string{
	models.InvoiceTypeSales:      "INV",
	models.InvoiceTypeCreditNote: "CN",
	models.InvoiceTypeDebitNote:  "DN",
	models.InvoiceTypeProforma:   "PRO",
}

// NextInvoiceNumber возвращает следующий номер счета вида INV2025000001.
func (g *SequenceGenerator) NextInvoiceNumber(tx *gorm.DB, invoiceType models.InvoiceType, year int) (string, error) {
	typePrefix, ok := invoicePrefixes[invoiceType]
	if !ok {
		return "", &ValidationError{Field: "type", Message: fmt.Sprintf("неизвестный тип счета %q", invoiceType)}
	}

	prefix := fmt.Sprintf("%s%d", typePrefix, year)
	n, err := g.next(tx, prefix)
	if err != nil {
		return "", err
	}
	return formatDocumentNumber(prefix, n), nil
}

// NextPaymentNumber возвращает следующий номер платежа вида PAY2025000001.
func (g *SequenceGenerator) NextPaymentNumber(tx *gorm.DB, year int) (string, error) {
	prefix := fmt.Sprintf("PAY%d", year)
	n, err := g.next(tx, prefix)
	if err != nil {
		return "", err
	}
	return formatDocumentNumber(prefix, n), nil
}

// NextJournalNumber возвращает следующий номер проводки вида JE2025-0001.
func (g *SequenceGenerator) NextJournalNumber(tx *gorm.DB, year int) (string, error) {
	prefix := fmt.Sprintf("JE%d", year)
	n, err := g.next(tx, prefix)
	if err != nil {
		return "", err
	}
	return formatJournalNumber(prefix, n), nil
}

// Форматы номеров - часть внешнего контракта (отчеты, сверка), менять
// их нельзя.
func formatDocumentNumber(prefix string, n int64) string {
	return fmt.Sprintf("%s%06d", prefix, n)
}

func formatJournalNumber(prefix string, n int64) string {
	return fmt.Sprintf("%s-%04d", prefix, n)
}

func (g *SequenceGenerator) next(tx *gorm.DB, prefix string) (int64, error) {
	return g.counters.increment(tx, prefix)
}

// dbCounters хранит счетчики в number_sequences. Счетчик создается при
// первом обращении; конфликт создания гасится ON CONFLICT DO NOTHING,
// после чего строка перечитывается под блокировкой.
type dbCounters struct{}

func (dbCounters) increment(tx *gorm.DB, prefix string) (int64, error) {
	seed := models.NumberSequence{Prefix: prefix}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&seed).Error; err != nil {
		return 0, err
	}

	var seq models.NumberSequence
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("prefix = ?", prefix).
		First(&seq).Error; err != nil {
		return 0, err
	}

	seq.LastValue++
	if err := tx.Model(&seq).Update("last_value", seq.LastValue).Error; err != nil {
		return 0, err
	}

	return seq.LastValue, nil
}
