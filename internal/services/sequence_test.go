// Prometheus ERP/internal/services/sequence_test.go
package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"prometheus-erp/models"
)

// lockedCounters повторяет в памяти семантику блокировки строки
// счетчика: инкремент под мьютексом, по одному счетчику на префикс.
type lockedCounters struct {
	mu   sync.Mutex
	last map[string]int64
}

func (c *lockedCounters) increment(_ *gorm.DB, prefix string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.last[prefix]++
	return c.last[prefix], nil
}

func testSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{counters: &lockedCounters{last: map[string]int64{}}}
}

func TestDocumentNumberFormats(t *testing.T) {
	// Форматы номеров - внешний контракт, проверяем побайтно.
	assert.Equal(t, "INV2025000001", formatDocumentNumber("INV2025", 1))
	assert.Equal(t, "CN2025000042", formatDocumentNumber("CN2025", 42))
	assert.Equal(t, "DN2025000100", formatDocumentNumber("DN2025", 100))
	assert.Equal(t, "PRO2025999999", formatDocumentNumber("PRO2025", 999999))
	assert.Equal(t, "PAY2025000007", formatDocumentNumber("PAY2025", 7))
	assert.Equal(t, "JE2025-0001", formatJournalNumber("JE2025", 1))
	assert.Equal(t, "JE2025-1234", formatJournalNumber("JE2025", 1234))
}

func TestInvoicePrefixes(t *testing.T) {
	assert.Equal(t, "INV", invoicePrefixes[models.InvoiceTypeSales])
	assert.Equal(t, "CN", invoicePrefixes[models.InvoiceTypeCreditNote])
	assert.Equal(t, "DN", invoicePrefixes[models.InvoiceTypeDebitNote])
	assert.Equal(t, "PRO", invoicePrefixes[models.InvoiceTypeProforma])
}

func TestPrefixesScopeNumbering(t *testing.T) {
	// Разные типы и годы всегда дают разные префиксы счетчиков, поэтому
	// нумерация одного префикса не пересекается с другими.
	seen := map[string]bool{}
	for _, invoiceType := range []models.InvoiceType{
		models.InvoiceTypeSales, models.InvoiceTypeCreditNote,
		models.InvoiceTypeDebitNote, models.InvoiceTypeProforma,
	} {
		for _, year := range []int{2024, 2025, 2026} {
			prefix := fmt.Sprintf("%s%d", invoicePrefixes[invoiceType], year)
			assert.False(t, seen[prefix], "префикс %s повторился", prefix)
			seen[prefix] = true
		}
	}
}

func TestSequentialNumbersAreDistinct(t *testing.T) {
	// Счетчик растет монотонно: N выдач дают N разных номеров.
	g := testSequenceGenerator()
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		number, err := g.NextInvoiceNumber(nil, models.InvoiceTypeSales, 2025)
		require.NoError(t, err)
		assert.False(t, seen[number], "номер %s повторился", number)
		seen[number] = true
	}
	assert.True(t, seen["INV2025000001"])
	assert.True(t, seen["INV2025001000"])
}

func TestConcurrentIssueYieldsDistinctNumbers(t *testing.T) {
	// Два параллельных создания документа не получают один номер:
	// счетчик префикса всегда инкрементируется под блокировкой.
	g := testSequenceGenerator()

	const workers = 100
	numbers := make(chan string, workers)
	errs := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			number, err := g.NextInvoiceNumber(nil, models.InvoiceTypeSales, 2025)
			if err != nil {
				errs <- err
				return
			}
			numbers <- number
		}()
	}
	wg.Wait()
	close(numbers)
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	seen := map[string]bool{}
	for number := range numbers {
		assert.False(t, seen[number], "номер %s выдан дважды", number)
		seen[number] = true
	}
	assert.Len(t, seen, workers)

	// Номера идут без дыр от 1 до workers.
	for n := int64(1); n <= workers; n++ {
		assert.True(t, seen[formatDocumentNumber("INV2025", n)])
	}
}

func TestConcurrentPrefixesDoNotInterfere(t *testing.T) {
	// Счета и платежи нумеруются независимо даже при параллельной выдаче.
	g := testSequenceGenerator()

	const perKind = 50
	var wg sync.WaitGroup
	invoiceNumbers := make(chan string, perKind)
	paymentNumbers := make(chan string, perKind)
	for i := 0; i < perKind; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			number, err := g.NextInvoiceNumber(nil, models.InvoiceTypeSales, 2025)
			assert.NoError(t, err)
			invoiceNumbers <- number
		}()
		go func() {
			defer wg.Done()
			number, err := g.NextPaymentNumber(nil, 2025)
			assert.NoError(t, err)
			paymentNumbers <- number
		}()
	}
	wg.Wait()
	close(invoiceNumbers)
	close(paymentNumbers)

	seen := map[string]bool{}
	for number := range invoiceNumbers {
		assert.False(t, seen[number])
		seen[number] = true
	}
	for number := range paymentNumbers {
		assert.False(t, seen[number])
		seen[number] = true
	}
	assert.Len(t, seen, 2*perKind)
	assert.True(t, seen[formatDocumentNumber("INV2025", perKind)])
	assert.True(t, seen[formatDocumentNumber("PAY2025", perKind)])
}
