// Prometheus ERP/internal/services/tax_engine_test.go
package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"prometheus-erp/models"
)

// stubDirectory - тестовый справочник ставок с заданными ответами.
type stubDirectory struct {
	rate    *models.TaxRate
	rateErr error
	exempt  bool
}

func (d stubDirectory) activeRate(_ context.Context, _ *gorm.DB, _ uint) (*models.TaxRate, error) {
	return d.rate, d.rateErr
}

func (d stubDirectory) hasExemption(_ *gorm.DB, _ *uint, _ time.Time) (bool, error) {
	return d.exempt, nil
}

func TestCalculateLineHeaderAlwaysZero(t *testing.T) {
	e := NewTaxEngine(nil)
	manualRate := dec("20")

	res, err := e.Calculate(context.Background(), nil, TaxInput{
		Amount:       dec("1000"),
		Quantity:     decimal.Zero,
		IsLineHeader: true,
		ManualRate:   &manualRate,
		Date:         time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, res.TaxAmount.IsZero())
	assert.True(t, res.AppliedRate.IsZero())
}

func TestCalculateZeroQuantityAlwaysZero(t *testing.T) {
	e := NewTaxEngine(nil)
	manualRate := dec("20")

	res, err := e.Calculate(context.Background(), nil, TaxInput{
		Amount:     dec("1000"),
		Quantity:   decimal.Zero,
		ManualRate: &manualRate,
		Date:       time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, res.TaxAmount.IsZero())
}

func TestCalculateManualRateWithoutReference(t *testing.T) {
	// Без ссылки на справочник расчет идет по ручной ставке напрямую,
	// без флага запасного пути.
	e := NewTaxEngine(nil)
	manualRate := dec("12")

	res, err := e.Calculate(context.Background(), nil, TaxInput{
		Amount:     dec("900"),
		Quantity:   dec("1"),
		ManualRate: &manualRate,
		Date:       time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, res.TaxAmount.Equal(dec("108")), "tax = %s", res.TaxAmount)
	assert.True(t, res.AppliedRate.Equal(dec("12")))
	assert.False(t, res.UsedFallback)
	assert.False(t, res.IsExempt)
}

func TestCalculateNoRateAtAll(t *testing.T) {
	e := NewTaxEngine(nil)

	res, err := e.Calculate(context.Background(), nil, TaxInput{
		Amount:   dec("900"),
		Quantity: dec("1"),
		Date:     time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, res.TaxAmount.IsZero())
	assert.True(t, res.AppliedRate.IsZero())
}

func TestCalculateActiveExemptionZeroesTax(t *testing.T) {
	// Действующее освобождение клиента обнуляет налог даже при ставке.
	e := &TaxEngine{directory: stubDirectory{exempt: true}}
	rateID := uint(1)
	customerID := uint(7)

	res, err := e.Calculate(context.Background(), nil, TaxInput{
		Amount:     dec("1000"),
		Quantity:   dec("1"),
		TaxRateID:  &rateID,
		CustomerID: &customerID,
		Date:       time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, res.IsExempt)
	assert.True(t, res.TaxAmount.IsZero())
	assert.True(t, res.AppliedRate.IsZero())
	assert.False(t, res.UsedFallback)
}

func TestCalculateDirectoryRate(t *testing.T) {
	e := &TaxEngine{directory: stubDirectory{rate: &models.TaxRate{Rate: dec("12"), IsActive: true}}}
	rateID := uint(3)

	res, err := e.Calculate(context.Background(), nil, TaxInput{
		Amount:    dec("900"),
		Quantity:  dec("1"),
		TaxRateID: &rateID,
		Date:      time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, res.TaxAmount.Equal(dec("108")), "tax = %s", res.TaxAmount)
	assert.False(t, res.UsedFallback)
}

func TestCalculateFallbackOnDirectoryFailure(t *testing.T) {
	// Недоступный справочник при ручной ставке не прерывает операцию:
	// налог считается по ручной ставке с флагом запасного пути.
	e := &TaxEngine{directory: stubDirectory{rateErr: errors.New("connection refused")}}
	rateID := uint(3)
	manualRate := dec("12")

	res, err := e.Calculate(context.Background(), nil, TaxInput{
		Amount:     dec("900"),
		Quantity:   dec("1"),
		TaxRateID:  &rateID,
		ManualRate: &manualRate,
		Date:       time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, res.UsedFallback)
	assert.True(t, res.TaxAmount.Equal(dec("108")), "tax = %s", res.TaxAmount)
	assert.True(t, res.AppliedRate.Equal(dec("12")))
}

func TestCalculateDirectoryFailureWithoutManualRate(t *testing.T) {
	e := &TaxEngine{directory: stubDirectory{rateErr: errors.New("connection refused")}}
	rateID := uint(3)

	_, err := e.Calculate(context.Background(), nil, TaxInput{
		Amount:    dec("900"),
		Quantity:  dec("1"),
		TaxRateID: &rateID,
		Date:      time.Now(),
	})
	require.Error(t, err)
}

func TestCalculateMissingRateIsNotMaskedByManual(t *testing.T) {
	// Ссылка на несуществующую ставку - ошибка данных в документе,
	// ручная ставка ее не подменяет.
	e := &TaxEngine{directory: stubDirectory{rateErr: &NotFoundError{Entity: "Ставка налога", ID: uint(99)}}}
	rateID := uint(99)
	manualRate := dec("12")

	_, err := e.Calculate(context.Background(), nil, TaxInput{
		Amount:     dec("900"),
		Quantity:   dec("1"),
		TaxRateID:  &rateID,
		ManualRate: &manualRate,
		Date:       time.Now(),
	})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, uint(99), notFound.ID)
}

func TestApplyRateRounding(t *testing.T) {
	// Округление до 2 знаков на каждом вычисленном поле.
	cases := []struct {
		amount, rate, want string
	}{
		{"900", "5", "45"},
		{"999.99", "12", "120"},
		{"0.01", "12", "0"},
		{"33.33", "15", "5"},
		{"100", "12.5", "12.5"},
	}
	for _, tc := range cases {
		res := applyRate(dec(tc.amount), dec(tc.rate))
		assert.True(t, res.TaxAmount.Equal(dec(tc.want)),
			"%s * %s%% = %s, ожидалось %s", tc.amount, tc.rate, res.TaxAmount, tc.want)
	}
}
