// Prometheus ERP/internal/services/currency_test.go
package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateAsOfSameCurrency(t *testing.T) {
	// Для одинаковых валют курс всегда 1 и таблица не читается.
	c := NewTableConverter()

	rate, err := c.RateAsOf(nil, "KZT", "KZT", time.Now())
	require.NoError(t, err)
	assert.True(t, rate.Equal(dec("1")))

	rate, err = c.RateAsOf(nil, "USD", "USD", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, rate.Equal(dec("1")))
}
