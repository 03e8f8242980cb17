// Prometheus ERP/internal/services/currency.go
package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"prometheus-erp/models"
)

// CurrencyConverter отдает курс валютной пары на дату. Контракт "курс на
// дату": берется последний курс, действующий не позже запрошенной даты.
type CurrencyConverter interface {
	RateAsOf(tx *gorm.DB, from, to string, date time.Time) (decimal.Decimal, error)
}

// TableConverter - конвертер на основе таблицы exchange_rates.
type TableConverter struct{}

// NewTableConverter создает конвертер валют.
func NewTableConverter() *TableConverter {
	return &TableConverter{}
}

// RateAsOf возвращает курс from->to на дату date. Для одинаковых валют
// курс всегда 1.
func (c *TableConverter) RateAsOf(tx *gorm.DB, from, to string, date time.Time) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}

	var rate models.ExchangeRate
	err := tx.
		Where("from_currency = ? AND to_currency = ? AND effective_date <= ?", from, to, date).
		Order("effective_date DESC").
		First(&rate).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return decimal.Zero, &NotFoundError{Entity: "Курс валюты", ID: from + "/" + to}
		}
		return decimal.Zero, err
	}

	return rate.Rate, nil
}
