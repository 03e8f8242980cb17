// Prometheus ERP/models/exchange_rate.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExchangeRate хранит курс валютной пары на дату. Конвертация берет
// последний курс, действующий не позже запрошенной даты.
type ExchangeRate struct {
	gorm.Model
	FromCurrency  string          `json:"fromCurrency" gorm:"type:varchar(3);not null;uniqueIndex:idx_rate_pair_date,priority:1"`
	ToCurrency    string          `json:"toCurrency" gorm:"type:varchar(3);not null;uniqueIndex:idx_rate_pair_date,priority:2"`
	Rate          decimal.Decimal `json:"rate" gorm:"type:numeric(18,6);not null"`
	EffectiveDate time.Time       `json:"effectiveDate" gorm:"not null;uniqueIndex:idx_rate_pair_date,priority:3"`
}
