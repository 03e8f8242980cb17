// Prometheus ERP/models/tax_rate.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TaxRate представляет ставку налога из централизованного справочника.
type TaxRate struct {
	gorm.Model
	Code      string          `json:"code" gorm:"type:varchar(32);uniqueIndex;not null"`
	Name      string          `json:"name" gorm:"type:varchar(128);not null"`
	Rate      decimal.Decimal `json:"rate" gorm:"type:numeric(5,2);not null"`
	AppliesTo string          `json:"appliesTo" gorm:"type:varchar(32);not null;default:'SALES'"`
	IsActive  bool            `json:"isActive" gorm:"not null;default:true"`
}

// TaxExemption представляет освобождение клиента от налога на период.
// Активное освобождение обнуляет налог по всем строкам счета.
type TaxExemption struct {
	gorm.Model
	CustomerID uint       `json:"customerId" gorm:"index;not null"`
	Reason     string     `json:"reason" gorm:"type:varchar(255)"`
	ValidFrom  time.Time  `json:"validFrom" gorm:"not null"`
	ValidUntil *time.Time `json:"validUntil"`
}
