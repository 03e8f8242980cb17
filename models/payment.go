// Prometheus ERP/models/payment.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentMethod определяет способ оплаты.
type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCheck        PaymentMethod = "CHECK"
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodWireTransfer PaymentMethod = "WIRE_TRANSFER"
	PaymentMethodOnline       PaymentMethod = "ONLINE"
)

// Payment представляет один платеж по счету. Запись создается один раз
// и после выхода счета из статуса DRAFT не изменяется и не удаляется.
type Payment struct {
	gorm.Model
	PaymentNumber string          `json:"paymentNumber" gorm:"type:varchar(32);uniqueIndex;not null"`
	InvoiceID     uint            `json:"invoiceId" gorm:"index;not null"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:numeric(18,2);not null"`
	PaymentDate   time.Time       `json:"paymentDate" gorm:"not null"`
	Method        PaymentMethod   `json:"method" gorm:"type:varchar(16);not null"`
	Reference     string          `json:"reference" gorm:"type:varchar(64)"`
	Comment       string          `json:"comment" gorm:"type:text"`
}
