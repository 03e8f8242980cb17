// Prometheus ERP/models/invoice.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceType определяет вид счета.
type InvoiceType string

const (
	InvoiceTypeSales      InvoiceType = "SALES"
	InvoiceTypeCreditNote InvoiceType = "CREDIT_NOTE"
	InvoiceTypeDebitNote  InvoiceType = "DEBIT_NOTE"
	InvoiceTypeProforma   InvoiceType = "PROFORMA"
)

// InvoiceStatus определяет статус жизненного цикла счета.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusViewed    InvoiceStatus = "VIEWED"
	InvoiceStatusPartial   InvoiceStatus = "PARTIAL"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
	InvoiceStatusRefunded  InvoiceStatus = "REFUNDED"
)

// Invoice представляет модель счета на оплату в базе данных.
// Структурные поля меняются только в статусе DRAFT; поля paid_amount,
// balance_amount и status после отправки счета обновляет проведение оплат.
type Invoice struct {
	gorm.Model
	InvoiceNumber  string          `json:"invoiceNumber" gorm:"type:varchar(32);uniqueIndex;not null"`
	Type           InvoiceType     `json:"type" gorm:"type:varchar(16);not null;default:'SALES'"`
	Status         InvoiceStatus   `json:"status" gorm:"type:varchar(16);not null;default:'DRAFT';index"`
	CustomerID     uint            `json:"customerId" gorm:"index"`
	Customer       Customer        `json:"customer" gorm:"foreignKey:CustomerID"`
	SalesOrderID   *uint           `json:"salesOrderId" gorm:"index"`
	InvoiceDate    time.Time       `json:"invoiceDate" gorm:"not null"`
	DueDate        time.Time       `json:"dueDate"`
	SentAt         *time.Time      `json:"sentAt"`
	PaidAt         *time.Time      `json:"paidAt"`
	Currency       string          `json:"currency" gorm:"type:varchar(3);not null;default:'KZT'"`
	Subtotal       decimal.Decimal `json:"subtotal" gorm:"type:numeric(18,2);not null"`
	DiscountAmount decimal.Decimal `json:"discountAmount" gorm:"type:numeric(18,2);not null"`
	TaxAmount      decimal.Decimal `json:"taxAmount" gorm:"type:numeric(18,2);not null"`
	TotalAmount    decimal.Decimal `json:"totalAmount" gorm:"type:numeric(18,2);not null"`
	PaidAmount     decimal.Decimal `json:"paidAmount" gorm:"type:numeric(18,2);not null"`
	BalanceAmount  decimal.Decimal `json:"balanceAmount" gorm:"type:numeric(18,2);not null"`
	AmountInWords  string          `json:"amountInWords" gorm:"type:text"`
	Notes          string          `json:"notes" gorm:"type:text"`
	Items          []InvoiceItem   `json:"items" gorm:"foreignKey:InvoiceID"`
}

// InvoiceItem представляет одну строку счета. Строки-заголовки
// (IsLineHeader, количество 0) хранятся для отображения и не участвуют
// в суммах. После выхода счета из статуса DRAFT строки неизменяемы.
type InvoiceItem struct {
	gorm.Model
	InvoiceID      uint            `json:"invoiceId" gorm:"index;not null"`
	LineNumber     int             `json:"lineNumber" gorm:"not null"`
	IsLineHeader   bool            `json:"isLineHeader" gorm:"not null;default:false"`
	ItemCode       string          `json:"itemCode" gorm:"type:varchar(64)"`
	Description    string          `json:"description" gorm:"type:varchar(255);not null"`
	Quantity       decimal.Decimal `json:"quantity" gorm:"type:numeric(15,4);not null"`
	UnitPrice      decimal.Decimal `json:"unitPrice" gorm:"type:numeric(18,4);not null"`
	Discount       decimal.Decimal `json:"discount" gorm:"type:numeric(5,2);not null"`
	TaxRateID      *uint           `json:"taxRateId"`
	TaxRate        decimal.Decimal `json:"taxRate" gorm:"type:numeric(5,2);not null"`
	Subtotal       decimal.Decimal `json:"subtotal" gorm:"type:numeric(18,2);not null"`
	DiscountAmount decimal.Decimal `json:"discountAmount" gorm:"type:numeric(18,2);not null"`
	TaxAmount      decimal.Decimal `json:"taxAmount" gorm:"type:numeric(18,2);not null"`
	TotalAmount    decimal.Decimal `json:"totalAmount" gorm:"type:numeric(18,2);not null"`
}
