// Prometheus ERP/models/sales_order.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SalesOrderStatus определяет статус заказа клиента.
type SalesOrderStatus string

const (
	SalesOrderStatusDraft      SalesOrderStatus = "DRAFT"
	SalesOrderStatusApproved   SalesOrderStatus = "APPROVED"
	SalesOrderStatusProcessing SalesOrderStatus = "PROCESSING"
	SalesOrderStatusShipped    SalesOrderStatus = "SHIPPED"
	SalesOrderStatusCompleted  SalesOrderStatus = "COMPLETED"
	SalesOrderStatusCancelled  SalesOrderStatus = "CANCELLED"
)

// SalesOrder представляет заказ клиента. Ядро счетов читает заказ перед
// выставлением счета и увеличивает invoiced_amount в той же транзакции.
type SalesOrder struct {
	gorm.Model
	OrderNumber    string           `json:"orderNumber" gorm:"type:varchar(32);uniqueIndex;not null"`
	CustomerID     uint             `json:"customerId" gorm:"index;not null"`
	Customer       Customer         `json:"customer" gorm:"foreignKey:CustomerID"`
	Status         SalesOrderStatus `json:"status" gorm:"type:varchar(16);not null;default:'DRAFT';index"`
	OrderDate      time.Time        `json:"orderDate" gorm:"not null"`
	Currency       string           `json:"currency" gorm:"type:varchar(3);not null;default:'KZT'"`
	TotalAmount    decimal.Decimal  `json:"totalAmount" gorm:"type:numeric(18,2);not null"`
	InvoicedAmount decimal.Decimal  `json:"invoicedAmount" gorm:"type:numeric(18,2);not null"`
	Items          []SalesOrderItem `json:"items" gorm:"foreignKey:SalesOrderID"`
}

// SalesOrderItem представляет строку заказа. Структура строк переносится
// в счет один в один (номера строк, заголовки, ссылки на ставки налога).
type SalesOrderItem struct {
	gorm.Model
	SalesOrderID uint            `json:"salesOrderId" gorm:"index;not null"`
	LineNumber   int             `json:"lineNumber" gorm:"not null"`
	IsLineHeader bool            `json:"isLineHeader" gorm:"not null;default:false"`
	ItemCode     string          `json:"itemCode" gorm:"type:varchar(64)"`
	Description  string          `json:"description" gorm:"type:varchar(255);not null"`
	Quantity     decimal.Decimal `json:"quantity" gorm:"type:numeric(15,4);not null"`
	UnitPrice    decimal.Decimal `json:"unitPrice" gorm:"type:numeric(18,4);not null"`
	Discount     decimal.Decimal `json:"discount" gorm:"type:numeric(5,2);not null"`
	TaxRateID    *uint           `json:"taxRateId"`
}

// Quotation представляет коммерческое предложение, из которого можно
// выставить счет той же структурой строк.
type Quotation struct {
	gorm.Model
	QuotationNumber string          `json:"quotationNumber" gorm:"type:varchar(32);uniqueIndex;not null"`
	CustomerID      uint            `json:"customerId" gorm:"index;not null"`
	Status          string          `json:"status" gorm:"type:varchar(16);not null;default:'DRAFT'"`
	QuotationDate   time.Time       `json:"quotationDate"`
	Currency        string          `json:"currency" gorm:"type:varchar(3);not null;default:'KZT'"`
	Items           []QuotationItem `json:"items" gorm:"foreignKey:QuotationID"`
}

// QuotationItem представляет строку коммерческого предложения.
type QuotationItem struct {
	gorm.Model
	QuotationID  uint            `json:"quotationId" gorm:"index;not null"`
	LineNumber   int             `json:"lineNumber" gorm:"not null"`
	IsLineHeader bool            `json:"isLineHeader" gorm:"not null;default:false"`
	ItemCode     string          `json:"itemCode" gorm:"type:varchar(64)"`
	Description  string          `json:"description" gorm:"type:varchar(255);not null"`
	Quantity     decimal.Decimal `json:"quantity" gorm:"type:numeric(15,4);not null"`
	UnitPrice    decimal.Decimal `json:"unitPrice" gorm:"type:numeric(18,4);not null"`
	Discount     decimal.Decimal `json:"discount" gorm:"type:numeric(5,2);not null"`
	TaxRateID    *uint           `json:"taxRateId"`
}
