// Prometheus ERP/models/account.go
package models

import "gorm.io/gorm"

// AccountType определяет тип счета в плане счетов.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// Коды системных счетов, которые использует проведение счетов и оплат.
const (
	AccountCodeCash               = "1000"
	AccountCodeBank               = "1010"
	AccountCodeAccountsReceivable = "1200"
	AccountCodeTaxPayable         = "2100"
	AccountCodeSalesRevenue       = "4000"
)

// Account представляет счет плана счетов главной книги.
type Account struct {
	gorm.Model
	Code     string      `json:"code" gorm:"type:varchar(16);uniqueIndex;not null"`
	Name     string      `json:"name" gorm:"type:varchar(128);not null"`
	Type     AccountType `json:"type" gorm:"type:varchar(16);not null"`
	IsActive bool        `json:"isActive" gorm:"not null;default:true"`
}
