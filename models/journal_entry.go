// Prometheus ERP/models/journal_entry.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// JournalStatus определяет статус проводки в главной книге.
type JournalStatus string

const (
	JournalStatusDraft  JournalStatus = "DRAFT"
	JournalStatusPosted JournalStatus = "POSTED"
)

// JournalEntry представляет одну сбалансированную проводку: набор строк,
// у которых сумма дебета всегда равна сумме кредита.
type JournalEntry struct {
	gorm.Model
	EntryNumber string        `json:"entryNumber" gorm:"type:varchar(32);uniqueIndex;not null"`
	EntryDate   time.Time     `json:"entryDate" gorm:"not null;index"`
	Description string        `json:"description" gorm:"type:varchar(255)"`
	Reference   string        `json:"reference" gorm:"type:varchar(64);index"`
	Currency    string        `json:"currency" gorm:"type:varchar(3);not null;default:'KZT'"`
	Status      JournalStatus `json:"status" gorm:"type:varchar(8);not null;default:'DRAFT'"`
	Lines       []JournalLine `json:"lines" gorm:"foreignKey:JournalEntryID"`
}

// JournalLine представляет строку проводки по одному счету плана счетов.
// Суммы в базовой валюте хранятся отдельно для мультивалютного учета.
type JournalLine struct {
	gorm.Model
	JournalEntryID   uint            `json:"journalEntryId" gorm:"index;not null"`
	AccountID        uint            `json:"accountId" gorm:"index;not null"`
	Account          Account         `json:"account" gorm:"foreignKey:AccountID"`
	DebitAmount      decimal.Decimal `json:"debitAmount" gorm:"type:numeric(18,2);not null"`
	CreditAmount     decimal.Decimal `json:"creditAmount" gorm:"type:numeric(18,2);not null"`
	BaseDebitAmount  decimal.Decimal `json:"baseDebitAmount" gorm:"type:numeric(18,2);not null"`
	BaseCreditAmount decimal.Decimal `json:"baseCreditAmount" gorm:"type:numeric(18,2);not null"`
	Description      string          `json:"description" gorm:"type:varchar(255)"`
}
