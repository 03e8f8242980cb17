// Prometheus ERP/config/migrate.go
package config

import (
	"log/slog"
	"os"

	"prometheus-erp/models"
)

// MigrateDB выполняет автомиграцию схемы и заполняет системные счета
// плана счетов, без которых проведение счетов и оплат невозможно.
func MigrateDB() {
	err := DB.AutoMigrate(
		&models.Customer{},
		&models.TaxRate{},
		&models.TaxExemption{},
		&models.Account{},
		&models.ExchangeRate{},
		&models.NumberSequence{},
		&models.SalesOrder{},
		&models.SalesOrderItem{},
		&models.Quotation{},
		&models.QuotationItem{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Payment{},
		&models.JournalEntry{},
		&models.JournalLine{},
		&models.PaymentForm{},
		&models.PaymentInstallment{},
		&models.AuditLog{},
	)
	if err != nil {
		slog.Error("Ошибка миграции схемы БД", "error", err)
		os.Exit(1)
	}

	seedAccounts()
	slog.Info("Миграция схемы выполнена")
}

func seedAccounts() {
	defaults := []models.Account{
		{Code: models.AccountCodeCash, Name: "Касса", Type: models.AccountTypeAsset},
		{Code: models.AccountCodeBank, Name: "Расчетный счет", Type: models.AccountTypeAsset},
		{Code: models.AccountCodeAccountsReceivable, Name: "Дебиторская задолженность", Type: models.AccountTypeAsset},
		{Code: models.AccountCodeTaxPayable, Name: "Налог к уплате", Type: models.AccountTypeLiability},
		{Code: models.AccountCodeSalesRevenue, Name: "Выручка от продаж", Type: models.AccountTypeRevenue},
	}

	for _, account := range defaults {
		var existing models.Account
		if err := DB.Where("code = ?", account.Code).First(&existing).Error; err == nil {
			continue
		}
		if err := DB.Create(&account).Error; err != nil {
			slog.Error("Не удалось создать системный счет", "code", account.Code, "error", err)
			os.Exit(1)
		}
	}
}
