// Prometheus ERP/internal/services/errors.go
package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError - входные данные не прошли проверку.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError - запрошенная сущность не существует.
type NotFoundError struct {
	Entity string
	ID     interface{}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s с идентификатором %v не найден", e.Entity, e.ID)
}

// InvalidStateError - операция недопустима в текущем статусе сущности.
type InvalidStateError struct {
	Entity    string
	Current   string
	Operation string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("операция %q недопустима для %s в статусе %s", e.Operation, e.Entity, e.Current)
}

// BusinessRuleViolation - нарушено бизнес-правило (например, оплата
// больше остатка по счету).
type BusinessRuleViolation struct {
	Rule    string
	Message string
}

func (e *BusinessRuleViolation) Error() string {
	return e.Message
}

// AccountingImbalanceError - сумма дебета проводки не равна сумме кредита.
// Это нарушение инварианта учета: ошибка никогда не подавляется и всегда
// откатывает объемлющую транзакцию.
type AccountingImbalanceError struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

func (e *AccountingImbalanceError) Error() string {
	return fmt.Sprintf("проводка не сбалансирована: дебет %s != кредит %s", e.Debit, e.Credit)
}
