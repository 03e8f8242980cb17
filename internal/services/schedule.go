// Prometheus ERP/internal/services/schedule.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Knetic/govaluate"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"prometheus-erp/models"
)

// InstallmentPreview - один платеж рассчитанного графика.
type InstallmentPreview struct {
	PaymentDate string          `json:"paymentDate"`
	Amount      decimal.Decimal `json:"amount"`
}

// ScheduleService строит предварительный график рассрочки по счету:
// формулы формы оплаты вычисляются над параметрами счета.
type ScheduleService struct {
	db *gorm.DB
}

// NewScheduleService создает сервис графиков рассрочки.
func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

// PreviewSchedule возвращает график платежей по счету для выбранной
// формы оплаты. График предварительный и нигде не сохраняется.
func (s *ScheduleService) PreviewSchedule(ctx context.Context, invoiceID, paymentFormID uint) ([]InstallmentPreview, error) {
	var invoice models.Invoice
	if err := s.db.WithContext(ctx).First(&invoice, invoiceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &NotFoundError{Entity: "Счет", ID: invoiceID}
		}
		return nil, err
	}

	var form models.PaymentForm
	if err := s.db.WithContext(ctx).Preload("Installments").First(&form, paymentFormID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &NotFoundError{Entity: "Форма оплаты", ID: paymentFormID}
		}
		return nil, err
	}

	return buildSchedule(&invoice, form.Installments)
}

// buildSchedule вычисляет формулы рассрочки над параметрами счета.
// Формулы вычисляются в float64: график предварительный, нигде не
// сохраняется и в проводки не попадает, поэтому денежная точность
// decimal здесь не требуется. Результат каждой формулы возвращается
// к decimal с округлением до 2 знаков.
func buildSchedule(invoice *models.Invoice, installments []models.PaymentInstallment) ([]InstallmentPreview, error) {
	parameters := map[string]interface{}{
		"Сумма":  invoice.TotalAmount.InexactFloat64(),
		"Налог":  invoice.TaxAmount.InexactFloat64(),
		"Скидка": invoice.DiscountAmount.InexactFloat64(),
	}

	year := invoice.InvoiceDate.Year()
	var schedule []InstallmentPreview
	for _, installment := range installments {
		expression, err := govaluate.NewEvaluableExpression(installment.Formula)
		if err != nil {
			return nil, &ValidationError{Field: "formula", Message: fmt.Sprintf("ошибка в формуле %q: %v", installment.Formula, err)}
		}

		result, err := expression.Evaluate(parameters)
		if err != nil {
			return nil, &ValidationError{Field: "formula", Message: fmt.Sprintf("не удалось вычислить формулу: %v", err)}
		}

		amount, ok := result.(float64)
		if !ok {
			return nil, &ValidationError{Field: "formula", Message: "результат формулы не является числом"}
		}

		paymentMonth := time.Month(installment.Month)
		paymentYear := year
		// Платежи за месяцы до даты счета относятся к следующему году.
		if paymentMonth < invoice.InvoiceDate.Month() {
			paymentYear = year + 1
		}
		paymentDate := time.Date(paymentYear, paymentMonth, installment.Day, 0, 0, 0, 0, time.UTC)

		schedule = append(schedule, InstallmentPreview{
			PaymentDate: paymentDate.Format("02.01.2006"),
			Amount:      decimal.NewFromFloat(amount).Round(2),
		})
	}

	return schedule, nil
}
