// Prometheus ERP/internal/services/tax_engine.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"prometheus-erp/models"
)

// TaxInput - запрос на расчет налога для одной строки документа.
type TaxInput struct {
	Amount       decimal.Decimal
	Quantity     decimal.Decimal
	IsLineHeader bool
	TaxRateID    *uint
	ManualRate   *decimal.Decimal
	CustomerID   *uint
	AppliesTo    string
	Date         time.Time
}

// TaxResult - результат расчета: сумма налога и фактически примененная
// ставка. IsExempt выставляется при действующем освобождении клиента,
// UsedFallback - при расчете по ручной ставке из-за недоступности
// справочника.
type TaxResult struct {
	TaxAmount    decimal.Decimal
	AppliedRate  decimal.Decimal
	IsExempt     bool
	UsedFallback bool
}

// TaxCalculator считает налог для строки документа.
type TaxCalculator interface {
	Calculate(ctx context.Context, tx *gorm.DB, in TaxInput) (TaxResult, error)
}

// rateDirectory - источник ставок и освобождений. Выделен из движка,
// чтобы ветки Calculate проверялись без БД.
type rateDirectory interface {
	activeRate(ctx context.Context, tx *gorm.DB, rateID uint) (*models.TaxRate, error)
	hasExemption(tx *gorm.DB, customerID *uint, date time.Time) (bool, error)
}

// TaxEngine - расчет налога по централизованному справочнику ставок с
// кэшированием в Redis и запасным путем по ручной ставке.
type TaxEngine struct {
	directory rateDirectory
}

// NewTaxEngine создает движок расчета налогов. rdb может быть nil -
// тогда кэширование отключено и ставки читаются только из БД.
func NewTaxEngine(rdb *redis.Client) *TaxEngine {
	return &TaxEngine{directory: &dbRateDirectory{rdb: rdb, cacheTTL: 10 * time.Minute}}
}

// Calculate возвращает налог и примененную ставку для строки документа.
// Строки-заголовки с нулевым количеством всегда дают нулевой результат.
// Недоступность справочника при наличии ручной ставки не прерывает
// вызывающую транзакцию: расчет уходит в запасной путь с записью в лог.
// Ссылка на несуществующую или деактивированную ставку - ошибка данных,
// она в запасной путь не уходит.
func (e *TaxEngine) Calculate(ctx context.Context, tx *gorm.DB, in TaxInput) (TaxResult, error) {
	if in.IsLineHeader || in.Quantity.IsZero() {
		return TaxResult{TaxAmount: decimal.Zero, AppliedRate: decimal.Zero}, nil
	}

	exempt, err := e.directory.hasExemption(tx, in.CustomerID, in.Date)
	if err != nil {
		return TaxResult{}, err
	}
	if exempt {
		return TaxResult{TaxAmount: decimal.Zero, AppliedRate: decimal.Zero, IsExempt: true}, nil
	}

	if in.TaxRateID == nil {
		if in.ManualRate != nil {
			return applyRate(in.Amount, *in.ManualRate), nil
		}
		return TaxResult{TaxAmount: decimal.Zero, AppliedRate: decimal.Zero}, nil
	}

	rate, err := e.directory.activeRate(ctx, tx, *in.TaxRateID)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			// Несуществующая или деактивированная ставка - ошибка данных
			// в документе, ручная ставка ее не маскирует.
			return TaxResult{}, err
		}
		if in.ManualRate != nil {
			// Справочник недоступен - считаем по ручной ставке. Это
			// наблюдаемый, но не прерывающий операцию путь.
			slog.Warn("Справочник ставок недоступен, расчет по ручной ставке",
				"tax_rate_id", *in.TaxRateID, "manual_rate", in.ManualRate.String(), "error", err)
			res := applyRate(in.Amount, *in.ManualRate)
			res.UsedFallback = true
			return res, nil
		}
		return TaxResult{}, err
	}

	return applyRate(in.Amount, rate.Rate), nil
}

// applyRate считает налог от суммы по ставке в процентах с округлением
// до 2 знаков.
func applyRate(amount, rate decimal.Decimal) TaxResult {
	tax := amount.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
	return TaxResult{TaxAmount: tax, AppliedRate: rate}
}

// dbRateDirectory читает справочник из БД, ставки кэширует в Redis.
type dbRateDirectory struct {
	rdb      *redis.Client
	cacheTTL time.Duration
}

// hasExemption проверяет действующее освобождение клиента на дату.
func (d *dbRateDirectory) hasExemption(tx *gorm.DB, customerID *uint, date time.Time) (bool, error) {
	if customerID == nil {
		return false, nil
	}

	var count int64
	err := tx.Model(&models.TaxExemption{}).
		Where("customer_id = ? AND valid_from <= ? AND (valid_until IS NULL OR valid_until >= ?)",
			*customerID, date, date).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// activeRate читает ставку из кэша, при промахе - из БД с записью в кэш.
func (d *dbRateDirectory) activeRate(ctx context.Context, tx *gorm.DB, rateID uint) (*models.TaxRate, error) {
	cacheKey := fmt.Sprintf("tax_rate:%d", rateID)

	if d.rdb != nil {
		if cached, err := d.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var rate models.TaxRate
			if err := json.Unmarshal([]byte(cached), &rate); err == nil {
				return &rate, nil
			}
		}
	}

	var rate models.TaxRate
	if err := tx.First(&rate, rateID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &NotFoundError{Entity: "Ставка налога", ID: rateID}
		}
		return nil, err
	}
	if !rate.IsActive {
		return nil, &NotFoundError{Entity: "Действующая ставка налога", ID: rateID}
	}

	if d.rdb != nil {
		if data, err := json.Marshal(rate); err == nil {
			if err := d.rdb.Set(ctx, cacheKey, data, d.cacheTTL).Err(); err != nil {
				slog.Warn("Не удалось записать ставку в кэш", "tax_rate_id", rateID, "error", err)
			}
		}
	}

	return &rate, nil
}
