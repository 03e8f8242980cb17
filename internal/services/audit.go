// Prometheus ERP/internal/services/audit.go
package services

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"prometheus-erp/models"
)

// AuditMode задает гарантию записи журнала действий.
type AuditMode string

const (
	// AuditModeTx - запись журнала идет в транзакции бизнес-операции и
	// атомарна с ней: откат операции откатывает и запись журнала.
	AuditModeTx AuditMode = "tx"
	// AuditModeAfterCommit - запись журнала идет вне транзакции, по мере
	// возможности. Потеря записи при сбое - известный риск этого режима.
	AuditModeAfterCommit AuditMode = "after-commit"
)

// AuditLogger пишет структурированную запись о действии пользователя.
type AuditLogger interface {
	Log(ctx context.Context, tx *gorm.DB, entry models.AuditLog) error
}

// AuditService - журнал действий с настраиваемой гарантией записи.
type AuditService struct {
	db   *gorm.DB
	mode AuditMode
}

// NewAuditService создает журнал действий. db - корневое подключение,
// используется в режиме after-commit.
func NewAuditService(db *gorm.DB, mode AuditMode) *AuditService {
	if mode != AuditModeTx {
		mode = AuditModeAfterCommit
	}
	return &AuditService{db: db, mode: mode}
}

// Log сохраняет запись журнала. В режиме tx ошибка записи прерывает
// бизнес-операцию; в режиме after-commit ошибка только логируется.
func (s *AuditService) Log(ctx context.Context, tx *gorm.DB, entry models.AuditLog) error {
	if s.mode == AuditModeTx && tx != nil {
		return tx.Create(&entry).Error
	}

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		slog.Error("Не удалось записать журнал действий",
			"action", entry.Action, "entity_type", entry.EntityType, "entity_id", entry.EntityID, "error", err)
	}
	return nil
}
