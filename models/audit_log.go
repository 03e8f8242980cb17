// Prometheus ERP/models/audit_log.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// AuditDetails - это специальный тип для хранения деталей действия в JSONB.
type AuditDetails map[string]interface{}

// Value преобразует детали в формат JSON для сохранения в БД.
func (d AuditDetails) Value() (driver.Value, error) {
	if d == nil {
		return json.Marshal(map[string]interface{}{})
	}
	return json.Marshal(d)
}

// Scan считывает данные из БД (в формате JSON) и преобразует их в map.
func (d *AuditDetails) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, d)
}

// AuditLog представляет запись журнала действий: кто, что и над какой
// сущностью сделал.
type AuditLog struct {
	gorm.Model
	UserID     uint         `json:"userId" gorm:"index"`
	Action     string       `json:"action" gorm:"type:varchar(64);not null;index"`
	EntityType string       `json:"entityType" gorm:"type:varchar(64);not null;index"`
	EntityID   uint         `json:"entityId" gorm:"index"`
	Details    AuditDetails `json:"details" gorm:"type:jsonb"`
}
