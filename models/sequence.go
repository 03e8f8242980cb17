// Prometheus ERP/models/sequence.go
package models

import "gorm.io/gorm"

// NumberSequence хранит счетчик номеров для одного префикса (тип + год).
// Строка блокируется через SELECT ... FOR UPDATE, поэтому параллельная
// генерация номеров для одного префикса сериализуется, а разные префиксы
// друг другу не мешают.
type NumberSequence struct {
	gorm.Model
	Prefix    string `json:"prefix" gorm:"type:varchar(16);uniqueIndex;not null"`
	LastValue int64  `json:"lastValue" gorm:"not null;default:0"`
}
