// Prometheus ERP/models/customer.go
package models

import "gorm.io/gorm"

// Customer представляет карточку клиента (контрагента).
type Customer struct {
	gorm.Model
	Name     string `json:"name" gorm:"type:varchar(255);not null"`
	Bin      string `json:"bin" gorm:"type:varchar(12);index"`
	Email    string `json:"email" gorm:"type:varchar(128)"`
	Phone    string `json:"phone" gorm:"type:varchar(32)"`
	Address  string `json:"address" gorm:"type:text"`
	Currency string `json:"currency" gorm:"type:varchar(3);not null;default:'KZT'"`
}
