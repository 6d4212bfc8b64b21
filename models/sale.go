package models

import (
	"time"
)

// Sale represents one row of the append-only sale log.
// Rows are never updated or deleted by the application.
type Sale struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Barcode        string     `gorm:"type:varchar(13);not null;index" json:"barcode"`
	ProductName    string     `gorm:"type:varchar(200);not null" json:"product_name"`
	ExpirationDate *time.Time `gorm:"type:date" json:"expiration_date,omitempty"`
	Quantity       int        `gorm:"not null" json:"quantity"`
	Price          int        `gorm:"not null" json:"price"`
	SaleDate       time.Time  `gorm:"not null;index" json:"sale_date"`
}

// TableName specifies the table name for Sale
func (Sale) TableName() string {
	return "sales"
}
