package models

import (
	"time"
)

// Product represents products table
type Product struct {
	Barcode        string     `gorm:"type:varchar(13);primaryKey;column:barcode" json:"barcode"`
	ProductName    string     `gorm:"type:varchar(200);not null" json:"name"`
	ExpirationDate *time.Time `gorm:"type:date" json:"expiration_date,omitempty"`
	Quantity       int        `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`
	Price          int        `gorm:"not null;default:0;check:price >= 0" json:"price"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
