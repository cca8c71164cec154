package models

import (
	"gorm.io/gorm"
)

type ProductionOrder struct {
	gorm.Model
	OrderNumber    string   `gorm:"uniqueIndex;not null" json:"order_number"`
	FormulaID      uint     `gorm:"not null;index" json:"formula_id"`
	Formula        *Formula `gorm:"foreignKey:FormulaID" json:"formula,omitempty"`
	TargetQuantity float64  `gorm:"not null" json:"target_quantity"`
	ScaleFactor    float64  `gorm:"not null;default:1" json:"scale_factor"`
	CustomerName   string   `json:"customer_name"`
	BatchNumber    string   `json:"batch_number"`
	Status         string   `gorm:"not null;default:pending" json:"status"`
	Notes          string   `gorm:"type:text" json:"notes"`
}
