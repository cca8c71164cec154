package models

import (
	"gorm.io/gorm"
)

type FormulaIngredient struct {
	gorm.Model
	FormulaID  uint    `gorm:"not null;index" json:"formula_id"` // Parent Formula
	MaterialID uint    `gorm:"not null" json:"material_id"`
	Weight     float64 `gorm:"not null;default:0" json:"weight"` // grams

	// Fraction of Weight that is pure material. Nil or zero means undiluted.
	Dilution *float64 `json:"dilution"`
	Diluent  string   `json:"diluent"`
	Notes    string   `gorm:"type:text" json:"notes"`

	Material *Material `gorm:"foreignKey:MaterialID" json:"material,omitempty"`
}
