package models

import (
	"gorm.io/gorm"
)

type Formula struct {
	gorm.Model
	Name         string              `gorm:"not null" json:"name"`
	Description  string              `gorm:"type:text" json:"description"`
	IFRACategory string              `gorm:"not null;default:cat4" json:"ifra_category"`
	Status       string              `gorm:"not null;default:draft" json:"status"`
	SampleWeight float64             `gorm:"not null;default:1000" json:"sample_weight"`
	Notes        string              `gorm:"type:text" json:"notes"`
	Ingredients  []FormulaIngredient `gorm:"foreignKey:FormulaID" json:"ingredients"`
}
