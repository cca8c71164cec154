package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Olfactive pyramid positions recorded on a material.
const (
	ProfileTop   = "Top"
	ProfileHeart = "Heart"
	ProfileBase  = "Base"
)

type Material struct {
	gorm.Model
	Name            string          `gorm:"uniqueIndex;not null" json:"name"`
	CASNumber       string          `gorm:"index" json:"cas_number"`
	Profile         string          `gorm:"not null;default:Heart" json:"profile"`
	FamilyID        *uint           `json:"family_id,omitempty"`
	Family          *Family         `gorm:"foreignKey:FamilyID" json:"family,omitempty"`
	IFRALimit       *float64        `json:"ifra_limit"`     // fraction of finished product, nil when unrestricted
	PricePerGram    *float64        `json:"price_per_gram"` // purchase price divided by purchase quantity
	OdorDescription string          `gorm:"type:text" json:"odor_description"`
	Notes           string          `gorm:"type:text" json:"notes"`
	Safety          *MaterialSafety `gorm:"foreignKey:MaterialID" json:"safety,omitempty"`
}

// MaterialSafety holds the GHS classification attached to a material.
type MaterialSafety struct {
	gorm.Model
	MaterialID      uint                        `gorm:"uniqueIndex;not null" json:"material_id"`
	HCodes          datatypes.JSONSlice[string] `json:"h_codes"`
	PCodes          datatypes.JSONSlice[string] `json:"p_codes"`
	Pictograms      datatypes.JSONSlice[string] `json:"pictograms"`
	Classifications datatypes.JSONSlice[string] `json:"classifications"`
	SignalWord      string                      `json:"signal_word"`
}

// Family groups materials by olfactive family for formula cards.
type Family struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`
	Icon string `json:"icon"`
}
