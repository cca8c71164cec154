package models

import "strings"

const (
	FormulaStatusDraft    = "draft"
	FormulaStatusActive   = "active"
	FormulaStatusArchived = "archived"

	DefaultFormulaStatus = FormulaStatusDraft
)

const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// ValidFormulaStatus reports whether value names a known formula status.
func ValidFormulaStatus(value string) bool {
	switch value {
	case FormulaStatusDraft, FormulaStatusActive, FormulaStatusArchived:
		return true
	default:
		return false
	}
}

// NormalizeFormulaStatus trims and lower-cases value, falling back to the draft status.
func NormalizeFormulaStatus(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if ValidFormulaStatus(value) {
		return value
	}
	return DefaultFormulaStatus
}

// ValidOrderStatus reports whether value names a known production order status.
func ValidOrderStatus(value string) bool {
	switch value {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// NormalizeProfile maps free-form pyramid labels onto Top, Heart or Base.
// Anything unrecognised lands in the heart.
func NormalizeProfile(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "top", "head":
		return ProfileTop
	case "base", "bottom":
		return ProfileBase
	default:
		return ProfileHeart
	}
}
