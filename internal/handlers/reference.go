package handlers

import (
	"net/http"

	"perfumevault/internal/compliance"
	"perfumevault/internal/report"
)

// IFRACategories lists the product categories and their fragrance ceilings.
func IFRACategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.Categories(compliance.Categories()))
}

// GHSReference returns the hazard and precautionary statement tables.
func GHSReference(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, report.GHS(compliance.Reference()))
}
