package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	applog "perfumevault/internal/log"
	"perfumevault/internal/metrics"
	"perfumevault/internal/store"
)

var (
	dataStore *store.Store
	recorder  *metrics.Metrics
	nowFunc   = time.Now
)

// Configure installs the shared dependencies used by the HTTP handlers.
// A nil metrics recorder disables instrumentation.
func Configure(s *store.Store, m *metrics.Metrics) {
	dataStore = s
	recorder = m
}

// Routes registers the JSON API on r.
func Routes(r chi.Router) {
	r.Get("/ifra/categories", IFRACategories)
	r.Get("/ghs", GHSReference)

	r.Route("/formulas", func(r chi.Router) {
		r.Get("/", ListFormulas)
		r.Post("/import", ImportFormula)
		r.Route("/{formulaID}", func(r chi.Router) {
			r.Get("/ingredients", FormulaIngredients)
			r.Post("/scale", ScaleFormula)
			r.Get("/ifra-certificate", IFRACertificate)
			r.Get("/msds", SafetyDataSheet)
			r.Get("/card", FormulaCard)
		})
	})

	r.Route("/production", func(r chi.Router) {
		r.Get("/", ListProductionOrders)
		r.Post("/", CreateProductionOrder)
		r.Get("/{orderID}", ShowProductionOrder)
		r.Patch("/{orderID}/status", UpdateProductionOrderStatus)
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		applog.Error(context.Background(), "failed to encode json response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func urlID(r *http.Request, key string) (uint, bool) {
	value, err := strconv.ParseUint(strings.TrimSpace(chi.URLParam(r, key)), 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

// writeStoreError maps store sentinels onto HTTP statuses and logs anything unexpected.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, store.ErrNoDatabase):
		writeJSONError(w, http.StatusServiceUnavailable, "no database connection is configured")
	case errors.Is(err, store.ErrFormulaNotFound):
		writeJSONError(w, http.StatusNotFound, "formula not found")
	case errors.Is(err, store.ErrOrderNotFound):
		writeJSONError(w, http.StatusNotFound, "production order not found")
	case errors.Is(err, store.ErrInvalidStatus):
		writeJSONError(w, http.StatusBadRequest, "unknown status")
	case errors.Is(err, store.ErrInvalidFormula):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	default:
		applog.Error(r.Context(), "request failed", "action", action, "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to "+action)
	}
}
