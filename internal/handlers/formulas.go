package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"perfumevault/internal/compliance"
	applog "perfumevault/internal/log"
	"perfumevault/internal/metrics"
	"perfumevault/internal/report"
	"perfumevault/internal/store"
	"perfumevault/models"
)

type formulaSummary struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	IFRACategory string    `json:"ifra_category"`
	Status       string    `json:"status"`
	SampleWeight float64   `json:"sample_weight"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type designResponse struct {
	Formula formulaSummary `json:"formula"`
	report.FormulaView
}

type scaleRequest struct {
	TargetWeight float64 `json:"target_weight"`
}

type scaleResponse struct {
	Formula formulaSummary `json:"formula"`
	report.ScaleView
}

type certificateResponse struct {
	Formula    formulaSummary        `json:"formula"`
	Categories []report.CategoryView `json:"categories"`
}

type safetyResponse struct {
	Formula formulaSummary `json:"formula"`
	report.SafetyView
}

type cardResponse struct {
	Formula formulaSummary `json:"formula"`
	report.CardView
}

func summarizeFormula(f *models.Formula) formulaSummary {
	return formulaSummary{
		ID:           f.ID,
		Name:         strings.TrimSpace(f.Name),
		Description:  f.Description,
		IFRACategory: f.IFRACategory,
		Status:       f.Status,
		SampleWeight: f.SampleWeight,
		CreatedAt:    f.CreatedAt,
		UpdatedAt:    f.UpdatedAt,
	}
}

// loadFormula resolves the {formulaID} path parameter. It writes the error response
// itself and reports false when the handler should stop.
func loadFormula(w http.ResponseWriter, r *http.Request) (*models.Formula, bool) {
	id, ok := urlID(r, "formulaID")
	if !ok {
		applog.Debug(r.Context(), "invalid formula identifier", "identifier", chi.URLParam(r, "formulaID"))
		writeJSONError(w, http.StatusNotFound, "formula not found")
		return nil, false
	}
	formula, err := dataStore.Formula(r.Context(), id)
	if err != nil {
		writeStoreError(w, r, err, "load formula")
		return nil, false
	}
	return formula, true
}

// ListFormulas returns every formula without its ingredients.
func ListFormulas(w http.ResponseWriter, r *http.Request) {
	formulas, err := dataStore.ListFormulas(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "list formulas")
		return
	}

	out := make([]formulaSummary, 0, len(formulas))
	for i := range formulas {
		out = append(out, summarizeFormula(&formulas[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// FormulaIngredients serves the design report: per-ingredient percentages, design and
// final limits, costs and the result for the formula's own IFRA category.
func FormulaIngredients(w http.ResponseWriter, r *http.Request) {
	formula, ok := loadFormula(w, r)
	if !ok {
		return
	}

	started := time.Now()
	ingredients := store.IngredientsOf(formula)
	figures := compliance.Evaluate(ingredients)

	var target *compliance.CategoryResult
	if result, found := compliance.CertifyCategory(ingredients, compliance.CategoryID(formula.IFRACategory)); found {
		target = &result
		if !result.Compliant {
			recorder.ObserveNonCompliant(string(result.Category.ID))
		}
	}
	recorder.ObserveEvaluation(metrics.KindDesign, started)

	applog.Debug(r.Context(), "design report computed", "formulaID", formula.ID, "ingredients", len(ingredients), "designLimit", figures.DesignLimit)
	writeJSON(w, http.StatusOK, designResponse{
		Formula:     summarizeFormula(formula),
		FormulaView: report.Formula(figures, target),
	})
}

// ScaleFormula scales every ingredient so the batch weighs target_weight grams.
// The target is read from a JSON body or a form field.
func ScaleFormula(w http.ResponseWriter, r *http.Request) {
	target, err := readTargetWeight(r)
	if err != nil {
		applog.Debug(r.Context(), "invalid scale request", "error", err)
		writeJSONError(w, http.StatusBadRequest, "target_weight must be a positive number")
		return
	}

	formula, ok := loadFormula(w, r)
	if !ok {
		return
	}

	started := time.Now()
	result, err := compliance.Scale(store.IngredientsOf(formula), target)
	if err != nil {
		writeScaleError(w, r, err)
		return
	}
	recorder.ObserveEvaluation(metrics.KindScale, started)

	writeJSON(w, http.StatusOK, scaleResponse{
		Formula:   summarizeFormula(formula),
		ScaleView: report.Scale(result),
	})
}

func writeScaleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, compliance.ErrEmptyFormula):
		writeJSONError(w, http.StatusBadRequest, "the formula has no weighed ingredients to scale")
	case errors.Is(err, compliance.ErrInvalidTarget):
		writeJSONError(w, http.StatusBadRequest, "the target weight cannot be computed for this formula")
	default:
		applog.Error(r.Context(), "scale failed", "error", err)
		writeJSONError(w, http.StatusInternalServerError, "unable to scale formula")
	}
}

func readTargetWeight(r *http.Request) (float64, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var payload scaleRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			return 0, err
		}
		return validTarget(payload.TargetWeight)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("target_weight")), 64)
	if err != nil {
		return 0, err
	}
	return validTarget(value)
}

func validTarget(value float64) (float64, error) {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.New("target must be positive and finite")
	}
	return value, nil
}

// IFRACertificate evaluates the formula against every IFRA category.
func IFRACertificate(w http.ResponseWriter, r *http.Request) {
	formula, ok := loadFormula(w, r)
	if !ok {
		return
	}

	started := time.Now()
	results := compliance.Certificate(store.IngredientsOf(formula))
	for _, result := range results {
		if !result.Compliant {
			recorder.ObserveNonCompliant(string(result.Category.ID))
		}
	}
	recorder.ObserveEvaluation(metrics.KindCertificate, started)

	writeJSON(w, http.StatusOK, certificateResponse{
		Formula:    summarizeFormula(formula),
		Categories: report.Certificate(results),
	})
}

// SafetyDataSheet aggregates the GHS data of the formula's materials.
func SafetyDataSheet(w http.ResponseWriter, r *http.Request) {
	formula, ok := loadFormula(w, r)
	if !ok {
		return
	}

	started := time.Now()
	summary := compliance.SummarizeHazards(store.SafetyRowsOf(formula))
	recorder.ObserveEvaluation(metrics.KindSafety, started)

	writeJSON(w, http.StatusOK, safetyResponse{
		Formula:    summarizeFormula(formula),
		SafetyView: report.Safety(summary),
	})
}

// FormulaCard groups the formula by olfactive family and pyramid position.
func FormulaCard(w http.ResponseWriter, r *http.Request) {
	formula, ok := loadFormula(w, r)
	if !ok {
		return
	}

	started := time.Now()
	card := compliance.BuildCard(store.CardRowsOf(formula))
	recorder.ObserveEvaluation(metrics.KindCard, started)

	writeJSON(w, http.StatusOK, cardResponse{
		Formula:  summarizeFormula(formula),
		CardView: report.Card(card),
	})
}
