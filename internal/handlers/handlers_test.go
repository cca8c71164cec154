package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"perfumevault/internal/db/mock"
	"perfumevault/internal/metrics"
	"perfumevault/internal/store"
)

// Seeded formula ids in every mock database.
const (
	aurumID = 1
	lumenID = 2
	blankID = 3
)

func withTestStore(t *testing.T) *metrics.Metrics {
	t.Helper()

	name := "handlers-" + strings.ReplaceAll(t.Name(), "/", "-")
	db, err := mock.Open(context.Background(), name)
	if err != nil {
		t.Fatalf("open mock database: %v", err)
	}

	prevStore, prevRecorder := dataStore, recorder
	m := metrics.New(metrics.Options{})
	Configure(store.New(db), m)
	t.Cleanup(func() {
		Configure(prevStore, prevRecorder)
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return m
}

func newTestRouter() http.Handler {
	r := chi.NewRouter()
	r.Route("/api", Routes)
	return r
}

func serve(t *testing.T, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	newTestRouter().ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), into); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func scrape(t *testing.T, m *metrics.Metrics) string {
	t.Helper()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return w.Body.String()
}

func TestHandlersWithoutDatabase(t *testing.T) {
	prevStore := dataStore
	dataStore = nil
	t.Cleanup(func() { dataStore = prevStore })

	for _, path := range []string{"/api/formulas", "/api/formulas/1/ingredients", "/api/production"} {
		w := serve(t, http.MethodGet, path, nil, "")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("GET %s: expected status 503, got %d", path, w.Code)
		}
	}
}

func TestReferenceEndpoints(t *testing.T) {
	w := serve(t, http.MethodGet, "/api/ifra/categories", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var categories []map[string]any
	decode(t, w, &categories)
	if len(categories) != 18 {
		t.Fatalf("expected 18 categories, got %d", len(categories))
	}

	w = serve(t, http.MethodGet, "/api/ghs", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"H226"`) {
		t.Fatalf("expected hazard statements in GHS reference")
	}
}

func TestListFormulas(t *testing.T) {
	withTestStore(t)

	w := serve(t, http.MethodGet, "/api/formulas", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var formulas []formulaSummary
	decode(t, w, &formulas)
	if len(formulas) != 3 {
		t.Fatalf("expected 3 formulas, got %d", len(formulas))
	}
	if formulas[0].Name != "Aurum Nocturne" || formulas[0].IFRACategory != "cat4" {
		t.Fatalf("unexpected first formula: %+v", formulas[0])
	}
}

type designPayload struct {
	Formula         formulaSummary `json:"formula"`
	TotalWeight     float64        `json:"total_weight"`
	TotalPure       float64        `json:"total_pure"`
	IFRADesignLimit float64        `json:"ifra_design_limit"`
	IFRAFinalLimit  float64        `json:"ifra_final_limit"`
	TotalCost       float64        `json:"total_cost"`
	Ingredients     []struct {
		Name           string   `json:"name"`
		DesignCalc     *float64 `json:"design_calc"`
		DesignExceeded bool     `json:"design_exceeded"`
		FinalExceeded  bool     `json:"final_exceeded"`
	} `json:"ingredients"`
	Category *struct {
		ID         string   `json:"id"`
		Compliant  bool     `json:"compliant"`
		Restricted []string `json:"restricted_material_names"`
	} `json:"category"`
}

func TestFormulaIngredientsDesignReport(t *testing.T) {
	m := withTestStore(t)

	w := serve(t, http.MethodGet, "/api/formulas/1/ingredients", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp designPayload
	decode(t, w, &resp)
	if resp.Formula.ID != aurumID {
		t.Fatalf("expected formula %d, got %d", aurumID, resp.Formula.ID)
	}
	if resp.TotalWeight != 750 || resp.TotalPure != 705 {
		t.Fatalf("unexpected totals: weight=%v pure=%v", resp.TotalWeight, resp.TotalPure)
	}
	if resp.TotalCost != 132.1 {
		t.Fatalf("expected total cost 132.1, got %v", resp.TotalCost)
	}
	if len(resp.Ingredients) != 5 {
		t.Fatalf("expected 5 ingredients, got %d", len(resp.Ingredients))
	}
	if !resp.Ingredients[0].DesignExceeded || !resp.Ingredients[0].FinalExceeded {
		t.Fatalf("expected bergamot to bind both limits: %+v", resp.Ingredients[0])
	}
	for _, ing := range resp.Ingredients[1:] {
		if ing.DesignExceeded || ing.FinalExceeded {
			t.Fatalf("expected %q not to be flagged", ing.Name)
		}
	}
	if resp.Ingredients[1].DesignCalc != nil {
		t.Fatalf("expected unrestricted hedione to have no design calc")
	}
	if resp.IFRADesignLimit <= 0 || resp.IFRAFinalLimit <= 0 {
		t.Fatalf("expected positive limits, got design=%v final=%v", resp.IFRADesignLimit, resp.IFRAFinalLimit)
	}
	if resp.Category == nil || resp.Category.ID != "cat4" {
		t.Fatalf("expected target category cat4, got %+v", resp.Category)
	}
	if resp.Category.Compliant || len(resp.Category.Restricted) != 1 || resp.Category.Restricted[0] != "Bergamot Oil" {
		t.Fatalf("expected bergamot to fail cat4, got %+v", resp.Category)
	}

	body := scrape(t, m)
	if !strings.Contains(body, `perfumevault_evaluations_total{kind="design"} 1`) {
		t.Fatalf("expected design evaluation to be counted:\n%s", body)
	}
	if !strings.Contains(body, `perfumevault_noncompliant_results_total{category="cat4"} 1`) {
		t.Fatalf("expected non-compliant cat4 to be counted:\n%s", body)
	}
}

func TestFormulaIngredientsEmptyFormula(t *testing.T) {
	withTestStore(t)

	w := serve(t, http.MethodGet, "/api/formulas/3/ingredients", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var resp designPayload
	decode(t, w, &resp)
	if len(resp.Ingredients) != 0 || resp.TotalWeight != 0 || resp.IFRADesignLimit != 0 {
		t.Fatalf("expected empty report, got %+v", resp)
	}
	if resp.Category == nil || !resp.Category.Compliant {
		t.Fatalf("expected an empty formula to comply, got %+v", resp.Category)
	}
}

func TestFormulaNotFound(t *testing.T) {
	withTestStore(t)

	for _, path := range []string{"/api/formulas/999/ingredients", "/api/formulas/abc/card", "/api/formulas/0/msds"} {
		w := serve(t, http.MethodGet, path, nil, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("GET %s: expected status 404, got %d", path, w.Code)
		}
	}
}

func TestScaleFormula(t *testing.T) {
	withTestStore(t)

	tests := []struct {
		name        string
		path        string
		body        string
		contentType string
		wantStatus  int
	}{
		{"json body", "/api/formulas/1/scale", `{"target_weight": 1500}`, "application/json", http.StatusOK},
		{"form body", "/api/formulas/1/scale", "target_weight=1500", "application/x-www-form-urlencoded", http.StatusOK},
		{"zero target", "/api/formulas/1/scale", `{"target_weight": 0}`, "application/json", http.StatusBadRequest},
		{"invalid target", "/api/formulas/1/scale", "target_weight=lots", "application/x-www-form-urlencoded", http.StatusBadRequest},
		{"empty formula", "/api/formulas/3/scale", `{"target_weight": 100}`, "application/json", http.StatusBadRequest},
		{"unknown formula", "/api/formulas/999/scale", `{"target_weight": 100}`, "application/json", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, http.MethodPost, tt.path, strings.NewReader(tt.body), tt.contentType)
			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp struct {
				Factor    float64 `json:"factor"`
				TotalCost float64 `json:"total_cost"`
				Items     []struct {
					Name   string  `json:"name"`
					Scaled float64 `json:"scaled"`
				} `json:"items"`
			}
			decode(t, w, &resp)
			if resp.Factor != 2 {
				t.Fatalf("expected factor 2, got %v", resp.Factor)
			}
			if len(resp.Items) != 5 || resp.Items[0].Scaled != 240 {
				t.Fatalf("unexpected scaled items: %+v", resp.Items)
			}
			if resp.TotalCost != 264.2 {
				t.Fatalf("expected total cost 264.2, got %v", resp.TotalCost)
			}
		})
	}
}

func TestIFRACertificate(t *testing.T) {
	m := withTestStore(t)

	w := serve(t, http.MethodGet, "/api/formulas/1/ifra-certificate", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Categories []struct {
			ID              string   `json:"id"`
			Unrestricted    bool     `json:"unrestricted"`
			LimitPercentage *float64 `json:"limit_percentage"`
			Compliant       bool     `json:"compliant"`
		} `json:"categories"`
	}
	decode(t, w, &resp)
	if len(resp.Categories) != 18 {
		t.Fatalf("expected 18 categories, got %d", len(resp.Categories))
	}
	last := resp.Categories[17]
	if last.ID != "cat12" || !last.Unrestricted || !last.Compliant || last.LimitPercentage != nil {
		t.Fatalf("expected unrestricted compliant cat12, got %+v", last)
	}
	for _, row := range resp.Categories[:17] {
		if row.LimitPercentage == nil {
			t.Fatalf("expected a limit for %s", row.ID)
		}
	}

	if !strings.Contains(scrape(t, m), `perfumevault_evaluations_total{kind="certificate"} 1`) {
		t.Fatal("expected certificate evaluation to be counted")
	}
}

func TestSafetyDataSheet(t *testing.T) {
	withTestStore(t)

	w := serve(t, http.MethodGet, "/api/formulas/1/msds", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		SignalWord  string `json:"signal_word"`
		Ingredients []struct {
			CASNumber string `json:"cas_number"`
		} `json:"ingredients"`
		HCodes []struct {
			Code string `json:"code"`
		} `json:"h_codes"`
	}
	decode(t, w, &resp)
	if resp.SignalWord != "Danger" {
		t.Fatalf("expected signal word Danger, got %q", resp.SignalWord)
	}
	if len(resp.Ingredients) != 5 || resp.Ingredients[0].CASNumber != "8007-75-8" {
		t.Fatalf("unexpected composition: %+v", resp.Ingredients)
	}
	seen := map[string]int{}
	for _, h := range resp.HCodes {
		seen[h.Code]++
	}
	if seen["H226"] != 1 || seen["H317"] != 1 {
		t.Fatalf("expected de-duplicated hazard codes, got %+v", resp.HCodes)
	}
}

func TestFormulaCard(t *testing.T) {
	withTestStore(t)

	w := serve(t, http.MethodGet, "/api/formulas/1/card", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Families []struct {
			Name string `json:"name"`
		} `json:"families"`
		Pyramid map[string][]struct {
			Name string `json:"name"`
		} `json:"pyramid"`
		IngredientsCount int `json:"ingredients_count"`
	}
	decode(t, w, &resp)
	if resp.IngredientsCount != 5 {
		t.Fatalf("expected 5 ingredients, got %d", resp.IngredientsCount)
	}
	if len(resp.Families) != 4 || resp.Families[0].Name != "Floral" {
		t.Fatalf("expected floral to lead four families, got %+v", resp.Families)
	}
	if len(resp.Pyramid["Top"]) != 1 || resp.Pyramid["Top"][0].Name != "Bergamot Oil" {
		t.Fatalf("unexpected top notes: %+v", resp.Pyramid["Top"])
	}
	if len(resp.Pyramid["Base"]) != 3 {
		t.Fatalf("expected 3 base notes, got %+v", resp.Pyramid["Base"])
	}
}

func TestImportFormulaFromText(t *testing.T) {
	withTestStore(t)

	form := "name=Trial+7&ifra_category=CAT5A&formula_text=" +
		strings.ReplaceAll("Bergamot Oil 10 g\nHedion 6 g\nCivetone 1 g", " ", "+")
	form = strings.ReplaceAll(form, "\n", "%0A")

	w := serve(t, http.MethodPost, "/api/formulas/import", strings.NewReader(form), "application/x-www-form-urlencoded")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp importResponse
	decode(t, w, &resp)
	if resp.Formula.Name != "Trial 7" || resp.Formula.IFRACategory != "cat5a" {
		t.Fatalf("unexpected formula: %+v", resp.Formula)
	}
	if resp.Ingredients != 2 {
		t.Fatalf("expected 2 matched ingredients, got %d", resp.Ingredients)
	}
	if len(resp.Unmatched) != 1 || resp.Unmatched[0] != "Civetone" {
		t.Fatalf("unexpected unmatched names: %v", resp.Unmatched)
	}

	w = serve(t, http.MethodGet, "/api/formulas", nil, "")
	var formulas []formulaSummary
	decode(t, w, &formulas)
	if len(formulas) != 4 {
		t.Fatalf("expected imported formula to be listed, got %d formulas", len(formulas))
	}
}

func TestImportFormulaFromCSVUpload(t *testing.T) {
	withTestStore(t)

	var body bytes.Buffer
	writer := newMultipartWriter(t, &body, map[string]string{"name": "Upload"}, "formula.csv",
		"ingredient,cas,amount,unit,dilution\nAmbroxan,6790-58-5,5,g,10\nIso E Super,,20,g,\n")

	w := serve(t, http.MethodPost, "/api/formulas/import", &body, writer)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp importResponse
	decode(t, w, &resp)
	if resp.Ingredients != 2 || len(resp.Unmatched) != 0 {
		t.Fatalf("unexpected import result: %+v", resp)
	}
	if resp.Formula.IFRACategory != "cat4" {
		t.Fatalf("expected default category cat4, got %q", resp.Formula.IFRACategory)
	}

	w = serve(t, http.MethodGet, "/api/formulas/4/ingredients", nil, "")
	var design designPayload
	decode(t, w, &design)
	if design.TotalWeight != 25 || design.TotalPure != 20.5 {
		t.Fatalf("unexpected totals for imported formula: weight=%v pure=%v", design.TotalWeight, design.TotalPure)
	}
}

func TestImportFormulaRejectsBadInput(t *testing.T) {
	withTestStore(t)

	tests := []struct {
		name       string
		form       string
		wantStatus int
	}{
		{"no text", "name=Empty", http.StatusBadRequest},
		{"unknown category", "ifra_category=cat99&formula_text=Hedione+1+g", http.StatusBadRequest},
		{"nothing matches", "formula_text=Civetone+1+g", http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, http.MethodPost, "/api/formulas/import", strings.NewReader(tt.form), "application/x-www-form-urlencoded")
			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestProductionOrderLifecycle(t *testing.T) {
	withTestStore(t)

	w := serve(t, http.MethodPost, "/api/production", strings.NewReader(`{"formula_id": 1, "target_quantity": 1500, "customer_name": " Maison Verre "}`), "application/json")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var created productionOrderResponse
	decode(t, w, &created)
	if !strings.HasPrefix(created.OrderNumber, "PO-") {
		t.Fatalf("expected generated order number, got %q", created.OrderNumber)
	}
	if created.ScaleFactor != 2 || created.Status != "pending" || created.CustomerName != "Maison Verre" {
		t.Fatalf("unexpected order: %+v", created)
	}
	if created.Batch == nil || len(created.Batch.Items) != 5 {
		t.Fatalf("expected batch sheet with 5 items, got %+v", created.Batch)
	}

	w = serve(t, http.MethodGet, "/api/production", nil, "")
	var orders []productionOrderResponse
	decode(t, w, &orders)
	if len(orders) != 1 || orders[0].FormulaName != "Aurum Nocturne" {
		t.Fatalf("unexpected orders: %+v", orders)
	}

	path := "/api/production/" + itoa(created.ID)
	w = serve(t, http.MethodGet, path, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	var shown productionOrderResponse
	decode(t, w, &shown)
	if shown.Batch == nil || shown.Batch.Items[0].Scaled != 240 {
		t.Fatalf("expected recomputed batch sheet, got %+v", shown.Batch)
	}

	w = serve(t, http.MethodPatch, path+"/status", strings.NewReader(`{"status": "completed"}`), "application/json")
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated productionOrderResponse
	decode(t, w, &updated)
	if updated.Status != "completed" {
		t.Fatalf("expected completed, got %q", updated.Status)
	}

	w = serve(t, http.MethodPatch, path+"/status", strings.NewReader(`{"status": "shipped"}`), "application/json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown status, got %d", w.Code)
	}

	w = serve(t, http.MethodPatch, "/api/production/999/status", strings.NewReader(`{"status": "completed"}`), "application/json")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown order, got %d", w.Code)
	}
}

func TestCreateProductionOrderValidation(t *testing.T) {
	withTestStore(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"malformed", `{`, http.StatusBadRequest},
		{"missing formula", `{"target_quantity": 10}`, http.StatusBadRequest},
		{"negative target", `{"formula_id": 1, "target_quantity": -5}`, http.StatusBadRequest},
		{"empty formula", `{"formula_id": 3, "target_quantity": 10}`, http.StatusBadRequest},
		{"unknown formula", `{"formula_id": 999, "target_quantity": 10}`, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, http.MethodPost, "/api/production", strings.NewReader(tt.body), "application/json")
			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
		})
	}
}
