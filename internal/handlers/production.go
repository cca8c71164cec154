package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"perfumevault/internal/compliance"
	applog "perfumevault/internal/log"
	"perfumevault/internal/metrics"
	"perfumevault/internal/report"
	"perfumevault/internal/store"
	"perfumevault/models"
)

type productionOrderRequest struct {
	FormulaID      uint    `json:"formula_id"`
	TargetQuantity float64 `json:"target_quantity"`
	CustomerName   string  `json:"customer_name"`
	BatchNumber    string  `json:"batch_number"`
	Notes          string  `json:"notes"`
}

type statusRequest struct {
	Status string `json:"status"`
}

type productionOrderResponse struct {
	ID             uint              `json:"id"`
	OrderNumber    string            `json:"order_number"`
	FormulaID      uint              `json:"formula_id"`
	FormulaName    string            `json:"formula_name,omitempty"`
	TargetQuantity float64           `json:"target_quantity"`
	ScaleFactor    float64           `json:"scale_factor"`
	CustomerName   string            `json:"customer_name"`
	BatchNumber    string            `json:"batch_number"`
	Status         string            `json:"status"`
	Notes          string            `json:"notes"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	Batch          *report.ScaleView `json:"batch,omitempty"`
}

func projectProductionOrder(order *models.ProductionOrder) productionOrderResponse {
	response := productionOrderResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		FormulaID:      order.FormulaID,
		TargetQuantity: order.TargetQuantity,
		ScaleFactor:    order.ScaleFactor,
		CustomerName:   order.CustomerName,
		BatchNumber:    order.BatchNumber,
		Status:         order.Status,
		Notes:          order.Notes,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}
	if order.Formula != nil {
		response.FormulaName = strings.TrimSpace(order.Formula.Name)
	}
	return response
}

// ListProductionOrders returns every order, newest first.
func ListProductionOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := dataStore.ProductionOrders(r.Context())
	if err != nil {
		writeStoreError(w, r, err, "list production orders")
		return
	}

	out := make([]productionOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, projectProductionOrder(&orders[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateProductionOrder scales the formula to the requested quantity and records the order.
// Formulas without weighed ingredients are rejected.
func CreateProductionOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var payload productionOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		applog.Debug(ctx, "invalid production order payload", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	if payload.FormulaID == 0 {
		writeJSONError(w, http.StatusBadRequest, "formula_id is required")
		return
	}
	if _, err := validTarget(payload.TargetQuantity); err != nil {
		writeJSONError(w, http.StatusBadRequest, "target_quantity must be a positive number")
		return
	}

	formula, err := dataStore.Formula(ctx, payload.FormulaID)
	if err != nil {
		writeStoreError(w, r, err, "load formula")
		return
	}

	started := time.Now()
	batch, err := compliance.Scale(store.IngredientsOf(formula), payload.TargetQuantity)
	if err != nil {
		writeScaleError(w, r, err)
		return
	}
	recorder.ObserveEvaluation(metrics.KindScale, started)

	order := &models.ProductionOrder{
		FormulaID:      formula.ID,
		TargetQuantity: payload.TargetQuantity,
		ScaleFactor:    batch.Factor,
		CustomerName:   strings.TrimSpace(payload.CustomerName),
		BatchNumber:    strings.TrimSpace(payload.BatchNumber),
		Notes:          strings.TrimSpace(payload.Notes),
		Status:         models.OrderStatusPending,
	}
	if err := dataStore.CreateProductionOrder(ctx, order); err != nil {
		writeStoreError(w, r, err, "create production order")
		return
	}
	order.Formula = formula

	applog.Info(ctx, "production order created", "orderID", order.ID, "orderNumber", order.OrderNumber, "formulaID", formula.ID, "factor", batch.Factor)
	response := projectProductionOrder(order)
	view := report.Scale(batch)
	response.Batch = &view
	writeJSON(w, http.StatusCreated, response)
}

// ShowProductionOrder returns one order with its batch sheet recomputed from the
// current formula.
func ShowProductionOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := urlID(r, "orderID")
	if !ok {
		writeJSONError(w, http.StatusNotFound, "production order not found")
		return
	}

	order, err := dataStore.ProductionOrder(ctx, id)
	if err != nil {
		writeStoreError(w, r, err, "load production order")
		return
	}

	response := projectProductionOrder(order)
	formula, err := dataStore.Formula(ctx, order.FormulaID)
	switch {
	case err == nil:
		batch, scaleErr := compliance.Scale(store.IngredientsOf(formula), order.TargetQuantity)
		if scaleErr == nil {
			view := report.Scale(batch)
			response.Batch = &view
		} else {
			applog.Debug(ctx, "production order batch unavailable", "orderID", order.ID, "error", scaleErr)
		}
	case errors.Is(err, store.ErrFormulaNotFound):
		applog.Debug(ctx, "production order formula no longer exists", "orderID", order.ID, "formulaID", order.FormulaID)
	default:
		writeStoreError(w, r, err, "load formula")
		return
	}
	writeJSON(w, http.StatusOK, response)
}

// UpdateProductionOrderStatus moves an order through pending, in_progress, completed
// or cancelled.
func UpdateProductionOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := urlID(r, "orderID")
	if !ok {
		writeJSONError(w, http.StatusNotFound, "production order not found")
		return
	}

	var payload statusRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		applog.Debug(ctx, "invalid status payload", "error", err)
		writeJSONError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	order, err := dataStore.UpdateProductionOrderStatus(ctx, id, payload.Status)
	if err != nil {
		writeStoreError(w, r, err, "update production order")
		return
	}

	applog.Info(ctx, "production order status updated", "orderID", order.ID, "status", order.Status)
	writeJSON(w, http.StatusOK, projectProductionOrder(order))
}
