// Package store loads formulas and production orders through gorm and converts them into
// the rows the compliance engine evaluates.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	applog "perfumevault/internal/log"
	"perfumevault/models"
)

var (
	ErrNoDatabase      = errors.New("store: no database configured")
	ErrFormulaNotFound = errors.New("store: formula not found")
	ErrOrderNotFound   = errors.New("store: production order not found")
	ErrInvalidStatus   = errors.New("store: invalid status")
	ErrInvalidFormula  = errors.New("store: invalid formula")
)

// Store is the data access collaborator of the HTTP handlers and commands.
type Store struct {
	db    *gorm.DB
	now   func() time.Time
	newID func() uuid.UUID
}

// New wraps a gorm handle. A nil handle yields a store whose calls fail with ErrNoDatabase.
func New(db *gorm.DB) *Store {
	return &Store{db: db, now: time.Now, newID: uuid.New}
}

// DB exposes the underlying handle.
func (s *Store) DB() *gorm.DB {
	if s == nil {
		return nil
	}
	return s.db
}

func (s *Store) conn(ctx context.Context) (*gorm.DB, error) {
	if s == nil || s.db == nil {
		return nil, ErrNoDatabase
	}
	return s.db.WithContext(ctx), nil
}

// ListFormulas returns every formula without ingredients, ordered by id.
func (s *Store) ListFormulas(ctx context.Context) ([]models.Formula, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	var formulas []models.Formula
	if err := db.Order("id").Find(&formulas).Error; err != nil {
		return nil, fmt.Errorf("list formulas: %w", err)
	}
	return formulas, nil
}

// Formula loads one formula with its ingredients, their materials and the material
// families and safety data. Ingredients keep their insertion order.
func (s *Store) Formula(ctx context.Context, id uint) (*models.Formula, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	var formula models.Formula
	err = db.
		Preload("Ingredients", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		Preload("Ingredients.Material").
		Preload("Ingredients.Material.Family").
		Preload("Ingredients.Material.Safety").
		First(&formula, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFormulaNotFound
		}
		return nil, fmt.Errorf("load formula %d: %w", id, err)
	}
	return &formula, nil
}

// Materials returns the catalog with families and safety data, ordered by name.
func (s *Store) Materials(ctx context.Context) ([]models.Material, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	var materials []models.Material
	if err := db.Preload("Family").Preload("Safety").Order("name").Find(&materials).Error; err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return materials, nil
}

// CreateFormula stores a formula and its ingredients in one transaction.
func (s *Store) CreateFormula(ctx context.Context, formula *models.Formula) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	if formula == nil || strings.TrimSpace(formula.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidFormula)
	}
	for _, ingredient := range formula.Ingredients {
		if ingredient.MaterialID == 0 {
			return fmt.Errorf("%w: ingredient without material", ErrInvalidFormula)
		}
		if ingredient.Weight < 0 {
			return fmt.Errorf("%w: negative weight", ErrInvalidFormula)
		}
	}

	formula.Name = strings.TrimSpace(formula.Name)
	formula.Status = models.NormalizeFormulaStatus(formula.Status)

	ingredients := formula.Ingredients
	formula.Ingredients = nil

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(formula).Error; err != nil {
			return err
		}
		for i := range ingredients {
			ingredients[i].ID = 0
			ingredients[i].FormulaID = formula.ID
			ingredients[i].Material = nil
			if err := tx.Create(&ingredients[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	formula.Ingredients = ingredients
	if err != nil {
		return fmt.Errorf("create formula: %w", err)
	}

	applog.Debug(ctx, "formula stored", "formulaID", formula.ID, "ingredients", len(ingredients))
	return nil
}

// NewOrderNumber builds a production order number of the form PO-<timestamp>-<8 hex>.
func (s *Store) NewOrderNumber() string {
	suffix := strings.ReplaceAll(s.newID().String(), "-", "")[:8]
	return fmt.Sprintf("PO-%s-%s", s.now().UTC().Format("20060102150405"), strings.ToUpper(suffix))
}

// CreateProductionOrder records an order for an existing formula. Missing order numbers
// and statuses are filled in.
func (s *Store) CreateProductionOrder(ctx context.Context, order *models.ProductionOrder) error {
	db, err := s.conn(ctx)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("create production order: nil order")
	}

	var count int64
	if err := db.Model(&models.Formula{}).Where("id = ?", order.FormulaID).Count(&count).Error; err != nil {
		return fmt.Errorf("check formula %d: %w", order.FormulaID, err)
	}
	if count == 0 {
		return ErrFormulaNotFound
	}

	status := strings.ToLower(strings.TrimSpace(order.Status))
	if status == "" {
		status = models.OrderStatusPending
	}
	if !models.ValidOrderStatus(status) {
		return ErrInvalidStatus
	}
	order.Status = status
	if strings.TrimSpace(order.OrderNumber) == "" {
		order.OrderNumber = s.NewOrderNumber()
	}
	order.Formula = nil

	if err := db.Create(order).Error; err != nil {
		return fmt.Errorf("create production order: %w", err)
	}
	return nil
}

// ProductionOrders returns every order, newest first, with the formula attached.
func (s *Store) ProductionOrders(ctx context.Context) ([]models.ProductionOrder, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	var orders []models.ProductionOrder
	if err := db.Preload("Formula").Order("id desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list production orders: %w", err)
	}
	return orders, nil
}

// ProductionOrder loads one order with its formula.
func (s *Store) ProductionOrder(ctx context.Context, id uint) (*models.ProductionOrder, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}

	var order models.ProductionOrder
	if err := db.Preload("Formula").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("load production order %d: %w", id, err)
	}
	return &order, nil
}

// UpdateProductionOrderStatus moves an order to a new status and returns the updated order.
func (s *Store) UpdateProductionOrderStatus(ctx context.Context, id uint, status string) (*models.ProductionOrder, error) {
	db, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	status = strings.ToLower(strings.TrimSpace(status))
	if !models.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}

	order, err := s.ProductionOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := db.Model(order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update production order %d: %w", id, err)
	}
	order.Status = status
	return order, nil
}
