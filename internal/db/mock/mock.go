package mock

import (
	"context"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"perfumevault/internal/db"
	applog "perfumevault/internal/log"
	"perfumevault/models"
)

const defaultName = "perfumevault-mock"

// New returns the shared in-memory sqlite database seeded with representative lab data.
func New(ctx context.Context) (*gorm.DB, error) {
	return Open(ctx, defaultName)
}

// Open returns a named in-memory sqlite database. Distinct names give isolated databases,
// which lets tests mutate data without seeing each other.
func Open(ctx context.Context, name string) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database", "name", name)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	database, err := gorm.Open(sqlite.Open(dsn), db.GormConfig(logger.Silent))
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(database); err != nil {
		return nil, err
	}

	if err := seed(ctx, database); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready", "name", name)
	return database, nil
}

func ptr(v float64) *float64 { return &v }

func seed(ctx context.Context, database *gorm.DB) error {
	var existing int64
	if err := database.WithContext(ctx).Model(&models.Family{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		applog.Debug(ctx, "mock database already seeded")
		return nil
	}

	applog.Debug(ctx, "seeding mock database")

	citrus := models.Family{Name: "Citrus", Icon: "🍋"}
	floral := models.Family{Name: "Floral", Icon: "🌸"}
	woody := models.Family{Name: "Woody", Icon: "🌲"}
	amber := models.Family{Name: "Amber", Icon: "🟠"}
	for _, family := range []*models.Family{&citrus, &floral, &woody, &amber} {
		if err := database.WithContext(ctx).Create(family).Error; err != nil {
			return err
		}
	}

	bergamot := models.Material{
		Name:            "Bergamot Oil",
		CASNumber:       "8007-75-8",
		Profile:         models.ProfileTop,
		FamilyID:        &citrus.ID,
		IFRALimit:       ptr(0.02),
		PricePerGram:    ptr(0.12),
		OdorDescription: "Cold-pressed citrus brightness with a bitter green edge.",
		Safety: &models.MaterialSafety{
			HCodes:          datatypes.JSONSlice[string]{"H226", "H304", "H315", "H317", "H410"},
			PCodes:          datatypes.JSONSlice[string]{"P210", "P273", "P280", "P301+P310", "P331"},
			Pictograms:      datatypes.JSONSlice[string]{"flammable", "health_hazard", "irritant", "environmental"},
			Classifications: datatypes.JSONSlice[string]{"Flammable", "Irritant", "Environmentally Damaging"},
			SignalWord:      "Danger",
		},
	}

	hedione := models.Material{
		Name:            "Hedione",
		CASNumber:       "24851-98-7",
		Profile:         models.ProfileHeart,
		FamilyID:        &floral.ID,
		PricePerGram:    ptr(0.05),
		OdorDescription: "Transparent jasmine air with a fresh citrus lift.",
		Safety: &models.MaterialSafety{
			HCodes:     datatypes.JSONSlice[string]{"H412"},
			PCodes:     datatypes.JSONSlice[string]{"P273", "P501"},
			SignalWord: "",
		},
	}

	isoESuper := models.Material{
		Name:            "Iso E Super",
		CASNumber:       "54464-57-2",
		Profile:         models.ProfileBase,
		FamilyID:        &woody.ID,
		IFRALimit:       ptr(0.215),
		PricePerGram:    ptr(0.04),
		OdorDescription: "Velvety cedar and vetiver facets with a soft ambery glow.",
		Safety: &models.MaterialSafety{
			HCodes:          datatypes.JSONSlice[string]{"H315", "H317", "H410"},
			PCodes:          datatypes.JSONSlice[string]{"P261", "P273", "P280", "P302+P352"},
			Pictograms:      datatypes.JSONSlice[string]{"irritant", "environmental"},
			Classifications: datatypes.JSONSlice[string]{"Irritant", "Environmentally Damaging"},
			SignalWord:      "Warning",
		},
	}

	ambroxan := models.Material{
		Name:            "Ambroxan",
		CASNumber:       "6790-58-5",
		Profile:         models.ProfileBase,
		FamilyID:        &amber.ID,
		PricePerGram:    ptr(1.8),
		OdorDescription: "Modern ambergris profile delivering warmth and diffusion.",
		Safety: &models.MaterialSafety{
			HCodes:          datatypes.JSONSlice[string]{"H411"},
			PCodes:          datatypes.JSONSlice[string]{"P273", "P391", "P501"},
			Pictograms:      datatypes.JSONSlice[string]{"environmental"},
			Classifications: datatypes.JSONSlice[string]{"Environmentally Damaging"},
			SignalWord:      "Warning",
		},
	}

	coumarin := models.Material{
		Name:            "Coumarin",
		CASNumber:       "91-64-5",
		Profile:         models.ProfileBase,
		FamilyID:        &amber.ID,
		IFRALimit:       ptr(0.016),
		PricePerGram:    ptr(0.09),
		OdorDescription: "Sweet hay and tonka warmth.",
		Safety: &models.MaterialSafety{
			HCodes:          datatypes.JSONSlice[string]{"H302", "H317"},
			PCodes:          datatypes.JSONSlice[string]{"P264", "P270", "P280", "P301+P312"},
			Pictograms:      datatypes.JSONSlice[string]{"irritant"},
			Classifications: datatypes.JSONSlice[string]{"Irritant"},
			SignalWord:      "Warning",
		},
	}

	materials := []*models.Material{&bergamot, &hedione, &isoESuper, &ambroxan, &coumarin}
	for _, material := range materials {
		if err := database.WithContext(ctx).Create(material).Error; err != nil {
			return err
		}
	}

	aurum := models.Formula{
		Name:         "Aurum Nocturne",
		Description:  "Resinous amber core balanced with luminous citrus facets.",
		IFRACategory: "cat4",
		Status:       models.FormulaStatusActive,
		SampleWeight: 1000,
	}

	lumen := models.Formula{
		Name:         "Lumen Céleste",
		Description:  "Radiant jasmine halo with cool amber trails for longevity.",
		IFRACategory: "cat5a",
		Status:       models.FormulaStatusDraft,
		SampleWeight: 500,
	}

	blank := models.Formula{
		Name:         "Blank Canvas",
		Description:  "Placeholder awaiting its first trial.",
		IFRACategory: "cat4",
		Status:       models.FormulaStatusDraft,
		SampleWeight: 100,
	}

	for _, formula := range []*models.Formula{&aurum, &lumen, &blank} {
		if err := database.WithContext(ctx).Create(formula).Error; err != nil {
			return err
		}
	}

	ingredients := []models.FormulaIngredient{
		{FormulaID: aurum.ID, MaterialID: bergamot.ID, Weight: 120},
		{FormulaID: aurum.ID, MaterialID: hedione.ID, Weight: 300},
		{FormulaID: aurum.ID, MaterialID: isoESuper.ID, Weight: 250},
		{FormulaID: aurum.ID, MaterialID: ambroxan.ID, Weight: 50, Dilution: ptr(0.1), Diluent: "DPG"},
		{FormulaID: aurum.ID, MaterialID: coumarin.ID, Weight: 30},
		{FormulaID: lumen.ID, MaterialID: hedione.ID, Weight: 200},
		{FormulaID: lumen.ID, MaterialID: bergamot.ID, Weight: 40, Dilution: ptr(0.5), Diluent: "Ethanol"},
		{FormulaID: lumen.ID, MaterialID: ambroxan.ID, Weight: 10},
	}

	for _, ingredient := range ingredients {
		ingredientCopy := ingredient
		if err := database.WithContext(ctx).Create(&ingredientCopy).Error; err != nil {
			return err
		}
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}
