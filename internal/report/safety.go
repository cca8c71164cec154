package report

import "perfumevault/internal/compliance"

// StatementView is a GHS statement.
type StatementView struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Group       string `json:"group,omitempty"`
}

// PictogramView is a GHS pictogram.
type PictogramView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SafetyLineView lists a component of the mixture.
type SafetyLineView struct {
	Name       string  `json:"name"`
	CASNumber  string  `json:"cas_number"`
	Percentage float64 `json:"percentage"`
}

// SafetyView is the hazard communication summary of a formula.
type SafetyView struct {
	Ingredients []SafetyLineView `json:"ingredients"`
	HCodes      []StatementView  `json:"h_codes"`
	PCodes      []StatementView  `json:"p_codes"`
	Pictograms  []PictogramView  `json:"pictograms"`
	SignalWord  string           `json:"signal_word"`
	TotalWeight float64          `json:"total_weight"`
}

// GHSView exposes the GHS reference tables.
type GHSView struct {
	HCodes          []StatementView `json:"h_codes"`
	PCodes          []StatementView `json:"p_codes"`
	Pictograms      []PictogramView `json:"pictograms"`
	SignalWords     []string        `json:"signal_words"`
	Classifications []string        `json:"classifications"`
}

// Safety renders a hazard summary with two-decimal percentages.
func Safety(summary compliance.SafetySummary) SafetyView {
	view := SafetyView{
		Ingredients: make([]SafetyLineView, 0, len(summary.Ingredients)),
		HCodes:      statements(summary.HCodes),
		PCodes:      statements(summary.PCodes),
		Pictograms:  pictograms(summary.Pictograms),
		SignalWord:  summary.SignalWord,
		TotalWeight: summary.TotalWeight,
	}
	for _, line := range summary.Ingredients {
		view.Ingredients = append(view.Ingredients, SafetyLineView{
			Name:       line.Name,
			CASNumber:  line.CASNumber,
			Percentage: Round(line.Share*100, 2),
		})
	}
	return view
}

// GHS renders the reference tables.
func GHS(ref compliance.GHSReference) GHSView {
	return GHSView{
		HCodes:          statements(ref.HazardStatements),
		PCodes:          statements(ref.PrecautionaryStatements),
		Pictograms:      pictograms(ref.Pictograms),
		SignalWords:     ref.SignalWords,
		Classifications: ref.Classifications,
	}
}

func statements(list []compliance.Statement) []StatementView {
	out := make([]StatementView, 0, len(list))
	for _, s := range list {
		out = append(out, StatementView{Code: s.Code, Description: s.Description, Group: s.Group})
	}
	return out
}

func pictograms(list []compliance.Pictogram) []PictogramView {
	out := make([]PictogramView, 0, len(list))
	for _, p := range list {
		out = append(out, PictogramView{ID: p.ID, Name: p.Name})
	}
	return out
}
