package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"perfumevault/internal/compliance"
	"perfumevault/internal/ingest"
	applog "perfumevault/internal/log"
	"perfumevault/models"
)

const maxFormulaUploadSize = 5 << 20 // 5 MiB

type importResponse struct {
	Formula     formulaSummary `json:"formula"`
	Ingredients int            `json:"ingredients"`
	Unmatched   []string       `json:"unmatched"`
}

// ImportFormula reads a formula from an uploaded document (formula_file) and/or pasted
// text (formula_text), matches every line to the material catalog and stores the result.
func ImportFormula(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseMultipartForm(maxFormulaUploadSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		applog.Debug(ctx, "failed to parse formula import form", "error", err)
		writeJSONError(w, http.StatusBadRequest, "upload is too large or invalid")
		return
	}

	category := compliance.DefaultCategory
	if raw := strings.TrimSpace(r.FormValue("ifra_category")); raw != "" {
		found, ok := compliance.LookupCategory(compliance.CategoryID(strings.ToLower(raw)))
		if !ok {
			writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("unknown IFRA category %q", raw))
			return
		}
		category = found.ID
	}

	lines, err := readImportLines(r)
	if err != nil {
		applog.Debug(ctx, "formula import produced no lines", "error", err)
		switch {
		case errors.Is(err, ingest.ErrUnsupportedUpload):
			writeJSONError(w, http.StatusUnsupportedMediaType, "upload a PDF, CSV or text document")
		case errors.Is(err, ingest.ErrNoIngredients):
			writeJSONError(w, http.StatusBadRequest, "provide formula text or upload a document with ingredient lines")
		default:
			writeJSONError(w, http.StatusBadRequest, "we couldn't interpret the uploaded document")
		}
		return
	}

	materials, err := dataStore.Materials(ctx)
	if err != nil {
		writeStoreError(w, r, err, "load materials")
		return
	}

	ingredients, unmatched := ingest.Resolve(materials, lines)
	if len(ingredients) == 0 {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":     "no ingredient matched the material catalog",
			"unmatched": unmatched,
		})
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	if name == "" {
		name = "Imported Formula"
	}
	formula := &models.Formula{
		Name:         name,
		Description:  strings.TrimSpace(r.FormValue("description")),
		IFRACategory: string(category),
		Status:       models.FormulaStatusDraft,
		SampleWeight: totalWeight(ingredients),
		Ingredients:  ingredients,
	}
	if err := dataStore.CreateFormula(ctx, formula); err != nil {
		writeStoreError(w, r, err, "store imported formula")
		return
	}

	if unmatched == nil {
		unmatched = []string{}
	}
	applog.Info(ctx, "formula imported", "formulaID", formula.ID, "ingredients", len(ingredients), "unmatched", len(unmatched))
	writeJSON(w, http.StatusCreated, importResponse{
		Formula:     summarizeFormula(formula),
		Ingredients: len(ingredients),
		Unmatched:   unmatched,
	})
}

// readImportLines merges the lines of the pasted text and of the uploaded file.
func readImportLines(r *http.Request) ([]ingest.Line, error) {
	var lines []ingest.Line

	if text := strings.TrimSpace(r.FormValue("formula_text")); text != "" {
		parsed, err := ingest.ParseText(text)
		if err != nil && !errors.Is(err, ingest.ErrNoIngredients) {
			return nil, err
		}
		lines = append(lines, parsed...)
	}

	data, mime, err := readFormulaUpload(r)
	if err != nil {
		return nil, err
	}
	if len(data) > 0 {
		parsed, err := ingest.ParseUpload(data, mime)
		if err != nil && !errors.Is(err, ingest.ErrNoIngredients) {
			return nil, err
		}
		lines = append(lines, parsed...)
	}

	if len(lines) == 0 {
		return nil, ingest.ErrNoIngredients
	}
	return lines, nil
}

func readFormulaUpload(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile("formula_file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, "", nil
		}
		return nil, "", err
	}
	defer file.Close()

	if header.Size > maxFormulaUploadSize {
		return nil, "", fmt.Errorf("file exceeds %d bytes", maxFormulaUploadSize)
	}

	buf := bytes.NewBuffer(make([]byte, 0, header.Size))
	if _, err := io.Copy(buf, file); err != nil {
		return nil, "", err
	}

	mime := header.Header.Get("Content-Type")
	if mime == "" || mime == "application/octet-stream" {
		mime = ingest.MimeTypeFromName(header.Filename)
	}
	return buf.Bytes(), mime, nil
}

func totalWeight(ingredients []models.FormulaIngredient) float64 {
	total := 0.0
	for _, ing := range ingredients {
		total += ing.Weight
	}
	return total
}
