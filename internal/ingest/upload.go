package ingest

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
)

// ErrUnsupportedUpload is returned for uploads that carry no extractable text.
var ErrUnsupportedUpload = errors.New("ingest: unsupported upload type")

// ParseUpload reads ingredient lines from an uploaded document. CSV files go through
// the column reader; PDFs and plain text through the line parser.
func ParseUpload(data []byte, mime string) ([]Line, error) {
	if strings.Contains(strings.ToLower(mime), "csv") {
		records, err := ReadCSV(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		return LinesFromRecords(records)
	}
	text, err := TextFromUpload(data, mime)
	if err != nil {
		return nil, err
	}
	return ParseText(text)
}

// TextFromUpload returns the text carried by an uploaded document.
func TextFromUpload(data []byte, mime string) (string, error) {
	lower := strings.ToLower(mime)
	switch {
	case strings.Contains(lower, "pdf"):
		return ExtractPDFText(data)
	case strings.HasPrefix(lower, "text/"), strings.Contains(lower, "csv"), lower == "application/octet-stream", lower == "":
		return string(data), nil
	default:
		return "", ErrUnsupportedUpload
	}
}

// MimeTypeFromName guesses a content type from a file extension.
func MimeTypeFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".txt":
		return "text/plain"
	case ".csv":
		return "text/csv"
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
