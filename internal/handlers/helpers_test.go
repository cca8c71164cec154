package handlers

import (
	"bytes"
	"mime/multipart"
	"strconv"
	"testing"
)

// newMultipartWriter fills body with the given fields and a formula_file part and
// returns the request content type.
func newMultipartWriter(t *testing.T, body *bytes.Buffer, fields map[string]string, filename, content string) string {
	t.Helper()

	writer := multipart.NewWriter(body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("write field %s: %v", key, err)
		}
	}
	part, err := writer.CreateFormFile("formula_file", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return writer.FormDataContentType()
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
