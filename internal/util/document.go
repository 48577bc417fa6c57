package util

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MaxUploadSize mirrors the backend's MAX_CONTENT_LENGTH.
const MaxUploadSize = 16 * 1024 * 1024

var (
	ErrNoFile          = errors.New("Invalid or no file selected")
	ErrFileTooLarge    = errors.New("File is too large (max 16MB)")
	ErrCorruptDocument = errors.New("The file appears to be corrupted")
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// ValidateUpload checks a CV before it is forwarded to the backend. It only
// proves the file can be opened; text extraction stays server-side.
func ValidateUpload(filename string, data []byte) error {
	if strings.TrimSpace(filename) == "" || len(data) == 0 {
		return ErrNoFile
	}
	if len(data) > MaxUploadSize {
		return ErrFileTooLarge
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); {
	case !allowedExtensions[ext]:
		return ErrNoFile
	case ext == ".pdf":
		if _, err := PDFPageCount(data); err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptDocument, err)
		}
	case ext == ".docx":
		if err := checkDocx(data); err != nil {
			return fmt.Errorf("%w: %v", ErrCorruptDocument, err)
		}
	}
	return nil
}

// PDFPageCount opens data as a PDF and returns its page count.
func PDFPageCount(data []byte) (n int, err error) {
	// The reader panics on some truncated cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("failed to read pdf: %w", err)
	}
	n = reader.NumPage()
	if n == 0 {
		return 0, fmt.Errorf("pdf has no pages")
	}
	return n, nil
}

func checkDocx(data []byte) error {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return fmt.Errorf("failed to parse docx: %w", err)
	}
	return doc.Close()
}
