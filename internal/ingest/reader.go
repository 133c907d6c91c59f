// Package ingest reads input documents from disk.
package ingest

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"textlens/internal/domain"
)

// ErrUnsupported is returned for files that are neither .txt nor .pdf.
var ErrUnsupported = errors.New("unsupported file type")

// Supported reports whether path has an extension ReadFile understands.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".pdf":
		return true
	default:
		return false
	}
}

// Expand resolves glob patterns. A pattern without matches is kept as is so
// the caller reports the missing file.
func Expand(patterns []string) []string {
	var out []string
	for _, p := range patterns {
		matches, _ := filepath.Glob(p)
		if matches == nil {
			matches = []string{p}
		}
		out = append(out, matches...)
	}
	return out
}

// ReadFile loads a .txt or .pdf file as a document.
func ReadFile(path string) (domain.Document, error) {
	var (
		content string
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		var data []byte
		data, err = os.ReadFile(path)
		content = string(data)
	case ".pdf":
		content, err = readPDF(path)
	default:
		return domain.Document{}, fmt.Errorf("%s: %w", path, ErrUnsupported)
	}
	if err != nil {
		return domain.Document{}, err
	}
	return domain.Document{ID: HashString(path), Path: path, Content: content}, nil
}

func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no extractable text found in pdf %s", path)
	}
	return b.String(), nil
}

// HashString returns a short hex digest of s.
func HashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
