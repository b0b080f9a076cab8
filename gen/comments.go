package gen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
)

// DefaultCommentPool returns the built-in pool used whenever extraction
// yields nothing. Never empty.
func DefaultCommentPool() []string {
	return []string{
		"Great eco concept!",
		"Love this design!",
		"So inspiring!",
		"Miyazaki vibes!",
		"Very creative!",
	}
}

// LoadCommentPool extracts candidate comment lines from the document at
// path. PDFs go through text extraction; anything else is read as plain
// text. Every failure mode (missing file, corrupt document, extraction
// panic) degrades to an empty slice — callers branch on emptiness, never
// on an error.
func LoadCommentPool(path string) []string {
	var raw string
	var err error
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		raw, err = extractPDFText(path)
	} else {
		raw, err = readPlainText(path)
	}
	if err != nil {
		logrus.Debugf("comment source %s unusable: %v", path, err)
		return nil
	}
	return cleanLines(raw)
}

// EffectivePool substitutes the default pool when extraction found nothing.
func EffectivePool(extracted []string) []string {
	if len(extracted) > 0 {
		return extracted
	}
	return DefaultCommentPool()
}

// extractPDFText pulls the plain text out of a PDF. The pdf package panics
// on some malformed documents; the recover keeps that inside the provider
// boundary.
func extractPDFText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = errFromPanic(r)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	body, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(body); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func readPlainText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func errFromPanic(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("extraction panic: %v", r)
}

// cleanLines strips embedded numeric and punctuation noise (digits and
// periods), trims whitespace, and discards empty results.
func cleanLines(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' {
				return -1
			}
			return r
		}, line)
		cleaned = strings.TrimSpace(cleaned)
		if cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}
