// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext flattens a PDF into the ordered line stream the profile
// parser consumes: page by page, top to bottom, one rendered row per line,
// trimmed, with blank lines removed. Two backends are available: an
// in-process decoder and poppler's pdftotext.
package pdftext

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/profile-builder/pkg/types"
)

// ErrBackendUnavailable is returned by New when the selected backend's
// external dependency cannot be found.
var ErrBackendUnavailable = errors.New("extraction backend unavailable")

// Extractor flattens a PDF into text. Different backends (native,
// pdftotext) implement this interface.
type Extractor interface {
	// Name identifies the backend in logs.
	Name() string

	// Extract reads the PDF at pdfPath and returns its text with one
	// rendered row per line, pages in order.
	Extract(ctx context.Context, pdfPath string) (string, error)
}

// New returns the extractor for backend. It checks that the backend's
// dependencies are present before returning, so a missing tool is reported
// before any file is touched.
func New(backend types.ExtractionBackend) (Extractor, error) {
	switch backend {
	case types.BackendNative, "":
		return &Native{}, nil
	case types.BackendPdftotext:
		return newPdftotext(defaultExec)
	default:
		return nil, fmt.Errorf("unknown extraction backend %q: use %s or %s",
			backend, types.BackendNative, types.BackendPdftotext)
	}
}

// Lines extracts pdfPath with e and splits the result with SplitLines.
func Lines(ctx context.Context, e Extractor, pdfPath string) ([]string, error) {
	text, err := e.Extract(ctx, pdfPath)
	if err != nil {
		return nil, err
	}
	return SplitLines(text), nil
}

// SplitLines NFKC-normalizes text, splits it on newlines, trims each line
// and drops blank ones. Normalization folds the non-breaking spaces and
// ligatures PDF renderers emit into their plain equivalents.
func SplitLines(text string) []string {
	raw := strings.Split(norm.NFKC.String(text), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
