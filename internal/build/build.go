// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package build runs one profile build: it checks the input export exists,
// flattens it to lines, parses the profile and writes the JSON record.
package build

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/pdiddy/profile-builder/internal/pdftext"
	"github.com/pdiddy/profile-builder/internal/profile"
	"github.com/pdiddy/profile-builder/internal/vocab"
	"github.com/pdiddy/profile-builder/pkg/types"
)

// ErrInputMissing is returned when the LinkedIn export does not exist.
var ErrInputMissing = errors.New("LinkedIn PDF not found")

// Run builds the profile described by cfg, writes it to cfg.OutputPath and
// prints progress and a summary to w. The input is checked before any
// extraction is attempted.
func Run(ctx context.Context, e pdftext.Extractor, cfg types.BuildConfig, v vocab.Vocabulary, w io.Writer) (types.ProfileRecord, error) {
	cfg = cfg.WithDefaults()

	if err := CheckInput(cfg.InputPath); err != nil {
		return types.ProfileRecord{}, err
	}

	fmt.Fprintf(w, "Reading PDF from %s...\n", cfg.InputPath)
	lines, err := pdftext.Lines(ctx, e, cfg.InputPath)
	if err != nil {
		return types.ProfileRecord{}, fmt.Errorf("extracting text with %s backend: %w", e.Name(), err)
	}
	log.Debug().Str("backend", e.Name()).Int("lines", len(lines)).Msg("extracted text")
	if len(lines) == 0 {
		log.Warn().Str("path", cfg.InputPath).Msg("no text extracted; the PDF may be scanned or image-based")
	}

	fmt.Fprintln(w, "Parsing profile data...")
	p := profile.Parse(lines, v)

	if err := WriteJSON(cfg.OutputPath, p); err != nil {
		return types.ProfileRecord{}, err
	}

	PrintSummary(w, cfg.OutputPath, p)
	return p, nil
}

// CheckInput reports ErrInputMissing, with a hint on where to save the
// export, when path does not exist. A directory is rejected too.
func CheckInput(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w at %s: export your LinkedIn profile as PDF and save it to %s",
			ErrInputMissing, path, path)
	}
	if err != nil {
		return fmt.Errorf("checking input %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("input %s is a directory, not a PDF file", path)
	}
	return nil
}

// Encode renders p as UTF-8 JSON with two-space indentation. HTML characters
// are not escaped so descriptions read as written.
func Encode(p types.ProfileRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("encoding profile: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteJSON encodes p and writes it to path, creating the parent directory
// if it does not exist.
func WriteJSON(path string, p types.ProfileRecord) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// PrintSummary reports where the profile was written and what it contains.
func PrintSummary(w io.Writer, path string, p types.ProfileRecord) {
	fmt.Fprintf(w, "Profile data written to %s\n", path)
	fmt.Fprintf(w, "  Name: %s\n", p.Name)
	fmt.Fprintf(w, "  Headline: %s\n", p.Headline)
	fmt.Fprintf(w, "  Experience entries: %d\n", len(p.Experience))
	fmt.Fprintf(w, "  Education entries: %d\n", len(p.Education))
	fmt.Fprintf(w, "  Skills: %d\n", len(p.Skills))
	fmt.Fprintf(w, "  Certifications: %d\n", len(p.Certifications))
	fmt.Fprintf(w, "  Experience start year: %d\n", p.ExperienceStartYear)
}
