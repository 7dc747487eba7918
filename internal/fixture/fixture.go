// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package fixture renders line lists into simple single-column PDFs. Tests
// use it to exercise the extraction backends end to end, and the Sample
// build target uses it to produce a demo export.
package fixture

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// SampleProfile is a small export in LinkedIn's rendered order, split into
// pages.
var SampleProfile = [][]string{
	{
		"Jane Doe",
		"Software Engineer",
		"Greater Accra Region",
		"Summary",
		"I build reliable backend systems.",
		"Experience",
		"Backend Engineer",
		"Jan 2021 - Present",
		"Acme Corp",
		"Built payment systems.",
		"Page 1 of 2",
	},
	{
		"Software Engineer",
		"Jun 2018 - Dec 2020",
		"Initech",
		"Worked on APIs.",
		"Education",
		"University of Ghana",
		"2012 - 2016",
		"BSc Computer Science",
		"Top Skills",
		"Distributed Systems",
		"Go",
		"Certifications",
		"AWS Certified Solutions Architect",
		"Page 2 of 2",
	},
}

// WritePDF renders pages to path, one line of text per row. The parent
// directory is created if needed.
func WritePDF(path string, pages [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 11)
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, lines := range pages {
		doc.AddPage()
		for _, line := range lines {
			doc.CellFormat(0, 8, tr(line), "", 1, "L", false, 0, "")
		}
	}

	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing PDF %s: %w", path, err)
	}
	return nil
}
