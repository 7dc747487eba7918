// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ExtractionBackend identifies the tool that flattens the PDF into text.
type ExtractionBackend string

const (
	// BackendNative decodes the PDF in-process with ledongthuc/pdf.
	BackendNative ExtractionBackend = "native"
	// BackendPdftotext shells out to poppler's pdftotext.
	BackendPdftotext ExtractionBackend = "pdftotext"
)

const (
	// DefaultInputPath is where the LinkedIn export is expected.
	DefaultInputPath = "linkedin/Profile.pdf"
	// DefaultOutputPath is where the profile JSON is written.
	DefaultOutputPath = "data/profile.json"
)

// BuildConfig holds settings for one profile build.
type BuildConfig struct {
	// InputPath is the LinkedIn PDF export.
	InputPath string `json:"input" yaml:"input"`

	// OutputPath is the JSON file to write. Its directory is created if absent.
	OutputPath string `json:"output" yaml:"output"`

	// Backend selects the PDF text extractor: native or pdftotext.
	Backend ExtractionBackend `json:"backend" yaml:"backend"`

	// VocabularyPath optionally points at a YAML file overriding the
	// section header and location vocabularies.
	VocabularyPath string `json:"vocabulary,omitempty" yaml:"vocabulary,omitempty"`
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c BuildConfig) WithDefaults() BuildConfig {
	if c.InputPath == "" {
		c.InputPath = DefaultInputPath
	}
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.Backend == "" {
		c.Backend = BackendNative
	}
	return c
}
