// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"

	"github.com/rs/zerolog/log"

	"github.com/pdiddy/profile-builder/pkg/types"
)

const binPdftotext = "pdftotext"

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (o *osExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w (stderr: %s)", err, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}

var defaultExec executor = &osExecutor{}

// Pdftotext extracts text by running poppler's pdftotext in reading order.
type Pdftotext struct {
	bin  string
	exec executor
}

func newPdftotext(exec executor) (*Pdftotext, error) {
	bin, err := exec.LookPath(binPdftotext)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found on PATH (%v); install poppler-utils "+
			"(apt install poppler-utils, brew install poppler) or use --backend %s",
			ErrBackendUnavailable, binPdftotext, err, types.BackendNative)
	}
	return &Pdftotext{bin: bin, exec: exec}, nil
}

func (p *Pdftotext) Name() string { return string(types.BackendPdftotext) }

// Extract runs pdftotext with UTF-8 output and no page-break characters,
// writing to stdout.
func (p *Pdftotext) Extract(ctx context.Context, pdfPath string) (string, error) {
	args := []string{"-enc", "UTF-8", "-nopgbrk", pdfPath, "-"}
	log.Debug().Str("bin", p.bin).Strs("args", args).Msg("running pdftotext")

	out, err := p.exec.Output(ctx, p.bin, args...)
	if err != nil {
		return "", fmt.Errorf("running %s on %s: %w", binPdftotext, pdfPath, err)
	}
	return string(out), nil
}
