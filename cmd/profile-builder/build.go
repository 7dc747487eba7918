// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-builder/internal/build"
	"github.com/pdiddy/profile-builder/internal/pdftext"
	"github.com/pdiddy/profile-builder/internal/vocab"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Parse the LinkedIn PDF and write the profile JSON",
	Long: `Build extracts the text of the LinkedIn PDF export, splits it into
sections, reconstructs experience and education entries around their date
lines, and writes the profile JSON. The output directory is created if it
does not exist.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()

	// Resolve the backend first so a missing tool is reported before any
	// file access.
	ext, err := pdftext.New(cfg.Backend)
	if err != nil {
		return err
	}
	v, err := vocab.Load(cfg.VocabularyPath)
	if err != nil {
		return err
	}
	log.Debug().Str("backend", ext.Name()).Str("input", cfg.InputPath).Str("output", cfg.OutputPath).Msg("building profile")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	_, err = build.Run(ctx, ext, cfg, v, cmd.OutOrStdout())
	return err
}
