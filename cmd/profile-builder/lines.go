// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pdiddy/profile-builder/internal/build"
	"github.com/pdiddy/profile-builder/internal/pdftext"
	"github.com/pdiddy/profile-builder/internal/profile"
	"github.com/pdiddy/profile-builder/internal/vocab"
)

var linesCmd = &cobra.Command{
	Use:   "lines",
	Short: "Print the line stream extracted from the PDF",
	Long: `Lines prints the trimmed, non-blank lines the parser sees, numbered in
order. With --sections it prints each recognised section's lines instead,
which shows where a changed export layout breaks the heuristics.`,
	Args: cobra.NoArgs,
	RunE: runLines,
}

func init() {
	linesCmd.Flags().Bool("sections", false, "group lines by the section they are assigned to")

	rootCmd.AddCommand(linesCmd)
}

func runLines(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()

	ext, err := pdftext.New(cfg.Backend)
	if err != nil {
		return err
	}
	v, err := vocab.Load(cfg.VocabularyPath)
	if err != nil {
		return err
	}

	if err := build.CheckInput(cfg.InputPath); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	lines, err := pdftext.Lines(ctx, ext, cfg.InputPath)
	if err != nil {
		return err
	}

	grouped, _ := cmd.Flags().GetBool("sections")
	if grouped {
		printSections(cmd.OutOrStdout(), profile.SplitSections(lines, v))
		return nil
	}
	printLines(cmd.OutOrStdout(), lines)
	return nil
}

func printLines(w io.Writer, lines []string) {
	for i, l := range lines {
		fmt.Fprintf(w, "%4d  %s\n", i, l)
	}
	fmt.Fprintf(w, "\n%d lines\n", len(lines))
}

func printSections(w io.Writer, sections profile.Sections) {
	for _, s := range vocab.Sections {
		bucket := sections[s]
		fmt.Fprintf(w, "== %s (%d lines)\n", s, len(bucket))
		for _, l := range bucket {
			fmt.Fprintf(w, "  %s\n", l)
		}
	}
}
