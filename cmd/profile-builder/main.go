// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the profile-builder CLI, which turns
// a LinkedIn PDF export into data/profile.json for the site generator.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/profile-builder/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd builds the profile when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "profile-builder",
	Short: "Convert a LinkedIn profile PDF into structured JSON",
	Long: `profile-builder reads a LinkedIn profile exported as PDF (default
linkedin/Profile.pdf) and writes a structured JSON record (default
data/profile.json) with name, headline, location, about, experience,
education, skills and certifications.

Run it without arguments to build with the default paths.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd)
		return nil
	},
	RunE: runBuild,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./profile-builder.yaml or ~/.config/profile-builder/profile-builder.yaml)")
	flags.String("input", types.DefaultInputPath, "LinkedIn PDF export to read")
	flags.String("output", types.DefaultOutputPath, "JSON file to write")
	flags.String("backend", string(types.BackendNative), "text extraction backend: native or pdftotext")
	flags.String("vocabulary", "", "YAML file overriding section header and location vocabularies")
	flags.BoolP("verbose", "v", false, "verbose logging")

	for _, key := range []string{"input", "output", "backend", "vocabulary", "verbose"} {
		if err := viper.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(err)
		}
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("profile-builder")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "profile-builder"))
		}
	}

	viper.SetEnvPrefix("PROFILE_BUILDER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setupLogging(cmd *cobra.Command) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.RFC3339})
	if viper.GetBool("verbose") {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// buildConfig resolves the build settings from flags, environment and the
// config file, in viper's precedence order.
func buildConfig() types.BuildConfig {
	return types.BuildConfig{
		InputPath:      viper.GetString("input"),
		OutputPath:     viper.GetString("output"),
		Backend:        types.ExtractionBackend(viper.GetString("backend")),
		VocabularyPath: viper.GetString("vocabulary"),
	}.WithDefaults()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
