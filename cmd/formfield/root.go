package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const envLogLevel = "FORMFIELD_LOG_LEVEL"

// Execute loads .env, builds the command tree and runs it.
func Execute() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("could not load .env", "err", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "formfield"})
	return newRootCmd(logger).ExecuteContext(context.Background())
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	var level string
	rootCmd := &cobra.Command{
		Version:       os.Getenv("VERSION"),
		Use:           "formfield",
		Short:         "Render a labelled, validated form field.",
		Long:          "formfield renders a single form field from a field set or an OpenAPI component as HTML, a terminal prompt or an interactive input.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("log-level") {
				if env := strings.TrimSpace(os.Getenv(envLogLevel)); env != "" {
					level = env
				}
			}
			parsed, err := log.ParseLevel(level)
			if err != nil {
				return err
			}
			logger.SetLevel(parsed)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVar(&level, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		getRenderCmd(logger),
		getPromptCmd(logger),
		getEditCmd(logger),
		getKindsCmd(),
	)
	return rootCmd
}
