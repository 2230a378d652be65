package main

import (
	"fmt"
	"os"

	"github.com/scadbench/scadbench/internal/cli"
	"github.com/scadbench/scadbench/internal/config"
	"github.com/scadbench/scadbench/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scadbench",
	Short: "scadbench benchmarks language models on parametric CAD generation",
	Long: `scadbench asks language models to produce OpenSCAD scripts for
mechanical part specifications and scores each attempt by rendering the
script with the external OpenSCAD binary from multiple camera views.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("output-root", "evals/results", "Root directory for run artifacts")
	rootCmd.PersistentFlags().String("openscad", "", "Path to the openscad binary (default: openscad on PATH)")
	rootCmd.PersistentFlags().String("base-url", "", "OpenAI-compatible API base URL (default: OpenRouter)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}

// options resolves shared flags and the environment into an explicit config
// struct. Only this outermost layer touches the environment; withCredential
// controls whether the API key is required.
func options(cmd *cobra.Command, withCredential bool) (cli.Options, error) {
	outputRoot, _ := cmd.Flags().GetString("output-root")
	binary, _ := cmd.Flags().GetString("openscad")
	baseURL, _ := cmd.Flags().GetString("base-url")
	logLevel, _ := cmd.Flags().GetString("log-level")

	opts := cli.Options{
		BaseURL:     baseURL,
		OutputRoot:  outputRoot,
		OpenSCADBin: binary,
		LogLevel:    logLevel,
	}

	if withCredential {
		config.LoadEnv(logging.New(logging.ParseLevel(logLevel)))
		key, err := config.APIKey()
		if err != nil {
			return cli.Options{}, err
		}
		opts.APIKey = key
	}

	return opts, nil
}
