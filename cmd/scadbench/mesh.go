package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scadbench/scadbench/internal/cli"
	"github.com/spf13/cobra"
)

var meshCmd = &cobra.Command{
	Use:   "mesh",
	Short: "Evaluate every configured model against the task set",
	Long: `Reads the models list from a JSON document ({"models": [...]}) and runs
each model against every registered task (or one filtered task), printing a
per-model status line and a final aggregate summary. Exits 1 if any
evaluation failed.`,
	Run: func(cmd *cobra.Command, args []string) {
		modelsPath, _ := cmd.Flags().GetString("models")
		task, _ := cmd.Flags().GetString("task")
		metricsAddr, _ := cmd.Flags().GetString("metrics-addr")

		opts, err := options(cmd, true)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		opts.MetricsAddr = metricsAddr

		if err := cli.RunMesh(cmd.Context(), opts, modelsPath, task); err != nil {
			if !errors.Is(err, cli.ErrEvaluationFailed) {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(meshCmd)

	meshCmd.Flags().String("models", "evals/models.json", "Path to the models list document")
	meshCmd.Flags().String("task", "", "Run only this task (default: all registered tasks)")
	meshCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address during the run")
}
