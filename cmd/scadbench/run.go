package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scadbench/scadbench/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Evaluate a single model against the task set",
	Run: func(cmd *cobra.Command, args []string) {
		model, _ := cmd.Flags().GetString("model")
		task, _ := cmd.Flags().GetString("task")

		opts, err := options(cmd, true)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}

		if err := cli.RunSingle(cmd.Context(), opts, model, task); err != nil {
			if !errors.Is(err, cli.ErrEvaluationFailed) {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("model", "", "Model identifier to evaluate")
	runCmd.Flags().String("task", "", "Run only this task (default: all registered tasks)")
	_ = runCmd.MarkFlagRequired("model")
}
