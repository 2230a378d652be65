package main

import (
	"fmt"
	"os"

	"github.com/scadbench/scadbench/internal/cli"
	"github.com/spf13/cobra"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the registered benchmark tasks",
	Run: func(cmd *cobra.Command, args []string) {
		opts, err := options(cmd, false)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		cli.ListTasks(opts)
	},
}

func init() {
	rootCmd.AddCommand(tasksCmd)
}
