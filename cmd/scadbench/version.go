package main

import (
	"fmt"

	"github.com/scadbench/scadbench"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of scadbench",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("scadbench version %s\n", scadbench.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
