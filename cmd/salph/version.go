package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/salph"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of salph",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("salph version %s\n", salph.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
