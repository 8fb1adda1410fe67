package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/salph"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available alphabets",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		catalog, err := salph.New()
		if err != nil {
			fatal("Error building catalog", err)
		}

		descriptions := catalog.Descriptions()

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(descriptions); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		fmt.Println("Available alphabets:")
		for _, name := range catalog.Names() {
			fmt.Printf("  - %s: %s\n", name, descriptions[name])
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
