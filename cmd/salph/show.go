package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/salph"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show the contents of an alphabet",
	Long:  `Show the full character-to-codeword table of an alphabet, letters first, then digits.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalog, err := salph.New()
		if err != nil {
			fatal("Error building catalog", err)
		}

		entries, err := catalog.Describe(args[0])
		if err != nil {
			fatal("Error", err)
		}

		if showJSON {
			table := make(map[string]string, len(entries))
			for _, e := range entries {
				table[string(e.Char)] = e.Codeword
			}
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(table); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, e := range entries {
			fmt.Fprintf(w, "%c\t%s\n", e.Char, e.Codeword)
		}
		w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
