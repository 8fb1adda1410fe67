package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/salph"
	"github.com/aretw0/salph/pkg/core"
)

var (
	verbose      bool
	alphabetName string
	separator    string
	noColor      bool
	asJSON       bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "salph [sentence...]",
	Short: "Spell out text with a spelling alphabet",
	Long: `Salph translates text into codewords from a spelling alphabet,
letter by letter ("cat" becomes Charlie Alfa Tango under nato).

The sentence is taken from the arguments, or read line by line from
standard input when no arguments are given.`,
	Args: cobra.ArbitraryArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; real environment variables win either way.
		_ = godotenv.Load()

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		catalog, err := salph.New(salph.WithLogger(slog.Default()))
		if err != nil {
			fatal("Error building catalog", err)
		}

		translations, err := translateInput(catalog, selectedAlphabet(), args)
		if err != nil {
			fatal("Error", err)
		}

		if asJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(translations); err != nil {
				fatal("Error encoding JSON", err)
			}
			return
		}

		if noColor {
			color.Disable()
		}
		printTable(translations)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().StringVarP(&alphabetName, "alphabet", "a", "", `Alphabet to use (default: $SALPH, or "nato")`)
	rootCmd.Flags().StringVarP(&separator, "separator", "S", " ", "Separator between codewords")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
}

// selectedAlphabet resolves the alphabet name from the flag, the SALPH
// environment variable, or the default, in that order.
func selectedAlphabet() string {
	if alphabetName != "" {
		return alphabetName
	}
	if env := os.Getenv("SALPH"); env != "" {
		return env
	}
	return "nato"
}

// translateInput spells out the argument sentence, or every line of
// stdin when no arguments are given.
func translateInput(catalog *salph.Catalog, name string, args []string) ([]core.Translation, error) {
	if len(args) > 0 {
		tr, err := catalog.Translate(name, strings.Join(args, " "))
		if err != nil {
			return nil, err
		}
		return []core.Translation{tr}, nil
	}

	var translations []core.Translation
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		tr, err := catalog.Translate(name, scanner.Text())
		if err != nil {
			return nil, err
		}
		translations = append(translations, tr)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return translations, nil
}

// printTable renders one aligned row per input word: the original word
// followed by its codewords. Letter codewords are green, digit
// codewords yellow, the word itself cyan.
func printTable(translations []core.Translation) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	wordStyle := color.Style{color.FgCyan, color.OpBold}

	for _, tr := range translations {
		for _, word := range tr.Words {
			codewords := make([]string, 0, len(word.Letters))
			for _, l := range word.Letters {
				switch {
				case !l.Spelled():
					// unmapped characters contribute no codeword
				case l.Digit:
					codewords = append(codewords, color.Yellow.Render(l.Codeword))
				default:
					codewords = append(codewords, color.Green.Render(l.Codeword))
				}
			}
			fmt.Fprintf(w, "%s\t%s\n", wordStyle.Render(word.Original), strings.Join(codewords, separator))
		}
	}
	w.Flush()
}
