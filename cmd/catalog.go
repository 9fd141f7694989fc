package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/jazzdrill/internal/theory"
)

var catalogDifficulty string

var catalogCmd = &cobra.Command{
	Use:       "catalog [chords|scales|intervals|progressions]",
	Short:     "List the chord, scale, interval or progression catalog",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"chords", "scales", "intervals", "progressions"},
	RunE: func(cmd *cobra.Command, args []string) error {
		var upTo theory.Difficulty = theory.Expert
		if catalogDifficulty != "" {
			d, err := theory.ParseDifficulty(catalogDifficulty)
			if err != nil {
				return err
			}
			upTo = d
		}
		lib, err := theory.NewLibrary(logger.Named("theory"))
		if err != nil {
			return err
		}
		return listCatalog(lib, os.Stdout, args[0], upTo)
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringVarP(&catalogDifficulty, "difficulty", "d", "", "only entries up to this difficulty")
}

func listCatalog(lib *theory.Library, out io.Writer, kind string, upTo theory.Difficulty) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	if kind == "progressions" {
		fmt.Fprintln(w, "Symbol\tName\tChords\tDifficulty")
		fmt.Fprintln(w, "------\t----\t------\t----------")
		for _, p := range lib.Progressions.UpTo(upTo) {
			steps := make([]string, len(p.Steps))
			for i, s := range p.Steps {
				steps[i] = s.Numeral + s.Quality
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Symbol, p.Name, strings.Join(steps, " "), p.Difficulty)
		}
		return w.Flush()
	}

	cat, ok := lib.Catalog(theory.Kind(strings.TrimSuffix(kind, "s")))
	if !ok {
		return fmt.Errorf("unknown catalog %q", kind)
	}
	fmt.Fprintln(w, "Symbol\tName\tFormula\tDifficulty")
	fmt.Fprintln(w, "------\t----\t-------\t----------")
	for _, t := range cat.UpTo(upTo) {
		degrees := make([]string, len(t.Tones))
		for i, tone := range t.Tones {
			degrees[i] = tone.Degree
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.Symbol, t.Name, strings.Join(degrees, " "), t.Difficulty)
	}
	return w.Flush()
}
