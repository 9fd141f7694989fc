package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/jazzdrill/internal/theory"
)

var spellDown bool

var spellCmd = &cobra.Command{
	Use:   "spell [chord|scale|interval|progression] [root] [symbol]",
	Short: "Spell a chord, scale, interval or progression",
	Example: `  jazzdrill spell chord D 7b9
  jazzdrill spell scale Eb dorian
  jazzdrill spell interval C m3 --down
  jazzdrill spell progression F bird`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := theory.NewLibrary(logger.Named("theory"))
		if err != nil {
			return err
		}
		return spell(lib, os.Stdout, args[0], args[1], args[2], spellDown)
	},
}

func init() {
	rootCmd.AddCommand(spellCmd)
	spellCmd.Flags().BoolVar(&spellDown, "down", false, "build the interval downward")
}

func spell(lib *theory.Library, out io.Writer, kind, rootName, symbol string, down bool) error {
	root, err := theory.ParseNote(rootName)
	if err != nil {
		return err
	}

	if kind == "progression" {
		t, ok := lib.Progressions.BySymbol(symbol)
		if !ok {
			return fmt.Errorf("%w: progression %q", theory.ErrUnknownSymbol, symbol)
		}
		p := lib.BuildProgression(root, t, nil)
		fmt.Fprintf(out, "%s in %s: %s\n", t.Name, root.Name, p)
		for i, c := range p.Chords {
			fmt.Fprintf(out, "  %-5s %-8s %s\n", p.Numerals[i], c.Symbol(), joinNames(c.Notes))
		}
		return nil
	}

	cat, ok := lib.Catalog(theory.Kind(kind))
	if !ok {
		return fmt.Errorf("unknown kind %q (chord, scale, interval or progression)", kind)
	}
	t, ok := cat.BySymbol(symbol)
	if !ok {
		return fmt.Errorf("%w: %s %q", theory.ErrUnknownSymbol, kind, symbol)
	}

	var in theory.Instance
	switch t.Kind {
	case theory.KindScale:
		in = theory.BuildScale(root, t)
	case theory.KindInterval:
		dir := theory.Up
		if down {
			dir = theory.Down
		}
		in = theory.BuildInterval(root, t, dir)
	default:
		in = theory.BuildChord(root, t)
	}

	fmt.Fprintf(out, "%s (%s)\n", in.Symbol(), t.Name)
	fmt.Fprintf(out, "  Notes:   %s\n", joinNames(in.Notes))
	fmt.Fprintf(out, "  Formula: %s\n", strings.Join(in.Formula(), " "))
	if t.Kind == theory.KindChord {
		if gt := in.GuideTones(); len(gt) > 0 {
			fmt.Fprintf(out, "  Guide:   %s\n", joinNames(gt))
		}
	}
	return nil
}

func joinNames(ns []theory.Note) string {
	names := make([]string, len(ns))
	for i, n := range ns {
		names[i] = n.Name
	}
	return strings.Join(names, " ")
}
