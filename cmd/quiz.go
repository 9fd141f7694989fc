package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/LavenderBridge/jazzdrill/internal/drill"
	"github.com/LavenderBridge/jazzdrill/internal/theory"
)

var (
	quizCount      int
	quizDifficulty string
	quizKeys       string
	quizRoots      []string
	quizSymbols    []string
	quizTypes      []string
	quizDirection  string
)

var quizCmd = &cobra.Command{
	Use:   "quiz [chord|scale|interval|cadence|progression]",
	Short: "Start a drill",
	Long: `Start a drill in the terminal.

Type notes separated by spaces (e.g. "C E G Bb"). When a question asks
about every chord of a progression, separate the chords with "|".
Type "?" for a hint (each hint costs a quarter of the question's credit)
and "q" to abandon the quiz.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"chord", "scale", "interval", "cadence", "progression"},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := drill.ParseMode(args[0])
		if err != nil {
			return err
		}
		qc, err := quizConfigFromFlags(cmd)
		if err != nil {
			return err
		}

		engine, store, err := openEngine()
		if err != nil {
			return err
		}
		defer store.Close()

		s, err := engine.Start(mode, qc)
		if errors.Is(err, drill.ErrCannotStart) {
			fmt.Println("⚠️  No questions match those filters.")
			return nil
		}
		if err != nil {
			return err
		}
		return runQuiz(s, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(quizCmd)
	quizCmd.Flags().IntVarP(&quizCount, "count", "n", 0, "number of questions")
	quizCmd.Flags().StringVarP(&quizDifficulty, "difficulty", "d", "", "beginner, intermediate, advanced or expert")
	quizCmd.Flags().StringVarP(&quizKeys, "keys", "k", "", "key tier: easy, medium, hard, expert or all")
	quizCmd.Flags().StringSliceVarP(&quizRoots, "roots", "r", nil, "explicit roots (e.g. C,F,Bb)")
	quizCmd.Flags().StringSliceVarP(&quizSymbols, "symbols", "s", nil, "only these chord/scale/interval/progression symbols")
	quizCmd.Flags().StringSliceVarP(&quizTypes, "types", "t", nil, "only these question types")
	quizCmd.Flags().StringVar(&quizDirection, "direction", "", "interval direction: up, down or both")
}

// quizConfigFromFlags starts from the configured defaults and applies the
// flags that were set.
func quizConfigFromFlags(cmd *cobra.Command) (drill.QuizConfig, error) {
	qc := cfg.QuizDefaults()
	flags := cmd.Flags()

	if flags.Changed("count") {
		qc.Count = quizCount
	}
	if flags.Changed("difficulty") {
		d, err := theory.ParseDifficulty(quizDifficulty)
		if err != nil {
			return qc, err
		}
		qc.Difficulty = d
	}
	if flags.Changed("keys") {
		qc.KeyTier = drill.KeyTier(quizKeys)
	}
	qc.Roots = quizRoots
	qc.Symbols = quizSymbols
	for _, t := range quizTypes {
		qt := drill.QuestionType(t)
		if !qt.IsValid() {
			return qc, fmt.Errorf("unknown question type %q", t)
		}
		qc.QuestionTypes = append(qc.QuestionTypes, qt)
	}
	switch quizDirection {
	case "", "both":
	case "up":
		qc.Directions = []theory.Direction{theory.Up}
	case "down":
		qc.Directions = []theory.Direction{theory.Down}
	default:
		return qc, fmt.Errorf("direction must be up, down or both")
	}
	return qc, nil
}

// runQuiz drives an active session from line-based input until it completes
// or the user quits.
func runQuiz(s *drill.Session, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	for s.State() == drill.StateActive {
		q, err := s.Current()
		if err != nil {
			return err
		}
		idx, total := s.Progress()

		fmt.Fprintln(out, "\n========================================")
		fmt.Fprintf(out, "Question [%d/%d]: %s\n", idx+1, total, q.Prompt)
		if q.Type.Positional() {
			fmt.Fprintf(out, "(%d chords, separate them with |)\n", len(q.CorrectPositions))
		}
		fmt.Fprint(out, "> ")

		line, err := reader.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			s.Reset()
			fmt.Fprintln(out, "\n👋 Quiz abandoned.")
			return nil
		}
		line = strings.TrimSpace(line)

		switch line {
		case "":
			continue
		case "q", "quit":
			s.Reset()
			fmt.Fprintln(out, "👋 Quiz abandoned.")
			return nil
		case "?":
			h, err := s.Hint()
			if err != nil {
				fmt.Fprintln(out, "⚠️  No more hints for this question.")
				continue
			}
			fmt.Fprintf(out, "💡 Hint %d: %s\n", h.Level, h.Text)
			continue
		}

		answer, err := parseAnswer(q, line)
		if err != nil {
			fmt.Fprintln(out, "⚠️ ", err)
			continue
		}

		fb, err := s.Submit(answer)
		if err != nil {
			return err
		}
		if fb.Correct {
			fmt.Fprintln(out, "✅ Correct!")
		} else {
			sep := " "
			if q.Type.Positional() {
				sep = " | "
			}
			fmt.Fprintf(out, "❌ Expected: %s\n", strings.Join(fb.Expected, sep))
		}
		if fb.Completed {
			printOutcome(out, fb.Outcome)
		}
	}
	return nil
}

func parseAnswer(q *drill.Question, line string) (drill.Answer, error) {
	if !q.Type.Positional() {
		ns, err := theory.ParseNotes(line)
		return drill.Answer{Notes: ns}, err
	}
	parts := strings.Split(line, "|")
	a := drill.Answer{Positions: make([][]theory.Note, len(parts))}
	for i, p := range parts {
		ns, err := theory.ParseNotes(p)
		if err != nil {
			return drill.Answer{}, err
		}
		a.Positions[i] = ns
	}
	return a, nil
}

func printOutcome(out io.Writer, o *drill.Outcome) {
	if o == nil {
		return
	}
	r := o.Result
	fmt.Fprintln(out, "\n🎉 Quiz complete!")
	fmt.Fprintf(out, "Score:   %d/%d (%.0f%%)\n", r.Correct, r.Total, r.Accuracy*100)
	fmt.Fprintf(out, "Time:    %s\n", r.TotalTime.Round(time.Second))
	fmt.Fprintf(out, "Rating:  %+d → %d (%s)\n", r.RatingDelta, o.Rating.After, o.Rating.RankAfter.Title)
	if o.Rating.DidRankUp {
		fmt.Fprintf(out, "🏆 Rank up! You are now a %s.\n", o.Rating.RankAfter.Title)
	}
	if o.LeaderboardRank > 0 {
		fmt.Fprintf(out, "🥇 Leaderboard position #%d\n", o.LeaderboardRank)
	}
	if !o.Saved {
		fmt.Fprintln(out, "⚠️  Progress could not be saved.")
	}
}
