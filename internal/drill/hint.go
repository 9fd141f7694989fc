package drill

import (
	"fmt"
	"strings"
)

// MaxHints is the number of hint levels per question.
const MaxHints = 3

// hintPenalty is the credit removed per hint taken.
const hintPenalty = 0.25

// Hint is one progressively stronger clue.
type Hint struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// credit is the share of a point a correct answer earns after hints.
func credit(correct bool, hints int) float64 {
	if !correct {
		return 0
	}
	c := 1 - hintPenalty*float64(hints)
	if c < 0 {
		return 0
	}
	return c
}

// hintFor builds the level-th hint: 1 the formula, 2 the intervals, 3 the root.
func hintFor(q *Question, level int) Hint {
	h := Hint{Level: level}
	if q.Progression != nil {
		p := q.Progression
		switch level {
		case 1:
			steps := make([]string, len(p.Template.Steps))
			for i, s := range p.Template.Steps {
				steps[i] = s.Numeral + " " + s.Quality
			}
			h.Text = "Formula: " + strings.Join(steps, " - ")
		case 2:
			offs := make([]string, len(p.Chords))
			for i, c := range p.Chords {
				offs[i] = fmt.Sprintf("%+d", (c.Root.PitchClass()-p.Key.PitchClass()+12)%12)
			}
			h.Text = "Roots sit " + strings.Join(offs, ", ") + " semitones above the key"
		default:
			roots := make([]string, len(p.Chords))
			for i, c := range p.Chords {
				roots[i] = c.Root.Name
			}
			h.Text = "Roots: " + strings.Join(roots, " ")
		}
		return h
	}

	in := q.Instance
	if in == nil {
		h.Text = "No hint available"
		return h
	}
	switch level {
	case 1:
		h.Text = "Formula: " + strings.Join(in.Formula(), " ")
	case 2:
		semis := make([]string, 0, len(in.Template.Tones))
		for _, s := range in.Intervals() {
			semis = append(semis, fmt.Sprintf("%d", s))
		}
		h.Text = "Semitones from the root: " + strings.Join(semis, " ")
	default:
		h.Text = "Root: " + in.Root.Name
	}
	return h
}
