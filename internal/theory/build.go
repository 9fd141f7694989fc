package theory

import (
	"fmt"
	"math/rand"
	"strings"

	"go.uber.org/zap"
)

// Direction is the direction an interval is built in.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Down {
		return "down"
	}
	return "up"
}

// Instance is a template realized on a root. Notes[i] spells Template.Tones[i].
type Instance struct {
	Root      Note      `json:"root"`
	Template  *Template `json:"-"`
	Direction Direction `json:"direction"`
	Notes     []Note    `json:"notes"`
}

// Symbol is the compact display name, e.g. "Cmaj7", "D dorian", "C m3 up".
func (in Instance) Symbol() string {
	if in.Template == nil {
		return in.Root.Name
	}
	switch in.Template.Kind {
	case KindScale:
		return in.Root.Name + " " + in.Template.Symbol
	case KindInterval:
		return fmt.Sprintf("%s %s %s", in.Root.Name, in.Template.Symbol, in.Direction)
	}
	if in.Template.Symbol == "maj" {
		return in.Root.Name
	}
	return in.Root.Name + in.Template.Symbol
}

// ToneByDegree returns the note spelling the given degree label.
func (in Instance) ToneByDegree(degree string) (Note, bool) {
	for i, t := range in.Template.Tones {
		if t.Degree == degree {
			return in.Notes[i], true
		}
	}
	return Note{}, false
}

// GuideTones returns the 3rd and 7th. A chord without a 7th uses its 6th.
func (in Instance) GuideTones() []Note {
	var out []Note
	for _, deg := range []string{"3", "b3"} {
		if n, ok := in.ToneByDegree(deg); ok {
			out = append(out, n)
			break
		}
	}
	for _, deg := range []string{"7", "b7", "bb7", "6"} {
		if n, ok := in.ToneByDegree(deg); ok {
			out = append(out, n)
			break
		}
	}
	return out
}

// Formula lists the degree labels.
func (in Instance) Formula() []string {
	out := make([]string, len(in.Template.Tones))
	for i, t := range in.Template.Tones {
		out[i] = t.Degree
	}
	return out
}

// Intervals lists semitone distances from the root, negative when built down.
func (in Instance) Intervals() []int {
	out := make([]int, len(in.Template.Tones))
	for i, t := range in.Template.Tones {
		out[i] = t.Semitones
		if in.Direction == Down {
			out[i] = -t.Semitones
		}
	}
	return out
}

// PitchClasses returns the octave-agnostic set of the instance's notes.
func (in Instance) PitchClasses() PitchClassSet {
	return PitchClassesOf(in.Notes...)
}

var sharpRoots = map[string]bool{"B": true, "E": true, "A": true, "D": true, "G": true}

var sharpMajorKeys = map[string]bool{"G": true, "D": true, "A": true, "E": true, "B": true, "F#": true, "C#": true}

func chordPrefersSharps(root Note) bool {
	return root.IsSharp() || sharpRoots[root.Name]
}

// Minor-family scales spell like their relative major, named in the root's
// own accidental so Bb minor relates to Db rather than C#.
func scalePrefersSharps(root Note, t *Template) bool {
	if t.IsMinor() {
		return sharpMajorKeys[Transpose(root, 3, root.IsSharp()).Name]
	}
	return chordPrefersSharps(root)
}

func build(root Note, t *Template, dir Direction, preferSharps bool) Instance {
	in := Instance{
		Root:      root,
		Template:  t,
		Direction: dir,
		Notes:     make([]Note, len(t.Tones)),
	}
	for i, tone := range t.Tones {
		semis := tone.Semitones
		if dir == Down {
			semis = -semis
		}
		in.Notes[i] = Transpose(root, semis, preferSharps)
		if mod12(semis) == 0 {
			// the root keeps the spelling it was asked in
			if n, ok := NoteByName(root.Name); ok {
				in.Notes[i] = n
			}
		}
	}
	return in
}

// BuildChord realizes a chord type on root.
func BuildChord(root Note, t *Template) Instance {
	return build(root, t, Up, chordPrefersSharps(root))
}

// BuildScale realizes a scale type on root.
func BuildScale(root Note, t *Template) Instance {
	return build(root, t, Up, scalePrefersSharps(root, t))
}

// BuildInterval realizes an interval type from root in the given direction.
func BuildInterval(root Note, t *Template, dir Direction) Instance {
	return build(root, t, dir, chordPrefersSharps(root))
}

// Progression is a progression template realized in a key.
type Progression struct {
	Key      Note                 `json:"key"`
	Template *ProgressionTemplate `json:"-"`
	Numerals []string             `json:"numerals"`
	Chords   []Instance           `json:"chords"`
}

// Symbols returns the chord symbols in order.
func (p Progression) Symbols() []string {
	out := make([]string, len(p.Chords))
	for i, c := range p.Chords {
		out[i] = c.Symbol()
	}
	return out
}

func (p Progression) String() string {
	return strings.Join(p.Symbols(), " | ")
}

// minorDominantFlatNine is the share of minor-cadence dominants built as 7b9.
const minorDominantFlatNine = 0.8

// fallbackTriad stands in when neither the requested quality nor "maj" exists.
var fallbackTriad = &Template{Kind: KindChord, Name: "Major Triad", Symbol: "maj", Tones: tones("1", "3", "5"), Difficulty: Beginner}

// BuildProgression realizes a progression in key. rng drives the minor
// cadence's dominant choice; a nil rng keeps the template quality.
func (l *Library) BuildProgression(key Note, t *ProgressionTemplate, rng *rand.Rand) Progression {
	p := Progression{
		Key:      key,
		Template: t,
		Numerals: make([]string, len(t.Steps)),
		Chords:   make([]Instance, len(t.Steps)),
	}
	keySharps := chordPrefersSharps(key)

	for i, step := range t.Steps {
		off, err := NumeralOffset(step.Numeral)
		if err != nil {
			l.log.Warn("unresolvable numeral, using tonic", zap.String("progression", t.Symbol), zap.String("numeral", step.Numeral))
		}
		sharps := keySharps
		if strings.HasPrefix(step.Numeral, "b") {
			sharps = false
		}
		root := Transpose(key, off, sharps)

		quality := step.Quality
		if t.Kind == ProgressionMinor && step.Numeral == "V" && rng != nil {
			if rng.Float64() < minorDominantFlatNine {
				quality = "7b9"
			} else {
				quality = "7"
			}
		}

		p.Numerals[i] = step.Numeral
		p.Chords[i] = BuildChord(root, l.chordOrFallback(quality, t.Symbol))
	}
	return p
}

func (l *Library) chordOrFallback(symbol, progression string) *Template {
	if ct, ok := l.Chords.BySymbol(symbol); ok {
		return ct
	}
	l.log.Warn("chord quality missing from catalog, using major triad",
		zap.String("symbol", symbol), zap.String("progression", progression))
	if ct, ok := l.Chords.BySymbol("maj"); ok {
		return ct
	}
	return fallbackTriad
}
