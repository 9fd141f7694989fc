package theory

import (
	"fmt"
	"strconv"
	"strings"
)

// Note is a pitch with a display spelling. Catalog notes live in the base
// octave (MIDI 60-71); parsed answers may sit in any octave.
type Note struct {
	Name string `json:"name"`
	MIDI int    `json:"midi"`
}

// baseMIDI is C in the base octave (C4).
const baseMIDI = 60

// Octaves accepted by ParseNote, covering MIDI 0..127.
const (
	MinOctave = -1
	MaxOctave = 9
)

// notes is the spelling catalog. Enharmonic pairs share a pitch class.
var notes = []Note{
	{"C", 60}, {"C#", 61}, {"Db", 61}, {"D", 62}, {"D#", 63}, {"Eb", 63},
	{"E", 64}, {"F", 65}, {"F#", 66}, {"Gb", 66}, {"G", 67}, {"G#", 68},
	{"Ab", 68}, {"A", 69}, {"A#", 70}, {"Bb", 70}, {"B", 71},
}

// Notes returns the base-octave spelling catalog.
func Notes() []Note {
	out := make([]Note, len(notes))
	copy(out, notes)
	return out
}

// PitchClass returns the note's identity modulo octave, 0..11.
func (n Note) PitchClass() int {
	return mod12(n.MIDI)
}

// SamePitch reports whether n and o are interchangeable as answers.
func (n Note) SamePitch(o Note) bool {
	return n.PitchClass() == o.PitchClass()
}

// Octave returns the scientific octave number (MIDI 60 is octave 4).
func (n Note) Octave() int {
	return floorDiv(n.MIDI, 12) - 1
}

// IsSharp reports whether the spelling carries a sharp.
func (n Note) IsSharp() bool { return strings.Contains(n.Name, "#") }

// IsFlat reports whether the spelling carries a flat.
func (n Note) IsFlat() bool { return len(n.Name) > 1 && strings.HasSuffix(n.Name, "b") }

func (n Note) String() string { return n.Name }

// NoteByName returns the base-octave catalog note spelled name.
func NoteByName(name string) (Note, bool) {
	name = normalizeAccidentals(strings.TrimSpace(name))
	for _, n := range notes {
		if strings.EqualFold(n.Name, name) && (len(name) < 2 || name[1:] == n.Name[1:]) {
			return n, true
		}
	}
	return Note{}, false
}

// MustNote is NoteByName for seed data and tests; it panics on a bad name.
func MustNote(name string) Note {
	n, ok := NoteByName(name)
	if !ok {
		panic(fmt.Sprintf("theory: unknown note %q", name))
	}
	return n
}

// ParseNote parses spellings like "Eb", "F#3", "bb5" or "E♭". A missing octave
// means the base octave.
func ParseNote(s string) (Note, error) {
	s = normalizeAccidentals(strings.TrimSpace(s))
	if s == "" {
		return Note{}, fmt.Errorf("%w: empty", ErrUnknownNote)
	}

	split := 1
	if len(s) > 1 && (s[1] == '#' || s[1] == 'b') {
		split = 2
	}
	name := strings.ToUpper(s[:1]) + s[1:split]
	n, ok := NoteByName(name)
	if !ok {
		return Note{}, fmt.Errorf("%w: %q", ErrUnknownNote, s)
	}
	if split == len(s) {
		return n, nil
	}

	octave, err := strconv.Atoi(s[split:])
	if err != nil || octave < MinOctave || octave > MaxOctave {
		return Note{}, fmt.Errorf("%w: bad octave in %q", ErrUnknownNote, s)
	}
	n.MIDI = (octave+1)*12 + n.PitchClass()
	return n, nil
}

// ParseNotes parses a whitespace or comma separated list of notes.
func ParseNotes(s string) ([]Note, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	out := make([]Note, 0, len(fields))
	for _, f := range fields {
		n, err := ParseNote(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Transpose moves root by semitones and returns the base-octave catalog
// spelling of the result. With two spellings available, preferSharps picks
// between them; with none, root comes back unchanged.
func Transpose(root Note, semitones int, preferSharps bool) Note {
	pc := mod12(root.MIDI + semitones)

	var candidates []Note
	for _, n := range notes {
		if n.PitchClass() == pc {
			candidates = append(candidates, n)
		}
	}
	switch len(candidates) {
	case 0:
		return root
	case 1:
		return candidates[0]
	}
	for _, c := range candidates {
		if preferSharps && c.IsSharp() || !preferSharps && c.IsFlat() {
			return c
		}
	}
	return candidates[0]
}

// PitchClassSet is a set of pitch classes, one bit per class.
type PitchClassSet uint16

// PitchClassesOf returns the octave-agnostic set of the given notes.
func PitchClassesOf(ns ...Note) PitchClassSet {
	var s PitchClassSet
	for _, n := range ns {
		s = s.Add(n.PitchClass())
	}
	return s
}

// Add returns s with pc included.
func (s PitchClassSet) Add(pc int) PitchClassSet {
	return s | 1<<uint(mod12(pc))
}

// Has reports whether pc is in s.
func (s PitchClassSet) Has(pc int) bool {
	return s&(1<<uint(mod12(pc))) != 0
}

// Len returns the number of distinct pitch classes.
func (s PitchClassSet) Len() int {
	n := 0
	for pc := 0; pc < 12; pc++ {
		if s.Has(pc) {
			n++
		}
	}
	return n
}

// Intersect returns the classes present in both sets.
func (s PitchClassSet) Intersect(o PitchClassSet) PitchClassSet { return s & o }

// Classes lists the members in ascending order.
func (s PitchClassSet) Classes() []int {
	var out []int
	for pc := 0; pc < 12; pc++ {
		if s.Has(pc) {
			out = append(out, pc)
		}
	}
	return out
}

func normalizeAccidentals(s string) string {
	return strings.NewReplacer("♯", "#", "♭", "b").Replace(s)
}

func mod12(v int) int {
	return ((v % 12) + 12) % 12
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
