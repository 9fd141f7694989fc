package theory

import "fmt"

type degreeInfo struct {
	semitones int
	name      string
}

var degrees = map[string]degreeInfo{
	"1":   {0, "Root"},
	"b2":  {1, "Flat 2nd"},
	"2":   {2, "2nd"},
	"#2":  {3, "Sharp 2nd"},
	"b3":  {3, "Minor 3rd"},
	"3":   {4, "Major 3rd"},
	"4":   {5, "Perfect 4th"},
	"#4":  {6, "Sharp 4th"},
	"b5":  {6, "Flat 5th"},
	"5":   {7, "Perfect 5th"},
	"#5":  {8, "Sharp 5th"},
	"b6":  {8, "Flat 6th"},
	"6":   {9, "6th"},
	"bb7": {9, "Diminished 7th"},
	"b7":  {10, "Minor 7th"},
	"7":   {11, "Major 7th"},
	"8":   {12, "Octave"},
	"b9":  {13, "Flat 9th"},
	"9":   {14, "9th"},
	"#9":  {15, "Sharp 9th"},
	"11":  {17, "11th"},
	"#11": {18, "Sharp 11th"},
	"b13": {20, "Flat 13th"},
	"13":  {21, "13th"},
}

// Flats on the third and seventh define chord quality; every other accidental
// is an alteration.
var qualityAccidentals = map[string]bool{"b3": true, "b7": true, "bb7": true}

// tones expands degree labels into tone specs. Unknown labels are a seed-data
// bug and panic at catalog construction.
func tones(labels ...string) []ToneSpec {
	out := make([]ToneSpec, 0, len(labels))
	for _, l := range labels {
		info, ok := degrees[l]
		if !ok {
			panic(fmt.Sprintf("theory: unknown degree %q", l))
		}
		out = append(out, ToneSpec{
			Degree:    l,
			Name:      info.name,
			Semitones: info.semitones,
			Altered:   (l[0] == 'b' || l[0] == '#') && !qualityAccidentals[l],
		})
	}
	return out
}
