package theory

func interval(name, symbol string, semitones int, d Difficulty) Template {
	return Template{
		Name:   name,
		Symbol: symbol,
		Tones: []ToneSpec{
			{Degree: "1", Name: "Root", Semitones: 0},
			{Degree: symbol, Name: name, Semitones: semitones},
		},
		Difficulty:  d,
		Description: name + " above or below the root",
	}
}

// IntervalSeed is the fixed interval table, unison through minor ninth.
var IntervalSeed = []Template{
	interval("Perfect Unison", "P1", 0, Beginner),
	interval("Major 2nd", "M2", 2, Beginner),
	interval("Major 3rd", "M3", 4, Beginner),
	interval("Perfect 4th", "P4", 5, Beginner),
	interval("Perfect 5th", "P5", 7, Beginner),
	interval("Perfect Octave", "P8", 12, Beginner),

	interval("Minor 2nd", "m2", 1, Intermediate),
	interval("Minor 3rd", "m3", 3, Intermediate),
	interval("Major 6th", "M6", 9, Intermediate),
	interval("Minor 7th", "m7", 10, Intermediate),

	interval("Tritone", "TT", 6, Advanced),
	interval("Minor 6th", "m6", 8, Advanced),
	interval("Major 7th", "M7", 11, Advanced),

	interval("Minor 9th", "m9", 13, Expert),
}
