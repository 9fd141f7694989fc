package theory

// ChordSeed is the fixed chord-type table.
var ChordSeed = []Template{
	{Name: "Major Triad", Symbol: "maj", Tones: tones("1", "3", "5"), Difficulty: Beginner, Description: "Root, major third and perfect fifth"},
	{Name: "Minor Triad", Symbol: "m", Tones: tones("1", "b3", "5"), Difficulty: Beginner, Description: "Root, minor third and perfect fifth"},
	{Name: "Dominant 7th", Symbol: "7", Tones: tones("1", "3", "5", "b7"), Difficulty: Beginner, Description: "Major triad with a minor seventh"},
	{Name: "Major 7th", Symbol: "maj7", Tones: tones("1", "3", "5", "7"), Difficulty: Beginner, Description: "Major triad with a major seventh"},
	{Name: "Minor 7th", Symbol: "m7", Tones: tones("1", "b3", "5", "b7"), Difficulty: Beginner, Description: "Minor triad with a minor seventh"},

	{Name: "Half-Diminished", Symbol: "m7b5", Tones: tones("1", "b3", "b5", "b7"), Difficulty: Intermediate, Description: "The ii chord of a minor ii-V-i"},
	{Name: "Diminished 7th", Symbol: "dim7", Tones: tones("1", "b3", "b5", "bb7"), Difficulty: Intermediate, Description: "Stacked minor thirds"},
	{Name: "Diminished Triad", Symbol: "dim", Tones: tones("1", "b3", "b5"), Difficulty: Intermediate, Description: "Two stacked minor thirds"},
	{Name: "Augmented Triad", Symbol: "aug", Tones: tones("1", "3", "#5"), Difficulty: Intermediate, Description: "Two stacked major thirds"},
	{Name: "Major 6th", Symbol: "6", Tones: tones("1", "3", "5", "6"), Difficulty: Intermediate, Description: "Major triad with an added sixth"},
	{Name: "Minor 6th", Symbol: "m6", Tones: tones("1", "b3", "5", "6"), Difficulty: Intermediate, Description: "Minor triad with a major sixth"},
	{Name: "Suspended 4th", Symbol: "sus4", Tones: tones("1", "4", "5"), Difficulty: Intermediate, Description: "Fourth replaces the third"},
	{Name: "Dominant 7th sus4", Symbol: "7sus4", Tones: tones("1", "4", "5", "b7"), Difficulty: Intermediate, Description: "Suspended dominant"},
	{Name: "Minor-Major 7th", Symbol: "mMaj7", Tones: tones("1", "b3", "5", "7"), Difficulty: Intermediate, Description: "Minor triad with a major seventh"},

	{Name: "Dominant 9th", Symbol: "9", Tones: tones("1", "3", "5", "b7", "9"), Difficulty: Advanced, Description: "Dominant seventh with a ninth"},
	{Name: "Major 9th", Symbol: "maj9", Tones: tones("1", "3", "5", "7", "9"), Difficulty: Advanced, Description: "Major seventh with a ninth"},
	{Name: "Minor 9th", Symbol: "m9", Tones: tones("1", "b3", "5", "b7", "9"), Difficulty: Advanced, Description: "Minor seventh with a ninth"},
	{Name: "Dominant 7th flat 9", Symbol: "7b9", Tones: tones("1", "3", "5", "b7", "b9"), Difficulty: Advanced, Description: "The V of a minor ii-V-i"},
	{Name: "Dominant 7th sharp 9", Symbol: "7#9", Tones: tones("1", "3", "5", "b7", "#9"), Difficulty: Advanced, Description: "The Hendrix chord"},
	{Name: "Dominant 7th flat 5", Symbol: "7b5", Tones: tones("1", "3", "b5", "b7"), Difficulty: Advanced, Description: "Dominant with a lowered fifth"},
	{Name: "Dominant 7th sharp 5", Symbol: "7#5", Tones: tones("1", "3", "#5", "b7"), Difficulty: Advanced, Description: "Augmented dominant"},
	{Name: "Six-Nine", Symbol: "6/9", Tones: tones("1", "3", "5", "6", "9"), Difficulty: Advanced, Description: "Major sixth with an added ninth"},
	{Name: "Major 7th sharp 5", Symbol: "maj7#5", Tones: tones("1", "3", "#5", "7"), Difficulty: Advanced, Description: "Augmented major seventh"},

	{Name: "Dominant 11th", Symbol: "11", Tones: tones("1", "3", "5", "b7", "9", "11"), Difficulty: Expert, Description: "Dominant ninth with an eleventh"},
	{Name: "Minor 11th", Symbol: "m11", Tones: tones("1", "b3", "5", "b7", "9", "11"), Difficulty: Expert, Description: "Minor ninth with an eleventh"},
	{Name: "Dominant 13th", Symbol: "13", Tones: tones("1", "3", "5", "b7", "9", "13"), Difficulty: Expert, Description: "Dominant ninth with a thirteenth"},
	{Name: "Major 7th sharp 11", Symbol: "maj7#11", Tones: tones("1", "3", "5", "7", "#11"), Difficulty: Expert, Description: "Lydian major seventh"},
	{Name: "Dominant 7th sharp 11", Symbol: "7#11", Tones: tones("1", "3", "5", "b7", "#11"), Difficulty: Expert, Description: "Lydian dominant"},
	{Name: "Dominant 7th flat 13", Symbol: "7b13", Tones: tones("1", "3", "5", "b7", "b13"), Difficulty: Expert, Description: "Dominant with a lowered thirteenth"},
	{Name: "Altered Dominant", Symbol: "7alt", Tones: tones("1", "3", "b7", "b9", "#9", "b13"), Difficulty: Expert, Description: "Dominant with altered fifth and ninth"},
	{Name: "Dominant 13th flat 9", Symbol: "13b9", Tones: tones("1", "3", "b7", "b9", "13"), Difficulty: Expert, Description: "Thirteenth with a lowered ninth"},
	{Name: "Minor 9th flat 5", Symbol: "m9b5", Tones: tones("1", "b3", "b5", "b7", "9"), Difficulty: Expert, Description: "Half-diminished with a natural ninth"},
}
