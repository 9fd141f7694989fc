package theory

// ScaleSeed is the fixed scale-type table. Every scale ends on its octave.
var ScaleSeed = []Template{
	{Name: "Major (Ionian)", Symbol: "major", Tones: tones("1", "2", "3", "4", "5", "6", "7", "8"), Difficulty: Beginner, Description: "The parent major scale"},
	{Name: "Natural Minor (Aeolian)", Symbol: "minor", Tones: tones("1", "2", "b3", "4", "5", "b6", "b7", "8"), Difficulty: Beginner, Description: "Sixth mode of major"},
	{Name: "Major Pentatonic", Symbol: "maj-pent", Tones: tones("1", "2", "3", "5", "6", "8"), Difficulty: Beginner, Description: "Major scale without 4 and 7"},
	{Name: "Minor Pentatonic", Symbol: "min-pent", Tones: tones("1", "b3", "4", "5", "b7", "8"), Difficulty: Beginner, Description: "Natural minor without 2 and b6"},
	{Name: "Blues", Symbol: "blues", Tones: tones("1", "b3", "4", "b5", "5", "b7", "8"), Difficulty: Beginner, Description: "Minor pentatonic with the blue note"},

	{Name: "Dorian", Symbol: "dorian", Tones: tones("1", "2", "b3", "4", "5", "6", "b7", "8"), Difficulty: Intermediate, Description: "Minor with a natural sixth, for ii chords"},
	{Name: "Phrygian", Symbol: "phrygian", Tones: tones("1", "b2", "b3", "4", "5", "b6", "b7", "8"), Difficulty: Intermediate, Description: "Minor with a flat second"},
	{Name: "Lydian", Symbol: "lydian", Tones: tones("1", "2", "3", "#4", "5", "6", "7", "8"), Difficulty: Intermediate, Description: "Major with a raised fourth"},
	{Name: "Mixolydian", Symbol: "mixolydian", Tones: tones("1", "2", "3", "4", "5", "6", "b7", "8"), Difficulty: Intermediate, Description: "Major with a flat seventh, for dominants"},
	{Name: "Locrian", Symbol: "locrian", Tones: tones("1", "b2", "b3", "4", "b5", "b6", "b7", "8"), Difficulty: Intermediate, Description: "For half-diminished chords"},
	{Name: "Harmonic Minor", Symbol: "harmonic-minor", Tones: tones("1", "2", "b3", "4", "5", "b6", "7", "8"), Difficulty: Intermediate, Description: "Natural minor with a raised seventh"},
	{Name: "Melodic Minor", Symbol: "melodic-minor", Tones: tones("1", "2", "b3", "4", "5", "6", "7", "8"), Difficulty: Intermediate, Description: "Jazz minor"},

	{Name: "Bebop Dominant", Symbol: "bebop-dom", Tones: tones("1", "2", "3", "4", "5", "6", "b7", "7", "8"), Difficulty: Advanced, Description: "Mixolydian with a passing major seventh"},
	{Name: "Bebop Major", Symbol: "bebop-maj", Tones: tones("1", "2", "3", "4", "5", "#5", "6", "7", "8"), Difficulty: Advanced, Description: "Major with a passing sharp fifth"},
	{Name: "Whole Tone", Symbol: "whole-tone", Tones: tones("1", "2", "3", "#4", "#5", "b7", "8"), Difficulty: Advanced, Description: "Six whole steps"},
	{Name: "Diminished (Half-Whole)", Symbol: "dim-hw", Tones: tones("1", "b2", "#2", "3", "#4", "5", "6", "b7", "8"), Difficulty: Advanced, Description: "For dominant 7b9 chords"},
	{Name: "Diminished (Whole-Half)", Symbol: "dim-wh", Tones: tones("1", "2", "b3", "4", "b5", "b6", "6", "7", "8"), Difficulty: Advanced, Description: "For diminished seventh chords"},
	{Name: "Lydian Dominant", Symbol: "lydian-dom", Tones: tones("1", "2", "3", "#4", "5", "6", "b7", "8"), Difficulty: Advanced, Description: "Fourth mode of melodic minor"},
	{Name: "Altered (Super Locrian)", Symbol: "altered", Tones: tones("1", "b2", "#2", "3", "b5", "b6", "b7", "8"), Difficulty: Advanced, Description: "Seventh mode of melodic minor"},
	{Name: "Phrygian Dominant", Symbol: "phrygian-dom", Tones: tones("1", "b2", "3", "4", "5", "b6", "b7", "8"), Difficulty: Advanced, Description: "Fifth mode of harmonic minor"},

	{Name: "Locrian #2", Symbol: "locrian-nat2", Tones: tones("1", "2", "b3", "4", "b5", "b6", "b7", "8"), Difficulty: Expert, Description: "Sixth mode of melodic minor"},
	{Name: "Lydian Augmented", Symbol: "lydian-aug", Tones: tones("1", "2", "3", "#4", "#5", "6", "7", "8"), Difficulty: Expert, Description: "Third mode of melodic minor"},
	{Name: "Dorian b2", Symbol: "dorian-b2", Tones: tones("1", "b2", "b3", "4", "5", "6", "b7", "8"), Difficulty: Expert, Description: "Second mode of melodic minor"},
	{Name: "Mixolydian b6", Symbol: "mixolydian-b6", Tones: tones("1", "2", "3", "4", "5", "b6", "b7", "8"), Difficulty: Expert, Description: "Fifth mode of melodic minor"},
	{Name: "Hungarian Minor", Symbol: "hungarian-minor", Tones: tones("1", "2", "b3", "#4", "5", "b6", "7", "8"), Difficulty: Expert, Description: "Harmonic minor with a raised fourth"},
}
