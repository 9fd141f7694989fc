package theory

// ProgressionSeed is the fixed progression table.
var ProgressionSeed = []ProgressionTemplate{
	{
		Name: "Major ii-V-I", Symbol: "ii-V-I", Kind: ProgressionMajor, Difficulty: Beginner,
		Steps:       []Step{{"ii", "m7"}, {"V", "7"}, {"I", "maj7"}},
		Description: "The canonical major cadence",
	},
	{
		Name: "ii-V-I to Major 6th", Symbol: "ii-V-I6", Kind: ProgressionMajor, Difficulty: Beginner,
		Steps:       []Step{{"ii", "m7"}, {"V", "7"}, {"I", "6"}},
		Description: "Major cadence resolving to a sixth chord",
	},
	{
		Name: "Minor ii-V-i", Symbol: "ii-V-i", Kind: ProgressionMinor, Difficulty: Intermediate,
		Steps:       []Step{{"ii", "m7b5"}, {"V", "7b9"}, {"i", "m7"}},
		Description: "Half-diminished ii into a flat-nine dominant",
	},
	{
		Name: "Minor ii-V-i to Minor 6th", Symbol: "ii-V-i6", Kind: ProgressionMinor, Difficulty: Intermediate,
		Steps:       []Step{{"ii", "m7b5"}, {"V", "7b9"}, {"i", "m6"}},
		Description: "Minor cadence resolving to a minor sixth",
	},
	{
		Name: "Secondary ii-V", Symbol: "iii-VI-ii", Kind: ProgressionMajor, Difficulty: Intermediate,
		Steps:       []Step{{"iii", "m7"}, {"VI", "7"}, {"ii", "m7"}},
		Description: "A ii-V tonicizing the ii chord",
	},
	{
		Name: "Tritone Substitution", Symbol: "ii-bII-I", Kind: ProgressionTritoneSub, Difficulty: Advanced,
		Steps:       []Step{{"ii", "m7"}, {"bII", "7"}, {"I", "maj7"}},
		Description: "Dominant replaced by the dominant a tritone away",
	},
	{
		Name: "Backdoor Cadence", Symbol: "iv-bVII-I", Kind: ProgressionBackdoor, Difficulty: Advanced,
		Steps:       []Step{{"iv", "m7"}, {"bVII", "7"}, {"I", "maj7"}},
		Description: "Resolution from the flat seventh dominant",
	},
	{
		Name: "Extended ii-V-I", Symbol: "ii9-V13-Imaj9", Kind: ProgressionMajor, Difficulty: Advanced,
		Steps:       []Step{{"ii", "m9"}, {"V", "13"}, {"I", "maj9"}},
		Description: "Cadence voiced with upper extensions",
	},
	{
		Name: "Altered ii-V-I", Symbol: "ii-V7alt-I", Kind: ProgressionMajor, Difficulty: Expert,
		Steps:       []Step{{"ii", "m7"}, {"V", "7alt"}, {"I", "maj7"}},
		Description: "Cadence through an altered dominant",
	},
	{
		Name: "Bird Changes", Symbol: "bird", Kind: ProgressionBirdChanges, Difficulty: Expert,
		Steps:       []Step{{"I", "maj7"}, {"vii", "m7b5"}, {"III", "7"}, {"vi", "m7"}, {"II", "7"}},
		Description: "Opening of the Parker blues, descending ii-Vs",
	},
}
