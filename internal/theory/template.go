package theory

import (
	"fmt"
	"strings"
)

// Difficulty is a content tier. Catalog queries and rating multipliers key on it.
type Difficulty int

const (
	Beginner Difficulty = iota + 1
	Intermediate
	Advanced
	Expert
)

var difficultyNames = [...]string{Beginner: "beginner", Intermediate: "intermediate", Advanced: "advanced", Expert: "expert"}

// IsValid reports whether d is one of the four tiers.
func (d Difficulty) IsValid() bool { return d >= Beginner && d <= Expert }

func (d Difficulty) String() string {
	if d.IsValid() {
		return difficultyNames[d]
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

// ParseDifficulty accepts a tier name, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	for d := Beginner; d <= Expert; d++ {
		if strings.EqualFold(s, difficultyNames[d]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("theory: unknown difficulty %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Difficulty) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("theory: invalid difficulty %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Difficulty) UnmarshalText(text []byte) error {
	v, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Kind names the catalog a template belongs to.
type Kind string

const (
	KindChord    Kind = "chord"
	KindScale    Kind = "scale"
	KindInterval Kind = "interval"
)

// ToneSpec is one chord tone, scale degree or interval endpoint.
type ToneSpec struct {
	Degree    string `json:"degree"`
	Name      string `json:"name"`
	Semitones int    `json:"semitones"`
	Altered   bool   `json:"altered"`
}

// IsRootOrOctave reports whether the tone duplicates the root's pitch class.
func (t ToneSpec) IsRootOrOctave() bool { return mod12(t.Semitones) == 0 }

// Template is a chord, scale or interval type. Templates are shared by every
// instance built from them and are never mutated after catalog load.
type Template struct {
	Kind        Kind       `json:"kind"`
	Name        string     `json:"name"`
	Symbol      string     `json:"symbol"`
	Tones       []ToneSpec `json:"tones"`
	Difficulty  Difficulty `json:"difficulty"`
	Description string     `json:"description"`
}

// HasSemitones reports whether any tone sits the given distance above the root.
func (t *Template) HasSemitones(semitones int) bool {
	for _, tone := range t.Tones {
		if tone.Semitones == semitones {
			return true
		}
	}
	return false
}

// IsMinor reports whether the template has a minor third and no major third.
func (t *Template) IsMinor() bool {
	return t.HasSemitones(3) && !t.HasSemitones(4)
}

// Catalog is a read-only collection of templates keyed by symbol.
type Catalog struct {
	kind      Kind
	templates []*Template
	bySymbol  map[string]*Template
}

// NewCatalog copies seed into a catalog. Symbols must be unique.
func NewCatalog(kind Kind, seed []Template) (*Catalog, error) {
	c := &Catalog{
		kind:      kind,
		templates: make([]*Template, 0, len(seed)),
		bySymbol:  make(map[string]*Template, len(seed)),
	}
	for i := range seed {
		t := seed[i]
		t.Kind = kind
		t.Tones = append([]ToneSpec(nil), seed[i].Tones...)
		if _, dup := c.bySymbol[t.Symbol]; dup {
			return nil, fmt.Errorf("%w: %s %q", ErrDuplicateSymbol, kind, t.Symbol)
		}
		c.templates = append(c.templates, &t)
		c.bySymbol[t.Symbol] = &t
	}
	return c, nil
}

// Kind returns the catalog kind.
func (c *Catalog) Kind() Kind { return c.kind }

// All returns every template in seed order.
func (c *Catalog) All() []*Template {
	return append([]*Template(nil), c.templates...)
}

// ByDifficulty returns templates of exactly the given tier.
func (c *Catalog) ByDifficulty(d Difficulty) []*Template {
	var out []*Template
	for _, t := range c.templates {
		if t.Difficulty == d {
			out = append(out, t)
		}
	}
	return out
}

// UpTo returns templates at or below the given tier.
func (c *Catalog) UpTo(d Difficulty) []*Template {
	var out []*Template
	for _, t := range c.templates {
		if t.Difficulty <= d {
			out = append(out, t)
		}
	}
	return out
}

// BySymbol looks up a template by its symbol.
func (c *Catalog) BySymbol(symbol string) (*Template, bool) {
	t, ok := c.bySymbol[symbol]
	return t, ok
}

// Step is one chord of a progression template.
type Step struct {
	Numeral string `json:"numeral"`
	Quality string `json:"quality"`
}

// ProgressionKind selects the special cases applied when a progression is built.
type ProgressionKind string

const (
	ProgressionMajor       ProgressionKind = "major"
	ProgressionMinor       ProgressionKind = "minor"
	ProgressionTritoneSub  ProgressionKind = "tritone_sub"
	ProgressionBackdoor    ProgressionKind = "backdoor"
	ProgressionBirdChanges ProgressionKind = "bird_changes"
)

// ProgressionTemplate is a numeral sequence with a chord quality per step.
type ProgressionTemplate struct {
	Name        string          `json:"name"`
	Symbol      string          `json:"symbol"`
	Kind        ProgressionKind `json:"kind"`
	Steps       []Step          `json:"steps"`
	Difficulty  Difficulty      `json:"difficulty"`
	Description string          `json:"description"`
}

// IsCadence reports whether the template is a three-chord cadence.
func (p *ProgressionTemplate) IsCadence() bool { return len(p.Steps) == 3 }

// ProgressionCatalog is the read-only progression collection.
type ProgressionCatalog struct {
	templates []*ProgressionTemplate
	bySymbol  map[string]*ProgressionTemplate
}

// NewProgressionCatalog copies seed into a catalog. Symbols must be unique and
// every numeral must resolve.
func NewProgressionCatalog(seed []ProgressionTemplate) (*ProgressionCatalog, error) {
	c := &ProgressionCatalog{bySymbol: make(map[string]*ProgressionTemplate, len(seed))}
	for i := range seed {
		p := seed[i]
		p.Steps = append([]Step(nil), seed[i].Steps...)
		if _, dup := c.bySymbol[p.Symbol]; dup {
			return nil, fmt.Errorf("%w: progression %q", ErrDuplicateSymbol, p.Symbol)
		}
		for _, s := range p.Steps {
			if _, err := NumeralOffset(s.Numeral); err != nil {
				return nil, fmt.Errorf("progression %q: %w", p.Symbol, err)
			}
		}
		c.templates = append(c.templates, &p)
		c.bySymbol[p.Symbol] = &p
	}
	return c, nil
}

// All returns every progression in seed order.
func (c *ProgressionCatalog) All() []*ProgressionTemplate {
	return append([]*ProgressionTemplate(nil), c.templates...)
}

// ByDifficulty returns progressions of exactly the given tier.
func (c *ProgressionCatalog) ByDifficulty(d Difficulty) []*ProgressionTemplate {
	var out []*ProgressionTemplate
	for _, p := range c.templates {
		if p.Difficulty == d {
			out = append(out, p)
		}
	}
	return out
}

// UpTo returns progressions at or below the given tier.
func (c *ProgressionCatalog) UpTo(d Difficulty) []*ProgressionTemplate {
	var out []*ProgressionTemplate
	for _, p := range c.templates {
		if p.Difficulty <= d {
			out = append(out, p)
		}
	}
	return out
}

// BySymbol looks up a progression by its symbol.
func (c *ProgressionCatalog) BySymbol(symbol string) (*ProgressionTemplate, bool) {
	p, ok := c.bySymbol[symbol]
	return p, ok
}

var numeralOffsets = map[string]int{
	"i": 0, "ii": 2, "iii": 4, "iv": 5, "v": 7, "vi": 9, "vii": 11,
}

// NumeralOffset returns the semitone distance from the key to the numeral's
// root. A leading b or # lowers or raises the table value by one.
func NumeralOffset(numeral string) (int, error) {
	n := numeral
	shift := 0
	switch {
	case strings.HasPrefix(n, "b"):
		shift, n = -1, n[1:]
	case strings.HasPrefix(n, "#"):
		shift, n = 1, n[1:]
	}
	off, ok := numeralOffsets[strings.ToLower(n)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNumeral, numeral)
	}
	return mod12(off + shift), nil
}
