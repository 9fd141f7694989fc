package drill

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/LavenderBridge/jazzdrill/internal/theory"
)

// maxAttemptsPerQuestion bounds retries when a draw cannot form a question.
const maxAttemptsPerQuestion = 20

// Generator draws random questions from a library.
type Generator struct {
	lib   *theory.Library
	rng   *rand.Rand
	newID func() string
}

// NewGenerator returns a generator over lib. A nil rng is seeded from the clock.
func NewGenerator(lib *theory.Library, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Generator{lib: lib, rng: rng, newID: uuid.NewString}
}

// Generate returns up to cfg.Count questions for the drill. It returns an
// empty slice when the filters leave nothing to draw from.
func (g *Generator) Generate(def Definition, cfg QuizConfig) []Question {
	cfg = cfg.withDefaults()
	roots := cfg.candidateRoots()
	types := cfg.candidateTypes(def)
	if len(roots) == 0 || len(types) == 0 {
		return nil
	}

	switch def.Source {
	case SourceChords, SourceScales, SourceIntervals:
		pool := g.templatePool(def.Source, cfg)
		if len(pool) == 0 {
			return nil
		}
		return g.fill(cfg.Count, func() (Question, bool) {
			root := roots[g.rng.Intn(len(roots))]
			t := pool[g.rng.Intn(len(pool))]
			qt := types[g.rng.Intn(len(types))]
			return g.toneQuestion(def, cfg, root, t, qt, roots, pool)
		})
	case SourceCadences, SourceProgressions:
		pool := g.progressionPool(def.Source, cfg)
		if len(pool) == 0 {
			return nil
		}
		return g.fill(cfg.Count, func() (Question, bool) {
			key := roots[g.rng.Intn(len(roots))]
			t := pool[g.rng.Intn(len(pool))]
			qt := types[g.rng.Intn(len(types))]
			return g.progressionQuestion(def, key, t, qt)
		})
	}
	return nil
}

func (g *Generator) fill(count int, next func() (Question, bool)) []Question {
	out := make([]Question, 0, count)
	for attempts := 0; len(out) < count && attempts < count*maxAttemptsPerQuestion; attempts++ {
		if q, ok := next(); ok {
			out = append(out, q)
		}
	}
	return out
}

func (g *Generator) templatePool(src Source, cfg QuizConfig) []*theory.Template {
	var cat *theory.Catalog
	switch src {
	case SourceChords:
		cat = g.lib.Chords
	case SourceScales:
		cat = g.lib.Scales
	default:
		cat = g.lib.Intervals
	}
	var out []*theory.Template
	for _, t := range cat.UpTo(cfg.Difficulty) {
		if cfg.allowsSymbol(t.Symbol) {
			out = append(out, t)
		}
	}
	return out
}

func (g *Generator) progressionPool(src Source, cfg QuizConfig) []*theory.ProgressionTemplate {
	var out []*theory.ProgressionTemplate
	for _, t := range g.lib.Progressions.UpTo(cfg.Difficulty) {
		if src == SourceCadences && !t.IsCadence() {
			continue
		}
		if cfg.allowsSymbol(t.Symbol) {
			out = append(out, t)
		}
	}
	return out
}

func (g *Generator) newQuestion(def Definition, qt QuestionType, key, topic string) Question {
	return Question{
		ID:        g.newID(),
		Mode:      def.Mode,
		Type:      qt,
		TimeLimit: def.TimeLimit,
		Topic:     topic,
		Key:       key,
	}
}

func (g *Generator) realize(root theory.Note, t *theory.Template, cfg QuizConfig) theory.Instance {
	switch t.Kind {
	case theory.KindScale:
		return theory.BuildScale(root, t)
	case theory.KindInterval:
		dir := cfg.Directions[g.rng.Intn(len(cfg.Directions))]
		return theory.BuildInterval(root, t, dir)
	}
	return theory.BuildChord(root, t)
}

func (g *Generator) toneQuestion(def Definition, cfg QuizConfig, root theory.Note, t *theory.Template, qt QuestionType, roots []theory.Note, pool []*theory.Template) (Question, bool) {
	in := g.realize(root, t, cfg)
	q := g.newQuestion(def, qt, root.Name, t.Symbol)
	q.Instance = &in

	switch qt {
	case SingleTone:
		idx := singleToneTargets(t)
		i := idx[g.rng.Intn(len(idx))]
		tone := t.Tones[i]
		q.Target = &tone
		q.Correct = []theory.Note{in.Notes[i]}
		q.Prompt = fmt.Sprintf("What is the %s (%s) of %s?", strings.ToLower(tone.Name), tone.Degree, describe(in))

	case AllTones:
		q.Correct = append([]theory.Note(nil), in.Notes...)
		q.Prompt = fmt.Sprintf("Spell %s.", describe(in))

	case GuideTones:
		gt := in.GuideTones()
		if len(gt) < 2 {
			return Question{}, false
		}
		q.Correct = gt
		q.Prompt = fmt.Sprintf("Name the guide tones (3rd and 7th) of %s.", in.Symbol())

	case IntervalTarget:
		if len(in.Notes) < 2 {
			return Question{}, false
		}
		q.Correct = []theory.Note{in.Notes[len(in.Notes)-1]}
		way := "above"
		if in.Direction == theory.Down {
			way = "below"
		}
		q.Prompt = fmt.Sprintf("What note is a %s %s %s?", t.Name, way, root.Name)

	case CommonTones:
		other := theory.BuildChord(roots[g.rng.Intn(len(roots))], pool[g.rng.Intn(len(pool))])
		if other.Symbol() == in.Symbol() {
			return Question{}, false
		}
		common := commonNotes(in, other)
		if len(common) == 0 {
			return Question{}, false
		}
		q.Other = &other
		q.Correct = common
		q.Prompt = fmt.Sprintf("Which notes do %s and %s share?", in.Symbol(), other.Symbol())

	default:
		return Question{}, false
	}
	return q, true
}

func (g *Generator) progressionQuestion(def Definition, key theory.Note, t *theory.ProgressionTemplate, qt QuestionType) (Question, bool) {
	p := g.lib.BuildProgression(key, t, g.rng)
	q := g.newQuestion(def, qt, key.Name, t.Symbol)
	q.Progression = &p

	switch qt {
	case ProgressionSpelling:
		q.CorrectPositions = make([][]theory.Note, len(p.Chords))
		for i, c := range p.Chords {
			q.CorrectPositions[i] = append([]theory.Note(nil), c.Notes...)
		}
		q.Prompt = fmt.Sprintf("Spell each chord of the %s in %s: %s", t.Name, key.Name, p)

	case ProgressionGuideTones:
		q.CorrectPositions = make([][]theory.Note, len(p.Chords))
		for i, c := range p.Chords {
			gt := c.GuideTones()
			if len(gt) < 2 {
				return Question{}, false
			}
			q.CorrectPositions[i] = gt
		}
		q.Prompt = fmt.Sprintf("Name the guide tones of each chord: %s", p)

	case ProgressionRoots:
		q.CorrectPositions = make([][]theory.Note, len(p.Chords))
		for i, c := range p.Chords {
			q.CorrectPositions[i] = []theory.Note{c.Root}
		}
		q.Prompt = fmt.Sprintf("Name the root of each chord of the %s in %s (%s).", t.Name, key.Name, strings.Join(p.Numerals, " "))

	case ResolutionTarget:
		if len(p.Chords) < 2 {
			return Question{}, false
		}
		i := g.rng.Intn(len(p.Chords) - 1)
		from, to := p.Chords[i], p.Chords[i+1]
		gt := from.GuideTones()
		if len(gt) < 2 {
			return Question{}, false
		}
		target, ok := resolutionOf(gt[1], to)
		if !ok {
			return Question{}, false
		}
		q.Position = i
		q.Correct = []theory.Note{target}
		q.Prompt = fmt.Sprintf("In %s, the 7th of %s (%s) resolves to which note of %s?", p, from.Symbol(), gt[1].Name, to.Symbol())

	case CommonTones:
		if len(p.Chords) < 2 {
			return Question{}, false
		}
		i := g.rng.Intn(len(p.Chords) - 1)
		common := commonNotes(p.Chords[i], p.Chords[i+1])
		if len(common) == 0 {
			return Question{}, false
		}
		q.Position = i
		q.Correct = common
		q.Prompt = fmt.Sprintf("In %s, which notes do %s and %s share?", p, p.Chords[i].Symbol(), p.Chords[i+1].Symbol())

	default:
		return Question{}, false
	}
	return q, true
}

// singleToneTargets picks the askable tone indices: non-root tones, falling
// back to every tone after the first, then to the root alone.
func singleToneTargets(t *theory.Template) []int {
	var idx []int
	for i, tone := range t.Tones {
		if !tone.IsRootOrOctave() {
			idx = append(idx, i)
		}
	}
	if len(idx) > 0 {
		return idx
	}
	for i := 1; i < len(t.Tones); i++ {
		idx = append(idx, i)
	}
	if len(idx) > 0 {
		return idx
	}
	return []int{0}
}

func describe(in theory.Instance) string {
	if in.Template.Kind == theory.KindScale {
		return "the " + in.Symbol() + " scale"
	}
	return in.Symbol()
}

// commonNotes returns a's notes whose pitch class also sounds in b.
func commonNotes(a, b theory.Instance) []theory.Note {
	shared := a.PitchClasses().Intersect(b.PitchClasses())
	var out []theory.Note
	var seen theory.PitchClassSet
	for _, n := range a.Notes {
		pc := n.PitchClass()
		if shared.Has(pc) && !seen.Has(pc) {
			out = append(out, n)
			seen = seen.Add(pc)
		}
	}
	return out
}

// resolutionOf finds where seventh moves in the next chord: a step of one or
// two semitones down, else a held common tone. Guide tones win ties.
func resolutionOf(seventh theory.Note, to theory.Instance) (theory.Note, bool) {
	guides := to.GuideTones()
	for _, steps := range [][]int{{1, 2}, {0}} {
		for _, pool := range [][]theory.Note{guides, to.Notes} {
			for _, want := range steps {
				for _, n := range pool {
					if (seventh.PitchClass()-n.PitchClass()+12)%12 == want {
						return n, true
					}
				}
			}
		}
	}
	return theory.Note{}, false
}
