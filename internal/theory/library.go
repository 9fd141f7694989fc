package theory

import (
	"fmt"

	"go.uber.org/zap"
)

// Library bundles the four catalogs. It is built once and shared read-only.
type Library struct {
	Chords       *Catalog
	Scales       *Catalog
	Intervals    *Catalog
	Progressions *ProgressionCatalog

	log *zap.Logger
}

// NewLibrary seeds a library with the fixed catalog tables.
func NewLibrary(logger *zap.Logger) (*Library, error) {
	return NewLibraryFrom(ChordSeed, ScaleSeed, IntervalSeed, ProgressionSeed, logger)
}

// NewLibraryFrom builds a library from caller-supplied tables.
func NewLibraryFrom(chords, scales, intervals []Template, progressions []ProgressionTemplate, logger *zap.Logger) (*Library, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Library{log: logger}
	var err error
	if l.Chords, err = NewCatalog(KindChord, chords); err != nil {
		return nil, fmt.Errorf("chord catalog: %w", err)
	}
	if l.Scales, err = NewCatalog(KindScale, scales); err != nil {
		return nil, fmt.Errorf("scale catalog: %w", err)
	}
	if l.Intervals, err = NewCatalog(KindInterval, intervals); err != nil {
		return nil, fmt.Errorf("interval catalog: %w", err)
	}
	if l.Progressions, err = NewProgressionCatalog(progressions); err != nil {
		return nil, fmt.Errorf("progression catalog: %w", err)
	}
	return l, nil
}

// Catalog returns the tone catalog of the given kind.
func (l *Library) Catalog(kind Kind) (*Catalog, bool) {
	switch kind {
	case KindChord:
		return l.Chords, true
	case KindScale:
		return l.Scales, true
	case KindInterval:
		return l.Intervals, true
	}
	return nil, false
}
