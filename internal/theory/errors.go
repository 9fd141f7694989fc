package theory

import "errors"

// Sentinel errors for the theory package.
var (
	ErrUnknownNote     = errors.New("theory: unknown note")
	ErrUnknownSymbol   = errors.New("theory: unknown symbol")
	ErrDuplicateSymbol = errors.New("theory: duplicate symbol in catalog")
	ErrUnknownNumeral  = errors.New("theory: unknown roman numeral")
)
