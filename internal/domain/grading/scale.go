package grading

import (
	"math"
	"strings"

	"github.com/yigit/gpacalc/internal/pkg/apperrors"
	"github.com/yigit/gpacalc/internal/pkg/validation"
)

// Point bounds for a grade symbol and for a prior GPA
const (
	MinPoints = 0.0
	MaxPoints = 4.0
)

// Unit bounds for one subject and for the prior record
const (
	MaxUnits      = 100
	MaxPriorUnits = 10000
)

// GradeEntry is one symbol of a grade scale with its point value
type GradeEntry struct {
	Symbol string  `json:"symbol" yaml:"symbol"`
	Points float64 `json:"points" yaml:"points"`
}

// GradeScale maps grade symbols to point values. It is immutable once built.
type GradeScale struct {
	entries []GradeEntry
	points  map[string]float64
}

var defaultEntries = []GradeEntry{
	{Symbol: "AA", Points: 4.0},
	{Symbol: "A", Points: 3.5},
	{Symbol: "BB", Points: 3.0},
	{Symbol: "B", Points: 2.5},
	{Symbol: "CC", Points: 2.0},
	{Symbol: "C", Points: 1.5},
	{Symbol: "DD", Points: 1.0},
	{Symbol: "D", Points: 0.5},
	{Symbol: "F", Points: 0.0},
}

var defaultScale = mustScale(defaultEntries)

// DefaultScale returns the nine-tier letter scale (AA..F)
func DefaultScale() *GradeScale {
	return defaultScale
}

// DefaultEntries returns a copy of the entries behind DefaultScale
func DefaultEntries() []GradeEntry {
	out := make([]GradeEntry, len(defaultEntries))
	copy(out, defaultEntries)
	return out
}

func mustScale(entries []GradeEntry) *GradeScale {
	scale, err := NewGradeScale(entries)
	if err != nil {
		panic(err)
	}
	return scale
}

// NewGradeScale builds a scale from ordered entries. Symbols must be unique
// and every point value must lie in [0, 4].
func NewGradeScale(entries []GradeEntry) (*GradeScale, error) {
	if len(entries) == 0 {
		return nil, apperrors.NewValidationError(apperrors.FieldScale, apperrors.ReasonRequired, "grade scale must contain at least one grade")
	}

	scale := &GradeScale{
		entries: make([]GradeEntry, 0, len(entries)),
		points:  make(map[string]float64, len(entries)),
	}

	for _, entry := range entries {
		symbol := strings.TrimSpace(entry.Symbol)
		if !validation.NewStringValidation(symbol).
			WithMaxLength(validation.GradeSymbolMaxLength).
			WithPattern(validation.CompiledPatterns.GradeSymbol).
			Validate() {
			return nil, apperrors.NewValidationError(apperrors.FieldScale, apperrors.ReasonRequired, "invalid grade symbol %q", entry.Symbol)
		}
		if _, exists := scale.points[symbol]; exists {
			return nil, apperrors.NewValidationError(apperrors.FieldScale, apperrors.ReasonDuplicate, "grade symbol %q defined twice", symbol)
		}
		if entry.Points < MinPoints || entry.Points > MaxPoints || math.IsNaN(entry.Points) {
			return nil, apperrors.NewValidationError(apperrors.FieldScale, apperrors.ReasonOutOfRange, "points for %q must be between 0 and 4", symbol)
		}

		scale.entries = append(scale.entries, GradeEntry{Symbol: symbol, Points: entry.Points})
		scale.points[symbol] = entry.Points
	}

	return scale, nil
}

// Points returns the point value for a symbol
func (s *GradeScale) Points(symbol string) (float64, bool) {
	points, ok := s.points[symbol]
	return points, ok
}

// Has reports whether the symbol belongs to the scale
func (s *GradeScale) Has(symbol string) bool {
	_, ok := s.points[symbol]
	return ok
}

// Entries returns the scale in its configured order
func (s *GradeScale) Entries() []GradeEntry {
	out := make([]GradeEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Symbols returns the grade symbols in configured order
func (s *GradeScale) Symbols() []string {
	out := make([]string, len(s.entries))
	for i, entry := range s.entries {
		out[i] = entry.Symbol
	}
	return out
}

// Len returns the number of grades in the scale
func (s *GradeScale) Len() int {
	return len(s.entries)
}
