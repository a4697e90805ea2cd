package grading

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

func TestDefaultScale(t *testing.T) {
	scale := DefaultScale()

	assert.Equal(t, 9, scale.Len())
	assert.Equal(t, []string{"AA", "A", "BB", "B", "CC", "C", "DD", "D", "F"}, scale.Symbols())

	points, ok := scale.Points("BB")
	require.True(t, ok)
	assert.Equal(t, 3.0, points)
	assert.False(t, scale.Has("E"))
}

func TestScaleEntriesAreCopies(t *testing.T) {
	entries := DefaultScale().Entries()
	entries[0].Points = 0

	points, _ := DefaultScale().Points("AA")
	assert.Equal(t, 4.0, points)
}

func TestNewGradeScaleValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []GradeEntry
		reason  apperrors.Reason
	}{
		{"empty", nil, apperrors.ReasonRequired},
		{"blank symbol", []GradeEntry{{Symbol: " ", Points: 1}}, apperrors.ReasonRequired},
		{"bad symbol", []GradeEntry{{Symbol: "4.0", Points: 1}}, apperrors.ReasonRequired},
		{"duplicate", []GradeEntry{{Symbol: "A", Points: 4}, {Symbol: "A", Points: 3}}, apperrors.ReasonDuplicate},
		{"above range", []GradeEntry{{Symbol: "A", Points: 4.3}}, apperrors.ReasonOutOfRange},
		{"below range", []GradeEntry{{Symbol: "F", Points: -1}}, apperrors.ReasonOutOfRange},
		{"nan", []GradeEntry{{Symbol: "F", Points: math.NaN()}}, apperrors.ReasonOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGradeScale(tt.entries)
			requireValidationError(t, err, apperrors.FieldScale, tt.reason)
		})
	}
}

func TestNewGradeScaleTrimsSymbols(t *testing.T) {
	scale, err := NewGradeScale([]GradeEntry{{Symbol: " A+ ", Points: 4}, {Symbol: "B-", Points: 2.7}})
	require.NoError(t, err)

	assert.True(t, scale.Has("A+"))
	assert.Equal(t, []string{"A+", "B-"}, scale.Symbols())
}
