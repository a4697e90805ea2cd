package grading

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

func requireValidationError(t *testing.T, err error, field string, reason apperrors.Reason) {
	t.Helper()
	vErr, ok := apperrors.AsValidationError(err)
	require.True(t, ok, "expected ValidationError, got %v", err)
	assert.Equal(t, field, vErr.Field)
	assert.Equal(t, reason, vErr.Reason)
}

func TestAddSubjectComputesPoints(t *testing.T) {
	for _, entry := range DefaultEntries() {
		for _, units := range []int{1, 2, 3, 4, 6} {
			ledger := NewLedger(nil)

			subject, err := ledger.AddSubject("Course", entry.Symbol, units, false)

			require.NoError(t, err)
			assert.Equal(t, entry.Points*float64(units), subject.Points, "grade %s units %d", entry.Symbol, units)
		}
	}
}

func TestAddSubjectAppendsInOrderWithUniqueIDs(t *testing.T) {
	ledger := NewLedger(nil)

	first, err := ledger.AddSubject("  Calculus  ", "AA", 4, false)
	require.NoError(t, err)
	second, err := ledger.AddSubject("Physics", "BB", 3, true)
	require.NoError(t, err)
	third, err := ledger.AddSubject("Chemistry", "CC", 2, false)
	require.NoError(t, err)

	assert.Equal(t, "Calculus", first.Name)
	assert.True(t, second.IsRetake)
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, second.ID, third.ID)
	assert.Less(t, int64(first.ID), int64(second.ID))

	subjects := ledger.Subjects()
	require.Len(t, subjects, 3)
	assert.Equal(t, []string{"Calculus", "Physics", "Chemistry"}, []string{subjects[0].Name, subjects[1].Name, subjects[2].Name})
}

func TestAddSubjectRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		grade   string
		units   int
		field   string
		reason  apperrors.Reason
	}{
		{"empty name", "", "AA", 3, apperrors.FieldName, apperrors.ReasonRequired},
		{"whitespace name", " \t ", "AA", 3, apperrors.FieldName, apperrors.ReasonRequired},
		{"missing grade", "Math", "", 3, apperrors.FieldGrade, apperrors.ReasonRequired},
		{"unknown grade", "Math", "ZZ", 3, apperrors.FieldGrade, apperrors.ReasonUnknownGrade},
		{"lowercase grade", "Math", "aa", 3, apperrors.FieldGrade, apperrors.ReasonUnknownGrade},
		{"zero units", "Math", "AA", 0, apperrors.FieldUnits, apperrors.ReasonNotPositive},
		{"negative units", "Math", "AA", -2, apperrors.FieldUnits, apperrors.ReasonNotPositive},
		{"too many units", "Math", "AA", MaxUnits + 1, apperrors.FieldUnits, apperrors.ReasonOutOfRange},
		{"name too long", strings.Repeat("x", 101), "AA", 3, apperrors.FieldName, apperrors.ReasonTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := NewLedger(nil)
			_, err := ledger.AddSubject("Existing", "BB", 3, false)
			require.NoError(t, err)

			_, err = ledger.AddSubject(tt.subject, tt.grade, tt.units, false)

			requireValidationError(t, err, tt.field, tt.reason)
			assert.Equal(t, 1, ledger.Len())
		})
	}
}

func TestParseUnits(t *testing.T) {
	units, err := ParseUnits(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, units)

	tests := []struct {
		raw    string
		reason apperrors.Reason
	}{
		{"", apperrors.ReasonRequired},
		{"abc", apperrors.ReasonNotInteger},
		{"2.5", apperrors.ReasonNotInteger},
		{"0", apperrors.ReasonNotPositive},
		{"-1", apperrors.ReasonNotPositive},
		{"101", apperrors.ReasonOutOfRange},
		{"99999999999999999999", apperrors.ReasonOutOfRange},
		{"-99999999999999999999", apperrors.ReasonOutOfRange},
	}
	for _, tt := range tests {
		_, err := ParseUnits(tt.raw)
		requireValidationError(t, err, apperrors.FieldUnits, tt.reason)
	}
}

func TestRemoveSubject(t *testing.T) {
	ledger := NewLedger(nil)
	a, _ := ledger.AddSubject("A", "AA", 3, false)
	b, _ := ledger.AddSubject("B", "BB", 3, false)
	c, _ := ledger.AddSubject("C", "CC", 3, false)

	assert.True(t, ledger.RemoveSubject(b.ID))

	assert.Equal(t, []Subject{a, c}, ledger.Subjects())
}

func TestRemoveUnknownSubjectIsNoop(t *testing.T) {
	ledger := NewLedger(nil)
	a, _ := ledger.AddSubject("A", "AA", 3, false)
	before := ledger.Subjects()

	assert.False(t, ledger.RemoveSubject(a.ID+100))

	assert.Equal(t, before, ledger.Subjects())
}

func TestAddThenRemoveRestoresLedger(t *testing.T) {
	ledger := NewLedger(nil)
	_, _ = ledger.AddSubject("A", "AA", 3, false)
	_, _ = ledger.AddSubject("B", "DD", 2, true)
	before := ledger.Subjects()

	added, err := ledger.AddSubject("C", "F", 1, false)
	require.NoError(t, err)
	ledger.RemoveSubject(added.ID)

	assert.Equal(t, before, ledger.Subjects())
}

func TestRemovingLastSubjectEmptiesLedger(t *testing.T) {
	ledger := NewLedger(nil)
	subject, _ := ledger.AddSubject("Only", "AA", 3, false)
	require.False(t, ledger.IsEmpty())

	ledger.RemoveSubject(subject.ID)

	assert.True(t, ledger.IsEmpty())
	_, err := ledger.CalculateGPA(0, 0)
	requireValidationError(t, err, apperrors.FieldSubjects, apperrors.ReasonEmptyLedger)
}

func TestCalculateGPASingleSubject(t *testing.T) {
	ledger := NewLedger(nil)
	_, err := ledger.AddSubject("Algorithms", "AA", 3, false)
	require.NoError(t, err)

	result, err := ledger.CalculateGPA(0, 0)

	require.NoError(t, err)
	assert.Equal(t, 4.0, result.SemesterGPA)
	assert.Equal(t, 12.0, result.SemesterPoints)
	assert.Equal(t, 4.0, result.CumulativeGPA)
	assert.Equal(t, 3, result.TotalUnits)
}

func TestCalculateGPAWithPriorRecord(t *testing.T) {
	ledger := NewLedger(nil)
	_, _ = ledger.AddSubject("Databases", "BB", 3, false)
	_, _ = ledger.AddSubject("Networks", "CC", 3, false)

	result, err := ledger.CalculateGPA(3.0, 30)

	require.NoError(t, err)
	assert.Equal(t, 15.0, result.SemesterPoints)
	assert.Equal(t, 6, result.SemesterUnits)
	assert.Equal(t, 2.5, result.SemesterGPA)
	assert.Equal(t, 36, result.TotalUnits)
	assert.Equal(t, 105.0, result.TotalPoints)
	assert.InDelta(t, 2.9167, result.CumulativeGPA, 0.0001)
}

func TestCalculateGPAEmptyLedger(t *testing.T) {
	_, err := NewLedger(nil).CalculateGPA(3.2, 10)

	requireValidationError(t, err, apperrors.FieldSubjects, apperrors.ReasonEmptyLedger)
}

func TestCalculateGPAReportsEmptyLedgerBeforePriorRecord(t *testing.T) {
	ledger := NewLedger(nil)

	_, err := ledger.CalculateGPA(4.5, 0)
	requireValidationError(t, err, apperrors.FieldSubjects, apperrors.ReasonEmptyLedger)

	_, err = ledger.CalculateGPA(3.0, -1)
	requireValidationError(t, err, apperrors.FieldSubjects, apperrors.ReasonEmptyLedger)

	_, err = ledger.CalculateGPA(3.0, MaxPriorUnits+1)
	requireValidationError(t, err, apperrors.FieldSubjects, apperrors.ReasonEmptyLedger)
}

func TestCalculateGPARejectsPriorRecordBeforeAggregating(t *testing.T) {
	ledger := NewLedger(nil)
	_, err := ledger.AddSubject("Math", "AA", 3, false)
	require.NoError(t, err)

	_, err = ledger.CalculateGPA(4.5, 10)
	requireValidationError(t, err, apperrors.FieldPreviousGPA, apperrors.ReasonOutOfRange)

	_, err = ledger.CalculateGPA(-0.1, 10)
	requireValidationError(t, err, apperrors.FieldPreviousGPA, apperrors.ReasonOutOfRange)

	_, err = ledger.CalculateGPA(4.5, -1)
	requireValidationError(t, err, apperrors.FieldPreviousGPA, apperrors.ReasonOutOfRange)

	_, err = ledger.CalculateGPA(3.0, -1)
	requireValidationError(t, err, apperrors.FieldPreviousUnits, apperrors.ReasonNegative)

	_, err = ledger.CalculateGPA(3.0, MaxPriorUnits+1)
	requireValidationError(t, err, apperrors.FieldPreviousUnits, apperrors.ReasonOutOfRange)

	result, err := ledger.CalculateGPA(3.0, MaxPriorUnits)
	require.NoError(t, err)
	assert.Equal(t, MaxPriorUnits+3, result.TotalUnits)
}

func TestAddSubjectAcceptsBoundaryValues(t *testing.T) {
	ledger := NewLedger(nil)

	subject, err := ledger.AddSubject(strings.Repeat("ع", 100), "AA", MaxUnits, false)
	require.NoError(t, err)
	assert.Equal(t, MaxUnits, subject.Units)
	assert.Equal(t, 4.0*MaxUnits, subject.Points)
}

func TestCalculateGPABoundaries(t *testing.T) {
	ledger := NewLedger(nil)
	_, _ = ledger.AddSubject("Math", "F", 2, false)

	result, err := ledger.CalculateGPA(4.0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.SemesterGPA)
	assert.Equal(t, 0.0, result.CumulativeGPA)
	assert.Equal(t, 0.0, result.TotalPoints)

	_, err = ledger.CalculateGPA(0, 0)
	require.NoError(t, err)
}

func TestCalculateGPAIsIdempotent(t *testing.T) {
	ledger := NewLedger(nil)
	_, _ = ledger.AddSubject("Math", "A", 4, false)
	_, _ = ledger.AddSubject("History", "DD", 2, true)

	first, err := ledger.CalculateGPA(2.75, 45)
	require.NoError(t, err)
	second, err := ledger.CalculateGPA(2.75, 45)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculateGPACountsRetakesLikeAnyOtherSubject(t *testing.T) {
	plain := NewLedger(nil)
	_, _ = plain.AddSubject("Math", "BB", 3, false)
	retaken := NewLedger(nil)
	_, _ = retaken.AddSubject("Math", "BB", 3, true)

	plainResult, err := plain.CalculateGPA(2.0, 20)
	require.NoError(t, err)
	retakeResult, err := retaken.CalculateGPA(2.0, 20)
	require.NoError(t, err)

	assert.Equal(t, plainResult.CumulativeGPA, retakeResult.CumulativeGPA)
	assert.Equal(t, plainResult.TotalUnits, retakeResult.TotalUnits)
	assert.Equal(t, 0, plainResult.RetakeUnits)
	assert.Equal(t, 3, retakeResult.RetakeUnits)
}

func TestLedgerUsesCustomScale(t *testing.T) {
	scale, err := NewGradeScale([]GradeEntry{{Symbol: "P", Points: 4}, {Symbol: "NP", Points: 0}})
	require.NoError(t, err)
	ledger := NewLedger(scale)

	_, err = ledger.AddSubject("Seminar", "AA", 1, false)
	requireValidationError(t, err, apperrors.FieldGrade, apperrors.ReasonUnknownGrade)

	subject, err := ledger.AddSubject("Seminar", "P", 2, false)
	require.NoError(t, err)
	assert.Equal(t, 8.0, subject.Points)
}

func TestParsePriorUnits(t *testing.T) {
	units, err := ParsePriorUnits("")
	require.NoError(t, err)
	assert.Zero(t, units)

	units, err = ParsePriorUnits(" 30 ")
	require.NoError(t, err)
	assert.Equal(t, 30, units)

	units, err = ParsePriorUnits("-4")
	require.NoError(t, err)
	assert.Equal(t, -4, units)

	_, err = ParsePriorUnits("12.5")
	requireValidationError(t, err, apperrors.FieldPreviousUnits, apperrors.ReasonNotInteger)

	units, err = ParsePriorUnits("99999999999999999999")
	require.NoError(t, err)
	assert.Greater(t, units, MaxPriorUnits)

	ledger := NewLedger(nil)
	_, err = ledger.CalculateGPA(3.0, units)
	requireValidationError(t, err, apperrors.FieldSubjects, apperrors.ReasonEmptyLedger)

	_, _ = ledger.AddSubject("Math", "AA", 3, false)
	_, err = ledger.CalculateGPA(3.0, units)
	requireValidationError(t, err, apperrors.FieldPreviousUnits, apperrors.ReasonOutOfRange)
}
