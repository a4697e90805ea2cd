package grading

import (
	"math"
	"strings"

	"github.com/yigit/gpacalc/internal/pkg/apperrors"
	"github.com/yigit/gpacalc/internal/pkg/validation"
)

// GPAResult holds the aggregates of one calculation. Values are unrounded.
type GPAResult struct {
	SemesterGPA    float64 `json:"semesterGpa"`
	CumulativeGPA  float64 `json:"cumulativeGpa"`
	TotalUnits     int     `json:"totalUnits"`
	SemesterPoints float64 `json:"semesterPoints"`
	SemesterUnits  int     `json:"semesterUnits"`
	TotalPoints    float64 `json:"totalPoints"`
	RetakeUnits    int     `json:"retakeUnits"`
}

// Ledger is the ordered list of subjects entered during one session.
// A Ledger is not safe for concurrent use; callers scope one per session.
type Ledger struct {
	scale    *GradeScale
	subjects []Subject
	lastID   SubjectID
}

// NewLedger creates an empty ledger. A nil scale selects DefaultScale.
func NewLedger(scale *GradeScale) *Ledger {
	if scale == nil {
		scale = DefaultScale()
	}
	return &Ledger{scale: scale}
}

// Scale returns the grade scale used by the ledger
func (l *Ledger) Scale() *GradeScale {
	return l.scale
}

// AddSubject validates the input, computes the subject's points and appends
// it. On error the ledger is unchanged.
func (l *Ledger) AddSubject(name, grade string, units int, isRetake bool) (Subject, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Subject{}, apperrors.NewValidationError(apperrors.FieldName, apperrors.ReasonRequired, "subject name is required")
	}
	if !validation.NewStringValidation(name).WithMaxLength(validation.SubjectNameMaxLength).Validate() {
		return Subject{}, apperrors.NewValidationError(apperrors.FieldName, apperrors.ReasonTooLong, "subject name must not exceed %d characters", validation.SubjectNameMaxLength)
	}

	grade = strings.TrimSpace(grade)
	if grade == "" {
		return Subject{}, apperrors.NewValidationError(apperrors.FieldGrade, apperrors.ReasonRequired, "grade is required")
	}
	gradePoints, ok := l.scale.Points(grade)
	if !ok {
		return Subject{}, apperrors.NewValidationError(apperrors.FieldGrade, apperrors.ReasonUnknownGrade, "unknown grade %q", grade)
	}

	if err := checkUnits(units); err != nil {
		return Subject{}, err
	}

	l.lastID++
	subject := Subject{
		ID:       l.lastID,
		Name:     name,
		Grade:    grade,
		Units:    units,
		IsRetake: isRetake,
		Points:   gradePoints * float64(units),
	}
	l.subjects = append(l.subjects, subject)

	return subject, nil
}

// RemoveSubject deletes the subject with the given id. Unknown ids are a
// no-op. It reports whether a subject was removed.
func (l *Ledger) RemoveSubject(id SubjectID) bool {
	for i, subject := range l.subjects {
		if subject.ID != id {
			continue
		}
		l.subjects = append(l.subjects[:i:i], l.subjects[i+1:]...)
		return true
	}
	return false
}

// Subjects returns the subjects in insertion order
func (l *Ledger) Subjects() []Subject {
	out := make([]Subject, len(l.subjects))
	copy(out, l.subjects)
	return out
}

// Len returns the number of subjects
func (l *Ledger) Len() int {
	return len(l.subjects)
}

// IsEmpty reports whether the ledger holds no subjects
func (l *Ledger) IsEmpty() bool {
	return len(l.subjects) == 0
}

// CalculateGPA combines the ledger totals with the prior record.
//
// Retaken subjects count like any other subject: their units and points are
// added to both the semester and cumulative totals, and nothing is
// subtracted from the prior record. Callers that want the earlier attempt
// dropped must adjust priorGPA and priorUnits themselves.
//
// An empty ledger is reported before the prior record is checked.
func (l *Ledger) CalculateGPA(priorGPA float64, priorUnits int) (GPAResult, error) {
	if l.IsEmpty() {
		return GPAResult{}, apperrors.NewValidationError(apperrors.FieldSubjects, apperrors.ReasonEmptyLedger, "add at least one subject")
	}
	if math.IsNaN(priorGPA) || priorGPA < MinPoints || priorGPA > MaxPoints {
		return GPAResult{}, apperrors.NewValidationError(apperrors.FieldPreviousGPA, apperrors.ReasonOutOfRange, "previous GPA must be between 0 and 4")
	}
	if priorUnits < 0 {
		return GPAResult{}, apperrors.NewValidationError(apperrors.FieldPreviousUnits, apperrors.ReasonNegative, "previous units must be zero or more")
	}
	if priorUnits > MaxPriorUnits {
		return GPAResult{}, priorUnitsOutOfRange()
	}

	var result GPAResult
	for _, subject := range l.subjects {
		result.SemesterUnits += subject.Units
		result.SemesterPoints += subject.Points
		if subject.IsRetake {
			result.RetakeUnits += subject.Units
		}
	}

	if result.SemesterUnits > 0 {
		result.SemesterGPA = result.SemesterPoints / float64(result.SemesterUnits)
	}

	result.TotalUnits = priorUnits + result.SemesterUnits
	result.TotalPoints = priorGPA*float64(priorUnits) + result.SemesterPoints
	if result.TotalUnits > 0 {
		result.CumulativeGPA = result.TotalPoints / float64(result.TotalUnits)
	}

	return result, nil
}
