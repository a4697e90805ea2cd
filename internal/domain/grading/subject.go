package grading

import (
	"errors"
	"strconv"
	"strings"

	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

// SubjectID identifies a subject within one ledger
type SubjectID int64

// Subject is one course entered into a ledger. Points is fixed at creation.
type Subject struct {
	ID       SubjectID `json:"id"`
	Name     string    `json:"name"`
	Grade    string    `json:"grade"`
	Units    int       `json:"units"`
	IsRetake bool      `json:"isRetake"`
	Points   float64   `json:"points"`
}

// ParseUnits parses raw credit-hour input. The trimmed text must be a
// base-10 integer in 1..MaxUnits.
func ParseUnits(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, apperrors.NewValidationError(apperrors.FieldUnits, apperrors.ReasonRequired, "units are required")
	}

	units, err := strconv.Atoi(raw)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, unitsOutOfRange()
		}
		return 0, apperrors.NewValidationError(apperrors.FieldUnits, apperrors.ReasonNotInteger, "units must be a whole number, got %q", raw)
	}
	if err := checkUnits(units); err != nil {
		return 0, err
	}
	return units, nil
}

// ParsePriorUnits parses the previously earned units. Blank input counts as
// zero; sign and upper bound are checked by CalculateGPA.
func ParsePriorUnits(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}

	units, err := strconv.Atoi(raw)
	if err != nil {
		// Atoi saturates on overflow; CalculateGPA rejects the clamped value
		if errors.Is(err, strconv.ErrRange) {
			return units, nil
		}
		return 0, apperrors.NewValidationError(apperrors.FieldPreviousUnits, apperrors.ReasonNotInteger, "previous units must be a whole number, got %q", raw)
	}
	return units, nil
}

func checkUnits(units int) error {
	if units <= 0 {
		return apperrors.NewValidationError(apperrors.FieldUnits, apperrors.ReasonNotPositive, "units must be greater than zero")
	}
	if units > MaxUnits {
		return unitsOutOfRange()
	}
	return nil
}

func unitsOutOfRange() error {
	return apperrors.NewValidationError(apperrors.FieldUnits, apperrors.ReasonOutOfRange, "units must not exceed %d", MaxUnits)
}

func priorUnitsOutOfRange() error {
	return apperrors.NewValidationError(apperrors.FieldPreviousUnits, apperrors.ReasonOutOfRange, "previous units must not exceed %d", MaxPriorUnits)
}
