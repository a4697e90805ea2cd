package cli

import (
	"fmt"
	"strings"

	"github.com/yigit/gpacalc/internal/domain/grading"
	"github.com/yigit/gpacalc/internal/pkg/apperrors"
)

// subjectArg is a subject given on the command line as
// "Name:GRADE:UNITS[:retake]". Name may itself contain colons.
type subjectArg struct {
	Name     string
	Grade    string
	Units    int
	IsRetake bool
}

var retakeMarkers = map[string]bool{"retake": true, "r": true, "true": true, "yes": true}

func parseSubjectArg(raw string) (subjectArg, error) {
	parts := strings.Split(raw, ":")

	isRetake := false
	if len(parts) >= 4 && retakeMarkers[strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))] {
		isRetake = true
		parts = parts[:len(parts)-1]
	}
	if len(parts) < 3 {
		return subjectArg{}, apperrors.NewBadRequestError(fmt.Sprintf("invalid subject %q: expected Name:GRADE:UNITS[:retake]", raw))
	}

	units, err := grading.ParseUnits(parts[len(parts)-1])
	if err != nil {
		return subjectArg{}, err
	}

	return subjectArg{
		Name:     strings.Join(parts[:len(parts)-2], ":"),
		Grade:    parts[len(parts)-2],
		Units:    units,
		IsRetake: isRetake,
	}, nil
}
