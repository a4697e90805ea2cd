package dto

import (
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"

	"github.com/yigit/gpacalc/internal/app/models"
	"github.com/yigit/gpacalc/internal/domain/grading"
	"github.com/yigit/gpacalc/internal/pkg/helpers"
	"github.com/yigit/gpacalc/internal/pkg/i18n"
)

// AddSubjectRequest represents a subject entered by the user
type AddSubjectRequest struct {
	Name     string      `json:"name" validate:"subject_name" example:"Data Structures"`
	Grade    string      `json:"grade" validate:"grade_symbol" example:"BB"`
	Units    json.Number `json:"units" swaggertype:"integer" example:"3"`
	IsRetake bool        `json:"isRetake" example:"false"`
}

// CalculateGPARequest carries the prior record. Missing values count as zero.
type CalculateGPARequest struct {
	PreviousGPA   *float64    `json:"previousGpa" example:"3.0"`
	PreviousUnits json.Number `json:"previousUnits" swaggertype:"integer" example:"30"`
}

// SubjectResponse is one row of the subject table
type SubjectResponse struct {
	ID            int64                `json:"id" example:"1"`
	Name          string               `json:"name" example:"Data Structures"`
	Grade         string               `json:"grade" example:"BB"`
	GradePoints   float64              `json:"gradePoints" example:"3"`
	GradeLabel    string               `json:"gradeLabel" example:"BB (3)"`
	Units         int                  `json:"units" example:"3"`
	IsRetake      bool                 `json:"isRetake" example:"false"`
	Status        models.SubjectStatus `json:"status" example:"NEW" enums:"NEW,RETAKE"`
	StatusLabel   string               `json:"statusLabel" example:"New"`
	Points        float64              `json:"points" example:"9"`
	PointsDisplay string               `json:"pointsDisplay" example:"9.00"`
}

// SubjectListResponse is the full ordered subject table
type SubjectListResponse struct {
	Subjects []SubjectResponse `json:"subjects"`
	Count    int               `json:"count" example:"1"`
	Empty    bool              `json:"empty" example:"false"`
}

// RemoveSubjectResponse reports the ledger size after a removal
type RemoveSubjectResponse struct {
	Remaining int  `json:"remaining" example:"0"`
	Empty     bool `json:"empty" example:"true"`
}

// GPAResultDisplay holds result values formatted to two decimals
type GPAResultDisplay struct {
	SemesterGPA    string `json:"semesterGpa" example:"2.50"`
	CumulativeGPA  string `json:"cumulativeGpa" example:"2.92"`
	SemesterPoints string `json:"semesterPoints" example:"15.00"`
	TotalPoints    string `json:"totalPoints" example:"105.00"`
}

// GPAResultResponse is the result card of a calculation
type GPAResultResponse struct {
	SemesterGPA    float64           `json:"semesterGpa" example:"2.5"`
	CumulativeGPA  float64           `json:"cumulativeGpa" example:"2.92"`
	TotalUnits     int               `json:"totalUnits" example:"36"`
	SemesterPoints float64           `json:"semesterPoints" example:"15"`
	SemesterUnits  int               `json:"semesterUnits" example:"6"`
	TotalPoints    float64           `json:"totalPoints" example:"105"`
	RetakeUnits    int               `json:"retakeUnits" example:"0"`
	Display        GPAResultDisplay  `json:"display"`
	Labels         map[string]string `json:"labels"`
}

// GradeEntryResponse is one grade of the scale
type GradeEntryResponse struct {
	Symbol string  `json:"symbol" example:"AA"`
	Points float64 `json:"points" example:"4"`
	Label  string  `json:"label" example:"AA (4)"`
}

// GradeScaleResponse lists the grade scale in display order
type GradeScaleResponse struct {
	Grades []GradeEntryResponse `json:"grades"`
}

// GradeLabel renders a grade with its point value, e.g. "AA (4)"
func GradeLabel(symbol string, points float64) string {
	return fmt.Sprintf("%s (%s)", symbol, helpers.FormatPoints(points))
}

// NewSubjectResponse builds a table row for a subject
func NewSubjectResponse(subject grading.Subject, scale *grading.GradeScale, catalog *i18n.Catalog, tag language.Tag) SubjectResponse {
	gradePoints, _ := scale.Points(subject.Grade)
	return SubjectResponse{
		ID:            int64(subject.ID),
		Name:          subject.Name,
		Grade:         subject.Grade,
		GradePoints:   gradePoints,
		GradeLabel:    GradeLabel(subject.Grade, gradePoints),
		Units:         subject.Units,
		IsRetake:      subject.IsRetake,
		Status:        models.StatusOf(subject.IsRetake),
		StatusLabel:   catalog.RetakeLabel(tag, subject.IsRetake),
		Points:        helpers.Round2(subject.Points),
		PointsDisplay: helpers.Fixed2(subject.Points),
	}
}

// NewSubjectListResponse builds the subject table
func NewSubjectListResponse(subjects []grading.Subject, scale *grading.GradeScale, catalog *i18n.Catalog, tag language.Tag) SubjectListResponse {
	rows := make([]SubjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		rows = append(rows, NewSubjectResponse(subject, scale, catalog, tag))
	}
	return SubjectListResponse{
		Subjects: rows,
		Count:    len(rows),
		Empty:    len(rows) == 0,
	}
}

// NewGPAResultResponse builds the result card. GPA and point values are
// rounded to two decimals here and nowhere else.
func NewGPAResultResponse(result grading.GPAResult, catalog *i18n.Catalog, tag language.Tag) GPAResultResponse {
	return GPAResultResponse{
		SemesterGPA:    helpers.Round2(result.SemesterGPA),
		CumulativeGPA:  helpers.Round2(result.CumulativeGPA),
		TotalUnits:     result.TotalUnits,
		SemesterPoints: helpers.Round2(result.SemesterPoints),
		SemesterUnits:  result.SemesterUnits,
		TotalPoints:    helpers.Round2(result.TotalPoints),
		RetakeUnits:    result.RetakeUnits,
		Display: GPAResultDisplay{
			SemesterGPA:    helpers.Fixed2(result.SemesterGPA),
			CumulativeGPA:  helpers.Fixed2(result.CumulativeGPA),
			SemesterPoints: helpers.Fixed2(result.SemesterPoints),
			TotalPoints:    helpers.Fixed2(result.TotalPoints),
		},
		Labels: map[string]string{
			"semesterGpa":    catalog.Text(tag, i18n.KeySemesterGPA),
			"cumulativeGpa":  catalog.Text(tag, i18n.KeyCumulativeGPA),
			"totalUnits":     catalog.Text(tag, i18n.KeyTotalUnits),
			"semesterPoints": catalog.Text(tag, i18n.KeySemesterPoints),
			"retakeUnits":    catalog.Text(tag, i18n.KeyRetakeUnits),
		},
	}
}

// NewGradeScaleResponse lists the scale in configured order
func NewGradeScaleResponse(scale *grading.GradeScale) GradeScaleResponse {
	entries := scale.Entries()
	grades := make([]GradeEntryResponse, 0, len(entries))
	for _, entry := range entries {
		grades = append(grades, GradeEntryResponse{
			Symbol: entry.Symbol,
			Points: entry.Points,
			Label:  GradeLabel(entry.Symbol, entry.Points),
		})
	}
	return GradeScaleResponse{Grades: grades}
}
