// Package report renders ledger state and GPA results as plain text tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"golang.org/x/text/language"

	"github.com/yigit/gpacalc/internal/app/models/dto"
	"github.com/yigit/gpacalc/internal/domain/grading"
	"github.com/yigit/gpacalc/internal/pkg/i18n"
)

// Writer renders reports in one locale
type Writer struct {
	out     io.Writer
	catalog *i18n.Catalog
	tag     language.Tag
}

// NewWriter creates a report writer for the given locale
func NewWriter(out io.Writer, catalog *i18n.Catalog, tag language.Tag) *Writer {
	return &Writer{out: out, catalog: catalog, tag: tag}
}

func (w *Writer) table() *tabwriter.Writer {
	return tabwriter.NewWriter(w.out, 0, 4, 2, ' ', 0)
}

// Subjects writes the subject table. An empty ledger writes nothing.
func (w *Writer) Subjects(subjects []grading.Subject, scale *grading.GradeScale) error {
	list := dto.NewSubjectListResponse(subjects, scale, w.catalog, w.tag)
	if list.Empty {
		return nil
	}

	tw := w.table()
	fmt.Fprintf(tw, "#\t%s\t%s\t%s\t%s\t%s\n",
		w.catalog.Text(w.tag, i18n.KeyTableName),
		w.catalog.Text(w.tag, i18n.KeyTableGrade),
		w.catalog.Text(w.tag, i18n.KeyTableUnits),
		w.catalog.Text(w.tag, i18n.KeyTableStatus),
		w.catalog.Text(w.tag, i18n.KeyTablePoints),
	)
	for _, row := range list.Subjects {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n", row.ID, row.Name, row.GradeLabel, row.Units, row.StatusLabel, row.PointsDisplay)
	}
	return tw.Flush()
}

// Result writes the result card
func (w *Writer) Result(result grading.GPAResult) error {
	card := dto.NewGPAResultResponse(result, w.catalog, w.tag)

	tw := w.table()
	fmt.Fprintf(tw, "%s:\t%s\n", card.Labels["semesterGpa"], card.Display.SemesterGPA)
	fmt.Fprintf(tw, "%s:\t%s\n", card.Labels["cumulativeGpa"], card.Display.CumulativeGPA)
	fmt.Fprintf(tw, "%s:\t%s\n", card.Labels["semesterPoints"], card.Display.SemesterPoints)
	fmt.Fprintf(tw, "%s:\t%d\n", card.Labels["totalUnits"], card.TotalUnits)
	if card.RetakeUnits > 0 {
		fmt.Fprintf(tw, "%s:\t%d\n", card.Labels["retakeUnits"], card.RetakeUnits)
	}
	return tw.Flush()
}

// Scale writes the grade scale in display order
func (w *Writer) Scale(scale *grading.GradeScale) error {
	if _, err := fmt.Fprintf(w.out, "%s\n", w.catalog.Text(w.tag, i18n.KeyScaleTitle)); err != nil {
		return err
	}

	tw := w.table()
	for _, grade := range dto.NewGradeScaleResponse(scale).Grades {
		fmt.Fprintf(tw, "%s\t%s\n", grade.Symbol, strconv.FormatFloat(grade.Points, 'f', -1, 64))
	}
	return tw.Flush()
}
