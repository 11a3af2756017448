// Package report renders a learner's progress report as a paginated PDF:
// summary stats, per-subject percentages, top weak areas, and a score-over-
// time chart.
package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/edututor/edututor/internal/analytics"
	"github.com/edututor/edututor/internal/results"
)

const topWeakAreas = 6

// Export produces the PDF for one learner's full row set. An empty row set
// still yields a valid document.
func Export(rows []results.Record, studentName string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 10, "EduTutor – Progress Report", "", 1, "C", false, 0, "")
		pdf.Ln(2)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 8, fmt.Sprintf(
		"Student: %s\nAttempts: %d\nAverage Score: %.1f%%",
		studentName, len(rows), analytics.AveragePercent(rows)), "", "L", false)

	if len(rows) == 0 {
		pdf.Ln(4)
		pdf.CellFormat(0, 8, "No quiz attempts recorded yet.", "", 1, "L", false, 0, "")
		return output(pdf)
	}

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(0, 8, "Performance by Subject", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, sa := range analytics.SubjectAverages(rows) {
		pdf.CellFormat(0, 6, fmt.Sprintf("- %s: %.1f%%", sa.Subject, sa.Percent), "", 1, "L", false, 0, "")
	}

	if weak := analytics.TopWeakAreas(rows, topWeakAreas); len(weak) > 0 {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, "Common Weak Areas", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, w := range weak {
			pdf.CellFormat(0, 6, fmt.Sprintf("- %s (%d)", w.Area, w.Count), "", 1, "L", false, 0, "")
		}
	}

	// Chart is best-effort: a single attempt has no trend to draw.
	if png, err := scoreChartPNG(rows, studentName); err == nil {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("score-chart", opts, bytes.NewReader(png))
		pdf.Ln(4)
		pdf.ImageOptions("score-chart", 15, pdf.GetY(), 180, 0, false, opts, 0, "")
	}

	return output(pdf)
}

func output(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: write pdf: %w", err)
	}
	return buf.Bytes(), nil
}
