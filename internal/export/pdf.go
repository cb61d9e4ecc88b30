package export

import (
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/skatelog/internal/domain"
	"github.com/alexanderramin/skatelog/internal/progress"
	"github.com/go-pdf/fpdf"
)

// Report is the content of a PDF progress report.
type Report struct {
	GeneratedAt time.Time
	Logs        []domain.PracticeLog
	Progress    []domain.SkillProgress
}

// NewReport derives progress from logs and overlay, sorted for display.
func NewReport(logs []domain.PracticeLog, overlay progress.StatusLookup, now time.Time) Report {
	p := progress.Compute(logs, overlay)
	progress.SortForDisplay(p)
	return Report{GeneratedAt: now, Logs: logs, Progress: p}
}

var progressColumns = []struct {
	title string
	width float64
}{
	{"Skill", 70},
	{"Status", 25},
	{"Days", 15},
	{"First", 30},
	{"Last", 30},
}

// WritePDFReport renders the skill progress table, followed by practice
// counts per day and every note, as an A4 PDF.
func WritePDFReport(w io.Writer, r Report) error {
	if len(r.Logs) == 0 {
		return ErrNoLogs
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Skating Practice Report", true)
	pdf.SetCreationDate(r.GeneratedAt)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Skating Practice Report: %s", domain.FormatDate(r.GeneratedAt)))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 11)
	days := progress.DailyCounts(r.Logs)
	pdf.Cell(0, 8, fmt.Sprintf("%d practice logs across %d days, %d skills practiced",
		len(r.Logs), len(days), len(r.Progress)))
	pdf.Ln(12)

	// Progress table
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Skill Progress")
	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(235, 219, 178)
	for _, c := range progressColumns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, p := range r.Progress {
		cells := []string{
			tr(p.SkillName),
			string(p.Status),
			fmt.Sprintf("%d", p.TotalDays),
			p.FirstPracticeDate,
			p.LastPracticeDate,
		}
		for i, c := range progressColumns {
			pdf.CellFormat(c.width, 6, cells[i], "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(8)

	// Daily activity
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, "Daily Activity")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	for _, d := range days {
		pdf.Cell(0, 6, fmt.Sprintf("%s  %d logged", d.Date, d.Count))
		pdf.Ln(6)
	}

	// Notes
	var noted []domain.PracticeLog
	for _, l := range r.Logs {
		if l.Note != "" {
			noted = append(noted, l)
		}
	}
	if len(noted) > 0 {
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, "Notes")
		pdf.Ln(10)
		pdf.SetFont("Arial", "", 10)
		for _, l := range noted {
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("[%s] %s: %s", l.Date, l.SkillName, l.Note)), "", "", false)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("rendering pdf: %w", err)
	}
	return nil
}
