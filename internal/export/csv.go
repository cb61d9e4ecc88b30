package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/skatelog/internal/domain"
)

// ErrNoLogs is returned when there is nothing to export.
var ErrNoLogs = errors.New("no practice logs to export")

// FilePrefix names every export file.
const FilePrefix = "skating-practice"

var csvHeader = []string{"Date", "Skill Name", "Variant", "Note"}

// WriteCSV writes one row per log in the given order. The header row is
// bare; every data cell is double-quoted with embedded quotes doubled.
// Rows are separated by "\n" with no trailing newline.
func WriteCSV(w io.Writer, logs []domain.PracticeLog) error {
	if len(logs) == 0 {
		return ErrNoLogs
	}

	var b strings.Builder
	b.WriteString(strings.Join(csvHeader, ","))
	for _, l := range logs {
		b.WriteByte('\n')
		b.WriteString(quoteRow(l.Date, l.SkillName, l.Variant, l.Note))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

func quoteRow(cells ...string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}

// DefaultFileName returns prefix-YYYY-MM-DD.ext using the UTC date of now.
func DefaultFileName(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", prefix, domain.FormatDate(now.UTC()), strings.TrimPrefix(ext, "."))
}
