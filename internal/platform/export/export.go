// Package export renders tabular data as XLSX spreadsheets.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/tealeg/xlsx"
)

const (
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	DateLayout  = "02/01/2006"
	TimeLayout  = "02/01/2006 15:04"
)

// Workbook is a spreadsheet built one sheet at a time.
type Workbook struct {
	file *xlsx.File
}

func NewWorkbook() *Workbook {
	return &Workbook{file: xlsx.NewFile()}
}

// AddSheet appends a sheet with a bold header row followed by rows.
func (w *Workbook) AddSheet(name string, headers []string, rows [][]string) error {
	sheet, err := w.file.AddSheet(name)
	if err != nil {
		return fmt.Errorf("add sheet %s: %w", name, err)
	}

	header := sheet.AddRow()
	for _, h := range headers {
		cell := header.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		style.Font.Bold = true
		cell.SetStyle(style)
	}

	for _, r := range rows {
		row := sheet.AddRow()
		for _, v := range r {
			row.AddCell().SetString(v)
		}
	}
	return nil
}

// Write serializes the workbook.
func (w *Workbook) Write(out io.Writer) error {
	if err := w.file.Write(out); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// FormatTime renders t in local clinic format, or "" for the zero time.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimeLayout)
}

// FormatOptionalTime is FormatTime for nullable values.
func FormatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatTime(*t)
}

// FormatDate renders only the date part.
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// Str dereferences an optional string.
func Str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
