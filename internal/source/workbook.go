// Package source reads sentence rows from the drill spreadsheet.
package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/hammamikhairi/lingodrill/internal/domain"
	"github.com/hammamikhairi/lingodrill/internal/logger"
)

// baseColumns is how many leading columns must carry text for a row to
// count as populated. English, Korean and Chinese are the base languages;
// Vietnamese and Japanese columns are optional.
const baseColumns = 3

// Workbook is a sentence source backed by one sheet of an xlsx workbook.
// The sheet is read fully at open time; Rows and LastRow never touch the
// file again.
type Workbook struct {
	sheet   string
	rows    []domain.SentenceRow
	lastRow int
	log     *logger.Logger
}

var _ domain.SentenceSource = (*Workbook)(nil)

// Sheets lists the sheet names of a workbook file.
func Sheets(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()
	return f.GetSheetList(), nil
}

// Open reads one sheet of the workbook at path into memory. Column order is
// positional: english, korean, chinese, vietnamese, japanese. Rows after
// the first row whose base columns are all blank are ignored.
func Open(path, sheet string, log *logger.Logger) (*Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	return load(f, sheet, log)
}

// FromFile reads a sheet out of an already open workbook. Used by tests
// that build workbooks in memory.
func FromFile(f *excelize.File, sheet string, log *logger.Logger) (*Workbook, error) {
	return load(f, sheet, log)
}

func load(f *excelize.File, sheet string, log *logger.Logger) (*Workbook, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return nil, fmt.Errorf("sheet %q: %w", sheet, domain.ErrSheetNotFound)
	}

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	w := &Workbook{sheet: sheet, log: log}
	for _, cells := range raw {
		if len(cells) < baseColumns {
			// Pad short rows so the blank check below is uniform.
			cells = append(cells, make([]string, baseColumns-len(cells))...)
		}
		if blankBaseColumns(cells) {
			break
		}

		row := domain.SentenceRow{
			Index: len(w.rows) + 1,
			Text:  make(map[domain.Language]string, len(domain.Languages)),
		}
		for i, lang := range domain.Languages {
			if i < len(cells) {
				row.Text[lang] = strings.TrimSpace(cells[i])
			} else {
				row.Text[lang] = ""
			}
		}
		w.rows = append(w.rows, row)
	}
	w.lastRow = len(w.rows)

	if w.lastRow == 0 {
		return nil, fmt.Errorf("sheet %q has no populated rows: %w", sheet, domain.ErrEmptyColumn)
	}

	log.Debug("workbook: loaded %d rows from sheet %q", w.lastRow, sheet)
	return w, nil
}

func blankBaseColumns(cells []string) bool {
	for i := 0; i < baseColumns; i++ {
		if strings.TrimSpace(cells[i]) != "" {
			return false
		}
	}
	return true
}

// Rows returns the 1-based inclusive row range [start, end]. Every row in
// the range must carry text in all base columns; a gap is a configuration
// error surfaced before the playback loop starts.
func (w *Workbook) Rows(ctx context.Context, start, end int) ([]domain.SentenceRow, error) {
	if start < 1 || end < start || end > w.lastRow {
		return nil, fmt.Errorf("rows [%d,%d] of %d: %w", start, end, w.lastRow, domain.ErrInvalidRange)
	}
	rows := w.rows[start-1 : end]
	for _, row := range rows {
		for _, lang := range domain.Languages[:baseColumns] {
			if row.Get(lang) == "" {
				return nil, fmt.Errorf("row %d: %s column is empty: %w", row.Index, lang, domain.ErrEmptyColumn)
			}
		}
	}
	return rows, nil
}

// LastRow returns the number of populated rows in the sheet.
func (w *Workbook) LastRow(ctx context.Context) (int, error) {
	return w.lastRow, nil
}
