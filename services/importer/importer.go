// Package importer loads courses in bulk from uploaded spreadsheets.
package importer

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"cursos/models"
	"cursos/services/course"
)

// ErrUnsupportedFormat is returned for files that are not Excel spreadsheets.
var ErrUnsupportedFormat = errors.New("Apenas arquivos Excel (.xlsx, .xls) são permitidos")

// Row holds the field values of one staged spreadsheet row.
type Row struct {
	Name        string `json:"nome"`
	Area        string `json:"area"`
	Methodology string `json:"metodologia"`
	Tier        string `json:"faixa"`
}

// Result reports the outcome of an import: how many rows were committed,
// one message per rejected row, and the staged field values.
type Result struct {
	AddedCount int      `json:"cursos_adicionados"`
	Errors     []string `json:"erros"`
	Added      []Row    `json:"detalhes"`
}

// headerTerms are the lower-cased cell values that mark row 1 as a header.
var headerTerms = map[string]bool{
	"nome":        true,
	"curso":       true,
	"área":        true,
	"metodologia": true,
	"faixa":       true,
}

// Importer validates spreadsheet rows and commits the accepted ones to the
// catalog in a single batch.
type Importer struct {
	courses *course.Service
}

func New(courses *course.Service) *Importer {
	return &Importer{courses: courses}
}

// AllowedExtension reports whether the filename carries a recognized
// spreadsheet extension.
func AllowedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return true
	}
	return false
}

// ImportFile opens the spreadsheet at path and imports its first sheet.
func (imp *Importer) ImportFile(path string) (*Result, error) {
	if !AllowedExtension(path) {
		return nil, ErrUnsupportedFormat
	}

	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer workbook.Close()

	return imp.importWorkbook(workbook)
}

// ImportReader imports a spreadsheet from an in-memory stream.
func (imp *Importer) ImportReader(r io.Reader) (*Result, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer workbook.Close()

	return imp.importWorkbook(workbook)
}

// importWorkbook walks the active sheet row by row. Rows failing validation
// or naming an already registered course are reported and skipped; the rest
// are staged and committed together at the end. The duplicate check only
// sees records committed before the import began, so identical rows within
// one upload are not cross-checked against each other.
func (imp *Importer) importWorkbook(workbook *excelize.File) (*Result, error) {
	sheet := workbook.GetSheetName(workbook.GetActiveSheetIndex())
	if sheet == "" {
		sheet = workbook.GetSheetName(0)
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	result := &Result{Errors: []string{}, Added: []Row{}}

	start := 0
	if len(rows) > 0 && hasHeader(rows[0]) {
		start = 1
	}

	var staged []models.Course

	for i := start; i < len(rows); i++ {
		line := i + 1 // 1-based spreadsheet row number

		if isBlank(rows[i]) {
			continue
		}

		name := cellAt(rows[i], 0)
		area := cellAt(rows[i], 1)
		methodology := cellAt(rows[i], 2)
		tier := cellAt(rows[i], 3)

		if name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: Nome do curso é obrigatório", line))
			continue
		}
		if methodology == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: Metodologia é obrigatória", line))
			continue
		}
		if tier == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: Faixa é obrigatória", line))
			continue
		}

		exists, err := imp.courses.ExistsActiveByName(name)
		if err != nil {
			return nil, err
		}
		if exists {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: Curso \"%s\" já existe", line, name))
			continue
		}

		staged = append(staged, models.Course{
			Name:        name,
			Area:        area,
			Methodology: methodology,
			Tier:        tier,
			Active:      true,
		})
		result.Added = append(result.Added, Row{
			Name:        name,
			Area:        area,
			Methodology: methodology,
			Tier:        tier,
		})
	}

	if err := imp.courses.CreateBatch(staged); err != nil {
		return nil, err
	}
	result.AddedCount = len(staged)

	return result, nil
}

func hasHeader(row []string) bool {
	for _, cell := range row {
		if headerTerms[strings.ToLower(strings.TrimSpace(cell))] {
			return true
		}
	}
	return false
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
