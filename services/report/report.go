// Package report renders course listings into paginated PDF documents in
// two visual layouts: design1 (corporate) and design2 (analytics).
package report

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"cursos/models"
)

// ErrUnsupportedLayout is returned for any layout selector other than
// design1 or design2.
var ErrUnsupportedLayout = errors.New("Design inválido")

// ErrEmptySelection is returned when no courses are given to render.
var ErrEmptySelection = errors.New("Nenhum curso selecionado")

const (
	// DefaultTitle is used when the caller supplies no report title.
	DefaultTitle = "Relatório de Cursos"

	timestampLayout = "02/01/2006 às 15:04"
)

// Generate renders the given courses with the selected layout and returns
// the PDF bytes.
func Generate(courses []models.Course, layout, title string) ([]byte, error) {
	if len(courses) == 0 {
		return nil, ErrEmptySelection
	}
	if title == "" {
		title = DefaultTitle
	}

	builder := newPDFBuilder()
	switch layout {
	case "design1":
		renderCorporate(builder, courses, title)
	case "design2":
		renderAnalytics(builder, courses, title)
	default:
		return nil, ErrUnsupportedLayout
	}

	return builder.Output()
}

// renderCorporate builds the single-flow corporate layout: title block,
// generation timestamp, summary statistics, the course table with zebra
// striping and a closing footer.
func renderCorporate(b DocBuilder, courses []models.Course, title string) {
	brand := RGB{139, 0, 0}

	b.AddTitle("UNYLEYA", 24, brand)
	b.AddTitle(title, 14, colorGrey)
	b.AddParagraph("Gerado em: " + time.Now().Format(timestampLayout))
	b.AddSpacer(8)

	areas := distinctNonEmpty(pluck(courses, func(c models.Course) string { return c.Area }))
	methodologies := distinctNonEmpty(pluck(courses, func(c models.Course) string { return c.Methodology }))

	b.AddTable(
		[]string{"Estatísticas do Relatório", ""},
		[][]string{
			{"Total de Cursos:", strconv.Itoa(len(courses))},
			{"Áreas Diferentes:", strconv.Itoa(len(areas))},
			{"Metodologias Diferentes:", strconv.Itoa(len(methodologies))},
		},
		TableStyle{
			ColWidths:  []float64{76, 26},
			HeaderFill: brand,
			HeaderText: colorWhite,
			BodyFill:   RGB{245, 245, 220},
			FontSize:   10,
		},
	)
	b.AddSpacer(10)

	b.AddTitle("Lista de Cursos", 14, colorBlack)

	rows := make([][]string, 0, len(courses))
	for i, c := range courses {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			truncate(c.Name, 40),
			areaOr(c.Area, "N/A"),
			c.Methodology,
			c.Tier,
		})
	}
	b.AddTable(
		[]string{"#", "Nome do Curso", "Área", "Metodologia", "Faixa"},
		rows,
		TableStyle{
			ColWidths:  []float64{13, 80, 32, 27, 28},
			HeaderFill: brand,
			HeaderText: colorWhite,
			AltFill:    RGB{211, 211, 211},
			Shaded:     true,
			FontSize:   8,
		},
	)

	b.AddSpacer(10)
	b.AddParagraph("Sistema de Gestão de Cursos - Unyleya")
}

// renderAnalytics builds the multi-page analytics layout: dashboard grid,
// methodology breakdown, then the full itemized table on its own page.
func renderAnalytics(b DocBuilder, courses []models.Course, title string) {
	accent := RGB{51, 51, 204}

	b.AddTitle("UNYLEYA ANALYTICS", 28, accent)
	b.AddTitle(title, 16, colorGrey)
	b.AddDivider(accent)
	b.AddSpacer(6)

	total := len(courses)
	areas := distinctNonEmpty(pluck(courses, func(c models.Course) string { return c.Area }))
	methodologies := distinct(pluck(courses, func(c models.Course) string { return c.Methodology }))
	tiers := distinct(pluck(courses, func(c models.Course) string { return c.Tier }))

	b.AddTable(
		[]string{"DASHBOARD EXECUTIVO"},
		nil,
		TableStyle{
			HeaderFill: accent,
			HeaderText: colorWhite,
			FontSize:   14,
		},
	)
	b.AddTable(
		nil,
		[][]string{
			{"Total de Cursos", strconv.Itoa(total), "Áreas Únicas", strconv.Itoa(len(areas))},
			{"Metodologias", strconv.Itoa(len(methodologies)), "Faixas Diferentes", strconv.Itoa(len(tiers))},
		},
		TableStyle{
			ColWidths: []float64{60, 30, 60, 30},
			BodyFill:  RGB{173, 216, 230},
			FontSize:  10,
		},
	)
	b.AddSpacer(10)

	b.AddTitle("Distribuição por Metodologia", 14, colorBlack)

	breakdownRows := make([][]string, 0)
	for _, entry := range methodologyBreakdown(courses) {
		breakdownRows = append(breakdownRows, []string{
			entry.Value,
			strconv.Itoa(entry.Count),
			fmt.Sprintf("%.1f%%", entry.Percent),
		})
	}
	b.AddTable(
		[]string{"Metodologia", "Quantidade", "Percentual"},
		breakdownRows,
		TableStyle{
			ColWidths:  []float64{80, 50, 50},
			HeaderFill: RGB{0, 100, 0},
			HeaderText: colorWhite,
			BodyFill:   RGB{144, 238, 144},
			FontSize:   10,
		},
	)

	b.AddPageBreak()
	b.AddTitle("Lista Completa de Cursos", 14, colorBlack)

	rows := make([][]string, 0, len(courses))
	for i, c := range courses {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			truncate(c.Name, 35),
			areaOr(c.Area, "Não definida"),
			c.Methodology,
			c.Tier,
		})
	}
	b.AddTable(
		[]string{"ID", "Nome do Curso", "Área", "Metodologia", "Faixa"},
		rows,
		TableStyle{
			ColWidths:  []float64{11, 74, 35, 30, 30},
			HeaderFill: accent,
			HeaderText: colorWhite,
			AltFill:    RGB{242, 242, 255},
			Shaded:     true,
			FontSize:   8,
		},
	)

	b.AddSpacer(10)
	b.AddParagraph(fmt.Sprintf("Relatório gerado em %s | Sistema Unyleya", time.Now().Format(timestampLayout)))
}

// breakdownEntry is one value of the methodology distribution.
type breakdownEntry struct {
	Value   string
	Count   int
	Percent float64
}

// methodologyBreakdown counts methodology occurrences and sorts them by
// descending count. The sort is stable, so ties keep first-encountered
// order.
func methodologyBreakdown(courses []models.Course) []breakdownEntry {
	total := len(courses)
	counts := make(map[string]int)
	order := make([]string, 0)

	for _, c := range courses {
		if _, seen := counts[c.Methodology]; !seen {
			order = append(order, c.Methodology)
		}
		counts[c.Methodology]++
	}

	entries := make([]breakdownEntry, 0, len(order))
	for _, value := range order {
		entries = append(entries, breakdownEntry{
			Value:   value,
			Count:   counts[value],
			Percent: float64(counts[value]) / float64(total) * 100,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

func pluck(courses []models.Course, field func(models.Course) string) []string {
	values := make([]string, 0, len(courses))
	for _, c := range courses {
		values = append(values, field(c))
	}
	return values
}

func distinct(values []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func distinctNonEmpty(values []string) []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, v := range values {
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func areaOr(area, placeholder string) string {
	if area == "" {
		return placeholder
	}
	return area
}
