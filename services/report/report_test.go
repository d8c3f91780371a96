package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cursos/models"
)

func sampleCourses() []models.Course {
	return []models.Course{
		{ID: 1, Name: "Direito Tributário", Area: "Direito", Methodology: "CV100", Tier: "FAIXA 2"},
		{ID: 2, Name: "Gestão Hospitalar", Area: "", Methodology: "CV100", Tier: "FAIXA 1"},
		{ID: 3, Name: "Engenharia de Software", Area: "Tecnologia", Methodology: "PBL", Tier: "FAIXA 1"},
	}
}

// fakeBuilder records the blocks a layout emits so tests can inspect them
// without decoding PDF bytes.
type fakeBuilder struct {
	titles     []string
	paragraphs []string
	tables     [][][]string
	headers    [][]string
	pageBreaks int
	dividers   int
}

func (f *fakeBuilder) AddTitle(text string, size float64, color RGB) { f.titles = append(f.titles, text) }
func (f *fakeBuilder) AddParagraph(text string)                      { f.paragraphs = append(f.paragraphs, text) }
func (f *fakeBuilder) AddSpacer(height float64)                      {}
func (f *fakeBuilder) AddDivider(color RGB)                          { f.dividers++ }
func (f *fakeBuilder) AddTable(headers []string, rows [][]string, style TableStyle) {
	f.headers = append(f.headers, headers)
	f.tables = append(f.tables, rows)
}
func (f *fakeBuilder) AddPageBreak()           { f.pageBreaks++ }
func (f *fakeBuilder) Output() ([]byte, error) { return []byte("fake"), nil }

func findTableWithHeader(f *fakeBuilder, header string) [][]string {
	for i, headers := range f.headers {
		for _, h := range headers {
			if h == header {
				return f.tables[i]
			}
		}
	}
	return nil
}

func TestGenerateEmptySelection(t *testing.T) {
	_, err := Generate(nil, "design1", "Relatório")
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestGenerateUnsupportedLayout(t *testing.T) {
	_, err := Generate(sampleCourses(), "design3", "Relatório")
	assert.ErrorIs(t, err, ErrUnsupportedLayout)
}

func TestGenerateProducesPDF(t *testing.T) {
	for _, layout := range []string{"design1", "design2"} {
		document, err := Generate(sampleCourses(), layout, "")
		require.NoError(t, err, layout)
		require.NotEmpty(t, document, layout)
		assert.Equal(t, "%PDF", string(document[:4]), layout)
	}
}

func TestCorporateLayoutBlocks(t *testing.T) {
	f := &fakeBuilder{}
	renderCorporate(f, sampleCourses(), "Relatório de Cursos")

	assert.Contains(t, f.titles, "UNYLEYA")
	assert.Contains(t, f.titles, "Relatório de Cursos")
	assert.Zero(t, f.pageBreaks)

	stats := findTableWithHeader(f, "Estatísticas do Relatório")
	require.NotNil(t, stats)
	assert.Equal(t, [][]string{
		{"Total de Cursos:", "3"},
		{"Áreas Diferentes:", "2"},
		{"Metodologias Diferentes:", "2"},
	}, stats)

	courses := findTableWithHeader(f, "Nome do Curso")
	require.NotNil(t, courses)
	require.Len(t, courses, 3)
	// empty area is rendered as N/A
	assert.Equal(t, "N/A", courses[1][2])
}

func TestCorporateTruncatesLongNames(t *testing.T) {
	long := models.Course{
		Name:        "Curso com um nome extremamente longo que passa do limite",
		Methodology: "CV100",
		Tier:        "FAIXA 1",
	}
	f := &fakeBuilder{}
	renderCorporate(f, []models.Course{long}, "Relatório")

	rows := findTableWithHeader(f, "Nome do Curso")
	require.Len(t, rows, 1)
	assert.Len(t, []rune(rows[0][1]), 43) // 40 chars plus ellipsis
	assert.Equal(t, "...", rows[0][1][len(rows[0][1])-3:])
}

func TestAnalyticsLayoutBlocks(t *testing.T) {
	f := &fakeBuilder{}
	renderAnalytics(f, sampleCourses(), "Relatório Avançado")

	assert.Contains(t, f.titles, "UNYLEYA ANALYTICS")
	assert.Equal(t, 1, f.dividers)
	assert.Equal(t, 1, f.pageBreaks)

	breakdown := findTableWithHeader(f, "Metodologia")
	require.NotNil(t, breakdown)
	require.Len(t, breakdown, 2)
	assert.Equal(t, []string{"CV100", "2", "66.7%"}, breakdown[0])
	assert.Equal(t, []string{"PBL", "1", "33.3%"}, breakdown[1])

	full := findTableWithHeader(f, "Nome do Curso")
	require.NotNil(t, full)
	require.Len(t, full, 3)
	// empty area gets the analytics placeholder
	assert.Equal(t, "Não definida", full[1][2])
}

func TestMethodologyBreakdownStableOrderAndSum(t *testing.T) {
	courses := []models.Course{
		{Methodology: "CV100"},
		{Methodology: "PBL"},
		{Methodology: "CV100"},
		{Methodology: "EAD"},
	}

	entries := methodologyBreakdown(courses)
	require.Len(t, entries, 3)
	assert.Equal(t, "CV100", entries[0].Value)
	assert.Equal(t, 2, entries[0].Count)
	// ties keep first-encountered order
	assert.Equal(t, "PBL", entries[1].Value)
	assert.Equal(t, "EAD", entries[2].Value)

	sum := 0.0
	for _, e := range entries {
		sum += e.Percent
	}
	assert.InDelta(t, 100.0, sum, 0.01)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "curto", truncate("curto", 40))
	assert.Equal(t, "aaaa...", truncate("aaaaaa", 4))
	// rune-safe for accented names
	assert.Equal(t, "ééé...", truncate("ééééé", 3))
}
