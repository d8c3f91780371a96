package course

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cursos/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	// shared cache keeps the in-memory database visible across pooled
	// connections; the DSN is unique per test
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Course{}))

	return NewService(db)
}

func mustCreate(t *testing.T, s *Service, name, area, methodology, tier string) *models.Course {
	t.Helper()
	record, err := s.Create(CreateInput{
		Name:        name,
		Area:        area,
		Methodology: methodology,
		Tier:        tier,
	})
	require.NoError(t, err)
	return record
}

func TestCreateAssignsIDAndListReturnsIt(t *testing.T) {
	s := newTestService(t)

	record := mustCreate(t, s, "Direito Tributário", "Direito", "CV100", "FAIXA 2")
	assert.NotZero(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())
	assert.True(t, record.Active)

	courses, err := s.List(Filters{})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, record.ID, courses[0].ID)
	assert.Equal(t, "Direito Tributário", courses[0].Name)
}

func TestCreateRequiredFields(t *testing.T) {
	s := newTestService(t)

	cases := []struct {
		in      CreateInput
		message string
	}{
		{CreateInput{Methodology: "CV100", Tier: "FAIXA 1"}, "Nome do curso é obrigatório"},
		{CreateInput{Name: "Curso", Tier: "FAIXA 1"}, "Metodologia é obrigatória"},
		{CreateInput{Name: "Curso", Methodology: "CV100"}, "Faixa é obrigatória"},
		{CreateInput{Name: "  ", Methodology: "CV100", Tier: "FAIXA 1"}, "Nome do curso é obrigatório"},
	}

	for _, tc := range cases {
		_, err := s.Create(tc.in)
		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, tc.message, ve.Message)
	}
}

func TestCreateAreaDefaultsEmpty(t *testing.T) {
	s := newTestService(t)

	record := mustCreate(t, s, "Sem Área", "", "PBL", "FAIXA 1")
	assert.Equal(t, "", record.Area)
}

func TestListFilters(t *testing.T) {
	s := newTestService(t)

	mustCreate(t, s, "Direito Tributário", "Direito", "CV100", "FAIXA 2")
	mustCreate(t, s, "Gestão Hospitalar", "Saúde", "PBL", "FAIXA 1")
	mustCreate(t, s, "Direito Penal", "Direito", "CV100", "FAIXA 1")

	courses, err := s.List(Filters{Area: "Direito"})
	require.NoError(t, err)
	assert.Len(t, courses, 2)

	courses, err = s.List(Filters{Methodology: "PBL"})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Gestão Hospitalar", courses[0].Name)

	courses, err = s.List(Filters{Area: "Direito", Tier: "FAIXA 1"})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Direito Penal", courses[0].Name)
}

func TestListSearch(t *testing.T) {
	s := newTestService(t)

	mustCreate(t, s, "Direito Tributário", "Direito", "CV100", "FAIXA 2")
	mustCreate(t, s, "Gestão Hospitalar", "Saúde", "PBL", "FAIXA 1")

	// default search field is the course name
	courses, err := s.List(Filters{Search: "Tribut"})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Direito Tributário", courses[0].Name)

	courses, err = s.List(Filters{Search: "Saú", SearchField: "area"})
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, "Gestão Hospitalar", courses[0].Name)

	// unknown selector falls back to the name column
	courses, err = s.List(Filters{Search: "Gestão", SearchField: "whatever"})
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestListExcludesInactive(t *testing.T) {
	s := newTestService(t)

	record := mustCreate(t, s, "Desativado", "", "CV100", "FAIXA 1")
	require.NoError(t, s.db.Model(record).Update("ativo", false).Error)

	courses, err := s.List(Filters{})
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestListOrderedByID(t *testing.T) {
	s := newTestService(t)

	first := mustCreate(t, s, "A", "", "CV100", "FAIXA 1")
	second := mustCreate(t, s, "B", "", "CV100", "FAIXA 1")

	courses, err := s.List(Filters{})
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, first.ID, courses[0].ID)
	assert.Equal(t, second.ID, courses[1].ID)
}

func TestUpdatePartialAndNoop(t *testing.T) {
	s := newTestService(t)

	record := mustCreate(t, s, "Original", "Direito", "CV100", "FAIXA 2")

	// empty payload is a no-op
	unchanged, err := s.Update(record.ID, UpdateInput{})
	require.NoError(t, err)
	assert.Equal(t, record.Name, unchanged.Name)
	assert.Equal(t, record.Area, unchanged.Area)
	assert.Equal(t, record.Methodology, unchanged.Methodology)
	assert.Equal(t, record.Tier, unchanged.Tier)

	name := "Renomeado"
	updated, err := s.Update(record.ID, UpdateInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renomeado", updated.Name)
	assert.Equal(t, "Direito", updated.Area)

	// an update may legally blank a required field
	empty := ""
	blanked, err := s.Update(record.ID, UpdateInput{Methodology: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", blanked.Methodology)
}

func TestUpdateNotFound(t *testing.T) {
	s := newTestService(t)

	_, err := s.Update(999, UpdateInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteIsHard(t *testing.T) {
	s := newTestService(t)

	record := mustCreate(t, s, "Descartável", "", "CV100", "FAIXA 1")
	require.NoError(t, s.Delete(record.ID))

	courses, err := s.List(Filters{})
	require.NoError(t, err)
	assert.Empty(t, courses)

	// record is gone, not soft-flagged
	var count int64
	require.NoError(t, s.db.Model(&models.Course{}).Count(&count).Error)
	assert.Zero(t, count)

	assert.ErrorIs(t, s.Delete(record.ID), ErrNotFound)
}

func TestOptions(t *testing.T) {
	s := newTestService(t)

	mustCreate(t, s, "A", "Direito", "CV100", "FAIXA 1")
	mustCreate(t, s, "B", "Direito", "PBL", "FAIXA 2")
	mustCreate(t, s, "C", "", "CV100", "FAIXA 1")
	inactive := mustCreate(t, s, "D", "Saúde", "EAD", "FAIXA 3")
	require.NoError(t, s.db.Model(inactive).Update("ativo", false).Error)

	opts, err := s.Options()
	require.NoError(t, err)

	// empty and inactive areas are excluded
	assert.Equal(t, []string{"Direito"}, opts.Areas)
	assert.ElementsMatch(t, []string{"CV100", "PBL"}, opts.Methodologies)
	assert.ElementsMatch(t, []string{"FAIXA 1", "FAIXA 2"}, opts.Tiers)
}

func TestFindByIDs(t *testing.T) {
	s := newTestService(t)

	first := mustCreate(t, s, "A", "", "CV100", "FAIXA 1")
	mustCreate(t, s, "B", "", "CV100", "FAIXA 1")
	third := mustCreate(t, s, "C", "", "CV100", "FAIXA 1")

	courses, err := s.FindByIDs([]uint{third.ID, first.ID})
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, first.ID, courses[0].ID)
	assert.Equal(t, third.ID, courses[1].ID)
}

func TestExistsActiveByName(t *testing.T) {
	s := newTestService(t)

	record := mustCreate(t, s, "Existente", "", "CV100", "FAIXA 1")

	exists, err := s.ExistsActiveByName("Existente")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.ExistsActiveByName("Outro")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, s.db.Model(record).Update("ativo", false).Error)
	exists, err = s.ExistsActiveByName("Existente")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCreateBatch(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.CreateBatch(nil))

	batch := []models.Course{
		{Name: "A", Methodology: "CV100", Tier: "FAIXA 1", Active: true},
		{Name: "B", Methodology: "PBL", Tier: "FAIXA 2", Active: true},
	}
	require.NoError(t, s.CreateBatch(batch))

	courses, err := s.List(Filters{})
	require.NoError(t, err)
	assert.Len(t, courses, 2)
}
