package course

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"cursos/models"
)

// Filters narrows a catalog listing. Zero-value fields are ignored.
// Search performs a substring match against the column selected by
// SearchField ("curso", "area", "metodologia" or "faixa"; defaults to the
// course name).
type Filters struct {
	Area        string
	Methodology string
	Tier        string
	Search      string
	SearchField string
}

// CreateInput carries the fields accepted when registering a course.
type CreateInput struct {
	Name        string
	Area        string
	Methodology string
	Tier        string
}

// UpdateInput carries a partial update. Only non-nil fields are applied.
type UpdateInput struct {
	Name        *string
	Area        *string
	Methodology *string
	Tier        *string
}

// Options lists the distinct values in use among active courses, one slice
// per filterable column.
type Options struct {
	Areas         []string `json:"areas"`
	Methodologies []string `json:"metodologias"`
	Tiers         []string `json:"faixas"`
}

// Service provides catalog storage operations on an injected database
// handle. Deletion is a hard delete; the ativo flag only gates queries.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// searchColumns maps the tipo_busca selector to a column name.
var searchColumns = map[string]string{
	"curso":       "nome",
	"area":        "area",
	"metodologia": "metodologia",
	"faixa":       "faixa",
}

// List returns the active courses matching f, ordered by id so responses
// are deterministic across drivers.
func (s *Service) List(f Filters) ([]models.Course, error) {
	query := s.db.Model(&models.Course{}).Where("ativo = ?", true)

	if f.Area != "" {
		query = query.Where("area = ?", f.Area)
	}
	if f.Methodology != "" {
		query = query.Where("metodologia = ?", f.Methodology)
	}
	if f.Tier != "" {
		query = query.Where("faixa = ?", f.Tier)
	}

	if f.Search != "" {
		column, ok := searchColumns[f.SearchField]
		if !ok {
			column = "nome"
		}
		query = query.Where(column+" LIKE ?", "%"+f.Search+"%")
	}

	var courses []models.Course
	if err := query.Order("id asc").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// Create validates the required fields, persists the course and returns the
// stored record with its assigned id and creation timestamp.
func (s *Service) Create(in CreateInput) (*models.Course, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, &ValidationError{Message: "Nome do curso é obrigatório"}
	}
	if strings.TrimSpace(in.Methodology) == "" {
		return nil, &ValidationError{Message: "Metodologia é obrigatória"}
	}
	if strings.TrimSpace(in.Tier) == "" {
		return nil, &ValidationError{Message: "Faixa é obrigatória"}
	}

	record := models.Course{
		Name:        in.Name,
		Area:        in.Area,
		Methodology: in.Methodology,
		Tier:        in.Tier,
		Active:      true,
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}
	return &record, nil
}

// Update applies the non-nil fields of in to the course with the given id.
// Fields absent from the payload keep their previous value. Updated values
// are not re-validated against the non-empty rule.
func (s *Service) Update(id uint, in UpdateInput) (*models.Course, error) {
	var record models.Course
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load course: %w", err)
	}

	if in.Name != nil {
		record.Name = *in.Name
	}
	if in.Area != nil {
		record.Area = *in.Area
	}
	if in.Methodology != nil {
		record.Methodology = *in.Methodology
	}
	if in.Tier != nil {
		record.Tier = *in.Tier
	}

	if err := s.db.Save(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}
	return &record, nil
}

// Delete permanently removes the course with the given id.
func (s *Service) Delete(id uint) error {
	var record models.Course
	if err := s.db.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load course: %w", err)
	}

	if err := s.db.Delete(&record).Error; err != nil {
		return fmt.Errorf("failed to delete course: %w", err)
	}
	return nil
}

// Options returns the distinct filter values in use among active courses.
// Empty areas are excluded so the dropdown never offers a blank entry.
func (s *Service) Options() (*Options, error) {
	opts := &Options{
		Areas:         []string{},
		Methodologies: []string{},
		Tiers:         []string{},
	}

	base := func() *gorm.DB {
		return s.db.Model(&models.Course{}).Where("ativo = ?", true)
	}

	if err := base().Where("area IS NOT NULL AND area <> ''").
		Distinct("area").Order("area").Pluck("area", &opts.Areas).Error; err != nil {
		return nil, fmt.Errorf("failed to load area options: %w", err)
	}
	if err := base().Distinct("metodologia").Order("metodologia").
		Pluck("metodologia", &opts.Methodologies).Error; err != nil {
		return nil, fmt.Errorf("failed to load methodology options: %w", err)
	}
	if err := base().Distinct("faixa").Order("faixa").
		Pluck("faixa", &opts.Tiers).Error; err != nil {
		return nil, fmt.Errorf("failed to load tier options: %w", err)
	}

	return opts, nil
}

// All returns every stored course, inactive ones included. Used by the
// debug dump endpoint.
func (s *Service) All() ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Order("id asc").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

// FindByIDs fetches the courses with the given ids, in id order.
func (s *Service) FindByIDs(ids []uint) ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Where("id IN ?", ids).Order("id asc").Find(&courses).Error; err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}
	return courses, nil
}

// ExistsActiveByName reports whether an active course with this exact name
// is already stored.
func (s *Service) ExistsActiveByName(name string) (bool, error) {
	var count int64
	err := s.db.Model(&models.Course{}).
		Where("nome = ? AND ativo = ?", name, true).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check course name: %w", err)
	}
	return count > 0, nil
}

// CreateBatch persists the staged records in a single transaction.
func (s *Service) CreateBatch(courses []models.Course) error {
	if len(courses) == 0 {
		return nil
	}
	if err := s.db.Create(&courses).Error; err != nil {
		return fmt.Errorf("failed to persist imported courses: %w", err)
	}
	return nil
}
