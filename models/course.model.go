package models

import "time"

// Course represents a training course in the catalog.
// JSON field names follow the API contract consumed by the frontend.
type Course struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"nome" gorm:"column:nome;size:200;not null"`
	Area        string    `json:"area" gorm:"column:area;size:100"`
	Methodology string    `json:"metodologia" gorm:"column:metodologia;size:50;not null"`
	Tier        string    `json:"faixa" gorm:"column:faixa;size:50;not null"`
	CreatedAt   time.Time `json:"data_criacao" gorm:"column:data_criacao"`
	Active      bool      `json:"ativo" gorm:"column:ativo;default:true"`
}

// TableName keeps the table name used by the previous deployment
func (Course) TableName() string {
	return "cursos"
}
