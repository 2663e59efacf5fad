package model

import (
	"time"

	"github.com/google/uuid"
)

type EvaluationField struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Weight       int       `gorm:"not null;default:0" json:"weight"` // percent
	IsActive     bool      `gorm:"not null" json:"is_active"`
	IsRequired   bool      `json:"is_required"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (f *EvaluationField) TableName() string {
	return "evaluation_fields"
}

type Evaluation struct {
	ID             uuid.UUID              `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ApplicantID    uuid.UUID              `gorm:"type:uuid;index;not null" json:"applicant_id"`
	EvaluatorID    *uuid.UUID             `gorm:"type:uuid" json:"evaluator_id"`
	OverallRating  float64                `gorm:"type:double precision" json:"overall_rating"`
	Strengths      string                 `gorm:"type:text" json:"strengths"`
	Weaknesses     string                 `gorm:"type:text" json:"weaknesses"`
	Comments       string                 `gorm:"type:text" json:"comments"`
	Recommendation string                 `gorm:"type:varchar(20)" json:"recommendation"` // hire, reject, consider
	EvaluatedAt    time.Time              `json:"evaluated_at"`
	FieldValues    []EvaluationFieldValue `gorm:"foreignKey:EvaluationID" json:"field_values,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func (e *Evaluation) TableName() string {
	return "evaluations"
}

type EvaluationFieldValue struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EvaluationID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_evaluation_field;not null" json:"evaluation_id"`
	FieldID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_evaluation_field;not null" json:"field_id"`
	Rating       int       `gorm:"not null" json:"rating"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (v *EvaluationFieldValue) TableName() string {
	return "evaluation_field_values"
}
