package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type Applicant struct {
	ID            uuid.UUID         `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name          string            `gorm:"type:varchar(255);not null" json:"name"`
	Email         *string           `gorm:"type:varchar(255);uniqueIndex" json:"email"` // NULL when not given
	Phone         string            `gorm:"type:varchar(50)" json:"phone"`
	Position      string            `gorm:"type:varchar(255);index" json:"position"`
	Status        string            `gorm:"type:varchar(50);index;not null" json:"status"`
	Evaluation    string            `gorm:"type:text" json:"evaluation"`
	Comment       string            `gorm:"type:text" json:"comment"`
	InterviewDate *time.Time        `gorm:"type:timestamptz;index" json:"interview_date"`
	Extra         datatypes.JSONMap `gorm:"type:jsonb" json:"extra,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (a *Applicant) TableName() string {
	return "applicants"
}

func (a *Applicant) EmailAddress() string {
	if a.Email == nil {
		return ""
	}
	return *a.Email
}

// ApplicantField configures one input of the applicant registration form.
type ApplicantField struct {
	ID           uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	FieldKey     string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"field_key"`
	FieldName    string         `gorm:"type:varchar(255);not null" json:"field_name"`
	FieldType    string         `gorm:"type:varchar(20);not null" json:"field_type"` // text, email, tel, select, textarea, date
	IsRequired   bool           `json:"is_required"`
	IsDisplayed  bool           `gorm:"not null" json:"is_displayed"`
	DisplayOrder int            `json:"display_order"`
	Options      pq.StringArray `gorm:"type:text[]" json:"options"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (f *ApplicantField) TableName() string {
	return "applicant_fields"
}
