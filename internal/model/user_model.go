package model

import (
	"time"

	"github.com/fadilmartias/recruit-admin/internal/settings"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Role struct {
	ID          uuid.UUID                               `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	RoleKey     string                                  `gorm:"type:varchar(100);uniqueIndex;not null" json:"role_key"`
	RoleName    string                                  `gorm:"type:varchar(255);not null" json:"role_name"`
	Description string                                  `gorm:"type:text" json:"description"`
	IsActive    bool                                    `gorm:"not null" json:"is_active"`
	Permissions datatypes.JSONType[settings.Permissions] `gorm:"type:jsonb" json:"permissions"`
	CreatedAt   time.Time                               `json:"created_at"`
	UpdatedAt   time.Time                               `json:"updated_at"`
}

func (r *Role) TableName() string {
	return "roles"
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Role         string    `gorm:"type:varchar(100);not null" json:"role"`
	PasswordHash string    `gorm:"type:varchar(255)" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (u *User) TableName() string {
	return "users"
}

// All lists every model for AutoMigrate.
func All() []any {
	return []any{
		&Applicant{},
		&ApplicantField{},
		&EvaluationField{},
		&Evaluation{},
		&EvaluationFieldValue{},
		&StatusSetting{},
		&DisplaySetting{},
		&DashboardCard{},
		&Role{},
		&User{},
	}
}
