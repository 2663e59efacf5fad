package model

import (
	"time"

	"github.com/fadilmartias/recruit-admin/internal/settings"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type StatusSetting struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	StatusKey    string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"status_key"`
	StatusName   string    `gorm:"type:varchar(255);not null" json:"status_name"`
	StatusColor  string    `gorm:"type:varchar(30)" json:"status_color"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s *StatusSetting) TableName() string {
	return "status_settings"
}

// DisplaySetting rows with SchemaVersion 0 carry legacy untyped settings.
type DisplaySetting struct {
	ID            uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	PageName      string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"page_name"`
	SchemaVersion int            `gorm:"not null;default:0" json:"schema_version"`
	Settings      datatypes.JSON `gorm:"type:jsonb" json:"settings"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func (s *DisplaySetting) TableName() string {
	return "display_settings"
}

type DashboardCard struct {
	ID           uuid.UUID                             `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CardKey      string                                `gorm:"type:varchar(100);uniqueIndex;not null" json:"card_key"`
	CardName     string                                `gorm:"type:varchar(255);not null" json:"card_name"`
	CardType     string                                `gorm:"type:varchar(20);not null" json:"card_type"` // number, chart, list, progress
	CardIcon     string                                `gorm:"type:varchar(50)" json:"card_icon"`
	CardColor    string                                `gorm:"type:varchar(30)" json:"card_color"`
	DataSource   string                                `gorm:"type:varchar(50)" json:"data_source"`
	DataQuery    datatypes.JSONType[settings.CardQuery] `gorm:"type:jsonb" json:"data_query"`
	DisplayOrder int                                   `json:"display_order"`
	IsActive     bool                                  `gorm:"not null" json:"is_active"`
	IsCustom     bool                                  `json:"is_custom"`
	CreatedAt    time.Time                             `json:"created_at"`
	UpdatedAt    time.Time                             `json:"updated_at"`
}

func (c *DashboardCard) TableName() string {
	return "dashboard_cards"
}
