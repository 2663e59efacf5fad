package dto

import (
	"encoding/json"

	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/scoring"
	"github.com/fadilmartias/recruit-admin/internal/settings"
)

type EvaluationFieldRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Description  string `json:"description"`
	Weight       int    `json:"weight" validate:"min=0,max=100"`
	IsActive     *bool  `json:"is_active"`
	IsRequired   bool   `json:"is_required"`
	DisplayOrder int    `json:"display_order"`
}

// EvaluationFieldsDTO carries the fields with the weight check the console warns on.
type EvaluationFieldsDTO struct {
	Fields  []model.EvaluationField `json:"fields"`
	Weights scoring.WeightCheck     `json:"weights"`
	Warning string                  `json:"warning,omitempty"`
}

type StatusSettingRequest struct {
	StatusKey    string `json:"status_key" validate:"omitempty,max=100"`
	StatusName   string `json:"status_name" validate:"required,max=255"`
	StatusColor  string `json:"status_color" validate:"omitempty,max=30"`
	IsActive     *bool  `json:"is_active"`
	DisplayOrder int    `json:"display_order"`
}

type RoleRequest struct {
	RoleKey     string               `json:"role_key" validate:"omitempty,max=100"`
	RoleName    string               `json:"role_name" validate:"required,max=255"`
	Description string               `json:"description"`
	IsActive    *bool                `json:"is_active"`
	Permissions settings.Permissions `json:"permissions"`
}

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required,max=100"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email" validate:"omitempty,email,max=255"`
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
	Role     *string `json:"role" validate:"omitempty,max=100"`
}

type DisplaySettingRequest struct {
	Columns []settings.Column `json:"columns"`
	Cards   []string          `json:"cards"`
}

type DisplaySettingDTO struct {
	PageName      string           `json:"page_name"`
	SchemaVersion int              `json:"schema_version"`
	Settings      settings.Display `json:"settings"`
}

type DashboardCardRequest struct {
	CardName     string          `json:"card_name" validate:"required,max=255"`
	CardType     string          `json:"card_type" validate:"required,oneof=number chart list progress"`
	CardIcon     string          `json:"card_icon" validate:"omitempty,max=50"`
	CardColor    string          `json:"card_color" validate:"omitempty,max=30"`
	DataSource   string          `json:"data_source" validate:"omitempty,max=50"`
	DataQuery    json.RawMessage `json:"data_query" validate:"required"`
	DisplayOrder int             `json:"display_order"`
	IsActive     *bool           `json:"is_active"`
}

type ApplicantFieldRequest struct {
	FieldKey     string   `json:"field_key" validate:"omitempty,max=100"`
	FieldName    string   `json:"field_name" validate:"required,max=255"`
	FieldType    string   `json:"field_type" validate:"required,oneof=text email tel select textarea date"`
	IsRequired   bool     `json:"is_required"`
	IsDisplayed  *bool    `json:"is_displayed"`
	DisplayOrder int      `json:"display_order"`
	Options      []string `json:"options"`
}
