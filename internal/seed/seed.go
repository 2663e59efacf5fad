// Package seed loads the default settings catalogue and writes it to the database.
package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/settings"
	"gopkg.in/yaml.v3"
	"gorm.io/datatypes"
)

//go:embed defaults.yaml
var defaults []byte

type Catalogue struct {
	Statuses         []Status          `yaml:"statuses"`
	EvaluationFields []EvaluationField `yaml:"evaluation_fields"`
	Roles            []Role            `yaml:"roles"`
	ApplicantFields  []ApplicantField  `yaml:"applicant_fields"`
	DashboardCards   []DashboardCard   `yaml:"dashboard_cards"`
	Displays         []Display         `yaml:"display_settings"`
}

type Status struct {
	Key   string `yaml:"key"`
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type EvaluationField struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Weight      int    `yaml:"weight"`
	Required    bool   `yaml:"required"`
	Inactive    bool   `yaml:"inactive"`
}

type Role struct {
	Key         string               `yaml:"key"`
	Name        string               `yaml:"name"`
	Description string               `yaml:"description"`
	FullAccess  bool                 `yaml:"full_access"`
	Permissions settings.Permissions `yaml:"permissions"`
}

type ApplicantField struct {
	Key      string   `yaml:"key"`
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"`
	Required bool     `yaml:"required"`
	Hidden   bool     `yaml:"hidden"`
	Options  []string `yaml:"options"`
}

type DashboardCard struct {
	Key    string         `yaml:"key"`
	Name   string         `yaml:"name"`
	Type   string         `yaml:"type"`
	Icon   string         `yaml:"icon"`
	Color  string         `yaml:"color"`
	Active *bool          `yaml:"active"`
	Query  map[string]any `yaml:"query"`
}

type Display struct {
	Page    string   `yaml:"page"`
	Columns []string `yaml:"columns"`
	Cards   []string `yaml:"cards"`
}

// Load reads the catalogue at path, or the built-in defaults when path is empty.
func Load(path string) (*Catalogue, error) {
	raw := defaults
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalogue: %w", err)
		}
		raw = b
	}
	var c Catalogue
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("parse catalogue: %w", err)
	}
	return &c, nil
}

func (c *Catalogue) StatusRows() []model.StatusSetting {
	rows := make([]model.StatusSetting, len(c.Statuses))
	for i, s := range c.Statuses {
		rows[i] = model.StatusSetting{
			StatusKey:    s.Key,
			StatusName:   s.Name,
			StatusColor:  s.Color,
			IsActive:     true,
			DisplayOrder: i + 1,
		}
	}
	return rows
}

func (c *Catalogue) EvaluationFieldRows() []model.EvaluationField {
	rows := make([]model.EvaluationField, len(c.EvaluationFields))
	for i, f := range c.EvaluationFields {
		rows[i] = model.EvaluationField{
			Name:         f.Name,
			Description:  f.Description,
			Weight:       f.Weight,
			IsActive:     !f.Inactive,
			IsRequired:   f.Required,
			DisplayOrder: i + 1,
		}
	}
	return rows
}

func (c *Catalogue) RoleRows() ([]model.Role, error) {
	rows := make([]model.Role, len(c.Roles))
	for i, r := range c.Roles {
		perms := r.Permissions
		if r.FullAccess {
			perms = settings.FullAccess()
		}
		if err := perms.Validate(); err != nil {
			return nil, fmt.Errorf("role %s: %w", r.Key, err)
		}
		rows[i] = model.Role{
			RoleKey:     r.Key,
			RoleName:    r.Name,
			Description: r.Description,
			IsActive:    true,
			Permissions: datatypes.NewJSONType(perms.Normalize()),
		}
	}
	return rows, nil
}

func (c *Catalogue) ApplicantFieldRows() []model.ApplicantField {
	rows := make([]model.ApplicantField, len(c.ApplicantFields))
	for i, f := range c.ApplicantFields {
		rows[i] = model.ApplicantField{
			FieldKey:     f.Key,
			FieldName:    f.Name,
			FieldType:    f.Type,
			IsRequired:   f.Required,
			IsDisplayed:  !f.Hidden,
			DisplayOrder: i + 1,
			Options:      f.Options,
		}
	}
	return rows
}

func (c *Catalogue) DashboardCardRows() ([]model.DashboardCard, error) {
	rows := make([]model.DashboardCard, len(c.DashboardCards))
	for i, card := range c.DashboardCards {
		raw, err := json.Marshal(card.Query)
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", card.Key, err)
		}
		q, err := settings.ParseCardQuery(raw)
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", card.Key, err)
		}
		rows[i] = model.DashboardCard{
			CardKey:      card.Key,
			CardName:     card.Name,
			CardType:     card.Type,
			CardIcon:     card.Icon,
			CardColor:    card.Color,
			DataSource:   "applicants",
			DataQuery:    datatypes.NewJSONType(q),
			DisplayOrder: i + 1,
			IsActive:     card.Active == nil || *card.Active,
		}
	}
	return rows, nil
}

func (c *Catalogue) DisplayRows() ([]model.DisplaySetting, error) {
	rows := make([]model.DisplaySetting, len(c.Displays))
	for i, d := range c.Displays {
		display := settings.Display{Kind: settings.PageKind(d.Page), Cards: d.Cards}
		for _, key := range d.Columns {
			display.Columns = append(display.Columns, settings.Column{Key: key, Visible: true})
		}
		if err := display.Validate(); err != nil {
			return nil, fmt.Errorf("display %s: %w", d.Page, err)
		}
		raw, err := json.Marshal(display)
		if err != nil {
			return nil, err
		}
		rows[i] = model.DisplaySetting{
			PageName:      d.Page,
			SchemaVersion: settings.DisplayVersion,
			Settings:      datatypes.JSON(raw),
		}
	}
	return rows, nil
}
