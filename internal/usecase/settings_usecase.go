package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/fadilmartias/recruit-admin/internal/dto"
	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/pipeline"
	"github.com/fadilmartias/recruit-admin/internal/repository"
	"github.com/fadilmartias/recruit-admin/internal/settings"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// settingsKey returns given, or a slug of name. Names without any ASCII word
// characters get a generated key under prefix.
func settingsKey(given, name, prefix string) string {
	if key := strings.TrimSpace(given); key != "" {
		return key
	}
	if key := pipeline.Slug(name); key != "" {
		return key
	}
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

func invalidSettings(field string, err error) error {
	if errors.Is(err, settings.ErrInvalid) {
		return util.NewFormError(err.Error(), map[string]string{field: "invalid"})
	}
	return err
}

type StatusUsecaseInterface interface {
	List(ctx context.Context) ([]model.StatusSetting, error)
	Create(ctx context.Context, req dto.StatusSettingRequest) (*model.StatusSetting, error)
	Update(ctx context.Context, id uuid.UUID, req dto.StatusSettingRequest) (*model.StatusSetting, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatusUsecase struct {
	statuses repository.StatusSettingRepositoryInterface
}

func NewStatusUsecase(statuses repository.StatusSettingRepositoryInterface) *StatusUsecase {
	return &StatusUsecase{statuses: statuses}
}

func (uc *StatusUsecase) List(ctx context.Context) ([]model.StatusSetting, error) {
	return uc.statuses.List(ctx)
}

func (uc *StatusUsecase) Create(ctx context.Context, req dto.StatusSettingRequest) (*model.StatusSetting, error) {
	s := &model.StatusSetting{
		StatusKey: settingsKey(req.StatusKey, req.StatusName, "status"),
		IsActive:  true,
	}
	applyStatusRequest(s, req)
	if err := uc.statuses.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *StatusUsecase) Update(ctx context.Context, id uuid.UUID, req dto.StatusSettingRequest) (*model.StatusSetting, error) {
	s, err := uc.statuses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if key := strings.TrimSpace(req.StatusKey); key != "" {
		s.StatusKey = key
	}
	applyStatusRequest(s, req)
	if err := uc.statuses.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *StatusUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.statuses.Delete(ctx, id)
}

func applyStatusRequest(s *model.StatusSetting, req dto.StatusSettingRequest) {
	s.StatusName = strings.TrimSpace(req.StatusName)
	s.StatusColor = req.StatusColor
	s.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		s.IsActive = *req.IsActive
	}
}

type DisplaySettingUsecaseInterface interface {
	List(ctx context.Context) ([]dto.DisplaySettingDTO, error)
	Get(ctx context.Context, page string) (*dto.DisplaySettingDTO, error)
	Put(ctx context.Context, page string, req dto.DisplaySettingRequest) (*dto.DisplaySettingDTO, error)
}

type DisplaySettingUsecase struct {
	displays repository.DisplaySettingRepositoryInterface
}

func NewDisplaySettingUsecase(displays repository.DisplaySettingRepositoryInterface) *DisplaySettingUsecase {
	return &DisplaySettingUsecase{displays: displays}
}

var pageKinds = []settings.PageKind{settings.PageApplicantList, settings.PageInterviewList, settings.PageDashboard}

func (uc *DisplaySettingUsecase) List(ctx context.Context) ([]dto.DisplaySettingDTO, error) {
	out := make([]dto.DisplaySettingDTO, 0, len(pageKinds))
	for _, kind := range pageKinds {
		d, err := uc.Get(ctx, string(kind))
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

// Get returns the page settings, falling back to defaults for pages never
// saved. Legacy rows come back migrated; they are rewritten on the next Put.
func (uc *DisplaySettingUsecase) Get(ctx context.Context, page string) (*dto.DisplaySettingDTO, error) {
	kind, err := pageKind(page)
	if err != nil {
		return nil, err
	}
	row, err := uc.displays.FindByPage(ctx, page)
	if errors.Is(err, util.ErrNotFound) {
		return &dto.DisplaySettingDTO{
			PageName:      page,
			SchemaVersion: settings.DisplayVersion,
			Settings:      settings.DefaultDisplay(kind),
		}, nil
	}
	if err != nil {
		return nil, err
	}
	d, err := settings.DecodeDisplay(kind, row.SchemaVersion, row.Settings)
	if err != nil {
		return nil, err
	}
	return &dto.DisplaySettingDTO{PageName: page, SchemaVersion: settings.DisplayVersion, Settings: d}, nil
}

func (uc *DisplaySettingUsecase) Put(ctx context.Context, page string, req dto.DisplaySettingRequest) (*dto.DisplaySettingDTO, error) {
	kind, err := pageKind(page)
	if err != nil {
		return nil, err
	}
	d := settings.Display{Kind: kind, Columns: req.Columns, Cards: req.Cards}
	if err := d.Validate(); err != nil {
		return nil, invalidSettings("settings", err)
	}
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}
	row := &model.DisplaySetting{
		PageName:      page,
		SchemaVersion: settings.DisplayVersion,
		Settings:      datatypes.JSON(raw),
	}
	if err := uc.displays.Upsert(ctx, row); err != nil {
		return nil, err
	}
	return &dto.DisplaySettingDTO{PageName: page, SchemaVersion: settings.DisplayVersion, Settings: d}, nil
}

func pageKind(page string) (settings.PageKind, error) {
	kind := settings.PageKind(page)
	if !kind.IsValid() {
		return "", util.NewFormError("unknown page "+page, map[string]string{"page": "oneof"})
	}
	return kind, nil
}

type DashboardCardUsecaseInterface interface {
	List(ctx context.Context) ([]model.DashboardCard, error)
	Create(ctx context.Context, req dto.DashboardCardRequest) (*model.DashboardCard, error)
	Update(ctx context.Context, id uuid.UUID, req dto.DashboardCardRequest) (*model.DashboardCard, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type DashboardCardUsecase struct {
	cards repository.DashboardCardRepositoryInterface
}

func NewDashboardCardUsecase(cards repository.DashboardCardRepositoryInterface) *DashboardCardUsecase {
	return &DashboardCardUsecase{cards: cards}
}

func (uc *DashboardCardUsecase) List(ctx context.Context) ([]model.DashboardCard, error) {
	return uc.cards.List(ctx)
}

// Create adds a custom card; built-in cards only come from seeding.
func (uc *DashboardCardUsecase) Create(ctx context.Context, req dto.DashboardCardRequest) (*model.DashboardCard, error) {
	c := &model.DashboardCard{
		CardKey:  settingsKey("", req.CardName, "card"),
		IsActive: true,
		IsCustom: true,
	}
	if err := applyCardRequest(c, req); err != nil {
		return nil, err
	}
	if err := uc.cards.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *DashboardCardUsecase) Update(ctx context.Context, id uuid.UUID, req dto.DashboardCardRequest) (*model.DashboardCard, error) {
	c, err := uc.cards.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyCardRequest(c, req); err != nil {
		return nil, err
	}
	if err := uc.cards.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *DashboardCardUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.cards.Delete(ctx, id)
}

func applyCardRequest(c *model.DashboardCard, req dto.DashboardCardRequest) error {
	q, err := settings.ParseCardQuery(req.DataQuery)
	if err != nil {
		return invalidSettings("data_query", err)
	}
	c.CardName = strings.TrimSpace(req.CardName)
	c.CardType = req.CardType
	c.CardIcon = req.CardIcon
	c.CardColor = req.CardColor
	c.DataSource = req.DataSource
	c.DataQuery = datatypes.NewJSONType(q)
	c.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	return nil
}

type ApplicantFieldUsecaseInterface interface {
	List(ctx context.Context) ([]model.ApplicantField, error)
	Create(ctx context.Context, req dto.ApplicantFieldRequest) (*model.ApplicantField, error)
	Update(ctx context.Context, id uuid.UUID, req dto.ApplicantFieldRequest) (*model.ApplicantField, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ApplicantFieldUsecase struct {
	fields repository.ApplicantFieldRepositoryInterface
}

func NewApplicantFieldUsecase(fields repository.ApplicantFieldRepositoryInterface) *ApplicantFieldUsecase {
	return &ApplicantFieldUsecase{fields: fields}
}

func (uc *ApplicantFieldUsecase) List(ctx context.Context) ([]model.ApplicantField, error) {
	return uc.fields.List(ctx)
}

func (uc *ApplicantFieldUsecase) Create(ctx context.Context, req dto.ApplicantFieldRequest) (*model.ApplicantField, error) {
	f := &model.ApplicantField{
		FieldKey:    settingsKey(req.FieldKey, req.FieldName, "field"),
		IsDisplayed: true,
	}
	if err := applyApplicantFieldRequest(f, req); err != nil {
		return nil, err
	}
	if err := uc.fields.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (uc *ApplicantFieldUsecase) Update(ctx context.Context, id uuid.UUID, req dto.ApplicantFieldRequest) (*model.ApplicantField, error) {
	f, err := uc.fields.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if key := strings.TrimSpace(req.FieldKey); key != "" {
		f.FieldKey = key
	}
	if err := applyApplicantFieldRequest(f, req); err != nil {
		return nil, err
	}
	if err := uc.fields.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (uc *ApplicantFieldUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.fields.Delete(ctx, id)
}

func applyApplicantFieldRequest(f *model.ApplicantField, req dto.ApplicantFieldRequest) error {
	if req.FieldType == "select" && len(req.Options) == 0 {
		return util.NewFormError("select fields need options", map[string]string{"options": "required"})
	}
	f.FieldName = strings.TrimSpace(req.FieldName)
	f.FieldType = req.FieldType
	f.IsRequired = req.IsRequired
	f.DisplayOrder = req.DisplayOrder
	f.Options = req.Options
	if req.IsDisplayed != nil {
		f.IsDisplayed = *req.IsDisplayed
	}
	return nil
}
