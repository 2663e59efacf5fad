package repository

import (
	"context"

	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StatusSettingRepositoryInterface interface {
	List(ctx context.Context) ([]model.StatusSetting, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.StatusSetting, error)
	Create(ctx context.Context, s *model.StatusSetting) error
	Update(ctx context.Context, s *model.StatusSetting) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type StatusSettingRepository struct {
	Store[model.StatusSetting]
}

func NewStatusSettingRepository(db *gorm.DB) *StatusSettingRepository {
	return &StatusSettingRepository{Store: newStore[model.StatusSetting](db, "display_order ASC")}
}

type RoleRepositoryInterface interface {
	List(ctx context.Context) ([]model.Role, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	FindByKey(ctx context.Context, key string) (*model.Role, error)
	Create(ctx context.Context, r *model.Role) error
	Update(ctx context.Context, r *model.Role) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoleRepository struct {
	Store[model.Role]
	db *gorm.DB
}

func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{Store: newStore[model.Role](db, "role_name ASC"), db: db}
}

func (r *RoleRepository) FindByKey(ctx context.Context, key string) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).First(&role, "role_key = ?", key).Error; err != nil {
		return nil, util.TranslateDBError(err)
	}
	return &role, nil
}

type UserRepositoryInterface interface {
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository struct {
	Store[model.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Store: newStore[model.User](db, "created_at DESC")}
}

type DisplaySettingRepositoryInterface interface {
	List(ctx context.Context) ([]model.DisplaySetting, error)
	FindByPage(ctx context.Context, page string) (*model.DisplaySetting, error)
	Upsert(ctx context.Context, s *model.DisplaySetting) error
}

type DisplaySettingRepository struct {
	Store[model.DisplaySetting]
	db *gorm.DB
}

func NewDisplaySettingRepository(db *gorm.DB) *DisplaySettingRepository {
	return &DisplaySettingRepository{Store: newStore[model.DisplaySetting](db, "page_name ASC"), db: db}
}

func (r *DisplaySettingRepository) FindByPage(ctx context.Context, page string) (*model.DisplaySetting, error) {
	var s model.DisplaySetting
	if err := r.db.WithContext(ctx).First(&s, "page_name = ?", page).Error; err != nil {
		return nil, util.TranslateDBError(err)
	}
	return &s, nil
}

func (r *DisplaySettingRepository) Upsert(ctx context.Context, s *model.DisplaySetting) error {
	return util.TranslateDBError(upsertDisplay(r.db.WithContext(ctx), s).Error)
}

func upsertDisplay(tx *gorm.DB, s *model.DisplaySetting) *gorm.DB {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"schema_version", "settings", "updated_at"}),
	}).Create(s)
}

type DashboardCardRepositoryInterface interface {
	List(ctx context.Context) ([]model.DashboardCard, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.DashboardCard, error)
	Create(ctx context.Context, c *model.DashboardCard) error
	Update(ctx context.Context, c *model.DashboardCard) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type DashboardCardRepository struct {
	Store[model.DashboardCard]
}

func NewDashboardCardRepository(db *gorm.DB) *DashboardCardRepository {
	return &DashboardCardRepository{Store: newStore[model.DashboardCard](db, "display_order ASC")}
}

type ApplicantFieldRepositoryInterface interface {
	List(ctx context.Context) ([]model.ApplicantField, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.ApplicantField, error)
	Create(ctx context.Context, f *model.ApplicantField) error
	Update(ctx context.Context, f *model.ApplicantField) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ApplicantFieldRepository struct {
	Store[model.ApplicantField]
}

func NewApplicantFieldRepository(db *gorm.DB) *ApplicantFieldRepository {
	return &ApplicantFieldRepository{Store: newStore[model.ApplicantField](db, "display_order ASC")}
}
