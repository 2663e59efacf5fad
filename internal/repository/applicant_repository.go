package repository

import (
	"context"
	"strings"

	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicantQuery struct {
	Search   string
	Statuses []string
	Position string
	// OrderBy is a trusted column expression, never user input.
	OrderBy string
	Offset  int
	Limit   int
}

type ApplicantRepositoryInterface interface {
	Create(ctx context.Context, a *model.Applicant) error
	Update(ctx context.Context, a *model.Applicant) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Applicant, error)
	FindByEmail(ctx context.Context, email string) (*model.Applicant, error)
	Search(ctx context.Context, q ApplicantQuery) ([]model.Applicant, int64, error)
	ListAll(ctx context.Context) ([]model.Applicant, error)
	ListWithInterview(ctx context.Context) ([]model.Applicant, error)
}

type ApplicantRepository struct {
	Store[model.Applicant]
	db *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) *ApplicantRepository {
	return &ApplicantRepository{Store: newStore[model.Applicant](db, "created_at DESC"), db: db}
}

func (r *ApplicantRepository) FindByEmail(ctx context.Context, email string) (*model.Applicant, error) {
	var a model.Applicant
	if err := r.db.WithContext(ctx).First(&a, "LOWER(email) = ?", strings.ToLower(email)).Error; err != nil {
		return nil, util.TranslateDBError(err)
	}
	return &a, nil
}

func (r *ApplicantRepository) Search(ctx context.Context, q ApplicantQuery) ([]model.Applicant, int64, error) {
	tx := applyApplicantFilter(r.db.WithContext(ctx).Model(&model.Applicant{}), q)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, util.TranslateDBError(err)
	}

	order := q.OrderBy
	if order == "" {
		order = "created_at DESC"
	}
	tx = tx.Order(order)
	if q.Limit > 0 {
		tx = tx.Offset(q.Offset).Limit(q.Limit)
	}

	var rows []model.Applicant
	if err := tx.Find(&rows).Error; err != nil {
		return nil, 0, util.TranslateDBError(err)
	}
	return rows, total, nil
}

func (r *ApplicantRepository) ListAll(ctx context.Context) ([]model.Applicant, error) {
	return r.List(ctx)
}

func (r *ApplicantRepository) ListWithInterview(ctx context.Context) ([]model.Applicant, error) {
	var rows []model.Applicant
	err := r.db.WithContext(ctx).
		Where("interview_date IS NOT NULL").
		Order("interview_date ASC").
		Find(&rows).Error
	return rows, util.TranslateDBError(err)
}

// likeEscaper makes LIKE wildcards in search text match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func applyApplicantFilter(tx *gorm.DB, q ApplicantQuery) *gorm.DB {
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
		tx = tx.Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\' OR LOWER(position) LIKE ? ESCAPE '\'`, like, like, like)
	}
	if len(q.Statuses) > 0 {
		tx = tx.Where("status IN ?", q.Statuses)
	}
	if q.Position != "" {
		tx = tx.Where("position = ?", q.Position)
	}
	return tx
}
