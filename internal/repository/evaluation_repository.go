package repository

import (
	"context"
	"time"

	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EvaluationFieldRepositoryInterface interface {
	List(ctx context.Context) ([]model.EvaluationField, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.EvaluationField, error)
	Create(ctx context.Context, f *model.EvaluationField) error
	Update(ctx context.Context, f *model.EvaluationField) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type EvaluationFieldRepository struct {
	Store[model.EvaluationField]
}

func NewEvaluationFieldRepository(db *gorm.DB) *EvaluationFieldRepository {
	return &EvaluationFieldRepository{Store: newStore[model.EvaluationField](db, "display_order ASC, created_at ASC")}
}

// ApplicantOutcome is what an evaluation writes back onto the applicant row.
type ApplicantOutcome struct {
	ApplicantID uuid.UUID
	Status      string
	Evaluation  string
}

type EvaluationRepositoryInterface interface {
	Submit(ctx context.Context, e *model.Evaluation, values []model.EvaluationFieldValue, outcome ApplicantOutcome) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Evaluation, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Evaluation, error)
}

type EvaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db}
}

// Submit stores the evaluation, its per-field ratings and the applicant outcome atomically.
func (r *EvaluationRepository) Submit(ctx context.Context, e *model.Evaluation, values []model.EvaluationFieldValue, outcome ApplicantOutcome) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := insertEvaluation(tx, e).Error; err != nil {
			return err
		}

		if len(values) > 0 {
			for i := range values {
				values[i].EvaluationID = e.ID
			}
			if err := upsertFieldValues(tx, values).Error; err != nil {
				return err
			}
		}

		res := applyOutcome(tx, outcome, time.Now())
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		return util.TranslateDBError(err)
	}
	e.FieldValues = values
	return nil
}

func insertEvaluation(tx *gorm.DB, e *model.Evaluation) *gorm.DB {
	return tx.Omit("FieldValues").Create(e)
}

// upsertFieldValues keeps one rating per evaluation and field.
func upsertFieldValues(tx *gorm.DB, values []model.EvaluationFieldValue) *gorm.DB {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "evaluation_id"}, {Name: "field_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "updated_at"}),
	}).Create(&values)
}

func applyOutcome(tx *gorm.DB, outcome ApplicantOutcome, now time.Time) *gorm.DB {
	return tx.Model(&model.Applicant{}).
		Where("id = ?", outcome.ApplicantID).
		Updates(map[string]any{
			"status":     outcome.Status,
			"evaluation": outcome.Evaluation,
			"updated_at": now,
		})
}

func (r *EvaluationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Evaluation, error) {
	var e model.Evaluation
	if err := r.db.WithContext(ctx).Preload("FieldValues").First(&e, "id = ?", id).Error; err != nil {
		return nil, util.TranslateDBError(err)
	}
	return &e, nil
}

func (r *EvaluationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Evaluation, error) {
	var rows []model.Evaluation
	err := r.db.WithContext(ctx).
		Preload("FieldValues").
		Where("applicant_id = ?", applicantID).
		Order("evaluated_at DESC").
		Find(&rows).Error
	return rows, util.TranslateDBError(err)
}
