package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/fadilmartias/recruit-admin/internal/dto"
	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/pipeline"
	"github.com/fadilmartias/recruit-admin/internal/repository"
	"github.com/fadilmartias/recruit-admin/internal/scoring"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EvaluationUsecaseInterface interface {
	Preview(ctx context.Context, req dto.PreviewRequest) (scoring.Result, error)
	Submit(ctx context.Context, applicantID uuid.UUID, evaluatorID *uuid.UUID, req dto.SubmitEvaluationRequest) (*dto.EvaluationResultDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Evaluation, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Evaluation, error)
}

type EvaluationUsecase struct {
	fields      repository.EvaluationFieldRepositoryInterface
	evaluations repository.EvaluationRepositoryInterface
	applicants  repository.ApplicantRepositoryInterface
	log         *zap.Logger
	now         func() time.Time
}

func NewEvaluationUsecase(
	fields repository.EvaluationFieldRepositoryInterface,
	evaluations repository.EvaluationRepositoryInterface,
	applicants repository.ApplicantRepositoryInterface,
	log *zap.Logger,
) *EvaluationUsecase {
	return &EvaluationUsecase{
		fields:      fields,
		evaluations: evaluations,
		applicants:  applicants,
		log:         log,
		now:         time.Now,
	}
}

// Preview scores ratings against the current fields without storing anything.
func (uc *EvaluationUsecase) Preview(ctx context.Context, req dto.PreviewRequest) (scoring.Result, error) {
	ratings, err := dto.ParseRatings(req.Ratings)
	if err != nil {
		return scoring.Result{}, err
	}
	fields, err := uc.fields.List(ctx)
	if err != nil {
		return scoring.Result{}, err
	}
	return scoring.Calculate(scoringFields(fields), ratings), nil
}

func (uc *EvaluationUsecase) Submit(ctx context.Context, applicantID uuid.UUID, evaluatorID *uuid.UUID, req dto.SubmitEvaluationRequest) (*dto.EvaluationResultDTO, error) {
	ratings, err := dto.ParseRatings(req.Ratings)
	if err != nil {
		return nil, err
	}
	rec := pipeline.Recommendation(req.Recommendation).OrDefault()
	if !rec.IsValid() {
		return nil, util.NewFormError("invalid recommendation", map[string]string{"recommendation": "oneof"})
	}

	if _, err := uc.applicants.FindByID(ctx, applicantID); err != nil {
		return nil, err
	}
	fields, err := uc.fields.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := checkRatings(fields, ratings); err != nil {
		return nil, err
	}

	result := scoring.Calculate(scoringFields(fields), ratings)
	status := pipeline.StatusAfterEvaluation(rec)

	e := &model.Evaluation{
		ApplicantID:    applicantID,
		EvaluatorID:    evaluatorID,
		OverallRating:  result.Overall,
		Strengths:      req.Strengths,
		Weaknesses:     req.Weaknesses,
		Comments:       req.Comments,
		Recommendation: string(rec),
		EvaluatedAt:    uc.now(),
	}
	outcome := repository.ApplicantOutcome{
		ApplicantID: applicantID,
		Status:      status.String(),
		Evaluation:  req.Comments,
	}
	if err := uc.evaluations.Submit(ctx, e, fieldValues(fields, ratings), outcome); err != nil {
		return nil, err
	}

	uc.log.Info("evaluation submitted",
		zap.String("evaluation_id", e.ID.String()),
		zap.String("applicant_id", applicantID.String()),
		zap.Float64("overall_rating", result.Overall),
		zap.String("status", status.String()),
	)
	return &dto.EvaluationResultDTO{
		Evaluation: e,
		Score:      dto.NewScoreDTO(result),
		Status:     status.String(),
	}, nil
}

func (uc *EvaluationUsecase) Get(ctx context.Context, id uuid.UUID) (*model.Evaluation, error) {
	return uc.evaluations.FindByID(ctx, id)
}

func (uc *EvaluationUsecase) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Evaluation, error) {
	if _, err := uc.applicants.FindByID(ctx, applicantID); err != nil {
		return nil, err
	}
	return uc.evaluations.ListByApplicant(ctx, applicantID)
}

func scoringFields(fields []model.EvaluationField) []scoring.Field {
	out := make([]scoring.Field, len(fields))
	for i, f := range fields {
		out[i] = scoring.Field{ID: f.ID, Weight: f.Weight, Active: f.IsActive}
	}
	return out
}

// checkRatings rejects out of range ratings for known fields and required
// active fields left unrated.
func checkRatings(fields []model.EvaluationField, ratings scoring.Ratings) error {
	invalid := make(map[string]string)
	var unrated []string
	for _, f := range fields {
		r := ratings[f.ID]
		if !scoring.ValidRating(r) {
			invalid[f.ID.String()] = "range"
			continue
		}
		if f.IsActive && f.IsRequired && r == 0 {
			invalid[f.ID.String()] = "required"
			unrated = append(unrated, f.Name)
		}
	}
	if len(invalid) == 0 {
		return nil
	}
	msg := "ratings must be between 0 and 5"
	if len(unrated) > 0 {
		sort.Strings(unrated)
		msg = "required fields are unrated: " + strings.Join(unrated, ", ")
	}
	return util.NewFormError(msg, invalid)
}

// fieldValues keeps one row per rated active field.
func fieldValues(fields []model.EvaluationField, ratings scoring.Ratings) []model.EvaluationFieldValue {
	var out []model.EvaluationFieldValue
	for _, f := range fields {
		if r := ratings[f.ID]; f.IsActive && r > 0 {
			out = append(out, model.EvaluationFieldValue{FieldID: f.ID, Rating: r})
		}
	}
	return out
}
