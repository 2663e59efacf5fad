package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fadilmartias/recruit-admin/internal/dto"
	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/repository"
	"github.com/fadilmartias/recruit-admin/internal/scoring"
	"github.com/google/uuid"
)

// Every write returns the whole field set so the console can refresh its
// weight warning. Unbalanced weights never block a save.
type EvaluationFieldUsecaseInterface interface {
	List(ctx context.Context) (*dto.EvaluationFieldsDTO, error)
	Create(ctx context.Context, req dto.EvaluationFieldRequest) (*dto.EvaluationFieldsDTO, error)
	Update(ctx context.Context, id uuid.UUID, req dto.EvaluationFieldRequest) (*dto.EvaluationFieldsDTO, error)
	Toggle(ctx context.Context, id uuid.UUID) (*dto.EvaluationFieldsDTO, error)
	Delete(ctx context.Context, id uuid.UUID) (*dto.EvaluationFieldsDTO, error)
}

type EvaluationFieldUsecase struct {
	fields repository.EvaluationFieldRepositoryInterface
}

func NewEvaluationFieldUsecase(fields repository.EvaluationFieldRepositoryInterface) *EvaluationFieldUsecase {
	return &EvaluationFieldUsecase{fields: fields}
}

func (uc *EvaluationFieldUsecase) List(ctx context.Context) (*dto.EvaluationFieldsDTO, error) {
	fields, err := uc.fields.List(ctx)
	if err != nil {
		return nil, err
	}
	check := scoring.CheckWeights(scoringFields(fields))
	out := &dto.EvaluationFieldsDTO{Fields: fields, Weights: check}
	if !check.Balanced {
		out.Warning = fmt.Sprintf("active weights add up to %d%%, not %d%%", check.TotalActiveWeight, scoring.FullWeight)
	}
	return out, nil
}

func (uc *EvaluationFieldUsecase) Create(ctx context.Context, req dto.EvaluationFieldRequest) (*dto.EvaluationFieldsDTO, error) {
	f := &model.EvaluationField{IsActive: true}
	applyFieldRequest(f, req)
	if err := uc.fields.Create(ctx, f); err != nil {
		return nil, err
	}
	return uc.List(ctx)
}

func (uc *EvaluationFieldUsecase) Update(ctx context.Context, id uuid.UUID, req dto.EvaluationFieldRequest) (*dto.EvaluationFieldsDTO, error) {
	f, err := uc.fields.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	applyFieldRequest(f, req)
	if err := uc.fields.Update(ctx, f); err != nil {
		return nil, err
	}
	return uc.List(ctx)
}

func (uc *EvaluationFieldUsecase) Toggle(ctx context.Context, id uuid.UUID) (*dto.EvaluationFieldsDTO, error) {
	f, err := uc.fields.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f.IsActive = !f.IsActive
	if err := uc.fields.Update(ctx, f); err != nil {
		return nil, err
	}
	return uc.List(ctx)
}

func (uc *EvaluationFieldUsecase) Delete(ctx context.Context, id uuid.UUID) (*dto.EvaluationFieldsDTO, error) {
	if err := uc.fields.Delete(ctx, id); err != nil {
		return nil, err
	}
	return uc.List(ctx)
}

func applyFieldRequest(f *model.EvaluationField, req dto.EvaluationFieldRequest) {
	f.Name = strings.TrimSpace(req.Name)
	f.Description = req.Description
	f.Weight = req.Weight
	f.IsRequired = req.IsRequired
	f.DisplayOrder = req.DisplayOrder
	if req.IsActive != nil {
		f.IsActive = *req.IsActive
	}
}
