package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fadilmartias/recruit-admin/internal/dto"
	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/pipeline"
	"github.com/fadilmartias/recruit-admin/internal/repository"
	"github.com/fadilmartias/recruit-admin/internal/response"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type ApplicantUsecaseInterface interface {
	Register(ctx context.Context, req dto.CreateApplicantRequest) (*model.Applicant, error)
	List(ctx context.Context, filter dto.ApplicantFilter) ([]model.Applicant, *response.Pagination, error)
	Past(ctx context.Context, filter dto.ApplicantFilter) ([]model.Applicant, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Applicant, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateApplicantRequest) (*model.Applicant, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Applicant, error)
	Schedule(ctx context.Context, id uuid.UUID, at *time.Time) (*model.Applicant, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Interviews(ctx context.Context, now time.Time) (*dto.InterviewsDTO, error)
}

type ApplicantUsecase struct {
	applicants repository.ApplicantRepositoryInterface
	fields     repository.ApplicantFieldRepositoryInterface
	statuses   repository.StatusSettingRepositoryInterface
	log        *zap.Logger
}

func NewApplicantUsecase(
	applicants repository.ApplicantRepositoryInterface,
	fields repository.ApplicantFieldRepositoryInterface,
	statuses repository.StatusSettingRepositoryInterface,
	log *zap.Logger,
) *ApplicantUsecase {
	return &ApplicantUsecase{applicants: applicants, fields: fields, statuses: statuses, log: log}
}

func (uc *ApplicantUsecase) Register(ctx context.Context, req dto.CreateApplicantRequest) (*model.Applicant, error) {
	fields, err := uc.fields.List(ctx)
	if err != nil {
		return nil, err
	}

	a := &model.Applicant{
		Name:          strings.TrimSpace(req.Name),
		Email:         normalizeEmail(req.Email),
		Phone:         strings.TrimSpace(req.Phone),
		Position:      strings.TrimSpace(req.Position),
		Status:        req.Status,
		Comment:       req.Comment,
		InterviewDate: req.InterviewDate,
	}
	if a.Status == "" {
		a.Status = pipeline.StatusApplied.String()
	}

	extra, missing := collectFields(fields, a, req.Extra)
	if a.Name == "" {
		missing["name"] = "required"
	}
	if len(missing) > 0 {
		return nil, util.NewFormError("required applicant fields are missing", missing)
	}
	if len(extra) > 0 {
		a.Extra = datatypes.JSONMap(extra)
	}

	if err := uc.checkStatus(ctx, a.Status); err != nil {
		return nil, err
	}
	if err := uc.checkEmailFree(ctx, a.EmailAddress(), uuid.Nil); err != nil {
		return nil, err
	}

	if err := uc.applicants.Create(ctx, a); err != nil {
		return nil, err
	}
	uc.log.Info("applicant registered",
		zap.String("applicant_id", a.ID.String()),
		zap.String("position", a.Position),
	)
	return a, nil
}

func (uc *ApplicantUsecase) List(ctx context.Context, filter dto.ApplicantFilter) ([]model.Applicant, *response.Pagination, error) {
	page, size := paging(filter)
	q := repository.ApplicantQuery{
		Search:   filter.Search,
		Position: filter.Position,
		Offset:   (page - 1) * size,
		Limit:    size,
	}
	if filter.Status != "" {
		q.Statuses = []string{filter.Status}
	}
	rows, total, err := uc.applicants.Search(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	return rows, response.NewPagination(page, size, total, len(rows)), nil
}

// Past lists applicants whose process has ended, most recently touched first.
func (uc *ApplicantUsecase) Past(ctx context.Context, filter dto.ApplicantFilter) ([]model.Applicant, error) {
	q := repository.ApplicantQuery{
		Search:   filter.Search,
		Position: filter.Position,
		OrderBy:  "updated_at DESC",
	}
	switch {
	case filter.Status == "":
		for _, s := range pipeline.PastStatuses {
			q.Statuses = append(q.Statuses, s.String())
		}
	case pipeline.Status(filter.Status).IsPast():
		q.Statuses = []string{filter.Status}
	default:
		return []model.Applicant{}, nil
	}
	rows, _, err := uc.applicants.Search(ctx, q)
	return rows, err
}

func (uc *ApplicantUsecase) Get(ctx context.Context, id uuid.UUID) (*model.Applicant, error) {
	return uc.applicants.FindByID(ctx, id)
}

func (uc *ApplicantUsecase) Update(ctx context.Context, id uuid.UUID, req dto.UpdateApplicantRequest) (*model.Applicant, error) {
	a, err := uc.applicants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		a.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		email := normalizeEmail(*req.Email)
		if e := derefEmail(email); e != a.EmailAddress() {
			if err := uc.checkEmailFree(ctx, e, a.ID); err != nil {
				return nil, err
			}
		}
		a.Email = email
	}
	if req.Phone != nil {
		a.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Position != nil {
		a.Position = strings.TrimSpace(*req.Position)
	}
	if req.Status != nil && *req.Status != a.Status {
		if err := uc.checkStatus(ctx, *req.Status); err != nil {
			return nil, err
		}
		a.Status = *req.Status
	}
	if req.Evaluation != nil {
		a.Evaluation = *req.Evaluation
	}
	if req.Comment != nil {
		a.Comment = *req.Comment
	}
	if req.InterviewDate != nil {
		a.InterviewDate = req.InterviewDate
	}
	if len(req.Extra) > 0 {
		if a.Extra == nil {
			a.Extra = datatypes.JSONMap{}
		}
		for k, v := range req.Extra {
			if blank(v) {
				delete(a.Extra, k)
				continue
			}
			a.Extra[k] = v
		}
	}

	if err := uc.applicants.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *ApplicantUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Applicant, error) {
	a, err := uc.applicants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.checkStatus(ctx, status); err != nil {
		return nil, err
	}
	a.Status = status
	if err := uc.applicants.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Schedule sets the interview date; a nil date clears it.
func (uc *ApplicantUsecase) Schedule(ctx context.Context, id uuid.UUID, at *time.Time) (*model.Applicant, error) {
	a, err := uc.applicants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	a.InterviewDate = at
	if err := uc.applicants.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *ApplicantUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.applicants.Delete(ctx, id)
}

// Interviews splits scheduled applicants around now. Upcoming is soonest
// first, past is most recent first.
func (uc *ApplicantUsecase) Interviews(ctx context.Context, now time.Time) (*dto.InterviewsDTO, error) {
	rows, err := uc.applicants.ListWithInterview(ctx)
	if err != nil {
		return nil, err
	}
	out := &dto.InterviewsDTO{Upcoming: []model.Applicant{}, Past: []model.Applicant{}}
	for _, a := range rows {
		if a.InterviewDate == nil {
			continue
		}
		if a.InterviewDate.Before(now) {
			out.Past = append([]model.Applicant{a}, out.Past...)
		} else {
			out.Upcoming = append(out.Upcoming, a)
		}
	}
	return out, nil
}

func (uc *ApplicantUsecase) checkStatus(ctx context.Context, status string) error {
	rows, err := uc.statuses.List(ctx)
	if err != nil {
		return err
	}
	known := false
	if len(rows) == 0 {
		known = pipeline.Status(status).IsDefault()
	}
	for _, s := range rows {
		if s.IsActive && s.StatusKey == status {
			known = true
			break
		}
	}
	if !known {
		return util.NewFormError(fmt.Sprintf("unknown status %q", status), map[string]string{"status": "oneof"})
	}
	return nil
}

// normalizeEmail lowercases an address and maps blank to nil, so applicants
// without one don't collide on the unique index.
func normalizeEmail(raw string) *string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return nil
	}
	return &email
}

func derefEmail(email *string) string {
	if email == nil {
		return ""
	}
	return *email
}

func (uc *ApplicantUsecase) checkEmailFree(ctx context.Context, email string, self uuid.UUID) error {
	if email == "" {
		return nil
	}
	existing, err := uc.applicants.FindByEmail(ctx, email)
	if errors.Is(err, util.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != self {
		return fmt.Errorf("%w: applicant with email %s", util.ErrConflict, email)
	}
	return nil
}

// collectFields checks the configured form inputs against a and the submitted
// extra values. It returns the extra values worth keeping and the required
// inputs left blank.
func collectFields(fields []model.ApplicantField, a *model.Applicant, submitted map[string]any) (map[string]any, map[string]string) {
	extra := make(map[string]any)
	missing := make(map[string]string)
	for _, f := range fields {
		value, isColumn := columnValue(a, f.FieldKey)
		if !isColumn {
			value = submitted[f.FieldKey]
			if !blank(value) {
				extra[f.FieldKey] = value
			}
		}
		if f.IsRequired && f.IsDisplayed && blank(value) {
			missing[f.FieldKey] = "required"
		}
	}
	return extra, missing
}

func columnValue(a *model.Applicant, key string) (any, bool) {
	switch key {
	case "name":
		return a.Name, true
	case "email":
		return a.EmailAddress(), true
	case "phone":
		return a.Phone, true
	case "position":
		return a.Position, true
	case "comment":
		return a.Comment, true
	case "status":
		return a.Status, true
	case "interview_date":
		if a.InterviewDate == nil {
			return nil, true
		}
		return *a.InterviewDate, true
	}
	return nil, false
}

func blank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(t) == ""
	}
	return false
}

func paging(f dto.ApplicantFilter) (page, size int) {
	page, size = f.Page, f.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return page, size
}
