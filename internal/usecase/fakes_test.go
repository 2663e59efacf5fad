package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/repository"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for repository.Store, keeping insertion order.
type memStore[T any] struct {
	rows  map[uuid.UUID]T
	order []uuid.UUID
	id    func(*T) *uuid.UUID
}

func newMemStore[T any](id func(*T) *uuid.UUID, rows ...T) *memStore[T] {
	s := &memStore[T]{rows: make(map[uuid.UUID]T), id: id}
	for i := range rows {
		_ = s.Create(context.Background(), &rows[i])
	}
	return s
}

func (s *memStore[T]) List(ctx context.Context) ([]T, error) {
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.rows[id])
	}
	return out, nil
}

func (s *memStore[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, util.ErrNotFound
	}
	return &row, nil
}

func (s *memStore[T]) Create(ctx context.Context, row *T) error {
	id := s.id(row)
	if *id == uuid.Nil {
		*id = uuid.New()
	}
	if _, ok := s.rows[*id]; ok {
		return util.ErrConflict
	}
	s.rows[*id] = *row
	s.order = append(s.order, *id)
	return nil
}

func (s *memStore[T]) Update(ctx context.Context, row *T) error {
	id := *s.id(row)
	if _, ok := s.rows[id]; !ok {
		return util.ErrNotFound
	}
	s.rows[id] = *row
	return nil
}

func (s *memStore[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.rows[id]; !ok {
		return util.ErrNotFound
	}
	delete(s.rows, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeApplicants struct {
	*memStore[model.Applicant]
	lastQuery repository.ApplicantQuery
}

func newFakeApplicants(rows ...model.Applicant) *fakeApplicants {
	return &fakeApplicants{memStore: newMemStore(func(a *model.Applicant) *uuid.UUID { return &a.ID }, rows...)}
}

func (f *fakeApplicants) FindByEmail(ctx context.Context, email string) (*model.Applicant, error) {
	for _, id := range f.order {
		if a := f.rows[id]; strings.EqualFold(a.EmailAddress(), email) {
			return &a, nil
		}
	}
	return nil, util.ErrNotFound
}

func (f *fakeApplicants) Search(ctx context.Context, q repository.ApplicantQuery) ([]model.Applicant, int64, error) {
	f.lastQuery = q
	all, _ := f.List(ctx)
	var matched []model.Applicant
	for _, a := range all {
		if len(q.Statuses) > 0 && !contains(q.Statuses, a.Status) {
			continue
		}
		if q.Position != "" && a.Position != q.Position {
			continue
		}
		if s := strings.ToLower(strings.TrimSpace(q.Search)); s != "" &&
			!strings.Contains(strings.ToLower(a.Name+" "+a.EmailAddress()+" "+a.Position), s) {
			continue
		}
		matched = append(matched, a)
	}
	total := int64(len(matched))
	if q.Limit > 0 {
		end := q.Offset + q.Limit
		if q.Offset > len(matched) {
			q.Offset = len(matched)
		}
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[q.Offset:end]
	}
	return matched, total, nil
}

func (f *fakeApplicants) ListAll(ctx context.Context) ([]model.Applicant, error) {
	return f.List(ctx)
}

func (f *fakeApplicants) ListWithInterview(ctx context.Context) ([]model.Applicant, error) {
	all, _ := f.List(ctx)
	var out []model.Applicant
	for _, a := range all {
		if a.InterviewDate != nil {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InterviewDate.Before(*out[j].InterviewDate) })
	return out, nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func newFakeApplicantFields(rows ...model.ApplicantField) *memStore[model.ApplicantField] {
	return newMemStore(func(f *model.ApplicantField) *uuid.UUID { return &f.ID }, rows...)
}

func newFakeStatuses(rows ...model.StatusSetting) *memStore[model.StatusSetting] {
	return newMemStore(func(s *model.StatusSetting) *uuid.UUID { return &s.ID }, rows...)
}

func newFakeEvaluationFields(rows ...model.EvaluationField) *memStore[model.EvaluationField] {
	return newMemStore(func(f *model.EvaluationField) *uuid.UUID { return &f.ID }, rows...)
}

func newFakeCards(rows ...model.DashboardCard) *memStore[model.DashboardCard] {
	return newMemStore(func(c *model.DashboardCard) *uuid.UUID { return &c.ID }, rows...)
}

func newFakeUsers(rows ...model.User) *memStore[model.User] {
	return newMemStore(func(u *model.User) *uuid.UUID { return &u.ID }, rows...)
}

type fakeRoles struct {
	*memStore[model.Role]
}

func newFakeRoles(rows ...model.Role) *fakeRoles {
	return &fakeRoles{newMemStore(func(r *model.Role) *uuid.UUID { return &r.ID }, rows...)}
}

func (f *fakeRoles) FindByKey(ctx context.Context, key string) (*model.Role, error) {
	for _, id := range f.order {
		if r := f.rows[id]; r.RoleKey == key {
			return &r, nil
		}
	}
	return nil, util.ErrNotFound
}

type fakeEvaluations struct {
	submitted []model.Evaluation
	values    []model.EvaluationFieldValue
	outcome   repository.ApplicantOutcome
	err       error
}

func (f *fakeEvaluations) Submit(ctx context.Context, e *model.Evaluation, values []model.EvaluationFieldValue, outcome repository.ApplicantOutcome) error {
	if f.err != nil {
		return f.err
	}
	e.ID = uuid.New()
	e.FieldValues = values
	f.submitted = append(f.submitted, *e)
	f.values = values
	f.outcome = outcome
	return nil
}

func (f *fakeEvaluations) FindByID(ctx context.Context, id uuid.UUID) (*model.Evaluation, error) {
	for _, e := range f.submitted {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, util.ErrNotFound
}

func (f *fakeEvaluations) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Evaluation, error) {
	var out []model.Evaluation
	for _, e := range f.submitted {
		if e.ApplicantID == applicantID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeDisplays struct {
	rows map[string]model.DisplaySetting
}

func newFakeDisplays(rows ...model.DisplaySetting) *fakeDisplays {
	f := &fakeDisplays{rows: make(map[string]model.DisplaySetting)}
	for _, r := range rows {
		f.rows[r.PageName] = r
	}
	return f
}

func (f *fakeDisplays) List(ctx context.Context) ([]model.DisplaySetting, error) {
	out := make([]model.DisplaySetting, 0, len(f.rows))
	for _, r := range f.rows {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeDisplays) FindByPage(ctx context.Context, page string) (*model.DisplaySetting, error) {
	r, ok := f.rows[page]
	if !ok {
		return nil, util.ErrNotFound
	}
	return &r, nil
}

func (f *fakeDisplays) Upsert(ctx context.Context, s *model.DisplaySetting) error {
	f.rows[s.PageName] = *s
	return nil
}
