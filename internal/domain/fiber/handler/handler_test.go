package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fadilmartias/recruit-admin/internal/dto"
	"github.com/fadilmartias/recruit-admin/internal/middleware"
	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/report"
	"github.com/fadilmartias/recruit-admin/internal/response"
	"github.com/fadilmartias/recruit-admin/internal/scoring"
	"github.com/fadilmartias/recruit-admin/internal/settings"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Details    map[string]string    `json:"details"`
	Pagination *response.Pagination `json:"pagination"`
	Data       json.RawMessage      `json:"data"`
}

func do(t *testing.T, app *fiber.App, method, path string, body any, headers ...string) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

type fakeApplicantUsecase struct {
	applicants map[uuid.UUID]*model.Applicant
	filter     dto.ApplicantFilter
	pastCalled bool
	now        time.Time
}

func (f *fakeApplicantUsecase) Register(ctx context.Context, req dto.CreateApplicantRequest) (*model.Applicant, error) {
	a := &model.Applicant{ID: uuid.New(), Name: req.Name, Email: &req.Email, Status: "applied"}
	f.applicants[a.ID] = a
	return a, nil
}

func (f *fakeApplicantUsecase) List(ctx context.Context, filter dto.ApplicantFilter) ([]model.Applicant, *response.Pagination, error) {
	f.filter = filter
	return []model.Applicant{{Name: "Aiko"}}, response.NewPagination(filter.Page, 20, 21, 1), nil
}

func (f *fakeApplicantUsecase) Past(ctx context.Context, filter dto.ApplicantFilter) ([]model.Applicant, error) {
	f.pastCalled = true
	f.filter = filter
	return []model.Applicant{}, nil
}

func (f *fakeApplicantUsecase) Get(ctx context.Context, id uuid.UUID) (*model.Applicant, error) {
	if a, ok := f.applicants[id]; ok {
		return a, nil
	}
	return nil, util.ErrNotFound
}

func (f *fakeApplicantUsecase) Update(ctx context.Context, id uuid.UUID, req dto.UpdateApplicantRequest) (*model.Applicant, error) {
	a, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		a.Name = *req.Name
	}
	return a, nil
}

func (f *fakeApplicantUsecase) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*model.Applicant, error) {
	a, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	a.Status = status
	return a, nil
}

func (f *fakeApplicantUsecase) Schedule(ctx context.Context, id uuid.UUID, at *time.Time) (*model.Applicant, error) {
	a, err := f.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	a.InterviewDate = at
	return a, nil
}

func (f *fakeApplicantUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.applicants[id]; !ok {
		return util.ErrNotFound
	}
	delete(f.applicants, id)
	return nil
}

func (f *fakeApplicantUsecase) Interviews(ctx context.Context, now time.Time) (*dto.InterviewsDTO, error) {
	f.now = now
	return &dto.InterviewsDTO{Upcoming: []model.Applicant{}, Past: []model.Applicant{}}, nil
}

func applicantApp() (*fiber.App, *fakeApplicantUsecase, *ApplicantHandler) {
	uc := &fakeApplicantUsecase{applicants: make(map[uuid.UUID]*model.Applicant)}
	h := NewApplicantHandler(uc)
	app := fiber.New()
	h.RegisterRoutes(app.Group("/api"))
	return app, uc, h
}

func TestApplicantHandler_List(t *testing.T) {
	app, uc, _ := applicantApp()

	code, env := do(t, app, "GET", "/api/applicants?search=go&status=applied&page=2&page_size=20", nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, env.Success)
	assert.Equal(t, dto.ApplicantFilter{Search: "go", Status: "applied", Page: 2, PageSize: 20}, uc.filter)
	require.NotNil(t, env.Pagination)
	assert.Equal(t, int64(21), env.Pagination.TotalItems)
	assert.Equal(t, 21, env.Pagination.From)
}

func TestApplicantHandler_PastIsNotAnID(t *testing.T) {
	app, uc, _ := applicantApp()

	code, _ := do(t, app, "GET", "/api/applicants/past?position=Backend", nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.True(t, uc.pastCalled)
	assert.Equal(t, "Backend", uc.filter.Position)
}

func TestApplicantHandler_Register(t *testing.T) {
	app, uc, _ := applicantApp()

	code, env := do(t, app, "POST", "/api/applicants", map[string]any{"name": "Aiko", "email": "not-an-email"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Equal(t, "email", env.Details["email"])
	assert.Empty(t, uc.applicants)

	code, env = do(t, app, "POST", "/api/applicants", map[string]any{"name": "Aiko", "email": "aiko@example.com"})
	assert.Equal(t, fiber.StatusCreated, code)
	var a model.Applicant
	require.NoError(t, json.Unmarshal(env.Data, &a))
	assert.Equal(t, "aiko@example.com", a.EmailAddress())
	assert.Len(t, uc.applicants, 1)
}

func TestApplicantHandler_GetUpdateDelete(t *testing.T) {
	app, uc, _ := applicantApp()
	id := uuid.New()
	uc.applicants[id] = &model.Applicant{ID: id, Name: "Aiko", Status: "applied"}

	code, _ := do(t, app, "GET", "/api/applicants/not-a-uuid", nil)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, env := do(t, app, "GET", "/api/applicants/"+uuid.NewString(), nil)
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "applicant: not found", env.Message)

	code, env = do(t, app, "PATCH", "/api/applicants/"+id.String()+"/status", map[string]any{"status": "screened"})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "screened", uc.applicants[id].Status)

	code, _ = do(t, app, "PATCH", "/api/applicants/"+id.String()+"/status", map[string]any{})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)

	code, _ = do(t, app, "PUT", "/api/applicants/"+id.String()+"/interview", map[string]any{"interview_date": "2024-06-01T10:00:00Z"})
	assert.Equal(t, fiber.StatusOK, code)
	require.NotNil(t, uc.applicants[id].InterviewDate)
	assert.Equal(t, 2024, uc.applicants[id].InterviewDate.Year())

	code, _ = do(t, app, "DELETE", "/api/applicants/"+id.String(), nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Empty(t, uc.applicants)
}

func TestApplicantHandler_Interviews(t *testing.T) {
	app, uc, h := applicantApp()
	fixed := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	h.now = func() time.Time { return fixed }

	code, _ := do(t, app, "GET", "/api/interviews", nil)
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, fixed, uc.now)
}

type fakeEvaluationUsecase struct {
	evaluator *uuid.UUID
	req       dto.SubmitEvaluationRequest
}

func (f *fakeEvaluationUsecase) Preview(ctx context.Context, req dto.PreviewRequest) (scoring.Result, error) {
	return scoring.Result{Overall: 3.75, TotalActiveWeight: 100, RatedCount: len(req.Ratings)}, nil
}

func (f *fakeEvaluationUsecase) Submit(ctx context.Context, applicantID uuid.UUID, evaluatorID *uuid.UUID, req dto.SubmitEvaluationRequest) (*dto.EvaluationResultDTO, error) {
	f.evaluator = evaluatorID
	f.req = req
	e := &model.Evaluation{ID: uuid.New(), ApplicantID: applicantID, OverallRating: 3.75}
	return &dto.EvaluationResultDTO{Evaluation: e, Score: dto.NewScoreDTO(scoring.Result{Overall: 3.75}), Status: "interviewing"}, nil
}

func (f *fakeEvaluationUsecase) Get(ctx context.Context, id uuid.UUID) (*model.Evaluation, error) {
	return nil, util.ErrNotFound
}

func (f *fakeEvaluationUsecase) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Evaluation, error) {
	return []model.Evaluation{}, nil
}

type stubUsers map[uuid.UUID]*model.User

func (s stubUsers) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if u, ok := s[id]; ok {
		return u, nil
	}
	return nil, util.ErrNotFound
}

func TestEvaluationHandler(t *testing.T) {
	evaluator := &model.User{ID: uuid.New(), Email: "lead@example.com"}
	uc := &fakeEvaluationUsecase{}
	app := fiber.New()
	app.Use(middleware.Actor(stubUsers{evaluator.ID: evaluator}, zap.NewNop()))
	NewEvaluationHandler(uc).RegisterRoutes(app.Group("/api"))

	code, env := do(t, app, "POST", "/api/evaluations/preview", map[string]any{"ratings": map[string]int{uuid.NewString(): 4}})
	assert.Equal(t, fiber.StatusOK, code)
	var score dto.ScoreDTO
	require.NoError(t, json.Unmarshal(env.Data, &score))
	assert.Equal(t, 3.8, score.DisplayRating)
	assert.Equal(t, 3, score.FullStars)
	assert.True(t, score.HalfStar)

	path := "/api/applicants/" + uuid.NewString() + "/evaluations"
	code, env = do(t, app, "POST", path, map[string]any{"recommendation": "maybe"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Equal(t, "oneof", env.Details["recommendation"])

	code, _ = do(t, app, "POST", path, map[string]any{"comments": "solid", "ratings": map[string]int{}},
		middleware.HeaderUserID, evaluator.ID.String())
	assert.Equal(t, fiber.StatusCreated, code)
	require.NotNil(t, uc.evaluator)
	assert.Equal(t, evaluator.ID, *uc.evaluator)
	assert.Equal(t, "solid", uc.req.Comments)

	code, _ = do(t, app, "GET", "/api/evaluations/"+uuid.NewString(), nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

type fakeDisplayUsecase struct {
	page string
	req  dto.DisplaySettingRequest
}

func (f *fakeDisplayUsecase) List(ctx context.Context) ([]dto.DisplaySettingDTO, error) {
	return nil, nil
}

func (f *fakeDisplayUsecase) Get(ctx context.Context, page string) (*dto.DisplaySettingDTO, error) {
	return nil, util.NewFormError("unknown page "+page, map[string]string{"page": "oneof"})
}

func (f *fakeDisplayUsecase) Put(ctx context.Context, page string, req dto.DisplaySettingRequest) (*dto.DisplaySettingDTO, error) {
	f.page, f.req = page, req
	return &dto.DisplaySettingDTO{PageName: page, SchemaVersion: settings.DisplayVersion}, nil
}

func TestSettingsHandler_Display(t *testing.T) {
	displays := &fakeDisplayUsecase{}
	app := fiber.New()
	NewSettingsHandler(nil, nil, nil, displays, nil, nil).RegisterRoutes(app.Group("/api"))

	code, _ := do(t, app, "PUT", "/api/settings/display/dashboard", map[string]any{"cards": []string{"total_applicants"}})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "dashboard", displays.page)
	assert.Equal(t, []string{"total_applicants"}, displays.req.Cards)

	code, env := do(t, app, "GET", "/api/settings/display/reports", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, code)
	assert.Equal(t, "oneof", env.Details["page"])
}

type fakeReportUsecase struct{}

func (fakeReportUsecase) Summary(ctx context.Context) (report.Summary, error) {
	return report.Summary{Total: 4, PassRate: 50}, nil
}

func (fakeReportUsecase) Dashboard(ctx context.Context) ([]report.CardValue, error) {
	return []report.CardValue{{CardKey: "total", Value: 4}}, nil
}

func TestReportHandler(t *testing.T) {
	app := fiber.New()
	NewReportHandler(fakeReportUsecase{}).RegisterRoutes(app.Group("/api"))

	code, env := do(t, app, http.MethodGet, "/api/reports/summary", nil)
	assert.Equal(t, fiber.StatusOK, code)
	var s report.Summary
	require.NoError(t, json.Unmarshal(env.Data, &s))
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 50.0, s.PassRate)

	code, env = do(t, app, http.MethodGet, "/api/dashboard", nil)
	assert.Equal(t, fiber.StatusOK, code)
	var cards []report.CardValue
	require.NoError(t, json.Unmarshal(env.Data, &cards))
	assert.Equal(t, "total", cards[0].CardKey)
}
