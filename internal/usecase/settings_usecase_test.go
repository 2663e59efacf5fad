package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fadilmartias/recruit-admin/internal/dto"
	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/settings"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func boolPtr(b bool) *bool { return &b }

func TestEvaluationFieldUsecase_WeightWarning(t *testing.T) {
	fields := newFakeEvaluationFields(
		model.EvaluationField{Name: "Skills", Weight: 60, IsActive: true},
		model.EvaluationField{Name: "Culture", Weight: 40, IsActive: true},
	)
	uc := NewEvaluationFieldUsecase(fields)
	ctx := context.Background()

	out, err := uc.List(ctx)
	require.NoError(t, err)
	assert.True(t, out.Weights.Balanced)
	assert.Empty(t, out.Warning)

	out, err = uc.Create(ctx, dto.EvaluationFieldRequest{Name: "Leadership", Weight: 10})
	require.NoError(t, err)
	assert.Len(t, out.Fields, 3)
	assert.Equal(t, 110, out.Weights.TotalActiveWeight)
	assert.False(t, out.Weights.Balanced)
	assert.Contains(t, out.Warning, "110%")

	leadership := fields.order[2]
	out, err = uc.Toggle(ctx, leadership)
	require.NoError(t, err)
	assert.True(t, out.Weights.Balanced)
	assert.False(t, out.Fields[2].IsActive)

	out, err = uc.Update(ctx, fields.order[0], dto.EvaluationFieldRequest{Name: "Skills", Weight: 50, IsActive: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, 90, out.Weights.TotalActiveWeight)

	out, err = uc.Delete(ctx, leadership)
	require.NoError(t, err)
	assert.Len(t, out.Fields, 2)
}

func TestStatusUsecase_GeneratesKey(t *testing.T) {
	uc := NewStatusUsecase(newFakeStatuses())
	ctx := context.Background()

	s, err := uc.Create(ctx, dto.StatusSettingRequest{StatusName: "Final Round!"})
	require.NoError(t, err)
	assert.Equal(t, "final_round", s.StatusKey)
	assert.True(t, s.IsActive)

	s, err = uc.Create(ctx, dto.StatusSettingRequest{StatusName: "最終面接"})
	require.NoError(t, err)
	assert.Regexp(t, `^status_[0-9a-f]{8}$`, s.StatusKey)

	s, err = uc.Update(ctx, s.ID, dto.StatusSettingRequest{StatusName: "Final interview", IsActive: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, "Final interview", s.StatusName)
	assert.False(t, s.IsActive)
}

func TestRoleUsecase(t *testing.T) {
	roles := newFakeRoles()
	users := newFakeUsers()
	uc := NewRoleUsecase(roles, users)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.RoleRequest{
		RoleName:    "Auditor",
		Permissions: settings.Permissions{settings.ModuleReports: {settings.ActionDelete}},
	})
	var formErr *util.FormError
	require.ErrorAs(t, err, &formErr)
	assert.Equal(t, "invalid", formErr.Errors["permissions"])

	r, err := uc.Create(ctx, dto.RoleRequest{
		RoleName: "Interviewer",
		Permissions: settings.Permissions{
			settings.ModuleApplicants: {settings.ActionRead, settings.ActionEvaluate, settings.ActionRead},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "interviewer", r.RoleKey)
	perms := r.Permissions.Data()
	assert.True(t, perms.Allows(settings.ModuleApplicants, settings.ActionEvaluate))
	assert.False(t, perms.Allows(settings.ModuleUsers, settings.ActionRead))

	require.NoError(t, users.Create(ctx, &model.User{Email: "iv@example.com", Role: "interviewer"}))
	err = uc.Delete(ctx, r.ID)
	require.ErrorAs(t, err, &formErr)
	assert.Equal(t, "in_use", formErr.Errors["role_key"])
}

func TestUserUsecase(t *testing.T) {
	roles := newFakeRoles(model.Role{RoleKey: "admin", RoleName: "Admin"})
	uc := NewUserUsecase(newFakeUsers(), roles, zap.NewNop())
	uc.cost = bcrypt.MinCost
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateUserRequest{Email: "a@example.com", Password: "s3cretpass", Role: "ghost"})
	var formErr *util.FormError
	require.ErrorAs(t, err, &formErr)
	assert.Equal(t, "exists", formErr.Errors["role"])

	u, err := uc.Create(ctx, dto.CreateUserRequest{Email: " A@Example.com", Password: "s3cretpass", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", u.Email)
	assert.NotEqual(t, "s3cretpass", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cretpass")))

	password := "an0therpass"
	u, err = uc.Update(ctx, u.ID, dto.UpdateUserRequest{Password: &password})
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)))

	ghost := "ghost"
	_, err = uc.Update(ctx, u.ID, dto.UpdateUserRequest{Role: &ghost})
	assert.ErrorAs(t, err, &formErr)
}

func TestDisplaySettingUsecase(t *testing.T) {
	displays := newFakeDisplays(model.DisplaySetting{
		PageName: "applicant_list",
		Settings: []byte(`{"columns":{"name":true,"email":false,"phone":true}}`),
	})
	uc := NewDisplaySettingUsecase(displays)
	ctx := context.Background()

	got, err := uc.Get(ctx, "applicant_list")
	require.NoError(t, err)
	assert.Equal(t, settings.DisplayVersion, got.SchemaVersion)
	assert.ElementsMatch(t, []settings.Column{
		{Key: "name", Visible: true},
		{Key: "email", Visible: false},
		{Key: "phone", Visible: true},
	}, got.Settings.Columns)

	got, err = uc.Get(ctx, "dashboard")
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultDisplay(settings.PageDashboard), got.Settings)

	_, err = uc.Get(ctx, "reports")
	var formErr *util.FormError
	require.ErrorAs(t, err, &formErr)

	_, err = uc.Put(ctx, "interview_list", dto.DisplaySettingRequest{Columns: []settings.Column{{Key: "name", Visible: false}}})
	require.ErrorAs(t, err, &formErr)
	assert.Equal(t, "invalid", formErr.Errors["settings"])

	_, err = uc.Put(ctx, "interview_list", dto.DisplaySettingRequest{Columns: []settings.Column{{Key: "name", Visible: true}}})
	require.NoError(t, err)
	row := displays.rows["interview_list"]
	assert.Equal(t, settings.DisplayVersion, row.SchemaVersion)
	var stored settings.Display
	require.NoError(t, json.Unmarshal(row.Settings, &stored))
	assert.Equal(t, settings.PageInterviewList, stored.Kind)

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDashboardCardUsecase(t *testing.T) {
	cards := newFakeCards()
	uc := NewDashboardCardUsecase(cards)
	ctx := context.Background()

	c, err := uc.Create(ctx, dto.DashboardCardRequest{
		CardName:  "Screened count",
		CardType:  "number",
		DataQuery: json.RawMessage(`{"件数": true, "ステータス": "書類通過"}`),
	})
	require.NoError(t, err)
	assert.Equal(t, "screened_count", c.CardKey)
	assert.True(t, c.IsCustom)
	assert.Equal(t, settings.CardQuery{Kind: settings.QueryCount, Status: "screened"}, c.DataQuery.Data())

	_, err = uc.Update(ctx, c.ID, dto.DashboardCardRequest{
		CardName:  "Screened count",
		CardType:  "number",
		DataQuery: json.RawMessage(`{"kind":"ratio"}`),
	})
	var formErr *util.FormError
	require.ErrorAs(t, err, &formErr)
	assert.Equal(t, "invalid", formErr.Errors["data_query"])
}

func TestApplicantFieldUsecase(t *testing.T) {
	uc := NewApplicantFieldUsecase(newFakeApplicantFields())
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.ApplicantFieldRequest{FieldName: "Source", FieldType: "select"})
	var formErr *util.FormError
	require.ErrorAs(t, err, &formErr)

	f, err := uc.Create(ctx, dto.ApplicantFieldRequest{FieldName: "How did you hear about us?", FieldType: "select", Options: []string{"referral"}})
	require.NoError(t, err)
	assert.Equal(t, "how_did_you_hear_about_us", f.FieldKey)
	assert.True(t, f.IsDisplayed)

	f, err = uc.Update(ctx, f.ID, dto.ApplicantFieldRequest{FieldKey: "source", FieldName: "Source", FieldType: "text", IsDisplayed: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, "source", f.FieldKey)
	assert.False(t, f.IsDisplayed)
}

func TestReportUsecase_Dashboard(t *testing.T) {
	applicants := newFakeApplicants(
		model.Applicant{Name: "A", Status: "screened"},
		model.Applicant{Name: "B", Status: "applied"},
	)
	cards := newFakeCards()
	cardUC := NewDashboardCardUsecase(cards)
	_, err := cardUC.Create(context.Background(), dto.DashboardCardRequest{
		CardName:  "Pass rate",
		CardType:  "progress",
		DataQuery: json.RawMessage(`{"kind":"ratio","status":"screened"}`),
	})
	require.NoError(t, err)

	uc := NewReportUsecase(applicants, cards)
	summary, err := uc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Total)
	assert.Equal(t, 50.0, summary.PassRate)

	values, err := uc.Dashboard(context.Background())
	require.NoError(t, err)
	require.Len(t, values, 1)
	assert.Equal(t, "pass_rate", values[0].CardKey)
	assert.Equal(t, 50.0, values[0].Value)
}
