package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fadilmartias/recruit-admin/internal/scoring"
	"github.com/fadilmartias/recruit-admin/internal/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)

	statuses := c.StatusRows()
	require.Len(t, statuses, 7)
	assert.Equal(t, "applied", statuses[0].StatusKey)
	assert.Equal(t, 1, statuses[0].DisplayOrder)

	var fields []scoring.Field
	for _, f := range c.EvaluationFieldRows() {
		fields = append(fields, scoring.Field{Weight: f.Weight, Active: f.IsActive})
	}
	assert.True(t, scoring.CheckWeights(fields).Balanced, "default weights should total 100")

	roles, err := c.RoleRows()
	require.NoError(t, err)
	require.Len(t, roles, 3)
	assert.Equal(t, settings.FullAccess(), roles[0].Permissions.Data())
	assert.True(t, roles[2].Permissions.Data().Allows(settings.ModuleApplicants, settings.ActionEvaluate))

	applicantFields := c.ApplicantFieldRows()
	assert.Equal(t, []string{"referral", "job board", "agency", "website"}, []string(applicantFields[4].Options))

	cards, err := c.DashboardCardRows()
	require.NoError(t, err)
	require.Len(t, cards, 6)
	assert.Equal(t, settings.CardQuery{Kind: settings.QueryRatio, Status: "screened"}, cards[1].DataQuery.Data())
	assert.False(t, cards[5].IsActive)

	displays, err := c.DisplayRows()
	require.NoError(t, err)
	require.Len(t, displays, 3)
	for _, d := range displays {
		_, err := settings.DecodeDisplay(settings.PageKind(d.PageName), d.SchemaVersion, d.Settings)
		assert.NoError(t, err, d.PageName)
	}
}

func TestLoadFileRejectsBadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogue.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
dashboard_cards:
  - key: broken
    name: Broken
    type: number
    query: { kind: ratio }
roles:
  - key: auditor
    name: Auditor
    permissions:
      reports: [delete]
`), 0o600))

	c, err := Load(path)
	require.NoError(t, err)

	_, err = c.DashboardCardRows()
	assert.ErrorIs(t, err, settings.ErrInvalid)
	_, err = c.RoleRows()
	assert.ErrorIs(t, err, settings.ErrInvalid)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
