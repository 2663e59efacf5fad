package seed

import (
	"context"

	"github.com/fadilmartias/recruit-admin/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Result counts the rows inserted per table.
type Result map[string]int64

// Run writes the catalogue. Keyed tables only receive rows whose key is free.
// Evaluation fields have no natural key and are seeded only into an empty table.
func Run(ctx context.Context, db *gorm.DB, c *Catalogue, log *zap.Logger) (Result, error) {
	roles, err := c.RoleRows()
	if err != nil {
		return nil, err
	}
	cards, err := c.DashboardCardRows()
	if err != nil {
		return nil, err
	}
	displays, err := c.DisplayRows()
	if err != nil {
		return nil, err
	}

	res := Result{}
	steps := []struct {
		table string
		run   func() (int64, error)
	}{
		{"status_settings", func() (int64, error) {
			return repository.NewStatusSettingRepository(db).Seed(ctx, "status_key", c.StatusRows())
		}},
		{"roles", func() (int64, error) {
			return repository.NewRoleRepository(db).Seed(ctx, "role_key", roles)
		}},
		{"applicant_fields", func() (int64, error) {
			return repository.NewApplicantFieldRepository(db).Seed(ctx, "field_key", c.ApplicantFieldRows())
		}},
		{"dashboard_cards", func() (int64, error) {
			return repository.NewDashboardCardRepository(db).Seed(ctx, "card_key", cards)
		}},
		{"display_settings", func() (int64, error) {
			return repository.NewDisplaySettingRepository(db).Seed(ctx, "page_name", displays)
		}},
		{"evaluation_fields", func() (int64, error) {
			repo := repository.NewEvaluationFieldRepository(db)
			existing, err := repo.List(ctx)
			if err != nil || len(existing) > 0 {
				return 0, err
			}
			return repo.Seed(ctx, "id", c.EvaluationFieldRows())
		}},
	}
	for _, step := range steps {
		n, err := step.run()
		if err != nil {
			return res, err
		}
		res[step.table] = n
		log.Info("seeded", zap.String("table", step.table), zap.Int64("inserted", n))
	}
	return res, nil
}
