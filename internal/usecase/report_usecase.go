package usecase

import (
	"context"

	"github.com/fadilmartias/recruit-admin/internal/report"
	"github.com/fadilmartias/recruit-admin/internal/repository"
)

type ReportUsecaseInterface interface {
	Summary(ctx context.Context) (report.Summary, error)
	Dashboard(ctx context.Context) ([]report.CardValue, error)
}

type ReportUsecase struct {
	applicants repository.ApplicantRepositoryInterface
	cards      repository.DashboardCardRepositoryInterface
}

func NewReportUsecase(applicants repository.ApplicantRepositoryInterface, cards repository.DashboardCardRepositoryInterface) *ReportUsecase {
	return &ReportUsecase{applicants: applicants, cards: cards}
}

func (uc *ReportUsecase) Summary(ctx context.Context) (report.Summary, error) {
	rows, err := uc.applicants.ListAll(ctx)
	if err != nil {
		return report.Summary{}, err
	}
	return report.Summarize(rows), nil
}

func (uc *ReportUsecase) Dashboard(ctx context.Context) ([]report.CardValue, error) {
	summary, err := uc.Summary(ctx)
	if err != nil {
		return nil, err
	}
	cards, err := uc.cards.List(ctx)
	if err != nil {
		return nil, err
	}
	return report.Dashboard(cards, summary), nil
}
