package dto

import (
	"time"

	"github.com/fadilmartias/recruit-admin/internal/model"
)

type CreateApplicantRequest struct {
	Name          string         `json:"name" validate:"max=255"`
	Email         string         `json:"email" validate:"omitempty,email,max=255"`
	Phone         string         `json:"phone" validate:"max=50"`
	Position      string         `json:"position" validate:"max=255"`
	Status        string         `json:"status" validate:"max=50"`
	Comment       string         `json:"comment"`
	InterviewDate *time.Time     `json:"interview_date"`
	Extra         map[string]any `json:"extra"`
}

type UpdateApplicantRequest struct {
	Name          *string        `json:"name" validate:"omitempty,min=1,max=255"`
	Email         *string        `json:"email" validate:"omitempty,email,max=255"`
	Phone         *string        `json:"phone" validate:"omitempty,max=50"`
	Position      *string        `json:"position" validate:"omitempty,max=255"`
	Status        *string        `json:"status" validate:"omitempty,max=50"`
	Evaluation    *string        `json:"evaluation"`
	Comment       *string        `json:"comment"`
	InterviewDate *time.Time     `json:"interview_date"`
	Extra         map[string]any `json:"extra"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=50"`
}

// ScheduleInterviewRequest clears the interview when InterviewDate is null.
type ScheduleInterviewRequest struct {
	InterviewDate *time.Time `json:"interview_date"`
}

type ApplicantFilter struct {
	Search   string
	Status   string
	Position string
	Page     int
	PageSize int
}

type InterviewsDTO struct {
	Upcoming []model.Applicant `json:"upcoming"`
	Past     []model.Applicant `json:"past"`
}
