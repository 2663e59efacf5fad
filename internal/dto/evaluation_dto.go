package dto

import (
	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/scoring"
	"github.com/fadilmartias/recruit-admin/internal/util"
	"github.com/google/uuid"
)

// Ratings are keyed by evaluation field id.
type PreviewRequest struct {
	Ratings map[string]int `json:"ratings"`
}

type SubmitEvaluationRequest struct {
	Ratings        map[string]int `json:"ratings"`
	Strengths      string         `json:"strengths"`
	Weaknesses     string         `json:"weaknesses"`
	Comments       string         `json:"comments"`
	Recommendation string         `json:"recommendation" validate:"omitempty,oneof=hire reject consider"`
}

type ScoreDTO struct {
	scoring.Result
	DisplayRating float64 `json:"display_rating"`
	FullStars     int     `json:"full_stars"`
	HalfStar      bool    `json:"half_star"`
}

func NewScoreDTO(res scoring.Result) ScoreDTO {
	full, half := res.Stars()
	return ScoreDTO{
		Result:        res,
		DisplayRating: res.Display(),
		FullStars:     full,
		HalfStar:      half,
	}
}

type EvaluationResultDTO struct {
	Evaluation *model.Evaluation `json:"evaluation"`
	Score      ScoreDTO          `json:"score"`
	Status     string            `json:"applicant_status"`
}

// ParseRatings converts ratings keyed by field id strings.
func ParseRatings(raw map[string]int) (scoring.Ratings, error) {
	ratings := make(scoring.Ratings, len(raw))
	invalid := make(map[string]string)
	for key, v := range raw {
		id, err := uuid.Parse(key)
		if err != nil {
			invalid[key] = "uuid"
			continue
		}
		ratings[id] = v
	}
	if len(invalid) > 0 {
		return nil, util.NewFormError("ratings must be keyed by evaluation field id", invalid)
	}
	return ratings, nil
}
