package scoring

import (
	"math"

	"github.com/google/uuid"
)

const (
	MinRating = 0
	MaxRating = 5

	// FullWeight is the total active weight a balanced configuration sums to.
	FullWeight = 100
)

// Field is the part of an evaluation criterion the calculator needs.
type Field struct {
	ID     uuid.UUID
	Weight int
	Active bool
}

// Ratings maps a field id to a star rating. 0 or a missing entry means unrated.
type Ratings map[uuid.UUID]int

type Result struct {
	Overall           float64 `json:"overall_rating"`
	WeightedScore     float64 `json:"weighted_score"`
	TotalActiveWeight int     `json:"total_active_weight"`
	Points            int     `json:"points"`
	RatedCount        int     `json:"rated_count"`
}

// Calculate converts per-field star ratings into one overall rating on a 0-5 scale.
// The weighted score is divided by the total active weight, so unrated and
// misconfigured weights scale the result instead of penalizing it.
func Calculate(fields []Field, ratings Ratings) Result {
	var res Result
	active := 0
	for _, f := range fields {
		if !f.Active {
			continue
		}
		active++
		weight := clampWeight(f.Weight)
		res.TotalActiveWeight += weight

		rating := clampRating(ratings[f.ID])
		if rating == 0 {
			continue
		}
		res.WeightedScore += float64(rating) * (float64(weight) / 100)
		res.Points += int(math.Round(float64(rating) / MaxRating * float64(weight)))
		res.RatedCount++
	}

	if active == 0 || res.TotalActiveWeight == 0 {
		res.Overall = 0
		return res
	}

	overall := res.WeightedScore / (float64(res.TotalActiveWeight) / 100)
	res.Overall = math.Max(MinRating, math.Min(MaxRating, overall))
	return res
}

// OverallRating is Calculate without the breakdown.
func OverallRating(fields []Field, ratings Ratings) float64 {
	return Calculate(fields, ratings).Overall
}

// Display rounds the overall rating to one decimal. Persist Overall, not this.
func (r Result) Display() float64 {
	return math.Round(r.Overall*10) / 10
}

// Stars splits the displayed rating into filled and half stars.
func (r Result) Stars() (full int, half bool) {
	d := r.Display()
	full = int(math.Floor(d))
	half = d-float64(full) > 0
	return full, half
}

// WeightCheck reports whether the active weights sum to FullWeight.
type WeightCheck struct {
	TotalActiveWeight int  `json:"total_active_weight"`
	Balanced          bool `json:"weights_balanced"`
}

func CheckWeights(fields []Field) WeightCheck {
	total := 0
	for _, f := range fields {
		if f.Active {
			total += clampWeight(f.Weight)
		}
	}
	return WeightCheck{TotalActiveWeight: total, Balanced: total == FullWeight}
}

// ValidRating reports whether v is a star rating a form may submit.
func ValidRating(v int) bool {
	return v >= MinRating && v <= MaxRating
}

func clampRating(v int) int {
	if v < MinRating {
		return MinRating
	}
	if v > MaxRating {
		return MaxRating
	}
	return v
}

func clampWeight(w int) int {
	if w < 0 {
		return 0
	}
	return w
}
