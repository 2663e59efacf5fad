package report

import (
	"sort"

	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/pipeline"
)

const monthLayout = "2006-01"

type Bucket struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

type Summary struct {
	Total      int            `json:"total"`
	ByStatus   map[string]int `json:"by_status"`
	ByPosition map[string]int `json:"by_position"`
	// Monthly is sorted by month, oldest first.
	Monthly []Bucket `json:"monthly"`
	// PassRate and OfferRate are percentages of all applicants.
	PassRate  float64 `json:"pass_rate"`
	OfferRate float64 `json:"offer_rate"`
}

func Summarize(applicants []model.Applicant) Summary {
	s := Summary{
		Total:      len(applicants),
		ByStatus:   make(map[string]int),
		ByPosition: make(map[string]int),
	}
	monthly := make(map[string]int)
	for _, a := range applicants {
		s.ByStatus[a.Status]++
		s.ByPosition[a.Position]++
		monthly[a.CreatedAt.UTC().Format(monthLayout)]++
	}

	s.Monthly = make([]Bucket, 0, len(monthly))
	for month, n := range monthly {
		s.Monthly = append(s.Monthly, Bucket{Key: month, Count: n})
	}
	sort.Slice(s.Monthly, func(i, j int) bool { return s.Monthly[i].Key < s.Monthly[j].Key })

	s.PassRate = s.Rate(pipeline.StatusScreened.String())
	s.OfferRate = s.Rate(pipeline.StatusOffered.String())
	return s
}

// Rate is the percentage of applicants currently in status.
func (s Summary) Rate(status string) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.ByStatus[status]) / float64(s.Total) * 100
}

// byCount orders buckets by count, most first, then by key.
func byCount(counts map[string]int) []Bucket {
	out := make([]Bucket, 0, len(counts))
	for k, n := range counts {
		out = append(out, Bucket{Key: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}
