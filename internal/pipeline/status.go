package pipeline

import (
	"regexp"
	"strings"
)

// Status is an applicant stage key as stored in applicants.status.
type Status string

const (
	StatusApplied      Status = "applied"
	StatusScreened     Status = "screened"
	StatusInterviewing Status = "interviewing"
	StatusOffered      Status = "offered"
	StatusDeclined     Status = "declined"
	StatusRejected     Status = "rejected"
	StatusClosed       Status = "closed"
)

// DefaultStatuses is the stage order used when no status settings are configured.
var DefaultStatuses = []Status{
	StatusApplied,
	StatusScreened,
	StatusInterviewing,
	StatusOffered,
	StatusDeclined,
	StatusRejected,
	StatusClosed,
}

// PastStatuses are the terminal stages listed under past applicants.
var PastStatuses = []Status{StatusClosed, StatusRejected, StatusDeclined}

func (s Status) IsDefault() bool {
	for _, d := range DefaultStatuses {
		if s == d {
			return true
		}
	}
	return false
}

func (s Status) IsPast() bool {
	for _, p := range PastStatuses {
		if s == p {
			return true
		}
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

// Recommendation is the interviewer's hiring advice on an evaluation.
type Recommendation string

const (
	RecommendHire     Recommendation = "hire"
	RecommendReject   Recommendation = "reject"
	RecommendConsider Recommendation = "consider"
)

func (r Recommendation) IsValid() bool {
	switch r {
	case RecommendHire, RecommendReject, RecommendConsider:
		return true
	default:
		return false
	}
}

// OrDefault returns RecommendConsider for an empty recommendation.
func (r Recommendation) OrDefault() Recommendation {
	if r == "" {
		return RecommendConsider
	}
	return r
}

// StatusAfterEvaluation is the stage an applicant moves to once evaluated.
func StatusAfterEvaluation(r Recommendation) Status {
	switch r {
	case RecommendHire:
		return StatusOffered
	case RecommendReject:
		return StatusRejected
	default:
		return StatusInterviewing
	}
}

var nonWord = regexp.MustCompile(`[^\w\s]`)

// Slug builds a settings key from a display name: lowercase, punctuation
// dropped, whitespace runs joined with underscores.
func Slug(name string) string {
	s := nonWord.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "")
	return strings.Join(strings.Fields(s), "_")
}
