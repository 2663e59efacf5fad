package settings

import (
	"fmt"

	"github.com/tidwall/gjson"
)

type QueryKind string

const (
	// QueryCount counts applicants, optionally those in one status.
	QueryCount QueryKind = "count"
	// QueryRatio is the percentage of applicants in one status.
	QueryRatio QueryKind = "ratio"
	// QueryGroupBy buckets applicants by a dimension.
	QueryGroupBy QueryKind = "group_by"
)

type Dimension string

const (
	DimensionPosition Dimension = "position"
	DimensionStatus   Dimension = "status"
	DimensionMonth    Dimension = "month"
)

// CardQuery is what a dashboard card computes.
type CardQuery struct {
	Kind    QueryKind `json:"kind"`
	Status  string    `json:"status,omitempty"`
	GroupBy Dimension `json:"group_by,omitempty"`
	Chart   string    `json:"chart,omitempty"`
}

func (q CardQuery) Validate() error {
	switch q.Kind {
	case QueryCount:
		if q.GroupBy != "" {
			return fmt.Errorf("%w: count queries cannot group", ErrInvalid)
		}
	case QueryRatio:
		if q.Status == "" {
			return fmt.Errorf("%w: ratio queries need a status", ErrInvalid)
		}
		if q.GroupBy != "" {
			return fmt.Errorf("%w: ratio queries cannot group", ErrInvalid)
		}
	case QueryGroupBy:
		switch q.GroupBy {
		case DimensionPosition, DimensionStatus, DimensionMonth:
		default:
			return fmt.Errorf("%w: unknown group_by %q", ErrInvalid, q.GroupBy)
		}
	default:
		return fmt.Errorf("%w: unknown query kind %q", ErrInvalid, q.Kind)
	}
	return nil
}

// legacy keys written by the first console release
const (
	legacyCount   = "件数"
	legacyStatus  = "ステータス"
	legacyRatio   = "割合"
	legacyGroupBy = "グループ分け"
	legacyChart   = "グラフ種類"
)

// legacyStatuses maps the first release's stage labels to status keys.
var legacyStatuses = map[string]string{
	"応募":   "applied",
	"書類通過": "screened",
	"面接中":  "interviewing",
	"内定":   "offered",
	"辞退":   "declined",
	"不採用":  "rejected",
	"選考終了": "closed",
}

// ParseCardQuery accepts both the typed form and the legacy untyped blob.
func ParseCardQuery(raw []byte) (CardQuery, error) {
	if !gjson.ValidBytes(raw) {
		return CardQuery{}, fmt.Errorf("%w: data_query is not valid JSON", ErrInvalid)
	}
	doc := gjson.ParseBytes(raw)

	var q CardQuery
	if kind := doc.Get("kind"); kind.Exists() {
		q = CardQuery{
			Kind:    QueryKind(kind.String()),
			Status:  doc.Get("status").String(),
			GroupBy: Dimension(doc.Get("group_by").String()),
			Chart:   doc.Get("chart").String(),
		}
	} else {
		q = migrateLegacyQuery(doc)
	}
	if err := q.Validate(); err != nil {
		return CardQuery{}, err
	}
	return q, nil
}

func migrateLegacyQuery(doc gjson.Result) CardQuery {
	status := doc.Get(legacyStatus).String()
	if key, ok := legacyStatuses[status]; ok {
		status = key
	}
	switch {
	case doc.Get(legacyGroupBy).Exists():
		return CardQuery{
			Kind:    QueryGroupBy,
			GroupBy: Dimension(doc.Get(legacyGroupBy).String()),
			Chart:   doc.Get(legacyChart).String(),
		}
	case doc.Get(legacyRatio).Bool():
		return CardQuery{Kind: QueryRatio, Status: status}
	case doc.Get(legacyCount).Bool() || status != "":
		return CardQuery{Kind: QueryCount, Status: status}
	}
	return CardQuery{}
}
