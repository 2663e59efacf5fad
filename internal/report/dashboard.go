package report

import (
	"github.com/fadilmartias/recruit-admin/internal/model"
	"github.com/fadilmartias/recruit-admin/internal/settings"
)

type CardValue struct {
	CardKey  string   `json:"card_key"`
	CardName string   `json:"card_name"`
	CardType string   `json:"card_type"`
	Icon     string   `json:"card_icon,omitempty"`
	Color    string   `json:"card_color,omitempty"`
	Chart    string   `json:"chart,omitempty"`
	Value    float64  `json:"value"`
	Groups   []Bucket `json:"groups,omitempty"`
}

// Dashboard evaluates the active cards, in the order given, against s.
func Dashboard(cards []model.DashboardCard, s Summary) []CardValue {
	out := make([]CardValue, 0, len(cards))
	for _, c := range cards {
		if !c.IsActive {
			continue
		}
		out = append(out, EvaluateCard(c, s))
	}
	return out
}

func EvaluateCard(card model.DashboardCard, s Summary) CardValue {
	q := card.DataQuery.Data()
	v := CardValue{
		CardKey:  card.CardKey,
		CardName: card.CardName,
		CardType: card.CardType,
		Icon:     card.CardIcon,
		Color:    card.CardColor,
		Chart:    q.Chart,
	}

	switch q.Kind {
	case settings.QueryCount:
		if q.Status == "" {
			v.Value = float64(s.Total)
		} else {
			v.Value = float64(s.ByStatus[q.Status])
		}
	case settings.QueryRatio:
		v.Value = s.Rate(q.Status)
	case settings.QueryGroupBy:
		switch q.GroupBy {
		case settings.DimensionPosition:
			v.Groups = byCount(s.ByPosition)
		case settings.DimensionStatus:
			v.Groups = byCount(s.ByStatus)
		case settings.DimensionMonth:
			v.Groups = append([]Bucket(nil), s.Monthly...)
		}
		v.Value = float64(s.Total)
	}
	return v
}
