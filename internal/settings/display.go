package settings

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var ErrInvalid = errors.New("invalid settings")

// DisplayVersion is the schema_version written for display settings.
// Version 0 rows hold the legacy untyped blobs and are migrated on read.
const DisplayVersion = 1

type PageKind string

const (
	PageApplicantList PageKind = "applicant_list"
	PageInterviewList PageKind = "interview_list"
	PageDashboard     PageKind = "dashboard"
)

func (k PageKind) IsValid() bool {
	switch k {
	case PageApplicantList, PageInterviewList, PageDashboard:
		return true
	default:
		return false
	}
}

type Column struct {
	Key     string `json:"key"`
	Visible bool   `json:"visible"`
}

// Display is the settings of one page. List pages use Columns, the dashboard uses Cards.
type Display struct {
	Kind    PageKind `json:"kind"`
	Columns []Column `json:"columns,omitempty"`
	Cards   []string `json:"cards,omitempty"`
}

var defaultColumns = map[PageKind][]string{
	PageApplicantList: {"name", "email", "phone", "position", "status", "created_at", "interview_date"},
	PageInterviewList: {"name", "position", "interview_date", "status"},
}

var defaultCards = []string{"total_applicants", "passed_rate", "interviewing_count", "offered_count"}

func DefaultDisplay(kind PageKind) Display {
	d := Display{Kind: kind}
	if kind == PageDashboard {
		d.Cards = append([]string(nil), defaultCards...)
		return d
	}
	for _, key := range defaultColumns[kind] {
		d.Columns = append(d.Columns, Column{Key: key, Visible: true})
	}
	return d
}

func (d Display) Validate() error {
	if !d.Kind.IsValid() {
		return fmt.Errorf("%w: unknown page %q", ErrInvalid, d.Kind)
	}
	if d.Kind == PageDashboard {
		if len(d.Columns) > 0 {
			return fmt.Errorf("%w: dashboard settings take cards, not columns", ErrInvalid)
		}
		return nil
	}
	if len(d.Cards) > 0 {
		return fmt.Errorf("%w: %s settings take columns, not cards", ErrInvalid, d.Kind)
	}
	known := make(map[string]bool)
	for _, key := range defaultColumns[d.Kind] {
		known[key] = true
	}
	visible := 0
	for _, c := range d.Columns {
		if !known[c.Key] {
			return fmt.Errorf("%w: unknown column %q", ErrInvalid, c.Key)
		}
		if c.Visible {
			visible++
		}
	}
	if visible == 0 {
		return fmt.Errorf("%w: at least one column must stay visible", ErrInvalid)
	}
	return nil
}

// DecodeDisplay reads a stored settings blob, migrating legacy rows forward.
func DecodeDisplay(kind PageKind, version int, raw []byte) (Display, error) {
	if !kind.IsValid() {
		return Display{}, fmt.Errorf("%w: unknown page %q", ErrInvalid, kind)
	}
	if len(raw) == 0 {
		return DefaultDisplay(kind), nil
	}
	var (
		d   Display
		err error
	)
	switch version {
	case 0:
		d, err = migrateLegacyDisplay(kind, raw)
	case DisplayVersion:
		if err = json.Unmarshal(raw, &d); err != nil {
			err = fmt.Errorf("%w: %v", ErrInvalid, err)
		}
		d.Kind = kind
	default:
		err = fmt.Errorf("%w: unsupported schema version %d", ErrInvalid, version)
	}
	if err != nil {
		return Display{}, err
	}
	// Rows edited outside the API may break the rules Put enforces.
	if d.Validate() != nil {
		return DefaultDisplay(kind), nil
	}
	return d, nil
}

func migrateLegacyDisplay(kind PageKind, raw []byte) (Display, error) {
	if !gjson.ValidBytes(raw) {
		return Display{}, fmt.Errorf("%w: legacy settings are not valid JSON", ErrInvalid)
	}
	doc := gjson.ParseBytes(raw)
	d := Display{Kind: kind}

	if kind == PageDashboard {
		cards := doc.Get("cards")
		if !cards.Exists() {
			cards = doc.Get("表示項目")
		}
		for _, c := range cards.Array() {
			if c.String() != "" {
				d.Cards = append(d.Cards, c.String())
			}
		}
		if len(d.Cards) == 0 {
			return DefaultDisplay(kind), nil
		}
		return d, nil
	}

	columns := doc.Get("columns")
	if !columns.IsObject() {
		columns = doc
	}
	known := make(map[string]bool)
	for _, key := range defaultColumns[kind] {
		known[key] = true
	}
	columns.ForEach(func(key, value gjson.Result) bool {
		if known[key.String()] && (value.Type == gjson.True || value.Type == gjson.False) {
			d.Columns = append(d.Columns, Column{Key: key.String(), Visible: value.Bool()})
		}
		return true
	})
	if len(d.Columns) == 0 {
		return DefaultDisplay(kind), nil
	}
	return d, nil
}
