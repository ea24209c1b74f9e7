package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSON-backed column types for nested menu/order data. sqlite has no array or
// map columns, so these serialize through TEXT the same way gorm handles any
// custom Valuer/Scanner pair.

// UintList stores an ordered list of row ids as a JSON array.
type UintList []uint

func (l UintList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *UintList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// PrefMap stores preference-key → chosen-value pairs, e.g. {"doneness": "Medium Rare"}.
type PrefMap map[string]string

func (m PrefMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	return string(b), err
}

func (m *PrefMap) Scan(src interface{}) error {
	return scanJSON(src, m)
}

// SideOption is a side dish a meal can be ordered with.
type SideOption struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ExtraOption is a paid addition to a meal.
type ExtraOption struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// PreferenceGroup is a named choice the diner makes per meal, e.g. doneness.
type PreferenceGroup struct {
	Key     string   `json:"key"`
	Options []string `json:"options"`
}

type SideOptions []SideOption

func (s SideOptions) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	return string(b), err
}

func (s *SideOptions) Scan(src interface{}) error {
	return scanJSON(src, s)
}

type ExtraOptions []ExtraOption

func (e ExtraOptions) Value() (driver.Value, error) {
	if e == nil {
		return "[]", nil
	}
	b, err := json.Marshal(e)
	return string(b), err
}

func (e *ExtraOptions) Scan(src interface{}) error {
	return scanJSON(src, e)
}

type PreferenceGroups []PreferenceGroup

func (p PreferenceGroups) Value() (driver.Value, error) {
	if p == nil {
		return "[]", nil
	}
	b, err := json.Marshal(p)
	return string(b), err
}

func (p *PreferenceGroups) Scan(src interface{}) error {
	return scanJSON(src, p)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported column type for JSON scan")
	}
}
