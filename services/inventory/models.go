package inventory

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Wire shapes of the Snipe-IT list endpoints. Nested objects are pointers
// because Snipe-IT sends null for unset relations.

type listResponse[T any] struct {
	Total    int         `json:"total"`
	Rows     []T         `json:"rows"`
	Status   string      `json:"status"`
	Messages interface{} `json:"messages"`
}

type namedRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type statusLabel struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	StatusType string `json:"status_type"`
	StatusMeta string `json:"status_meta"`
}

type dateRef struct {
	Datetime  string `json:"datetime"`
	Formatted string `json:"formatted"`
}

type customFieldValue struct {
	Field       string      `json:"field"`
	Value       interface{} `json:"value"`
	FieldFormat string      `json:"field_format"`
}

type hardwareRow struct {
	ID           int                 `json:"id"`
	Name         *string             `json:"name"`
	AssetTag     *string             `json:"asset_tag"`
	Serial       *string             `json:"serial"`
	Model        *namedRef           `json:"model"`
	Category     *namedRef           `json:"category"`
	StatusLabel  *statusLabel        `json:"status_label"`
	AssignedTo   *namedRef           `json:"assigned_to"`
	Location     *namedRef           `json:"location"`
	LastCheckout *dateRef            `json:"last_checkout"`
	CustomFields jsoniter.RawMessage `json:"custom_fields"`
}

type categoryRow struct {
	ID           int     `json:"id"`
	Name         *string `json:"name"`
	CategoryType *string `json:"category_type"`
	AssetsCount  int     `json:"assets_count"`
}

type fieldRow struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	DBColumnName string `json:"db_column_name"`
}

type fieldsetRow struct {
	ID     int     `json:"id"`
	Name   *string `json:"name"`
	Fields *struct {
		Total int        `json:"total"`
		Rows  []fieldRow `json:"rows"`
	} `json:"fields"`
}

type modelRow struct {
	ID           int       `json:"id"`
	Name         *string   `json:"name"`
	Manufacturer *namedRef `json:"manufacturer"`
	Category     *namedRef `json:"category"`
	Fieldset     *namedRef `json:"fieldset"`
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func refName(r *namedRef, fallback string) string {
	if r == nil || r.Name == "" {
		return fallback
	}
	return r.Name
}

func refID(r *namedRef) int {
	if r == nil {
		return 0
	}
	return r.ID
}

// customFields flattens {"IMEI": {"field": "_snipeit_imei_1", "value": "..."}}
// to {"IMEI": "..."}. Snipe-IT sends [] instead of {} when an asset has none.
func customFields(raw jsoniter.RawMessage) map[string]string {
	out := map[string]string{}
	if len(raw) == 0 {
		return out
	}
	var fields map[string]customFieldValue
	if err := json.Unmarshal(raw, &fields); err != nil {
		return out
	}
	for name, f := range fields {
		switch v := f.Value.(type) {
		case nil:
			out[name] = ""
		case string:
			out[name] = v
		default:
			out[name] = fmt.Sprint(v)
		}
	}
	return out
}
