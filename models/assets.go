package models

// Defaults filled in when Snipe-IT omits a value.
const (
	UnknownValue    = "UNKNOWN"
	UnassignedValue = "Unassigned"
	NeverValue      = "Never"
)

// AssetRecord is the flattened projection of a Snipe-IT hardware row.
type AssetRecord struct {
	ID           int               `json:"id"`
	Name         string            `json:"name"`
	AssetTag     string            `json:"asset_tag"`
	Serial       string            `json:"serial"`
	Model        string            `json:"model"`
	ModelID      int               `json:"model_id"`
	Category     string            `json:"category"`
	Status       string            `json:"status"`
	AssignedTo   string            `json:"assigned_to"`
	Location     string            `json:"location"`
	LastCheckout string            `json:"last_checkout"`
	CustomFields map[string]string `json:"custom_fields"`
}

type CategoryRecord struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	CategoryType string `json:"category_type"`
	AssetsCount  int    `json:"assets_count"`
}

type CustomField struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	DBColumn string `json:"db_column_name"`
}

type FieldsetRecord struct {
	ID     int           `json:"id"`
	Name   string        `json:"name"`
	Fields []CustomField `json:"fields"`
}

// ModelRecord links a hardware model to its custom fieldset. FieldsetID is 0
// when the model has no fieldset.
type ModelRecord struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Category     string `json:"category"`
	FieldsetID   int    `json:"fieldset_id"`
}
