package models

// ModelFieldIndex maps a model id to the custom field names its fieldset
// exposes.
type ModelFieldIndex map[int]map[string]struct{}

func (idx ModelFieldIndex) Allows(modelID int, field string) bool {
	fields, ok := idx[modelID]
	if !ok {
		return false
	}
	_, ok = fields[field]
	return ok
}

// InventorySnapshot is everything fetched from Snipe-IT in one pass.
type InventorySnapshot struct {
	Assets      []AssetRecord
	Categories  []CategoryRecord
	Fieldsets   []FieldsetRecord
	Models      []ModelRecord
	ModelFields ModelFieldIndex
}

// Snapshot is the read-only reference data a chat turn works from. It is
// built once at startup and never mutated afterwards.
type Snapshot struct {
	InventorySnapshot
	Carriers []CarrierRecord
}
