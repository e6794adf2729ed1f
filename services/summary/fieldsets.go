package summary

import "assetbot/models"

// BuildModelFieldIndex joins models to their fieldsets and returns, per model
// id, the custom field names that may appear in a summary. Models without a
// fieldset, or pointing at an unknown one, get no entry.
func BuildModelFieldIndex(modelRecs []models.ModelRecord, fieldsets []models.FieldsetRecord) models.ModelFieldIndex {
	fieldsByFieldset := make(map[int][]string, len(fieldsets))
	for _, fs := range fieldsets {
		names := make([]string, 0, len(fs.Fields))
		for _, f := range fs.Fields {
			names = append(names, f.Name)
		}
		fieldsByFieldset[fs.ID] = names
	}

	index := make(models.ModelFieldIndex, len(modelRecs))
	for _, m := range modelRecs {
		if m.FieldsetID == 0 {
			continue
		}
		names, ok := fieldsByFieldset[m.FieldsetID]
		if !ok {
			continue
		}
		set := make(map[string]struct{}, len(names))
		for _, n := range names {
			set[n] = struct{}{}
		}
		index[m.ID] = set
	}
	return index
}
