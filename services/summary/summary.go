package summary

import (
	"fmt"
	"sort"
	"strings"

	"assetbot/models"
)

// Options narrows a record list before it is rendered. Zero values mean no
// filter and no limit.
type Options struct {
	Category string
	Limit    int
}

// Summarize renders one line per record. Records whose category differs from
// opts.Category are dropped first (exact match), then the list is cut to
// opts.Limit. categoryOf may be nil for record types without a category.
func Summarize[T any](records []T, opts Options, categoryOf func(T) string, line func(T) string) string {
	selected := records
	if opts.Category != "" && categoryOf != nil {
		selected = make([]T, 0, len(records))
		for _, r := range records {
			if categoryOf(r) == opts.Category {
				selected = append(selected, r)
			}
		}
	}
	if opts.Limit > 0 && len(selected) > opts.Limit {
		selected = selected[:opts.Limit]
	}

	lines := make([]string, 0, len(selected))
	for _, r := range selected {
		lines = append(lines, line(r))
	}
	return strings.Join(lines, "\n")
}

func SummarizeAssets(assets []models.AssetRecord, index models.ModelFieldIndex, opts Options) string {
	return Summarize(assets, opts,
		func(a models.AssetRecord) string { return a.Category },
		func(a models.AssetRecord) string { return assetLine(a, index) })
}

func SummarizeCarriers(carriers []models.CarrierRecord, opts Options) string {
	return Summarize(carriers, opts, nil, carrierLine)
}

func SummarizeCategories(categories []models.CategoryRecord, opts Options) string {
	return Summarize(categories, opts,
		func(c models.CategoryRecord) string { return c.Name },
		categoryLine)
}

func assetLine(a models.AssetRecord, index models.ModelFieldIndex) string {
	names := make([]string, 0, len(a.CustomFields))
	for name := range a.CustomFields {
		if index.Allows(a.ModelID, name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	custom := make([]string, 0, len(names))
	for _, name := range names {
		custom = append(custom, fmt.Sprintf("%s: %s", name, a.CustomFields[name]))
	}

	return fmt.Sprintf("ID: %d, Name: %s, Tag: %s, Serial: %s, Model: %s, Category: %s, Status: %s, "+
		"Assigned To: %s, Location: %s, Last Checkout: %s, Custom Fields: %s",
		a.ID, a.Name, a.AssetTag, a.Serial, a.Model, a.Category, a.Status,
		a.AssignedTo, a.Location, a.LastCheckout, strings.Join(custom, ", "))
}

func carrierLine(c models.CarrierRecord) string {
	return fmt.Sprintf("IMEI: %s, SIM: %s, Phone Number: %s, Device Name: %s, Carrier: %s, Cost Center: %s",
		c.IMEI, c.SIM, c.PhoneNumber, c.DeviceName, c.Carrier, c.CostCenter)
}

func categoryLine(c models.CategoryRecord) string {
	return fmt.Sprintf("ID: %d, Name: %s, Type: %s, Assets: %d", c.ID, c.Name, c.CategoryType, c.AssetsCount)
}
