package summary

import (
	"fmt"
	"strings"
	"testing"

	"assetbot/models"

	"github.com/stretchr/testify/assert"
)

func testAssets() []models.AssetRecord {
	var assets []models.AssetRecord
	for i := 1; i <= 8; i++ {
		category := "Laptop"
		if i%2 == 0 {
			category = "Smartphone"
		}
		assets = append(assets, models.AssetRecord{
			ID:           i,
			Name:         fmt.Sprintf("asset-%d", i),
			AssetTag:     fmt.Sprintf("%05d", i),
			Serial:       "SN",
			Model:        "Model",
			ModelID:      3,
			Category:     category,
			Status:       "deployed",
			AssignedTo:   models.UnassignedValue,
			Location:     "City Hall",
			LastCheckout: models.NeverValue,
			CustomFields: map[string]string{},
		})
	}
	return assets
}

func TestSummarizeAssetsFilters(t *testing.T) {
	assets := testAssets()
	assets = append(assets, models.AssetRecord{ID: 99, Category: "smartphone"})

	testCases := []struct {
		name      string
		opts      Options
		expectIDs []int
	}{
		{name: "no filter", opts: Options{}, expectIDs: []int{1, 2, 3, 4, 5, 6, 7, 8, 99}},
		{name: "exact category", opts: Options{Category: "Smartphone"}, expectIDs: []int{2, 4, 6, 8}},
		{name: "limit", opts: Options{Limit: 5}, expectIDs: []int{1, 2, 3, 4, 5}},
		{name: "limit applied after filter", opts: Options{Category: "Smartphone", Limit: 3}, expectIDs: []int{2, 4, 6}},
		{name: "limit larger than list", opts: Options{Category: "Smartphone", Limit: 50}, expectIDs: []int{2, 4, 6, 8}},
		{name: "unknown category", opts: Options{Category: "Printer"}, expectIDs: nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := SummarizeAssets(assets, models.ModelFieldIndex{}, tc.opts)

			var gotIDs []int
			if out != "" {
				for _, line := range strings.Split(out, "\n") {
					var id int
					_, err := fmt.Sscanf(line, "ID: %d,", &id)
					assert.NoError(t, err)
					gotIDs = append(gotIDs, id)
				}
			}
			assert.Equal(t, tc.expectIDs, gotIDs)
		})
	}
}

func TestSummarizeAssetsLine(t *testing.T) {
	asset := models.AssetRecord{
		ID:           17,
		Name:         "PD-PHONE-04",
		AssetTag:     "00427",
		Serial:       "F2LX",
		Model:        "iPhone 14",
		ModelID:      3,
		Category:     "Smartphone",
		Status:       "deployed",
		AssignedTo:   "Jane Smith",
		Location:     "City Hall",
		LastCheckout: "2024-03-01 10:00 AM",
		CustomFields: map[string]string{"IMEI": "356938035643809", "Phone": "4255550100", "Secret": "x"},
	}
	index := models.ModelFieldIndex{3: {"IMEI": {}, "Phone": {}}}

	got := SummarizeAssets([]models.AssetRecord{asset}, index, Options{})

	assert.Equal(t, "ID: 17, Name: PD-PHONE-04, Tag: 00427, Serial: F2LX, Model: iPhone 14, Category: Smartphone, "+
		"Status: deployed, Assigned To: Jane Smith, Location: City Hall, Last Checkout: 2024-03-01 10:00 AM, "+
		"Custom Fields: IMEI: 356938035643809, Phone: 4255550100", got)
}

func TestSummarizeAssetsOmitsFieldsOfOtherModels(t *testing.T) {
	asset := models.AssetRecord{ID: 1, ModelID: 4, CustomFields: map[string]string{"IMEI": "1"}}
	index := models.ModelFieldIndex{3: {"IMEI": {}}}

	got := SummarizeAssets([]models.AssetRecord{asset}, index, Options{})

	assert.True(t, strings.HasSuffix(got, "Custom Fields: "), got)
	assert.NotContains(t, got, "IMEI")
}

func TestSummarizeCarriers(t *testing.T) {
	carriers := []models.CarrierRecord{
		{IMEI: "1", SIM: "2", PhoneNumber: "4255550100", DeviceName: "Unit 4", Carrier: "Verizon", CostCenter: "PD"},
		{IMEI: "3", SIM: models.UnknownValue, PhoneNumber: "4255550101", DeviceName: "Unit 5", Carrier: "AT&T", CostCenter: "FD"},
	}

	got := SummarizeCarriers(carriers, Options{Category: "ignored"})

	assert.Equal(t,
		"IMEI: 1, SIM: 2, Phone Number: 4255550100, Device Name: Unit 4, Carrier: Verizon, Cost Center: PD\n"+
			"IMEI: 3, SIM: UNKNOWN, Phone Number: 4255550101, Device Name: Unit 5, Carrier: AT&T, Cost Center: FD",
		got)
	assert.Equal(t, 1, strings.Count(SummarizeCarriers(carriers, Options{Limit: 1}), "IMEI:"))
}

func TestSummarizeCategories(t *testing.T) {
	categories := []models.CategoryRecord{
		{ID: 2, Name: "Smartphone", CategoryType: "asset", AssetsCount: 41},
		{ID: 5, Name: "Laptop", CategoryType: "asset", AssetsCount: 12},
	}

	assert.Equal(t, "ID: 2, Name: Smartphone, Type: asset, Assets: 41\nID: 5, Name: Laptop, Type: asset, Assets: 12",
		SummarizeCategories(categories, Options{}))
	assert.Empty(t, SummarizeCategories(nil, Options{}))
}

func TestBuildModelFieldIndex(t *testing.T) {
	modelRecs := []models.ModelRecord{
		{ID: 3, Name: "iPhone 14", FieldsetID: 1},
		{ID: 4, Name: "Latitude"},
		{ID: 5, Name: "Orphan", FieldsetID: 42},
		{ID: 6, Name: "Galaxy", FieldsetID: 1},
	}
	fieldsets := []models.FieldsetRecord{
		{ID: 1, Name: "Phones", Fields: []models.CustomField{{ID: 7, Name: "IMEI"}, {ID: 8, Name: "Phone"}}},
		{ID: 2, Name: "Unused", Fields: []models.CustomField{{ID: 9, Name: "RAM"}}},
	}

	index := BuildModelFieldIndex(modelRecs, fieldsets)

	assert.Len(t, index, 2)
	assert.True(t, index.Allows(3, "IMEI"))
	assert.True(t, index.Allows(6, "Phone"))
	assert.False(t, index.Allows(3, "RAM"))
	assert.False(t, index.Allows(4, "IMEI"))
	assert.False(t, index.Allows(5, "IMEI"))
}

func TestParseQueryHints(t *testing.T) {
	cases := map[string]Options{
		"Who has the SmartPhone with IMEI 3569?":  {Category: "Smartphone"},
		"list the first assets in city hall":      {Limit: 5},
		"show the first smartphone assets please": {Category: "Smartphone", Limit: 5},
		"who has laptop 00427":                    {},
	}
	for msg, want := range cases {
		assert.Equal(t, want, ParseQueryHints(msg), msg)
	}
}
