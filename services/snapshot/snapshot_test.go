package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"assetbot/models"
	"assetbot/services/carrier"
	"assetbot/services/inventory"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

var (
	testAssets     = []models.AssetRecord{{ID: 17, Name: "PD-PHONE-04", ModelID: 3, Category: "Smartphone"}}
	testCategories = []models.CategoryRecord{{ID: 2, Name: "Smartphone"}}
	testFieldsets  = []models.FieldsetRecord{{ID: 1, Name: "Phones", Fields: []models.CustomField{{ID: 7, Name: "IMEI"}}}}
	testModels     = []models.ModelRecord{{ID: 3, Name: "iPhone 14", FieldsetID: 1}}
	testCarriers   = []models.CarrierRecord{{IMEI: "1", Carrier: "Verizon"}}
)

func expectInventory(inv *inventory.MockClient) {
	inv.EXPECT().GetAssets(gomock.Any()).Return(testAssets, nil)
	inv.EXPECT().GetCategories(gomock.Any()).Return(testCategories, nil)
	inv.EXPECT().GetFieldsets(gomock.Any()).Return(testFieldsets, nil)
	inv.EXPECT().GetModels(gomock.Any()).Return(testModels, nil)
}

func TestLoad(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inv := inventory.NewMockClient(ctrl)
	normalizer := carrier.NewMockNormalizer(ctrl)
	normalizer.EXPECT().Normalize().Return(testCarriers)
	expectInventory(inv)

	snap, err := NewLoader(inv, normalizer, false, "", zap.NewNop()).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testCarriers, snap.Carriers)
	assert.Equal(t, testAssets, snap.Assets)
	assert.Equal(t, testCategories, snap.Categories)
	assert.Equal(t, testFieldsets, snap.Fieldsets)
	assert.Equal(t, testModels, snap.Models)
	assert.True(t, snap.ModelFields.Allows(3, "IMEI"))
}

func TestLoadWritesDebugDumps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inv := inventory.NewMockClient(ctrl)
	normalizer := carrier.NewMockNormalizer(ctrl)
	normalizer.EXPECT().Normalize().Return(testCarriers)
	expectInventory(inv)

	dir := filepath.Join(t.TempDir(), "cleaned_data")
	_, err := NewLoader(inv, normalizer, true, dir, zap.NewNop()).Load(context.Background())
	require.NoError(t, err)

	for _, name := range []string{
		"carrier_data.json",
		"snipeit_assets.json",
		"snipeit_categories.json",
		"snipeit_fieldsets.json",
		"snipeit_models.json",
	} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestFetchInventoryWritesNoDumps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inv := inventory.NewMockClient(ctrl)
	normalizer := carrier.NewMockNormalizer(ctrl)
	expectInventory(inv)

	dir := filepath.Join(t.TempDir(), "cleaned_data")
	fresh, err := NewLoader(inv, normalizer, true, dir, zap.NewNop()).FetchInventory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testAssets, fresh.Assets)

	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err))
}

func TestLoadStopsOnInventoryError(t *testing.T) {
	testCases := []struct {
		name   string
		expect func(inv *inventory.MockClient)
	}{
		{
			name: "assets",
			expect: func(inv *inventory.MockClient) {
				inv.EXPECT().GetAssets(gomock.Any()).Return(nil, inventory.ErrUnexpectedStatus)
			},
		},
		{
			name: "fieldsets",
			expect: func(inv *inventory.MockClient) {
				inv.EXPECT().GetAssets(gomock.Any()).Return(testAssets, nil)
				inv.EXPECT().GetCategories(gomock.Any()).Return(testCategories, nil)
				inv.EXPECT().GetFieldsets(gomock.Any()).Return(nil, inventory.ErrUnexpectedStatus)
			},
		},
		{
			name: "models",
			expect: func(inv *inventory.MockClient) {
				inv.EXPECT().GetAssets(gomock.Any()).Return(testAssets, nil)
				inv.EXPECT().GetCategories(gomock.Any()).Return(testCategories, nil)
				inv.EXPECT().GetFieldsets(gomock.Any()).Return(testFieldsets, nil)
				inv.EXPECT().GetModels(gomock.Any()).Return(nil, inventory.ErrUnexpectedStatus)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			inv := inventory.NewMockClient(ctrl)
			normalizer := carrier.NewMockNormalizer(ctrl)
			normalizer.EXPECT().Normalize().Return(testCarriers)
			tc.expect(inv)

			snap, err := NewLoader(inv, normalizer, false, "", zap.NewNop()).Load(context.Background())

			assert.Nil(t, snap)
			require.Error(t, err)
			assert.True(t, errors.Is(err, inventory.ErrUnexpectedStatus))
			assert.Contains(t, err.Error(), tc.name)
		})
	}
}
