package snapshot

import (
	"context"

	"assetbot/models"
	"assetbot/services/carrier"
	"assetbot/services/inventory"
	"assetbot/services/summary"
	"assetbot/utils"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate mockgen -source=snapshot.go -destination=mock_snapshot.go -package=snapshot

// InventorySource produces a fresh inventory snapshot.
type InventorySource interface {
	FetchInventory(ctx context.Context) (models.InventorySnapshot, error)
}

type Loader struct {
	inventory  inventory.Client
	normalizer carrier.Normalizer
	debugDir   string
	debug      bool
	logger     *zap.Logger
}

// NewLoader wires the startup loader. When debug is true every snapshot part
// is dumped as JSON into debugDir.
func NewLoader(inv inventory.Client, normalizer carrier.Normalizer, debug bool, debugDir string, logger *zap.Logger) *Loader {
	return &Loader{
		inventory:  inv,
		normalizer: normalizer,
		debugDir:   debugDir,
		debug:      debug,
		logger:     logger,
	}
}

// Load builds the process-wide snapshot. Any inventory failure is returned;
// carrier files that fail to load are skipped by the normalizer.
func (l *Loader) Load(ctx context.Context) (*models.Snapshot, error) {
	carriers := l.normalizer.Normalize()
	l.dump("carrier_data.json", carriers)

	inv, err := l.FetchInventory(ctx)
	if err != nil {
		return nil, err
	}
	l.dump("snipeit_assets.json", inv.Assets)
	l.dump("snipeit_categories.json", inv.Categories)
	l.dump("snipeit_fieldsets.json", inv.Fieldsets)
	l.dump("snipeit_models.json", inv.Models)

	l.logger.Info("reference data loaded",
		zap.Int("carriers", len(carriers)),
		zap.Int("assets", len(inv.Assets)),
		zap.Int("categories", len(inv.Categories)),
		zap.Int("fieldsets", len(inv.Fieldsets)),
		zap.Int("models", len(inv.Models)))

	return &models.Snapshot{InventorySnapshot: inv, Carriers: carriers}, nil
}

// FetchInventory pulls assets, categories, fieldsets and models one after
// another and joins models to fieldsets. Debug dumps are written by Load only.
func (l *Loader) FetchInventory(ctx context.Context) (models.InventorySnapshot, error) {
	assets, err := l.inventory.GetAssets(ctx)
	if err != nil {
		return models.InventorySnapshot{}, errors.Wrap(err, "fetch snipe-it assets")
	}

	categories, err := l.inventory.GetCategories(ctx)
	if err != nil {
		return models.InventorySnapshot{}, errors.Wrap(err, "fetch snipe-it categories")
	}

	fieldsets, err := l.inventory.GetFieldsets(ctx)
	if err != nil {
		return models.InventorySnapshot{}, errors.Wrap(err, "fetch snipe-it fieldsets")
	}

	modelRecs, err := l.inventory.GetModels(ctx)
	if err != nil {
		return models.InventorySnapshot{}, errors.Wrap(err, "fetch snipe-it models")
	}

	return models.InventorySnapshot{
		Assets:      assets,
		Categories:  categories,
		Fieldsets:   fieldsets,
		Models:      modelRecs,
		ModelFields: summary.BuildModelFieldIndex(modelRecs, fieldsets),
	}, nil
}

func (l *Loader) dump(name string, v interface{}) {
	if !l.debug {
		return
	}
	path, err := utils.WriteDebugJSON(l.debugDir, name, v)
	if err != nil {
		l.logger.Warn("debug dump failed", zap.String("file", name), zap.Error(err))
		return
	}
	l.logger.Debug("debug JSON saved", zap.String("path", path))
}
