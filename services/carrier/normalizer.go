package carrier

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"assetbot/models"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Normalizer interface {
	Normalize() []models.CarrierRecord
}

type normalizer struct {
	dataDir string
	files   []VendorFile
	logger  *zap.Logger
}

func NewNormalizer(dataDir string, files []VendorFile, logger *zap.Logger) Normalizer {
	return &normalizer{dataDir: dataDir, files: files, logger: logger}
}

// Normalize loads every configured export and concatenates the rows in
// file-then-row order. A file that cannot be read is logged and skipped.
func (n *normalizer) Normalize() []models.CarrierRecord {
	records := make([]models.CarrierRecord, 0)
	for _, vf := range n.files {
		rows, err := n.loadFile(vf)
		if err != nil {
			n.logger.Warn("skipping carrier file", zap.String("file", vf.FileName), zap.Error(err))
			continue
		}
		n.logger.Info("loaded carrier file", zap.String("file", vf.FileName), zap.Int("rows", len(rows)))
		records = append(records, rows...)
	}
	return records
}

func (n *normalizer) loadFile(vf VendorFile) ([]models.CarrierRecord, error) {
	path := filepath.Join(n.dataDir, vf.FileName)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	if vf.Comma != 0 {
		reader.Comma = vf.Comma
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	for i := 0; i < vf.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, errors.Wrapf(err, "skip preamble of %s", vf.FileName)
		}
	}

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "read header of %s", vf.FileName)
	}
	columns := renameColumns(header, vf.Columns)

	var records []models.CarrierRecord
	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", vf.FileName)
		}
		records = append(records, normalizeRow(columns, cells, vf))
	}
	return records, nil
}

// renameColumns trims and renames the header. The returned slice holds the
// normalized name per position, or "" for a column that duplicates an
// earlier one.
func renameColumns(header []string, mapping map[string]string) []string {
	seen := make(map[string]bool, len(header))
	columns := make([]string, len(header))
	for i, h := range header {
		name := strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if renamed, ok := mapping[name]; ok {
			name = renamed
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		columns[i] = name
	}
	return columns
}

func normalizeRow(columns, cells []string, vf VendorFile) models.CarrierRecord {
	row := make(map[string]string, len(models.RequiredCarrierColumns))
	for i, name := range columns {
		if name == "" {
			continue
		}
		if i < len(cells) {
			row[name] = cells[i]
		} else {
			row[name] = ""
		}
	}
	row[models.ColumnCarrier] = vf.Carrier

	if phone, ok := row[models.ColumnPhoneNumber]; ok {
		row[models.ColumnPhoneNumber] = CleanPhoneNumber(phone)
	}
	if vf.StripPrefixes {
		if imei, ok := row[models.ColumnIMEI]; ok {
			row[models.ColumnIMEI] = strings.ReplaceAll(imei, "IMEI:", "")
		}
		if sim, ok := row[models.ColumnSIM]; ok {
			row[models.ColumnSIM] = strings.ReplaceAll(sim, "SIM:", "")
		}
	}

	for _, col := range models.RequiredCarrierColumns {
		if _, ok := row[col]; !ok {
			row[col] = models.UnknownValue
			continue
		}
		row[col] = cleanCell(row[col])
	}
	return models.CarrierRecordFromColumns(row)
}

// CleanPhoneNumber drops dots and whitespace: "425.555.0100 " -> "4255550100".
func CleanPhoneNumber(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '.' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func cleanCell(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\t", ""))
}
