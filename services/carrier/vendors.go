package carrier

import "assetbot/models"

// VendorFile describes one carrier export and how its columns map onto the
// normalized carrier record.
type VendorFile struct {
	FileName string
	Carrier  string
	// SkipRows is the number of lines before the header row.
	SkipRows int
	Comma    rune
	Columns  map[string]string
	// StripPrefixes removes literal "IMEI:" and "SIM:" markers from cells.
	StripPrefixes bool
}

// DefaultVendorFiles is the export list read at startup, in output order.
var DefaultVendorFiles = []VendorFile{
	{
		FileName: "verizon.csv",
		Carrier:  "Verizon",
		SkipRows: 1,
		Comma:    ',',
		Columns: map[string]string{
			"Device ID":     models.ColumnIMEI,
			"SIM ID":        models.ColumnSIM,
			"Mobile Number": models.ColumnPhoneNumber,
			"Username":      models.ColumnDeviceName,
			"Cost Center":   models.ColumnCostCenter,
		},
	},
	{
		FileName: "tmobile.csv",
		Carrier:  "T-Mobile",
		Comma:    ',',
		Columns: map[string]string{
			"DAC":           models.ColumnCostCenter,
			"Device User":   models.ColumnDeviceName,
			"Mobile Number": models.ColumnPhoneNumber,
		},
		StripPrefixes: true,
	},
	{
		FileName: "att_phones.csv",
		Carrier:  "AT&T",
		Comma:    ',',
		Columns: map[string]string{
			"Device IMEI":        models.ColumnIMEI,
			"SIM number (ICCID)": models.ColumnSIM,
			"Wireless number":    models.ColumnPhoneNumber,
			"COST CENTER":        models.ColumnCostCenter,
			"Wireless user name": models.ColumnDeviceName,
		},
	},
	{
		FileName: "att_devices.csv",
		Carrier:  "AT&T",
		Comma:    ',',
		Columns: map[string]string{
			"IMEI":       models.ColumnIMEI,
			"ICCID":      models.ColumnSIM,
			"MSISDN":     models.ColumnPhoneNumber,
			"Customer":   models.ColumnCostCenter,
			"Device ID":  models.ColumnDeviceName,
			"IMEI Model": "model.name",
		},
	},
}
