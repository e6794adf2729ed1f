package models

// Column names every normalized carrier record carries.
const (
	ColumnIMEI        = "IMEI"
	ColumnSIM         = "SIM"
	ColumnPhoneNumber = "Phone Number"
	ColumnDeviceName  = "Device Name"
	ColumnCarrier     = "Carrier"
	ColumnCostCenter  = "cost_center"
)

// RequiredCarrierColumns lists the columns in output order.
var RequiredCarrierColumns = []string{
	ColumnIMEI,
	ColumnSIM,
	ColumnPhoneNumber,
	ColumnDeviceName,
	ColumnCarrier,
	ColumnCostCenter,
}

type CarrierRecord struct {
	IMEI        string `json:"IMEI"`
	SIM         string `json:"SIM"`
	PhoneNumber string `json:"Phone Number"`
	DeviceName  string `json:"Device Name"`
	Carrier     string `json:"Carrier"`
	CostCenter  string `json:"cost_center"`
}

// CarrierRecordFromColumns builds a record from a column->value row. Missing
// columns must already be filled by the caller.
func CarrierRecordFromColumns(row map[string]string) CarrierRecord {
	return CarrierRecord{
		IMEI:        row[ColumnIMEI],
		SIM:         row[ColumnSIM],
		PhoneNumber: row[ColumnPhoneNumber],
		DeviceName:  row[ColumnDeviceName],
		Carrier:     row[ColumnCarrier],
		CostCenter:  row[ColumnCostCenter],
	}
}
