package models

import "strings"

// Column labels of the routing dataset (first sheet). Operation slot columns
// are described by the slot table in internal/core/sequence.
const (
	ColRoutingPart     = "Reper"
	ColRoutingRevision = "Revizie"
	ColRawMaterial     = "Material brut"
)

// RoutingRecord is one row of the routing dataset, keyed by part code. Row
// keeps the raw cells so the operation slots can be extracted from it.
type RoutingRecord struct {
	Revision    string
	RawMaterial string
	Row         map[string]string
}

// RoutingRecordFromRow maps a raw dataset row onto a RoutingRecord.
func RoutingRecordFromRow(row map[string]string) *RoutingRecord {
	return &RoutingRecord{
		Revision:    strings.TrimSpace(row[ColRoutingRevision]),
		RawMaterial: strings.TrimSpace(row[ColRawMaterial]),
		Row:         row,
	}
}

// Operation is one step of a part's manufacturing sequence, derived from a
// routing record's operation slots.
type Operation struct {
	SequenceNumber int
	Name           string
	Duration       string
	Location       string
}

// COCFields are the derived and externally supplied fields of a Declaration
// of Conformity.
type COCFields struct {
	CertificateNo   string
	LotNo           string
	ClientLotNo     string
	DrawingRevision string
	ClientName      string
}
