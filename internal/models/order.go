package models

import "strings"

// Column labels of the orders dataset (sheet "Comenzi"). The sheet carries a
// totals row above the header, which the reader skips.
const (
	ColInternalOrder    = "Comanda Interna"
	ColPart             = "Reper"
	ColPartCode         = "Cod Reper"
	ColQuantity         = "Cantitate"
	ColPosition         = "Pozitie"
	ColClientOrder      = "Comanda"
	ColInternalSheetRef = "Fisa Interna Elmet"
	ColDescription      = "Denumire"
	ColOrderDate        = "Data Comanda"
	ColMaterialStatus   = "Status Material"
	ColRevision         = "Revizie"
)

// OrderRecord is one row of the orders dataset. It is read fresh on every
// lookup and never mutated.
type OrderRecord struct {
	InternalOrder    string
	Part             string
	PartCode         string
	Quantity         string
	Position         string
	ClientOrder      string
	InternalSheetRef string
	Description      string
	OrderDate        string
	MaterialStatus   string
	Revision         string
}

// OrderRecordFromRow maps a raw dataset row onto an OrderRecord. Cell values
// are trimmed; absent columns map to the empty string.
func OrderRecordFromRow(row map[string]string) *OrderRecord {
	get := func(col string) string {
		return strings.TrimSpace(row[col])
	}
	return &OrderRecord{
		InternalOrder:    get(ColInternalOrder),
		Part:             get(ColPart),
		PartCode:         get(ColPartCode),
		Quantity:         get(ColQuantity),
		Position:         get(ColPosition),
		ClientOrder:      get(ColClientOrder),
		InternalSheetRef: get(ColInternalSheetRef),
		Description:      get(ColDescription),
		OrderDate:        get(ColOrderDate),
		MaterialStatus:   get(ColMaterialStatus),
		Revision:         get(ColRevision),
	}
}

// RoutingKey returns the key used to look the order up in the routing dataset:
// the part code, falling back to the part when no code is present.
func (o *OrderRecord) RoutingKey() string {
	if o.PartCode != "" {
		return o.PartCode
	}
	return o.Part
}
