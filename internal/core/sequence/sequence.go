// Package sequence contains the pure logic for extracting an order's
// operation sequence from a routing record's wide-format operation slots.
package sequence

import (
	"strings"

	"github.com/example/rcgen/internal/models"
)

// MaxSlots is the fixed number of operation slots a routing record can hold.
// Slots beyond the tenth do not exist in the dataset layout; lifting this is
// a dataset migration, not a code change.
const MaxSlots = 10

// Slot maps one operation slot to its three dataset columns. The location
// column is irregular: the first slot uses the unsuffixed base label, later
// slots append their index. The table spells every entry out so the
// irregularity is data, not a string-building rule.
type Slot struct {
	Number         int // 1-based sequence number, in steps of 10
	NameColumn     string
	DurationColumn string
	LocationColumn string
}

// Slots is the complete slot table of the routing dataset.
var Slots = [MaxSlots]Slot{
	{Number: 10, NameColumn: "OP10", DurationColumn: "TOP10", LocationColumn: "Utilaj/Locație"},
	{Number: 20, NameColumn: "OP20", DurationColumn: "TOP20", LocationColumn: "Utilaj/Locație2"},
	{Number: 30, NameColumn: "OP30", DurationColumn: "TOP30", LocationColumn: "Utilaj/Locație3"},
	{Number: 40, NameColumn: "OP40", DurationColumn: "TOP40", LocationColumn: "Utilaj/Locație4"},
	{Number: 50, NameColumn: "OP50", DurationColumn: "TOP50", LocationColumn: "Utilaj/Locație5"},
	{Number: 60, NameColumn: "OP60", DurationColumn: "TOP60", LocationColumn: "Utilaj/Locație6"},
	{Number: 70, NameColumn: "OP70", DurationColumn: "TOP70", LocationColumn: "Utilaj/Locație7"},
	{Number: 80, NameColumn: "OP80", DurationColumn: "TOP80", LocationColumn: "Utilaj/Locație8"},
	{Number: 90, NameColumn: "OP90", DurationColumn: "TOP90", LocationColumn: "Utilaj/Locație9"},
	{Number: 100, NameColumn: "OP100", DurationColumn: "TOP100", LocationColumn: "Utilaj/Locație10"},
}

// notANumber is the textual residue of an empty numeric cell coerced to text
// upstream; it counts as an empty slot.
const notANumber = "nan"

// Extract reads the ordered operation sequence from a raw routing row. The
// sequence terminates at the first slot whose name cell is empty,
// whitespace-only or the not-a-number token; later slots are never
// considered, even if populated. This stop-at-first-gap behavior is ledger
// policy, not a defect.
func Extract(row map[string]string) []models.Operation {
	var ops []models.Operation
	for _, slot := range Slots {
		name := strings.TrimSpace(row[slot.NameColumn])
		if name == "" || name == notANumber {
			break
		}
		ops = append(ops, models.Operation{
			SequenceNumber: slot.Number,
			Name:           name,
			Duration:       strings.TrimSpace(row[slot.DurationColumn]),
			Location:       strings.TrimSpace(row[slot.LocationColumn]),
		})
	}
	return ops
}
