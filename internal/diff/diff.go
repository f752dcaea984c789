// Package diff computes field-level changes between two snapshots of a
// document's child row collection. It is pure: no side effects, identical
// inputs always produce identical output.
package diff

import "warebell/internal/domain"

// Change records one watched-field transition on a child row.
type Change struct {
	RowName  string
	ItemCode string
	Old      float64
	New      float64
}

// Locations compares the picked quantity of each row in after against the
// row with the same name in before. Rows that exist only in after were added
// during the same edit and have no prior value to compare, so they never
// produce a change. An unset quantity compares as zero. Changes come back in
// after's row order; row names are unique within a document, so no
// deduplication is needed.
func Locations(before, after []domain.PickListLocation) []Change {
	prev := make(map[string]domain.PickListLocation, len(before))
	for _, row := range before {
		prev[row.RowName] = row
	}

	var changes []Change
	for _, row := range after {
		prevRow, ok := prev[row.RowName]
		if !ok {
			continue
		}
		if row.PickedQty != prevRow.PickedQty {
			changes = append(changes, Change{
				RowName:  row.RowName,
				ItemCode: row.ItemCode,
				Old:      prevRow.PickedQty,
				New:      row.PickedQty,
			})
		}
	}
	return changes
}
