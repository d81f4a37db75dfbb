// Package planning is the overuse detection and monthly reporting engine.
// Every operation is a pure function of the Project/Equipment snapshots it
// is handed: no I/O, no retained references, no mutation of inputs.
package planning

import (
	"strings"

	"eventdesk/internal/domain"
)

// BuildInventoryMap flattens an equipment snapshot into a name -> available
// quantity lookup. Names are trimmed and case-sensitive; records with empty
// names are skipped. Duplicate names cannot exist past the equipment module's
// uniqueness constraint, but if a legacy snapshot carries them the later
// record wins deterministically.
func BuildInventoryMap(equipment []domain.Equipment) map[string]int {
	inv := make(map[string]int, len(equipment))
	for _, e := range equipment {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		inv[name] = e.Qty
	}
	return inv
}
