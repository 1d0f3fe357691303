package plate

import "fmt"

// WellID identifies a well by its plate coordinate, e.g. "A1" or "H12".
type WellID string

// FormatWellID builds a WellID from zero-based row and column indexes.
// Row 0 is "A", column 0 is "1", so FormatWellID(1, 2) == "B3".
func FormatWellID(row, col int) WellID {
	return WellID(fmt.Sprintf("%c%d", 'A'+rune(row), col+1))
}

// Role describes how a well participates in an analysis run.
type Role uint8

const (
	// RoleUnassigned marks a well that plays no part in the analysis.
	RoleUnassigned Role = iota
	// RoleBlank marks a background well containing no analyte.
	RoleBlank
	// RoleStandard marks a well with a known analyte concentration.
	RoleStandard
	// RoleSample marks a well whose concentration is to be estimated.
	RoleSample
)

func (r Role) String() string {
	switch r {
	case RoleBlank:
		return "Blank"
	case RoleStandard:
		return "Standard"
	case RoleSample:
		return "Sample"
	case RoleUnassigned:
		return "Unassigned"
	default:
		return "Unknown"
	}
}

// Well is the typed view of a single well: its identifier, raw OD
// (NaN when the reading is missing) and assigned role.
type Well struct {
	ID   WellID
	OD   float64
	Role Role
}
