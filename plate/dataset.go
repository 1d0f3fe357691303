package plate

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/AntoniaRiedl/biostats/errs"
)

// Dataset holds the raw OD reading and role for every well on a plate.
//
// A Dataset is the input to exactly one analysis run. It is not safe for
// concurrent mutation, and analysis never mutates it: blank correction
// produces a fresh Dataset via Corrected.
type Dataset struct {
	wells map[WellID]Well
}

// NewDataset creates an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{wells: make(map[WellID]Well)}
}

// SetOD records the raw OD reading for a well. Pass NaN for a well that
// exists on the plate but produced no usable reading. A previously
// assigned role is preserved.
func (d *Dataset) SetOD(id WellID, od float64) {
	w := d.wells[id]
	w.ID = id
	w.OD = od
	d.wells[id] = w
}

// SetMissing records a well whose reading is missing.
func (d *Dataset) SetMissing(id WellID) {
	d.SetOD(id, math.NaN())
}

// Assign sets the role of a well. Each well carries exactly one role per
// run; assigning a second non-Unassigned role is an error. Returns
// errs.ErrWellNotFound if the well is not in the dataset.
func (d *Dataset) Assign(id WellID, role Role) error {
	w, ok := d.wells[id]
	if !ok {
		return fmt.Errorf("%w: %s", errs.ErrWellNotFound, id)
	}
	if w.Role != RoleUnassigned && w.Role != role {
		return fmt.Errorf("well %s already assigned role %s, cannot reassign to %s", id, w.Role, role)
	}
	w.Role = role
	d.wells[id] = w

	return nil
}

// OD returns the raw OD of a well. The second return value reports
// whether the well exists in the dataset; a NaN OD with ok=true means
// the well exists but its reading is missing.
func (d *Dataset) OD(id WellID) (od float64, ok bool) {
	w, ok := d.wells[id]
	if !ok {
		return math.NaN(), false
	}

	return w.OD, true
}

// Well returns the typed view of a single well.
func (d *Dataset) Well(id WellID) (Well, bool) {
	w, ok := d.wells[id]
	return w, ok
}

// Len returns the number of wells in the dataset.
func (d *Dataset) Len() int {
	return len(d.wells)
}

// WellIDs returns all well IDs in lexicographic order.
func (d *Dataset) WellIDs() []WellID {
	ids := make([]WellID, 0, len(d.wells))
	for id := range d.wells {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Background computes the assay background as the arithmetic mean of the
// blank wells' raw OD values, ignoring missing readings. Returns
// errs.ErrMissingBlank if the blank set is empty or all readings are
// missing, and errs.ErrWellNotFound if a blank ID is absent from the
// dataset.
func (d *Dataset) Background(blanks []WellID) (float64, error) {
	usable := make([]float64, 0, len(blanks))
	for _, id := range blanks {
		od, ok := d.OD(id)
		if !ok {
			return 0, fmt.Errorf("%w: blank well %s", errs.ErrWellNotFound, id)
		}
		if math.IsNaN(od) {
			continue
		}
		usable = append(usable, od)
	}
	if len(usable) == 0 {
		return 0, fmt.Errorf("%w: %d blank wells selected, none with a reading", errs.ErrMissingBlank, len(blanks))
	}

	return stat.Mean(usable, nil), nil
}

// Corrected returns a copy of the dataset with the background subtracted
// from every OD reading. Missing readings stay missing. Roles carry over
// unchanged. Correction is applied exactly once per run, before any
// aggregation or fitting.
func (d *Dataset) Corrected(background float64) *Dataset {
	out := &Dataset{wells: make(map[WellID]Well, len(d.wells))}
	for id, w := range d.wells {
		w.OD -= background // NaN - x stays NaN
		out.wells[id] = w
	}

	return out
}
