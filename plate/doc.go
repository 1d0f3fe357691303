// Package plate models a multi-well assay plate: well identifiers, raw
// optical-density (OD) readings, well roles, and background (blank)
// correction.
//
// A Dataset maps well IDs to raw OD values. A missing reading is stored
// as NaN so that a well can exist on the plate without carrying a usable
// measurement. Datasets are value-like inputs to one analysis run: build
// one, hand it to assay.Analyze, discard it.
//
// # Basic Usage
//
//	ds := plate.NewDataset()
//	ds.SetOD("A1", 0.101)
//	ds.SetOD("A2", 0.099)
//	ds.SetOD("B1", 0.912)
//
//	bg, err := ds.Background([]plate.WellID{"A1", "A2"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	corrected := ds.Corrected(bg)
//
// Plate-reader CSV exports laid out as a row/column grid can be loaded
// with ParseGridCSV.
package plate
