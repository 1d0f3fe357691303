// Package biostats estimates analyte concentrations from multi-well
// plate assays by fitting a calibration (standard) curve to wells of
// known concentration and inverting it for the unknown samples.
//
// The pipeline runs strictly left to right: blank correction →
// replicate aggregation → curve fitting (linear and four-parameter
// logistic) → model selection by R² → concentration prediction. Each
// invocation is a pure function of its inputs; nothing is shared
// between runs.
//
// # Basic Usage
//
//	ds := plate.NewDataset()
//	ds.SetOD("A1", 0.1)
//	ds.SetOD("A2", 0.1)
//	// ... standard and sample wells ...
//
//	result, err := biostats.Analyze(ds, assay.RoleAssignment{
//	    Blanks:    []plate.WellID{"A1", "A2"},
//	    Standards: []plate.WellID{"B1", "B2", "C1", "C2", "D1", "D2"},
//	    Samples: []assay.SampleGroup{
//	        {Name: "serum-1", Wells: []plate.WellID{"E1", "E2"}},
//	    },
//	}, []float64{2, 1, 0.5})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(result.Model())               // selected curve
//	fmt.Println(result.Samples[0].Concentration)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the assay
// package. For the individual pipeline stages use the plate, curve and
// assay packages directly; the errs package holds the shared error
// taxonomy.
package biostats

import (
	"io"

	"github.com/AntoniaRiedl/biostats/assay"
	"github.com/AntoniaRiedl/biostats/plate"
)

// Analyze runs one full analysis on the dataset. See assay.Analyze for
// the pipeline semantics and error contract.
func Analyze(ds *plate.Dataset, roles assay.RoleAssignment, concentrations []float64, opts ...assay.Option) (*assay.Result, error) {
	return assay.Analyze(ds, roles, concentrations, opts...)
}

// ParseGridCSV loads a plate-reader CSV grid export into a dataset
// ready for Analyze. See plate.ParseGridCSV for the accepted layout.
func ParseGridCSV(r io.Reader) (*plate.Dataset, error) {
	return plate.ParseGridCSV(r)
}
