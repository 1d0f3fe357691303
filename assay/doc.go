// Package assay turns replicate OD readings from a multi-well plate into
// concentration estimates by building a standard curve and inverting it.
//
// Analyze is the single entry point and runs the whole pipeline in
// order: blank correction, replicate aggregation, curve fitting, model
// selection, sample prediction. One invocation is a pure function of its
// dataset, role assignment and concentration list — no state survives
// between runs and repeated runs on identical input are deterministic.
//
//	result, err := assay.Analyze(ds, assay.RoleAssignment{
//	    Blanks:    []plate.WellID{"A1", "A2"},
//	    Standards: []plate.WellID{"B1", "B2", "C1", "C2", "D1", "D2"},
//	    Samples: []assay.SampleGroup{
//	        {Name: "patient-07", Wells: []plate.WellID{"E1", "E2"}},
//	    },
//	}, []float64{2, 1, 0.5})
//
// Standard wells map to concentrations positionally: the ordered
// standard list is split into contiguous blocks of equal size, the first
// block belonging to the first concentration and so on. Plate geometry
// and well labels play no part in this mapping.
//
// Validation failures (missing blanks, bad concentration list, replicate
// mismatch, too few points) abort the run with no partial results.
// Per-sample failures only void that sample's prediction and are
// collected in Result.Warnings; a non-converging 4PL fit silently falls
// back to the linear model and is noted in Result.Notes.
package assay
