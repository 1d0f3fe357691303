package assay_test

import (
	"fmt"
	"log"

	"github.com/AntoniaRiedl/biostats/assay"
	"github.com/AntoniaRiedl/biostats/plate"
)

// ExampleAnalyze demonstrates one full analysis run: two blank wells,
// three standard concentrations with duplicate wells each, and one
// unknown sample.
func ExampleAnalyze() {
	ds := plate.NewDataset()
	ds.SetOD("A1", 0.1)
	ds.SetOD("A2", 0.1)
	ds.SetOD("B1", 0.9)
	ds.SetOD("B2", 0.9)
	ds.SetOD("C1", 0.5)
	ds.SetOD("C2", 0.5)
	ds.SetOD("D1", 0.3)
	ds.SetOD("D2", 0.3)
	ds.SetOD("E1", 0.58)

	result, err := assay.Analyze(ds, assay.RoleAssignment{
		Blanks:    []plate.WellID{"A1", "A2"},
		Standards: []plate.WellID{"B1", "B2", "C1", "C2", "D1", "D2"},
		Samples: []assay.SampleGroup{
			{Name: "unknown-1", Wells: []plate.WellID{"E1"}},
		},
	}, []float64{2, 1, 0.5})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("background: %.2f\n", result.Background)
	fmt.Printf("model: %s (R²=%.2f)\n", result.Model().Type, result.Model().RSquared)
	for _, sr := range result.Samples {
		fmt.Printf("%s: %.2f\n", sr.Name, sr.Concentration)
	}

	// Output:
	// background: 0.10
	// model: linear (R²=1.00)
	// unknown-1: 1.20
}
