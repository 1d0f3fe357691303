package plate

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGridCSV(t *testing.T) {
	input := strings.Join([]string{
		",1,2,3",
		"A,0.101,0.099,0.912",
		"B,0.845,,0.433",
	}, "\n")

	ds, err := ParseGridCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 6, ds.Len())

	od, ok := ds.OD("A1")
	require.True(t, ok)
	require.Equal(t, 0.101, od)

	od, ok = ds.OD("B3")
	require.True(t, ok)
	require.Equal(t, 0.433, od)

	od, ok = ds.OD("B2")
	require.True(t, ok, "empty cell becomes a missing reading")
	require.True(t, math.IsNaN(od))
}

func TestParseGridCSV_NoHeader(t *testing.T) {
	ds, err := ParseGridCSV(strings.NewReader("A,0.1,0.2\nB,0.3,0.4\n"))
	require.NoError(t, err)
	require.Equal(t, 4, ds.Len())
}

func TestParseGridCSV_LowercaseRowLabel(t *testing.T) {
	ds, err := ParseGridCSV(strings.NewReader("a,0.1\n"))
	require.NoError(t, err)

	_, ok := ds.OD("A1")
	require.True(t, ok, "row labels are case-insensitive")
}

func TestParseGridCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "header only", input: ",1,2,3\n"},
		{name: "bad row label mid-grid", input: "A,0.1\nXX,0.2\n"},
		{name: "non-numeric OD", input: "A,0.1,abc\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseGridCSV(strings.NewReader(tt.input))
			require.Error(t, err)
		})
	}
}
