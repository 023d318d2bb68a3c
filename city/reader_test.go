package city_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/salesman/city"
)

func TestRead_UnitSquare(t *testing.T) {
	in := "0 0 0\n1 0 1\n2 1 1\n3 1 0\n"
	cities, err := city.Read(strings.NewReader(in), 4)
	require.NoError(t, err)
	require.Len(t, cities, 4)

	for i, c := range cities {
		assert.Equal(t, i, c.ID)
	}
	assert.Equal(t, 1.0, cities[2].Pos.X)
	assert.Equal(t, 1.0, cities[2].Pos.Y)
	assert.InDelta(t, 1.0, cities[0].Distance(cities[1]), 1e-12)
	assert.InDelta(t, 1.4142135623730951, cities[0].Distance(cities[2]), 1e-12)
}

func TestRead_IndexesByID(t *testing.T) {
	// Records out of order, mixed separators.
	in := "2 5.5 -1\t0 0 0\n\n1   3e1 2.25"
	cities, err := city.Read(strings.NewReader(in), 3)
	require.NoError(t, err)

	assert.Equal(t, city.New(0, 0, 0), cities[0])
	assert.Equal(t, city.New(1, 30, 2.25), cities[1])
	assert.Equal(t, city.New(2, 5.5, -1), cities[2])
}

func TestRead_ConsumesExactlyN(t *testing.T) {
	// The trailing garbage belongs to records past n and must not be parsed.
	in := "0 1 1\n1 2 2\nnot a record"
	cities, err := city.Read(strings.NewReader(in), 2)
	require.NoError(t, err)
	assert.Len(t, cities, 2)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want error
	}{
		{"zero count", "0 0 0", 0, city.ErrTooFewCities},
		{"short file", "0 0 0\n1 1 1\n", 3, city.ErrShortInput},
		{"truncated record", "0 0 0\n1 1", 2, city.ErrShortInput},
		{"empty input", "", 1, city.ErrShortInput},
		{"non numeric x", "0 abc 0", 1, city.ErrBadField},
		{"non numeric id", "zero 0 0", 1, city.ErrBadField},
		{"fractional id", "0.5 0 0", 1, city.ErrBadField},
		{"nan coordinate", "0 NaN 0", 1, city.ErrBadField},
		{"inf coordinate", "0 0 +Inf", 1, city.ErrBadField},
		{"id too large", "0 0 0\n2 1 1", 2, city.ErrIDOutOfRange},
		{"negative id", "-1 0 0", 1, city.ErrIDOutOfRange},
		{"duplicate id", "0 0 0\n0 1 1", 2, city.ErrDuplicateID},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := city.Read(strings.NewReader(tc.in), tc.n)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "4.tsp")
	require.NoError(t, os.WriteFile(path, []byte("0 0 0\n1 0 1\n2 1 1\n3 1 0\n"), 0o600))

	cities, err := city.Load(path, 4)
	require.NoError(t, err)
	assert.Len(t, cities, 4)

	_, err = city.Load(path, 5)
	require.ErrorIs(t, err, city.ErrShortInput)
	assert.Contains(t, err.Error(), path)

	_, err = city.Load(filepath.Join(dir, "missing.tsp"), 4)
	require.ErrorIs(t, err, os.ErrNotExist)
}
