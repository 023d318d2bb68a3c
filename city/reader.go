package city

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// fieldsPerRecord is the token count of one "id x y" record.
const fieldsPerRecord = 3

// Load opens path and reads exactly n records from it (see Read).
func Load(path string, n int) ([]City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("city: open %q: %w", path, err)
	}
	defer f.Close()

	cities, err := Read(f, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cities, nil
}

// Read consumes exactly n whitespace-separated "id x y" records from r and
// returns them indexed by id. Tokens after the n-th record are not read.
//
// Errors:
//   - ErrTooFewCities if n < 1.
//   - ErrShortInput if r ends before n complete records.
//   - ErrBadField for a non-numeric token or a NaN/Inf coordinate.
//   - ErrIDOutOfRange / ErrDuplicateID for ids that do not form 0..n-1.
//
// Complexity: O(n) time, O(n) space.
func Read(r io.Reader, n int) ([]City, error) {
	if n < 1 {
		return nil, ErrTooFewCities
	}

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var (
		cities = make([]City, n)
		seen   = make([]bool, n)
		fields [fieldsPerRecord]string
		rec    int
		k      int
	)
	for rec = 0; rec < n; rec++ {
		for k = 0; k < fieldsPerRecord; k++ {
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return nil, fmt.Errorf("city: record %d: %w", rec+1, err)
				}
				return nil, fmt.Errorf("%w: got %d of %d", ErrShortInput, rec, n)
			}
			fields[k] = sc.Text()
		}

		c, err := parseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", rec+1, err)
		}
		if c.ID < 0 || c.ID >= n {
			return nil, fmt.Errorf("record %d: %w: %d not in [0,%d)", rec+1, ErrIDOutOfRange, c.ID, n)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("record %d: %w: %d", rec+1, ErrDuplicateID, c.ID)
		}
		seen[c.ID] = true
		cities[c.ID] = c
	}

	return cities, nil
}

func parseRecord(f [fieldsPerRecord]string) (City, error) {
	id, err := strconv.Atoi(f[0])
	if err != nil {
		return City{}, fmt.Errorf("%w: id %q", ErrBadField, f[0])
	}
	x, err := parseCoord(f[1])
	if err != nil {
		return City{}, err
	}
	y, err := parseCoord(f[2])
	if err != nil {
		return City{}, err
	}

	return New(id, x, y), nil
}

func parseCoord(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: coordinate %q", ErrBadField, s)
	}

	return v, nil
}
