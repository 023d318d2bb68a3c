package city

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Write emits cities as "id x y" lines in the format accepted by Read.
// Coordinates use the shortest representation that parses back to the same
// float64.
func Write(w io.Writer, cities []City) error {
	bw := bufio.NewWriter(w)
	for _, c := range cities {
		_, err := fmt.Fprintf(bw, "%d %s %s\n", c.ID,
			strconv.FormatFloat(c.Pos.X, 'g', -1, 64),
			strconv.FormatFloat(c.Pos.Y, 'g', -1, 64))
		if err != nil {
			return fmt.Errorf("city: write record %d: %w", c.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("city: flush: %w", err)
	}

	return nil
}
