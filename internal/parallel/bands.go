package parallel

import "fmt"

// BandError records the failure of one band of rows.
type BandError struct {
	Y0, Y1 int
	Err    error
}

func (e *BandError) Error() string {
	return fmt.Sprintf("rows [%d,%d): %v", e.Y0, e.Y1, e.Err)
}

func (e *BandError) Unwrap() error { return e.Err }

// Split divides rows [0, height) into at most n contiguous bands of
// near-equal size. Each band is returned as [y0, y1).
func Split(height, n int) [][2]int {
	if height <= 0 {
		return nil
	}
	n = min(max(n, 1), height)
	bands := make([][2]int, n)
	for i := range n {
		bands[i] = [2]int{i * height / n, (i + 1) * height / n}
	}
	return bands
}
