package domain

// SeatStatus is one cell of an availability snapshot.
type SeatStatus struct {
	Row      int
	Col      int
	Reserved bool
}

// SeatMatrix is the full availability snapshot of a hall for one date:
// one row per hall row, one cell per seat, in grid order.
type SeatMatrix [][]SeatStatus

// NewSeatMatrix derives the availability snapshot for a hall from the set
// of reservation rows matching the hall and date. A cell is reserved iff
// its coordinate appears in the reserved set. The derivation is read-only
// and deterministic: the same inputs always yield the same matrix.
func NewSeatMatrix(rows, cols int, reserved []Seat) SeatMatrix {
	taken := make(map[Seat]bool, len(reserved))
	for _, seat := range reserved {
		taken[seat] = true
	}

	matrix := make(SeatMatrix, rows)

	for row := 1; row <= rows; row++ {
		cells := make([]SeatStatus, cols)

		for col := 1; col <= cols; col++ {
			cells[col-1] = SeatStatus{
				Row:      row,
				Col:      col,
				Reserved: taken[Seat{Row: row, Col: col}],
			}
		}

		matrix[row-1] = cells
	}

	return matrix
}
