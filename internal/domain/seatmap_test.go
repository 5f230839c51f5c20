package domain

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewSeatMatrix(t *testing.T) {
	reserved := []Seat{
		{Row: 1, Col: 2},
		{Row: 2, Col: 1},
	}

	matrix := NewSeatMatrix(2, 2, reserved)

	want := SeatMatrix{
		{
			{Row: 1, Col: 1, Reserved: false},
			{Row: 1, Col: 2, Reserved: true},
		},
		{
			{Row: 2, Col: 1, Reserved: true},
			{Row: 2, Col: 2, Reserved: false},
		},
	}

	if diff := cmp.Diff(want, matrix); diff != "" {
		t.Errorf("seat matrix mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSeatMatrixEmptyHall(t *testing.T) {
	matrix := NewSeatMatrix(3, 4, nil)

	if len(matrix) != 3 {
		t.Fatalf("got %d rows, want 3", len(matrix))
	}

	for _, row := range matrix {
		if len(row) != 4 {
			t.Fatalf("got %d columns, want 4", len(row))
		}

		for _, cell := range row {
			if cell.Reserved {
				t.Errorf("seat (%d,%d) reserved in empty hall", cell.Row, cell.Col)
			}
		}
	}
}

func TestNewSeatMatrixIsDeterministic(t *testing.T) {
	reserved := []Seat{
		{Row: 3, Col: 3},
		{Row: 1, Col: 1},
	}

	first := NewSeatMatrix(5, 5, reserved)
	second := NewSeatMatrix(5, 5, reserved)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated derivation differs (-first +second):\n%s", diff)
	}
}
