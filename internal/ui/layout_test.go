package ui

import "testing"

func TestResolveSizes(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		constraints []Constraint
		expected    []int
	}{
		{"lengths only", 12, []Constraint{Length(9), Length(3)}, []int{9, 3}},
		{"min takes remainder", 30, []Constraint{Length(9), Min(10)}, []int{9, 21}},
		{"min keeps floor when short", 12, []Constraint{Length(9), Min(10)}, []int{9, 10}},
		{"two mins share evenly", 100, []Constraint{Length(35), Min(10), Min(10)}, []int{35, 32, 33}},
		{"status bar split", 120, []Constraint{Length(35), Min(10), Length(30), Length(32)}, []int{35, 23, 30, 32}},
		{"zero total", 0, []Constraint{Min(10)}, []int{10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sizes := resolveSizes(tt.total, tt.constraints)
			if len(sizes) != len(tt.expected) {
				t.Fatalf("Expected %d sizes, got %d", len(tt.expected), len(sizes))
			}
			for i := range sizes {
				if sizes[i] != tt.expected[i] {
					t.Errorf("Size %d: expected %d, got %d", i, tt.expected[i], sizes[i])
				}
			}
		})
	}
}

func TestSplitVerticalPartition(t *testing.T) {
	// Every toggle combination the overview composer can produce. The
	// regions must tile the area: contiguous, in order, summing to the full
	// height whenever it fits.
	combos := []struct {
		name        string
		constraints []Constraint
	}{
		{"info bar and filter", []Constraint{Length(9), Length(3), Min(10)}},
		{"info bar only", []Constraint{Length(9), Min(10)}},
		{"filter only", []Constraint{Length(3), Min(10)}},
		{"resources only", []Constraint{Min(10)}},
	}

	area := Rect{X: 0, Y: 0, Width: 80, Height: 30}
	for _, tt := range combos {
		t.Run(tt.name, func(t *testing.T) {
			chunks := splitVertical(area, tt.constraints...)

			y := area.Y
			for i, c := range chunks {
				if c.Y != y {
					t.Errorf("Chunk %d: expected Y %d, got %d", i, y, c.Y)
				}
				if c.X != area.X || c.Width != area.Width {
					t.Errorf("Chunk %d: expected full width at X %d, got X %d width %d", i, area.X, c.X, c.Width)
				}
				y += c.Height
			}
			if y != area.Y+area.Height {
				t.Errorf("Partition covers %d rows, area has %d", y-area.Y, area.Height)
			}
		})
	}
}

func TestSplitHorizontalPartition(t *testing.T) {
	area := Rect{X: 5, Y: 2, Width: 120, Height: 9}
	chunks := splitHorizontal(area, Length(35), Min(10), Length(30), Length(32))

	if len(chunks) != 4 {
		t.Fatalf("Expected 4 chunks, got %d", len(chunks))
	}

	x := area.X
	for i, c := range chunks {
		if c.X != x {
			t.Errorf("Chunk %d: expected X %d, got %d", i, x, c.X)
		}
		if c.Y != area.Y || c.Height != area.Height {
			t.Errorf("Chunk %d: expected full height at Y %d, got Y %d height %d", i, area.Y, c.Y, c.Height)
		}
		x += c.Width
	}
	if x != area.X+area.Width {
		t.Errorf("Partition covers %d columns, area has %d", x-area.X, area.Width)
	}

	if chunks[0].Width != 35 || chunks[2].Width != 30 || chunks[3].Width != 32 {
		t.Errorf("Fixed blocks resized: got %d/%d/%d", chunks[0].Width, chunks[2].Width, chunks[3].Width)
	}
	if chunks[1].Width != 120-35-30-32 {
		t.Errorf("Context block: expected width %d, got %d", 120-35-30-32, chunks[1].Width)
	}
}

func TestSplitVerticalTooSmall(t *testing.T) {
	// A terminal shorter than the fixed rows still yields non-overlapping
	// regions with the Min floor intact; clipping is the renderer's problem.
	area := Rect{X: 0, Y: 0, Width: 80, Height: 8}
	chunks := splitVertical(area, Length(9), Length(3), Min(10))

	if chunks[0].Height != 9 || chunks[1].Height != 3 || chunks[2].Height != 10 {
		t.Errorf("Expected heights 9/3/10, got %d/%d/%d",
			chunks[0].Height, chunks[1].Height, chunks[2].Height)
	}
	if chunks[1].Y != 9 || chunks[2].Y != 12 {
		t.Errorf("Expected Y offsets 9/12, got %d/%d", chunks[1].Y, chunks[2].Y)
	}
}
