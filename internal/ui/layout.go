package ui

// Rect is a rectangular region of the terminal in cell coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

type constraintKind int

const (
	constraintLength constraintKind = iota
	constraintMin
)

// Constraint describes how much of an axis a region claims when a parent
// region is partitioned.
type Constraint struct {
	kind constraintKind
	size int
}

// Length claims exactly n cells.
func Length(n int) Constraint {
	return Constraint{kind: constraintLength, size: n}
}

// Min claims all remaining space, never less than n cells.
func Min(n int) Constraint {
	return Constraint{kind: constraintMin, size: n}
}

// resolveSizes maps constraints onto a total extent. Length constraints are
// honored first; leftover space is shared by the Min constraints, each of
// which keeps its floor even when the parent is too small to fit everything.
func resolveSizes(total int, constraints []Constraint) []int {
	sizes := make([]int, len(constraints))

	fixed := 0
	minFloor := 0
	minCount := 0
	for _, c := range constraints {
		switch c.kind {
		case constraintLength:
			fixed += c.size
		case constraintMin:
			minFloor += c.size
			minCount++
		}
	}

	remaining := total - fixed - minFloor
	if remaining < 0 {
		remaining = 0
	}

	extraEach := 0
	extraLast := 0
	if minCount > 0 {
		extraEach = remaining / minCount
		extraLast = remaining % minCount
	}

	seen := 0
	for i, c := range constraints {
		switch c.kind {
		case constraintLength:
			sizes[i] = c.size
		case constraintMin:
			seen++
			sizes[i] = c.size + extraEach
			if seen == minCount {
				sizes[i] += extraLast
			}
		}
	}

	return sizes
}

// splitVertical partitions area top to bottom, one sub-region per constraint,
// in the given order. Regions never overlap.
func splitVertical(area Rect, constraints ...Constraint) []Rect {
	sizes := resolveSizes(area.Height, constraints)

	chunks := make([]Rect, len(sizes))
	y := area.Y
	for i, h := range sizes {
		chunks[i] = Rect{X: area.X, Y: y, Width: area.Width, Height: h}
		y += h
	}
	return chunks
}

// splitHorizontal partitions area left to right.
func splitHorizontal(area Rect, constraints ...Constraint) []Rect {
	sizes := resolveSizes(area.Width, constraints)

	chunks := make([]Rect, len(sizes))
	x := area.X
	for i, w := range sizes {
		chunks[i] = Rect{X: x, Y: area.Y, Width: w, Height: area.Height}
		x += w
	}
	return chunks
}
