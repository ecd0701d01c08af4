package document

// Pos is a 0-based (line, column) position; Col counts runes.
type Pos struct {
	Line int
	Col  int
}

// Range is a half-open rune interval [Start, End).
type Range struct {
	Start int
	End   int
}

// Normalize returns r with Start <= End.
func (r Range) Normalize() Range {
	if r.Start > r.End {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

func (r Range) IsEmpty() bool { return r.Start == r.End }

// Contains reports whether offset i lies inside r.
func (r Range) Contains(i int) bool {
	n := r.Normalize()
	return i >= n.Start && i < n.End
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
