package recording

import "math"

// Dash defines a dash pattern for stroking, in millimetres.
// A dash pattern consists of alternating dash and gap lengths.
// A nil *Dash means a solid line.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// If the array has an odd number of elements, it is logically duplicated
	// to create an even-length pattern (e.g., [5] becomes [5, 5]).
	Array []float64

	// Offset is the starting offset into the pattern.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
//
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	if len(lengths) == 0 {
		return nil
	}

	normalized := make([]float64, len(lengths))
	var total float64
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
		total += normalized[i]
	}
	if total == 0 {
		return nil
	}

	return &Dash{Array: normalized}
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the duplicated pattern.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}

	var total float64
	for _, l := range d.Array {
		total += l
	}
	if len(d.Array)%2 != 0 {
		total *= 2
	}
	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
func (d *Dash) IsDashed() bool {
	return d.PatternLength() > 0
}

// Equal reports whether two patterns describe the same dashes.
func (d *Dash) Equal(o *Dash) bool {
	if !d.IsDashed() || !o.IsDashed() {
		return d.IsDashed() == o.IsDashed()
	}
	if d.Offset != o.Offset || len(d.Array) != len(o.Array) {
		return false
	}
	for i := range d.Array {
		if d.Array[i] != o.Array[i] {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}

	arrayCopy := make([]float64, len(d.Array))
	copy(arrayCopy, d.Array)
	return &Dash{Array: arrayCopy, Offset: d.Offset}
}

// Scale returns a new Dash with all lengths multiplied by the given factor.
// Backends use it to convert millimetres to device units.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || factor <= 0 {
		return d
	}

	scaled := make([]float64, len(d.Array))
	for i, l := range d.Array {
		scaled[i] = l * factor
	}
	return &Dash{Array: scaled, Offset: d.Offset * factor}
}

// Segments splits a polyline into the "on" pieces of the pattern.
// The pattern phase carries across vertices, so a dashed polyline looks the
// same as a dashed path with the same points. A solid pattern returns the
// polyline unchanged.
func (d *Dash) Segments(pts []Point) [][]Point {
	if len(pts) < 2 {
		return nil
	}
	if !d.IsDashed() {
		return [][]Point{pts}
	}

	pattern := d.effectiveArray()
	patternLen := d.PatternLength()

	// Locate the starting position inside the pattern.
	idx := 0
	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	for offset >= pattern[idx] {
		offset -= pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	remaining := pattern[idx] - offset
	on := idx%2 == 0

	var out [][]Point
	var cur []Point
	if on {
		cur = []Point{pts[0]}
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := b.Sub(a).Length()
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			p := a.Add(b.Sub(a).Mul(pos / segLen))
			if on {
				cur = append(cur, p)
				out = append(out, cur)
				cur = nil
			} else {
				cur = []Point{p}
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			remaining = pattern[idx]
		}
		remaining -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []float64 {
	if len(d.Array)%2 == 0 {
		return d.Array
	}

	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}
