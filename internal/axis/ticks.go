// Package axis computes tick positions and label formats for plot axes.
package axis

import (
	"errors"
	"math"
)

// ErrTickDensity is returned when a tick interval would produce an
// unreasonable number of ticks.
var ErrTickDensity = errors.New("axis: tick interval too small for range")

// maxTicks bounds the number of major ticks on one axis.
const maxTicks = 1000

// Breakpoints on the fractional part of log10(range) that pick 2, 1, 5, 2.
var (
	log6  = math.Log10(6)
	log3  = math.Log10(3)
	log1p = math.Log10(1.5)
)

// Interval picks a major tick interval and minor subdivision count for the
// range [vmin, vmax]. A positive tick or nsub is kept as given.
func Interval(vmin, vmax, tick float64, nsub int) (float64, int, error) {
	span := math.Abs(vmax - vmin)
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return 0, 0, errors.New("axis: empty range")
	}

	np := float64(floorLog10(span))
	t1 := max(0, math.Log10(span)-np)

	var (
		t2 float64
		ns int
	)
	switch {
	case t1 > log6:
		t2, ns = 2, 4
	case t1 > log3:
		t2, ns = 1, 5
	case t1 > log1p:
		t2, ns = 5, 5
		np--
	default:
		t2, ns = 2, 4
		np--
	}
	reasonable := t2 * math.Pow(10, np)

	if tick == 0 {
		tick = reasonable
	} else {
		tick = math.Abs(tick)
		if span/tick > maxTicks {
			return 0, 0, ErrTickDensity
		}
	}
	if nsub <= 0 {
		nsub = ns
	}
	return tick, nsub, nil
}

// TickSet holds the tick positions of one axis.
type TickSet struct {
	Step  float64
	NSub  int
	Major []float64
	Minor []float64
}

// Ticks places major ticks at integer multiples of the interval and nsub-1
// minor ticks between them, all inside [vmin, vmax] in either order.
func Ticks(vmin, vmax, tick float64, nsub int) (TickSet, error) {
	step, ns, err := Interval(vmin, vmax, tick, nsub)
	if err != nil {
		return TickSet{}, err
	}
	lo, hi := min(vmin, vmax), max(vmin, vmax)
	eps := 1e-6 * step
	inside := func(v float64) bool { return v >= lo-eps && v <= hi+eps }

	ts := TickSet{Step: step, NSub: ns}
	for k := math.Floor(lo / step); k*step <= hi+eps; k++ {
		base := k * step
		if inside(base) {
			ts.Major = append(ts.Major, base)
		}
		for j := 1; j < ns; j++ {
			if v := base + float64(j)*step/float64(ns); inside(v) {
				ts.Minor = append(ts.Minor, v)
			}
		}
	}
	return ts, nil
}

// LogTicks places major ticks on the decades of a logarithmic axis whose
// range is given in log10 units, and minor ticks at 2..9 times each decade.
func LogTicks(lmin, lmax float64) (TickSet, error) {
	lo, hi := min(lmin, lmax), max(lmin, lmax)
	if hi == lo || math.IsNaN(hi-lo) || math.IsInf(hi-lo, 0) {
		return TickSet{}, errors.New("axis: empty range")
	}
	if hi-lo > maxTicks {
		return TickSet{}, ErrTickDensity
	}
	const eps = 1e-9
	ts := TickSet{Step: 1, NSub: 9}
	for d := math.Floor(lo); d <= hi+eps; d++ {
		if d >= lo-eps {
			ts.Major = append(ts.Major, d)
		}
		for k := 2; k <= 9; k++ {
			if v := d + math.Log10(float64(k)); v >= lo-eps && v <= hi+eps {
				ts.Minor = append(ts.Minor, v)
			}
		}
	}
	return ts, nil
}

// floorLog10 returns floor(log10(v)) for v > 0, exact at powers of ten.
func floorLog10(v float64) int {
	n := math.Floor(math.Log10(v))
	switch {
	case math.Pow(10, n+1) <= v:
		n++
	case math.Pow(10, n) > v:
		n--
	}
	return int(n)
}
