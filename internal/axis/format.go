package axis

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DefaultDigits is the label width above which labels switch to
// scientific notation.
const DefaultDigits = 5

// Format describes how the labels of one axis are written.
type Format struct {
	// Scientific labels are divided by 10^Exp.
	Scientific bool
	Exp        int

	// Prec is the number of digits after the decimal point.
	Prec int
}

// Precision chooses the label format for ticks of interval tick on
// [vmin, vmax]. Labels needing more than digmax digits use scientific
// notation unless fixed is set. digmax 0 means DefaultDigits.
func Precision(vmin, vmax, tick float64, digmax int, fixed bool) Format {
	if digmax <= 0 {
		digmax = DefaultDigits
	}
	chosen := max(math.Abs(vmin), math.Abs(vmax))
	msd := 0
	if chosen > 0 {
		msd = floorLog10(chosen)
	}
	np := 0
	if tick != 0 {
		np = floorLog10(math.Abs(tick))
	}

	digits := 1 - np
	if msd >= 0 {
		digits = msd + 1 + max(0, -np)
	}

	if digits <= digmax || fixed {
		return Format{Prec: max(0, -np)}
	}
	return Format{Scientific: true, Exp: msd, Prec: max(0, msd-np)}
}

// Label formats the tick value v.
func Label(v float64, f Format) string {
	if f.Scientific {
		v /= math.Pow(10, float64(f.Exp))
	}
	s := strconv.FormatFloat(v, 'f', f.Prec, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s, "-0.") == "" {
		s = s[1:]
	}
	return s
}

// Multiplier returns the "(x10^n)" annotation written at the end of a
// scientific axis, in text escape form, or "" for fixed labels.
func (f Format) Multiplier() string {
	if !f.Scientific {
		return ""
	}
	return fmt.Sprintf("(x10#u%d#d)", f.Exp)
}

// DecadeLabel labels the decade d of a logarithmic axis. With fixed set
// the value itself is written instead of a power of ten.
func DecadeLabel(d float64, fixed bool) string {
	n := int(math.Round(d))
	if fixed {
		return strconv.FormatFloat(math.Pow(10, float64(n)), 'f', max(0, -n), 64)
	}
	return fmt.Sprintf("10#u%d", n)
}
