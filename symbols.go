package plot

import (
	"math"

	"github.com/gogpu/plot/recording"
)

// symbol is a marker in unit coordinates, y up, spanning [-1, 1].
type symbol struct {
	strokes [][]recording.Point
	fill    []recording.Point
}

func pts(xy ...float64) []recording.Point {
	out := make([]recording.Point, len(xy)/2)
	for i := range out {
		out[i] = recording.Point{X: xy[2*i], Y: xy[2*i+1]}
	}
	return out
}

// circle returns a closed polygon of radius r.
func circle(r float64) []recording.Point {
	const n = 24
	out := make([]recording.Point, n+1)
	for i := range n {
		a := 2 * math.Pi * float64(i) / n
		out[i] = recording.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	out[n] = out[0]
	return out
}

// star returns a closed five-pointed star.
func star() []recording.Point {
	out := make([]recording.Point, 11)
	for i := range 10 {
		r := 1.0
		if i%2 == 1 {
			r = 0.4
		}
		a := math.Pi/2 + float64(i)*math.Pi/5
		out[i] = recording.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
	}
	out[10] = out[0]
	return out
}

var (
	square   = pts(-1, -1, 1, -1, 1, 1, -1, 1, -1, -1)
	smallSq  = pts(-0.75, -0.75, 0.75, -0.75, 0.75, 0.75, -0.75, 0.75, -0.75, -0.75)
	triangle = pts(-1, -0.8, 1, -0.8, 0, 1, -1, -0.8)
	diamond  = pts(0, -1, 1, 0, 0, 1, -1, 0, 0, -1)
	plusH    = pts(-1, 0, 1, 0)
	plusV    = pts(0, -1, 0, 1)
	crossA   = pts(-0.75, -0.75, 0.75, 0.75)
	crossB   = pts(-0.75, 0.75, 0.75, -0.75)
)

// symbols is indexed by marker code.
var symbols = [...]symbol{
	0:  {strokes: [][]recording.Point{square}},
	1:  {fill: circle(0.2)},
	2:  {strokes: [][]recording.Point{plusH, plusV}},
	3:  {strokes: [][]recording.Point{plusH, plusV, crossA, crossB}},
	4:  {strokes: [][]recording.Point{circle(1)}},
	5:  {strokes: [][]recording.Point{crossA, crossB}},
	6:  {strokes: [][]recording.Point{smallSq}},
	7:  {strokes: [][]recording.Point{triangle}},
	8:  {strokes: [][]recording.Point{circle(1), plusH, plusV}},
	9:  {strokes: [][]recording.Point{circle(1)}, fill: circle(0.2)},
	10: {strokes: [][]recording.Point{square, plusH, plusV}},
	11: {strokes: [][]recording.Point{diamond}},
	12: {strokes: [][]recording.Point{star()}},
	13: {fill: square[:4]},
	14: {fill: circle(1)[:24]},
	15: {fill: triangle[:3]},
}

// NumSymbols is the number of marker codes accepted by Points.
const NumSymbols = len(symbols)

func symbolFor(code int) (symbol, bool) {
	if code < 0 || code >= len(symbols) {
		return symbol{}, false
	}
	return symbols[code], true
}
