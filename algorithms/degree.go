package algorithms

import "github.com/Dullaz/Raphtory/db"

// MaxDegree returns the largest vertex degree in the view; 0 on an
// empty view.
func MaxDegree(g db.View) int {
	max := 0
	for _, v := range g.Vertices() {
		if d := v.Degree(); d > max {
			max = d
		}
	}
	return max
}

// MinDegree returns the smallest vertex degree in the view; 0 on an
// empty view.
func MinDegree(g db.View) int {
	min, first := 0, true
	for _, v := range g.Vertices() {
		if d := v.Degree(); first || d < min {
			min, first = d, false
		}
	}
	return min
}

// AverageDegree returns the mean vertex degree in the view; 0 on an
// empty view.
func AverageDegree(g db.View) float64 {
	sum, n := 0, 0
	for _, v := range g.Vertices() {
		sum += v.Degree()
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
