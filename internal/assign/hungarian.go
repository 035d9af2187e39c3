// Package assign solves the maximum-weight assignment problem.
//
// Given an r x c weight matrix, [Maximize] pairs rows with columns one-to-one
// so that the total weight of the pairs is as large as possible. Rectangular
// matrices are padded to square with zero weights, so some rows or columns
// stay unmatched. The solver is the O(n^3) Hungarian method with potentials.
package assign

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Assignment is the result of Maximize.
type Assignment struct {
	// RowToCol[i] is the column matched to row i, or -1.
	RowToCol []int
	// Total is the summed weight of the matched pairs.
	Total float64
}

// Pairs returns the matched (row, col) pairs in row order.
func (a Assignment) Pairs() [][2]int {
	pairs := make([][2]int, 0, len(a.RowToCol))
	for i, j := range a.RowToCol {
		if j >= 0 {
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}

// Maximize returns the one-to-one matching of rows to columns with the
// largest total weight. NaN and infinite weights are treated as 0.
func Maximize(w mat.Matrix) Assignment {
	r, c := w.Dims()
	rowToCol := make([]int, r)
	for i := range rowToCol {
		rowToCol[i] = -1
	}
	if r == 0 || c == 0 {
		return Assignment{RowToCol: rowToCol}
	}

	n := max(r, c)
	cost := func(i, j int) float64 {
		if i >= r || j >= c {
			return 0
		}
		return -weight(w, i, j)
	}

	// Potentials u (rows) and v (columns), p[j] is the row matched to column
	// j, all 1-based with index 0 as the sentinel.
	inf := math.Inf(1)
	u := make([]float64, n+1)
	v := make([]float64, n+1)
	p := make([]int, n+1)
	way := make([]int, n+1)
	minv := make([]float64, n+1)
	used := make([]bool, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0
		for j := range minv {
			minv[j] = inf
			used[j] = false
		}

		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Flip the augmenting path.
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	total := 0.0
	for j := 1; j <= n; j++ {
		i := p[j] - 1
		if i < r && j-1 < c {
			rowToCol[i] = j - 1
			total += weight(w, i, j-1)
		}
	}
	return Assignment{RowToCol: rowToCol, Total: total}
}

func weight(w mat.Matrix, i, j int) float64 {
	x := w.At(i, j)
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
