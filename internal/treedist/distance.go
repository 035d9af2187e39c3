package treedist

// RenameFunc returns the cost of relabeling a node with payload a into one
// with payload b.
type RenameFunc[T any] func(a, b T) float64

// Distance returns the minimum total cost of node insertions, deletions and
// renames turning a into b. Insertions and deletions cost 1 each.
func Distance[T any](a, b *Tree[T], rename RenameFunc[T]) float64 {
	n1, n2 := a.Len(), b.Len()
	if n1 == 0 || n2 == 0 {
		return float64(n1 + n2)
	}

	pa, pb := a.postorder(), b.postorder()
	d := &dp[T]{
		a: a, b: b, pa: pa, pb: pb,
		rename: rename,
		n2:     n2,
		td:     make([]float64, n1*n2),
	}
	for _, i := range pa.keyroots {
		for _, j := range pb.keyroots {
			d.forest(i, j)
		}
	}
	return d.tree(n1-1, n2-1)
}

// dp holds the state of one Distance call. td is the flat tree-distance memo:
// td[i*n2+j] is the distance between the subtree at post-order position i of
// a and the subtree at post-order position j of b.
type dp[T any] struct {
	a, b   *Tree[T]
	pa, pb postorder
	rename RenameFunc[T]
	n2     int
	td     []float64
	fd     []float64 // forest-distance scratch, reused across keyroot pairs
}

func (d *dp[T]) tree(i, j int) float64 {
	return d.td[i*d.n2+j]
}

// forest fills the tree distances for every pair of subtrees whose roots lie
// on the leftmost paths of keyroots i and j.
func (d *dp[T]) forest(i, j int) {
	li, lj := d.pa.leftmost[i], d.pb.leftmost[j]
	rows, cols := i-li+2, j-lj+2

	if need := rows * cols; cap(d.fd) < need {
		d.fd = make([]float64, need)
	}
	fd := d.fd[:rows*cols]
	at := func(x, y int) *float64 { return &fd[x*cols+y] }

	*at(0, 0) = 0
	for x := 1; x < rows; x++ {
		*at(x, 0) = *at(x-1, 0) + 1
	}
	for y := 1; y < cols; y++ {
		*at(0, y) = *at(0, y-1) + 1
	}

	for x := 1; x < rows; x++ {
		di := li + x - 1
		for y := 1; y < cols; y++ {
			dj := lj + y - 1
			del := *at(x-1, y) + 1
			ins := *at(x, y-1) + 1

			if d.pa.leftmost[di] == li && d.pb.leftmost[dj] == lj {
				// Both prefixes are whole trees.
				cost := d.rename(d.a.Payload(d.pa.order[di]), d.b.Payload(d.pb.order[dj]))
				v := min(del, ins, *at(x-1, y-1)+cost)
				*at(x, y) = v
				d.td[di*d.n2+dj] = v
				continue
			}

			p := d.pa.leftmost[di] - li
			q := d.pb.leftmost[dj] - lj
			*at(x, y) = min(del, ins, *at(p, q)+d.tree(di, dj))
		}
	}
}
