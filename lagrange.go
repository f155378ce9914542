package tss

// interpolate recovers f(0) from the evaluations ys at the distinct nonzero
// points xs, one Lagrange basis term per share:
//
//	f(0) = Σ_j ys[j] · Π_{m≠j} xs[m] / (xs[m] ⊕ xs[j])
func interpolate(xs, ys []byte) byte {
	var sum byte
	for j := range xs {
		basis := byte(1)
		for m := range xs {
			if m == j {
				continue
			}
			basis = gfMul(basis, gfDiv(xs[m], gfAdd(xs[m], xs[j])))
		}
		sum = gfAdd(sum, gfMul(basis, ys[j]))
	}
	return sum
}
