// SPDX-License-Identifier: MIT
// Package: topogen/gf
//
// poly.go — dense polynomial helpers over GF(p).
//
// Polynomials are little-endian coefficient slices: c[i] is the coefficient
// of t^i. All coefficients are kept in [0,p).

package gf

// digits expands x into n base-p digits (little-endian).
func digits(x, p, n int) []int {
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = x % p
		x /= p
	}

	return out
}

// encode folds base-p digits back into an integer.
func encode(c []int, p int) int {
	x := 0
	for i := len(c) - 1; i >= 0; i-- {
		x = x*p + c[i]
	}

	return x
}

// monic returns the monic polynomial of degree d whose lower coefficients
// are the base-p digits of k.
func monic(k, p, d int) []int {
	return append(digits(k, p, d), 1)
}

// polyRem returns f mod g over GF(p). g must be monic.
// Complexity: O(deg f · deg g).
func polyRem(f, g []int, p int) []int {
	r := append([]int(nil), f...)
	dg := len(g) - 1
	for d := len(r) - 1; d >= dg; d-- {
		c := r[d]
		if c == 0 {
			continue
		}
		for k := 0; k <= dg; k++ {
			r[d-dg+k] = mod(r[d-dg+k]-c*g[k], p)
		}
	}
	if dg < len(r) {
		r = r[:dg]
	}

	return r
}

// isZero reports whether every coefficient is zero.
func isZero(c []int) bool {
	for _, x := range c {
		if x != 0 {
			return false
		}
	}

	return true
}

// isIrreducible tests f (monic, degree n) by trial division with every monic
// polynomial of degree 1..n/2.
// Complexity: O(p^(n/2) · n²); negligible for research-scale orders.
func isIrreducible(f []int, p int) bool {
	n := len(f) - 1
	for d := 1; d <= n/2; d++ {
		limit := ipow(p, d)
		for k := 0; k < limit; k++ {
			if isZero(polyRem(f, monic(k, p, d), p)) {
				return false
			}
		}
	}

	return true
}

// firstIrreducible returns the lexicographically first monic irreducible
// polynomial of degree n over GF(p).
func firstIrreducible(p, n int) ([]int, error) {
	limit := ipow(p, n)
	for k := 0; k < limit; k++ {
		f := monic(k, p, n)
		if isIrreducible(f, p) {
			return f, nil
		}
	}

	return nil, ErrNoIrreducible
}

// mulMod multiplies a and b (degree < n) and reduces modulo the monic m.
func mulMod(a, b, m []int, p int) []int {
	prod := make([]int, len(a)+len(b)-1)
	for i, x := range a {
		if x == 0 {
			continue
		}
		for j, y := range b {
			prod[i+j] = (prod[i+j] + x*y) % p
		}
	}
	r := polyRem(prod, m, p)
	// pad to the full width so encode sees n digits
	for len(r) < len(m)-1 {
		r = append(r, 0)
	}

	return r
}

func mod(x, p int) int {
	x %= p
	if x < 0 {
		x += p
	}

	return x
}

func ipow(b, e int) int {
	r := 1
	for ; e > 0; e-- {
		r *= b
	}

	return r
}
