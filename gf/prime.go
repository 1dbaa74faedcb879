// SPDX-License-Identifier: MIT
// Package: topogen/gf
//
// prime.go — primality and prime-power helpers used to validate field orders.

package gf

// IsPrime reports whether n is prime by trial division.
// Complexity: O(√n).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// PrimePower factors q as p^n. ok is false when q is not a prime power
// (including q < 2).
// Complexity: O(√q).
func PrimePower(q int) (p, n int, ok bool) {
	if q < 2 {
		return 0, 0, false
	}
	// smallest divisor ≥ 2 is necessarily prime
	p = q
	for d := 2; d*d <= q; d++ {
		if q%d == 0 {
			p = d
			break
		}
	}
	for q%p == 0 {
		q /= p
		n++
	}
	if q != 1 {
		return 0, 0, false
	}

	return p, n, true
}

// IsPrimePower reports whether q = p^n for a prime p and n ≥ 1.
func IsPrimePower(q int) bool {
	_, _, ok := PrimePower(q)
	return ok
}

// PrimePowers returns every prime power in [lo, hi], ascending.
// Complexity: O((hi-lo)·√hi).
func PrimePowers(lo, hi int) []int {
	if lo < 2 {
		lo = 2
	}
	var out []int
	for q := lo; q <= hi; q++ {
		if IsPrimePower(q) {
			out = append(out, q)
		}
	}

	return out
}
