// Package gf implements arithmetic over the finite (Galois) field GF(q),
// q = p^n a prime power, as needed by the incidence-geometry builders.
//
// What
//
//   - Elements are encoded as integers 0..q-1. The base-p digits of an element
//     are the coefficients of a polynomial of degree < n over GF(p)
//     (least-significant digit = constant term).
//   - Multiplication reduces modulo a monic irreducible polynomial of degree n,
//     the first one in lexicographic coefficient order.
//   - Addition, multiplication, negation and inversion are precomputed into
//     q×q / q-sized tables, so every operation is a slice lookup.
//
// Why
//
//   - Polarity graphs are defined by orthogonality u·v = 0 over GF(q); the
//     builder evaluates O(q^4) dot products and needs O(1) field operations.
//   - Research-scale orders (q ≤ a few hundred) keep the tables small.
//
// Complexity
//
//   - New(q):  O(q² · n²) time to fill the tables, O(q²) memory.
//   - Add/Sub/Mul/Neg: O(1). Inv: O(1). Pow(a,e): O(log e).
//
// Usage
//
//	f, err := gf.New(9)
//	if err != nil {
//	    // errors.Is(err, gf.ErrNotPrimePower)
//	}
//	x := f.Mul(f.Add(3, 4), 5)
//
// Errors
//
//   - ErrNotPrimePower if q is not of the form p^n with p prime, n ≥ 1.
//   - ErrZeroInverse   if Inv is asked for the inverse of 0.
package gf
