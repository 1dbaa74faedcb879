// SPDX-License-Identifier: MIT
// Package: topogen/gf
//
// field.go — table-driven GF(p^n) arithmetic.
//
// Contract:
//   • Elements are ints in [0, Order()). Passing anything else to the
//     arithmetic methods is a programmer error (index out of range).
//   • A *Field is immutable after New and safe for concurrent readers.

package gf

import "fmt"

const methodNew = "New"

// Field is GF(q) with q = p^n.
type Field struct {
	p, n, q int

	modulus []int   // monic irreducible, little-endian, len n+1
	add     [][]int // add[a][b] = a+b
	mul     [][]int // mul[a][b] = a·b
	neg     []int   // neg[a] = -a
	inv     []int   // inv[a] = a⁻¹, inv[0] = 0 (undefined, guarded by Inv)
}

// New builds the arithmetic tables of GF(q).
// Returns ErrNotPrimePower if q is not p^n.
//
// Complexity: O(q²·n²) time, O(q²) space.
func New(q int) (*Field, error) {
	p, n, ok := PrimePower(q)
	if !ok {
		return nil, fmt.Errorf("%s: q=%d: %w", methodNew, q, ErrNotPrimePower)
	}
	m, err := firstIrreducible(p, n)
	if err != nil {
		return nil, fmt.Errorf("%s: q=%d: %w", methodNew, q, err)
	}

	f := &Field{
		p:       p,
		n:       n,
		q:       q,
		modulus: m,
		add:     make([][]int, q),
		mul:     make([][]int, q),
		neg:     make([]int, q),
		inv:     make([]int, q),
	}

	// digit vectors are reused for every table row
	dig := make([][]int, q)
	for a := 0; a < q; a++ {
		dig[a] = digits(a, p, n)
	}

	sum := make([]int, n)
	for a := 0; a < q; a++ {
		f.add[a] = make([]int, q)
		f.mul[a] = make([]int, q)
		for b := 0; b < q; b++ {
			for i := 0; i < n; i++ {
				sum[i] = (dig[a][i] + dig[b][i]) % p
			}
			f.add[a][b] = encode(sum, p)
			f.mul[a][b] = encode(mulMod(dig[a], dig[b], m, p), p)
		}
	}
	for a := 0; a < q; a++ {
		for b := 0; b < q; b++ {
			if f.add[a][b] == 0 {
				f.neg[a] = b
			}
			if f.mul[a][b] == 1 {
				f.inv[a] = b
			}
		}
	}

	return f, nil
}

// Order returns q.
func (f *Field) Order() int { return f.q }

// Characteristic returns p.
func (f *Field) Characteristic() int { return f.p }

// Degree returns n, the extension degree over GF(p).
func (f *Field) Degree() int { return f.n }

// Modulus returns a copy of the reducing polynomial (little-endian, monic).
func (f *Field) Modulus() []int {
	return append([]int(nil), f.modulus...)
}

// Add returns a+b.
func (f *Field) Add(a, b int) int { return f.add[a][b] }

// Sub returns a-b.
func (f *Field) Sub(a, b int) int { return f.add[a][f.neg[b]] }

// Neg returns -a.
func (f *Field) Neg(a int) int { return f.neg[a] }

// Mul returns a·b.
func (f *Field) Mul(a, b int) int { return f.mul[a][b] }

// Inv returns a⁻¹, or ErrZeroInverse for a == 0.
func (f *Field) Inv(a int) (int, error) {
	if a == 0 {
		return 0, ErrZeroInverse
	}

	return f.inv[a], nil
}

// Pow returns a^e for e ≥ 0 by square-and-multiply. Pow(a, 0) == 1.
// Complexity: O(log e).
func (f *Field) Pow(a, e int) int {
	r := 1
	for e > 0 {
		if e&1 == 1 {
			r = f.mul[r][a]
		}
		a = f.mul[a][a]
		e >>= 1
	}

	return r
}

// Dot returns Σ u[i]·v[i]. u and v must have equal length.
// Complexity: O(len(u)).
func (f *Field) Dot(u, v []int) int {
	s := 0
	for i := range u {
		s = f.add[s][f.mul[u[i]][v[i]]]
	}

	return s
}
