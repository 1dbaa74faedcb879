// SPDX-License-Identifier: MIT
// Package: topogen/gf
//
// errors.go — sentinel errors for the gf package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package gf

import "errors"

var (
	// ErrNotPrimePower indicates that a requested field order is not p^n.
	ErrNotPrimePower = errors.New("gf: order is not a prime power")

	// ErrZeroInverse indicates an attempt to invert the additive identity.
	ErrZeroInverse = errors.New("gf: zero has no multiplicative inverse")

	// ErrNoIrreducible indicates that no monic irreducible polynomial of the
	// requested degree was found. It cannot happen for valid inputs and is
	// kept as a guard against arithmetic defects.
	ErrNoIrreducible = errors.New("gf: no irreducible polynomial found")
)
