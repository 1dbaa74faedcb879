// SPDX-License-Identifier: MIT
// Package: topogen/brownext
//
// validate.go — closed-form expectations and the structural validator.

package brownext

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/topogen/analysis"
	"github.com/katalvlaran/topogen/core"
)

// ExpectedOrder is the vertex count of an extension with the given rounds,
// after EffectiveRounds:
//
//	odd q:  q²+q+1 + (q+1)·r0 + (q+1)·r1
//	even q: q²+q+1 + r0 + (q+1)·r1
func ExpectedOrder(q, r0, r1 int) int {
	r0, r1 = EffectiveRounds(q, r0, r1)
	n := q*q + q + 1 + (q+1)*r1
	if q%2 == 0 {
		return n + r0
	}

	return n + (q+1)*r0
}

// ExpectedMaxDegree bounds the maximum degree: q+1, plus 2·r0 for odd q,
// plus r1.
func ExpectedMaxDegree(q, r0, r1 int) int {
	r0, r1 = EffectiveRounds(q, r0, r1)
	d := q + 1 + r1
	if q%2 != 0 {
		d += 2 * r0
	}

	return d
}

// ExpectedDiameter is 2, or 3 when closed neighbourhoods were replicated.
func ExpectedDiameter(r1 int) int {
	if r1 > 0 {
		return 3
	}
	return 2
}

// degreeSlack is the allowed gap between min and max degree beyond 2·r0.
const degreeSlack = 5

// Check validates g against the extension parameters. It returns nil on
// success or a *ValidationError for the first failing check; later checks
// are skipped. A non-canonical g is checked on a canonical copy.
//
// Complexity: O(V·(V+E)).
func Check(g *core.Graph, q, r0, r1 int) error {
	if g == nil {
		return &ValidationError{Check: CheckOrder, Detail: "nil graph"}
	}
	r0, r1 = EffectiveRounds(q, r0, r1)
	if want := ExpectedOrder(q, r0, r1); g.Order() != want {
		return &ValidationError{Check: CheckOrder, Detail: fmt.Sprintf("%d vertices, want %d", g.Order(), want)}
	}
	if !g.IsCanonical() {
		g = g.Clone()
		g.Canonicalize()
	}

	s, err := analysis.Summarize(g)
	if err != nil {
		return &ValidationError{Check: CheckConnectivity, Detail: err.Error()}
	}
	if !s.Connected {
		return &ValidationError{Check: CheckConnectivity, Detail: "graph is not connected"}
	}
	if want := ExpectedMaxDegree(q, r0, r1); s.MaxDegree > want {
		return &ValidationError{Check: CheckMaxDegree, Detail: fmt.Sprintf("max %d, bound %d", s.MaxDegree, want)}
	}
	if s.MinDegree+2*r0+degreeSlack < s.MaxDegree {
		return &ValidationError{Check: CheckDegreeBalance, Detail: fmt.Sprintf("min %d, max %d", s.MinDegree, s.MaxDegree)}
	}
	if want := ExpectedDiameter(r1); s.Diameter > want {
		return &ValidationError{Check: CheckDiameter, Detail: fmt.Sprintf("diameter %d, bound %d", s.Diameter, want)}
	}
	if s.AvgPathLength >= 2 {
		return &ValidationError{Check: CheckAvgPathLength, Detail: fmt.Sprintf("%.4f, want < 2", s.AvgPathLength)}
	}

	return nil
}

// Validate runs Check and returns 1 on success, 0 otherwise. The failing
// check is logged at warn level; only WithLogger is honoured from opts.
func Validate(g *core.Graph, q, r0, r1 int, opts ...Option) int {
	o := resolve(opts)
	err := Check(g, q, r0, r1)
	if err == nil {
		o.Logger.Debug("brownext: validation passed", "q", q, "r0", r0, "r1", r1)
		return 1
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		o.Logger.Warn("brownext: validation failed", "q", q, "r0", r0, "r1", r1, "check", ve.Check, "detail", ve.Detail)
	} else {
		o.Logger.Warn("brownext: validation failed", "q", q, "r0", r0, "r1", r1, "err", err)
	}

	return 0
}
