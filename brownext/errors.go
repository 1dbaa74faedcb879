// SPDX-License-Identifier: MIT
// Package: topogen/brownext
//
// errors.go — sentinel errors and validation failures.

package brownext

import (
	"errors"
	"fmt"
)

var (
	// ErrConstructionFault covers every violated construction rule: malformed
	// base graph, out-of-range rounds, bad cluster sizes, duplicate cluster
	// assignment and replica-degree mismatch. The wrapped message names the
	// rule.
	ErrConstructionFault = errors.New("brownext: construction fault")

	// ErrConflictingRounds is returned in strict mode when r0 and r1 are both
	// positive, or when an even q asks for more than one r0 round.
	ErrConflictingRounds = errors.New("brownext: conflicting replication rounds")
)

const (
	methodNewGenerator = "NewGenerator"
	methodNewLayout    = "NewLayout"
	methodExtend       = "Extend"
	methodMake         = "Make"
	methodIsQuadric    = "IsQuadric"
)

// faultf wraps ErrConstructionFault with method context.
func faultf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrConstructionFault)
}

// Validation check names, in evaluation order.
const (
	CheckOrder         = "order"
	CheckConnectivity  = "connectivity"
	CheckMaxDegree     = "max-degree"
	CheckDegreeBalance = "degree-balance"
	CheckDiameter      = "diameter"
	CheckAvgPathLength = "avg-path-length"
)

// ValidationError reports the first failing validation check.
type ValidationError struct {
	Check  string
	Detail string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("brownext: %s check failed: %s", e.Check, e.Detail)
}
