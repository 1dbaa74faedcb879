package sweep

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/topogen/gf"
)

// Sentinel errors for parameter generation.
var (
	ErrNeedRand = errors.New("sweep: rng is required")
	ErrBadRange = errors.New("sweep: invalid parameter range")
)

// Params is one extension tuple.
type Params struct {
	Q  int `yaml:"q"`
	R0 int `yaml:"r0"`
	R1 int `yaml:"r1"`
}

// String renders "q=5 r0=2 r1=0".
func (p Params) String() string {
	return fmt.Sprintf("q=%d r0=%d r1=%d", p.Q, p.R0, p.R1)
}

// NearestPrimePower returns the prime power closest to x (x ≥ 2); ties go
// to the smaller one.
func NearestPrimePower(x int) int {
	if x <= 2 {
		return 2
	}
	for d := 0; ; d++ {
		if gf.IsPrimePower(x - d) {
			return x - d
		}
		if gf.IsPrimePower(x + d) {
			return x + d
		}
	}
}

// RandomParams draws n groups of three tuples each. The result is
// deterministic for a given rng state.
func RandomParams(rng *rand.Rand, qmax, n int) ([]Params, error) {
	if rng == nil {
		return nil, ErrNeedRand
	}
	if qmax < 2 || n < 0 {
		return nil, fmt.Errorf("RandomParams: qmax=%d n=%d: %w", qmax, n, ErrBadRange)
	}

	out := make([]Params, 0, 3*n)
	for i := 0; i < n; i++ {
		q := NearestPrimePower(rng.Intn(qmax-1) + 2)
		r0 := rng.Intn(4) + 1
		r1 := rng.Intn(q + 1)
		out = append(out, Params{Q: q}, Params{Q: q, R0: r0}, Params{Q: q, R1: r1})
	}

	return out, nil
}
