// Package builder defines shared constants used by graph builders.
package builder

// Builder method names, used to prefix errors with the constructor name.
const (
	MethodCycle         = "Cycle"
	MethodComplete      = "Complete"
	MethodRandomRegular = "RandomRegular"
	MethodPolarity      = "Polarity"
)

// MinCycleNodes is the smallest meaningful size for a cycle.
const MinCycleNodes = 3

// MinCompleteNodes is the smallest size accepted by Complete.
const MinCompleteNodes = 1

// MinPolarityOrder is the smallest field order accepted by Polarity.
const MinPolarityOrder = 2

// maxStubMatchingAttempts bounds RandomRegular reshuffles.
const maxStubMatchingAttempts = 16
