// SPDX-License-Identifier: MIT

package ccs

// Test-Bridge (White-Box) for Internal Options and Panic Messages
//
// Purpose:
//   - Expose the internal options snapshot and panic message constants to
//     ccs_test ONLY, without widening the production API.
//   - The _test.go suffix keeps this file out of production builds.
//
// Behavior & Determinism:
//   - Pure pass-through wrappers and struct copies; no side effects.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields. If Options
//     changes, update snapshotOf accordingly (tests will catch drift).

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicCapacityNegative_TestOnly = panicCapacityNegative
	PanicToleranceInvalid_TestOnly = panicToleranceInvalid
)

// OptionsSnapshot is a stable, test-facing copy of internal Options fields.
// Purpose:
//   - Allow ccs_test to assert defaults and "last writer wins" semantics
//     without accessing unexported fields directly.
type OptionsSnapshot struct {
	Capacity int
	DropTol  float64
}

// GatherOptionsSnapshot_TestOnly resolves opts through the internal pipeline
// and returns a snapshot of the effective configuration.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return snapshotOf(o)
}

// snapshotOf copies internal fields to a public struct. Keep in sync with Options layout.
func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Capacity: o.capacity,
		DropTol:  o.dropTol,
	}
}
