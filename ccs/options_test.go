// SPDX-License-Identifier: MIT
// Package ccs_test verifies the functional-option layer through the
// white-box snapshot bridge: defaults, last-writer-wins resolution and the
// panic contracts of the constructors.
package ccs_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvlmat/ccs"
	"github.com/stretchr/testify/require"
)

// TestOptions_Defaults: an empty option list resolves to the documented
// Default* constants.
func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	snap := ccs.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, ccs.DefaultCapacity, snap.Capacity)
	require.Equal(t, ccs.DefaultDropTolerance, snap.DropTol)
}

// TestOptions_LastWriterWins: setters apply in order; the final value sticks.
func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	snap := ccs.GatherOptionsSnapshot_TestOnly(
		ccs.WithCapacity(2),
		ccs.WithDropTolerance(0.25),
		ccs.WithCapacity(5),
	)
	require.Equal(t, 5, snap.Capacity)
	require.Equal(t, 0.25, snap.DropTol)
}

// TestOptions_ValidValues: boundary inputs the constructors must accept.
func TestOptions_ValidValues(t *testing.T) {
	t.Parallel()

	snap := ccs.GatherOptionsSnapshot_TestOnly(
		ccs.WithCapacity(0),
		ccs.WithDropTolerance(0),
	)
	require.Equal(t, 0, snap.Capacity)
	require.Equal(t, 0.0, snap.DropTol)
}

// TestOptions_PanicContracts: nonsensical arguments are programmer errors
// and panic with stable messages.
func TestOptions_PanicContracts(t *testing.T) {
	t.Parallel()

	ExpectPanic(t, ccs.PanicCapacityNegative_TestOnly, func() {
		ccs.WithCapacity(-1)
	})
	ExpectPanic(t, ccs.PanicToleranceInvalid_TestOnly, func() {
		ccs.WithDropTolerance(-0.5)
	})
	ExpectPanic(t, ccs.PanicToleranceInvalid_TestOnly, func() {
		ccs.WithDropTolerance(math.NaN())
	})
	ExpectPanic(t, ccs.PanicToleranceInvalid_TestOnly, func() {
		ccs.WithDropTolerance(math.Inf(1))
	})
}
