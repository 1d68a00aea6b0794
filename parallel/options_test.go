// SPDX-License-Identifier: MIT

package parallel_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplealgebra/parallel"
)

func TestOptions(t *testing.T) {
	require.Equal(t, runtime.GOMAXPROCS(0), parallel.Workers())
	require.Equal(t, 3, parallel.Workers(parallel.WithWorkers(3)))
	require.Equal(t, runtime.GOMAXPROCS(0), parallel.Workers(parallel.WithWorkers(3), parallel.WithWorkers(0)))
	require.Equal(t, 5, parallel.Workers(nil, parallel.WithWorkers(5)))

	require.PanicsWithValue(t, "parallel: WithWorkers: n must be >= 0", func() { parallel.WithWorkers(-1) })
	require.PanicsWithValue(t, "parallel: WithLogger: logger must not be nil", func() { parallel.WithLogger(nil) })
}
