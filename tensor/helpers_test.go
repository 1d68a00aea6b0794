// SPDX-License-Identifier: MIT

package tensor_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplealgebra/numeric"
	"github.com/katalvlaran/simplealgebra/tensor"
)

type (
	F = numeric.Float
	T = tensor.Einstein[string, F]
)

type kv struct {
	key []int
	v   float64
}

func names(s ...string) []string { return s }

// build returns a Float tensor with the given slots and entries.
func build(t testing.TB, contra, cov []string, entries ...kv) *T {
	t.Helper()
	out := tensor.New[string, F](numeric.FloatFactory{}, contra, cov)
	for _, e := range entries {
		require.NoError(t, out.SetVal(e.key, F(e.v)))
	}

	return out
}

// entriesOf flattens a tensor into key-string → value.
func entriesOf(x *T) map[string]float64 {
	out := map[string]float64{}
	x.Range(func(key []int, v F) bool {
		out[fmt.Sprint(key)] = float64(v)
		return true
	})

	return out
}

// requireTensor compares slots exactly and values within 1e-12.
func requireTensor(t testing.TB, contra, cov []string, want map[string]float64, got *T) {
	t.Helper()
	if d := cmp.Diff(contra, got.Contravariant(), cmpopts.EquateEmpty()); d != "" {
		t.Fatalf("contravariant slots (-want +got):\n%s", d)
	}
	if d := cmp.Diff(cov, got.Covariant(), cmpopts.EquateEmpty()); d != "" {
		t.Fatalf("covariant slots (-want +got):\n%s", d)
	}
	if d := cmp.Diff(want, entriesOf(got), cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Fatalf("entries (-want +got):\n%s", d)
	}
}
