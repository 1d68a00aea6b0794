// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simplealgebra/matrix"
	"github.com/katalvlaran/simplealgebra/numeric"
	"github.com/katalvlaran/simplealgebra/tensor"
)

type (
	floatSquare = matrix.Square[numeric.Float]
	floatTensor = tensor.Einstein[string, numeric.Float]
)

// matrixDoc is a dense square matrix, one YAML list per row.
type matrixDoc struct {
	Rows [][]float64 `yaml:"rows"`
}

type entryDoc struct {
	Key   []int   `yaml:"key,flow"`
	Value float64 `yaml:"value"`
}

// tensorDoc lists slot names and the stored entries.
type tensorDoc struct {
	Contravariant []string   `yaml:"contravariant,flow,omitempty"`
	Covariant     []string   `yaml:"covariant,flow,omitempty"`
	Entries       []entryDoc `yaml:"entries"`
}

type contractDoc struct {
	Left  tensorDoc `yaml:"left"`
	Right tensorDoc `yaml:"right"`
}

func readDoc[T any](path string) (T, error) {
	var doc T
	raw, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("decode %s: %w", path, err)
	}

	return doc, nil
}

func (d matrixDoc) square() (*floatSquare, error) {
	n := len(d.Rows)
	if n == 0 {
		return nil, fmt.Errorf("matrix has no rows")
	}
	flat := make([]float64, 0, n*n)
	for i, row := range d.Rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d values, want %d", i, len(row), n)
		}
		flat = append(flat, row...)
	}

	return numeric.FromDense(mat.NewDense(n, n, flat))
}

func squareDoc(m *floatSquare, tol float64) (matrixDoc, error) {
	d, err := numeric.ToDense(m)
	if err != nil {
		return matrixDoc{}, err
	}
	n, _ := d.Dims()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = clean(d.At(i, j), tol)
		}
	}

	return matrixDoc{Rows: rows}, nil
}

func (d tensorDoc) tensor() (*floatTensor, error) {
	t := tensor.New[string, numeric.Float](numeric.FloatFactory{}, d.Contravariant, d.Covariant)
	for i, e := range d.Entries {
		v, err := numeric.NewFloat(e.Value)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if err = t.SetVal(e.Key, v); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	return t, nil
}

func tensorDocOf(t *floatTensor, tol float64) tensorDoc {
	d := tensorDoc{
		Contravariant: t.Contravariant(),
		Covariant:     t.Covariant(),
		Entries:       []entryDoc{},
	}
	t.Range(func(key []int, v numeric.Float) bool {
		if x := clean(float64(v), tol); x != 0 {
			d.Entries = append(d.Entries, entryDoc{Key: append([]int{}, key...), Value: x})
		}
		return true
	})

	return d
}

// clean maps values within tol of zero (and -0) to 0.
func clean(v, tol float64) float64 {
	if math.Abs(v) <= tol {
		return 0
	}

	return v
}
