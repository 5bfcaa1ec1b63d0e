// SPDX-License-Identifier: MIT

package tensorio

import (
	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

// FormatVersion is written into every document and checked on decode.
const FormatVersion = 1

// document is the on-disk form of a representation.
type document struct {
	Version   int         `yaml:"version"`
	Kind      string      `yaml:"kind"`
	ModeNames []string    `yaml:"mode_names,flow,omitempty"`
	FullShape []int       `yaml:"full_shape,flow,omitempty"`
	Weights   []float64   `yaml:"weights,flow,omitempty"`
	Factors   []matrixDoc `yaml:"factors,omitempty"`
	Core      *tensorDoc  `yaml:"core,omitempty"`
	Cores     []tensorDoc `yaml:"cores,omitempty"`
}

// matrixDoc stores a matrix row-major.
type matrixDoc struct {
	Rows int       `yaml:"rows"`
	Cols int       `yaml:"cols"`
	Data []float64 `yaml:"data,flow"`
}

// tensorDoc stores a dense tensor row-major.
type tensorDoc struct {
	Shape     []int     `yaml:"shape,flow"`
	ModeNames []string  `yaml:"mode_names,flow,omitempty"`
	Data      []float64 `yaml:"data,flow"`
}

func fromMatrix(m matrix.Matrix) (matrixDoc, error) {
	data, err := matrix.ToRowMajor(m)
	if err != nil {
		return matrixDoc{}, err
	}

	return matrixDoc{Rows: m.Rows(), Cols: m.Cols(), Data: data}, nil
}

func (d matrixDoc) build() (matrix.Matrix, error) {
	return matrix.NewDenseFrom(d.Rows, d.Cols, d.Data)
}

func fromTensor(t *tensor.Dense, withNames bool) tensorDoc {
	d := tensorDoc{Shape: t.Sizes(), Data: t.Data()}
	if withNames {
		d.ModeNames = t.ModeNames()
	}

	return d
}

// build restores the tensor; stored names are applied before caller options
// so the caller can still relabel.
func (d tensorDoc) build(opts ...tensor.Option) (*tensor.Dense, error) {
	var all []tensor.Option
	if d.ModeNames != nil {
		all = append(all, tensor.WithModeNames(d.ModeNames...))
	}

	return tensor.NewDenseFrom(d.Data, d.Shape, append(all, opts...)...)
}
