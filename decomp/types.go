// SPDX-License-Identifier: MIT

// Package decomp: the shared capability interface and the variant tag.
package decomp

import "github.com/katalvlaran/lvtensor/tensor"

// Kind tags the concrete form of a Representation.
type Kind int

const (
	// KindCP is the Canonical Polyadic form (diagonal core).
	KindCP Kind = iota + 1
	// KindTucker is the Tucker form (dense core).
	KindTucker
	// KindTrain is the Tensor-Train form (chain of cores).
	KindTrain
)

// String returns the short lowercase name used in persisted documents.
func (k Kind) String() string {
	switch k {
	case KindCP:
		return "cp"
	case KindTucker:
		return "tucker"
	case KindTrain:
		return "tt"
	default:
		return "unknown"
	}
}

// ParseKind is the inverse of Kind.String. The second result is false for
// unknown names.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "cp":
		return KindCP, true
	case "tucker":
		return KindTucker, true
	case "tt":
		return KindTrain, true
	default:
		return 0, false
	}
}

// Representation is what every compressed form can do, regardless of its
// internal structure.
type Representation interface {
	// Kind reports the concrete form.
	Kind() Kind

	// Order is the number of modes of the full tensor.
	Order() int

	// FullShape returns the mode sizes of the reconstructed tensor.
	FullShape() []int

	// ModeNames returns the labels given to the modes of the full tensor.
	ModeNames() []string

	// NumParams counts the stored scalar parameters.
	NumParams() int

	// Reconstruct expands the representation into a dense tensor of FullShape.
	Reconstruct() (*tensor.Dense, error)

	// Copy returns a deep, fully independent duplicate.
	Copy() Representation
}

// Compile-time assertions.
var (
	_ Representation = (*CP)(nil)
	_ Representation = (*Tucker)(nil)
	_ Representation = (*Train)(nil)
)
