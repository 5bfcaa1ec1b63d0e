// SPDX-License-Identifier: MIT
// Package tensorio: sentinel error set.
// Construction errors of the underlying packages (decomp.ErrShapeMismatch,
// tensor.ErrBadShape, ...) are passed through unchanged via %w.

package tensorio

import "errors"

var (
	// ErrUnknownKind indicates a document (or value) whose kind is not one of
	// cp, tucker, tt.
	ErrUnknownKind = errors.New("tensorio: unknown representation kind")

	// ErrMalformed indicates YAML that cannot be parsed into a document, or a
	// document missing a required section.
	ErrMalformed = errors.New("tensorio: malformed document")

	// ErrVersion indicates a document written by an unsupported format version.
	ErrVersion = errors.New("tensorio: unsupported format version")

	// ErrNilValue indicates that a nil tensor or representation was passed for encoding.
	ErrNilValue = errors.New("tensorio: nil value")
)
