// SPDX-License-Identifier: MIT

// Package tensor: functional configuration for tensor construction and the
// mode-n product kernel.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: parallelism never changes results.
//   - No dead switches: each flag impacts behavior and is covered by tests.
package tensor

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/internal/parallel"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultModeNamePrefix is used to label modes when no names are supplied:
	// "mode-0", "mode-1", ...
	DefaultModeNamePrefix = "mode-"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "tensor: WithWorkers: n must be >= 1"
	panicChunkInvalid   = "tensor: WithMinChunk: size must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	names          []string        // nil ⇒ default names
	validateNaNInf bool            // DefaultValidateNaNInf
	par            parallel.Config // parallel.DefaultConfig()
}

// WithModeNames labels the modes of a tensor being created.
// The count must equal the tensor order; the mismatch is reported by the
// constructor as ErrModeNames (the order is not known here).
// Complexity: O(k).
func WithModeNames(names ...string) Option {
	cp := append([]string(nil), names...)

	return func(o *Options) { o.names = cp }
}

// WithValidateNaNInf enables the finite-only numeric policy.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-only numeric policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithWorkers enables the parallel mode-n product kernel with n workers.
// n == 1 is equivalent to WithSequential.
// Panics when n < 1 (programmer error).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) {
		o.par.Enabled = n > 1
		o.par.NumWorkers = n
	}
}

// WithMinChunk sets the minimum number of output fibres per goroutine.
// Panics when size < 1 (programmer error).
func WithMinChunk(size int) Option {
	if size < 1 {
		panic(panicChunkInvalid)
	}

	return func(o *Options) { o.par.MinChunkSize = size }
}

// WithSequential forces the mode-n product to run on the calling goroutine.
func WithSequential() Option {
	return func(o *Options) { o.par = parallel.Sequential() }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Nil setters are skipped; last-writer-wins.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		par:            parallel.DefaultConfig(),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// resolveNames returns the effective mode names for a tensor of the given order.
// Errors: ErrModeNames when explicit names do not match the order.
func (o Options) resolveNames(order int) ([]string, error) {
	if o.names == nil {
		return defaultModeNames(order), nil
	}
	if len(o.names) != order {
		return nil, fmt.Errorf("got %d names for order %d: %w", len(o.names), order, ErrModeNames)
	}

	return append([]string(nil), o.names...), nil
}

// defaultModeNames returns "mode-0".."mode-(order-1)".
func defaultModeNames(order int) []string {
	names := make([]string, order)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", DefaultModeNamePrefix, i)
	}

	return names
}
