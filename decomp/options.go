// SPDX-License-Identifier: MIT

// Package decomp: functional configuration shared by CP, Tucker and Train.
//
// Options carry two things:
//   - the labels of the full-tensor modes (propagated to Core and Reconstruct);
//   - the tensor.Option list forwarded to every mode-n product of the sweep.
package decomp

import (
	"fmt"

	"github.com/katalvlaran/lvtensor/tensor"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	names   []string        // nil ⇒ tensor defaults ("mode-0", ...)
	product []tensor.Option // forwarded to tensor.ModeProduct
}

// WithModeNames labels the modes of the full tensor. The count must equal the
// order of the representation; constructors report a mismatch as
// tensor.ErrModeNames.
func WithModeNames(names ...string) Option {
	cp := append([]string(nil), names...)

	return func(o *Options) { o.names = cp }
}

// WithWorkers runs the mode-n products of Reconstruct (CP, Tucker and the
// Train bond contractions) on n workers.
// Panics when n < 1 (see tensor.WithWorkers).
func WithWorkers(n int) Option {
	opt := tensor.WithWorkers(n)

	return func(o *Options) { o.product = append(o.product, opt) }
}

// WithSequential runs every mode-n product of Reconstruct on the calling goroutine.
func WithSequential() Option {
	opt := tensor.WithSequential()

	return func(o *Options) { o.product = append(o.product, opt) }
}

// gatherOptions applies setters in order (last-writer-wins for names).
func gatherOptions(user ...Option) Options {
	var o Options
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// clone returns an independent copy (option funcs themselves are immutable).
func (o Options) clone() Options {
	return Options{
		names:   append([]string(nil), o.names...),
		product: append([]tensor.Option(nil), o.product...),
	}
}

// checkNames validates explicit names against the order.
func (o Options) checkNames(order int) error {
	if o.names != nil && len(o.names) != order {
		return fmt.Errorf("got %d names for order %d: %w", len(o.names), order, tensor.ErrModeNames)
	}

	return nil
}

// tensorOptions returns the options used to build derived tensors (cores,
// reconstructions) carrying the full-tensor mode names.
func (o Options) tensorOptions() []tensor.Option {
	if o.names == nil {
		return nil
	}

	return []tensor.Option{tensor.WithModeNames(o.names...)}
}

// modeNames returns explicit names or the tensor defaults for the order.
func (o Options) modeNames(order int) []string {
	if o.names != nil {
		return append([]string(nil), o.names...)
	}
	names := make([]string, order)
	for i := range names {
		names[i] = fmt.Sprintf("%s%d", tensor.DefaultModeNamePrefix, i)
	}

	return names
}
