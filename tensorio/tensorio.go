// SPDX-License-Identifier: MIT

package tensorio

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtensor/decomp"
	"github.com/katalvlaran/lvtensor/matrix"
	"github.com/katalvlaran/lvtensor/tensor"
)

const (
	opMarshal      = "Marshal"
	opUnmarshal    = "Unmarshal"
	opEncodeTensor = "EncodeTensor"
	opDecodeTensor = "DecodeTensor"

	indent = 2
)

func ioErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// EncodeTensor writes t (shape, mode names and row-major data) as YAML.
// Errors: ErrNilValue.
func EncodeTensor(t *tensor.Dense) ([]byte, error) {
	if t == nil {
		return nil, ioErrorf(opEncodeTensor, ErrNilValue)
	}
	var buf bytes.Buffer
	if err := writeYAML(&buf, fromTensor(t, true)); err != nil {
		return nil, ioErrorf(opEncodeTensor, err)
	}

	return buf.Bytes(), nil
}

// DecodeTensor parses a document written by EncodeTensor. opts are applied
// after the stored mode names.
// Errors: ErrMalformed, plus any tensor construction error.
func DecodeTensor(data []byte, opts ...tensor.Option) (*tensor.Dense, error) {
	var d tensorDoc
	if err := readYAML(bytes.NewReader(data), &d); err != nil {
		return nil, ioErrorf(opDecodeTensor, err)
	}
	t, err := d.build(opts...)
	if err != nil {
		return nil, ioErrorf(opDecodeTensor, err)
	}

	return t, nil
}

// Marshal serializes a CP, Tucker or Train representation.
// Errors: ErrNilValue, ErrUnknownKind for other Representation implementations.
func Marshal(rep decomp.Representation) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, rep); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Unmarshal parses one document and rebuilds the representation through its
// constructor. opts are appended after the stored mode names.
// Errors: ErrMalformed, ErrVersion, ErrUnknownKind, plus constructor errors
// (decomp.ErrShapeMismatch, matrix.ErrBadShape, ...).
func Unmarshal(data []byte, opts ...decomp.Option) (decomp.Representation, error) {
	return Decode(bytes.NewReader(data), opts...)
}

// Encode writes rep to w as one YAML document.
// MAIN DESCRIPTION:
//   - Stage 1: map the concrete type to a document (parameters are copied
//     through the public accessors).
//   - Stage 2: stream it with a 2-space indented yaml.Encoder.
//
// Errors:
//   - ErrNilValue, ErrUnknownKind, write errors from w.
func Encode(w io.Writer, rep decomp.Representation) error {
	doc, err := toDocument(rep)
	if err != nil {
		return ioErrorf(opMarshal, err)
	}
	if err = writeYAML(w, doc); err != nil {
		return ioErrorf(opMarshal, err)
	}

	return nil
}

// Decode reads one document from r and rebuilds the representation.
// Unknown fields are rejected.
func Decode(r io.Reader, opts ...decomp.Option) (decomp.Representation, error) {
	var doc document
	if err := readYAML(r, &doc); err != nil {
		return nil, ioErrorf(opUnmarshal, err)
	}
	rep, err := fromDocument(doc, opts)
	if err != nil {
		return nil, ioErrorf(opUnmarshal, err)
	}

	return rep, nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(indent)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func readYAML(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty input: %w", ErrMalformed)
		}
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return nil
}

func toDocument(rep decomp.Representation) (document, error) {
	if rep == nil {
		return document{}, ErrNilValue
	}
	doc := document{
		Version:   FormatVersion,
		Kind:      rep.Kind().String(),
		ModeNames: rep.ModeNames(),
		FullShape: rep.FullShape(),
	}

	var err error
	switch r := rep.(type) {
	case *decomp.CP:
		doc.Weights = r.Weights()
		doc.Factors, err = factorDocs(r.Order(), r.Factor)
	case *decomp.Tucker:
		var core *tensor.Dense
		if core, err = r.Core(); err != nil {
			return document{}, err
		}
		cd := fromTensor(core, false)
		doc.Core = &cd
		doc.Factors, err = factorDocs(r.Order(), r.Factor)
	case *decomp.Train:
		for _, c := range r.Cores() {
			doc.Cores = append(doc.Cores, fromTensor(c, false))
		}
	default:
		return document{}, fmt.Errorf("%T: %w", rep, ErrUnknownKind)
	}
	if err != nil {
		return document{}, err
	}

	return doc, nil
}

func factorDocs(n int, factor func(int) (matrix.Matrix, error)) ([]matrixDoc, error) {
	docs := make([]matrixDoc, n)
	for k := range docs {
		f, err := factor(k)
		if err != nil {
			return nil, err
		}
		if docs[k], err = fromMatrix(f); err != nil {
			return nil, fmt.Errorf("factor %d: %w", k, err)
		}
	}

	return docs, nil
}

func fromDocument(doc document, opts []decomp.Option) (decomp.Representation, error) {
	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("version %d: %w", doc.Version, ErrVersion)
	}
	kind, ok := decomp.ParseKind(doc.Kind)
	if !ok {
		return nil, fmt.Errorf("%q: %w", doc.Kind, ErrUnknownKind)
	}
	var all []decomp.Option
	if doc.ModeNames != nil {
		all = append(all, decomp.WithModeNames(doc.ModeNames...))
	}
	all = append(all, opts...)

	var (
		rep decomp.Representation
		err error
	)
	switch kind {
	case decomp.KindCP:
		rep, err = buildCP(doc, all)
	case decomp.KindTucker:
		rep, err = buildTucker(doc, all)
	case decomp.KindTrain:
		rep, err = buildTrain(doc, all)
	}
	if err != nil {
		return nil, err
	}
	// the chain check already covers tt; cp and tucker derive their shape
	if doc.FullShape != nil && !tensor.SameSizes(doc.FullShape, rep.FullShape()) {
		return nil, fmt.Errorf("full_shape %v, parameters imply %v: %w",
			doc.FullShape, rep.FullShape(), decomp.ErrShapeMismatch)
	}

	return rep, nil
}

func buildFactors(docs []matrixDoc) ([]matrix.Matrix, error) {
	if len(docs) == 0 {
		return nil, fmt.Errorf("no factors: %w", ErrMalformed)
	}
	factors := make([]matrix.Matrix, len(docs))
	for k, d := range docs {
		f, err := d.build()
		if err != nil {
			return nil, fmt.Errorf("factor %d: %w", k, err)
		}
		factors[k] = f
	}

	return factors, nil
}

func buildCP(doc document, opts []decomp.Option) (decomp.Representation, error) {
	factors, err := buildFactors(doc.Factors)
	if err != nil {
		return nil, err
	}

	return decomp.NewCP(factors, doc.Weights, opts...)
}

func buildTucker(doc document, opts []decomp.Option) (decomp.Representation, error) {
	if doc.Core == nil {
		return nil, fmt.Errorf("tucker without core: %w", ErrMalformed)
	}
	factors, err := buildFactors(doc.Factors)
	if err != nil {
		return nil, err
	}
	core, err := doc.Core.build()
	if err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}

	return decomp.NewTucker(factors, core, opts...)
}

func buildTrain(doc document, opts []decomp.Option) (decomp.Representation, error) {
	cores := make([]*tensor.Dense, len(doc.Cores))
	for k, d := range doc.Cores {
		c, err := d.build()
		if err != nil {
			return nil, fmt.Errorf("core %d: %w", k, err)
		}
		cores[k] = c
	}

	return decomp.NewTrain(cores, doc.FullShape, opts...)
}
