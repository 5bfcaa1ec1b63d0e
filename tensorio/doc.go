// SPDX-License-Identifier: MIT

// Package tensorio persists dense tensors and compressed representations as
// YAML documents.
//
// What:
//   - EncodeTensor / DecodeTensor for *tensor.Dense.
//   - Marshal / Unmarshal and Encode / Decode for decomp.Representation
//     (CP, Tucker, Tensor-Train).
//
// Why:
//   - Representations are small by construction; a readable text format lets
//     them be diffed, reviewed and shipped alongside configuration.
//
// Document layout (one document per representation):
//
//	version: 1
//	kind: cp | tucker | tt
//	mode_names: [user, item, time]
//	full_shape: [5, 6, 7]
//	weights: [...]                 # cp
//	factors: [{rows, cols, data}]  # cp, tucker
//	core: {shape, data}            # tucker
//	cores: [{shape, data}, ...]    # tt
//
// Decoding always goes through the decomp constructors, so a loaded
// representation satisfies exactly the same invariants as one built in code.
package tensorio
