// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package format implements pixel-format description and translation.
//
// Every supported format is identified by a [Format] value indexing an
// immutable [Descriptor] table describing block dimensions, per-channel
// bit layout, colorspace, and the swizzle mapping channels to RGBA
// components. On top of the table the package provides:
//
//   - predicates deriving categorical properties (pure integer, luminance,
//     fits-in-8-bit-unorm, ...) purely from descriptor metadata
//   - a compatibility check deciding when two formats are bit-layout
//     compatible enough for a raw copy reinterpretation
//   - a strided, block-granular rectangle copy
//   - a generic translator converting rectangles between arbitrary formats
//     through an intermediate representation (8-bit normalized, signed or
//     unsigned integer, or float) chosen by format category, with a
//     split-channel path for depth/stencil
//   - swizzle composition and application utilities
//
// Pack/unpack capabilities are per-format function tables ([UnpackFuncs],
// [PackFuncs]); a nil member means the capability is absent and any
// translation path requiring it fails with [ErrUnsupportedFormat] rather
// than crashing. Compressed and subsampled formats are described but carry
// no codecs: codec internals are out of scope here.
package format
