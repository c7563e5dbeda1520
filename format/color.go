// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

// ColorValue holds one pixel's four channel values in RGBA order after
// unpacking. Exactly one of the two arrays is meaningful for a given
// format: Uint for pure integer formats, Float otherwise.
type ColorValue struct {
	Float [4]float32
	Uint  [4]uint32
}

// ComposeSwizzles fuses two successive channel remappings into one:
// dst[i] = swz1[swz2[i]] for real channel entries, while constant and none
// entries of swz2 pass through unchanged.
func ComposeSwizzles(swz1, swz2 Swizzle) Swizzle {
	var dst Swizzle
	for i := 0; i < 4; i++ {
		if swz2[i].IsChannel() {
			dst[i] = swz1[swz2[i]]
		} else {
			dst[i] = swz2[i]
		}
	}
	return dst
}

// ApplyColorSwizzle remaps the components of src into dst, reading the
// integer or float storage as selected by isInteger. Constant entries
// write literal 0 or 1 values.
func ApplyColorSwizzle(dst, src *ColorValue, swz Swizzle, isInteger bool) {
	if isInteger {
		for c := 0; c < 4; c++ {
			switch swz[c] {
			case SwizzleX, SwizzleY, SwizzleZ, SwizzleW:
				dst.Uint[c] = src.Uint[swz[c]]
			case Swizzle1:
				dst.Uint[c] = 1
			default:
				dst.Uint[c] = 0
			}
		}
		return
	}
	for c := 0; c < 4; c++ {
		switch swz[c] {
		case SwizzleX, SwizzleY, SwizzleZ, SwizzleW:
			dst.Float[c] = src.Float[swz[c]]
		case Swizzle1:
			dst.Float[c] = 1
		default:
			dst.Float[c] = 0
		}
	}
}

// Swizzle4F remaps four float components. Entries naming a constant write
// the constant; none entries leave dst untouched.
func Swizzle4F(dst, src *[4]float32, swz Swizzle) {
	for i := 0; i < 4; i++ {
		switch {
		case swz[i].IsChannel():
			dst[i] = src[swz[i]]
		case swz[i] == Swizzle0:
			dst[i] = 0
		case swz[i] == Swizzle1:
			dst[i] = 1
		}
	}
}

// Unswizzle4F scatters each source component back to the slot the swizzle
// says it came from. Only real channel entries participate; constants are
// not un-scattered.
func Unswizzle4F(dst, src *[4]float32, swz Swizzle) {
	for i := 0; i < 4; i++ {
		if swz[i].IsChannel() {
			dst[swz[i]] = src[i]
		}
	}
}
