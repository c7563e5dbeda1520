// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

// Compatible reports whether pixel data in the source format may be copied
// verbatim and reinterpreted as the destination format. This mostly covers
// a used channel copied into a typeless one, plus some single channel
// cases, for example:
//
//	BGRA8Unorm -> BGRX8Unorm
//	RGBA8Unorm -> RGBX8Unorm
//	B5G5R5A1Unorm -> B5G5R5X1Unorm
//	I8Unorm -> L8Unorm
//	I8Unorm -> A8Unorm
//	I8Unorm -> R8Unorm
//	L16Unorm -> R16Unorm
//	Z24S8Uint -> Z24X8Unorm
//
// Both descriptors must be plain layout with identical block bits, channel
// counts, colorspace, and per-channel sizes, and every destination
// component backed by a real channel must resolve to a source channel of
// the same numeric type and normalization.
func Compatible(src, dst *Descriptor) bool {
	if src.Format == dst.Format {
		return true
	}

	if src.Layout != LayoutPlain || dst.Layout != LayoutPlain {
		return false
	}

	if src.BlockBits != dst.BlockBits ||
		src.ChannelsNr != dst.ChannelsNr ||
		src.Colorspace != dst.Colorspace {
		return false
	}

	for ch := 0; ch < 4; ch++ {
		if src.Channels[ch].Size != dst.Channels[ch].Size {
			return false
		}
	}

	for ch := 0; ch < 4; ch++ {
		s := dst.Swizzle[ch]
		if !s.IsChannel() {
			continue
		}
		if src.Swizzle[ch] != s {
			return false
		}
		if src.Channels[s].Type != dst.Channels[s].Type ||
			src.Channels[s].Normalized != dst.Channels[s].Normalized {
			return false
		}
	}

	return true
}
