// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

// DepthBiasMRD returns the minimum resolvable difference of a depth format,
// used in depth bias computation for normalized and unbound depth buffers.
// Floating point depth buffers do not use the MRD; they still get the
// default of an unbound buffer, which behaves as 24-bit normalized.
func DepthBiasMRD(d *Descriptor) float64 {
	mrd := 1.0 / float64((uint64(1)<<24)-1)

	// The depth component is not always channel zero; the ZS swizzle
	// convention names it in position zero.
	depth := d.Swizzle[0]
	if !depth.IsChannel() {
		return mrd
	}

	c := d.Channels[depth]
	if c.Type == ChannelUnsigned && c.Normalized {
		mrd = 1.0 / float64((uint64(1)<<c.Size)-1)
	}

	return mrd
}

// Snorm8ToSint8 maps an 8-bit signed normalized format onto its pure
// integer twin so the raw channel bits can be fetched unscaled. Formats
// without such a twin map to themselves.
func Snorm8ToSint8(f Format) Format {
	switch f {
	case R8Snorm:
		return R8Sint
	case RGBA8Snorm:
		return RGBA8Sint
	default:
		return f
	}
}
