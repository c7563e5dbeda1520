// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

// Predicates derive categorical properties from descriptor metadata only.
// They assume a valid format identifier and return false for an unknown
// one; callers that need an explicit failure should use Describe first.

// IsFloat reports whether the first non-void channel is floating point.
func IsFloat(f Format) bool {
	d := describe(f)
	i := d.FirstNonVoidChannel()
	if i < 0 {
		return false
	}
	return d.Channels[i].Type == ChannelFloat
}

// HasAlpha reports whether the format carries a real alpha channel:
// an RGB or sRGB colorspace whose alpha swizzle is not the constant one.
func HasAlpha(f Format) bool {
	d := describe(f)
	return (d.Colorspace == ColorspaceRGB || d.Colorspace == ColorspaceSRGB) &&
		d.Swizzle[3] != Swizzle1
}

// IsLuminance reports whether all color components alias channel zero and
// alpha is the constant one.
func IsLuminance(f Format) bool {
	d := describe(f)
	return (d.Colorspace == ColorspaceRGB || d.Colorspace == ColorspaceSRGB) &&
		d.Swizzle[0] == SwizzleX &&
		d.Swizzle[1] == SwizzleX &&
		d.Swizzle[2] == SwizzleX &&
		d.Swizzle[3] == Swizzle1
}

// IsAlpha reports whether the format is alpha-only.
func IsAlpha(f Format) bool {
	d := describe(f)
	return (d.Colorspace == ColorspaceRGB || d.Colorspace == ColorspaceSRGB) &&
		d.Swizzle[0] == Swizzle0 &&
		d.Swizzle[1] == Swizzle0 &&
		d.Swizzle[2] == Swizzle0 &&
		d.Swizzle[3] == SwizzleX
}

// IsLuminanceAlpha reports whether color components alias channel zero and
// alpha aliases channel one.
func IsLuminanceAlpha(f Format) bool {
	d := describe(f)
	return (d.Colorspace == ColorspaceRGB || d.Colorspace == ColorspaceSRGB) &&
		d.Swizzle[0] == SwizzleX &&
		d.Swizzle[1] == SwizzleX &&
		d.Swizzle[2] == SwizzleX &&
		d.Swizzle[3] == SwizzleY
}

// IsIntensity reports whether all four components alias channel zero.
func IsIntensity(f Format) bool {
	d := describe(f)
	return (d.Colorspace == ColorspaceRGB || d.Colorspace == ColorspaceSRGB) &&
		d.Swizzle[0] == SwizzleX &&
		d.Swizzle[1] == SwizzleX &&
		d.Swizzle[2] == SwizzleX &&
		d.Swizzle[3] == SwizzleX
}

// IsPureInteger reports whether the format carries unnormalized integer
// data. Formats with no numeric channels report false.
func IsPureInteger(f Format) bool {
	d := describe(f)
	i := d.FirstNonVoidChannel()
	if i < 0 {
		return false
	}
	return d.Channels[i].PureInteger
}

// IsPureSint reports whether the format is signed pure integer.
func IsPureSint(f Format) bool {
	d := describe(f)
	i := d.FirstNonVoidChannel()
	if i < 0 {
		return false
	}
	return d.Channels[i].Type == ChannelSigned && d.Channels[i].PureInteger
}

// IsPureUint reports whether the format is unsigned pure integer.
func IsPureUint(f Format) bool {
	d := describe(f)
	i := d.FirstNonVoidChannel()
	if i < 0 {
		return false
	}
	return d.Channels[i].Type == ChannelUnsigned && d.Channels[i].PureInteger
}

// IsUnorm reports whether the format contains normalized unsigned channels.
func IsUnorm(f Format) bool {
	d := describe(f)
	for i := 0; i < d.ChannelsNr; i++ {
		c := d.Channels[i]
		if c.Type == ChannelUnsigned && c.Normalized {
			return true
		}
	}
	return false
}

// IsSnorm reports whether the format contains normalized signed channels.
func IsSnorm(f Format) bool {
	d := describe(f)
	for i := 0; i < d.ChannelsNr; i++ {
		c := d.Channels[i]
		if c.Type == ChannelSigned && c.Normalized {
			return true
		}
	}
	return false
}

// isMixed reports whether the format mixes differently typed numeric
// channels.
func isMixed(d *Descriptor) bool {
	first := d.FirstNonVoidChannel()
	if first < 0 {
		return false
	}
	ref := d.Channels[first]
	for i := first + 1; i < d.ChannelsNr; i++ {
		c := d.Channels[i]
		if c.Type == ChannelVoid {
			continue
		}
		if c.Type != ref.Type || c.Normalized != ref.Normalized ||
			c.PureInteger != ref.PureInteger {
			return true
		}
	}
	return false
}

// IsSnorm8 reports whether the format is uniformly 8-bit signed normalized.
func IsSnorm8(f Format) bool {
	d := describe(f)
	if isMixed(d) {
		return false
	}
	i := d.FirstNonVoidChannel()
	if i < 0 {
		return false
	}
	c := d.Channels[i]
	return c.Type == ChannelSigned && !c.PureInteger && c.Normalized && c.Size == 8
}

// IsSRGB reports whether the format stores sRGB encoded color.
func IsSRGB(f Format) bool {
	return describe(f).Colorspace == ColorspaceSRGB
}

// IsDepthOrStencil reports whether the format belongs to the depth/stencil
// colorspace.
func IsDepthOrStencil(f Format) bool {
	return describe(f).Colorspace == ColorspaceZS
}

// HasDepth reports whether a depth channel is present.
func HasDepth(f Format) bool {
	d := describe(f)
	return d.Colorspace == ColorspaceZS && d.Swizzle[0].IsChannel()
}

// HasStencil reports whether a stencil channel is present.
func HasStencil(f Format) bool {
	d := describe(f)
	return d.Colorspace == ColorspaceZS && d.Swizzle[1].IsChannel()
}

// IsCompressed reports whether the format uses a block-compressed layout.
func IsCompressed(f Format) bool {
	switch describe(f).Layout {
	case LayoutS3TC, LayoutRGTC, LayoutETC, LayoutBPTC:
		return true
	}
	return false
}

// IsSubsampled422 reports whether the format is 4:2:2 subsampled: a
// 2x1-pixel, 32-bit block.
func IsSubsampled422(f Format) bool {
	d := describe(f)
	return d.Layout == LayoutSubsampled &&
		d.BlockWidth == 2 && d.BlockHeight == 1 && d.BlockBits == 32
}

// Fits8Unorm reports whether the format's data survives a round trip
// through an 8-bit unsigned normalized intermediate without loss.
//
// sRGB never fits: linearized values need more than 8 bits. Compressed
// layouts are enumerated case by case; plain layouts fit iff every channel
// is void or unsigned normalized with at most 8 bits.
func Fits8Unorm(d *Descriptor) bool {
	if d.Colorspace == ColorspaceSRGB {
		return false
	}

	switch d.Layout {
	case LayoutS3TC:
		return true

	case LayoutRGTC:
		switch d.Format {
		case RGTC1Snorm, RGTC2Snorm:
			return false
		}
		return true

	case LayoutBPTC:
		return d.Format == BPTCRGBAUnorm

	case LayoutETC:
		return d.Format == ETC1RGB8

	case LayoutPlain:
		for i := 0; i < d.ChannelsNr; i++ {
			switch d.Channels[i].Type {
			case ChannelVoid:
			case ChannelUnsigned:
				if !d.Channels[i].Normalized || d.Channels[i].Size > 8 {
					return false
				}
			default:
				return false
			}
		}
		return true

	default:
		switch d.Format {
		case UYVY, YUYV:
			return true
		}
		return false
	}
}
