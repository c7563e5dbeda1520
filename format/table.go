// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

// Channel constructors used by the descriptor table.

func unorm(bits uint8) Channel { return Channel{Type: ChannelUnsigned, Size: bits, Normalized: true} }
func snorm(bits uint8) Channel { return Channel{Type: ChannelSigned, Size: bits, Normalized: true} }
func uint_(bits uint8) Channel { return Channel{Type: ChannelUnsigned, Size: bits, PureInteger: true} }
func sint_(bits uint8) Channel { return Channel{Type: ChannelSigned, Size: bits, PureInteger: true} }
func float_(bits uint8) Channel { return Channel{Type: ChannelFloat, Size: bits} }
func void_(bits uint8) Channel { return Channel{Type: ChannelVoid, Size: bits} }

// swz parses a four character swizzle: x y z w for real channels,
// 0 and 1 for constants, _ for none.
func swz(s string) Swizzle {
	var out Swizzle
	for i := 0; i < 4; i++ {
		switch s[i] {
		case 'x':
			out[i] = SwizzleX
		case 'y':
			out[i] = SwizzleY
		case 'z':
			out[i] = SwizzleZ
		case 'w':
			out[i] = SwizzleW
		case '0':
			out[i] = Swizzle0
		case '1':
			out[i] = Swizzle1
		default:
			out[i] = SwizzleNone
		}
	}
	return out
}

// plain builds a 1x1-block descriptor whose block size is the sum of its
// channel sizes.
func plain(name string, cs Colorspace, s string, chans ...Channel) Descriptor {
	d := Descriptor{
		Name:        name,
		BlockWidth:  1,
		BlockHeight: 1,
		ChannelsNr:  len(chans),
		Swizzle:     swz(s),
		Colorspace:  cs,
		Layout:      LayoutPlain,
	}
	for i, c := range chans {
		d.Channels[i] = c
		d.BlockBits += int(c.Size)
	}
	return d
}

// compressed builds a block-compressed descriptor. The single channel entry
// describes the post-decode data; its size does not contribute to block
// bits.
func compressed(name string, layout Layout, bw, bh, bits int, s string, ch Channel) Descriptor {
	return Descriptor{
		Name:        name,
		BlockWidth:  bw,
		BlockHeight: bh,
		BlockBits:   bits,
		ChannelsNr:  1,
		Channels:    [4]Channel{ch},
		Swizzle:     swz(s),
		Colorspace:  ColorspaceRGB,
		Layout:      layout,
	}
}

// subsampled422 builds a 2x1, 32-bit subsampled YUV descriptor.
func subsampled422(name string, s string) Descriptor {
	return Descriptor{
		Name:        name,
		BlockWidth:  2,
		BlockHeight: 1,
		BlockBits:   32,
		ChannelsNr:  4,
		Channels:    [4]Channel{unorm(8), unorm(8), unorm(8), unorm(8)},
		Swizzle:     swz(s),
		Colorspace:  ColorspaceYUV,
		Layout:      LayoutSubsampled,
	}
}

// descriptions is the static, process-wide format table. Entries are never
// mutated after init.
var descriptions = [formatCount]Descriptor{
	FormatNone: {Name: "None", BlockWidth: 1, BlockHeight: 1},

	R8Unorm:  plain("R8Unorm", ColorspaceRGB, "x001", unorm(8)),
	R8Snorm:  plain("R8Snorm", ColorspaceRGB, "x001", snorm(8)),
	R8Uint:   plain("R8Uint", ColorspaceRGB, "x001", uint_(8)),
	R8Sint:   plain("R8Sint", ColorspaceRGB, "x001", sint_(8)),
	A8Unorm:  plain("A8Unorm", ColorspaceRGB, "000x", unorm(8)),
	L8Unorm:  plain("L8Unorm", ColorspaceRGB, "xxx1", unorm(8)),
	I8Unorm:  plain("I8Unorm", ColorspaceRGB, "xxxx", unorm(8)),
	LA8Unorm: plain("LA8Unorm", ColorspaceRGB, "xxxy", unorm(8), unorm(8)),
	RG8Unorm: plain("RG8Unorm", ColorspaceRGB, "xy01", unorm(8), unorm(8)),
	RGB8Unorm: plain("RGB8Unorm", ColorspaceRGB, "xyz1",
		unorm(8), unorm(8), unorm(8)),

	RGBA8Unorm: plain("RGBA8Unorm", ColorspaceRGB, "xyzw",
		unorm(8), unorm(8), unorm(8), unorm(8)),
	RGBA8Snorm: plain("RGBA8Snorm", ColorspaceRGB, "xyzw",
		snorm(8), snorm(8), snorm(8), snorm(8)),
	RGBA8Uint: plain("RGBA8Uint", ColorspaceRGB, "xyzw",
		uint_(8), uint_(8), uint_(8), uint_(8)),
	RGBA8Sint: plain("RGBA8Sint", ColorspaceRGB, "xyzw",
		sint_(8), sint_(8), sint_(8), sint_(8)),
	RGBX8Unorm: plain("RGBX8Unorm", ColorspaceRGB, "xyz1",
		unorm(8), unorm(8), unorm(8), void_(8)),
	BGRA8Unorm: plain("BGRA8Unorm", ColorspaceRGB, "zyxw",
		unorm(8), unorm(8), unorm(8), unorm(8)),
	BGRX8Unorm: plain("BGRX8Unorm", ColorspaceRGB, "zyx1",
		unorm(8), unorm(8), unorm(8), void_(8)),

	RGBA8SRGB: plain("RGBA8SRGB", ColorspaceSRGB, "xyzw",
		unorm(8), unorm(8), unorm(8), unorm(8)),
	RGBX8SRGB: plain("RGBX8SRGB", ColorspaceSRGB, "xyz1",
		unorm(8), unorm(8), unorm(8), void_(8)),
	BGRA8SRGB: plain("BGRA8SRGB", ColorspaceSRGB, "zyxw",
		unorm(8), unorm(8), unorm(8), unorm(8)),

	B5G6R5Unorm: plain("B5G6R5Unorm", ColorspaceRGB, "zyx1",
		unorm(5), unorm(6), unorm(5)),
	B5G5R5A1Unorm: plain("B5G5R5A1Unorm", ColorspaceRGB, "zyxw",
		unorm(5), unorm(5), unorm(5), unorm(1)),
	B5G5R5X1Unorm: plain("B5G5R5X1Unorm", ColorspaceRGB, "zyx1",
		unorm(5), unorm(5), unorm(5), void_(1)),
	B4G4R4A4Unorm: plain("B4G4R4A4Unorm", ColorspaceRGB, "zyxw",
		unorm(4), unorm(4), unorm(4), unorm(4)),

	R10G10B10A2Unorm: plain("R10G10B10A2Unorm", ColorspaceRGB, "xyzw",
		unorm(10), unorm(10), unorm(10), unorm(2)),
	R10G10B10A2Uint: plain("R10G10B10A2Uint", ColorspaceRGB, "xyzw",
		uint_(10), uint_(10), uint_(10), uint_(2)),

	R16Unorm: plain("R16Unorm", ColorspaceRGB, "x001", unorm(16)),
	L16Unorm: plain("L16Unorm", ColorspaceRGB, "xxx1", unorm(16)),
	R16Float: plain("R16Float", ColorspaceRGB, "x001", float_(16)),
	RG16Float: plain("RG16Float", ColorspaceRGB, "xy01",
		float_(16), float_(16)),
	RGBA16Float: plain("RGBA16Float", ColorspaceRGB, "xyzw",
		float_(16), float_(16), float_(16), float_(16)),
	RGBA16Uint: plain("RGBA16Uint", ColorspaceRGB, "xyzw",
		uint_(16), uint_(16), uint_(16), uint_(16)),
	RGBA16Sint: plain("RGBA16Sint", ColorspaceRGB, "xyzw",
		sint_(16), sint_(16), sint_(16), sint_(16)),

	R32Float: plain("R32Float", ColorspaceRGB, "x001", float_(32)),
	RG32Float: plain("RG32Float", ColorspaceRGB, "xy01",
		float_(32), float_(32)),
	RGBA32Float: plain("RGBA32Float", ColorspaceRGB, "xyzw",
		float_(32), float_(32), float_(32), float_(32)),
	R32Uint: plain("R32Uint", ColorspaceRGB, "x001", uint_(32)),
	R32Sint: plain("R32Sint", ColorspaceRGB, "x001", sint_(32)),
	RGBA32Uint: plain("RGBA32Uint", ColorspaceRGB, "xyzw",
		uint_(32), uint_(32), uint_(32), uint_(32)),
	RGBA32Sint: plain("RGBA32Sint", ColorspaceRGB, "xyzw",
		sint_(32), sint_(32), sint_(32), sint_(32)),

	Z16Unorm:   plain("Z16Unorm", ColorspaceZS, "x___", unorm(16)),
	Z24X8Unorm: plain("Z24X8Unorm", ColorspaceZS, "x___", unorm(24), void_(8)),
	Z24S8Uint:  plain("Z24S8Uint", ColorspaceZS, "xy__", unorm(24), uint_(8)),
	S8Uint:     plain("S8Uint", ColorspaceZS, "_x__", uint_(8)),
	Z32Float:   plain("Z32Float", ColorspaceZS, "x___", float_(32)),
	Z32FloatS8X24Uint: plain("Z32FloatS8X24Uint", ColorspaceZS, "xy__",
		float_(32), uint_(8), void_(24)),

	UYVY: subsampled422("UYVY", "xyz1"),
	YUYV: subsampled422("YUYV", "xyz1"),

	DXT1RGB:  compressed("DXT1RGB", LayoutS3TC, 4, 4, 64, "xyz1", unorm(8)),
	DXT1RGBA: compressed("DXT1RGBA", LayoutS3TC, 4, 4, 64, "xyzw", unorm(8)),
	DXT3RGBA: compressed("DXT3RGBA", LayoutS3TC, 4, 4, 128, "xyzw", unorm(8)),
	DXT5RGBA: compressed("DXT5RGBA", LayoutS3TC, 4, 4, 128, "xyzw", unorm(8)),

	RGTC1Unorm: compressed("RGTC1Unorm", LayoutRGTC, 4, 4, 64, "x001", unorm(8)),
	RGTC1Snorm: compressed("RGTC1Snorm", LayoutRGTC, 4, 4, 64, "x001", snorm(8)),
	RGTC2Unorm: compressed("RGTC2Unorm", LayoutRGTC, 4, 4, 128, "xy01", unorm(8)),
	RGTC2Snorm: compressed("RGTC2Snorm", LayoutRGTC, 4, 4, 128, "xy01", snorm(8)),

	ETC1RGB8: compressed("ETC1RGB8", LayoutETC, 4, 4, 64, "xyz1", unorm(8)),
	ETC2RGB8: compressed("ETC2RGB8", LayoutETC, 4, 4, 64, "xyz1", unorm(8)),

	BPTCRGBAUnorm: compressed("BPTCRGBAUnorm", LayoutBPTC, 4, 4, 128, "xyzw", unorm(8)),
}

func init() {
	for f := Format(0); f < formatCount; f++ {
		d := &descriptions[f]
		d.Format = f
		if d.Layout == LayoutPlain && f != FormatNone {
			var bits int
			for i := 0; i < d.ChannelsNr; i++ {
				bits += int(d.Channels[i].Size)
			}
			if bits != d.BlockBits {
				panic("format: descriptor table channel sizes disagree with block bits: " + d.Name)
			}
		}
	}
}
