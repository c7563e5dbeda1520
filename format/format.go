// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

import "errors"

// Errors returned by format lookup and translation.
var (
	// ErrUnknownFormat reports a format identifier outside the descriptor
	// table. Passing an invalid identifier is a programmer error; only the
	// exported entry points report it, predicates simply return false.
	ErrUnknownFormat = errors.New("format: unknown format")

	// ErrMisalignedRegion reports translate coordinates that are not aligned
	// to the block granularity of both formats. This is a precondition
	// violation, not a user-recoverable condition.
	ErrMisalignedRegion = errors.New("format: region not aligned to block size")

	// ErrUnsupportedFormat reports that the conversion path chosen for a
	// format pair requires a pack or unpack capability one side lacks.
	ErrUnsupportedFormat = errors.New("format: no pack/unpack capability for conversion")

	// ErrIncompatibleNumericDomain reports an attempted translation between
	// signed and unsigned pure-integer formats. Integer data is never
	// silently reinterpreted in another domain.
	ErrIncompatibleNumericDomain = errors.New("format: incompatible pure integer domains")
)

// Format identifies a pixel format in the descriptor table.
type Format uint8

// Supported formats. The zero value is FormatNone.
const (
	FormatNone Format = iota

	// 8-bit plain
	R8Unorm
	R8Snorm
	R8Uint
	R8Sint
	A8Unorm
	L8Unorm
	I8Unorm
	LA8Unorm
	RG8Unorm
	RGB8Unorm

	// 32-bit plain, 8 bits per channel
	RGBA8Unorm
	RGBA8Snorm
	RGBA8Uint
	RGBA8Sint
	RGBX8Unorm
	BGRA8Unorm
	BGRX8Unorm

	// sRGB variants
	RGBA8SRGB
	RGBX8SRGB
	BGRA8SRGB

	// Packed 16-bit
	B5G6R5Unorm
	B5G5R5A1Unorm
	B5G5R5X1Unorm
	B4G4R4A4Unorm

	// Packed 32-bit
	R10G10B10A2Unorm
	R10G10B10A2Uint

	// 16 bits per channel
	R16Unorm
	L16Unorm
	R16Float
	RG16Float
	RGBA16Float
	RGBA16Uint
	RGBA16Sint

	// 32 bits per channel
	R32Float
	RG32Float
	RGBA32Float
	R32Uint
	R32Sint
	RGBA32Uint
	RGBA32Sint

	// Depth/stencil
	Z16Unorm
	Z24X8Unorm
	Z24S8Uint
	S8Uint
	Z32Float
	Z32FloatS8X24Uint

	// Subsampled YUV 4:2:2 (descriptors only, no codecs)
	UYVY
	YUYV

	// Block compressed (descriptors only, no codecs)
	DXT1RGB
	DXT1RGBA
	DXT3RGBA
	DXT5RGBA
	RGTC1Unorm
	RGTC1Snorm
	RGTC2Unorm
	RGTC2Snorm
	ETC1RGB8
	ETC2RGB8
	BPTCRGBAUnorm

	formatCount
)

// ChannelType classifies the numeric interpretation of one channel.
type ChannelType uint8

const (
	ChannelVoid ChannelType = iota
	ChannelUnsigned
	ChannelSigned
	ChannelFloat
)

// Channel describes one storage channel of a format, in memory bit order.
type Channel struct {
	Type        ChannelType
	Size        uint8 // bits
	Normalized  bool
	PureInteger bool
}

// Colorspace classifies the numeric meaning of a format's channels.
type Colorspace uint8

const (
	ColorspaceRGB Colorspace = iota
	ColorspaceSRGB
	ColorspaceZS
	ColorspaceYUV
)

// Layout classifies the storage layout of a format's blocks.
type Layout uint8

const (
	LayoutPlain Layout = iota
	LayoutS3TC
	LayoutRGTC
	LayoutETC
	LayoutBPTC
	LayoutSubsampled
)

// SwizzleChannel names the source feeding one output component: a real
// channel index (SwizzleX..SwizzleW), a constant, or nothing.
type SwizzleChannel uint8

const (
	SwizzleX SwizzleChannel = iota
	SwizzleY
	SwizzleZ
	SwizzleW
	Swizzle0
	Swizzle1
	SwizzleNone
)

// IsChannel reports whether s names a real storage channel.
func (s SwizzleChannel) IsChannel() bool { return s <= SwizzleW }

// Swizzle maps the four output components (RGBA order, or depth/stencil for
// ZS formats) to storage channels or constants.
type Swizzle [4]SwizzleChannel

// Descriptor holds the immutable metadata of one pixel format.
//
// Channels are listed in memory order: for byte-aligned layouts the first
// channel occupies the lowest addressed bytes, for bit-packed layouts the
// least significant bits of the little-endian block word.
type Descriptor struct {
	Format      Format
	Name        string
	BlockWidth  int
	BlockHeight int
	BlockBits   int
	ChannelsNr  int
	Channels    [4]Channel
	Swizzle     Swizzle
	Colorspace  Colorspace
	Layout      Layout
}

// Describe returns the descriptor for f, or ErrUnknownFormat.
// Descriptors are static singletons; callers must not mutate them.
func Describe(f Format) (*Descriptor, error) {
	if f == FormatNone || f >= formatCount {
		return nil, ErrUnknownFormat
	}
	return &descriptions[f], nil
}

// describe is the internal lookup used by predicates, which assume a valid
// identifier and degrade to the zero descriptor otherwise.
func describe(f Format) *Descriptor {
	if f == FormatNone || f >= formatCount {
		return &descriptions[FormatNone]
	}
	return &descriptions[f]
}

// BlockSize returns the byte size of one block.
func (d *Descriptor) BlockSize() int { return d.BlockBits / 8 }

// FirstNonVoidChannel returns the index of the first channel carrying
// numeric data, or -1 if the format carries none.
func (d *Descriptor) FirstNonVoidChannel() int {
	for i := 0; i < d.ChannelsNr; i++ {
		if d.Channels[i].Type != ChannelVoid {
			return i
		}
	}
	return -1
}

// channelShift returns the bit offset of channel i inside the block word.
func (d *Descriptor) channelShift(i int) uint {
	var shift uint
	for c := 0; c < i; c++ {
		shift += uint(d.Channels[c].Size)
	}
	return shift
}
