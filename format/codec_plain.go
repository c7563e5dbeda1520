// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

import "math"

// The generic plain-format codec derives pack/unpack functions from the
// descriptor bit layout alone. Channels are stored little-endian: the
// first channel occupies the lowest bits of the block word (equivalently
// the lowest addressed bytes when every channel is byte aligned).

// byteAligned reports whether every channel of d starts and ends on a byte
// boundary, allowing per-channel byte access for blocks wider than 64 bits.
func (d *Descriptor) byteAligned() bool {
	for i := 0; i < d.ChannelsNr; i++ {
		if d.Channels[i].Size%8 != 0 {
			return false
		}
	}
	return true
}

// readRaw extracts the raw channel bits of one pixel.
func (d *Descriptor) readRaw(src []byte, vals *[4]uint64) {
	if d.byteAligned() {
		off := 0
		for i := 0; i < d.ChannelsNr; i++ {
			n := int(d.Channels[i].Size) / 8
			var v uint64
			for b := n - 1; b >= 0; b-- {
				v = v<<8 | uint64(src[off+b])
			}
			vals[i] = v
			off += n
		}
		return
	}

	// Bit packed: the whole block fits one little-endian word.
	var word uint64
	for b := d.BlockSize() - 1; b >= 0; b-- {
		word = word<<8 | uint64(src[b])
	}
	var shift uint
	for i := 0; i < d.ChannelsNr; i++ {
		size := uint(d.Channels[i].Size)
		vals[i] = word >> shift & (1<<size - 1)
		shift += size
	}
}

// writeRaw stores the raw channel bits of one pixel. Void channels are
// written as zero.
func (d *Descriptor) writeRaw(dst []byte, vals *[4]uint64) {
	if d.byteAligned() {
		off := 0
		for i := 0; i < d.ChannelsNr; i++ {
			n := int(d.Channels[i].Size) / 8
			v := vals[i]
			for b := 0; b < n; b++ {
				dst[off+b] = byte(v)
				v >>= 8
			}
			off += n
		}
		return
	}

	var word uint64
	var shift uint
	for i := 0; i < d.ChannelsNr; i++ {
		size := uint(d.Channels[i].Size)
		word |= (vals[i] & (1<<size - 1)) << shift
		shift += size
	}
	for b := 0; b < d.BlockSize(); b++ {
		dst[b] = byte(word)
		word >>= 8
	}
}

// signExtend interprets the low size bits of raw as two's complement.
func signExtend(raw uint64, size uint8) int64 {
	shift := 64 - uint(size)
	return int64(raw<<shift) >> shift
}

// channelToFloat decodes one raw channel value.
func channelToFloat(c Channel, raw uint64) float32 {
	switch c.Type {
	case ChannelUnsigned:
		if c.Normalized {
			return float32(raw) / float32(uint64(1)<<c.Size-1)
		}
		return float32(raw)
	case ChannelSigned:
		v := signExtend(raw, c.Size)
		if c.Normalized {
			f := float32(v) / float32(int64(1)<<(c.Size-1)-1)
			if f < -1 {
				f = -1
			}
			return f
		}
		return float32(v)
	case ChannelFloat:
		switch c.Size {
		case 16:
			return f16to32(uint16(raw))
		case 32:
			return math.Float32frombits(uint32(raw))
		case 64:
			return float32(math.Float64frombits(raw))
		}
	}
	return 0
}

// floatToChannel encodes v into the raw representation of channel c,
// clamping to the representable range.
func floatToChannel(c Channel, v float32) uint64 {
	switch c.Type {
	case ChannelUnsigned:
		if c.Normalized {
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			max := float64(uint64(1)<<c.Size - 1)
			return uint64(float64(v)*max + 0.5)
		}
		if v < 0 {
			v = 0
		}
		return uint64(v)
	case ChannelSigned:
		if c.Normalized {
			if v < -1 {
				v = -1
			} else if v > 1 {
				v = 1
			}
			max := float64(int64(1)<<(c.Size-1) - 1)
			r := math.Round(float64(v) * max)
			return uint64(int64(r)) & (1<<c.Size - 1)
		}
		return uint64(int64(v)) & (1<<c.Size - 1)
	case ChannelFloat:
		switch c.Size {
		case 16:
			return uint64(f32to16(v))
		case 32:
			return uint64(math.Float32bits(v))
		case 64:
			return math.Float64bits(float64(v))
		}
	}
	return 0
}

// unpackPixelFloat decodes one pixel into linear RGBA floats.
func (d *Descriptor) unpackPixelFloat(src []byte, out *[4]float32) {
	var raw [4]uint64
	d.readRaw(src, &raw)

	var vals [4]float32
	for i := 0; i < d.ChannelsNr; i++ {
		vals[i] = channelToFloat(d.Channels[i], raw[i])
	}

	for i := 0; i < 4; i++ {
		switch s := d.Swizzle[i]; {
		case s.IsChannel():
			out[i] = vals[s]
		case s == Swizzle1:
			out[i] = 1
		default:
			out[i] = 0
		}
	}

	if d.Colorspace == ColorspaceSRGB {
		out[0] = srgbToLinear(out[0])
		out[1] = srgbToLinear(out[1])
		out[2] = srgbToLinear(out[2])
	}
}

// packPixelFloat encodes linear RGBA floats into one pixel.
func (d *Descriptor) packPixelFloat(dst []byte, in *[4]float32) {
	rgba := *in
	if d.Colorspace == ColorspaceSRGB {
		rgba[0] = linearToSrgb(rgba[0])
		rgba[1] = linearToSrgb(rgba[1])
		rgba[2] = linearToSrgb(rgba[2])
	}

	var raw [4]uint64
	for i := 0; i < d.ChannelsNr; i++ {
		if d.Channels[i].Type == ChannelVoid {
			continue
		}
		// The first output component the swizzle maps onto this channel
		// supplies its value.
		for j := 0; j < 4; j++ {
			if d.Swizzle[j] == SwizzleChannel(i) {
				raw[i] = floatToChannel(d.Channels[i], rgba[j])
				break
			}
		}
	}
	d.writeRaw(dst, &raw)
}

// unorm8Layout reports whether every channel is void or 8-bit unsigned
// normalized, enabling the byte-swizzle fast path for the 8-unorm
// intermediate.
func (d *Descriptor) unorm8Layout() bool {
	if d.Layout != LayoutPlain || d.Colorspace != ColorspaceRGB {
		return false
	}
	for i := 0; i < d.ChannelsNr; i++ {
		c := d.Channels[i]
		if c.Type == ChannelVoid {
			if c.Size != 8 {
				return false
			}
			continue
		}
		if c.Type != ChannelUnsigned || !c.Normalized || c.Size != 8 {
			return false
		}
	}
	return true
}

// unpackPixel8Unorm decodes one pixel into 8-bit unsigned normalized RGBA.
func (d *Descriptor) unpackPixel8Unorm(src []byte, out []uint8) {
	if d.unorm8Layout() {
		for i := 0; i < 4; i++ {
			switch s := d.Swizzle[i]; {
			case s.IsChannel():
				out[i] = src[s]
			case s == Swizzle1:
				out[i] = 255
			default:
				out[i] = 0
			}
		}
		return
	}

	var rgba [4]float32
	d.unpackPixelFloat(src, &rgba)
	for i := 0; i < 4; i++ {
		v := rgba[i]
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		out[i] = uint8(v*255 + 0.5)
	}
}

// packPixel8Unorm encodes 8-bit unsigned normalized RGBA into one pixel.
func (d *Descriptor) packPixel8Unorm(dst []byte, in []uint8) {
	if d.unorm8Layout() {
		for i := 0; i < d.ChannelsNr; i++ {
			if d.Channels[i].Type == ChannelVoid {
				dst[i] = 0
				continue
			}
			dst[i] = 0
			for j := 0; j < 4; j++ {
				if d.Swizzle[j] == SwizzleChannel(i) {
					dst[i] = in[j]
					break
				}
			}
		}
		return
	}

	var rgba [4]float32
	for i := 0; i < 4; i++ {
		rgba[i] = float32(in[i]) / 255
	}
	d.packPixelFloat(dst, &rgba)
}

// unpackPixelUint decodes one pure unsigned integer pixel.
func (d *Descriptor) unpackPixelUint(src []byte, out []uint32) {
	var raw [4]uint64
	d.readRaw(src, &raw)
	for i := 0; i < 4; i++ {
		switch s := d.Swizzle[i]; {
		case s.IsChannel():
			out[i] = uint32(raw[s])
		case s == Swizzle1:
			out[i] = 1
		default:
			out[i] = 0
		}
	}
}

// packPixelUint encodes one pure unsigned integer pixel, clamping each
// channel to its representable range.
func (d *Descriptor) packPixelUint(dst []byte, in []uint32) {
	var raw [4]uint64
	for i := 0; i < d.ChannelsNr; i++ {
		if d.Channels[i].Type == ChannelVoid {
			continue
		}
		for j := 0; j < 4; j++ {
			if d.Swizzle[j] == SwizzleChannel(i) {
				v := uint64(in[j])
				if max := uint64(1)<<d.Channels[i].Size - 1; v > max {
					v = max
				}
				raw[i] = v
				break
			}
		}
	}
	d.writeRaw(dst, &raw)
}

// unpackPixelSint decodes one pure signed integer pixel.
func (d *Descriptor) unpackPixelSint(src []byte, out []int32) {
	var raw [4]uint64
	d.readRaw(src, &raw)
	for i := 0; i < 4; i++ {
		switch s := d.Swizzle[i]; {
		case s.IsChannel():
			out[i] = int32(signExtend(raw[s], d.Channels[s].Size))
		case s == Swizzle1:
			out[i] = 1
		default:
			out[i] = 0
		}
	}
}

// packPixelSint encodes one pure signed integer pixel, clamping each
// channel to its representable range.
func (d *Descriptor) packPixelSint(dst []byte, in []int32) {
	var raw [4]uint64
	for i := 0; i < d.ChannelsNr; i++ {
		if d.Channels[i].Type == ChannelVoid {
			continue
		}
		for j := 0; j < 4; j++ {
			if d.Swizzle[j] == SwizzleChannel(i) {
				size := d.Channels[i].Size
				v := int64(in[j])
				min := -(int64(1) << (size - 1))
				max := int64(1)<<(size-1) - 1
				if v < min {
					v = min
				} else if v > max {
					v = max
				}
				raw[i] = uint64(v) & (1<<size - 1)
				break
			}
		}
	}
	d.writeRaw(dst, &raw)
}
