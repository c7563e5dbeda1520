// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

import "math"

// Depth/stencil formats follow a swizzle convention: position zero names
// the depth channel, position one the stencil channel. Either may be
// absent, in which case the matching capabilities are nil.

// buildZSFuncs wires the split-channel depth/stencil codecs for one
// format. All ZS formats use 1x1 blocks.
func buildZSFuncs(d *Descriptor, u *UnpackFuncs, p *PackFuncs) {
	bs := d.BlockSize()

	if zs := d.Swizzle[0]; zs.IsChannel() {
		c := d.Channels[zs]
		shift := d.channelShift(int(zs))

		u.ZFloat = func(dst []float32, src []byte, width int) {
			for x := 0; x < width; x++ {
				var raw [4]uint64
				d.readRaw(src[x*bs:], &raw)
				dst[x] = depthToFloat(c, raw[zs])
			}
		}
		p.ZFloat = func(dst []byte, src []float32, width int) {
			for x := 0; x < width; x++ {
				writeChannelBits(dst[x*bs:], shift, uint(c.Size), depthFromFloat(c, src[x]))
			}
		}
	}

	if ss := d.Swizzle[1]; ss.IsChannel() {
		c := d.Channels[ss]
		shift := d.channelShift(int(ss))

		u.S8Uint = func(dst []uint8, src []byte, width int) {
			for x := 0; x < width; x++ {
				var raw [4]uint64
				d.readRaw(src[x*bs:], &raw)
				dst[x] = uint8(raw[ss])
			}
		}
		p.S8Uint = func(dst []byte, src []uint8, width int) {
			for x := 0; x < width; x++ {
				writeChannelBits(dst[x*bs:], shift, uint(c.Size), uint64(src[x]))
			}
		}
	}
}

// depthToFloat decodes one depth channel value.
func depthToFloat(c Channel, raw uint64) float32 {
	if c.Type == ChannelFloat {
		return math.Float32frombits(uint32(raw))
	}
	// Unsigned normalized; up to 32 bits, so convert through float64.
	return float32(float64(raw) / float64(uint64(1)<<c.Size-1))
}

// depthFromFloat encodes one depth channel value, clamping normalized
// depth to [0, 1].
func depthFromFloat(c Channel, v float32) uint64 {
	if c.Type == ChannelFloat {
		return uint64(math.Float32bits(v))
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	max := float64(uint64(1)<<c.Size - 1)
	return uint64(float64(v)*max + 0.5)
}

// writeChannelBits updates only the bits of one channel inside a block,
// preserving the other channels. Depth and stencil are packed and
// unpacked independently, so a partial update must not clobber its
// sibling channel.
func writeChannelBits(dst []byte, shift, size uint, val uint64) {
	for size > 0 {
		b := shift / 8
		bit := shift % 8
		n := 8 - bit
		if n > size {
			n = size
		}
		mask := byte((1<<n - 1) << bit)
		dst[b] = dst[b]&^mask | byte(val<<bit)&mask
		val >>= n
		shift += n
		size -= n
	}
}
