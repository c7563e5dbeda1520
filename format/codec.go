// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

// UnpackFuncs is the unpack capability table of one format. A nil member
// means the capability is absent; translation paths requiring it fail with
// ErrUnsupportedFormat instead of crashing.
//
// Byte buffers use byte strides; typed buffers (float32, uint32, int32,
// RGBA uint8) use element strides, four elements per pixel.
type UnpackFuncs struct {
	RGBAFloat  func(dst []float32, dstStride int, src []byte, srcStride int, width, height int)
	RGBA8Unorm func(dst []uint8, dstStride int, src []byte, srcStride int, width, height int)
	RGBAUint   func(dst []uint32, dstStride int, src []byte, srcStride int, width, height int)
	RGBASint   func(dst []int32, dstStride int, src []byte, srcStride int, width, height int)
	ZFloat     func(dst []float32, src []byte, width int)
	S8Uint     func(dst []uint8, src []byte, width int)
}

// PackFuncs is the pack capability table of one format, symmetric to
// UnpackFuncs.
type PackFuncs struct {
	RGBAFloat  func(dst []byte, dstStride int, src []float32, srcStride int, width, height int)
	RGBA8Unorm func(dst []byte, dstStride int, src []uint8, srcStride int, width, height int)
	RGBAUint   func(dst []byte, dstStride int, src []uint32, srcStride int, width, height int)
	RGBASint   func(dst []byte, dstStride int, src []int32, srcStride int, width, height int)
	ZFloat     func(dst []byte, src []float32, width int)
	S8Uint     func(dst []byte, src []uint8, width int)
}

var (
	unpackTable [formatCount]UnpackFuncs
	packTable   [formatCount]PackFuncs
)

// UnpackDescription returns the unpack capabilities of f. Unknown formats
// and formats without codecs (compressed, subsampled) return an empty
// table.
func UnpackDescription(f Format) *UnpackFuncs {
	if f >= formatCount {
		f = FormatNone
	}
	return &unpackTable[f]
}

// PackDescription returns the pack capabilities of f.
func PackDescription(f Format) *PackFuncs {
	if f >= formatCount {
		f = FormatNone
	}
	return &packTable[f]
}

func init() {
	for f := Format(1); f < formatCount; f++ {
		d := &descriptions[f]
		if d.Layout != LayoutPlain {
			continue // no codecs for compressed or subsampled layouts
		}
		if d.Colorspace == ColorspaceZS {
			buildZSFuncs(d, &unpackTable[f], &packTable[f])
			continue
		}
		buildPlainFuncs(d, &unpackTable[f], &packTable[f])
	}
}

// buildPlainFuncs wires the generic plain codec for one color format.
// It runs before the table init fills in Descriptor.Format, so the
// numeric domain is classified from the channel data itself.
func buildPlainFuncs(d *Descriptor, u *UnpackFuncs, p *PackFuncs) {
	bs := d.BlockSize()

	var ch Channel
	if i := d.FirstNonVoidChannel(); i >= 0 {
		ch = d.Channels[i]
	}

	if ch.PureInteger && ch.Type == ChannelUnsigned {
		u.RGBAUint = func(dst []uint32, dstStride int, src []byte, srcStride int, width, height int) {
			for y := 0; y < height; y++ {
				so, do := y*srcStride, y*dstStride
				for x := 0; x < width; x++ {
					d.unpackPixelUint(src[so+x*bs:], dst[do+x*4:do+x*4+4])
				}
			}
		}
		p.RGBAUint = func(dst []byte, dstStride int, src []uint32, srcStride int, width, height int) {
			for y := 0; y < height; y++ {
				do, so := y*dstStride, y*srcStride
				for x := 0; x < width; x++ {
					d.packPixelUint(dst[do+x*bs:], src[so+x*4:so+x*4+4])
				}
			}
		}
		return
	}

	if ch.PureInteger && ch.Type == ChannelSigned {
		u.RGBASint = func(dst []int32, dstStride int, src []byte, srcStride int, width, height int) {
			for y := 0; y < height; y++ {
				so, do := y*srcStride, y*dstStride
				for x := 0; x < width; x++ {
					d.unpackPixelSint(src[so+x*bs:], dst[do+x*4:do+x*4+4])
				}
			}
		}
		p.RGBASint = func(dst []byte, dstStride int, src []int32, srcStride int, width, height int) {
			for y := 0; y < height; y++ {
				do, so := y*dstStride, y*srcStride
				for x := 0; x < width; x++ {
					d.packPixelSint(dst[do+x*bs:], src[so+x*4:so+x*4+4])
				}
			}
		}
		return
	}

	u.RGBAFloat = func(dst []float32, dstStride int, src []byte, srcStride int, width, height int) {
		for y := 0; y < height; y++ {
			so, do := y*srcStride, y*dstStride
			for x := 0; x < width; x++ {
				var px [4]float32
				d.unpackPixelFloat(src[so+x*bs:], &px)
				copy(dst[do+x*4:do+x*4+4], px[:])
			}
		}
	}
	p.RGBAFloat = func(dst []byte, dstStride int, src []float32, srcStride int, width, height int) {
		for y := 0; y < height; y++ {
			do, so := y*dstStride, y*srcStride
			for x := 0; x < width; x++ {
				var px [4]float32
				copy(px[:], src[so+x*4:so+x*4+4])
				d.packPixelFloat(dst[do+x*bs:], &px)
			}
		}
	}
	u.RGBA8Unorm = func(dst []uint8, dstStride int, src []byte, srcStride int, width, height int) {
		for y := 0; y < height; y++ {
			so, do := y*srcStride, y*dstStride
			for x := 0; x < width; x++ {
				d.unpackPixel8Unorm(src[so+x*bs:], dst[do+x*4:do+x*4+4])
			}
		}
	}
	p.RGBA8Unorm = func(dst []byte, dstStride int, src []uint8, srcStride int, width, height int) {
		for y := 0; y < height; y++ {
			do, so := y*dstStride, y*srcStride
			for x := 0; x < width; x++ {
				d.packPixel8Unorm(dst[do+x*bs:], src[so+x*4:so+x*4+4])
			}
		}
	}
}
