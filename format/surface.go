// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

// Surface is a strided view over pixel memory. Origin is the byte offset of
// row zero, pixel zero; Stride is the byte distance between rows and may be
// negative to walk a buffer bottom-up (vertical flip). Sub-rectangles are
// expressed in pixel units per call; block formats require the coordinates
// to be aligned to block granularity.
type Surface struct {
	Pix    []byte
	Stride int
	Origin int
}

// rowOffset returns the byte offset of block row y.
func (s *Surface) rowOffset(y int) int {
	return s.Origin + y*s.Stride
}

// slice returns a copy of the view with its origin advanced by off bytes.
// Used by the 3D translator to step through depth slices.
func (s *Surface) slice(off int) Surface {
	return Surface{Pix: s.Pix, Stride: s.Stride, Origin: s.Origin + off}
}

// CopyRect copies a 2D rectangle of pixels between two views of the same
// format. Position and sizes are in pixels and are converted to block
// granularity; width and height round up to whole blocks. The source
// stride may be negative to flip vertically.
func CopyRect(f Format, dst *Surface, dstX, dstY int, src *Surface, srcX, srcY, width, height int) {
	d := describe(f)
	blocksize := d.BlockSize()
	blockwidth := d.BlockWidth
	blockheight := d.BlockHeight

	dstX /= blockwidth
	dstY /= blockheight
	width = (width + blockwidth - 1) / blockwidth
	height = (height + blockheight - 1) / blockheight
	srcX /= blockwidth
	srcY /= blockheight

	do := dst.rowOffset(dstY) + dstX*blocksize
	so := src.rowOffset(srcY) + srcX*blocksize
	rowBytes := width * blocksize

	if rowBytes == dst.Stride && rowBytes == src.Stride {
		copy(dst.Pix[do:do+height*rowBytes], src.Pix[so:so+height*rowBytes])
		return
	}

	for i := 0; i < height; i++ {
		copy(dst.Pix[do:do+rowBytes], src.Pix[so:so+rowBytes])
		do += dst.Stride
		so += src.Stride
	}
}
