// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

import (
	"bytes"
	"testing"
)

// rgbaSurface builds a width x height RGBA8 surface with each pixel set to
// its linear index.
func rgbaSurface(width, height int) *Surface {
	pix := make([]byte, width*height*4)
	for i := 0; i < width*height; i++ {
		pix[i*4+0] = byte(i)
		pix[i*4+1] = byte(i >> 8)
		pix[i*4+2] = 0x55
		pix[i*4+3] = 0xFF
	}
	return &Surface{Pix: pix, Stride: width * 4}
}

func TestCopyRect(t *testing.T) {
	src := rgbaSurface(4, 4)
	dst := &Surface{Pix: make([]byte, 4*4*4), Stride: 16}

	CopyRect(RGBA8Unorm, dst, 0, 0, src, 0, 0, 4, 4)
	if !bytes.Equal(dst.Pix, src.Pix) {
		t.Error("full copy differs from source")
	}
}

func TestCopyRectSubRegion(t *testing.T) {
	src := rgbaSurface(4, 4)
	dst := &Surface{Pix: make([]byte, 4*4*4), Stride: 16}

	// Copy the 2x2 center into the top-left corner.
	CopyRect(RGBA8Unorm, dst, 0, 0, src, 1, 1, 2, 2)

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			want := src.Pix[(y+1)*16+(x+1)*4 : (y+1)*16+(x+1)*4+4]
			got := dst.Pix[y*16+x*4 : y*16+x*4+4]
			if !bytes.Equal(got, want) {
				t.Fatalf("pixel (%d,%d) = % 02x, want % 02x", x, y, got, want)
			}
		}
	}
}

// A negative source stride walks the source bottom-up, flipping vertically.
func TestCopyRectNegativeStrideFlips(t *testing.T) {
	src := rgbaSurface(2, 3)
	flipped := &Surface{Pix: src.Pix, Stride: -src.Stride, Origin: 2 * src.Stride}

	dst := &Surface{Pix: make([]byte, 2*3*4), Stride: 8}
	CopyRect(RGBA8Unorm, dst, 0, 0, flipped, 0, 0, 2, 3)

	for y := 0; y < 3; y++ {
		want := src.Pix[(2-y)*8 : (2-y)*8+8]
		got := dst.Pix[y*8 : y*8+8]
		if !bytes.Equal(got, want) {
			t.Fatalf("row %d = % 02x, want % 02x", y, got, want)
		}
	}
}

func TestCopyRectBlockFormat(t *testing.T) {
	// DXT1 blocks are 4x4 pixels, 8 bytes. A 8x4 pixel copy moves two
	// blocks.
	src := &Surface{Pix: make([]byte, 16), Stride: 16}
	for i := range src.Pix {
		src.Pix[i] = byte(i + 1)
	}
	dst := &Surface{Pix: make([]byte, 16), Stride: 16}

	CopyRect(DXT1RGB, dst, 0, 0, src, 0, 0, 8, 4)
	if !bytes.Equal(dst.Pix, src.Pix) {
		t.Error("block copy differs from source")
	}
}
