// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

import (
	"bytes"
	"errors"
	"testing"
)

func TestTranslateSwapsChannels(t *testing.T) {
	// BGRA in memory: B G R A.
	src := &Surface{Stride: 16}
	for i := 0; i < 16; i++ {
		src.Pix = append(src.Pix, 0x10, 0x20, 0x30, 0x40)
	}
	src.Pix = src.Pix[:4*4*4]

	dst := &Surface{Pix: make([]byte, 4*4*4), Stride: 16}
	if err := Translate(RGBA8Unorm, dst, 0, 0, BGRA8Unorm, src, 0, 0, 4, 4); err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	for i := 0; i < 16; i++ {
		got := dst.Pix[i*4 : i*4+4]
		if want := []byte{0x30, 0x20, 0x10, 0x40}; !bytes.Equal(got, want) {
			t.Fatalf("pixel %d = % 02x, want % 02x", i, got, want)
		}
	}
}

// Copy-compatible pairs preserve raw bits, including bytes behind void
// channels.
func TestTranslateCompatiblePreservesBits(t *testing.T) {
	src := rgbaSurface(2, 2)
	dst := &Surface{Pix: make([]byte, len(src.Pix)), Stride: src.Stride}

	if err := Translate(RGBX8Unorm, dst, 0, 0, RGBA8Unorm, src, 0, 0, 2, 2); err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if !bytes.Equal(dst.Pix, src.Pix) {
		t.Error("compatible translation altered raw bytes")
	}
}

func TestTranslateUnknownFormat(t *testing.T) {
	s := rgbaSurface(1, 1)
	if err := Translate(FormatNone, s, 0, 0, RGBA8Unorm, s, 0, 0, 1, 1); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Translate(FormatNone dst) error = %v, want ErrUnknownFormat", err)
	}
	if err := Translate(RGBA8Unorm, s, 0, 0, Format(200), s, 0, 0, 1, 1); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Translate(invalid src) error = %v, want ErrUnknownFormat", err)
	}
}

func TestTranslateMisaligned(t *testing.T) {
	src := &Surface{Pix: make([]byte, 64), Stride: 16}
	dst := &Surface{Pix: make([]byte, 64), Stride: 16}

	err := Translate(RGBA8Unorm, dst, 0, 0, DXT1RGB, src, 2, 0, 4, 4)
	if !errors.Is(err, ErrMisalignedRegion) {
		t.Errorf("Translate(misaligned) error = %v, want ErrMisalignedRegion", err)
	}
}

func TestTranslateCompressedUnsupported(t *testing.T) {
	src := &Surface{Pix: make([]byte, 32), Stride: 16}
	dst := &Surface{Pix: make([]byte, 64), Stride: 16}

	err := Translate(RGBA8Unorm, dst, 0, 0, DXT1RGB, src, 0, 0, 4, 4)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Translate(DXT1 src) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestTranslateIntegerDomains(t *testing.T) {
	src := &Surface{Pix: make([]byte, 16), Stride: 16}
	dst := &Surface{Pix: make([]byte, 16), Stride: 16}

	err := Translate(RGBA8Uint, dst, 0, 0, RGBA8Sint, src, 0, 0, 4, 1)
	if !errors.Is(err, ErrIncompatibleNumericDomain) {
		t.Errorf("sint->uint error = %v, want ErrIncompatibleNumericDomain", err)
	}
	err = Translate(RGBA8Sint, dst, 0, 0, RGBA8Unorm, src, 0, 0, 4, 1)
	if !errors.Is(err, ErrIncompatibleNumericDomain) {
		t.Errorf("unorm->sint error = %v, want ErrIncompatibleNumericDomain", err)
	}
}

func TestTranslateSintWidening(t *testing.T) {
	src := &Surface{Pix: []byte{0xFF, 0x01, 0x80, 0x7F}, Stride: 4} // -1, 1, -128, 127
	dst := &Surface{Pix: make([]byte, 16), Stride: 16}

	if err := Translate(RGBA32Sint, dst, 0, 0, RGBA8Sint, src, 0, 0, 1, 1); err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	got := make([]int32, 4)
	u := UnpackDescription(RGBA32Sint)
	u.RGBASint(got, 4, dst.Pix, 16, 1, 1)

	want := []int32{-1, 1, -128, 127}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("widened = %v, want %v", got, want)
		}
	}
}

func TestTranslateUintWidening(t *testing.T) {
	src := &Surface{Pix: []byte{0, 1, 128, 255}, Stride: 4}
	dst := &Surface{Pix: make([]byte, 16), Stride: 16}

	if err := Translate(RGBA32Uint, dst, 0, 0, RGBA8Uint, src, 0, 0, 1, 1); err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	got := make([]uint32, 4)
	UnpackDescription(RGBA32Uint).RGBAUint(got, 4, dst.Pix, 16, 1, 1)

	want := []uint32{0, 1, 128, 255}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("widened = %v, want %v", got, want)
		}
	}
}

func TestTranslateDepthStencilSplit(t *testing.T) {
	// One Z24S8 pixel: depth 1.0, stencil 0x5A.
	src := &Surface{Pix: make([]byte, 4), Stride: 4}
	p := PackDescription(Z24S8Uint)
	p.ZFloat(src.Pix, []float32{1}, 1)
	p.S8Uint(src.Pix, []uint8{0x5A}, 1)

	// Depth side: stencil is silently dropped.
	zdst := &Surface{Pix: make([]byte, 4), Stride: 4}
	if err := Translate(Z32Float, zdst, 0, 0, Z24S8Uint, src, 0, 0, 1, 1); err != nil {
		t.Fatalf("Translate(Z32Float) error = %v", err)
	}
	var z [1]float32
	UnpackDescription(Z32Float).ZFloat(z[:], zdst.Pix, 1)
	if z[0] != 1 {
		t.Errorf("depth = %g, want 1", z[0])
	}

	// Stencil side: depth is silently dropped.
	sdst := &Surface{Pix: make([]byte, 1), Stride: 1}
	if err := Translate(S8Uint, sdst, 0, 0, Z24S8Uint, src, 0, 0, 1, 1); err != nil {
		t.Fatalf("Translate(S8Uint) error = %v", err)
	}
	var s [1]uint8
	UnpackDescription(S8Uint).S8Uint(s[:], sdst.Pix, 1)
	if s[0] != 0x5A {
		t.Errorf("stencil = %#x, want 0x5A", s[0])
	}
}

func TestTranslateDepthRescales(t *testing.T) {
	// Z16 half depth widens to Z24S8 through the float intermediate.
	src := &Surface{Pix: make([]byte, 2), Stride: 2}
	PackDescription(Z16Unorm).ZFloat(src.Pix, []float32{0.5}, 1)

	dst := &Surface{Pix: make([]byte, 4), Stride: 4}
	if err := Translate(Z24S8Uint, dst, 0, 0, Z16Unorm, src, 0, 0, 1, 1); err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	var z [1]float32
	UnpackDescription(Z24S8Uint).ZFloat(z[:], dst.Pix, 1)
	if diff := z[0] - 0.5; diff > 1.0/65535 || diff < -1.0/65535 {
		t.Errorf("depth = %g, want ~0.5", z[0])
	}
}

func TestTranslateFloatPath(t *testing.T) {
	// R16Float does not fit 8 unorm, forcing the float fallback.
	src := &Surface{Pix: make([]byte, 8), Stride: 8}
	PackDescription(R16Float).RGBAFloat(src.Pix, 8, []float32{0.5, 0, 0, 1, 0.25, 0, 0, 1}, 4, 2, 1)

	dst := &Surface{Pix: make([]byte, 8), Stride: 8}
	if err := Translate(R32Float, dst, 0, 0, R16Float, src, 0, 0, 2, 1); err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	got := make([]float32, 8)
	UnpackDescription(R32Float).RGBAFloat(got, 4, dst.Pix, 8, 2, 1)
	if got[0] != 0.5 || got[4] != 0.25 {
		t.Errorf("float path r values = %g, %g, want 0.5, 0.25", got[0], got[4])
	}
}

func TestTranslateSubRectangle(t *testing.T) {
	src := rgbaSurface(4, 4)
	dst := &Surface{Pix: make([]byte, 4*4*4), Stride: 16}

	// Translate the 2x2 bottom-right quadrant into the top-left, with a
	// channel swap so the generic path runs.
	if err := Translate(BGRA8Unorm, dst, 0, 0, RGBA8Unorm, src, 2, 2, 2, 2); err != nil {
		t.Fatalf("Translate() error = %v", err)
	}

	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			s := src.Pix[(y+2)*16+(x+2)*4:]
			g := dst.Pix[y*16+x*4:]
			if g[0] != s[2] || g[1] != s[1] || g[2] != s[0] || g[3] != s[3] {
				t.Fatalf("pixel (%d,%d) = % 02x, want swapped % 02x", x, y, g[:4], s[:4])
			}
		}
	}
}

func TestTranslate3D(t *testing.T) {
	const w, h, d = 2, 2, 3
	slice := w * h * 4
	src := &Surface{Pix: make([]byte, slice*d), Stride: w * 4}
	for i := range src.Pix {
		src.Pix[i] = byte(i)
	}

	dst := &Surface{Pix: make([]byte, slice*d), Stride: w * 4}
	err := Translate3D(BGRA8Unorm, dst, slice, 0, 0, 0, RGBA8Unorm, src, slice, 0, 0, 0, w, h, d)
	if err != nil {
		t.Fatalf("Translate3D() error = %v", err)
	}

	for z := 0; z < d; z++ {
		for i := 0; i < w*h; i++ {
			s := src.Pix[z*slice+i*4:]
			g := dst.Pix[z*slice+i*4:]
			if g[0] != s[2] || g[1] != s[1] || g[2] != s[0] || g[3] != s[3] {
				t.Fatalf("slice %d pixel %d = % 02x, want swapped % 02x", z, i, g[:4], s[:4])
			}
		}
	}
}

func TestReadWriteRGBA8Unorm(t *testing.T) {
	surf := &Surface{Pix: make([]byte, 2*4), Stride: 8}

	px := []uint8{1, 2, 3, 4, 5, 6, 7, 8}
	if err := WriteRGBA8Unorm(BGRA8Unorm, px, 8, surf, 0, 0, 2, 1); err != nil {
		t.Fatalf("WriteRGBA8Unorm() error = %v", err)
	}

	got := make([]uint8, 8)
	if err := ReadRGBA8Unorm(BGRA8Unorm, got, 8, surf, 0, 0, 2, 1); err != nil {
		t.Fatalf("ReadRGBA8Unorm() error = %v", err)
	}
	if !bytes.Equal(got, px) {
		t.Errorf("round trip = %v, want %v", got, px)
	}
}

func TestReadWriteRGBASint(t *testing.T) {
	surf := &Surface{Pix: make([]byte, 2), Stride: 2}

	px := []int32{-5, 0, 0, 1, 7, 0, 0, 1}
	if err := WriteRGBASint(R8Sint, px, 8, surf, 0, 0, 2, 1); err != nil {
		t.Fatalf("WriteRGBASint() error = %v", err)
	}

	got := make([]int32, 8)
	if err := ReadRGBASint(R8Sint, got, 8, surf, 0, 0, 2, 1); err != nil {
		t.Fatalf("ReadRGBASint() error = %v", err)
	}
	for i := range px {
		if got[i] != px[i] {
			t.Fatalf("round trip = %v, want %v", got, px)
		}
	}

	// Normalized formats have no signed integer capabilities.
	if err := ReadRGBASint(RGBA8Unorm, got, 8, surf, 0, 0, 1, 1); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ReadRGBASint(RGBA8Unorm) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestReadRGBAFloatUnsupported(t *testing.T) {
	surf := &Surface{Pix: make([]byte, 32), Stride: 16}
	dst := make([]float32, 64)
	err := ReadRGBAFloat(DXT1RGB, dst, 16, surf, 0, 0, 4, 4)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ReadRGBAFloat(DXT1RGB) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestToImage(t *testing.T) {
	src := &Surface{Pix: []byte{0x10, 0x20, 0x30, 0xFF}, Stride: 4}
	img, err := ToImage(BGRA8Unorm, src, 0, 0, 1, 1)
	if err != nil {
		t.Fatalf("ToImage() error = %v", err)
	}
	r, g, b, a := img.At(0, 0).RGBA()
	if r>>8 != 0x30 || g>>8 != 0x20 || b>>8 != 0x10 || a>>8 != 0xFF {
		t.Errorf("ToImage pixel = %04x %04x %04x %04x, want 30 20 10 FF", r, g, b, a)
	}
}

func TestFromImage(t *testing.T) {
	src := &Surface{Pix: []byte{1, 2, 3, 255}, Stride: 4}
	img, err := ToImage(RGBA8Unorm, src, 0, 0, 1, 1)
	if err != nil {
		t.Fatalf("ToImage() error = %v", err)
	}
	surf := FromImage(img)
	if !bytes.Equal(surf.Pix, src.Pix) {
		t.Errorf("FromImage round trip = %v, want %v", surf.Pix, src.Pix)
	}
}
