// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

// Rectangle accessors over the capability table. These are thin wrappers
// used by callers that keep their working data in one intermediate
// representation and only touch formatted memory at the edges.

// rectOffset validates block alignment and returns the byte offset of the
// rectangle origin.
func rectOffset(d *Descriptor, s *Surface, x, y int) (int, error) {
	if x%d.BlockWidth != 0 || y%d.BlockHeight != 0 {
		return 0, ErrMisalignedRegion
	}
	return s.rowOffset(y/d.BlockHeight) + x/d.BlockWidth*d.BlockSize(), nil
}

// ReadRGBAFloat unpacks a rectangle into float RGBA.
func ReadRGBAFloat(f Format, dst []float32, dstStride int, src *Surface, x, y, width, height int) error {
	d, err := Describe(f)
	if err != nil {
		return err
	}
	off, err := rectOffset(d, src, x, y)
	if err != nil {
		return err
	}
	unpack := UnpackDescription(f)
	if unpack.RGBAFloat == nil {
		return ErrUnsupportedFormat
	}
	unpack.RGBAFloat(dst, dstStride, src.Pix[off:], src.Stride, width, height)
	return nil
}

// WriteRGBAFloat packs a rectangle from float RGBA.
func WriteRGBAFloat(f Format, src []float32, srcStride int, dst *Surface, x, y, width, height int) error {
	d, err := Describe(f)
	if err != nil {
		return err
	}
	off, err := rectOffset(d, dst, x, y)
	if err != nil {
		return err
	}
	pack := PackDescription(f)
	if pack.RGBAFloat == nil {
		return ErrUnsupportedFormat
	}
	pack.RGBAFloat(dst.Pix[off:], dst.Stride, src, srcStride, width, height)
	return nil
}

// ReadRGBA8Unorm unpacks a rectangle into 8-bit unorm RGBA.
func ReadRGBA8Unorm(f Format, dst []uint8, dstStride int, src *Surface, x, y, width, height int) error {
	d, err := Describe(f)
	if err != nil {
		return err
	}
	off, err := rectOffset(d, src, x, y)
	if err != nil {
		return err
	}
	unpack := UnpackDescription(f)
	if unpack.RGBA8Unorm == nil {
		return ErrUnsupportedFormat
	}
	unpack.RGBA8Unorm(dst, dstStride, src.Pix[off:], src.Stride, width, height)
	return nil
}

// WriteRGBA8Unorm packs a rectangle from 8-bit unorm RGBA.
func WriteRGBA8Unorm(f Format, src []uint8, srcStride int, dst *Surface, x, y, width, height int) error {
	d, err := Describe(f)
	if err != nil {
		return err
	}
	off, err := rectOffset(d, dst, x, y)
	if err != nil {
		return err
	}
	pack := PackDescription(f)
	if pack.RGBA8Unorm == nil {
		return ErrUnsupportedFormat
	}
	pack.RGBA8Unorm(dst.Pix[off:], dst.Stride, src, srcStride, width, height)
	return nil
}

// ReadRGBAUint unpacks a pure unsigned integer rectangle into uint32 RGBA.
func ReadRGBAUint(f Format, dst []uint32, dstStride int, src *Surface, x, y, width, height int) error {
	d, err := Describe(f)
	if err != nil {
		return err
	}
	off, err := rectOffset(d, src, x, y)
	if err != nil {
		return err
	}
	unpack := UnpackDescription(f)
	if unpack.RGBAUint == nil {
		return ErrUnsupportedFormat
	}
	unpack.RGBAUint(dst, dstStride, src.Pix[off:], src.Stride, width, height)
	return nil
}

// WriteRGBAUint packs a pure unsigned integer rectangle from uint32 RGBA.
func WriteRGBAUint(f Format, src []uint32, srcStride int, dst *Surface, x, y, width, height int) error {
	d, err := Describe(f)
	if err != nil {
		return err
	}
	off, err := rectOffset(d, dst, x, y)
	if err != nil {
		return err
	}
	pack := PackDescription(f)
	if pack.RGBAUint == nil {
		return ErrUnsupportedFormat
	}
	pack.RGBAUint(dst.Pix[off:], dst.Stride, src, srcStride, width, height)
	return nil
}

// ReadRGBASint unpacks a pure signed integer rectangle into int32 RGBA.
func ReadRGBASint(f Format, dst []int32, dstStride int, src *Surface, x, y, width, height int) error {
	d, err := Describe(f)
	if err != nil {
		return err
	}
	off, err := rectOffset(d, src, x, y)
	if err != nil {
		return err
	}
	unpack := UnpackDescription(f)
	if unpack.RGBASint == nil {
		return ErrUnsupportedFormat
	}
	unpack.RGBASint(dst, dstStride, src.Pix[off:], src.Stride, width, height)
	return nil
}

// WriteRGBASint packs a pure signed integer rectangle from int32 RGBA.
func WriteRGBASint(f Format, src []int32, srcStride int, dst *Surface, x, y, width, height int) error {
	d, err := Describe(f)
	if err != nil {
		return err
	}
	off, err := rectOffset(d, dst, x, y)
	if err != nil {
		return err
	}
	pack := PackDescription(f)
	if pack.RGBASint == nil {
		return ErrUnsupportedFormat
	}
	pack.RGBASint(dst.Pix[off:], dst.Stride, src, srcStride, width, height)
	return nil
}
