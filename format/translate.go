// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

import (
	"github.com/gogpu/pipecore"
)

// Translate converts a rectangle of pixels from one format to another.
//
// Copy-compatible format pairs degrade to a raw rectangle copy preserving
// exact bits (and tolerating a negative source stride). Every other pair
// requires block-aligned coordinates on both sides and non-negative
// strides, and is routed through an intermediate representation chosen by
// format category:
//
//   - depth/stencil formats split into independent depth (float) and
//     stencil (8-bit) scanline conversions; a channel absent on either
//     side is skipped silently
//   - pure signed integer formats convert through int32 RGBA; mixing
//     signed with any other domain fails with ErrIncompatibleNumericDomain
//   - pure unsigned integer formats convert through uint32 RGBA
//   - formats fitting 8-bit unorm batch through an 8-bit RGBA buffer
//   - everything else falls back to float RGBA, the precision-lossy
//     general case
//
// A required capability absent on either side yields ErrUnsupportedFormat.
// On failure the destination contents are unspecified: the depth/stencil
// and batch paths may have written part of the rectangle.
func Translate(dstFormat Format, dst *Surface, dstX, dstY int, srcFormat Format, src *Surface, srcX, srcY, width, height int) error {
	dstDesc, err := Describe(dstFormat)
	if err != nil {
		return err
	}
	srcDesc, err := Describe(srcFormat)
	if err != nil {
		return err
	}

	if Compatible(srcDesc, dstDesc) {
		CopyRect(dstFormat, dst, dstX, dstY, src, srcX, srcY, width, height)
		return nil
	}

	if dstX%dstDesc.BlockWidth != 0 || dstY%dstDesc.BlockHeight != 0 ||
		srcX%srcDesc.BlockWidth != 0 || srcY%srcDesc.BlockHeight != 0 {
		return ErrMisalignedRegion
	}

	pack := PackDescription(dstFormat)
	unpack := UnpackDescription(srcFormat)

	dstOff := dst.rowOffset(dstY/dstDesc.BlockHeight) + dstX/dstDesc.BlockWidth*dstDesc.BlockSize()
	srcOff := src.rowOffset(srcY/srcDesc.BlockHeight) + srcX/srcDesc.BlockWidth*srcDesc.BlockSize()

	// Pixel blocks have power of two sizes, so the larger block dimension
	// steps both sides consistently.
	yStep := max(dstDesc.BlockHeight, srcDesc.BlockHeight)
	xStep := max(dstDesc.BlockWidth, srcDesc.BlockWidth)

	dstStep := yStep / dstDesc.BlockHeight * dst.Stride
	srcStep := yStep / srcDesc.BlockHeight * src.Stride

	logger := pipecore.Logger()

	switch {
	case srcDesc.Colorspace == ColorspaceZS || dstDesc.Colorspace == ColorspaceZS:
		logger.Debug("format: translate via depth/stencil path",
			"src", srcDesc.Name, "dst", dstDesc.Name)

		// Depth/stencil blocks are single pixels; one scanline at a time.
		var tmpZ []float32
		var tmpS []uint8

		if unpack.ZFloat != nil && pack.ZFloat != nil {
			tmpZ = make([]float32, width)
		}
		if unpack.S8Uint != nil && pack.S8Uint != nil {
			tmpS = make([]uint8, width)
		}

		for ; height > 0; height-- {
			if tmpZ != nil {
				unpack.ZFloat(tmpZ, src.Pix[srcOff:], width)
				pack.ZFloat(dst.Pix[dstOff:], tmpZ, width)
			}
			if tmpS != nil {
				unpack.S8Uint(tmpS, src.Pix[srcOff:], width)
				pack.S8Uint(dst.Pix[dstOff:], tmpS, width)
			}
			dstOff += dst.Stride
			srcOff += src.Stride
		}
		return nil

	case IsPureSint(srcFormat) || IsPureSint(dstFormat):
		// Signed integer data is never reinterpreted in another domain.
		if IsPureSint(srcFormat) != IsPureSint(dstFormat) {
			return ErrIncompatibleNumericDomain
		}
		if unpack.RGBASint == nil || pack.RGBASint == nil {
			return ErrUnsupportedFormat
		}
		logger.Debug("format: translate via signed integer path",
			"src", srcDesc.Name, "dst", dstDesc.Name)

		tmpStride := max(width, xStep) * 4
		tmp := make([]int32, yStep*tmpStride)

		for height >= yStep {
			unpack.RGBASint(tmp, tmpStride, src.Pix[srcOff:], src.Stride, width, yStep)
			pack.RGBASint(dst.Pix[dstOff:], dst.Stride, tmp, tmpStride, width, yStep)
			dstOff += dstStep
			srcOff += srcStep
			height -= yStep
		}
		if height > 0 {
			unpack.RGBASint(tmp, tmpStride, src.Pix[srcOff:], src.Stride, width, height)
			pack.RGBASint(dst.Pix[dstOff:], dst.Stride, tmp, tmpStride, width, height)
		}
		return nil

	case IsPureUint(srcFormat) || IsPureUint(dstFormat):
		if unpack.RGBAUint == nil || pack.RGBAUint == nil {
			return ErrUnsupportedFormat
		}
		logger.Debug("format: translate via unsigned integer path",
			"src", srcDesc.Name, "dst", dstDesc.Name)

		tmpStride := max(width, xStep) * 4
		tmp := make([]uint32, yStep*tmpStride)

		for height >= yStep {
			unpack.RGBAUint(tmp, tmpStride, src.Pix[srcOff:], src.Stride, width, yStep)
			pack.RGBAUint(dst.Pix[dstOff:], dst.Stride, tmp, tmpStride, width, yStep)
			dstOff += dstStep
			srcOff += srcStep
			height -= yStep
		}
		if height > 0 {
			unpack.RGBAUint(tmp, tmpStride, src.Pix[srcOff:], src.Stride, width, height)
			pack.RGBAUint(dst.Pix[dstOff:], dst.Stride, tmp, tmpStride, width, height)
		}
		return nil

	case Fits8Unorm(srcDesc) || Fits8Unorm(dstDesc):
		if unpack.RGBA8Unorm == nil || pack.RGBA8Unorm == nil {
			return ErrUnsupportedFormat
		}
		logger.Debug("format: translate via 8-unorm path",
			"src", srcDesc.Name, "dst", dstDesc.Name)

		tmpStride := max(width, xStep) * 4
		tmp := make([]uint8, yStep*tmpStride)

		for height >= yStep {
			unpack.RGBA8Unorm(tmp, tmpStride, src.Pix[srcOff:], src.Stride, width, yStep)
			pack.RGBA8Unorm(dst.Pix[dstOff:], dst.Stride, tmp, tmpStride, width, yStep)
			dstOff += dstStep
			srcOff += srcStep
			height -= yStep
		}
		if height > 0 {
			unpack.RGBA8Unorm(tmp, tmpStride, src.Pix[srcOff:], src.Stride, width, height)
			pack.RGBA8Unorm(dst.Pix[dstOff:], dst.Stride, tmp, tmpStride, width, height)
		}
		return nil

	default:
		// Float fallback: the general case. Double-precision-like formats
		// lose precision here.
		if unpack.RGBAFloat == nil || pack.RGBAFloat == nil {
			return ErrUnsupportedFormat
		}
		logger.Debug("format: translate via float path",
			"src", srcDesc.Name, "dst", dstDesc.Name)

		tmpStride := max(width, xStep) * 4
		tmp := make([]float32, yStep*tmpStride)

		for height >= yStep {
			unpack.RGBAFloat(tmp, tmpStride, src.Pix[srcOff:], src.Stride, width, yStep)
			pack.RGBAFloat(dst.Pix[dstOff:], dst.Stride, tmp, tmpStride, width, yStep)
			dstOff += dstStep
			srcOff += srcStep
			height -= yStep
		}
		if height > 0 {
			unpack.RGBAFloat(tmp, tmpStride, src.Pix[srcOff:], src.Stride, width, height)
			pack.RGBAFloat(dst.Pix[dstOff:], dst.Stride, tmp, tmpStride, width, height)
		}
		return nil
	}
}

// Translate3D applies Translate independently to each depth slice,
// advancing both views by their slice strides and propagating the first
// failure.
func Translate3D(dstFormat Format, dst *Surface, dstSliceStride, dstX, dstY, dstZ int,
	srcFormat Format, src *Surface, srcSliceStride, srcX, srcY, srcZ int,
	width, height, depth int) error {

	dstLayer := dst.slice(dstZ * dstSliceStride)
	srcLayer := src.slice(srcZ * srcSliceStride)

	for z := 0; z < depth; z++ {
		if err := Translate(dstFormat, &dstLayer, dstX, dstY,
			srcFormat, &srcLayer, srcX, srcY, width, height); err != nil {
			return err
		}
		dstLayer.Origin += dstSliceStride
		srcLayer.Origin += srcSliceStride
	}
	return nil
}
