// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpuformat maps GPU API texture formats onto the conversion
// engine, so texture upload and readback paths can translate pixel data
// with gputypes vocabulary.
package gpuformat

import (
	"errors"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/pipecore/format"
)

// ErrUnmappedTextureFormat is returned for texture formats without a
// conversion engine equivalent.
var ErrUnmappedTextureFormat = errors.New("gpuformat: no conversion format for texture format")

// FormatOf returns the conversion engine format of a GPU texture format.
func FormatOf(tf gputypes.TextureFormat) (format.Format, error) {
	switch tf {
	case gputypes.TextureFormatR8Unorm:
		return format.R8Unorm, nil
	case gputypes.TextureFormatRGBA8Unorm:
		return format.RGBA8Unorm, nil
	case gputypes.TextureFormatBGRA8Unorm:
		return format.BGRA8Unorm, nil
	case gputypes.TextureFormatDepth24PlusStencil8:
		return format.Z24S8Uint, nil
	default:
		return format.FormatNone, ErrUnmappedTextureFormat
	}
}

// TextureFormatOf returns the GPU texture format matching a conversion
// engine format, or TextureFormatUndefined when the API has no
// equivalent.
func TextureFormatOf(f format.Format) gputypes.TextureFormat {
	switch f {
	case format.R8Unorm:
		return gputypes.TextureFormatR8Unorm
	case format.RGBA8Unorm:
		return gputypes.TextureFormatRGBA8Unorm
	case format.BGRA8Unorm:
		return gputypes.TextureFormatBGRA8Unorm
	case format.Z24S8Uint:
		return gputypes.TextureFormatDepth24PlusStencil8
	default:
		return gputypes.TextureFormatUndefined
	}
}

// TranslateExtent converts an extent-sized box between two texture
// formats, one array layer or depth slice at a time. Slice strides are
// in bytes.
func TranslateExtent(dstFormat gputypes.TextureFormat, dst *format.Surface, dstSliceStride int,
	srcFormat gputypes.TextureFormat, src *format.Surface, srcSliceStride int,
	extent gputypes.Extent3D) error {

	df, err := FormatOf(dstFormat)
	if err != nil {
		return err
	}
	sf, err := FormatOf(srcFormat)
	if err != nil {
		return err
	}
	return format.Translate3D(df, dst, dstSliceStride, 0, 0, 0,
		sf, src, srcSliceStride, 0, 0, 0,
		int(extent.Width), int(extent.Height), int(extent.DepthOrArrayLayers))
}
