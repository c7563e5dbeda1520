// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package format

import (
	"image"

	"golang.org/x/image/draw"
)

// FromImage renders an arbitrary image into a freshly allocated RGBA8Unorm
// surface, converting through the standard library color model.
func FromImage(img image.Image) *Surface {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &Surface{Pix: rgba.Pix, Stride: rgba.Stride}
}

// ToImage translates a rectangle of a surface in the given format into an
// *image.RGBA.
func ToImage(f Format, src *Surface, x, y, width, height int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	dst := &Surface{Pix: img.Pix, Stride: img.Stride}
	if err := Translate(RGBA8Unorm, dst, 0, 0, f, src, x, y, width, height); err != nil {
		return nil, err
	}
	return img, nil
}
