// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package rgb565 implements the 16 bit color format native to the
// ST7735 frame memory.
//
// A pixel packs red in the 5 most significant bits, green in the 6
// middle bits and blue in the 5 least significant bits. On the wire
// pixels travel most significant byte first, which is the layout
// Image keeps in memory so a raster can be streamed out untouched.
package rgb565

import (
	"image"
	"image/color"
	"image/draw"
)

// Color is a 16 bit RGB565 color.
type Color uint16

// Basic colors, useful for tests and quick sketches.
const (
	Black Color = 0x0000
	Blue  Color = 0x001F
	Green Color = 0x07E0
	Red   Color = 0xF800
	White Color = 0xFFFF
)

// RGBA implements color.Color. The 5 and 6 bit channels are expanded
// to 16 bits by bit replication, so full intensities map to 0xFFFF.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c>>11) & 0x1F
	r = r<<11 | r<<6 | r<<1 | r>>4
	g = uint32(c>>5) & 0x3F
	g = g<<10 | g<<4 | g>>2
	b = uint32(c) & 0x1F
	b = b<<11 | b<<6 | b<<1 | b>>4
	a = 0xFFFF
	return
}

func convert(c color.Color) color.Color {
	if v, ok := c.(Color); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	return Color(r>>11<<11 | g>>10<<5 | b>>11)
}

// ColorModel converts any color to Color, keeping the 5 or 6 most
// significant bits per channel.
var ColorModel = color.ModelFunc(convert)

// Image is an in-memory RGB565 image. Pix holds two bytes per pixel,
// most significant byte first, exactly as the display consumes them.
type Image struct {
	// Pix holds the pixels, in wire order.
	Pix []byte
	// Stride is the Pix stride between vertically adjacent pixels, in
	// bytes.
	Stride int
	// Rect is the image bounds.
	Rect image.Rectangle
}

// New returns an initialized, all black Image of the given bounds.
func New(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]byte, 2*w*h),
		Stride: 2 * w,
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (i *Image) ColorModel() color.Model {
	return ColorModel
}

// Bounds implements image.Image.
func (i *Image) Bounds() image.Rectangle {
	return i.Rect
}

// At implements image.Image.
func (i *Image) At(x, y int) color.Color {
	return i.RGB565At(x, y)
}

// RGB565At is the color type specific version of At.
func (i *Image) RGB565At(x, y int) Color {
	if !(image.Point{x, y}.In(i.Rect)) {
		return Black
	}
	o := i.PixOffset(x, y)
	return Color(uint16(i.Pix[o])<<8 | uint16(i.Pix[o+1]))
}

// Set implements draw.Image.
func (i *Image) Set(x, y int, c color.Color) {
	i.SetRGB565(x, y, ColorModel.Convert(c).(Color))
}

// SetRGB565 is the color type specific version of Set. It skips the
// color conversion.
func (i *Image) SetRGB565(x, y int, c Color) {
	if !(image.Point{x, y}.In(i.Rect)) {
		return
	}
	o := i.PixOffset(x, y)
	i.Pix[o] = byte(c >> 8)
	i.Pix[o+1] = byte(c)
}

// PixOffset returns the index into Pix of the first byte of the pixel
// at (x, y).
func (i *Image) PixOffset(x, y int) int {
	return (y-i.Rect.Min.Y)*i.Stride + (x-i.Rect.Min.X)*2
}

var _ draw.Image = &Image{}
