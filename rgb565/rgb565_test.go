// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package rgb565

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestColorRGBA(t *testing.T) {
	for _, tc := range []struct {
		c          Color
		r, g, b, a uint32
	}{
		{Black, 0x0000, 0x0000, 0x0000, 0xFFFF},
		{White, 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF},
		{Red, 0xFFFF, 0x0000, 0x0000, 0xFFFF},
		{Green, 0x0000, 0xFFFF, 0x0000, 0xFFFF},
		{Blue, 0x0000, 0x0000, 0xFFFF, 0xFFFF},
		{Color(0x1234), 0x1084, 0x4514, 0xA529, 0xFFFF},
	} {
		r, g, b, a := tc.c.RGBA()
		if r != tc.r || g != tc.g || b != tc.b || a != tc.a {
			t.Errorf("Color(0x%04X).RGBA() = %04X, %04X, %04X, %04X, want %04X, %04X, %04X, %04X",
				uint16(tc.c), r, g, b, a, tc.r, tc.g, tc.b, tc.a)
		}
	}
}

func TestColorModel(t *testing.T) {
	for _, tc := range []struct {
		c    color.Color
		want Color
	}{
		{color.NRGBA{R: 0xFF, A: 0xFF}, Red},
		{color.NRGBA{G: 0xFF, A: 0xFF}, Green},
		{color.NRGBA{B: 0xFF, A: 0xFF}, Blue},
		{color.White, White},
		{color.Black, Black},
		{color.NRGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}, Color(0x11AA)},
		// A Color passes through unchanged.
		{Color(0x1234), Color(0x1234)},
	} {
		if got := ColorModel.Convert(tc.c).(Color); got != tc.want {
			t.Errorf("Convert(%v) = 0x%04X, want 0x%04X", tc.c, uint16(got), uint16(tc.want))
		}
	}
}

func TestImage(t *testing.T) {
	img := New(image.Rect(0, 0, 4, 2))
	if got := len(img.Pix); got != 16 {
		t.Fatalf("len(Pix) = %d, want 16", got)
	}
	if img.Stride != 8 {
		t.Fatalf("Stride = %d, want 8", img.Stride)
	}

	img.SetRGB565(1, 0, Red)
	img.Set(2, 1, color.NRGBA{B: 0xFF, A: 0xFF})
	want := []byte{
		0x00, 0x00, 0xF8, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x1F, 0x00, 0x00,
	}
	if diff := cmp.Diff(img.Pix, want); diff != "" {
		t.Errorf("Pix difference (-got +want):\n%s", diff)
	}

	if got := img.RGB565At(1, 0); got != Red {
		t.Errorf("RGB565At(1, 0) = 0x%04X, want 0x%04X", uint16(got), uint16(Red))
	}
	if got := img.At(2, 1).(Color); got != Blue {
		t.Errorf("At(2, 1) = 0x%04X, want 0x%04X", uint16(got), uint16(Blue))
	}

	// Out of bounds accesses are no-ops.
	img.SetRGB565(4, 0, White)
	img.SetRGB565(0, -1, White)
	if diff := cmp.Diff(img.Pix, want); diff != "" {
		t.Errorf("Pix difference after out of bounds Set (-got +want):\n%s", diff)
	}
	if got := img.RGB565At(4, 0); got != Black {
		t.Errorf("RGB565At(4, 0) = 0x%04X, want 0x%04X", uint16(got), uint16(Black))
	}
}

func TestImagePixOffset(t *testing.T) {
	img := New(image.Rect(2, 3, 6, 7))
	for _, tc := range []struct {
		x, y int
		want int
	}{
		{2, 3, 0},
		{3, 3, 2},
		{2, 4, 8},
		{5, 6, 30},
	} {
		if got := img.PixOffset(tc.x, tc.y); got != tc.want {
			t.Errorf("PixOffset(%d, %d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestImageDraw(t *testing.T) {
	img := New(image.Rect(0, 0, 3, 3))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.NRGBA{R: 0xFF, A: 0xFF}}, image.Point{}, draw.Src)
	for i := 0; i < len(img.Pix); i += 2 {
		if img.Pix[i] != 0xF8 || img.Pix[i+1] != 0x00 {
			t.Fatalf("Pix[%d:%d] = %02X %02X, want F8 00", i, i+2, img.Pix[i], img.Pix[i+1])
		}
	}
}
