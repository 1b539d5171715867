// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen2d implements a 2D display.Drawer that outputs to terminal
// (stdout) using ANSI color codes.
//
// Useful while you are waiting for your super nice TFT display to come by
// mail.
package screen2d

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"
)

// Opts represents the options available for this display.
type Opts struct {
	X       int
	Y       int
	Palette *ansi256.Palette
	// Out is where the screen is drawn. Defaults to a colorable stdout.
	Out io.Writer

	_ struct{}
}

// Dev is a 2D pixel matrix emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	x       int
	y       int
	palette ansi256.Palette

	pixels []byte
	buf    bytes.Buffer
}

// New returns a Dev that displays at the console.
//
// Permits to do local testing of graphics code without the hardware.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Out
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	d := &Dev{
		w:       w,
		x:       opts.X,
		y:       opts.Y,
		palette: *p,
		pixels:  make([]byte, 3*opts.X*opts.Y),
	}
	return d
}

func (d *Dev) String() string {
	return "Screen2D"
}

// Halt implements conn.Resource.
//
// It moves the cursor below the matrix so it is not corrupted.
func (d *Dev) Halt() error {
	_, err := fmt.Fprintf(d.w, "\033[%dB\033[0m\n", d.y)
	return err
}

// Write accepts a stream of raw RGB pixels in row-major order and writes it
// to the console.
func (d *Dev) Write(pixels []byte) (int, error) {
	if len(pixels) != len(d.pixels) {
		return 0, errors.New("invalid RGB stream length")
	}
	copy(d.pixels, pixels)
	return d.refresh()
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rectangle{Max: image.Point{X: d.x, Y: d.y}}
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	r = r.Intersect(d.Bounds())
	srcR := src.Bounds()
	srcR.Min = srcR.Min.Add(sp)
	if dX := r.Dx(); dX < srcR.Dx() {
		srcR.Max.X = srcR.Min.X + dX
	}
	if dY := r.Dy(); dY < srcR.Dy() {
		srcR.Max.Y = srcR.Min.Y + dY
	}
	for sY := srcR.Min.Y; sY < srcR.Max.Y; sY++ {
		o := 3 * ((r.Min.Y+sY-srcR.Min.Y)*d.x + r.Min.X)
		for sX := srcR.Min.X; sX < srcR.Max.X; sX++ {
			r16, g16, b16, _ := src.At(sX, sY).RGBA()
			d.pixels[o] = byte(r16 >> 8)
			d.pixels[o+1] = byte(g16 >> 8)
			d.pixels[o+2] = byte(b16 >> 8)
			o += 3
		}
	}
	_, err := d.refresh()
	return err
}

func (d *Dev) refresh() (int, error) {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	for y := 0; y < d.y; y++ {
		for x := 0; x < d.x; x++ {
			i := 3 * (y*d.x + x)
			c := color.NRGBA{d.pixels[i], d.pixels[i+1], d.pixels[i+2], 255}
			_, _ = io.WriteString(&d.buf, d.palette.Block(c))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	// Move the cursor back up so the next refresh draws over this one.
	_, _ = fmt.Fprintf(&d.buf, "\033[%dA\r", d.y)
	_, err := d.buf.WriteTo(d.w)
	return len(d.pixels), err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
