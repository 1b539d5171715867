// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package st7735

import (
	"image"
	"time"

	"github.com/GermanBionicSystems/st7735/rgb565"
)

// Commands. ST7735 datasheet chapters 9 and 10.
const (
	swReset byte = 0x01
	slpIn   byte = 0x10
	slpOut  byte = 0x11
	invOff  byte = 0x20
	invOn   byte = 0x21
	dispOff byte = 0x28
	dispOn  byte = 0x29
	caSet   byte = 0x2A
	raSet   byte = 0x2B
	ramWr   byte = 0x2C
	madCtl  byte = 0x36
	colMod  byte = 0x3A
	frmCtr1 byte = 0xB1
	frmCtr2 byte = 0xB2
	frmCtr3 byte = 0xB3
	invCtr  byte = 0xB4
	pwCtr1  byte = 0xC0
	pwCtr2  byte = 0xC1
	pwCtr3  byte = 0xC2
	pwCtr4  byte = 0xC3
	pwCtr5  byte = 0xC4
	vmCtr1  byte = 0xC5
)

// Controller settle times. The three long ones come from the power-up
// flow in the datasheet, the short ones bracket the reset pulse.
const (
	resetHold   = 10 * time.Millisecond
	resetSettle = 120 * time.Millisecond
	sleepSettle = 120 * time.Millisecond
	bootSettle  = 200 * time.Millisecond
)

type controller interface {
	sendCommand(byte)
	sendData([]byte)
	delay(time.Duration)
}

// command is a single controller instruction: an opcode, its parameter
// bytes, and the settle time the controller needs before the next
// instruction.
type command struct {
	op    byte
	data  []byte
	delay time.Duration
}

// send pushes one command through ctrl, parameters and settle time
// included.
func send(ctrl controller, c command) {
	ctrl.sendCommand(c.op)
	if len(c.data) > 0 {
		ctrl.sendData(c.data)
	}
	if c.delay > 0 {
		ctrl.delay(c.delay)
	}
}

// madctlValue returns the MADCTL register content for the orientation,
// with the color order bit added for blue-first panels.
func madctlValue(o Orientation, bgr bool) byte {
	v := byte(o)
	if bgr {
		v |= madBGR
	}
	return v
}

// initSequence returns the power-up table for the panel described by
// opts. The order is fixed by the controller; only inversion, color
// order and orientation vary between panels.
func initSequence(opts *Opts) []command {
	inv := invOff
	if opts.Inverted {
		inv = invOn
	}
	return []command{
		{op: swReset, delay: bootSettle},
		{op: slpOut, delay: bootSettle},
		{op: frmCtr1, data: []byte{0x01, 0x2C, 0x2D}},
		{op: frmCtr2, data: []byte{0x01, 0x2C, 0x2D}},
		{op: frmCtr3, data: []byte{0x01, 0x2C, 0x2D, 0x01, 0x2C, 0x2D}},
		{op: invCtr, data: []byte{0x07}},
		{op: pwCtr1, data: []byte{0xA2, 0x02, 0x84}},
		{op: pwCtr2, data: []byte{0xC5}},
		{op: pwCtr3, data: []byte{0x0A, 0x00}},
		{op: pwCtr4, data: []byte{0x8A, 0x2A}},
		{op: pwCtr5, data: []byte{0x8A, 0xEE}},
		{op: vmCtr1, data: []byte{0x0E}},
		{op: inv},
		{op: madCtl, data: []byte{madctlValue(opts.Orientation, opts.BGR)}},
		{op: colMod, data: []byte{0x05}},
		{op: dispOn, delay: bootSettle},
	}
}

func initDisplay(ctrl controller, opts *Opts) {
	for _, c := range initSequence(opts) {
		send(ctrl, c)
	}
}

// setWindow programs the column and row address registers for the
// rectangle spanning (x0,y0)-(x1,y1) inclusive, displaced by dx and
// dy, and arms the controller for the pixel burst that follows. Bounds
// are the caller's responsibility.
func setWindow(ctrl controller, x0, y0, x1, y1, dx, dy int) {
	ctrl.sendCommand(caSet)
	ctrl.sendData([]byte{
		byte((x0 + dx) >> 8), byte(x0 + dx),
		byte((x1 + dx) >> 8), byte(x1 + dx),
	})
	ctrl.sendCommand(raSet)
	ctrl.sendData([]byte{
		byte((y0 + dy) >> 8), byte(y0 + dy),
		byte((y1 + dy) >> 8), byte(y1 + dy),
	})
	ctrl.sendCommand(ramWr)
}

// writePixel sets a one pixel window and bursts a single color.
func writePixel(ctrl controller, x, y, dx, dy int, c rgb565.Color) {
	setWindow(ctrl, x, y, x, y, dx, dy)
	ctrl.sendData([]byte{byte(c >> 8), byte(c)})
}

// writeColors streams colors into the armed window in row-major order,
// high byte first.
func writeColors(ctrl controller, colors []rgb565.Color) {
	if len(colors) == 0 {
		return
	}
	buf := make([]byte, 2*len(colors))
	for i, c := range colors {
		buf[2*i] = byte(c >> 8)
		buf[2*i+1] = byte(c)
	}
	ctrl.sendData(buf)
}

// drawImage converts the region of src anchored at sp into the wire
// format and bursts it into the window covering dst. When src is
// already an rgb565 image matching dst exactly, its buffer is sent
// as-is.
func drawImage(ctrl controller, dst image.Rectangle, src image.Image, sp image.Point, dx, dy int) {
	setWindow(ctrl, dst.Min.X, dst.Min.Y, dst.Max.X-1, dst.Max.Y-1, dx, dy)
	if img, ok := src.(*rgb565.Image); ok && img.Rect == dst && sp == img.Rect.Min && img.Stride == 2*dst.Dx() {
		ctrl.sendData(img.Pix)
		return
	}
	w, h := dst.Dx(), dst.Dy()
	buf := make([]byte, 2*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := rgb565.ColorModel.Convert(src.At(sp.X+x, sp.Y+y)).(rgb565.Color)
			o := 2 * (y*w + x)
			buf[o] = byte(c >> 8)
			buf[o+1] = byte(c)
		}
	}
	ctrl.sendData(buf)
}
