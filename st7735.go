// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package st7735

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/GermanBionicSystems/st7735/rgb565"
)

// ErrUninitialized is returned by drawing operations after a failed
// Init. A successful Init clears the condition.
var ErrUninitialized = errors.New("st7735: display not initialized")

// DefaultOpts is the common 1.8 inch 128x160 panel.
var DefaultOpts = Opts{
	W: 128,
	H: 160,
}

// MiniOpts is the 0.96 inch 80x160 panel. Its glass sits centered in
// the controller RAM and ships with inverted, blue-first color
// ordering.
var MiniOpts = Opts{
	W:            80,
	H:            160,
	ColumnOffset: 26,
	RowOffset:    1,
	BGR:          true,
	Inverted:     true,
}

// Opts defines the panel configuration.
type Opts struct {
	// W and H are the glass dimensions in pixels, in the native
	// (portrait) order.
	W int
	H int
	// ColumnOffset and RowOffset displace the drawing window for glass
	// that does not start at the controller RAM origin.
	ColumnOffset int
	RowOffset    int
	// Orientation is the initial memory access order.
	Orientation Orientation
	// BGR must be set for panels wired blue-first.
	BGR bool
	// Inverted must be set for glass that inverts colors.
	Inverted bool
	// CS is driven around every transfer when set. Leave nil when the
	// SPI port owns the chip select line.
	CS gpio.PinOut
}

// NewSPI returns a Dev that communicates over 4-wire SPI to an ST7735
// display controller. The display is reset, fully initialized and
// ready to draw when NewSPI returns.
//
// # Wiring
//
// Connect SDA to SPI_MOSI, SCK to SPI_CLK and CS to SPI_CS, plus two
// GPIO output pins for DC (data/command select) and RST (reset).
func NewSPI(p spi.Port, dc, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	c, err := p.Connect(12*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}
	return New(newSPIBus(c), dc, rst, opts)
}

// New returns a Dev on an arbitrary byte transport. The display is
// reset, fully initialized and ready to draw when New returns.
//
// Transports that cannot accept a byte immediately report ErrNotReady
// from TxByte and get the same byte offered again until it is taken.
func New(bus Bus, dc, rst gpio.PinOut, opts *Opts) (*Dev, error) {
	if dc == nil || dc == gpio.INVALID || rst == nil || rst == gpio.INVALID {
		return nil, errors.New("st7735: both dc and rst pins are required")
	}
	if opts.W <= 0 || opts.H <= 0 {
		return nil, fmt.Errorf("st7735: invalid panel size %dx%d", opts.W, opts.H)
	}
	d := &Dev{
		bus:  bus,
		dc:   dc,
		rst:  rst,
		cs:   opts.CS,
		opts: *opts,
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

// Dev is an open handle to the display controller.
//
// A Dev is owned by a single caller; it does no internal locking and
// must not be used from multiple goroutines concurrently.
type Dev struct {
	// Communication
	bus Bus
	dc  gpio.PinOut
	rst gpio.PinOut
	cs  gpio.PinOut

	// Panel configuration. Orientation, offsets and inversion track
	// the mutators so a re-Init replays the current state.
	opts Opts

	// Mutable
	initialized bool
	halted      bool
}

func (d *Dev) String() string {
	return fmt.Sprintf("st7735.Dev{%s, %s, %s}", d.dc, d.opts.Orientation, d.Bounds().Max)
}

// Init performs a hardware reset and replays the full power-up command
// table. New runs it once; calling it again is legal and replays the
// identical sequence, which recovers a panel left in an undefined
// state by an earlier transport failure.
func (d *Dev) Init() error {
	d.initialized = false
	d.halted = false
	eh := errorHandler{d: d}
	eh.reset()
	initDisplay(&eh, &d.opts)
	if eh.err != nil {
		return eh.err
	}
	d.initialized = true
	return nil
}

// ColorModel implements display.Drawer.
//
// The device uses the 16 bit RGB565 color model.
func (d *Dev) ColorModel() color.Model {
	return rgb565.ColorModel
}

// Bounds implements display.Drawer. Min is guaranteed to be {0, 0}.
// The bounds follow the active orientation: exchanged orientations
// swap width and height.
func (d *Dev) Bounds() image.Rectangle {
	if d.opts.Orientation.exchanged() {
		return image.Rect(0, 0, d.opts.H, d.opts.W)
	}
	return image.Rect(0, 0, d.opts.W, d.opts.H)
}

// Draw implements display.Drawer.
//
// It draws synchronously; once this function returns the pixel data
// has been pushed to the controller. Drawing from an *rgb565.Image
// whose geometry matches r skips the per-pixel conversion entirely.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if err := d.ready(); err != nil {
		return err
	}
	clipped := r.Intersect(d.Bounds())
	if clipped.Empty() {
		return nil
	}
	sp = sp.Add(clipped.Min.Sub(r.Min))
	dx, dy := d.windowOffsets()
	eh := errorHandler{d: d}
	drawImage(&eh, clipped, src, sp, dx, dy)
	return eh.err
}

// SetPixel writes a single pixel.
func (d *Dev) SetPixel(x, y int, c rgb565.Color) error {
	if err := d.validate(x, y, x, y); err != nil {
		return err
	}
	if err := d.ready(); err != nil {
		return err
	}
	dx, dy := d.windowOffsets()
	eh := errorHandler{d: d}
	writePixel(&eh, x, y, dx, dy, c)
	return eh.err
}

// SetWindow programs the drawing window to the rectangle spanning
// (x0,y0)-(x1,y1) inclusive and arms the controller for pixel data.
// Stream the pixels with Write.
func (d *Dev) SetWindow(x0, y0, x1, y1 int) error {
	if err := d.validate(x0, y0, x1, y1); err != nil {
		return err
	}
	if err := d.ready(); err != nil {
		return err
	}
	dx, dy := d.windowOffsets()
	eh := errorHandler{d: d}
	setWindow(&eh, x0, y0, x1, y1, dx, dy)
	return eh.err
}

// WriteBlock sets the window spanning (x0,y0)-(x1,y1) inclusive and
// streams colors into it in row-major order.
//
// The color count is not validated against the window size: a short
// stream leaves the controller waiting for more pixel data and an
// excess stream follows the controller's own wrap-around rules. Both
// give scrambled output, neither gives an error.
func (d *Dev) WriteBlock(x0, y0, x1, y1 int, colors []rgb565.Color) error {
	if err := d.validate(x0, y0, x1, y1); err != nil {
		return err
	}
	if err := d.ready(); err != nil {
		return err
	}
	dx, dy := d.windowOffsets()
	eh := errorHandler{d: d}
	setWindow(&eh, x0, y0, x1, y1, dx, dy)
	writeColors(&eh, colors)
	return eh.err
}

// Write streams raw pixel bytes, two per pixel with the high byte
// first, into the window armed by the last SetWindow call. It is
// shaped like io.Writer for callers that keep their own framebuffer.
// The stream length is not validated against the window size.
func (d *Dev) Write(pix []byte) (int, error) {
	if err := d.ready(); err != nil {
		return 0, err
	}
	if len(pix) == 0 {
		return 0, nil
	}
	eh := errorHandler{d: d}
	eh.sendData(pix)
	if eh.err != nil {
		return 0, eh.err
	}
	return len(pix), nil
}

// SetOrientation reprograms the memory access order. Bounds and window
// offsets follow the new orientation immediately.
func (d *Dev) SetOrientation(o Orientation) error {
	if err := d.ready(); err != nil {
		return err
	}
	eh := errorHandler{d: d}
	eh.sendCommand(madCtl)
	eh.sendData([]byte{madctlValue(o, d.opts.BGR)})
	if eh.err != nil {
		return eh.err
	}
	d.opts.Orientation = o
	return nil
}

// SetOffset sets the native column and row displacement between the
// controller RAM and the glass. The presets cover the stock panels;
// use this for glass mounted with nonstandard slop.
func (d *Dev) SetOffset(dx, dy int) {
	d.opts.ColumnOffset = dx
	d.opts.RowOffset = dy
}

// Invert the display colors (light on dark vs dark on light).
func (d *Dev) Invert(on bool) error {
	if err := d.ready(); err != nil {
		return err
	}
	op := invOff
	if on {
		op = invOn
	}
	eh := errorHandler{d: d}
	eh.sendCommand(op)
	if eh.err != nil {
		return eh.err
	}
	d.opts.Inverted = on
	return nil
}

// Halt turns the display off and puts the controller to sleep. Any
// subsequent drawing operation transparently wakes it up again.
func (d *Dev) Halt() error {
	if !d.initialized {
		return ErrUninitialized
	}
	eh := errorHandler{d: d}
	eh.sendCommand(dispOff)
	eh.sendCommand(slpIn)
	eh.delay(sleepSettle)
	if eh.err != nil {
		return eh.err
	}
	d.halted = true
	return nil
}

// ready verifies the handle accepts drawing operations, transparently
// waking a halted panel.
func (d *Dev) ready() error {
	if !d.initialized {
		return ErrUninitialized
	}
	if d.halted {
		eh := errorHandler{d: d}
		eh.sendCommand(slpOut)
		eh.delay(sleepSettle)
		eh.sendCommand(dispOn)
		if eh.err != nil {
			return eh.err
		}
		d.halted = false
	}
	return nil
}

// windowOffsets returns the column and row displacement for the active
// orientation. Exchanged orientations address the RAM transposed, so
// the native offsets swap with them.
func (d *Dev) windowOffsets() (int, int) {
	if d.opts.Orientation.exchanged() {
		return d.opts.RowOffset, d.opts.ColumnOffset
	}
	return d.opts.ColumnOffset, d.opts.RowOffset
}

// validate rejects rectangles reaching outside the display before a
// single byte is sent.
func (d *Dev) validate(x0, y0, x1, y1 int) error {
	b := d.Bounds()
	if x0 < 0 || y0 < 0 || x0 > x1 || y0 > y1 || x1 >= b.Max.X || y1 >= b.Max.Y {
		return fmt.Errorf("st7735: invalid window (%d,%d)-(%d,%d) on %dx%d display", x0, y0, x1, y1, b.Max.X, b.Max.Y)
	}
	return nil
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
