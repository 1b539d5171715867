// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package st7735

import "fmt"

// Orientation selects how the controller maps display RAM onto the
// glass. Each value is the full MADCTL register content for that
// mapping; BGR panels get the color order bit added at send time.
//
// Orientations carrying the row/column exchange bit swap the effective
// width and height of the display as well as the window offsets.
type Orientation byte

// Supported orientations.
const (
	Portrait         Orientation = 0x00
	Landscape        Orientation = 0x60
	PortraitSwapped  Orientation = 0xC0
	LandscapeSwapped Orientation = 0xA0
)

// MADCTL register bits. Datasheet section 9.22.
const (
	madMY  byte = 0x80 // row address order
	madMX  byte = 0x40 // column address order
	madMV  byte = 0x20 // row/column exchange
	madML  byte = 0x10 // vertical refresh order
	madBGR byte = 0x08 // blue-first subpixel order
	madMH  byte = 0x04 // horizontal refresh order
)

// exchanged reports whether the orientation exchanges rows and columns.
func (o Orientation) exchanged() bool {
	return byte(o)&madMV != 0
}

func (o Orientation) String() string {
	switch o {
	case Portrait:
		return "Portrait"
	case Landscape:
		return "Landscape"
	case PortraitSwapped:
		return "PortraitSwapped"
	case LandscapeSwapped:
		return "LandscapeSwapped"
	default:
		return fmt.Sprintf("Orientation(0x%02X)", byte(o))
	}
}

// Set sets the Orientation to a value represented by the string s. Set
// implements the flag.Value interface.
func (o *Orientation) Set(s string) error {
	switch s {
	case "portrait":
		*o = Portrait
	case "landscape":
		*o = Landscape
	case "portraitswapped":
		*o = PortraitSwapped
	case "landscapeswapped":
		*o = LandscapeSwapped
	default:
		return fmt.Errorf("unknown orientation %q: expected portrait, landscape, portraitswapped or landscapeswapped", s)
	}
	return nil
}
