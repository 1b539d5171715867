// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package st7735 controls a color TFT LCD via an ST7735 or ST7735S
// controller, as found on the common 1.8 inch 128x160 and 0.96 inch
// 80x160 modules.
//
// The controller holds a 132x162 frame memory in 16 bit RGB565 and
// refreshes the glass from it autonomously, so the host only pushes
// pixel data when something changes. Drawing goes through a window: a
// rectangle is programmed into the controller, then pixel words stream
// into it in row-major order with automatic line wrap.
//
// The driver is written against a small byte transport interface so it
// can run over anything that moves bytes, but the common case is
// 4-wire SPI with a data/command pin and a reset pin, for which NewSPI
// wires everything up. Transports are allowed to refuse a byte with
// ErrNotReady; the driver keeps offering the same byte until the
// transport takes it.
//
// Panels differ in glass size, position in frame memory, color order
// and polarity. DefaultOpts and MiniOpts cover the two stock modules;
// Opts describes anything else.
//
// # More details
//
// See https://periph.io/device/st7735/ for more details about the
// device.
//
// # Datasheet
//
// https://www.displayfuture.com/Display/datasheet/controller/ST7735.pdf
package st7735
