// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package st7735

import (
	"errors"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/spi"
)

// ErrNotReady is returned by Bus.TxByte when the transport cannot
// accept the byte yet. The driver offers the same byte again until the
// transport reports completion or a hard error.
var ErrNotReady = errors.New("st7735: bus not ready")

// Bus is the byte transmit capability the driver runs on.
//
// TxByte returns nil once the byte has been accepted for transmission,
// ErrNotReady when the byte must be offered again later, or any other
// error to abort the current operation. Blocking transports satisfy
// the contract by never returning ErrNotReady.
type Bus interface {
	TxByte(b byte) error
}

// BurstBus is implemented by transports that accept whole buffers in a
// single call. The driver prefers it over the per-byte path. A
// BurstBus must not return ErrNotReady; a rejected buffer is a hard
// failure.
type BurstBus interface {
	Bus
	Tx(w []byte) error
}

// spiBus adapts an spi.Conn to BurstBus, splitting bursts that exceed
// the connection's transfer size limit.
type spiBus struct {
	c conn.Conn

	// maxTxSize is the largest buffer c accepts in one transfer, or 0
	// when the connection does not advertise a limit.
	maxTxSize int
}

func newSPIBus(c spi.Conn) *spiBus {
	b := &spiBus{c: c}
	if limits, ok := c.(conn.Limits); ok {
		b.maxTxSize = limits.MaxTxSize()
	}
	return b
}

func (b *spiBus) TxByte(c byte) error {
	return b.c.Tx([]byte{c}, nil)
}

func (b *spiBus) Tx(w []byte) error {
	chunk := b.maxTxSize
	if chunk <= 0 {
		chunk = len(w)
	}
	for len(w) > 0 {
		if chunk > len(w) {
			chunk = len(w)
		}
		if err := b.c.Tx(w[:chunk], nil); err != nil {
			return err
		}
		w = w[chunk:]
	}
	return nil
}

var _ BurstBus = &spiBus{}
