// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package st7735

import (
	"errors"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// errorHandler is a wrapper for error management: the first failure is
// latched and every call after it becomes a no-op, so multi-command
// sequences read straight through and report once.
type errorHandler struct {
	d   *Dev
	err error
}

func (eh *errorHandler) rstOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.rst.Out(l)
}

func (eh *errorHandler) dcOut(l gpio.Level) {
	if eh.err != nil {
		return
	}
	eh.err = eh.d.dc.Out(l)
}

func (eh *errorHandler) csOut(l gpio.Level) {
	if eh.err != nil || eh.d.cs == nil {
		return
	}
	eh.err = eh.d.cs.Out(l)
}

// tx pushes bytes through the bus. A byte the transport is not ready
// for is offered again, the same byte, until it is accepted or the
// transport fails hard. Burst transports take the buffer whole.
func (eh *errorHandler) tx(w []byte) {
	if eh.err != nil {
		return
	}
	if b, ok := eh.d.bus.(BurstBus); ok {
		eh.err = b.Tx(w)
		return
	}
	for _, c := range w {
		for {
			err := eh.d.bus.TxByte(c)
			if err == nil {
				break
			}
			if !errors.Is(err, ErrNotReady) {
				eh.err = err
				return
			}
		}
	}
}

func (eh *errorHandler) sendCommand(cmd byte) {
	if eh.err != nil {
		return
	}
	eh.dcOut(gpio.Low)
	eh.csOut(gpio.Low)
	eh.tx([]byte{cmd})
	eh.csOut(gpio.High)
}

func (eh *errorHandler) sendData(data []byte) {
	if eh.err != nil {
		return
	}
	eh.dcOut(gpio.High)
	eh.csOut(gpio.Low)
	eh.tx(data)
	eh.csOut(gpio.High)
}

func (eh *errorHandler) delay(t time.Duration) {
	if eh.err != nil {
		return
	}
	sleep(t)
}

// reset pulses the hardware reset line and waits for the controller to
// come out of reset.
func (eh *errorHandler) reset() {
	eh.rstOut(gpio.High)
	eh.delay(resetHold)
	eh.rstOut(gpio.Low)
	eh.delay(resetHold)
	eh.rstOut(gpio.High)
	eh.delay(resetSettle)
}

var sleep = time.Sleep
