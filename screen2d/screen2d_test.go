// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package screen2d

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"
)

func TestDraw(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{X: 4, Y: 3, Out: &buf})

	if got, want := d.Bounds(), image.Rect(0, 0, 4, 3); got != want {
		t.Fatalf("Bounds() = %s, want %s", got, want)
	}

	img := image.NewNRGBA(d.Bounds())
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 0xFF, A: 0xFF})
		}
	}
	if err := d.Draw(d.Bounds(), img, image.Point{}); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\r\033[0m") {
		t.Errorf("Draw() output does not reset the line: %q", out)
	}
	// One line per row, then the cursor moves back up.
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("Draw() output has %d lines, want 3", got)
	}
	if !strings.HasSuffix(out, "\033[3A\r") {
		t.Errorf("Draw() output does not move the cursor back: %q", out)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{X: 2, Y: 2, Out: &buf})

	if _, err := d.Write(make([]byte, 5)); err == nil {
		t.Error("Write() with a bad length expected an error")
	}
	if buf.Len() != 0 {
		t.Errorf("Write() with a bad length produced output: %q", buf.String())
	}

	n, err := d.Write(make([]byte, 3*2*2))
	if err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if n != 12 {
		t.Errorf("Write() = %d, want 12", n)
	}
	if buf.Len() == 0 {
		t.Error("Write() produced no output")
	}
}

func TestHalt(t *testing.T) {
	var buf bytes.Buffer
	d := New(&Opts{X: 2, Y: 2, Out: &buf})

	if err := d.Halt(); err != nil {
		t.Fatalf("Halt() failed: %v", err)
	}
	if got, want := buf.String(), "\033[2B\033[0m\n"; got != want {
		t.Errorf("Halt() output = %q, want %q", got, want)
	}
}

func TestString(t *testing.T) {
	d := New(&Opts{X: 2, Y: 2})
	if got, want := d.String(), "Screen2D"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
