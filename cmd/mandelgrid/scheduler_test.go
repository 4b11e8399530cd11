package main

import (
	"errors"
	"image/color"
	"testing"

	"github.com/bgiri25/mandelgrid"
	"github.com/bgiri25/mandelgrid/render"
)

func TestSplitRows(t *testing.T) {
	tests := []struct {
		height, size int
		want         []band
	}{
		{100, 32, []band{{0, 32}, {32, 64}, {64, 96}, {96, 100}}},
		{5, 8, []band{{0, 5}}},
		{64, 32, []band{{0, 32}, {32, 64}}},
		{1, 1, []band{{0, 1}}},
	}
	for _, tt := range tests {
		got := splitRows(tt.height, tt.size)
		if len(got) != len(tt.want) {
			t.Fatalf("splitRows(%d, %d) = %v, want %v", tt.height, tt.size, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitRows(%d, %d)[%d] = %v, want %v", tt.height, tt.size, i, got[i], tt.want[i])
			}
		}
	}
}

func TestGridSchedulerInvalidParams(t *testing.T) {
	p := mandelgrid.DefaultParams()
	p.Width = 0
	if _, err := newGridScheduler(p, render.Gray); !errors.Is(err, mandelgrid.ErrInvalidArgument) {
		t.Errorf("got error %v, want ErrInvalidArgument", err)
	}
}

func TestGridSchedulerRendersEverything(t *testing.T) {
	p := mandelgrid.DefaultParams()
	p.Width, p.Height, p.MaxIter = 48, 80, 40

	s, err := newGridScheduler(p, render.Gray)
	if err != nil {
		t.Fatal(err)
	}
	s.run(4)

	if !s.done() {
		t.Error("scheduler not done after run returned")
	}
	ev := s.progress()
	if !ev.Done || ev.FinishedRows != p.Height || ev.Fraction != 1 {
		t.Errorf("progress after run = %+v", ev)
	}

	// Every pixel must have been overwritten: Gray only produces colors with
	// equal channels, so no cell may still hold the background fill.
	img := s.snapshot()
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			c := img.RGBAAt(x, y)
			if c == (color.RGBA{R: 58, G: 58, B: 110, A: 255}) {
				t.Fatalf("pixel (%d, %d) still holds the background fill", x, y)
			}
		}
	}
}
