package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"runtime"
	"sync"

	"github.com/bgiri25/mandelgrid"
	"github.com/bgiri25/mandelgrid/render"
)

// bandRows is how many grid rows a worker claims at a time.
const bandRows = 32

// band is a half-open run of grid rows [start, end).
type band struct {
	start, end int
}

func (b band) rows() int { return b.end - b.start }

// gridScheduler splits one grid computation into row bands and hands them to
// local workers. Finished bands are composed into a shared image that the web
// handlers can snapshot at any point during the render.
type gridScheduler struct {
	params mandelgrid.Params
	cmap   render.Colormap
	ys     []float64

	ctx       context.Context
	ctxCancel context.CancelFunc

	m            sync.Mutex
	img          *image.RGBA
	workers      int
	totalRows    int
	finishedRows int
	unstarted    map[band]struct{}
	inProcess    map[band]struct{}
}

// progressEvent is pushed to web viewers over the websocket.
type progressEvent struct {
	TotalRows    int     `json:"totalRows"`
	FinishedRows int     `json:"finishedRows"`
	Fraction     float64 `json:"fraction"`
	Workers      int     `json:"workers"`
	Done         bool    `json:"done"`
}

func newGridScheduler(p mandelgrid.Params, cmap render.Colormap) (*gridScheduler, error) {
	// Validate everything up front so no worker ever sees a bad parameter.
	if p.MaxIter < 0 {
		return nil, fmt.Errorf("max iterations %d must not be negative: %w", p.MaxIter, mandelgrid.ErrInvalidArgument)
	}
	if _, err := mandelgrid.Linspace(p.Xmin, p.Xmax, p.Width); err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	ys, err := mandelgrid.Linspace(p.Ymin, p.Ymax, p.Height)
	if err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}

	unstarted := make(map[band]struct{})
	for _, b := range splitRows(p.Height, bandRows) {
		unstarted[b] = struct{}{}
	}

	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 58, G: 58, B: 110, A: 255}), image.Point{}, draw.Src)

	ctx, cancel := context.WithCancel(context.Background())
	return &gridScheduler{
		params:    p,
		cmap:      cmap,
		ys:        ys,
		ctx:       ctx,
		ctxCancel: cancel,
		img:       img,
		totalRows: p.Height,
		unstarted: unstarted,
		inProcess: make(map[band]struct{}),
	}, nil
}

// run renders bands on workers goroutines until none are left.
// workers < 1 means one worker per CPU.
func (s *gridScheduler) run(workers int) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.incActiveWorker()
			defer s.decActiveWorker()

			for {
				b, found := s.popBand()
				if !found {
					return
				}
				img, err := s.renderBand(b)
				if err != nil {
					log.Printf("render of band %d..%d failed: %v", b.start, b.end, err)
					return
				}
				s.bandFinished(b, img)
			}
		}()
	}
	wg.Wait()
}

func (s *gridScheduler) popBand() (b band, found bool) {
	s.m.Lock()
	defer s.m.Unlock()

	for b = range s.unstarted {
		delete(s.unstarted, b)
		s.inProcess[b] = struct{}{}
		return b, true
	}
	return band{}, false
}

// renderBand computes the band's rows as a standalone sub-grid: the full x
// axis is kept and the y bounds are narrowed to the band's own sample values,
// so the band reproduces the corresponding rows of the full grid.
func (s *gridScheduler) renderBand(b band) (*image.RGBA, error) {
	sub := s.params
	sub.Ymin = s.ys[b.start]
	sub.Ymax = s.ys[b.end-1]
	sub.Height = b.rows()

	g, err := mandelgrid.ComputeGrid(sub)
	if err != nil {
		return nil, err
	}
	return render.Image(g, s.cmap), nil
}

// bandFinished composes the band's image into the shared one. Grid row 0 is
// the bottom pixel row, so the band's rows [start, end) land on the pixel
// rows [height-end, height-start).
func (s *gridScheduler) bandFinished(b band, img *image.RGBA) {
	defer log.Printf("finished: %.2f", s.progress().Fraction)

	s.m.Lock()
	defer s.m.Unlock()

	target := image.Rect(0, s.params.Height-b.end, s.params.Width, s.params.Height-b.start)
	draw.Draw(s.img, target, img, img.Bounds().Min, draw.Src)

	if _, found := s.inProcess[b]; found {
		s.finishedRows += b.rows()
	}
	delete(s.inProcess, b)

	if len(s.unstarted) == 0 && len(s.inProcess) == 0 {
		s.ctxCancel()
	}
}

func (s *gridScheduler) incActiveWorker() {
	s.m.Lock()
	s.workers++
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}

func (s *gridScheduler) decActiveWorker() {
	s.m.Lock()
	s.workers--
	w := s.workers
	s.m.Unlock()

	log.Printf("workers: %d", w)
}

func (s *gridScheduler) progress() progressEvent {
	s.m.Lock()
	defer s.m.Unlock()
	return progressEvent{
		TotalRows:    s.totalRows,
		FinishedRows: s.finishedRows,
		Fraction:     float64(s.finishedRows) / float64(s.totalRows),
		Workers:      s.workers,
		Done:         s.finishedRows == s.totalRows,
	}
}

// done reports whether every band has been composed.
func (s *gridScheduler) done() bool {
	select {
	case <-s.ctx.Done():
		return true
	default:
		return false
	}
}

// snapshot copies the current state of the shared image.
func (s *gridScheduler) snapshot() *image.RGBA {
	s.m.Lock()
	defer s.m.Unlock()

	cp := image.NewRGBA(s.img.Bounds())
	copy(cp.Pix, s.img.Pix)
	return cp
}

// splitRows splits height rows into bands of at most size rows. The last band
// is shorter when height is not divisible.
func splitRows(height, size int) []band {
	if size <= 0 {
		panic("band size must be positive")
	}

	var bands []band
	for start := 0; start < height; start += size {
		end := start + size
		if end > height {
			end = height
		}
		bands = append(bands, band{start: start, end: end})
	}
	return bands
}
