package app

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gekko3d/rayvox"
	"github.com/gekko3d/rayvox/voxelrt/rt/core"
)

// DefaultTileSize matches the 16x16 work group of the compute dispatch.
const DefaultTileSize = 16

// Renderer runs a Pass over every pixel of an image, one tile per task.
type Renderer struct {
	Workers  int // <= 0 means runtime.NumCPU()
	TileSize int // <= 0 means DefaultTileSize
	Logger   rayvox.Logger
	Profiler *Profiler
}

func NewRenderer(workers, tileSize int, logger rayvox.Logger) *Renderer {
	return &Renderer{
		Workers:  workers,
		TileSize: tileSize,
		Logger:   rayvox.OrNop(logger),
		Profiler: NewProfiler(),
	}
}

type tile struct {
	x0, y0, x1, y1 int
}

func tiles(w, h, size int) []tile {
	out := make([]tile, 0, ((w+size-1)/size)*((h+size-1)/size))
	for y := 0; y < h; y += size {
		for x := 0; x < w; x += size {
			out = append(out, tile{x, y, min(x+size, w), min(y+size, h)})
		}
	}
	return out
}

// Render writes one frame into img, which must match params.Resolution.
// Invocation (x, y) is written to pixel (x, y) of img with no flip.
func (r *Renderer) Render(ctx context.Context, pass Pass, params core.Params, img *image.RGBA) (Frame, error) {
	w, h := params.Resolution[0], params.Resolution[1]
	b := img.Bounds()
	if b.Dx() != w || b.Dy() != h {
		return Frame{}, fmt.Errorf("render %s: image is %dx%d, want %dx%d", pass.Name(), b.Dx(), b.Dy(), w, h)
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	size := r.TileSize
	if size <= 0 {
		size = DefaultTileSize
	}
	log := rayvox.OrNop(r.Logger)
	if r.Profiler != nil {
		r.Profiler.BeginScope(pass.Name())
	}
	start := time.Now()

	var hits, misses, held atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, t := range tiles(w, h, size) {
		t := t // per-iteration copy (go1.21 loop semantics)
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var th, tm, td int64
			for y := t.y0; y < t.y1; y++ {
				for x := t.x0; x < t.x1; x++ {
					c, res := pass.Shade(params, x, y)
					img.SetRGBA(b.Min.X+x, b.Min.Y+y, core.ToRGBA(c))
					if res.Miss {
						tm++
					} else {
						th++
					}
					if res.Held {
						td++
					}
				}
			}
			hits.Add(th)
			misses.Add(tm)
			held.Add(td)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Frame{}, err
	}
	// errgroup only sees cancellation that lands while tasks run
	if err := ctx.Err(); err != nil {
		return Frame{}, err
	}

	f := Frame{
		ID:      uuid.New(),
		Pass:    pass.Name(),
		Width:   w,
		Height:  h,
		Hits:    hits.Load(),
		Misses:  misses.Load(),
		Held:    held.Load(),
		Elapsed: time.Since(start),
		Digest:  xxhash.Sum64(img.Pix),
	}
	if r.Profiler != nil {
		r.Profiler.EndScope(pass.Name())
		r.Profiler.SetCount("hits", f.Hits)
		r.Profiler.SetCount("misses", f.Misses)
		r.Profiler.SetCount("held", f.Held)
	}
	log.Debugf("frame %s", f)
	return f, nil
}
