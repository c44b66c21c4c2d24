package app

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Frame summarizes one rendered image.
type Frame struct {
	ID      uuid.UUID
	Pass    string
	Width   int
	Height  int
	Hits    int64
	Misses  int64
	Held    int64 // rays that reached a solid cell in hold mode
	Elapsed time.Duration
	Digest  uint64 // xxhash64 of the RGBA bytes
}

func (f Frame) Pixels() int64 {
	return int64(f.Width) * int64(f.Height)
}

func (f Frame) String() string {
	return fmt.Sprintf("%s %s %dx%d hits=%d misses=%d held=%d in %s digest=%016x",
		f.ID, f.Pass, f.Width, f.Height, f.Hits, f.Misses, f.Held, f.Elapsed, f.Digest)
}
