package app

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"
)

// Profiler keeps the last duration of named scopes and a set of counters.
// Scopes are listed in the order they were first opened.
type Profiler struct {
	mu     sync.Mutex
	scopes map[string]time.Duration
	starts map[string]time.Time
	counts map[string]int64
	order  []string
}

func NewProfiler() *Profiler {
	return &Profiler{
		scopes: make(map[string]time.Duration),
		starts: make(map[string]time.Time),
		counts: make(map[string]int64),
	}
}

func (p *Profiler) BeginScope(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.starts[name] = time.Now()
	if !slices.Contains(p.order, name) {
		p.order = append(p.order, name)
	}
}

func (p *Profiler) EndScope(name string) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	start, ok := p.starts[name]
	if !ok {
		return 0
	}
	d := time.Since(start)
	p.scopes[name] = d
	delete(p.starts, name)
	return d
}

func (p *Profiler) Scope(name string) time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scopes[name]
}

func (p *Profiler) SetCount(name string, n int64) {
	p.mu.Lock()
	p.counts[name] = n
	p.mu.Unlock()
}

func (p *Profiler) Count(name string) int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counts[name]
}

// Reset zeroes durations but keeps scope order and counters.
func (p *Profiler) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for k := range p.scopes {
		p.scopes[k] = 0
	}
}

func (p *Profiler) StatsString() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	var sb strings.Builder
	sb.WriteString("Timings (CPU):\n")
	for _, name := range p.order {
		ms := float64(p.scopes[name].Microseconds()) / 1000.0
		fmt.Fprintf(&sb, "  %-15s: %.2f ms\n", name, ms)
	}

	sb.WriteString("\nStats:\n")
	keys := make([]string, 0, len(p.counts))
	for k := range p.counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(&sb, "  %-15s: %d\n", k, p.counts[k])
	}
	return sb.String()
}
