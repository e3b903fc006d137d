package filter

import (
	"fmt"
	"io"
	"strings"
)

// Proxy consumes a host frame sequence exactly once. Frame wrappers are
// built lazily, one per source frame in order, during the consumption
// pass; the sequence is not restartable.
type Proxy struct {
	frames   []Frame
	host     Host
	out      io.Writer
	consumed bool
}

// NewProxy wraps an ordered frame sequence for one-shot consumption.
func NewProxy(frames []Frame, host Host, out io.Writer) *Proxy {
	return &Proxy{frames: frames, host: host, out: out}
}

// Unroll renders every frame at its positional depth and prints the
// results joined by newlines as one block. A render failure aborts the
// pass before anything is printed. Calling Unroll on a spent proxy prints
// nothing and returns nil.
func (p *Proxy) Unroll() error {
	if p.consumed {
		return nil
	}
	p.consumed = true

	rendered := make([]string, 0, len(p.frames))
	for depth, frame := range p.frames {
		colorizer := NewFrameColorizer(frame, depth, p.host)
		block, err := colorizer.Render()
		if err != nil {
			return err
		}
		rendered = append(rendered, block)
	}

	_, err := fmt.Fprintln(p.out, strings.Join(rendered, "\n"))
	return err
}
