// Package filter renders debugger call stacks as colour-annotated,
// width-aware text. A ColourFilter wraps the frame sequence a host
// debugger supplies and prints every frame once, in order, in the form
//
//	#<depth>  <address> in <function> (<args>) at <file>:<line>
//
// wrapping the location onto a second line when the host's screen width
// demands it. All host capabilities arrive through the Host interface, so
// the package works against a live debugger or a test fake alike.
package filter

import (
	"io"
	"os"
)

// DefaultName is the name a ColourFilter registers under.
const DefaultName = "backtrace-filter"

// ColourFilter consumes every frame of a backtrace and colours the
// output. It carries the name/priority/enabled tuple the host's filter
// registry keys on.
type ColourFilter struct {
	name     string
	priority int
	enabled  bool
	host     Host
	out      io.Writer
}

// Option configures a ColourFilter.
type Option func(*ColourFilter)

// WithName sets the name the filter registers under.
func WithName(name string) Option {
	return func(f *ColourFilter) { f.name = name }
}

// WithPriority sets the filter's priority relative to other filters.
func WithPriority(priority int) Option {
	return func(f *ColourFilter) { f.priority = priority }
}

// WithEnabled sets whether the filter participates in rendering.
func WithEnabled(enabled bool) Option {
	return func(f *ColourFilter) { f.enabled = enabled }
}

// WithWriter redirects the filter's output, which defaults to stdout.
func WithWriter(w io.Writer) Option {
	return func(f *ColourFilter) { f.out = w }
}

// NewColourFilter builds a filter over the given host capabilities.
func NewColourFilter(host Host, opts ...Option) *ColourFilter {
	f := &ColourFilter{
		name:    DefaultName,
		enabled: true,
		host:    host,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *ColourFilter) Name() string  { return f.name }
func (f *ColourFilter) Priority() int { return f.priority }
func (f *ColourFilter) Enabled() bool { return f.enabled }

// Filter wraps a frame sequence for single-use consumption.
func (f *ColourFilter) Filter(frames []Frame) *Proxy {
	return NewProxy(frames, f.host, f.out)
}
