package backtrace

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/phao5814/gdb-colour-filter/pkg/filter"
	"github.com/phao5814/gdb-colour-filter/pkg/gdb"
)

type Backtrace struct {
	Help    bool   // Show help message
	Verbose bool   // Enable verbose output
	NoColor bool   // Disable colored output
	Width   int    // Screen width override (0 = detect from the terminal)
	GDBPath string // Path to the gdb executable
	PID     int    // Attach to a running process instead of launching one
	BreakAt string // Breakpoint location to run to (empty = run until stop)
	Target  string // Executable to debug
	Core    string // Core dump to load alongside the target
}

// Run starts a gdb session against the configured target, drives it to a
// stopped state, and prints its call stack through the colour filter.
func (opts *Backtrace) Run() error {
	session, err := opts.openSession()
	if err != nil {
		return fmt.Errorf("starting gdb session: %w", err)
	}
	defer session.Close()

	// Core dumps and attached processes are already stopped; a launched
	// target has to run until something stops it.
	if opts.Core == "" && opts.PID == 0 {
		if opts.BreakAt != "" {
			if err := session.Break(opts.BreakAt); err != nil {
				return fmt.Errorf("inserting breakpoint at %s: %w", opts.BreakAt, err)
			}
		}
		reason, err := session.Run()
		if err != nil {
			return fmt.Errorf("running target: %w", err)
		}
		log.Info("Target stopped", "reason", reason)
	}

	// Pin gdb's width so the renderer wraps against the real terminal.
	width := opts.Width
	if width == 0 {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
	}
	if width > 0 {
		if err := session.SetWidth(width); err != nil {
			return fmt.Errorf("setting screen width: %w", err)
		}
	}

	stack, err := session.Stack()
	if err != nil {
		return fmt.Errorf("fetching call stack: %w", err)
	}
	log.Info("Fetched call stack", "frames", len(stack))

	registry := filter.NewRegistry()
	registry.Register(filter.NewColourFilter(session))

	for _, f := range registry.Enabled() {
		if err := f.Filter(stack).Unroll(); err != nil {
			return fmt.Errorf("rendering backtrace: %w", err)
		}
	}
	return nil
}

func (opts *Backtrace) openSession() (*gdb.Session, error) {
	var sessionOpts []gdb.Option
	if opts.GDBPath != "" {
		sessionOpts = append(sessionOpts, gdb.WithPath(opts.GDBPath))
	}
	if opts.PID > 0 {
		sessionOpts = append(sessionOpts, gdb.WithPID(opts.PID))
	}
	if opts.Target != "" {
		sessionOpts = append(sessionOpts, gdb.WithTarget(opts.Target))
	}
	if opts.Core != "" {
		sessionOpts = append(sessionOpts, gdb.WithCore(opts.Core))
	}
	return gdb.New(sessionOpts...)
}
