package filter

import (
	"fmt"
	"strings"
)

// Decorator renders the per-field text segments of one stack frame.
type Decorator interface {
	Address() string
	Depth() string
	Filename() string
	Function() (string, error)
	FrameArgs() (string, error)
	Line() string
}

// BaseDecorator renders every frame field without decoration.
type BaseDecorator struct {
	frame Frame
	depth int
	exec  Executor
}

// NewBaseDecorator wraps a host frame at the given stack depth. The
// executor serves nearest-symbol lookups for frames without a name.
func NewBaseDecorator(frame Frame, depth int, exec Executor) *BaseDecorator {
	return &BaseDecorator{frame: frame, depth: depth, exec: exec}
}

// Address formats the frame address as a fixed-width hex value.
func (d *BaseDecorator) Address() string {
	return fmt.Sprintf("0x%016x", d.frame.Address())
}

// Depth formats the frame position, left-justified to three columns.
func (d *BaseDecorator) Depth() string {
	return fmt.Sprintf("#%-3d", d.depth)
}

func (d *BaseDecorator) Filename() string {
	return d.frame.Filename()
}

// Line renders ":<line>", or nothing when the line is unknown.
func (d *BaseDecorator) Line() string {
	if line := d.frame.Line(); line > 0 {
		return fmt.Sprintf(":%d", line)
	}
	return ""
}

// Function resolves the frame's function name. When the host reports only
// an address, the nearest symbol is looked up through the executor.
func (d *BaseDecorator) Function() (string, error) {
	ref := d.frame.Function()
	if ref.Resolved() {
		return ref.Name, nil
	}

	report, err := d.exec.Execute(fmt.Sprintf("info symbol 0x%016x", ref.Addr))
	if err != nil {
		return "", err
	}
	return nearestSymbol(report), nil
}

// FrameArgs renders the frame's arguments, comma-joined, from the
// innermost lexical block that belongs to a function. A frame without
// block information contributes an empty argument list; a failed value
// evaluation aborts the render.
func (d *BaseDecorator) FrameArgs() (string, error) {
	block, err := d.frame.Block()
	if err != nil {
		return "", nil
	}
	for block != nil && !block.HasFunction() {
		block = block.Superblock()
	}
	if block == nil {
		return "", nil
	}

	var args []string
	for _, sym := range block.Symbols() {
		if !sym.IsArgument() {
			continue
		}
		value, err := sym.Value(d.frame)
		if err != nil {
			return "", err
		}
		if value == "" {
			args = append(args, sym.Name())
		} else {
			args = append(args, sym.Name()+"="+value)
		}
	}
	return strings.Join(args, ", "), nil
}
