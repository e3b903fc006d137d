package gdb

import (
	"errors"
	"fmt"

	"github.com/phao5814/gdb-colour-filter/pkg/filter"
)

// ErrNoBlock reports a frame gdb returned no argument information for.
var ErrNoBlock = errors.New("gdb: no block information for frame")

// Stack fetches the current call stack, innermost frame first as gdb
// reports it. Each frame carries one synthetic lexical block holding the
// argument names and values gdb evaluated for it.
func (s *Session) Stack() ([]filter.Frame, error) {
	rec, _, err := s.send("stack-list-frames")
	if err != nil {
		return nil, err
	}
	frames, err := parseResults(rec.body)
	if err != nil {
		return nil, fmt.Errorf("gdb: stack-list-frames: %w", err)
	}

	rec, _, err = s.send("stack-list-arguments 1")
	if err != nil {
		return nil, err
	}
	args, err := parseResults(rec.body)
	if err != nil {
		return nil, fmt.Errorf("gdb: stack-list-arguments: %w", err)
	}

	return buildStack(frames, args), nil
}

// buildStack pairs the frame list with the per-frame argument lists by
// stack level. A level missing from the argument response leaves the
// frame without a block.
func buildStack(frames, args miTuple) []filter.Frame {
	blocks := make(map[int]*argBlock)
	for _, v := range args.list("stack-args") {
		frame, ok := v.(miTuple)
		if !ok {
			continue
		}
		block := &argBlock{}
		for _, a := range frame.list("args") {
			arg, ok := a.(miTuple)
			if !ok {
				continue
			}
			block.symbols = append(block.symbols, &argSymbol{
				name:  arg.str("name"),
				value: arg.str("value"),
			})
		}
		blocks[atoi(frame.str("level"))] = block
	}

	var stack []filter.Frame
	for _, v := range frames.list("stack") {
		tuple, ok := v.(miTuple)
		if !ok {
			continue
		}
		level := atoi(tuple.str("level"))
		f := &stackFrame{
			level: level,
			addr:  parseAddr(tuple.str("addr")),
			file:  tuple.str("file"),
			line:  atoi(tuple.str("line")),
			block: blocks[level],
		}
		if f.file == "" {
			// Solib frames report the object they map to instead.
			f.file = tuple.str("from")
		}
		if name := tuple.str("func"); name != "" && name != "??" {
			f.fn = filter.FuncRef{Name: name, Addr: f.addr}
		} else {
			f.fn = filter.FuncRef{Addr: f.addr}
		}
		stack = append(stack, f)
	}
	return stack
}

type stackFrame struct {
	level int
	addr  uint64
	fn    filter.FuncRef
	file  string
	line  int
	block *argBlock
}

func (f *stackFrame) Address() uint64          { return f.addr }
func (f *stackFrame) Function() filter.FuncRef { return f.fn }
func (f *stackFrame) Filename() string         { return f.file }
func (f *stackFrame) Line() int                { return f.line }

func (f *stackFrame) Block() (filter.Block, error) {
	if f.block == nil {
		return nil, ErrNoBlock
	}
	return f.block, nil
}

// argBlock is the synthetic function-scope block carrying one frame's
// argument symbols.
type argBlock struct {
	symbols []filter.Symbol
}

func (b *argBlock) HasFunction() bool        { return true }
func (b *argBlock) Superblock() filter.Block { return nil }
func (b *argBlock) Symbols() []filter.Symbol { return b.symbols }

// argSymbol holds an argument gdb already evaluated; Value returns the
// captured text regardless of the frame it is asked against.
type argSymbol struct {
	name  string
	value string
}

func (s *argSymbol) Name() string     { return s.name }
func (s *argSymbol) IsArgument() bool { return true }

func (s *argSymbol) Value(filter.Frame) (string, error) { return s.value, nil }
