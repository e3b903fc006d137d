package filter

import (
	"strings"
	"unicode/utf8"

	"github.com/phao5814/gdb-colour-filter/pkg/color"
)

// FrameColorizer decorates a frame's fields with the backtrace colour
// scheme and lays the result out against the host's screen width. It
// inherits the undecorated argument rendering from BaseDecorator.
type FrameColorizer struct {
	*BaseDecorator
	host Host
}

// NewFrameColorizer wraps a host frame for rendering at the given depth.
func NewFrameColorizer(frame Frame, depth int, host Host) *FrameColorizer {
	return &FrameColorizer{
		BaseDecorator: NewBaseDecorator(frame, depth, host),
		host:          host,
	}
}

func (c *FrameColorizer) Address() string {
	return color.Colorize(color.BoldBlack, c.BaseDecorator.Address())
}

func (c *FrameColorizer) Depth() string {
	return color.Colorize(color.BrightWhite, c.BaseDecorator.Depth())
}

func (c *FrameColorizer) Filename() string {
	return color.Colorize(color.Cyan, c.BaseDecorator.Filename())
}

func (c *FrameColorizer) Function() (string, error) {
	name, err := c.BaseDecorator.Function()
	if err != nil {
		return "", err
	}
	return color.Colorize(color.BrightBlue, name), nil
}

func (c *FrameColorizer) Line() string {
	line := c.BaseDecorator.Line()
	if line == "" {
		return ""
	}
	return color.Colorize(color.Magenta, line)
}

// Render produces the frame's display block:
//
//	#<depth>  <address> in <function> (<args>) at <file>:<line>
//
// The address appears only when the host's "print address" parameter is
// on. When the host reports a screen width and the assembled line runs
// past it, the location part moves to a second line indented to sit under
// the function name.
func (c *FrameColorizer) Render() (string, error) {
	function, err := c.Function()
	if err != nil {
		return "", err
	}
	args, err := c.FrameArgs()
	if err != nil {
		return "", err
	}

	part1 := c.Depth()
	part2 := function + " " + color.Colorize(color.BrightWhite, "("+args+")")
	part3 := c.Filename() + c.Line()

	printAddress := c.host.Bool(ParamPrintAddress)
	if printAddress {
		part1 += "  " + c.Address() + " in "
	} else {
		part1 += " "
	}

	parts := part1 + part2 + " at " + part3

	width, ok := c.host.Int(ParamWidth)
	if !ok || utf8.RuneCountInString(parts) <= width {
		return parts, nil
	}

	shift := color.VisibleLength(part1) - 1
	if printAddress {
		shift -= 3 // compensate the " in " text
	}
	if shift < 0 {
		shift = 0
	}

	var b strings.Builder
	b.WriteString(part1)
	b.WriteString(part2)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", shift))
	b.WriteString(" at ")
	b.WriteString(part3)
	return b.String(), nil
}
