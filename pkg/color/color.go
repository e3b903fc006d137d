package color

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Escape sequences used by the backtrace renderer. The codes are fixed:
// rendered output keeps the same bytes on every terminal.
const (
	Reset = "\033[0m"

	BoldBlack   = "\033[1;30m" // frame addresses
	BrightBlue  = "\033[1;34m" // function names
	Magenta     = "\033[0;35m" // line numbers
	Cyan        = "\033[0;36m" // file names
	BrightWhite = "\033[1;37m" // depth markers and argument parentheses
)

var colorEnabled = true

func init() {
	if termenv.EnvNoColor() || !isatty.IsTerminal(os.Stdout.Fd()) {
		colorEnabled = false
	}
}

// EnableColor turns colour output on or off for the whole process.
func EnableColor(enable bool) {
	colorEnabled = enable
}

// IsColorEnabled reports whether Colorize decorates its input.
func IsColorEnabled() bool {
	return colorEnabled
}

// Colorize wraps text in the given colour code and a reset. When colour is
// disabled the text passes through unchanged.
func Colorize(color, text string) string {
	if !colorEnabled {
		return text
	}
	return color + text + Reset
}

// VisibleLength counts the characters of s that reach the screen, skipping
// colour-control sequences. A sequence starts at ESC and ends at the first
// 'm' after it; a sequence with no terminating 'm' runs to the end of the
// string and contributes nothing to the visible count.
func VisibleLength(s string) int {
	hidden := 0
	start := 0

	for {
		begin := strings.IndexByte(s[start:], '\033')
		if begin < 0 {
			break
		}
		begin += start

		end := strings.IndexByte(s[begin:], 'm')
		if end < 0 {
			hidden += utf8.RuneCountInString(s[begin:])
			break
		}
		end += begin

		hidden += utf8.RuneCountInString(s[begin : end+1])
		start = end
	}

	return utf8.RuneCountInString(s) - hidden
}
