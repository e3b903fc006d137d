package gdb

import "strings"

// MI output records are classified by the sigil following an optional
// numeric token: ^ result, ~ console stream, @ target stream, & log
// stream, * exec async, = notify async, + status async. The bare line
// "(gdb)" is the prompt closing a response.
type recordKind byte

const (
	recPrompt      recordKind = 0
	recResult      recordKind = '^'
	recConsole     recordKind = '~'
	recTarget      recordKind = '@'
	recLog         recordKind = '&'
	recExecAsync   recordKind = '*'
	recNotifyAsync recordKind = '='
	recStatusAsync recordKind = '+'
)

type record struct {
	kind  recordKind
	token string
	class string // result or async class: "done", "error", "stopped", ...
	body  string // comma-separated results after the class
	text  string // unquoted payload of stream records
}

// classify parses one line of MI output. ok is false for lines that are
// not recognizable records (gdb occasionally emits raw target output).
func classify(line string) (record, bool) {
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "(gdb)" {
		return record{kind: recPrompt}, true
	}

	i := 0
	for i < len(line) && line[i] >= '0' && line[i] <= '9' {
		i++
	}
	if i >= len(line) {
		return record{}, false
	}

	rec := record{token: line[:i]}
	switch line[i] {
	case '^', '*', '=', '+':
		rec.kind = recordKind(line[i])
		rest := line[i+1:]
		rec.class = rest
		if j := strings.IndexByte(rest, ','); j >= 0 {
			rec.class, rec.body = rest[:j], rest[j+1:]
		}
	case '~', '@', '&':
		rec.kind = recordKind(line[i])
		rec.text = unquote(line[i+1:])
	default:
		return record{}, false
	}
	return rec, true
}

// unquote resolves a c-string stream payload; malformed input passes
// through unchanged.
func unquote(s string) string {
	p := &miParser{input: s}
	text, err := p.cstring()
	if err != nil {
		return s
	}
	return text
}
